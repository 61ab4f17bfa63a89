package schemas

// AssetResponse is the wire shape of an asset joined with its category name.
// Dates travel as YYYY-MM-DD strings.
type AssetResponse struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	CategoryID     *int    `json:"category_id"`
	Department     string  `json:"department"`
	Status         string  `json:"status"`
	PurchaseDate   string  `json:"purchase_date"`
	WarrantyExpiry *string `json:"warranty_expiry"`
	Value          float64 `json:"value"`
	UsageType      string  `json:"usage_type"`
	CategoryName   *string `json:"category_name"`
}

// CreateAssetRequest is the asset creation payload. The purchase date key is
// spelled purchaseDate on create only; updates use purchase_date.
type CreateAssetRequest struct {
	Name           string   `json:"name"`
	CategoryID     int      `json:"category_id"`
	Department     string   `json:"department"`
	Status         *string  `json:"status,omitempty"`
	PurchaseDate   *string  `json:"purchaseDate,omitempty"`
	WarrantyExpiry *string  `json:"warranty_expiry,omitempty"`
	Value          *float64 `json:"value,omitempty"`
	UsageType      *string  `json:"usage_type,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
