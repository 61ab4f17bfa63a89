package models

import "time"

type Asset struct {
	ID             int        `db:"id"`
	Name           string     `db:"name"`
	CategoryID     *int       `db:"category_id"`
	Department     string     `db:"department"`
	Status         string     `db:"status"`
	PurchaseDate   time.Time  `db:"purchase_date"`
	WarrantyExpiry *time.Time `db:"warranty_expiry"`
	Value          float64    `db:"value"`
	UsageType      string     `db:"usage_type"`
}

type AssetWithCategory struct {
	ID             int        `db:"id"`
	Name           string     `db:"name"`
	CategoryID     *int       `db:"category_id"`
	Department     string     `db:"department"`
	Status         string     `db:"status"`
	PurchaseDate   time.Time  `db:"purchase_date"`
	WarrantyExpiry *time.Time `db:"warranty_expiry"`
	Value          float64    `db:"value"`
	UsageType      string     `db:"usage_type"`
	CategoryName   *string    `db:"category_name"`
}
