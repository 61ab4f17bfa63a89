package schemas

type CategoryResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CategoryCreateResponse is the bare id+message shape returned on category
// creation, unlike asset creation which returns the full joined row.
type CategoryCreateResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}
