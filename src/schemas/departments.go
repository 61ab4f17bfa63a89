package schemas

type DepartmentResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CreateDepartmentRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type DepartmentCreateResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}
