package dto

type CreateItemInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	ImageURL    *string  `json:"image_url"`
	Price       *float64 `json:"price" binding:"required,min=0"`
}

type UpdateItemInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
}
