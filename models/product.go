package models

// TimestampFormat is the layout used for created_timestamp and
// updated_timestamp everywhere. Millisecond precision in UTC keeps
// lexicographic comparison consistent with chronological order.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// Product represents a catalog item
type Product struct {
	ProductID          string  `json:"product_id"`
	ProductTitle       string  `json:"product_title"`
	ProductPrice       float64 `json:"product_price"`
	ProductDescription *string `json:"product_description"`
	ProductImage       *string `json:"product_image"`
	ProductCategory    *string `json:"product_category"`
	CreatedTimestamp   string  `json:"created_timestamp"`
	UpdatedTimestamp   string  `json:"updated_timestamp"`
}

// CreateProductInput holds the fields accepted when creating a product.
// Optional fields stay nil and are stored as NULL.
type CreateProductInput struct {
	ProductTitle       string
	ProductPrice       float64
	ProductDescription *string
	ProductImage       *string
	ProductCategory    *string
}

// UpdateProductInput is a sparse update: nil fields are left untouched.
type UpdateProductInput struct {
	ProductTitle       *string
	ProductPrice       *float64
	ProductDescription *string
	ProductImage       *string
	ProductCategory    *string
}

// Pagination describes the page of results returned by a listing.
type Pagination struct {
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Search     *string `json:"search"`
}
