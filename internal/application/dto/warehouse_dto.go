package dto

import "time"

// CreateWarehouseRequest input to create a warehouse.
type CreateWarehouseRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Location string `json:"location" validate:"required,min=1,max=200"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}

// WarehouseResponse warehouse output.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shop_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListResponse warehouses of a shop.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
}
