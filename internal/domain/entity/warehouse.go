package entity

import "time"

// Warehouse a storage location owned by a shop.
// The sum of item quantities stored in it must not exceed Capacity.
type Warehouse struct {
	ID        string
	ShopID    string
	Name      string
	Location  string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
