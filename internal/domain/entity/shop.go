package entity

import "time"

// Shop the tenant. Every warehouse and inventory item belongs to exactly one shop.
type Shop struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Address      string
	PasswordHash string // opaque; only the seed tool writes it
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
