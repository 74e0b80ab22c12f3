package entity

import "time"

// Listing is a marketplace item published by a verified account.
type Listing struct {
	ID          string
	SellerID    string
	Title       string
	Description string
	Category    string
	PriceCents  int64
	Currency    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Purchase records a buyer's intent against a listing.
// Payment settlement happens outside this system.
type Purchase struct {
	ID        string
	ListingID string
	BuyerID   string
	Quantity  int
	CreatedAt time.Time
}
