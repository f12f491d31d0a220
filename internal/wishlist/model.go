package wishlist

import "time"

// Entry is a saved-for-later product, typically derived from a cart line
// when the customer moves it out of the cart.
type Entry struct {
	ID            string    `json:"id"`
	UserID        uint      `json:"user_id"`
	ProductID     string    `json:"productId"`
	Name          string    `json:"name"`
	Image         string    `json:"image"`
	Price         float64   `json:"price"`
	SelectedColor *string   `json:"selectedColor,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type AddParams struct {
	ProductID     string
	Name          string
	Image         string
	Price         float64
	SelectedColor *string
}
