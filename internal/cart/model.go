package cart

import "time"

// Line is one entry in a user's cart, addressable by CartID. The same
// product can appear as separate lines when added with a different color,
// so CartID is distinct from ProductID.
type Line struct {
	CartID        string   `json:"cartId"`
	UserID        uint     `json:"user_id"`
	ProductID     string   `json:"productId"`
	Name          string   `json:"name"`
	Image         string   `json:"image"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Quantity      int      `json:"quantity"`
	SelectedColor *string  `json:"selectedColor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddParams carries a fully-formed line-to-be; the service generates the
// CartID.
type AddParams struct {
	ProductID     string
	Name          string
	Image         string
	Price         float64
	OriginalPrice *float64
	Quantity      int
	SelectedColor *string
}
