package api

// AddToCartRequest carries a new cart line. Price fields are declared as
// any because legacy catalog data still delivers prices as strings with
// currency symbols; the handler normalizes them through the money adapter
// exactly once, at this edge.
type AddToCartRequest struct {
	ProductID     string  `json:"productId" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Image         string  `json:"image"`
	Price         any     `json:"price" validate:"required"`
	OriginalPrice any     `json:"originalPrice"`
	Quantity      int     `json:"quantity" validate:"gte=1"`
	SelectedColor *string `json:"selectedColor"`
}

// UpdateQuantityRequest sets a line's quantity; zero removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type DiscountRequest struct {
	Code string `json:"code" validate:"required"`
}
