package order

import "time"

// Record is an order as the upstream commerce backend reports it. It is
// read-only on this side: the storefront only re-fetches, never mutates.
type Record struct {
	ID               string    `json:"id"`
	Status           Status    `json:"status"`
	Total            float64   `json:"total"`
	Items            []Item    `json:"items"`
	CreatedAt        time.Time `json:"created_at"`
	ExpectedDelivery string    `json:"expected_delivery,omitempty"`

	DeliveryBoyName  string `json:"delivery_boy_name,omitempty"`
	DeliveryBoyPhone string `json:"delivery_boy_phone,omitempty"`
	VendorName       string `json:"vendor_name,omitempty"`
	VendorPhone      string `json:"vendor_phone,omitempty"`
}

type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Detail is the order-detail payload served to the dashboard: the record
// plus the derived stepper projection, recomputed on every fetch.
type Detail struct {
	Record Record `json:"order"`
	Steps  []Step `json:"steps"`
}
