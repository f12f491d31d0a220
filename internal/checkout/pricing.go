package checkout

import "strings"

// offerTable maps discount codes to their percentage off. Static for now;
// the admin screens own the campaign lifecycle upstream.
var offerTable = map[string]int{
	"OFFER50": 50,
	"OFFER30": 30,
	"OFFER20": 20,
}

// LookupCode normalizes code (trim + uppercase) and resolves it to a
// percentage.
func LookupCode(code string) (int, bool) {
	pct, ok := offerTable[strings.ToUpper(strings.TrimSpace(code))]
	return pct, ok
}

// DiscountAmount computes the absolute discount for a subtotal.
func DiscountAmount(subtotal float64, percent int) float64 {
	return subtotal * float64(percent) / 100
}

// QuoteOptions are the pricing knobs of the order total pipeline.
type QuoteOptions struct {
	TaxRate           float64
	FreeShippingAbove float64
	DeliveryFee       float64
}

func DefaultQuoteOptions() QuoteOptions {
	return QuoteOptions{
		TaxRate:           0.07,
		FreeShippingAbove: 1000,
		DeliveryFee:       50,
	}
}

// Summary is the computed breakdown of an order total.
type Summary struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"deliveryFee"`
	Discount    float64 `json:"discount"`
	GrandTotal  float64 `json:"grandTotal"`
}

// Quote runs the deterministic total pipeline: tax on the subtotal, the
// delivery-fee threshold rule, then the discount. An empty selection yields
// an all-zero summary. The grand total never goes below zero, whatever the
// discount says.
func Quote(subtotal float64, discountPercent int, opts QuoteOptions) Summary {
	sum := Summary{Subtotal: subtotal}
	if subtotal == 0 {
		return sum
	}

	sum.Tax = subtotal * opts.TaxRate

	if subtotal <= opts.FreeShippingAbove {
		sum.DeliveryFee = opts.DeliveryFee
	}

	sum.Discount = DiscountAmount(subtotal, discountPercent)

	sum.GrandTotal = subtotal + sum.Tax + sum.DeliveryFee - sum.Discount
	if sum.GrandTotal < 0 {
		sum.GrandTotal = 0
	}
	return sum
}
