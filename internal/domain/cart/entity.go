// internal/domain/cart/entity.go
package cart

import (
	"strconv"
	"strings"
)

// Product identifies a purchasable item as known to the cart. The fields are
// copied from the catalog when the product is added; later catalog changes do
// not retroactively alter a cart line.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

// LineItem is one product plus its quantity within a cart. Quantity is
// always >= 1 for a present line; a line that would reach 0 is removed
// instead.
type LineItem struct {
	Product
	Quantity int `json:"quantity"`

	// unitPrice is the numeric amount parsed once when the product entered
	// the cart. A malformed price string parses to 0.
	unitPrice float64
}

// UnitPrice returns the parsed numeric amount for one unit
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}

// Subtotal returns the line contribution to the cart total
func (li LineItem) Subtotal() float64 {
	return li.unitPrice * float64(li.Quantity)
}

// parsePrice converts a display price string to its numeric amount. Prices
// arrive as currency-agnostic numeric strings, occasionally decorated with a
// currency symbol. Anything unparseable contributes 0 so the cart total
// stays computable.
func parsePrice(price string) float64 {
	trimmed := strings.TrimSpace(price)
	for _, symbol := range []string{"€", "$", "£"} {
		trimmed = strings.TrimPrefix(trimmed, symbol)
		trimmed = strings.TrimSuffix(trimmed, symbol)
	}
	trimmed = strings.TrimSpace(trimmed)

	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return amount
}
