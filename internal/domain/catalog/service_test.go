package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-gateway/internal/platform"
)

func TestAsCartProduct(t *testing.T) {
	product := &platform.Product{
		ProductID:   7,
		Name:        "Lamp",
		Description: "desk lamp",
		BasePrice:   "49.99",
		MediaPaths:  []string{"lamp.png", "lamp-side.png"},
	}

	converted := AsCartProduct(product)

	assert.Equal(t, 7, converted.ID)
	assert.Equal(t, "Lamp", converted.Name)
	assert.Equal(t, "49.99", converted.Price)
	assert.Equal(t, "lamp.png", converted.Image)
	assert.Equal(t, "desk lamp", converted.Description)
}

func TestAsCartProduct_NoMedia(t *testing.T) {
	converted := AsCartProduct(&platform.Product{ProductID: 1, Name: "Chair", BasePrice: "120.00"})
	assert.Empty(t, converted.Image)
}
