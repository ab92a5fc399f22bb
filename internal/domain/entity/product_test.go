package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Cordless Drill", "Bosch", "GSR 12V", 1, 4)

	require.NoError(t, err)
	assert.Equal(t, "Cordless Drill", p.Name)
	assert.Equal(t, 4, p.Quantity)
}

func TestNewProduct_Invalid(t *testing.T) {
	for _, tc := range []struct {
		name    string
		product Product
		wantErr error
	}{
		{"missing name", Product{CategoryID: 1}, ErrNameIsRequired},
		{"negative quantity", Product{Name: "x", CategoryID: 1, Quantity: -1}, ErrQuantityIsNegative},
		{"missing category", Product{Name: "x"}, ErrCategoryIsRequired},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.product.Validate(), tc.wantErr)
		})
	}
}

func TestDecrementQuantity_FloorsAtZero(t *testing.T) {
	p := &Product{Name: "x", CategoryID: 1, Quantity: 1}

	p.DecrementQuantity()
	assert.Equal(t, 0, p.Quantity)

	p.DecrementQuantity()
	assert.Equal(t, 0, p.Quantity)
}
