package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaFor(t *testing.T) {
	tests := []struct {
		name     string
		product  *Product
		expected CustomizationSchema
	}{
		{
			name: "phone case",
			product: &Product{
				Category:     CategoryCustom,
				AttributeSet: AttributeSetPhoneCase,
			},
			expected: CustomizationSchema{
				Sizes:        []string{"iPhone 17", "Samsung S25", "Redmi Note 12"},
				Colors:       []string{"Black", "White", "Transparent"},
				TextLimit:    10,
				RequiresText: true,
			},
		},
		{
			name: "custom shirt",
			product: &Product{
				Category:     CategoryCustom,
				AttributeSet: AttributeSetShirt,
			},
			expected: CustomizationSchema{
				Sizes:        []string{"XS", "S", "M", "L", "XL"},
				Colors:       []string{"Black", "White", "Navy Blue"},
				TextLimit:    15,
				RequiresText: true,
			},
		},
		{
			name: "ready stock shirt",
			product: &Product{
				Category:     CategoryReadyStock,
				AttributeSet: AttributeSetShirt,
			},
			expected: CustomizationSchema{
				Sizes:      []string{"XS", "S", "M", "L", "XL"},
				FixedColor: "Official Black",
			},
		},
		{
			name: "plain product",
			product: &Product{
				Category:     CategoryReadyStock,
				AttributeSet: AttributeSetNone,
			},
			expected: CustomizationSchema{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SchemaFor(tt.product))
		})
	}
}

func TestCustomizationSchema_Customizable(t *testing.T) {
	assert.True(t, SchemaFor(&Product{AttributeSet: AttributeSetPhoneCase}).Customizable())
	assert.True(t, SchemaFor(&Product{Category: CategoryReadyStock, AttributeSet: AttributeSetShirt}).Customizable())
	assert.False(t, SchemaFor(&Product{AttributeSet: AttributeSetNone}).Customizable())
}
