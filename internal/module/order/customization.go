package order

import (
	"fmt"
	"unicode/utf8"

	"github.com/merchhub/server/internal/module/catalog"
)

// Customization is the fully resolved attribute triple stored on every
// order. Attributes a product does not use hold the "N/A" sentinel, so the
// stored record is always complete.
type Customization struct {
	Size  string
	Color string
	Text  string
}

// CustomizationInput carries the attributes the client selected. Fields the
// product's schema does not ask for are ignored.
type CustomizationInput struct {
	Size  string `json:"size"`
	Color string `json:"color"`
	Text  string `json:"text"`
}

// ResolveCustomization validates the client's selections against the
// product's schema and returns the triple to store. Every attribute the
// schema offers must be chosen from its option list; everything else
// resolves to the sentinel.
func ResolveCustomization(product *catalog.Product, input CustomizationInput) (Customization, error) {
	schema := catalog.SchemaFor(product)

	resolved := Customization{
		Size:  NotApplicable,
		Color: NotApplicable,
		Text:  NotApplicable,
	}

	if len(schema.Sizes) > 0 {
		if !contains(schema.Sizes, input.Size) {
			return Customization{}, fmt.Errorf("%w: size %q is not offered for this product", ErrInvalidCustomization, input.Size)
		}
		resolved.Size = input.Size
	}

	switch {
	case schema.FixedColor != "":
		resolved.Color = schema.FixedColor
	case len(schema.Colors) > 0:
		if !contains(schema.Colors, input.Color) {
			return Customization{}, fmt.Errorf("%w: color %q is not offered for this product", ErrInvalidCustomization, input.Color)
		}
		resolved.Color = input.Color
	}

	if schema.RequiresText {
		if input.Text == "" {
			return Customization{}, fmt.Errorf("%w: print text is required", ErrInvalidCustomization)
		}
		if utf8.RuneCountInString(input.Text) > schema.TextLimit {
			return Customization{}, fmt.Errorf("%w: print text exceeds %d characters", ErrInvalidCustomization, schema.TextLimit)
		}
		resolved.Text = input.Text
	}

	return resolved, nil
}

func contains(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
