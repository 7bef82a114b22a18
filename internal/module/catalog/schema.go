package catalog

// CustomizationSchema describes the attributes a product accepts at order
// time. An empty Sizes slice means the size attribute does not apply, and
// likewise for Colors. FixedColor, when set, is applied without asking.
type CustomizationSchema struct {
	Sizes        []string `json:"sizes,omitempty"`
	Colors       []string `json:"colors,omitempty"`
	FixedColor   string   `json:"fixed_color,omitempty"`
	TextLimit    int      `json:"text_limit,omitempty"`
	RequiresText bool     `json:"requires_text"`
}

// Customizable reports whether the schema accepts any attribute at all.
func (s CustomizationSchema) Customizable() bool {
	return len(s.Sizes) > 0 || len(s.Colors) > 0 || s.FixedColor != ""
}

// Fixed option lists, matching the shop's product line.
var (
	phoneCaseModels = []string{"iPhone 17", "Samsung S25", "Redmi Note 12"}
	phoneCaseColors = []string{"Black", "White", "Transparent"}

	shirtSizes        = []string{"XS", "S", "M", "L", "XL"}
	customShirtColors = []string{"Black", "White", "Navy Blue"}
)

// officialShirtColor is the color applied to ready-stock shirts.
const officialShirtColor = "Official Black"

// SchemaFor returns the customization schema for a product. The schema is
// keyed on the product's authored attribute set and category, never on its
// name.
func SchemaFor(p *Product) CustomizationSchema {
	switch p.AttributeSet {
	case AttributeSetPhoneCase:
		return CustomizationSchema{
			Sizes:        phoneCaseModels,
			Colors:       phoneCaseColors,
			TextLimit:    10,
			RequiresText: true,
		}
	case AttributeSetShirt:
		if p.Category == CategoryCustom {
			return CustomizationSchema{
				Sizes:        shirtSizes,
				Colors:       customShirtColors,
				TextLimit:    15,
				RequiresText: true,
			}
		}
		// Ready-stock shirts come in the official color, no print text.
		return CustomizationSchema{
			Sizes:      shirtSizes,
			FixedColor: officialShirtColor,
		}
	default:
		return CustomizationSchema{}
	}
}
