package catalog

// Shop categories. The category decides which variant dimension
// a product can carry and whether shop-level add-ons apply.
const (
	CategoryRestaurant = "RESTAURANT"
	CategoryFashion    = "FASHION"
	CategoryFood       = "FOOD"
	CategoryRetail     = "RETAIL"
	CategoryService    = "SERVICE"
)

// Product is the normalized catalog record. Dimension is nil when the
// product has no variant axis at all.
type Product struct {
	ID        string           `json:"id"`
	ShopID    string           `json:"shop_id"`
	Name      string           `json:"name"`
	Price     float64          `json:"price"`
	Stock     int              `json:"stock"`
	ImageURL  string           `json:"image_url,omitempty"`
	Unit      string           `json:"unit,omitempty"`
	Category  string           `json:"category"`
	Dimension VariantDimension `json:"-"`
}

// VariantDimension is the closed set of per-category variant shapes.
// Exactly one kind is active per product, chosen by its category.
type VariantDimension interface {
	// Empty reports whether the dimension carries no selectable entries.
	Empty() bool
}

// MenuDimension: restaurant products, type → size matrix.
type MenuDimension struct {
	Types []MenuType `json:"types"`
}

type MenuType struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Sizes []MenuSize `json:"sizes"`
}

type MenuSize struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

func (d *MenuDimension) Empty() bool { return d == nil || len(d.Types) == 0 }

// FashionDimension: color swatches plus sizes. A size price is optional;
// an unpriced size never overrides the base price.
type FashionDimension struct {
	Colors []Color       `json:"colors"`
	Sizes  []FashionSize `json:"sizes"`
}

type Color struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

type FashionSize struct {
	Label string   `json:"label"`
	Price *float64 `json:"price,omitempty"`
}

func (d *FashionDimension) Empty() bool {
	return d == nil || (len(d.Colors) == 0 && len(d.Sizes) == 0)
}

// PackDimension: packaged quantities (supermarket / herbalist).
type PackDimension struct {
	Packs []PackOption `json:"packs"`
}

type PackOption struct {
	ID       string  `json:"id"`
	Quantity float64 `json:"qty"`
	Price    float64 `json:"price"`
}

func (d *PackDimension) Empty() bool { return d == nil || len(d.Packs) == 0 }

// AddonGroup is a shop-level group of optional extras. Each option offers
// one or more priced variants; at most one variant per option is chosen.
type AddonGroup struct {
	ID      string        `json:"id"`
	Title   string        `json:"title,omitempty"`
	Options []AddonOption `json:"options"`
}

type AddonOption struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	ImageURL string         `json:"image_url,omitempty"`
	Variants []AddonVariant `json:"variants"`
}

type AddonVariant struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// Snapshot is the immutable catalog view a configurator session works
// against. BasePrice is pre-resolved (active offer already applied);
// AddonGroups is empty unless the product's category permits add-ons.
type Snapshot struct {
	Product     Product
	BasePrice   float64
	AddonGroups []AddonGroup
}
