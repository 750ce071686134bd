package engine

// Static styling tables. These are immutable process-wide configuration:
// everything here is initialized once and only ever read.

// Top-level categories in their canonical display order.
var CategoryOrder = []string{"Tops", "Bottoms", "Shoes", "Accessories", "Outerwear", "Full Body"}

// CategoryTaxonomy maps each L1 category to its sub-categories.
var CategoryTaxonomy = map[string][]string{
	"Tops":        {"T-Shirts", "Polos", "Casual Shirts", "Dress Shirts", "Sweaters", "Hoodies", "Blazers"},
	"Bottoms":     {"Jeans", "Chinos", "Dress Pants", "Shorts", "Joggers", "Skirts"},
	"Shoes":       {"Sneakers", "Loafers", "Oxfords", "Boots", "Sandals", "Heels"},
	"Accessories": {"Watches", "Belts", "Bags", "Hats", "Scarves", "Jewelry", "Sunglasses"},
	"Outerwear":   {"Jackets", "Coats", "Vests"},
	"Full Body":   {"Dresses", "Suits"},
}

// KnownCategory reports whether l1 is part of the closed category set.
func KnownCategory(l1 string) bool {
	_, ok := CategoryTaxonomy[l1]
	return ok
}

// Typical formality midpoint per sub-category, used to filter L2
// suggestions against a computed formality range.
var subCategoryFormality = map[string]float64{
	// Tops
	"T-Shirts": 1.5, "Polos": 2.5, "Casual Shirts": 2.5, "Dress Shirts": 4.0,
	"Sweaters": 2.5, "Hoodies": 1.5, "Blazers": 4.0,
	// Bottoms
	"Jeans": 2.0, "Chinos": 2.5, "Dress Pants": 4.0, "Shorts": 1.0,
	"Joggers": 1.0, "Skirts": 3.0,
	// Shoes
	"Sneakers": 1.5, "Loafers": 3.5, "Oxfords": 4.5, "Boots": 2.5,
	"Sandals": 1.0, "Heels": 4.0,
	// Accessories
	"Watches": 3.0, "Belts": 3.0, "Bags": 2.5, "Hats": 1.5,
	"Scarves": 3.0, "Jewelry": 3.0, "Sunglasses": 2.0,
	// Outerwear
	"Jackets": 2.5, "Coats": 3.5, "Vests": 3.0,
	// Full Body
	"Dresses": 3.5, "Suits": 4.5,
}

// How far a target category may drift from the base formality. Shoes and
// accessories are judged more by material than cut, so they tolerate a
// wider gap; outerwear and full-body pieces set the tone and tolerate less.
var formalitySpread = map[string]float64{
	"Tops":        1.0,
	"Bottoms":     1.0,
	"Shoes":       1.5,
	"Accessories": 1.5,
	"Outerwear":   0.75,
	"Full Body":   0.5,
}

// Shoe sub-categories and the bottoms they conventionally work with.
// Anything outside the list is a soft warning, not a hard failure.
var shoeBottomPairings = map[string][]string{
	"Oxfords":  {"Dress Pants", "Chinos", "Suits"},
	"Loafers":  {"Dress Pants", "Chinos", "Suits", "Jeans"},
	"Sneakers": {"Jeans", "Joggers", "Shorts", "Chinos"},
	"Boots":    {"Jeans", "Chinos", "Dress Pants"},
	"Sandals":  {"Shorts", "Jeans", "Skirts", "Dresses"},
	"Heels":    {"Dresses", "Dress Pants", "Skirts", "Suits"},
}

// Structural outfit composition limits.
const (
	MaxOutfitItems = 6
	maxAccessories = 3
	maxOuterwear   = 1
)

// The fixed neutral palette that pairs with any base. Navy is carried as a
// quasi-neutral: dark enough to behave like one in an outfit.
var neutralPalette = []RecommendedColor{
	{Hex: "#000000", Name: "Black", HarmonyType: HarmonyNeutral},
	{Hex: "#FFFFFF", Name: "White", HarmonyType: HarmonyNeutral},
	{Hex: "#808080", Name: "Gray", HarmonyType: HarmonyNeutral},
	{Hex: "#F5F5DC", Name: "Beige", HarmonyType: HarmonyNeutral},
	{Hex: "#1E3A5F", Name: "Navy", HarmonyType: HarmonyNeutral},
}

// Accent colors recommended when the base itself is neutral. Hue math is
// skipped there (hue is unstable near zero saturation), so these curated
// accents stand in for the complementary role.
var neutralBaseAccents = []RecommendedColor{
	{Hex: "#800020", Name: "Burgundy", HarmonyType: HarmonyComplementary},
	{Hex: "#228B22", Name: "Forest Green", HarmonyType: HarmonyComplementary},
	{Hex: "#E1AD01", Name: "Mustard", HarmonyType: HarmonyComplementary},
	{Hex: "#0047AB", Name: "Cobalt Blue", HarmonyType: HarmonyComplementary},
	{Hex: "#E2725B", Name: "Terracotta", HarmonyType: HarmonyComplementary},
}

// Aesthetic companion tags: for a tag on the base item, which tags read
// well on a given target category. Missing entries simply add nothing.
var aestheticCompanions = map[string]map[string][]string{
	"Minimalist": {
		"Shoes":       {"Classic"},
		"Accessories": {"Classic"},
		"Outerwear":   {"Classic"},
	},
	"Streetwear": {
		"Shoes":     {"Athleisure"},
		"Bottoms":   {"Athleisure"},
		"Tops":      {"Edgy"},
		"Outerwear": {"Edgy"},
	},
	"Classic": {
		"Shoes":       {"Minimalist"},
		"Accessories": {"Preppy"},
		"Bottoms":     {"Preppy"},
	},
	"Preppy": {
		"Tops":  {"Classic"},
		"Shoes": {"Classic"},
	},
	"Bohemian": {
		"Accessories": {"Vintage"},
		"Full Body":   {"Vintage"},
	},
	"Athleisure": {
		"Shoes": {"Streetwear"},
		"Tops":  {"Streetwear"},
	},
	"Vintage": {
		"Accessories": {"Bohemian"},
		"Outerwear":   {"Classic"},
	},
	"Edgy": {
		"Shoes":     {"Streetwear"},
		"Outerwear": {"Streetwear"},
	},
}

type hueBucket struct {
	name   string
	lo, hi int // [lo, hi) degrees
}

var hueBuckets = []hueBucket{
	{"red", 345, 360},
	{"red", 0, 15},
	{"orange", 15, 45},
	{"yellow", 45, 65},
	{"green", 65, 150},
	{"teal", 150, 200},
	{"blue", 200, 230},
	{"purple", 230, 290},
	{"pink", 290, 345},
}

// Fashion names per hue bucket, split by a dark / mid / light lightness band.
var colorNames = map[string][3]string{
	"red":    {"Burgundy", "Red", "Rose"},
	"orange": {"Rust", "Orange", "Peach"},
	"yellow": {"Olive", "Yellow", "Cream"},
	"green":  {"Forest Green", "Green", "Sage"},
	"teal":   {"Deep Teal", "Teal", "Mint"},
	"blue":   {"Navy", "Blue", "Sky Blue"},
	"purple": {"Plum", "Purple", "Lavender"},
	"pink":   {"Magenta", "Pink", "Blush"},
}

const fallbackColorName = "Custom Color"

// ColorName maps HSL to a deterministic human color name. Lookup misses fall
// back to a generic label, naming is advisory and must never fail.
func ColorName(hsl HSL) string {
	if hsl.S < 10 {
		switch {
		case hsl.L < 15:
			return "Black"
		case hsl.L > 90:
			return "White"
		default:
			return "Gray"
		}
	}
	h := ((hsl.H % 360) + 360) % 360
	for _, b := range hueBuckets {
		if h >= b.lo && h < b.hi {
			names, ok := colorNames[b.name]
			if !ok {
				return fallbackColorName
			}
			switch {
			case hsl.L < 35:
				return names[0]
			case hsl.L > 70:
				return names[2]
			default:
				return names[1]
			}
		}
	}
	return fallbackColorName
}
