package models

// ClosetItem is a stored garment in a user's closet. Color fields beyond
// the hex are derived and cached: the normalize task rebuilds them from the
// hex whenever it changes.
type ClosetItem struct {
	JsonModel
	Owner   UserAccount `json:"-"`
	OwnerID uint        `json:"-"`

	ColorHex     string `json:"color_hex"`
	ColorName    string `json:"color_name"`
	ColorNeutral bool   `json:"color_neutral"`
	ColorHue     int    `json:"color_hue"`
	ColorSat     int    `json:"color_saturation"`
	ColorLight   int    `json:"color_lightness"`

	CategoryL1 string   `json:"category_l1"` // Tops, Bottoms, Shoes, Accessories, Outerwear, Full Body
	CategoryL2 string   `json:"category_l2"` // e.g. Jeans, Sneakers
	Formality  float64  `json:"formality"`   // 1 (casual) to 5 (black tie)
	Aesthetics []string `gorm:"serializer:json" json:"aesthetics"`

	Brand     *string  `json:"brand"`
	Price     *float64 `json:"price"`
	SourceURL *string  `json:"source_url"`
	Ownership string   `json:"ownership"` // owned, wishlist
	ImageURL  *string  `json:"image_url"`
}
