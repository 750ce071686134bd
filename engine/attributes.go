package engine

// Category places a garment in the two-level taxonomy: a closed L1 set
// (Tops, Bottoms, ...) and a free-text L2 consistent with it.
type Category struct {
	L1 string `json:"l1"`
	L2 string `json:"l2"`
}

// ClothingAttributes is the unit the whole engine operates on. A stored
// closet item carries more (image, ownership), none of which matters here.
type ClothingAttributes struct {
	Color      Color    `json:"color"`
	Category   Category `json:"category"`
	Formality  float64  `json:"formality"`
	Aesthetics []string `json:"aesthetics"`
}
