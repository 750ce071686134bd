package models

// Outfit is a saved look. Score and verdict are a snapshot of the engine's
// validation at save time, not live values.
type Outfit struct {
	JsonModel
	Name    string      `json:"name"`
	Owner   UserAccount `json:"-"`
	OwnerID uint        `json:"-"`

	CohesionScore int    `json:"cohesion_score"`
	Verdict       string `json:"verdict"`
	IsComplete    bool   `json:"is_complete"`

	Items []OutfitItem `gorm:"foreignKey:OutfitID" json:"items"`
}

type OutfitItem struct {
	JsonModel
	OutfitID     uint       `json:"-"`
	ClosetItemID uint       `json:"closet_item_id"`
	ClosetItem   ClosetItem `json:"closet_item"`
	// zero is the base item, the rest follow in the order they were added
	Position int `json:"position"`
}
