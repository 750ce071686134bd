package models

type UserAccount struct {
	JsonModel
	Name   string `json:"name"`
	Email  string `json:"email" gorm:"unique"`
	Banned bool   `gorm:"default:false" json:"-"`
	LastIp string `json:"-"`
	// "STARTED_AUTH", "FINISHED_AUTH"
	Status    string `json:"-"`
	AvatarURL string `json:"avatar_url"`

	ClosetItems []ClosetItem `gorm:"foreignKey:OwnerID" json:"-"`
	Outfits     []Outfit     `gorm:"foreignKey:OwnerID" json:"-"`
}
