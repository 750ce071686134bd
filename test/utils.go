package test

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"siyapi/engine"
	"siyapi/models"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {

	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func GenerateUserToken(userPk string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userPk,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	t, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		log.Fatalf("Error when signing user token for %s. Error %s ", userPk, err)
	}
	return t
}

func NewJSONAuthRequest(method string, target string, userPk string, param interface{}) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	token := GenerateUserToken(userPk)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	return req
}

func FakeUser(db *gorm.DB) *models.UserAccount {
	user := &models.UserAccount{
		Name:      "OurName",
		Email:     "email@example.com",
		LastIp:    "123.122.122.122",
		Status:    "FINISHED_AUTH",
		AvatarURL: "pictureurl",
	}
	db.Create(&user)
	return user
}

func FakeUserV2(db *gorm.DB, userName string, email string) *models.UserAccount {
	if email == "" {
		email = "email@example.com"
	}
	user := &models.UserAccount{
		Name:      userName,
		Email:     email,
		LastIp:    "123.122.122.122",
		Status:    "FINISHED_AUTH",
		AvatarURL: "pictureurl",
	}
	db.Create(&user)
	return user
}

// FakeClosetItem writes an item with derived color fields filled in from the
// hex, the same way the create endpoint does.
func FakeClosetItem(db *gorm.DB, ownerID uint, hex string, categoryL1 string, categoryL2 string, formality float64, aesthetics []string) *models.ClosetItem {
	color, err := engine.ParseHexColor(hex)
	if err != nil {
		log.Fatalf("FakeClosetItem: invalid hex %q: %s", hex, err)
	}
	item := &models.ClosetItem{
		OwnerID:      ownerID,
		ColorHex:     color.Hex,
		ColorName:    color.Name,
		ColorNeutral: color.IsNeutral,
		ColorHue:     color.HSL.H,
		ColorSat:     color.HSL.S,
		ColorLight:   color.HSL.L,
		CategoryL1:   categoryL1,
		CategoryL2:   categoryL2,
		Formality:    formality,
		Aesthetics:   aesthetics,
		Ownership:    "owned",
	}
	db.Create(&item)
	return item
}
