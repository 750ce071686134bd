package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"siyapi/engine"
	"siyapi/models"
	"siyapi/tasks"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Request structs for validation
type ClosetItemIn struct {
	ColorHex   string   `json:"color_hex" validate:"required,hexcolor"`
	CategoryL1 string   `json:"category_l1" validate:"required,categoryl1"`
	CategoryL2 string   `json:"category_l2" validate:"required,max=50"`
	Formality  float64  `json:"formality" validate:"required,gte=1,lte=5"`
	Aesthetics []string `json:"aesthetics" validate:"max=8,dive,max=30"`
	Brand      *string  `json:"brand" validate:"omitempty,max=100"`
	Price      *float64 `json:"price" validate:"omitempty,gte=0"`
	SourceURL  *string  `json:"source_url" validate:"omitempty,max=500"`
	Ownership  string   `json:"ownership" validate:"omitempty,oneof=owned wishlist"`
	ImageURL   *string  `json:"image_url" validate:"omitempty,max=500"`
}

type MatchingItemsIn struct {
	CategoryL1        string                    `json:"category_l1" validate:"required,categoryl1"`
	RecommendedColors []engine.RecommendedColor `json:"recommended_colors" validate:"required,min=1"`
	FormalityRange    engine.FormalityRange     `json:"formality_range" validate:"required"`
	Limit             int                       `json:"limit" validate:"omitempty,gte=1,lte=10"`
}

type OutfitCreateIn struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	BaseItemID uint   `json:"base_item_id" validate:"required"`
	ItemIDs    []uint `json:"item_ids" validate:"required,min=1,max=5"`
}

// Response structs
type ClosetItemOut struct {
	ID         uint            `json:"id"`
	Color      engine.Color    `json:"color"`
	Category   engine.Category `json:"category"`
	Formality  float64         `json:"formality"`
	Aesthetics []string        `json:"aesthetics"`
	Brand      *string         `json:"brand"`
	Price      *float64        `json:"price"`
	SourceURL  *string         `json:"source_url"`
	Ownership  string          `json:"ownership"`
	ImageURL   *string         `json:"image_url"`
	CreatedAt  string          `json:"created_at"`
}

type MatchedItemOut struct {
	ClosetItemOut
	MatchScore float64 `json:"match_score"`
}

type MatchingItemsOut struct {
	Items           []MatchedItemOut `json:"items"`
	TotalInCategory int              `json:"total_in_category"`
}

type ClosetListOut struct {
	Items        map[string][]ClosetItemOut `json:"items_by_category"`
	Outfits      []OutfitSummaryOut         `json:"outfits"`
	TotalItems   int                        `json:"total_items"`
	TotalOutfits int                        `json:"total_outfits"`
}

type OutfitSummaryOut struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	ItemCount     int    `json:"item_count"`
	CohesionScore int    `json:"cohesion_score"`
	Verdict       string `json:"verdict"`
	CreatedAt     string `json:"created_at"`
}

type OutfitCreatedOut struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	CohesionScore int      `json:"cohesion_score"`
	Verdict       string   `json:"verdict"`
	IsComplete    bool     `json:"is_complete"`
	Warnings      []string `json:"warnings"`
	ColorStrip    []string `json:"color_strip"`
}

type ClosetController struct{}

func (controller *ClosetController) ClosetRoutes(g *echo.Group) {
	g.GET("", controller.ListCloset)
	g.POST("/items", controller.CreateClosetItem)
	g.POST("/matching-items", controller.MatchingItems)
	g.POST("/outfits", controller.CreateOutfit)
}

func toClosetItemOut(item models.ClosetItem) ClosetItemOut {
	return ClosetItemOut{
		ID: item.ID,
		Color: engine.Color{
			Hex:       item.ColorHex,
			HSL:       engine.HSL{H: item.ColorHue, S: item.ColorSat, L: item.ColorLight},
			Name:      item.ColorName,
			IsNeutral: item.ColorNeutral,
		},
		Category:   engine.Category{L1: item.CategoryL1, L2: item.CategoryL2},
		Formality:  item.Formality,
		Aesthetics: item.Aesthetics,
		Brand:      item.Brand,
		Price:      item.Price,
		SourceURL:  item.SourceURL,
		Ownership:  item.Ownership,
		ImageURL:   item.ImageURL,
		CreatedAt:  item.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func attributesFromItem(item models.ClosetItem) engine.ClothingAttributes {
	return engine.ClothingAttributes{
		Color: engine.Color{
			Hex:       item.ColorHex,
			HSL:       engine.HSL{H: item.ColorHue, S: item.ColorSat, L: item.ColorLight},
			Name:      item.ColorName,
			IsNeutral: item.ColorNeutral,
		},
		Category:   engine.Category{L1: item.CategoryL1, L2: item.CategoryL2},
		Formality:  item.Formality,
		Aesthetics: item.Aesthetics,
	}
}

func (controller *ClosetController) CreateClosetItem(c echo.Context) error {
	var req ClosetItemIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, ok := c.Get("currentUser").(models.UserAccount)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	color, err := engine.ParseHexColor(req.ColorHex)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid color: %v", err)})
	}

	ownership := req.Ownership
	if ownership == "" {
		ownership = "owned"
	}
	item := models.ClosetItem{
		OwnerID:      user.ID,
		ColorHex:     color.Hex,
		ColorName:    color.Name,
		ColorNeutral: color.IsNeutral,
		ColorHue:     color.HSL.H,
		ColorSat:     color.HSL.S,
		ColorLight:   color.HSL.L,
		CategoryL1:   req.CategoryL1,
		CategoryL2:   req.CategoryL2,
		Formality:    req.Formality,
		Aesthetics:   req.Aesthetics,
		Brand:        req.Brand,
		Price:        req.Price,
		SourceURL:    req.SourceURL,
		Ownership:    ownership,
		ImageURL:     req.ImageURL,
	}

	if err := db.Create(&item).Error; err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save closet item"})
	}

	// color naming is advisory: re-derivation runs in the background and a
	// missing queue never blocks the insert
	if asynqClient, ok := c.Get("__asynqclient").(*asynq.Client); ok && asynqClient != nil {
		task, err := tasks.NewColorNormalizeTask(item.ID)
		if err != nil {
			sentry.CaptureException(err)
		} else if info, err := asynqClient.Enqueue(task, asynq.MaxRetry(3), asynq.Queue("closet")); err != nil {
			sentry.CaptureException(err)
		} else {
			log.Println("[Queue] Color normalize task submitted, Item ID: ", item.ID, " Task ID: ", info.ID)
		}
	}

	return c.JSON(http.StatusCreated, toClosetItemOut(item))
}

func (controller *ClosetController) ListCloset(c echo.Context) error {
	user, ok := c.Get("currentUser").(models.UserAccount)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	var items []models.ClosetItem
	if err := db.Where("owner_id = ?", user.ID).Order("created_at DESC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch closet"})
	}
	var outfits []models.Outfit
	if err := db.Preload("Items").Where("owner_id = ?", user.ID).Order("created_at DESC").Find(&outfits).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch outfits"})
	}

	grouped := map[string][]ClosetItemOut{}
	for _, l1 := range engine.CategoryOrder {
		grouped[l1] = []ClosetItemOut{}
	}
	for _, item := range items {
		grouped[item.CategoryL1] = append(grouped[item.CategoryL1], toClosetItemOut(item))
	}

	summaries := make([]OutfitSummaryOut, 0, len(outfits))
	for _, outfit := range outfits {
		summaries = append(summaries, OutfitSummaryOut{
			ID:            outfit.ID,
			Name:          outfit.Name,
			ItemCount:     len(outfit.Items),
			CohesionScore: outfit.CohesionScore,
			Verdict:       outfit.Verdict,
			CreatedAt:     outfit.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	return c.JSON(http.StatusOK, ClosetListOut{
		Items:        grouped,
		Outfits:      summaries,
		TotalItems:   len(items),
		TotalOutfits: len(outfits),
	})
}

func (controller *ClosetController) MatchingItems(c echo.Context) error {
	var req MatchingItemsIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, ok := c.Get("currentUser").(models.UserAccount)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	// single read-only fetch, the ranking itself is pure
	var stored []models.ClosetItem
	if err := db.Where("owner_id = ? AND category_l1 = ?", user.ID, req.CategoryL1).Find(&stored).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch closet items"})
	}

	inventory := make([]engine.InventoryItem, 0, len(stored))
	byID := make(map[uint]models.ClosetItem, len(stored))
	for _, item := range stored {
		inventory = append(inventory, engine.InventoryItem{
			ID:         item.ID,
			Attributes: attributesFromItem(item),
			CreatedAt:  item.CreatedAt,
		})
		byID[item.ID] = item
	}

	limit := req.Limit
	if limit == 0 {
		limit = 5
	}
	rec := engine.CategoryRecommendation{
		CategoryL1:     req.CategoryL1,
		Colors:         req.RecommendedColors,
		FormalityRange: req.FormalityRange,
	}
	result := engine.NewMatcher().Matches(rec, inventory, limit)

	matched := make([]MatchedItemOut, 0, len(result.Items))
	for _, scored := range result.Items {
		matched = append(matched, MatchedItemOut{
			ClosetItemOut: toClosetItemOut(byID[scored.Item.ID]),
			MatchScore:    scored.Score,
		})
	}

	return c.JSON(http.StatusOK, MatchingItemsOut{
		Items:           matched,
		TotalInCategory: result.TotalInCategory,
	})
}

func (controller *ClosetController) CreateOutfit(c echo.Context) error {
	var req OutfitCreateIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, ok := c.Get("currentUser").(models.UserAccount)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	var base models.ClosetItem
	if err := db.Where("id = ? AND owner_id = ?", req.BaseItemID, user.ID).Take(&base).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Base item not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch base item"})
	}

	var stored []models.ClosetItem
	if err := db.Where("id IN ? AND owner_id = ?", req.ItemIDs, user.ID).Find(&stored).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch outfit items"})
	}
	if len(stored) != len(req.ItemIDs) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "One or more outfit items not found"})
	}

	// preserve the caller's item order, it defines the color strip
	byID := make(map[uint]models.ClosetItem, len(stored))
	for _, item := range stored {
		byID[item.ID] = item
	}
	outfitAttrs := make([]engine.ClothingAttributes, 0, len(req.ItemIDs))
	for _, id := range req.ItemIDs {
		outfitAttrs = append(outfitAttrs, attributesFromItem(byID[id]))
	}

	validation, err := engine.NewValidator().Validate(attributesFromItem(base), outfitAttrs)
	if err != nil {
		return c.JSON(validationErrorStatus(err), map[string]string{"error": err.Error()})
	}

	outfit := models.Outfit{
		Name:          req.Name,
		OwnerID:       user.ID,
		CohesionScore: validation.CohesionScore,
		Verdict:       validation.Verdict,
		IsComplete:    validation.IsComplete,
	}
	outfit.Items = append(outfit.Items, models.OutfitItem{ClosetItemID: base.ID, Position: 0})
	for i, id := range req.ItemIDs {
		outfit.Items = append(outfit.Items, models.OutfitItem{ClosetItemID: id, Position: i + 1})
	}

	if err := db.Create(&outfit).Error; err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save outfit"})
	}

	return c.JSON(http.StatusCreated, OutfitCreatedOut{
		ID:            outfit.ID,
		Name:          outfit.Name,
		CohesionScore: validation.CohesionScore,
		Verdict:       validation.Verdict,
		IsComplete:    validation.IsComplete,
		Warnings:      validation.Warnings,
		ColorStrip:    validation.ColorStrip,
	})
}
