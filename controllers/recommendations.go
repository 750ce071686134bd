package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"siyapi/engine"

	"github.com/labstack/echo/v4"
)

// Request structs for validation
type RecommendationIn struct {
	BaseColor      engine.Color    `json:"base_color" validate:"required"`
	BaseFormality  float64         `json:"base_formality" validate:"required,gte=1,lte=5"`
	BaseAesthetics []string        `json:"base_aesthetics"`
	BaseCategory   engine.Category `json:"base_category" validate:"required"`
	// optional subset, defaults to every open category
	Categories []string `json:"categories"`
}

type RecommendationOut struct {
	Recommendations []engine.CategoryRecommendation `json:"recommendations"`
}

type RecommendationsController struct {
	Palettes engine.PaletteProvider
}

func (controller *RecommendationsController) RecommendationRoutes(g *echo.Group) {
	g.POST("/recommendations", controller.GetRecommendations)
}

func (controller *RecommendationsController) GetRecommendations(c echo.Context) error {
	var req RecommendationIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	// hex is the source of truth: re-derive hsl/name/neutral instead of
	// trusting whatever the client sent alongside it
	baseColor, err := engine.ParseHexColor(req.BaseColor.Hex)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid base color: %v", err)})
	}
	if !engine.KnownCategory(req.BaseCategory.L1) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Unknown category %q", req.BaseCategory.L1)})
	}

	base := engine.ClothingAttributes{
		Color:      baseColor,
		Category:   req.BaseCategory,
		Formality:  req.BaseFormality,
		Aesthetics: req.BaseAesthetics,
	}

	recommender := &engine.Recommender{Palettes: controller.Palettes}

	var recommendations []engine.CategoryRecommendation
	if len(req.Categories) > 0 {
		recommendations = make([]engine.CategoryRecommendation, 0, len(req.Categories))
		for _, l1 := range req.Categories {
			rec, err := recommender.ForCategory(base, l1)
			if err != nil {
				if errors.Is(err, engine.ErrUnknownCategory) {
					return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
				}
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate recommendations"})
			}
			recommendations = append(recommendations, rec)
		}
	} else {
		recommendations, err = recommender.ForAll(base, nil)
		if err != nil {
			if errors.Is(err, engine.ErrUnknownCategory) || errors.Is(err, engine.ErrOutOfRangeValue) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate recommendations"})
		}
	}

	return c.JSON(http.StatusOK, RecommendationOut{Recommendations: recommendations})
}
