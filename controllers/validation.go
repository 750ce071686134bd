package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"siyapi/engine"

	"github.com/labstack/echo/v4"
)

type ValidateItemIn struct {
	NewItem       engine.ClothingAttributes   `json:"new_item" validate:"required"`
	BaseItem      engine.ClothingAttributes   `json:"base_item" validate:"required"`
	CurrentOutfit []engine.ClothingAttributes `json:"current_outfit"`
}

type ValidateOutfitIn struct {
	Outfit   []engine.ClothingAttributes `json:"outfit" validate:"required"`
	BaseItem engine.ClothingAttributes   `json:"base_item" validate:"required"`
}

type ValidationController struct{}

func (controller *ValidationController) ValidationRoutes(g *echo.Group) {
	g.POST("/validate-item", controller.ValidateItem)
	g.POST("/validate-outfit", controller.ValidateOutfit)
}

// normalizeAttributes canonicalizes the item color from its hex and rejects
// malformed input before the engine sees it.
func normalizeAttributes(item engine.ClothingAttributes) (engine.ClothingAttributes, error) {
	color, err := engine.ParseHexColor(item.Color.Hex)
	if err != nil {
		return engine.ClothingAttributes{}, err
	}
	if !engine.KnownCategory(item.Category.L1) {
		return engine.ClothingAttributes{}, fmt.Errorf("%w: %q", engine.ErrUnknownCategory, item.Category.L1)
	}
	if item.Formality < 1 || item.Formality > 5 {
		return engine.ClothingAttributes{}, fmt.Errorf("%w: formality %.2f", engine.ErrOutOfRangeValue, item.Formality)
	}
	item.Color = color
	return item, nil
}

func normalizeOutfit(items []engine.ClothingAttributes) ([]engine.ClothingAttributes, error) {
	out := make([]engine.ClothingAttributes, 0, len(items))
	for _, item := range items {
		normalized, err := normalizeAttributes(item)
		if err != nil {
			return nil, err
		}
		out = append(out, normalized)
	}
	return out, nil
}

func validationErrorStatus(err error) int {
	switch {
	case errors.Is(err, engine.ErrInvalidColorFormat),
		errors.Is(err, engine.ErrUnknownCategory),
		errors.Is(err, engine.ErrOutOfRangeValue),
		errors.Is(err, engine.ErrEmptyOutfit):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (controller *ValidationController) ValidateItem(c echo.Context) error {
	var req ValidateItemIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	newItem, err := normalizeAttributes(req.NewItem)
	if err != nil {
		return c.JSON(validationErrorStatus(err), map[string]string{"error": err.Error()})
	}
	baseItem, err := normalizeAttributes(req.BaseItem)
	if err != nil {
		return c.JSON(validationErrorStatus(err), map[string]string{"error": err.Error()})
	}
	currentOutfit, err := normalizeOutfit(req.CurrentOutfit)
	if err != nil {
		return c.JSON(validationErrorStatus(err), map[string]string{"error": err.Error()})
	}

	status := engine.NewValidator().ValidateItem(newItem, baseItem, currentOutfit)
	return c.JSON(http.StatusOK, status)
}

func (controller *ValidationController) ValidateOutfit(c echo.Context) error {
	var req ValidateOutfitIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	baseItem, err := normalizeAttributes(req.BaseItem)
	if err != nil {
		return c.JSON(validationErrorStatus(err), map[string]string{"error": err.Error()})
	}
	outfit, err := normalizeOutfit(req.Outfit)
	if err != nil {
		return c.JSON(validationErrorStatus(err), map[string]string{"error": err.Error()})
	}

	result, err := engine.NewValidator().Validate(baseItem, outfit)
	if err != nil {
		return c.JSON(validationErrorStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, result)
}
