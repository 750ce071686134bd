package controllers

import (
	"net/http"
	"os"

	"siyapi/engine"

	"github.com/go-playground/validator"
	"github.com/hibiken/asynq"
	echojwt "github.com/labstack/echo-jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// ValidateCategoryL1 enforces the closed category set on request fields.
func ValidateCategoryL1(fl validator.FieldLevel) bool {
	return engine.KnownCategory(fl.Field().String())
}

func SetupServer(
	db *gorm.DB,
	asynqClient *asynq.Client,
	palettes engine.PaletteProvider,
) *echo.Echo {

	e := echo.New()
	v := validator.New()
	v.RegisterValidation("categoryl1", ValidateCategoryL1)
	e.Validator = &CustomValidator{validator: v}
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("__db", db)
			c.Set("__asynqclient", asynqClient)
			return next(c)
		}
	})

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	apiGroup := e.Group("/api")

	recommendationsController := RecommendationsController{Palettes: palettes}
	recommendationsController.RecommendationRoutes(apiGroup)

	validationController := ValidationController{}
	validationController.ValidationRoutes(apiGroup)

	closetController := ClosetController{}
	closetGroup := apiGroup.Group("/closet", echojwt.JWT([]byte(os.Getenv("JWT_SECRET"))), UserMiddleware)
	closetController.ClosetRoutes(closetGroup)

	return e
}
