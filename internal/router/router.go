package router

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"linkup/internal/auth"
	"linkup/internal/config"
	"linkup/internal/errors"
	"linkup/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	postHandler *handler.PostHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit("10M"))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.HTTPErrorHandler = jsonErrorHandler
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "Server is running",
		})
	})

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/posts", postHandler.List)
	api.GET("/users/:id", userHandler.GetProfile)
	api.GET("/users/:id/posts", userHandler.ListPosts)
	api.GET("/search/users", userHandler.Search)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
		ErrorHandler: gateErrorHandler,
	}))

	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/posts", postHandler.Create)
	secured.DELETE("/posts/:id", postHandler.Delete)
	secured.POST("/posts/:id/like", postHandler.ToggleLike)
	secured.PUT("/users/profile", userHandler.UpdateProfile)
}

// gateErrorHandler distinguishes an absent token from a bad one. Only a
// token that reached verification and failed is forbidden; everything
// else (no header, wrong scheme, empty bearer value) counts as missing.
// The 403 body is the same for every failure mode so callers learn
// nothing about why verification failed.
func gateErrorHandler(c echo.Context, err error) error {
	if stderrors.Is(err, auth.ErrInvalidToken) {
		return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
			Error: "Invalid or expired token",
			Code:  "FORBIDDEN",
		})
	}
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Error: "Access token required",
		Code:  "UNAUTHORIZED",
	})
}

// jsonErrorHandler renders every error as {"error": ...}. Unmatched routes
// become "Route not found" and anything unexpected collapses to a generic
// internal error so no detail leaks to clients.
func jsonErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if stderrors.As(err, &he) {
		switch msg := he.Message.(type) {
		case errors.ErrorResponse:
			_ = c.JSON(he.Code, msg)
		case string:
			code := he.Code
			body := errors.ErrorResponse{Error: msg}
			switch code {
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				// handlers report missing resources via ErrorResponse, so a
				// string-typed 404/405 can only come from the router itself
				code = http.StatusNotFound
				body.Error = "Route not found"
			case http.StatusInternalServerError:
				body.Error = "Internal server error"
			}
			_ = c.JSON(code, body)
		default:
			_ = c.JSON(he.Code, errors.ErrorResponse{Error: http.StatusText(he.Code)})
		}
		return
	}

	c.Logger().Error(err)
	_ = c.JSON(http.StatusInternalServerError, errors.ErrorResponse{Error: "Internal server error"})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
