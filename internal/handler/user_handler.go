package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"linkup/internal/errors"
	"linkup/internal/model"
	"linkup/internal/service"
)

// UserHandler handles user profile and search endpoints.
type UserHandler struct {
	userService service.UserService
	postService service.PostService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, postService service.PostService) *UserHandler {
	return &UserHandler{userService: userService, postService: postService}
}

// UpdateProfileRequest represents a profile update request.
type UpdateProfileRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

// ProfileResponse is a public profile with the owner's post count.
type ProfileResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Bio        string    `json:"bio"`
	Avatar     string    `json:"avatar"`
	CreatedAt  time.Time `json:"created_at"`
	PostsCount int64     `json:"postsCount"`
}

// SearchResponse is a list of matched users.
type SearchResponse struct {
	Users []model.User `json:"users"`
}

func userIDParam(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: errors.ErrUserNotFound.Error(),
			Code:  "USER_NOT_FOUND",
		})
	}
	return uint(id), nil
}

// GetProfile godoc
// @Summary Get a public user profile
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	user, postsCount, err := h.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Bio:        user.Bio,
		Avatar:     user.Avatar,
		CreatedAt:  user.CreatedAt,
		PostsCount: postsCount,
	})
}

// ListPosts godoc
// @Summary List a user's posts, newest first
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} FeedResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id}/posts [get]
func (h *UserHandler) ListPosts(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	page, limit := pageParams(c)

	posts, pagination, err := h.postService.ListUserPosts(c.Request().Context(), userID, page, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, FeedResponse{
		Posts:      posts,
		Pagination: pagination,
	})
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), claims.UserID, req.Name, req.Bio)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": user,
	})
}

// Search godoc
// @Summary Search users by name or email substring
// @Tags search
// @Produce json
// @Param q query string true "Search query (min 2 characters)"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /search/users [get]
func (h *UserHandler) Search(c echo.Context) error {
	users, err := h.userService.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, SearchResponse{Users: users})
}
