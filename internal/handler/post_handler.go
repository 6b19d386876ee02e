package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"linkup/internal/errors"
	"linkup/internal/model"
	"linkup/internal/service"
)

// PostHandler handles post endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePostRequest represents a post creation request.
type CreatePostRequest struct {
	Content string `json:"content"`
}

// FeedResponse represents a page of posts.
type FeedResponse struct {
	Posts      []model.PostWithAuthor `json:"posts"`
	Pagination service.Pagination     `json:"pagination"`
}

// LikeResponse reports the like state after a toggle.
type LikeResponse struct {
	Liked   bool   `json:"liked"`
	Message string `json:"message"`
}

func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

func postIDParam(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: errors.ErrPostNotFound.Error(),
			Code:  "POST_NOT_FOUND",
		})
	}
	return uint(id), nil
}

// List godoc
// @Summary List the global feed, newest first
// @Tags posts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} FeedResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	posts, pagination, err := h.postService.ListFeed(c.Request().Context(), page, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, FeedResponse{
		Posts:      posts,
		Pagination: pagination,
	})
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePostRequest true "Post content"
// @Success 201 {object} model.PostWithAuthor
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	post, err := h.postService.CreatePost(c.Request().Context(), claims.UserID, req.Content)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, post)
}

// Delete godoc
// @Summary Delete an owned post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	postID, err := postIDParam(c)
	if err != nil {
		return err
	}

	if err := h.postService.DeletePost(c.Request().Context(), claims.UserID, postID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Post deleted successfully",
	})
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} LikeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id}/like [post]
func (h *PostHandler) ToggleLike(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	postID, err := postIDParam(c)
	if err != nil {
		return err
	}

	liked, err := h.postService.ToggleLike(c.Request().Context(), claims.UserID, postID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	message := "Post unliked"
	if liked {
		message = "Post liked"
	}
	return c.JSON(http.StatusOK, LikeResponse{
		Liked:   liked,
		Message: message,
	})
}
