package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrPostNotFound is returned when a post is not found.
	ErrPostNotFound = errors.New("post not found")
	// ErrNotPostOwner is returned when a user tries to delete someone else's post.
	ErrNotPostOwner = errors.New("not authorized to delete this post")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrContentRequired is returned when post content is empty after trimming.
	ErrContentRequired = errors.New("post content is required")
	// ErrContentTooLong is returned when post content exceeds the length cap.
	ErrContentTooLong = errors.New("post content too long (max 2000 characters)")
	// ErrNameRequired is returned when a profile update omits the name.
	ErrNameRequired = errors.New("name is required")
	// ErrQueryTooShort is returned when a search query is under two characters.
	ErrQueryTooShort = errors.New("search query must be at least 2 characters")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Duplicate email maps
// to 400 rather than 409 to preserve the wire contract of the API.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrPostNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "POST_NOT_FOUND")
	case errors.Is(err, ErrNotPostOwner):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_POST_OWNER")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrContentRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CONTENT_REQUIRED")
	case errors.Is(err, ErrContentTooLong):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CONTENT_TOO_LONG")
	case errors.Is(err, ErrNameRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NAME_REQUIRED")
	case errors.Is(err, ErrQueryTooShort):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "QUERY_TOO_SHORT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
	}
}
