package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"

	"gorm.io/gorm"

	"linkup/internal/cache"
	"linkup/internal/errors"
	"linkup/internal/model"
	"linkup/internal/repository"
)

const (
	userCacheTTL    = 5 * time.Minute
	searchMinLength = 2
	searchMaxHits   = 20
)

// UserService handles profile reads, profile updates, and user search.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	GetProfile(ctx context.Context, id uint) (*model.User, int64, error)
	UpdateProfile(ctx context.Context, userID uint, name, bio string) (*model.User, error)
	Search(ctx context.Context, query string) ([]model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
	cache    *cache.Client
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository, cache *cache.Client) UserService {
	return &userService{
		userRepo: userRepo,
		postRepo: postRepo,
		cache:    cache,
	}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// GetUser fetches a user straight from the store, bypassing the cache.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetProfile returns a user's public profile and post count. Profile
// fields go through the cache; the post count is always counted fresh so
// new posts show up immediately.
func (s *userService) GetProfile(ctx context.Context, id uint) (*model.User, int64, error) {
	var user *model.User

	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			user = &cached
		}
	}

	if user == nil {
		fetched, err := s.GetUser(ctx, id)
		if err != nil {
			return nil, 0, err
		}
		user = fetched

		if payload, err := json.Marshal(user); err == nil {
			_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
		}
	}

	postsCount, err := s.postRepo.CountByUser(ctx, id)
	if err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	return user, postsCount, nil
}

// UpdateProfile updates the caller's own name and bio. The avatar is
// recomputed from the new name and the cached profile is invalidated.
func (s *userService) UpdateProfile(ctx context.Context, userID uint, name, bio string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.ErrNameRequired
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Bio = bio
	user.Avatar = avatarInitials(name)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID))

	return user, nil
}

// Search finds users whose name or email contains the query,
// case-insensitively, capped at 20 hits.
func (s *userService) Search(ctx context.Context, query string) ([]model.User, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < searchMinLength {
		return nil, errors.ErrQueryTooShort
	}

	users, err := s.userRepo.Search(ctx, query, searchMaxHits)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// avatarInitials derives the avatar label from the uppercase initials of
// up to the first two words of the name.
func avatarInitials(name string) string {
	words := strings.Fields(name)
	if len(words) > 2 {
		words = words[:2]
	}

	var initials []rune
	for _, word := range words {
		for _, r := range word {
			initials = append(initials, unicode.ToUpper(r))
			break
		}
	}
	return string(initials)
}
