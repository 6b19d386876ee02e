package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"linkup/internal/errors"
	"linkup/internal/model"
	"linkup/internal/repository"
)

const defaultPageLimit = 10

// Pagination describes a page of results.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// PostService handles the feed, post creation/deletion, and like toggling.
type PostService interface {
	ListFeed(ctx context.Context, page, limit int) ([]model.PostWithAuthor, Pagination, error)
	ListUserPosts(ctx context.Context, userID uint, page, limit int) ([]model.PostWithAuthor, Pagination, error)
	CreatePost(ctx context.Context, userID uint, content string) (*model.PostWithAuthor, error)
	DeletePost(ctx context.Context, userID, postID uint) error
	ToggleLike(ctx context.Context, userID, postID uint) (bool, error)
}

type postService struct {
	postRepo repository.PostRepository
	likeRepo repository.LikeRepository
	userRepo repository.UserRepository
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, likeRepo repository.LikeRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		likeRepo: likeRepo,
		userRepo: userRepo,
	}
}

// normalizePage clamps page and limit to sane values: page >= 1, limit
// defaulting to 10.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	return page, limit
}

func paginate(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ListFeed returns one page of the global feed, newest first.
func (s *postService) ListFeed(ctx context.Context, page, limit int) ([]model.PostWithAuthor, Pagination, error) {
	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit

	posts, err := s.postRepo.ListWithAuthors(ctx, offset, limit)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list posts: %w", err)
	}

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("count posts: %w", err)
	}

	if posts == nil {
		posts = []model.PostWithAuthor{}
	}
	return posts, paginate(page, limit, total), nil
}

// ListUserPosts returns one page of a single user's posts, newest first.
func (s *postService) ListUserPosts(ctx context.Context, userID uint, page, limit int) ([]model.PostWithAuthor, Pagination, error) {
	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit

	posts, err := s.postRepo.ListByUserWithAuthors(ctx, userID, offset, limit)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list user posts: %w", err)
	}

	total, err := s.postRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("count user posts: %w", err)
	}

	if posts == nil {
		posts = []model.PostWithAuthor{}
	}
	return posts, paginate(page, limit, total), nil
}

// CreatePost stores trimmed content under the authenticated owner. The
// owner id comes from the verified claim, never from client input.
func (s *postService) CreatePost(ctx context.Context, userID uint, content string) (*model.PostWithAuthor, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.ErrContentRequired
	}
	if len([]rune(content)) > model.MaxPostContentLength {
		return nil, errors.ErrContentTooLong
	}

	post := &model.Post{
		UserID:  userID,
		Content: content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load author: %w", err)
	}

	return &model.PostWithAuthor{
		ID:            post.ID,
		Content:       post.Content,
		LikesCount:    post.LikesCount,
		CommentsCount: post.CommentsCount,
		CreatedAt:     post.CreatedAt,
		UserID:        user.ID,
		UserName:      user.Name,
		UserAvatar:    user.Avatar,
	}, nil
}

// DeletePost removes a post after checking existence and ownership.
// Likes and comments go with it via referential cascade.
func (s *postService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrPostNotFound
		}
		return fmt.Errorf("find post: %w", err)
	}

	if post.UserID != userID {
		return errors.ErrNotPostOwner
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// ToggleLike flips the caller's like on a post. The row mutation and the
// counter update happen in one transaction inside the repository.
func (s *postService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, errors.ErrPostNotFound
		}
		return false, fmt.Errorf("find post: %w", err)
	}

	liked, err := s.likeRepo.Toggle(ctx, userID, postID)
	if err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}
	return liked, nil
}
