package repository

import (
	"context"

	"gorm.io/gorm"

	"linkup/internal/model"
)

// PostRepository defines post persistence operations. Listings are joined
// with the author's display fields and ordered newest first, with the id
// as a deterministic tie-break for identical timestamps.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	Delete(ctx context.Context, id uint) error
	ListWithAuthors(ctx context.Context, offset, limit int) ([]model.PostWithAuthor, error)
	ListByUserWithAuthors(ctx context.Context, userID uint, offset, limit int) ([]model.PostWithAuthor, error)
	Count(ctx context.Context) (int64, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository builds a GORM-backed repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}

func (r *postRepository) listQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("posts").
		Select("posts.id, posts.content, posts.likes_count, posts.comments_count, posts.created_at, users.id AS user_id, users.name AS user_name, users.avatar AS user_avatar").
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.created_at DESC, posts.id DESC")
}

func (r *postRepository) ListWithAuthors(ctx context.Context, offset, limit int) ([]model.PostWithAuthor, error) {
	var posts []model.PostWithAuthor
	if err := r.listQuery(ctx).Limit(limit).Offset(offset).Scan(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListByUserWithAuthors(ctx context.Context, userID uint, offset, limit int) ([]model.PostWithAuthor, error) {
	var posts []model.PostWithAuthor
	if err := r.listQuery(ctx).
		Where("posts.user_id = ?", userID).
		Limit(limit).Offset(offset).
		Scan(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Post{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *postRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
