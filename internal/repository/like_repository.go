package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"linkup/internal/model"
)

// LikeRepository defines like persistence operations.
type LikeRepository interface {
	// Toggle flips the like state for (userID, postID) and adjusts the
	// post's likes_count in the same transaction, so the counter cannot
	// drift from the number of like rows. Returns the resulting state.
	Toggle(ctx context.Context, userID, postID uint) (liked bool, err error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository builds a GORM-backed repository.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Toggle(ctx context.Context, userID, postID uint) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var like model.Like
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error
		switch {
		case err == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Post{}).Where("id = ?", postID).
				UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1)).Error; err != nil {
				return err
			}
			liked = false
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&model.Like{UserID: userID, PostID: postID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Post{}).Where("id = ?", postID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error; err != nil {
				return err
			}
			liked = true
			return nil
		default:
			return err
		}
	})
	return liked, err
}
