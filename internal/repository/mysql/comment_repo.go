package mysql

import (
	"tangle/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

const commentProjection = `comments.*, u.full_name AS author_name, u.profile_picture AS author_picture`

func (r *CommentRepository) filtered(postID uint64) *gorm.DB {
	return r.DB.Model(&model.Comment{}).
		Where("comments.post_id = ? AND comments.is_active = ?", postID, true)
}

// ListByPost returns comments in conversational order, oldest first.
func (r *CommentRepository) ListByPost(postID uint64, offset, limit int) ([]model.CommentView, int64, error) {
	var total int64
	if err := r.filtered(postID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	list := make([]model.CommentView, 0, limit)
	err := r.filtered(postID).
		Select(commentProjection).
		Joins("JOIN users u ON u.id = comments.user_id").
		Order("comments.created_at ASC").
		Offset(offset).
		Limit(limit).
		Scan(&list).Error
	return list, total, err
}

func (r *CommentRepository) ViewByID(id uint64) (*model.CommentView, error) {
	var view model.CommentView
	err := r.DB.Model(&model.Comment{}).
		Select(commentProjection).
		Joins("JOIN users u ON u.id = comments.user_id").
		Where("comments.id = ? AND comments.is_active = ?", id, true).
		Scan(&view).Error
	if err != nil {
		return nil, err
	}
	if view.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &view, nil
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) UpdateOwned(id, userID uint64, content string) (int64, error) {
	tx := r.DB.Model(&model.Comment{}).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		Update("content", content)
	return tx.RowsAffected, tx.Error
}

func (r *CommentRepository) SoftDeleteOwned(id, userID uint64) (int64, error) {
	tx := r.DB.Model(&model.Comment{}).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		Update("is_active", false)
	return tx.RowsAffected, tx.Error
}
