package mysql

import (
	"strings"
	"time"

	"tangle/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

// PostFilter holds the recognized listing predicates. Zero values mean "no
// filter"; anything a caller sends beyond these is ignored upstream.
type PostFilter struct {
	Category    string
	CommunityID uint64
	UserID      uint64
	Search      string
}

const postProjection = `posts.*, u.full_name AS author_name, u.profile_picture AS author_picture,
	c.name AS community_name, c.community_code AS community_code`

// filtered builds the shared predicate, always including the active flag.
// Count and page queries both call it so they can never drift apart.
func (r *PostRepository) filtered(f PostFilter) *gorm.DB {
	q := r.DB.Model(&model.Post{}).Where("posts.is_active = ?", true)
	if f.Category != "" && f.Category != "ALL" {
		q = q.Where("posts.category = ?", f.Category)
	}
	if f.CommunityID != 0 {
		q = q.Where("posts.community_id = ?", f.CommunityID)
	}
	if f.UserID != 0 {
		q = q.Where("posts.user_id = ?", f.UserID)
	}
	if f.Search != "" {
		p := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("(LOWER(posts.title) LIKE ? OR LOWER(posts.description) LIKE ?)", p, p)
	}
	return q
}

func (r *PostRepository) List(f PostFilter, offset, limit int) ([]model.PostView, int64, error) {
	var total int64
	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	list := make([]model.PostView, 0, limit)
	err := r.filtered(f).
		Select(postProjection).
		Joins("JOIN users u ON u.id = posts.user_id").
		Joins("JOIN communities c ON c.id = posts.community_id").
		Order("posts.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&list).Error
	return list, total, err
}

func (r *PostRepository) ViewByID(id uint64) (*model.PostView, error) {
	var view model.PostView
	err := r.DB.Model(&model.Post{}).
		Select(postProjection).
		Joins("JOIN users u ON u.id = posts.user_id").
		Joins("JOIN communities c ON c.id = posts.community_id").
		Where("posts.id = ? AND posts.is_active = ?", id, true).
		Scan(&view).Error
	if err != nil {
		return nil, err
	}
	if view.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &view, nil
}

func (r *PostRepository) FindActiveByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&post).Error
	return &post, err
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

// IncrementViews bumps the counter atomically; every detail fetch counts,
// repeat viewers included.
func (r *PostRepository) IncrementViews(id uint64) error {
	return r.DB.Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// UpdateOwned applies the write and the ownership check in one statement, so
// a concurrent delete between lookup and write shows up as zero rows rather
// than clobbering someone else's post.
func (r *PostRepository) UpdateOwned(id, userID uint64, fields map[string]any) (int64, error) {
	tx := r.DB.Model(&model.Post{}).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		Updates(fields)
	return tx.RowsAffected, tx.Error
}

func (r *PostRepository) SoftDeleteOwned(id, userID uint64) (int64, error) {
	tx := r.DB.Model(&model.Post{}).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		Update("is_active", false)
	return tx.RowsAffected, tx.Error
}

func (r *PostRepository) Stats(now time.Time) (*model.PostStats, error) {
	var stats model.PostStats

	active := func() *gorm.DB {
		return r.DB.Model(&model.Post{}).Where("is_active = ?", true)
	}

	if err := active().Count(&stats.TotalPosts).Error; err != nil {
		return nil, err
	}
	if err := active().
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&stats.TotalViews).Error; err != nil {
		return nil, err
	}
	if err := active().
		Where("created_at >= ?", now.AddDate(0, 0, -7)).
		Count(&stats.PostsThisWeek).Error; err != nil {
		return nil, err
	}
	if err := active().
		Where("created_at >= ?", now.AddDate(0, 0, -30)).
		Count(&stats.PostsThisMonth).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
