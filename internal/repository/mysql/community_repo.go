package mysql

import (
	"strings"

	"tangle/internal/model"

	"gorm.io/gorm"
)

type CommunityRepository struct {
	DB *gorm.DB
}

// filtered builds the shared predicate for the list endpoint. Both the count
// and the page query go through here so pagination metadata can never
// disagree with the returned rows.
func (r *CommunityRepository) filtered(search string) *gorm.DB {
	q := r.DB.Model(&model.Community{}).Where("is_active = ?", true)
	if search != "" {
		p := "%" + strings.ToLower(search) + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(location) LIKE ?)", p, p, p)
	}
	return q
}

func (r *CommunityRepository) List(search string, offset, limit int) ([]model.Community, int64, error) {
	var total int64
	if err := r.filtered(search).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	list := make([]model.Community, 0, limit)
	err := r.filtered(search).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, total, err
}

// Search is the typeahead lookup; unlike List it also matches the code.
func (r *CommunityRepository) Search(term string, limit int) ([]model.Community, error) {
	p := "%" + strings.ToLower(term) + "%"
	list := make([]model.Community, 0, limit)
	err := r.DB.
		Where("is_active = ?", true).
		Where("(LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(location) LIKE ? OR LOWER(community_code) LIKE ?)", p, p, p, p).
		Order("name ASC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *CommunityRepository) FindActiveByID(id uint64) (*model.Community, error) {
	var community model.Community
	err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&community).Error
	return &community, err
}

func (r *CommunityRepository) FindActiveByCode(code string) (*model.Community, error) {
	var community model.Community
	err := r.DB.Where("community_code = ? AND is_active = ?", code, true).First(&community).Error
	return &community, err
}

// CodeExists checks every row, active or not: the code column carries a
// global unique index, so a soft-deleted community still holds its code.
func (r *CommunityRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Community{}).
		Where("community_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *CommunityRepository) Create(c *model.Community) error {
	return r.DB.Create(c).Error
}

func (r *CommunityRepository) Update(id uint64, fields map[string]any) (int64, error) {
	tx := r.DB.Model(&model.Community{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(fields)
	return tx.RowsAffected, tx.Error
}

func (r *CommunityRepository) SoftDelete(id uint64) (int64, error) {
	tx := r.DB.Model(&model.Community{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return tx.RowsAffected, tx.Error
}
