package mysql

import (
	"tangle/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindActiveByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&user).Error
	return &user, err
}

// FindActiveByEmailOrPhone resolves the login identifier, which may be
// either column.
func (r *UserRepository) FindActiveByEmailOrPhone(identifier string) (*model.User, error) {
	var user model.User
	err := r.DB.
		Where("(email = ? OR phone_number = ?) AND is_active = ?", identifier, identifier, true).
		First(&user).Error
	return &user, err
}

func (r *UserRepository) ExistsByEmailOrPhone(email, phone string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("(email = ? OR phone_number = ?) AND is_active = ?", email, phone, true).
		Count(&count).Error
	return count > 0, err
}

// ProfileByID returns the user joined with their community fields. The same
// projection backs register, login, profile read and profile update.
func (r *UserRepository) ProfileByID(id uint64) (*model.UserView, error) {
	var view model.UserView
	err := r.DB.Model(&model.User{}).
		Select(`users.*, c.name AS community_name, c.community_code AS community_code,
			c.location AS community_location, c.city AS community_city,
			c.state AS community_state, c.pincode AS community_pincode`).
		Joins("JOIN communities c ON c.id = users.community_id").
		Where("users.id = ? AND users.is_active = ?", id, true).
		Scan(&view).Error
	if err != nil {
		return nil, err
	}
	if view.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &view, nil
}

func (r *UserRepository) UpdateProfile(id uint64, fields map[string]any) (int64, error) {
	tx := r.DB.Model(&model.User{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(fields)
	return tx.RowsAffected, tx.Error
}

func (r *UserRepository) Stats(userID uint64) (*model.UserStats, error) {
	var stats model.UserStats

	if err := r.DB.Model(&model.Post{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&stats.Posts).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.Comment{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&stats.Comments).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.Post{}).
		Select("COALESCE(SUM(view_count), 0)").
		Where("user_id = ? AND is_active = ?", userID, true).
		Scan(&stats.TotalViews).Error; err != nil {
		return nil, err
	}
	// Likes are not a feature yet; the field stays for the client contract.
	stats.TotalLikes = 0

	return &stats, nil
}
