package mysql

import (
	"tangle/internal/model"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func (r *ReportRepository) Exists(postID, reporterID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Report{}).
		Where("post_id = ? AND reporter_id = ?", postID, reporterID).
		Count(&count).Error
	return count > 0, err
}

// Create relies on the (post_id, reporter_id) unique index as the last line
// of dedup; a race past Exists surfaces as gorm.ErrDuplicatedKey.
func (r *ReportRepository) Create(report *model.Report) error {
	return r.DB.Create(report).Error
}
