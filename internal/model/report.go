package model

import "time"

const ReportStatusPending = "PENDING"

type Report struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	PostID     uint64    `gorm:"not null;uniqueIndex:uk_post_reporter" json:"postId"`
	ReporterID uint64    `gorm:"not null;uniqueIndex:uk_post_reporter" json:"reporterId"`
	Reason     string    `gorm:"size:255;not null" json:"reason"`
	Type       string    `gorm:"size:32" json:"type"`
	Status     string    `gorm:"size:16;not null;default:PENDING" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
