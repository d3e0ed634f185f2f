package model

import "time"

type Community struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:128;not null" json:"name"`
	CommunityCode string    `gorm:"uniqueIndex;size:32;not null" json:"communityCode"`
	Location      string    `gorm:"size:255" json:"location"`
	City          string    `gorm:"size:64" json:"city"`
	State         string    `gorm:"size:64" json:"state"`
	Pincode       string    `gorm:"size:10" json:"pincode"`
	Description   string    `gorm:"type:text" json:"description"`
	IsActive      bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
