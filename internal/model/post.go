package model

import "time"

const (
	CategoryHelpRequest  = "HELP_REQUEST"
	CategoryHelpOffer    = "HELP_OFFER"
	CategoryBuySell      = "BUY_SELL"
	CategoryBusiness     = "BUSINESS"
	CategoryService      = "SERVICE"
	CategoryJobGig       = "JOB_GIG"
	CategoryEvent        = "EVENT"
	CategoryAnnouncement = "ANNOUNCEMENT"
	CategoryLostFound    = "LOST_FOUND"
	CategoryVolunteer    = "VOLUNTEER"
)

const (
	PostTypeRequest      = "REQUEST"
	PostTypeOffer        = "OFFER"
	PostTypeAnnouncement = "ANNOUNCEMENT"
)

type Post struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"size:32;not null;index" json:"category"`
	Type        string    `gorm:"size:16;not null" json:"type"`
	ContactInfo string    `gorm:"size:255" json:"contactInfo"`
	Price       *float64  `json:"price"`
	Location    string    `gorm:"size:255" json:"location"`
	Images      string    `gorm:"type:text" json:"images"`
	ViewCount   int64     `gorm:"not null;default:0" json:"viewCount"`
	UserID      uint64    `gorm:"not null;index" json:"userId"`
	CommunityID uint64    `gorm:"not null;index" json:"communityId"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
