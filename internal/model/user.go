package model

import "time"

const (
	RoleResident        = "RESIDENT"
	RoleBusinessOwner   = "BUSINESS_OWNER"
	RoleServiceProvider = "SERVICE_PROVIDER"
	RoleAdmin           = "ADMIN"
)

type User struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	FullName       string    `gorm:"size:100;not null" json:"fullName"`
	Email          string    `gorm:"uniqueIndex;size:128;not null" json:"email"`
	PhoneNumber    string    `gorm:"uniqueIndex;size:20;not null" json:"phoneNumber"`
	Password       string    `gorm:"size:255;not null" json:"-"`
	Address        string    `gorm:"size:255" json:"address"`
	Locality       string    `gorm:"size:128" json:"locality"`
	Pincode        string    `gorm:"size:10" json:"pincode"`
	Role           string    `gorm:"size:20;not null;default:RESIDENT" json:"role"`
	CommunityID    uint64    `gorm:"not null;index" json:"communityId"`
	IsActive       bool      `gorm:"not null;default:true" json:"isActive"`
	IsVerified     bool      `gorm:"not null;default:false" json:"isVerified"`
	ProfilePicture string    `gorm:"size:255" json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
