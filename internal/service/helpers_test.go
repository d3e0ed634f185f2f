package service

import (
	"testing"
	"time"

	"tangle/internal/model"
	"tangle/internal/pkg"
	"tangle/internal/repository/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.Post{},
		&model.Comment{},
		&model.Report{},
	))
	return db
}

func newTokenRepo(t *testing.T) *redis.TokenRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return &redis.TokenRepository{RDB: client, TTL: time.Minute}
}

func seedCommunity(t *testing.T, db *gorm.DB, code string) *model.Community {
	t.Helper()
	community := &model.Community{
		Name:          "Community " + code,
		CommunityCode: code,
		Location:      "Main Street",
		City:          "Chennai",
		State:         "TN",
		Pincode:       "600001",
		IsActive:      true,
	}
	require.NoError(t, db.Create(community).Error)
	return community
}

func seedUser(t *testing.T, db *gorm.DB, email, phone string, communityID uint64, role string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		FullName:    "Test User",
		Email:       email,
		PhoneNumber: phone,
		Password:    string(hash),
		Address:     "12 Test Road",
		Locality:    "Anna Nagar",
		Pincode:     "600001",
		Role:        role,
		CommunityID: communityID,
		IsActive:    true,
		IsVerified:  true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, userID, communityID uint64, title string) *model.Post {
	t.Helper()
	post := &model.Post{
		Title:       title,
		Description: "description of " + title,
		Category:    model.CategoryAnnouncement,
		Type:        model.PostTypeAnnouncement,
		UserID:      userID,
		CommunityID: communityID,
		IsActive:    true,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func requireAppErr(t *testing.T, err error, status int) {
	t.Helper()
	var appErr *pkg.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, status, appErr.Status)
}
