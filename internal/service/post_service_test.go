package service

import (
	"net/http"
	"testing"

	"tangle/internal/model"
	"tangle/internal/pkg"
	"tangle/internal/repository/mysql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPostService(t *testing.T) (*PostService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewPostService(&mysql.PostRepository{DB: db}), db
}

func firstPage(limit int) pkg.PageQuery {
	return pkg.PageQuery{Page: 1, Limit: limit}
}

func TestCreatePostForcesActorCommunity(t *testing.T) {
	svc, db := newPostService(t)
	home := seedCommunity(t, db, "ANNA001")
	seedCommunity(t, db, "OTHER002")
	actor := seedUser(t, db, "asha@example.com", "9876543210", home.ID, model.RoleResident)

	price := 500.0
	view, err := svc.Create(actor, PostParams{
		Title:       "Selling a cycle",
		Description: "Barely used",
		Category:    model.CategoryBuySell,
		Type:        model.PostTypeOffer,
		Price:       &price,
	})
	require.NoError(t, err)
	assert.Equal(t, home.ID, view.CommunityID)
	assert.Equal(t, "ANNA001", view.CommunityCode)
	assert.Equal(t, actor.ID, view.UserID)
	assert.Equal(t, "Test User", view.AuthorName)
	require.NotNil(t, view.Price)
	assert.Equal(t, 500.0, *view.Price)
}

func TestUpdatePostNotOwner(t *testing.T) {
	svc, db := newPostService(t)
	community := seedCommunity(t, db, "ANNA001")
	owner := seedUser(t, db, "owner@example.com", "1111111111", community.ID, model.RoleResident)
	stranger := seedUser(t, db, "other@example.com", "2222222222", community.ID, model.RoleResident)
	post := seedPost(t, db, owner.ID, community.ID, "original title")

	_, err := svc.Update(stranger, post.ID, PostParams{Title: "hijacked"})
	requireAppErr(t, err, http.StatusNotFound)

	var kept model.Post
	require.NoError(t, db.First(&kept, post.ID).Error)
	assert.Equal(t, "original title", kept.Title)
}

func TestDeletePostIsSoftAndIdempotent(t *testing.T) {
	svc, db := newPostService(t)
	community := seedCommunity(t, db, "ANNA001")
	owner := seedUser(t, db, "owner@example.com", "1111111111", community.ID, model.RoleResident)
	post := seedPost(t, db, owner.ID, community.ID, "going away")

	require.NoError(t, svc.Delete(owner, post.ID))

	var row model.Post
	require.NoError(t, db.First(&row, post.ID).Error)
	assert.False(t, row.IsActive, "delete must flip the flag, not remove the row")

	// A second delete behaves like the post never existed.
	err := svc.Delete(owner, post.ID)
	requireAppErr(t, err, http.StatusNotFound)

	_, err = svc.Get(post.ID)
	requireAppErr(t, err, http.StatusNotFound)
}

func TestGetIncrementsViewCount(t *testing.T) {
	svc, db := newPostService(t)
	community := seedCommunity(t, db, "ANNA001")
	owner := seedUser(t, db, "owner@example.com", "1111111111", community.ID, model.RoleResident)
	post := seedPost(t, db, owner.ID, community.ID, "popular")

	for want := int64(0); want < 3; want++ {
		view, err := svc.Get(post.ID)
		require.NoError(t, err)
		assert.Equal(t, want, view.ViewCount)
	}

	var row model.Post
	require.NoError(t, db.First(&row, post.ID).Error)
	assert.Equal(t, int64(3), row.ViewCount)
}

func TestListFilters(t *testing.T) {
	svc, db := newPostService(t)
	c1 := seedCommunity(t, db, "ANNA001")
	c2 := seedCommunity(t, db, "OTHER002")
	u1 := seedUser(t, db, "a@example.com", "1111111111", c1.ID, model.RoleResident)
	u2 := seedUser(t, db, "b@example.com", "2222222222", c2.ID, model.RoleResident)

	cycle := seedPost(t, db, u1.ID, c1.ID, "Cycle for sale")
	require.NoError(t, db.Model(cycle).Update("category", model.CategoryBuySell).Error)
	seedPost(t, db, u1.ID, c1.ID, "Street light broken")
	seedPost(t, db, u2.ID, c2.ID, "Garage sale")

	list, page, err := svc.List(mysql.PostFilter{Category: model.CategoryBuySell}, firstPage(10))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, cycle.ID, list[0].ID)
	assert.Equal(t, pkg.Pagination{Current: 1, TotalPages: 1}, page)

	list, _, err = svc.List(mysql.PostFilter{CommunityID: c1.ID}, firstPage(10))
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Search is case-insensitive and matches title or description.
	list, _, err = svc.List(mysql.PostFilter{Search: "CYCLE"}, firstPage(10))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, cycle.ID, list[0].ID)
}

func TestListExcludesInactiveAndPaginates(t *testing.T) {
	svc, db := newPostService(t)
	community := seedCommunity(t, db, "ANNA001")
	owner := seedUser(t, db, "a@example.com", "1111111111", community.ID, model.RoleResident)

	for i := 0; i < 5; i++ {
		seedPost(t, db, owner.ID, community.ID, "post")
	}
	hidden := seedPost(t, db, owner.ID, community.ID, "hidden")
	require.NoError(t, db.Model(hidden).Update("is_active", false).Error)

	list, page, err := svc.List(mysql.PostFilter{}, firstPage(2))
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, pkg.Pagination{Current: 1, TotalPages: 3, HasNext: true}, page)

	list, page, err = svc.List(mysql.PostFilter{}, pkg.PageQuery{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, pkg.Pagination{Current: 3, TotalPages: 3, HasPrev: true}, page)
}

func TestMyPosts(t *testing.T) {
	svc, db := newPostService(t)
	community := seedCommunity(t, db, "ANNA001")
	mine := seedUser(t, db, "a@example.com", "1111111111", community.ID, model.RoleResident)
	other := seedUser(t, db, "b@example.com", "2222222222", community.ID, model.RoleResident)

	seedPost(t, db, mine.ID, community.ID, "mine")
	seedPost(t, db, other.ID, community.ID, "not mine")

	list, _, err := svc.MyPosts(mine, firstPage(10))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "mine", list[0].Title)
}
