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

func newCommunityService(t *testing.T) (*CommunityService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewCommunityService(&mysql.CommunityRepository{DB: db}), db
}

func communityParams(code string) CommunityParams {
	return CommunityParams{
		Name:          "Anna Nagar West",
		CommunityCode: code,
		Location:      "2nd Avenue",
		City:          "Chennai",
		State:         "TN",
		Pincode:       "600040",
	}
}

func TestCreateCommunityAdminOnly(t *testing.T) {
	svc, db := newCommunityService(t)
	seed := seedCommunity(t, db, "SEED000")
	resident := seedUser(t, db, "r@example.com", "1111111111", seed.ID, model.RoleResident)
	admin := seedUser(t, db, "a@example.com", "2222222222", seed.ID, model.RoleAdmin)

	_, err := svc.Create(resident, communityParams("ANNA001"))
	requireAppErr(t, err, http.StatusForbidden)

	created, err := svc.Create(admin, communityParams("ANNA001"))
	require.NoError(t, err)
	assert.Equal(t, "ANNA001", created.CommunityCode)
	assert.True(t, created.IsActive)
}

func TestCreateCommunityDuplicateCode(t *testing.T) {
	svc, db := newCommunityService(t)
	seed := seedCommunity(t, db, "ANNA001")
	admin := seedUser(t, db, "a@example.com", "2222222222", seed.ID, model.RoleAdmin)

	_, err := svc.Create(admin, communityParams("ANNA001"))
	requireAppErr(t, err, http.StatusBadRequest)
}

func TestUpdateAndDeleteCommunityAdminOnly(t *testing.T) {
	svc, db := newCommunityService(t)
	target := seedCommunity(t, db, "ANNA001")
	resident := seedUser(t, db, "r@example.com", "1111111111", target.ID, model.RoleResident)
	admin := seedUser(t, db, "a@example.com", "2222222222", target.ID, model.RoleAdmin)

	_, err := svc.Update(resident, target.ID, communityParams("ANNA001"))
	requireAppErr(t, err, http.StatusForbidden)

	p := communityParams("ANNA001")
	p.Name = "Anna Nagar East"
	updated, err := svc.Update(admin, target.ID, p)
	require.NoError(t, err)
	assert.Equal(t, "Anna Nagar East", updated.Name)

	err = svc.Delete(resident, target.ID)
	requireAppErr(t, err, http.StatusForbidden)

	require.NoError(t, svc.Delete(admin, target.ID))

	_, err = svc.GetByID(target.ID)
	requireAppErr(t, err, http.StatusNotFound)

	// The row survives as inactive and its code stays reserved.
	var row model.Community
	require.NoError(t, db.First(&row, target.ID).Error)
	assert.False(t, row.IsActive)

	_, err = svc.Create(admin, communityParams("ANNA001"))
	requireAppErr(t, err, http.StatusBadRequest)
}

func TestCommunitySearch(t *testing.T) {
	svc, db := newCommunityService(t)
	anna := seedCommunity(t, db, "ANNA001")
	seedCommunity(t, db, "VELA002")

	_, err := svc.Search("")
	requireAppErr(t, err, http.StatusBadRequest)

	list, err := svc.Search("anna001")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, anna.ID, list[0].ID)
}

func TestCommunityList(t *testing.T) {
	svc, db := newCommunityService(t)
	seedCommunity(t, db, "ANNA001")
	seedCommunity(t, db, "VELA002")
	hidden := seedCommunity(t, db, "GONE003")
	require.NoError(t, db.Model(hidden).Update("is_active", false).Error)

	list, page, err := svc.List("", pkg.PageQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, pkg.Pagination{Current: 1, TotalPages: 1}, page)

	list, _, err = svc.List("vela", pkg.PageQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "VELA002", list[0].CommunityCode)
}
