package service

import (
	"errors"

	"tangle/internal/authz"
	"tangle/internal/model"
	"tangle/internal/pkg"
	"tangle/internal/repository/mysql"

	"gorm.io/gorm"
)

const searchResultCap = 20

type CommunityService struct {
	repo *mysql.CommunityRepository
}

func NewCommunityService(repo *mysql.CommunityRepository) *CommunityService {
	return &CommunityService{repo: repo}
}

type CommunityParams struct {
	Name          string
	CommunityCode string
	Location      string
	City          string
	State         string
	Pincode       string
	Description   string
}

func (s *CommunityService) List(search string, q pkg.PageQuery) ([]model.Community, pkg.Pagination, error) {
	list, total, err := s.repo.List(search, q.Offset(), q.Limit)
	if err != nil {
		return nil, pkg.Pagination{}, err
	}
	return list, pkg.NewPagination(q, total), nil
}

func (s *CommunityService) Search(term string) ([]model.Community, error) {
	if term == "" {
		return nil, pkg.BadRequest("Search query is required")
	}
	return s.repo.Search(term, searchResultCap)
}

func (s *CommunityService) GetByID(id uint64) (*model.Community, error) {
	community, err := s.repo.FindActiveByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NotFound("Community not found")
	}
	return community, err
}

func (s *CommunityService) GetByCode(code string) (*model.Community, error) {
	community, err := s.repo.FindActiveByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NotFound("Community not found")
	}
	return community, err
}

func (s *CommunityService) Create(actor *model.User, p CommunityParams) (*model.Community, error) {
	d := authz.Authorize(actorOf(actor), authz.Resource{Kind: authz.KindCommunity}, authz.ActionCreate)
	if !d.Allowed {
		return nil, denyError(d, "Community not found")
	}

	exists, err := s.repo.CodeExists(p.CommunityCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pkg.BadRequest("Community code already exists")
	}

	community := &model.Community{
		Name:          p.Name,
		CommunityCode: p.CommunityCode,
		Location:      p.Location,
		City:          p.City,
		State:         p.State,
		Pincode:       p.Pincode,
		Description:   p.Description,
		IsActive:      true,
	}
	if err := s.repo.Create(community); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkg.BadRequest("Community code already exists")
		}
		return nil, err
	}
	return community, nil
}

func (s *CommunityService) Update(actor *model.User, id uint64, p CommunityParams) (*model.Community, error) {
	res, err := s.snapshot(id)
	if err != nil {
		return nil, err
	}
	d := authz.Authorize(actorOf(actor), res, authz.ActionUpdate)
	if !d.Allowed {
		return nil, denyError(d, "Community not found")
	}

	fields := map[string]any{
		"name":        p.Name,
		"location":    p.Location,
		"city":        p.City,
		"state":       p.State,
		"pincode":     p.Pincode,
		"description": p.Description,
	}
	affected, err := s.repo.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, pkg.NotFound("Community not found")
	}
	return s.GetByID(id)
}

func (s *CommunityService) Delete(actor *model.User, id uint64) error {
	res, err := s.snapshot(id)
	if err != nil {
		return err
	}
	d := authz.Authorize(actorOf(actor), res, authz.ActionDelete)
	if !d.Allowed {
		return denyError(d, "Community not found")
	}

	affected, err := s.repo.SoftDelete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.NotFound("Community not found")
	}
	return nil
}

func (s *CommunityService) snapshot(id uint64) (authz.Resource, error) {
	_, err := s.repo.FindActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return authz.Resource{Kind: authz.KindCommunity}, nil
		}
		return authz.Resource{}, err
	}
	return authz.Resource{Kind: authz.KindCommunity, Exists: true, Active: true}, nil
}
