package service

import (
	"encoding/json"
	"errors"
	"time"

	"tangle/internal/authz"
	"tangle/internal/model"
	"tangle/internal/pkg"
	"tangle/internal/repository/mysql"

	"gorm.io/gorm"
)

type PostService struct {
	repo *mysql.PostRepository
}

func NewPostService(repo *mysql.PostRepository) *PostService {
	return &PostService{repo: repo}
}

type PostParams struct {
	Title       string
	Description string
	Category    string
	Type        string
	ContactInfo string
	Price       *float64
	Location    string
	Images      []string
}

func (s *PostService) List(f mysql.PostFilter, q pkg.PageQuery) ([]model.PostView, pkg.Pagination, error) {
	list, total, err := s.repo.List(f, q.Offset(), q.Limit)
	if err != nil {
		return nil, pkg.Pagination{}, err
	}
	return list, pkg.NewPagination(q, total), nil
}

// Get returns the detail view and bumps the view counter. The returned view
// carries the pre-increment count; the next fetch sees the bump.
func (s *PostService) Get(id uint64) (*model.PostView, error) {
	view, err := s.repo.ViewByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NotFound("Post not found")
	}
	if err != nil {
		return nil, err
	}
	if err := s.repo.IncrementViews(id); err != nil {
		return nil, err
	}
	return view, nil
}

// Create forces the post into the actor's community; a client-supplied
// community id is never honored.
func (s *PostService) Create(actor *model.User, p PostParams) (*model.PostView, error) {
	d := authz.Authorize(actorOf(actor), authz.Resource{Kind: authz.KindPost}, authz.ActionCreate)
	if !d.Allowed {
		return nil, denyError(d, "Post not found")
	}

	post := &model.Post{
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Type:        p.Type,
		ContactInfo: p.ContactInfo,
		Price:       p.Price,
		Location:    p.Location,
		Images:      marshalImages(p.Images),
		UserID:      actor.ID,
		CommunityID: actor.CommunityID,
		IsActive:    true,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return s.repo.ViewByID(post.ID)
}

func (s *PostService) Update(actor *model.User, id uint64, p PostParams) (*model.PostView, error) {
	post, err := s.repo.FindActiveByID(id)
	res, err := postResource(post, err, authz.KindPost)
	if err != nil {
		return nil, err
	}
	d := authz.Authorize(actorOf(actor), res, authz.ActionUpdate)
	if !d.Allowed {
		return nil, denyError(d, "Post not found or unauthorized")
	}

	fields := map[string]any{
		"title":        p.Title,
		"description":  p.Description,
		"category":     p.Category,
		"type":         p.Type,
		"contact_info": p.ContactInfo,
		"price":        p.Price,
		"location":     p.Location,
		"images":       marshalImages(p.Images),
	}
	affected, err := s.repo.UpdateOwned(id, actor.ID, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Lost a race with a concurrent delete.
		return nil, pkg.NotFound("Post not found or unauthorized")
	}
	return s.repo.ViewByID(id)
}

func (s *PostService) Delete(actor *model.User, id uint64) error {
	post, err := s.repo.FindActiveByID(id)
	res, err := postResource(post, err, authz.KindPost)
	if err != nil {
		return err
	}
	d := authz.Authorize(actorOf(actor), res, authz.ActionDelete)
	if !d.Allowed {
		return denyError(d, "Post not found or unauthorized")
	}

	affected, err := s.repo.SoftDeleteOwned(id, actor.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.NotFound("Post not found or unauthorized")
	}
	return nil
}

func (s *PostService) MyPosts(actor *model.User, q pkg.PageQuery) ([]model.PostView, pkg.Pagination, error) {
	return s.List(mysql.PostFilter{UserID: actor.ID}, q)
}

func (s *PostService) Stats() (*model.PostStats, error) {
	return s.repo.Stats(time.Now())
}

func marshalImages(images []string) string {
	if images == nil {
		images = []string{}
	}
	raw, _ := json.Marshal(images)
	return string(raw)
}
