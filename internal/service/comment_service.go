package service

import (
	"errors"

	"tangle/internal/authz"
	"tangle/internal/model"
	"tangle/internal/pkg"
	"tangle/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommentService struct {
	repo  *mysql.CommentRepository
	posts *mysql.PostRepository
}

func NewCommentService(repo *mysql.CommentRepository, posts *mysql.PostRepository) *CommentService {
	return &CommentService{repo: repo, posts: posts}
}

func (s *CommentService) ListByPost(postID uint64, q pkg.PageQuery) ([]model.CommentView, pkg.Pagination, error) {
	list, total, err := s.repo.ListByPost(postID, q.Offset(), q.Limit)
	if err != nil {
		return nil, pkg.Pagination{}, err
	}
	return list, pkg.NewPagination(q, total), nil
}

// Create requires the target post to still be live; commenting on a deleted
// post reads as the post not existing.
func (s *CommentService) Create(actor *model.User, postID uint64, content string) (*model.CommentView, error) {
	post, err := s.posts.FindActiveByID(postID)
	res, err := postResource(post, err, authz.KindComment)
	if err != nil {
		return nil, err
	}
	d := authz.Authorize(actorOf(actor), res, authz.ActionCreate)
	if !d.Allowed {
		return nil, denyError(d, "Post not found")
	}

	comment := &model.Comment{
		Content:  content,
		UserID:   actor.ID,
		PostID:   postID,
		IsActive: true,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}
	return s.repo.ViewByID(comment.ID)
}

func (s *CommentService) Update(actor *model.User, id uint64, content string) (*model.CommentView, error) {
	res, err := s.snapshot(id)
	if err != nil {
		return nil, err
	}
	d := authz.Authorize(actorOf(actor), res, authz.ActionUpdate)
	if !d.Allowed {
		return nil, denyError(d, "Comment not found or unauthorized")
	}

	affected, err := s.repo.UpdateOwned(id, actor.ID, content)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, pkg.NotFound("Comment not found or unauthorized")
	}
	return s.repo.ViewByID(id)
}

func (s *CommentService) Delete(actor *model.User, id uint64) error {
	res, err := s.snapshot(id)
	if err != nil {
		return err
	}
	d := authz.Authorize(actorOf(actor), res, authz.ActionDelete)
	if !d.Allowed {
		return denyError(d, "Comment not found or unauthorized")
	}

	affected, err := s.repo.SoftDeleteOwned(id, actor.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.NotFound("Comment not found or unauthorized")
	}
	return nil
}

func (s *CommentService) snapshot(id uint64) (authz.Resource, error) {
	view, err := s.repo.ViewByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return authz.Resource{Kind: authz.KindComment}, nil
		}
		return authz.Resource{}, err
	}
	return authz.Resource{
		Kind:    authz.KindComment,
		Exists:  true,
		Active:  view.IsActive,
		OwnerID: view.UserID,
	}, nil
}
