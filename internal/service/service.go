package service

import (
	"errors"

	"tangle/internal/authz"
	"tangle/internal/model"
	"tangle/internal/pkg"

	"gorm.io/gorm"
)

func actorOf(u *model.User) authz.Actor {
	if u == nil {
		return authz.Actor{}
	}
	return authz.Actor{
		ID:            u.ID,
		CommunityID:   u.CommunityID,
		Role:          u.Role,
		Authenticated: true,
	}
}

// denyError translates a policy denial into the client-facing error.
// Ownership denials arrive here as ReasonNotFound already, so the not-found
// message doubles as the "not found or unauthorized" response.
func denyError(d authz.Decision, notFoundMsg string) error {
	switch d.Reason {
	case authz.ReasonUnauthenticated:
		return pkg.Unauthorized("Authentication required")
	case authz.ReasonAdminOnly:
		return pkg.Forbidden("Admin access required")
	case authz.ReasonDuplicateReport:
		return pkg.BadRequest("You have already reported this post")
	default:
		return pkg.NotFound(notFoundMsg)
	}
}

// postResource builds the policy snapshot from an active-post lookup.
func postResource(post *model.Post, err error, kind authz.Kind) (authz.Resource, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return authz.Resource{Kind: kind}, nil
		}
		return authz.Resource{}, err
	}
	return authz.Resource{
		Kind:    kind,
		Exists:  true,
		Active:  post.IsActive,
		OwnerID: post.UserID,
	}, nil
}
