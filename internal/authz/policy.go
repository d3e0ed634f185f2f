// Package authz is the single place that decides who may do what to which
// row. Handlers and services never re-implement ownership checks; they build
// a resource snapshot, ask Authorize, and act on the decision. Ownership
// mismatches come back as ReasonNotFound so a non-owner cannot learn that the
// resource exists.
package authz

type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
	ActionReport
)

type Kind int

const (
	KindPost Kind = iota
	KindComment
	KindCommunity
)

type Reason int

const (
	ReasonNone Reason = iota
	ReasonUnauthenticated
	ReasonNotFound
	ReasonDuplicateReport
	ReasonAdminOnly
)

// Actor is the requesting identity. A zero Actor is an anonymous caller.
type Actor struct {
	ID            uint64
	CommunityID   uint64
	Role          string
	Authenticated bool
}

// Resource is a snapshot of the target row at decision time. For actions
// without a target row (creating a post) the zero value with Exists unset is
// fine; callers that did a lookup set Exists/Active/OwnerID from the row.
type Resource struct {
	Kind            Kind
	Exists          bool
	Active          bool
	OwnerID         uint64
	AlreadyReported bool
}

type Decision struct {
	Allowed bool
	Reason  Reason
}

func permit() Decision        { return Decision{Allowed: true} }
func deny(r Reason) Decision  { return Decision{Reason: r} }
func (r Resource) live() bool { return r.Exists && r.Active }

// Authorize evaluates the access rules in order; the first match wins.
func Authorize(actor Actor, res Resource, action Action) Decision {
	if action != ActionRead && !actor.Authenticated {
		return deny(ReasonUnauthenticated)
	}

	switch action {
	case ActionRead:
		// Reads are public, but a missing or soft-deleted row is
		// indistinguishable from one that never existed.
		if !res.live() {
			return deny(ReasonNotFound)
		}
		return permit()

	case ActionCreate:
		switch res.Kind {
		case KindComment:
			// Comments attach to a live post; res is the post snapshot.
			if !res.live() {
				return deny(ReasonNotFound)
			}
			return permit()
		case KindCommunity:
			if actor.Role != adminRole {
				return deny(ReasonAdminOnly)
			}
			return permit()
		default:
			return permit()
		}

	case ActionUpdate, ActionDelete:
		if res.Kind == KindCommunity {
			if actor.Role != adminRole {
				return deny(ReasonAdminOnly)
			}
			if !res.live() {
				return deny(ReasonNotFound)
			}
			return permit()
		}
		if !res.live() {
			return deny(ReasonNotFound)
		}
		if actor.ID != res.OwnerID {
			// Surfaced as not-found; see package comment.
			return deny(ReasonNotFound)
		}
		return permit()

	case ActionReport:
		if !res.live() {
			return deny(ReasonNotFound)
		}
		if res.AlreadyReported {
			return deny(ReasonDuplicateReport)
		}
		return permit()
	}

	return deny(ReasonNotFound)
}

const adminRole = "ADMIN"
