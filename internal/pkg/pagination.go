package pkg

import "strconv"

// MaxPageLimit caps the page size on every listing endpoint.
const MaxPageLimit = 100

var ErrInvalidLimit = BadRequest("limit must be greater than zero")

type PageQuery struct {
	Page  int
	Limit int
}

func (q PageQuery) Offset() int { return (q.Page - 1) * q.Limit }

// ParsePageQuery reads page/limit query values. A missing limit falls back to
// defLimit; an explicit limit <= 0 is rejected rather than divided by later.
func ParsePageQuery(pageStr, limitStr string, defLimit int) (PageQuery, error) {
	page := 1
	if pageStr != "" {
		v, err := strconv.Atoi(pageStr)
		if err != nil {
			return PageQuery{}, BadRequest("invalid page")
		}
		if v > 0 {
			page = v
		}
	}

	limit := defLimit
	if limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil || v <= 0 {
			return PageQuery{}, ErrInvalidLimit
		}
		limit = v
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return PageQuery{Page: page, Limit: limit}, nil
}

type Pagination struct {
	Current    int  `json:"current"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPagination derives page metadata from the total row count of the same
// filter the page query ran with.
func NewPagination(q PageQuery, total int64) Pagination {
	limit := int64(q.Limit)
	return Pagination{
		Current:    q.Page,
		TotalPages: int((total + limit - 1) / limit),
		HasNext:    int64(q.Page)*limit < total,
		HasPrev:    q.Page > 1,
	}
}
