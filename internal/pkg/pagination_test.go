package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageQuery(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		limit    string
		defLimit int
		want     PageQuery
		wantErr  bool
	}{
		{name: "defaults", page: "", limit: "", defLimit: 10, want: PageQuery{Page: 1, Limit: 10}},
		{name: "explicit", page: "3", limit: "25", defLimit: 10, want: PageQuery{Page: 3, Limit: 25}},
		{name: "zero limit rejected", page: "1", limit: "0", defLimit: 10, wantErr: true},
		{name: "negative limit rejected", page: "1", limit: "-5", defLimit: 10, wantErr: true},
		{name: "garbage limit rejected", page: "1", limit: "abc", defLimit: 10, wantErr: true},
		{name: "garbage page rejected", page: "abc", limit: "", defLimit: 10, wantErr: true},
		{name: "page below one clamps", page: "0", limit: "", defLimit: 10, want: PageQuery{Page: 1, Limit: 10}},
		{name: "limit capped", page: "1", limit: "5000", defLimit: 10, want: PageQuery{Page: 1, Limit: MaxPageLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageQuery(tt.page, tt.limit, tt.defLimit)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageQueryOffset(t *testing.T) {
	assert.Equal(t, 0, PageQuery{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, PageQuery{Page: 5, Limit: 10}.Offset())
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		want  Pagination
	}{
		{"empty", 1, 10, 0, Pagination{Current: 1, TotalPages: 0, HasNext: false, HasPrev: false}},
		{"single partial page", 1, 10, 7, Pagination{Current: 1, TotalPages: 1, HasNext: false, HasPrev: false}},
		{"exact boundary", 2, 10, 20, Pagination{Current: 2, TotalPages: 2, HasNext: false, HasPrev: true}},
		{"middle page", 2, 10, 35, Pagination{Current: 2, TotalPages: 4, HasNext: true, HasPrev: true}},
		{"past the end", 9, 10, 35, Pagination{Current: 9, TotalPages: 4, HasNext: false, HasPrev: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPagination(PageQuery{Page: tt.page, Limit: tt.limit}, tt.total)
			assert.Equal(t, tt.want, got)

			// The metadata identities hold for every case.
			assert.Equal(t, int64(tt.page)*int64(tt.limit) < tt.total, got.HasNext)
			assert.Equal(t, tt.page > 1, got.HasPrev)
		})
	}
}
