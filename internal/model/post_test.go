package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Offset(t *testing.T) {
	tests := []struct {
		name string
		req  PageRequest
		want int
	}{
		{name: "first page", req: PageRequest{Page: 1, Limit: 10}, want: 0},
		{name: "second page", req: PageRequest{Page: 2, Limit: 10}, want: 10},
		{name: "zero page", req: PageRequest{Page: 0, Limit: 10}, want: 0},
		{name: "zero limit", req: PageRequest{Page: 3, Limit: 0}, want: 0},
		{name: "huge page saturates", req: PageRequest{Page: 200_000_000_000_000_000, Limit: 100}, want: math.MaxInt},
		{name: "max page", req: PageRequest{Page: math.MaxInt, Limit: 2}, want: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.Offset()
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(PageRequest{Page: 2, Limit: 10}, 15)
	assert.Equal(t, Pagination{Total: 15, Page: 2, Limit: 10, TotalPages: 2}, p)

	assert.Equal(t, 0, NewPagination(PageRequest{Page: 1, Limit: 0}, 15).TotalPages)
}
