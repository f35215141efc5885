package pkg

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codezest/catalog/internal/domain"
)

// ParsePageRequest extracts page and limit from query parameters.
// Missing or invalid values fall back to page 1 / limit 10; limit is capped
// at 100.
func ParsePageRequest(c *gin.Context) domain.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(domain.DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(domain.DefaultLimit)))
	return domain.PageRequest{Page: page, Limit: limit}.Normalize()
}

// SlicePage returns the [skip, skip+limit) window of items for the requested
// page. Requests beyond the last page yield an empty (non-nil) slice.
func SlicePage[T any](items []T, req domain.PageRequest) []T {
	skip := req.Skip()
	if skip >= len(items) {
		return []T{}
	}
	end := skip + req.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

// Branch is one filter mode of a list request. Branches are evaluated in
// declaration order and only the first applicable one runs; filters are
// never combined. Fetch materializes the full matching set, which is then
// counted and sliced in memory.
type Branch[T any] struct {
	When  bool
	Fetch func(ctx context.Context) ([]T, error)
}

// PageFetcher is the no-filter access path: storage-level skip/take plus a
// separate total count.
type PageFetcher[T any] func(ctx context.Context, skip, take int) ([]T, int64, error)

// ResolveList resolves a list request into one page of results plus
// metadata. The first applicable branch wins; with no applicable branch,
// pagination is pushed down to storage via fallback. Pages beyond the end
// return empty data with metadata still computed from the true total.
func ResolveList[T any](ctx context.Context, req domain.PageRequest, branches []Branch[T], fallback PageFetcher[T]) (*domain.PageResult[T], error) {
	req = req.Normalize()

	for _, b := range branches {
		if !b.When {
			continue
		}
		matched, err := b.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		return &domain.PageResult[T]{
			Data:       SlicePage(matched, req),
			Pagination: domain.NewPageMeta(req, int64(len(matched))),
		}, nil
	}

	data, total, err := fallback(ctx, req.Skip(), req.Limit)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = []T{}
	}
	return &domain.PageResult[T]{
		Data:       data,
		Pagination: domain.NewPageMeta(req, total),
	}, nil
}

// MapPage converts the data of a page result, keeping the metadata.
func MapPage[T, U any](in *domain.PageResult[T], fn func(T) U) *domain.PageResult[U] {
	out := &domain.PageResult[U]{
		Data:       make([]U, 0, len(in.Data)),
		Pagination: in.Pagination,
	}
	for _, item := range in.Data {
		out.Data = append(out.Data, fn(item))
	}
	return out
}
