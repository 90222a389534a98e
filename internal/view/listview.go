// Package view implements the client-side contracts every screen repeats:
// list-fetch/paginate/mutate/refresh, form validation, the login flow, and
// the role-scoped dashboard.
package view

import (
	"context"
	"errors"

	"github.com/SayubShakya/recipenest-client/internal/client"
)

// ErrMutationInFlight is returned when a mutation is submitted while another
// one is still running, mirroring a disabled submit button.
var ErrMutationInFlight = errors.New("a mutation is already in progress")

// ListView is the list-fetch-mutate-refresh contract shared by the cuisine,
// role, recipe, and user tables: fetch a collection, page through it locally,
// and resynchronize by refetching after every successful mutation.
type ListView[T any] struct {
	fetch func(context.Context) ([]T, error)

	items    []T
	loaded   bool
	fetching bool
	mutating bool
	err      error

	page     int
	pageSize int
}

// NewListView creates a view over a fetch function with the given page size.
func NewListView[T any](pageSize int, fetch func(context.Context) ([]T, error)) *ListView[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &ListView[T]{fetch: fetch, page: 1, pageSize: pageSize}
}

// Fetch loads the collection. On failure the prior list is kept unless the
// view never loaded successfully, in which case it stays empty. The error is
// recorded on the view; fetch failures never panic the caller.
func (v *ListView[T]) Fetch(ctx context.Context) error {
	v.fetching = true
	defer func() { v.fetching = false }()

	items, err := v.fetch(ctx)
	if err != nil {
		v.err = err
		if !v.loaded {
			v.items = nil
		}
		v.clampPage()
		return err
	}

	v.items = items
	v.loaded = true
	v.err = nil
	v.clampPage()
	return nil
}

// Mutate runs a create/update/delete action and, on success, refetches the
// collection. There is no local patch of the mutated record. On failure the
// pre-mutation list is untouched so the caller can keep its modal open.
func (v *ListView[T]) Mutate(ctx context.Context, fn func(context.Context) error) error {
	if v.mutating {
		return ErrMutationInFlight
	}
	v.mutating = true
	defer func() { v.mutating = false }()

	if err := fn(ctx); err != nil {
		return err
	}

	// Resynchronize. A refetch failure is surfaced through Err, not as a
	// mutation failure.
	_ = v.Fetch(ctx)
	return nil
}

// Items returns the full fetched collection.
func (v *ListView[T]) Items() []T {
	return v.items
}

// PageItems returns the slice for the current page.
func (v *ListView[T]) PageItems() []T {
	start := (v.page - 1) * v.pageSize
	if start >= len(v.items) {
		return nil
	}
	end := start + v.pageSize
	if end > len(v.items) {
		end = len(v.items)
	}
	return v.items[start:end]
}

// Page returns the current page, always within [1, TotalPages].
func (v *ListView[T]) Page() int {
	return v.page
}

// TotalPages is ceil(len/pageSize), never below 1.
func (v *ListView[T]) TotalPages() int {
	pages := (len(v.items) + v.pageSize - 1) / v.pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// SetPage moves to the given page, clamped into range.
func (v *ListView[T]) SetPage(page int) {
	v.page = page
	v.clampPage()
}

func (v *ListView[T]) NextPage() {
	v.SetPage(v.page + 1)
}

func (v *ListView[T]) PrevPage() {
	v.SetPage(v.page - 1)
}

// SetPageSize changes the page size and re-clamps the current page.
func (v *ListView[T]) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	v.pageSize = size
	v.clampPage()
}

func (v *ListView[T]) PageSize() int {
	return v.pageSize
}

// Err returns the recorded fetch error, nil after a successful fetch.
func (v *ListView[T]) Err() error {
	return v.err
}

// ErrStatus returns the HTTP status behind the recorded error, or 0 for
// network-level failures and clean views.
func (v *ListView[T]) ErrStatus() int {
	var apiErr *client.APIError
	if errors.As(v.err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Loaded reports whether the view ever fetched successfully.
func (v *ListView[T]) Loaded() bool {
	return v.loaded
}

// Fetching reports whether a fetch is in progress.
func (v *ListView[T]) Fetching() bool {
	return v.fetching
}

func (v *ListView[T]) clampPage() {
	if v.page < 1 {
		v.page = 1
	}
	if max := v.TotalPages(); v.page > max {
		v.page = max
	}
}
