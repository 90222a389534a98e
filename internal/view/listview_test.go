package view

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SayubShakya/recipenest-client/internal/client"
)

func staticFetch(items []int) func(context.Context) ([]int, error) {
	return func(context.Context) ([]int, error) {
		return items, nil
	}
}

func TestListViewFetchAndPage(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i + 1
	}
	v := NewListView(10, staticFetch(items))

	require.NoError(t, v.Fetch(context.Background()))
	assert.True(t, v.Loaded())
	assert.NoError(t, v.Err())
	assert.Equal(t, 1, v.Page())
	assert.Equal(t, 3, v.TotalPages())

	assert.Len(t, v.PageItems(), 10)
	assert.Equal(t, 1, v.PageItems()[0])

	v.NextPage()
	assert.Equal(t, 2, v.Page())
	assert.Equal(t, 11, v.PageItems()[0])

	v.SetPage(3)
	assert.Len(t, v.PageItems(), 3)
	assert.Equal(t, 23, v.PageItems()[2])

	// Page is clamped at both ends
	v.NextPage()
	assert.Equal(t, 3, v.Page())
	v.SetPage(99)
	assert.Equal(t, 3, v.Page())
	v.SetPage(-4)
	assert.Equal(t, 1, v.Page())
	v.PrevPage()
	assert.Equal(t, 1, v.Page())
}

// Pages partition the collection: concatenating every page reproduces the
// fetched list exactly, for any page size.
func TestListViewPagesPartitionItems(t *testing.T) {
	items := make([]int, 37)
	for i := range items {
		items[i] = i
	}

	for _, size := range []int{1, 3, 10, 37, 50} {
		t.Run(fmt.Sprintf("size-%d", size), func(t *testing.T) {
			v := NewListView(size, staticFetch(items))
			require.NoError(t, v.Fetch(context.Background()))

			var gathered []int
			for page := 1; page <= v.TotalPages(); page++ {
				v.SetPage(page)
				gathered = append(gathered, v.PageItems()...)
			}
			assert.Equal(t, items, gathered)
		})
	}
}

func TestListViewEmptyCollection(t *testing.T) {
	v := NewListView(10, staticFetch(nil))
	require.NoError(t, v.Fetch(context.Background()))
	assert.Equal(t, 1, v.TotalPages())
	assert.Equal(t, 1, v.Page())
	assert.Empty(t, v.PageItems())
}

func TestListViewKeepsItemsOnFetchFailure(t *testing.T) {
	calls := 0
	fetch := func(context.Context) ([]int, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("network down")
		}
		return []int{1, 2, 3}, nil
	}
	v := NewListView(10, fetch)

	require.NoError(t, v.Fetch(context.Background()))
	assert.Equal(t, []int{1, 2, 3}, v.Items())

	err := v.Fetch(context.Background())
	assert.Error(t, err)
	assert.Equal(t, []int{1, 2, 3}, v.Items(), "prior items survive a failed refetch")
	assert.True(t, v.Loaded())
	assert.EqualError(t, v.Err(), "network down")
}

func TestListViewNeverLoadedStaysEmptyOnFailure(t *testing.T) {
	v := NewListView(10, func(context.Context) ([]int, error) {
		return nil, errors.New("boom")
	})
	assert.Error(t, v.Fetch(context.Background()))
	assert.Empty(t, v.Items())
	assert.False(t, v.Loaded())
}

func TestListViewMutateRefetches(t *testing.T) {
	items := []int{1}
	fetches := 0
	v := NewListView(10, func(context.Context) ([]int, error) {
		fetches++
		return items, nil
	})
	require.NoError(t, v.Fetch(context.Background()))
	require.Equal(t, 1, fetches)

	// The view never patches locally; the refetch picks up the new row
	err := v.Mutate(context.Background(), func(context.Context) error {
		items = []int{1, 2}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
	assert.Equal(t, []int{1, 2}, v.Items())
}

func TestListViewMutateFailureSkipsRefetch(t *testing.T) {
	fetches := 0
	v := NewListView(10, func(context.Context) ([]int, error) {
		fetches++
		return []int{1, 2}, nil
	})
	require.NoError(t, v.Fetch(context.Background()))

	err := v.Mutate(context.Background(), func(context.Context) error {
		return errors.New("rejected")
	})
	assert.EqualError(t, err, "rejected")
	assert.Equal(t, 1, fetches, "no refetch after a failed mutation")
	assert.Equal(t, []int{1, 2}, v.Items())
}

func TestListViewMutateGuardsReentry(t *testing.T) {
	v := NewListView(10, staticFetch([]int{1}))
	require.NoError(t, v.Fetch(context.Background()))

	var inner error
	err := v.Mutate(context.Background(), func(ctx context.Context) error {
		inner = v.Mutate(ctx, func(context.Context) error { return nil })
		return nil
	})
	require.NoError(t, err)
	assert.ErrorIs(t, inner, ErrMutationInFlight)
}

func TestListViewPageClampAfterShrink(t *testing.T) {
	items := make([]int, 25)
	fetch := func(context.Context) ([]int, error) { return items, nil }
	v := NewListView(10, fetch)
	require.NoError(t, v.Fetch(context.Background()))
	v.SetPage(3)

	items = items[:5]
	require.NoError(t, v.Fetch(context.Background()))
	assert.Equal(t, 1, v.Page(), "page snaps back into range after the list shrinks")
}

func TestListViewSetPageSizeReclamps(t *testing.T) {
	v := NewListView(5, staticFetch([]int{1, 2, 3, 4, 5, 6}))
	require.NoError(t, v.Fetch(context.Background()))
	v.SetPage(2)

	v.SetPageSize(10)
	assert.Equal(t, 1, v.Page())
	assert.Equal(t, 1, v.TotalPages())

	v.SetPageSize(0)
	assert.Equal(t, 1, v.PageSize(), "page size floor is 1")
}

func TestListViewErrStatus(t *testing.T) {
	v := NewListView(10, func(context.Context) ([]int, error) {
		return nil, &client.APIError{StatusCode: 403, Message: "forbidden"}
	})
	assert.Error(t, v.Fetch(context.Background()))
	assert.Equal(t, 403, v.ErrStatus())

	v2 := NewListView(10, func(context.Context) ([]int, error) {
		return nil, errors.New("dns failure")
	})
	assert.Error(t, v2.Fetch(context.Background()))
	assert.Equal(t, 0, v2.ErrStatus())
}
