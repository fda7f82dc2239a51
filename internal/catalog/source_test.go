package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureSourceSubcategories(t *testing.T) {
	src := NewFixtureSource()

	subs, err := src.Subcategories(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	for _, c := range subs {
		require.NotNil(t, c.ParentID)
		assert.Equal(t, int64(1), *c.ParentID)
	}
}

func TestFixtureSourceSubcategoriesUnknownParent(t *testing.T) {
	src := NewFixtureSource()

	subs, err := src.Subcategories(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestFixtureSourceProductByIDOrSlug(t *testing.T) {
	src := NewFixtureSource()

	byID, err := src.ProductByIDOrSlug(context.Background(), "1")
	require.NoError(t, err)

	bySlug, err := src.ProductByIDOrSlug(context.Background(), byID.Slug)
	require.NoError(t, err)
	assert.Equal(t, byID.ID, bySlug.ID)

	_, err = src.ProductByIDOrSlug(context.Background(), "no-such-product")
	assert.Error(t, err)
}
