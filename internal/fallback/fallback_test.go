package fallback

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"care-site-backend/internal/model"
)

func TestEmbeddedNews(t *testing.T) {
	news, err := Embedded{}.News()
	require.NoError(t, err)
	require.Len(t, news, 5)

	for i, n := range news {
		assert.Equal(t, fmt.Sprintf("dummy-%d", i+1), n.ID, "insertion order must be preserved")
		assert.NotEmpty(t, n.Title)
		assert.True(t, n.Category.Valid(), "unexpected category %q", n.Category)
		assert.Equal(t, n.CreatedAt, n.PublishedAt)
	}
	assert.Equal(t, model.NewsCategoryEvent, news[1].Category)
	assert.Equal(t, "2025-02-01T00:00:00.000Z", news[0].RevisedAt)
}

func TestEmbeddedStaff(t *testing.T) {
	staff, err := Embedded{}.Staff()
	require.NoError(t, err)
	require.Len(t, staff, 3)

	assert.Equal(t, "staff-1", staff[0].ID)
	assert.Equal(t, "後藤 純", staff[0].Name)
	for i, s := range staff {
		assert.Equal(t, i+1, s.Order)
		assert.Nil(t, s.Photo)
	}
}

func TestEmbeddedReturnsFreshCopies(t *testing.T) {
	first, err := Embedded{}.News()
	require.NoError(t, err)
	first[0].Title = "changed"
	first = first[:1]

	second, err := Embedded{}.News()
	require.NoError(t, err)
	assert.Len(t, second, 5)
	assert.NotEqual(t, "changed", second[0].Title)
}

func TestCheckCategories(t *testing.T) {
	ok := []model.News{
		{ContentID: model.ContentID{ID: "a"}, Category: model.NewsCategoryNotice},
		{ContentID: model.ContentID{ID: "b"}, Category: model.NewsCategoryMedia},
	}
	assert.NoError(t, checkCategories(ok))

	bad := append(ok, model.News{ContentID: model.ContentID{ID: "c"}, Category: "ブログ"})
	err := checkCategories(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"c"`)
	assert.Contains(t, err.Error(), "ブログ")
}
