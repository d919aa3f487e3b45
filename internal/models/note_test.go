package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" work ")
	require.NoError(t, err)
	assert.Equal(t, CategoryWork, c)

	_, err = ParseCategory("Shopping")
	require.ErrorIs(t, err, ErrInvalidCategory)

	_, err = ParseCategory("")
	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("all")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	f, err = ParseFilter("Other")
	require.NoError(t, err)
	assert.Equal(t, Filter(CategoryOther), f)

	_, err = ParseFilter("Archive")
	require.ErrorIs(t, err, ErrInvalidFilter)
}

func TestFilter_Match(t *testing.T) {
	work := Note{ID: "1", Category: CategoryWork}
	assert.True(t, FilterAll.Match(work))
	assert.True(t, Filter(CategoryWork).Match(work))
	assert.False(t, Filter(CategoryPersonal).Match(work))
}

func TestDraft_ClearedKeepsCategory(t *testing.T) {
	d := Draft{Title: "t", Description: "d", Category: CategoryOther}
	assert.Equal(t, Draft{Category: CategoryOther}, d.Cleared())
	assert.Equal(t, DefaultCategory, NewDraft().Category)
}

func TestDraft_ApplyToKeepsID(t *testing.T) {
	n := Note{ID: "42", Title: "old", Description: "old", Category: CategoryPersonal}
	got := Draft{Title: "new", Description: "D", Category: CategoryOther}.ApplyTo(n)
	assert.Equal(t, Note{ID: "42", Title: "new", Description: "D", Category: CategoryOther}, got)
	assert.Equal(t, DraftOf(got), Draft{Title: "new", Description: "D", Category: CategoryOther})
}

func TestNote_JSONOmitsEmptyID(t *testing.T) {
	b, err := json.Marshal(Draft{Title: "t", Category: CategoryWork}.Note())
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t","description":"","category":"Work"}`, string(b))
}
