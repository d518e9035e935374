package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Keep(t *testing.T) {
	done := Task{Status: TaskStatusCompleted}
	doing := Task{Status: TaskStatusInProgress}

	assert.True(t, FilterAll.Keep(done))
	assert.True(t, FilterActive.Keep(doing))
	assert.False(t, FilterActive.Keep(done))
	assert.True(t, FilterCompleted.Keep(done))
	assert.False(t, FilterCompleted.Keep(doing))
}

func TestParseViewValues(t *testing.T) {
	f, err := ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	s, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortByDueDate, s)

	r, err := ParseDateRange("week")
	require.NoError(t, err)
	assert.Equal(t, DateRangeWeek, r)

	_, err = ParseFilter("archived")
	assert.ErrorIs(t, err, ErrInvalidViewState)
	_, err = ParseSortKey("createdAt")
	assert.ErrorIs(t, err, ErrInvalidViewState)
	_, err = ParseDateRange("month")
	assert.ErrorIs(t, err, ErrInvalidViewState)
}

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme(" dark ")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	_, err = ParseTheme("")
	assert.ErrorIs(t, err, ErrInvalidTheme)
}
