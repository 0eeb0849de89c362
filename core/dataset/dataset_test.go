package dataset_test

import (
	"testing"

	"github.com/heldtogether/traintrack/core/dataset"
	"github.com/r3labs/diff/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetDiff(t *testing.T) {
	t.Run("should return empty changelog for equal records ignoring id", func(t *testing.T) {
		a := dataset.Dataset{ID: "1", Name: "x", Version: "1"}
		b := dataset.Dataset{ID: "2", Name: "x", Version: "1"}

		cl, err := a.Diff(b)
		require.NoError(t, err)
		assert.Empty(t, cl)
	})

	t.Run("should report changed fields", func(t *testing.T) {
		a := dataset.Dataset{Name: "x", Version: "1", Description: "old"}
		b := dataset.Dataset{Name: "x", Version: "2", Description: "old"}

		cl, err := a.Diff(b)
		require.NoError(t, err)
		require.Len(t, cl, 1)
		assert.Equal(t, diff.UPDATE, cl[0].Type)
		assert.Equal(t, []string{"version"}, cl[0].Path)
		assert.Equal(t, "1", cl[0].From)
		assert.Equal(t, "2", cl[0].To)
	})
}

func TestDatasetIsPersisted(t *testing.T) {
	assert.False(t, dataset.Dataset{}.IsPersisted())
	assert.True(t, dataset.Dataset{ID: "1"}.IsPersisted())
}

func TestDatasetString(t *testing.T) {
	assert.Equal(t, "iris:2", dataset.Dataset{Name: "iris", Version: "2"}.String())
}
