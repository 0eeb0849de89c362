package dataset_test

import (
	"testing"

	"github.com/heldtogether/traintrack/core/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftAddArtefact(t *testing.T) {
	t.Run("should keep insertion order", func(t *testing.T) {
		d := dataset.NewDraft("d", "1", "")
		require.NoError(t, d.AddArtefact("z", "text"))
		require.NoError(t, d.AddArtefact("a", []byte("bin")))
		require.NoError(t, d.AddArtefact("m", []map[string]interface{}{{"a": 1}}))

		var names []string
		for _, na := range d.Artefacts() {
			names = append(names, na.Name)
		}
		assert.Equal(t, []string{"z", "a", "m"}, names)
	})

	t.Run("should replace value in place when name is reused", func(t *testing.T) {
		d := dataset.NewDraft("d", "1", "")
		require.NoError(t, d.AddArtefact("a", "first"))
		require.NoError(t, d.AddArtefact("b", "second"))
		require.NoError(t, d.AddArtefact("a", []byte("third")))

		arts := d.Artefacts()
		require.Len(t, arts, 2)
		assert.Equal(t, "a", arts[0].Name)
		assert.Equal(t, dataset.Binary("third"), arts[0].Artefact)
	})

	t.Run("should reject unsupported value at attach time", func(t *testing.T) {
		d := dataset.NewDraft("d", "1", "")
		err := d.AddArtefact("n", 7)
		assert.ErrorAs(t, err, &dataset.UnsupportedArtefactTypeError{})
		assert.Empty(t, d.Artefacts())
	})

	t.Run("should not expose internal slice", func(t *testing.T) {
		d := dataset.NewDraft("d", "1", "").MustAddArtefact("a", "x")
		arts := d.Artefacts()
		arts[0].Name = "changed"
		assert.Equal(t, "a", d.Artefacts()[0].Name)
	})

	t.Run("should panic on unsupported value with must", func(t *testing.T) {
		assert.Panics(t, func() {
			dataset.NewDraft("d", "1", "").MustAddArtefact("a", struct{}{})
		})
	})
}

func TestDraftValidate(t *testing.T) {
	t.Run("should require name, version and description", func(t *testing.T) {
		err := dataset.NewDraft("", "", "").Validate()

		var invalid dataset.InvalidDraftError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, map[string]string{
			"name":        "is required",
			"version":     "is required",
			"description": "is required",
		}, invalid.Fields)
		assert.Equal(t, "invalid dataset: description is required, name is required, version is required", err.Error())
	})

	t.Run("should accept complete draft", func(t *testing.T) {
		assert.NoError(t, dataset.NewDraft("d", "1", "desc").Validate())
	})
}

func TestDatasetTransform(t *testing.T) {
	t.Run("should point the derived draft at the source", func(t *testing.T) {
		src := dataset.Dataset{ID: "src-id", Name: "raw", Version: "1"}
		d := src.Transform("clean", "1", "cleaned")

		require.NotNil(t, d.Parent)
		assert.Equal(t, "src-id", *d.Parent)
		assert.Empty(t, d.ID)
		assert.Equal(t, "clean", d.Name)
	})

	t.Run("should leave parent empty for unpublished source", func(t *testing.T) {
		d := dataset.Dataset{Name: "raw"}.Transform("clean", "1", "")
		assert.Nil(t, d.Parent)
	})
}

func TestDatasetDraft(t *testing.T) {
	parent := "p"
	src := dataset.Dataset{ID: "id", Name: "n", Version: "1", Description: "d", Parent: &parent, Artefacts: []string{"u1"}}

	d := src.Draft()
	assert.Equal(t, "id", d.ID)
	assert.Equal(t, "n", d.Name)
	assert.Empty(t, d.Artefacts())

	*d.Parent = "other"
	assert.Equal(t, "p", *src.Parent)
}
