package dataset_test

import (
	"testing"

	"github.com/heldtogether/traintrack/core/dataset"
	"github.com/stretchr/testify/assert"
)

func TestNewArtefact(t *testing.T) {
	type testCase struct {
		Description string
		Value       interface{}
		Kind        dataset.Kind
		Err         bool
	}

	var testCases = []testCase{
		{
			Description: "should convert rows to tabular",
			Value:       []map[string]interface{}{{"a": 1}},
			Kind:        dataset.KindTabular,
		},
		{
			Description: "should convert string to text",
			Value:       "hello",
			Kind:        dataset.KindText,
		},
		{
			Description: "should convert byte slice to binary",
			Value:       []byte{0x00, 0x01},
			Kind:        dataset.KindBinary,
		},
		{
			Description: "should accept empty string",
			Value:       "",
			Kind:        dataset.KindText,
		},
		{
			Description: "should accept existing variant",
			Value:       dataset.NewTabular([]string{"a"}),
			Kind:        dataset.KindTabular,
		},
		{
			Description: "should dereference tabular pointer",
			Value:       &dataset.Tabular{Columns: []string{"a"}},
			Kind:        dataset.KindTabular,
		},
		{
			Description: "should reject integer",
			Value:       42,
			Err:         true,
		},
		{
			Description: "should reject nil",
			Value:       nil,
			Err:         true,
		},
		{
			Description: "should reject nil tabular pointer",
			Value:       (*dataset.Tabular)(nil),
			Err:         true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			a, err := dataset.NewArtefact(tc.Value)
			if tc.Err {
				assert.ErrorAs(t, err, &dataset.UnsupportedArtefactTypeError{})
				assert.Nil(t, a)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Kind, a.Kind())
		})
	}
}

func TestUnsupportedArtefactTypeError(t *testing.T) {
	err := dataset.UnsupportedArtefactTypeError{Value: 3.14}
	assert.Contains(t, err.Error(), "float64")
}

func TestKind(t *testing.T) {
	t.Run("should map each kind to a distinct extension", func(t *testing.T) {
		assert.Equal(t, ".csv", dataset.KindTabular.Extension())
		assert.Equal(t, ".txt", dataset.KindText.Extension())
		assert.Equal(t, ".bin", dataset.KindBinary.Extension())
		assert.Equal(t, "", dataset.Kind("image").Extension())
	})

	t.Run("should validate known kinds only", func(t *testing.T) {
		assert.True(t, dataset.KindTabular.IsValid())
		assert.False(t, dataset.Kind("image").IsValid())
	})
}

func TestTabularHeader(t *testing.T) {
	t.Run("should keep explicit column order", func(t *testing.T) {
		tab := dataset.NewTabular([]string{"b", "a"}, map[string]interface{}{"a": 1, "b": 2})
		assert.Equal(t, []string{"b", "a"}, tab.Header())
	})

	t.Run("should derive sorted union of row keys", func(t *testing.T) {
		tab := dataset.Tabular{Rows: []map[string]interface{}{
			{"b": 1},
			{"a": 2, "c": 3},
		}}
		assert.Equal(t, []string{"a", "b", "c"}, tab.Header())
	})

	t.Run("should return empty header for empty table", func(t *testing.T) {
		assert.Empty(t, dataset.Tabular{}.Header())
	})
}

func TestNamedArtefactFileName(t *testing.T) {
	na := dataset.NamedArtefact{Name: "train", Artefact: dataset.Text("x")}
	assert.Equal(t, "train.txt", na.FileName())
}
