package dataset_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/heldtogether/traintrack/core/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagerStage(t *testing.T) {
	type testCase struct {
		Description string
		Artefact    dataset.Artefact
		Content     string
		Extension   string
	}

	var testCases = []testCase{
		{
			Description: "should write tabular data as csv with header",
			Artefact: dataset.Tabular{Rows: []map[string]interface{}{
				{"a": 1},
				{"a": 2},
			}},
			Content:   "a\n1\n2\n",
			Extension: ".csv",
		},
		{
			Description: "should write columns in the given order and blank missing cells",
			Artefact: dataset.NewTabular([]string{"b", "a"},
				map[string]interface{}{"a": "x", "b": 1.5},
				map[string]interface{}{"a": nil},
			),
			Content:   "b,a\n1.5,x\n,\n",
			Extension: ".csv",
		},
		{
			Description: "should quote cells containing separators",
			Artefact: dataset.NewTabular([]string{"a"},
				map[string]interface{}{"a": "x,y"},
			),
			Content:   "a\n\"x,y\"\n",
			Extension: ".csv",
		},
		{
			Description: "should write header only for table without rows",
			Artefact:    dataset.NewTabular([]string{"a", "b"}),
			Content:     "a,b\n",
			Extension:   ".csv",
		},
		{
			Description: "should write empty file for empty table",
			Artefact:    dataset.Tabular{},
			Content:     "",
			Extension:   ".csv",
		},
		{
			Description: "should write text verbatim",
			Artefact:    dataset.Text("line one\nline two"),
			Content:     "line one\nline two",
			Extension:   ".txt",
		},
		{
			Description: "should write empty text",
			Artefact:    dataset.Text(""),
			Content:     "",
			Extension:   ".txt",
		},
		{
			Description: "should write bytes verbatim",
			Artefact:    dataset.Binary{0x00, 0xff, 0x10},
			Content:     "\x00\xff\x10",
			Extension:   ".bin",
		},
		{
			Description: "should write empty bytes",
			Artefact:    dataset.Binary{},
			Content:     "",
			Extension:   ".bin",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			dir := t.TempDir()
			stager := dataset.NewStager(dir)

			var stagedPath string
			err := stager.Stage(tc.Artefact, func(f dataset.StagedFile) error {
				stagedPath = f.Path
				assert.Equal(t, tc.Artefact.Kind(), f.Kind)
				assert.True(t, strings.HasSuffix(f.Path, tc.Extension))

				rc, err := f.Open()
				require.NoError(t, err)
				defer rc.Close()

				b, err := io.ReadAll(rc)
				require.NoError(t, err)
				assert.Equal(t, tc.Content, string(b))
				return nil
			})
			require.NoError(t, err)

			_, err = os.Stat(stagedPath)
			assert.True(t, os.IsNotExist(err), "staged file should be removed")
			assertEmptyDir(t, dir)
		})
	}
}

func TestStagerStageCleanup(t *testing.T) {
	t.Run("should remove file and return error when callback fails", func(t *testing.T) {
		dir := t.TempDir()
		expectedErr := errors.New("upload failed")

		err := dataset.NewStager(dir).Stage(dataset.Text("x"), func(f dataset.StagedFile) error {
			return expectedErr
		})

		assert.ErrorIs(t, err, expectedErr)
		assertEmptyDir(t, dir)
	})

	t.Run("should remove file when callback panics", func(t *testing.T) {
		dir := t.TempDir()

		assert.Panics(t, func() {
			_ = dataset.NewStager(dir).Stage(dataset.Binary("x"), func(f dataset.StagedFile) error {
				panic("boom")
			})
		})
		assertEmptyDir(t, dir)
	})

	t.Run("should not leak files across repeated attempts", func(t *testing.T) {
		dir := t.TempDir()
		stager := dataset.NewStager(dir)
		for i := 0; i < 3; i++ {
			_ = stager.Stage(dataset.Text("x"), func(f dataset.StagedFile) error {
				return errors.New("fail")
			})
		}
		assertEmptyDir(t, dir)
	})

	t.Run("should fail when staging directory does not exist", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "missing")
		called := false

		err := dataset.NewStager(dir).Stage(dataset.Text("x"), func(f dataset.StagedFile) error {
			called = true
			return nil
		})

		assert.Error(t, err)
		assert.False(t, called)
	})
}

func TestStagerStageUnsupported(t *testing.T) {
	dir := t.TempDir()
	called := false

	err := dataset.NewStager(dir).Stage(nil, func(f dataset.StagedFile) error {
		called = true
		return nil
	})

	assert.ErrorAs(t, err, &dataset.UnsupportedArtefactTypeError{})
	assert.False(t, called)
	assertEmptyDir(t, dir)
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
