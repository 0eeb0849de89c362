package dataset_test

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/heldtogether/traintrack/core/dataset"
	"github.com/stretchr/testify/require"
)

// respond decodes body into out the way a real Client would.
func respond(t *testing.T, out interface{}, body string) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), out))
}

func readFormFile(t *testing.T, f dataset.FormFile) string {
	t.Helper()

	rc, err := f.Open()
	require.NoError(t, err)
	defer rc.Close()

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func body2json(t *testing.T, body interface{}) []byte {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)
	return b
}
