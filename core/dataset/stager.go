package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

const stagePattern = "traintrack-artefact-*"

// Stager writes artefacts to temporary files for the duration of an upload.
type Stager struct {
	dir string
}

// NewStager returns a Stager writing into dir. An empty dir means
// os.TempDir().
func NewStager(dir string) *Stager {
	return &Stager{dir: dir}
}

// StagedFile is a fully written and closed artefact file.
type StagedFile struct {
	Path string
	Kind Kind
}

func (f StagedFile) Open() (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// Stage writes a to a new file and calls fn with it. The file is removed
// before Stage returns, whether fn succeeds, fails or panics.
func (s *Stager) Stage(a Artefact, fn func(StagedFile) error) error {
	write, err := artefactWriter(a)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(s.dir, stagePattern+a.Kind().Extension())
	if err != nil {
		return fmt.Errorf("create staging file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("stage %s artefact: %w", a.Kind(), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close staging file: %w", err)
	}

	return fn(StagedFile{Path: path, Kind: a.Kind()})
}

func artefactWriter(a Artefact) (func(io.Writer) error, error) {
	switch val := a.(type) {
	case Tabular:
		return val.writeCSV, nil
	case Text:
		return func(w io.Writer) error {
			_, err := io.WriteString(w, string(val))
			return err
		}, nil
	case Binary:
		return func(w io.Writer) error {
			_, err := w.Write(val)
			return err
		}, nil
	default:
		return nil, UnsupportedArtefactTypeError{Value: a}
	}
}

func (t Tabular) writeCSV(w io.Writer) error {
	header := t.Header()
	if len(header) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(header))
	for _, row := range t.Rows {
		for i, col := range header {
			record[i] = formatCell(row[col])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}
