package dataset

import (
	"sort"
)

type Kind string

func (k Kind) String() string {
	return string(k)
}

// Extension returns the file extension used for staged artefacts of kind k.
func (k Kind) Extension() string {
	switch k {
	case KindTabular:
		return ".csv"
	case KindText:
		return ".txt"
	case KindBinary:
		return ".bin"
	default:
		return ""
	}
}

func (k Kind) IsValid() bool {
	switch k {
	case KindTabular, KindText, KindBinary:
		return true
	default:
		return false
	}
}

const (
	KindTabular Kind = "tabular"
	KindText    Kind = "text"
	KindBinary  Kind = "binary"
)

// Artefact is a single payload attached to a dataset version. The set of
// implementations is closed: Tabular, Text and Binary.
type Artefact interface {
	Kind() Kind
	artefact()
}

// Tabular is row/column data staged as CSV. Columns fixes the header order;
// when it is nil the header is the sorted union of the row keys.
type Tabular struct {
	Columns []string
	Rows    []map[string]interface{}
}

// Text is staged verbatim.
type Text string

// Binary is staged verbatim.
type Binary []byte

func (Tabular) Kind() Kind { return KindTabular }
func (Text) Kind() Kind    { return KindText }
func (Binary) Kind() Kind  { return KindBinary }

func (Tabular) artefact() {}
func (Text) artefact()    {}
func (Binary) artefact()  {}

// NewTabular builds a Tabular artefact with an explicit column order.
func NewTabular(columns []string, rows ...map[string]interface{}) Tabular {
	return Tabular{Columns: columns, Rows: rows}
}

// Header returns the CSV header for t.
func (t Tabular) Header() []string {
	if t.Columns != nil {
		return t.Columns
	}

	keys := newUniqueStrings(0)
	for _, row := range t.Rows {
		for k := range row {
			keys.add(k)
		}
	}
	header := keys.list()
	sort.Strings(header)
	return header
}

// NewArtefact converts an in-memory value into an Artefact. Slices of rows,
// strings and byte slices are accepted along with the variant types
// themselves; anything else fails with UnsupportedArtefactTypeError.
func NewArtefact(v interface{}) (Artefact, error) {
	switch val := v.(type) {
	case Tabular:
		return val, nil
	case *Tabular:
		if val == nil {
			return nil, UnsupportedArtefactTypeError{Value: v}
		}
		return *val, nil
	case Text:
		return val, nil
	case Binary:
		return val, nil
	case []map[string]interface{}:
		return Tabular{Rows: val}, nil
	case string:
		return Text(val), nil
	case []byte:
		return Binary(val), nil
	default:
		return nil, UnsupportedArtefactTypeError{Value: v}
	}
}

// NamedArtefact pairs an artefact with the name it was attached under.
type NamedArtefact struct {
	Name     string
	Artefact Artefact
}

// FileName is the name the artefact is uploaded as.
func (na NamedArtefact) FileName() string {
	if na.Artefact == nil {
		return na.Name
	}
	return na.Name + na.Artefact.Kind().Extension()
}
