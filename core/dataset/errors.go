package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrImmutableDataset = errors.New("datasets are immutable")
	ErrEmptyID          = errors.New("dataset does not have ID")
	ErrNilDraft         = errors.New("nil draft")
)

// ImmutableDatasetError is returned when publishing a record that already
// has a server-assigned ID without forcing it.
type ImmutableDatasetError struct {
	ID string
}

func (err ImmutableDatasetError) Error() string {
	return fmt.Sprintf("dataset %q is already published: %s, use force to publish anyway", err.ID, ErrImmutableDataset)
}

func (err ImmutableDatasetError) Unwrap() error { return ErrImmutableDataset }

type UnsupportedArtefactTypeError struct {
	Value interface{}
}

func (err UnsupportedArtefactTypeError) Error() string {
	return fmt.Sprintf("unsupported artefact type %T: expected tabular rows, string or []byte", err.Value)
}

type InvalidDraftError struct {
	Fields map[string]string
}

func (err InvalidDraftError) Error() string {
	fields := make([]string, 0, len(err.Fields))
	for f := range err.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var s strings.Builder
	s.WriteString("invalid dataset")
	for i, f := range fields {
		if i == 0 {
			s.WriteString(": ")
		} else {
			s.WriteString(", ")
		}
		s.WriteString(f + " " + err.Fields[f])
	}
	return s.String()
}

type NotFoundError struct {
	ID   string
	Name string
}

func (err NotFoundError) Error() string {
	if err.ID != "" {
		return fmt.Sprintf("no such dataset: %q", err.ID)
	} else if err.Name != "" {
		return fmt.Sprintf("could not find dataset with name = %s", err.Name)
	}

	return "could not find dataset"
}
