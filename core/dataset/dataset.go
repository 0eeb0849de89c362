package dataset

import (
	"github.com/r3labs/diff/v2"
)

// Dataset is a published, versioned record of a named set of artefacts.
// A Dataset with an ID is immutable; changes go through a Draft.
type Dataset struct {
	ID          string   `json:"id" diff:"-"`
	Name        string   `json:"name" diff:"name"`
	Version     string   `json:"version" diff:"version"`
	Description string   `json:"description" diff:"description"`
	Parent      *string  `json:"parent" diff:"parent"`
	Artefacts   []string `json:"artefacts,omitempty" diff:"artefacts"`
}

func (d Dataset) IsPersisted() bool {
	return d.ID != ""
}

func (d Dataset) ParentID() string {
	if d.Parent == nil {
		return ""
	}
	return *d.Parent
}

func (d Dataset) String() string {
	return d.Name + ":" + d.Version
}

// Diff returns nil changelog with nil error if equal
// returns wrapped r3labs/diff Changelog struct with nil error if not equal
func (d Dataset) Diff(other Dataset) (diff.Changelog, error) {
	return diff.Diff(d, other, diff.DiscardComplexOrigin(), diff.AllowTypeMismatch(true))
}

// Transform starts a draft derived from d. The draft's parent is d's ID, so
// publishing it records the lineage edge.
func (d Dataset) Transform(name, version, description string) *Draft {
	draft := NewDraft(name, version, description)
	if d.IsPersisted() {
		draft.Parent = stringPtr(d.ID)
	}
	return draft
}

// Draft opens a pending copy of d carrying its ID. Publishing it is rejected
// with ErrImmutableDataset unless forced.
func (d Dataset) Draft() *Draft {
	draft := NewDraft(d.Name, d.Version, d.Description)
	draft.ID = d.ID
	if d.Parent != nil {
		draft.Parent = stringPtr(*d.Parent)
	}
	return draft
}

// clone returns a copy of d that shares no memory with it.
func (d Dataset) clone() Dataset {
	if d.Parent != nil {
		d.Parent = stringPtr(*d.Parent)
	}
	if d.Artefacts != nil {
		d.Artefacts = append([]string(nil), d.Artefacts...)
	}
	return d
}

func stringPtr(s string) *string {
	return &s
}
