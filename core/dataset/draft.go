package dataset

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var draftValidator = newDraftValidator()

func newDraftValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Draft is a dataset that has not been published yet. Artefacts are kept
// in the order they were first added.
type Draft struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Version     string  `json:"version" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Parent      *string `json:"parent"`

	artefacts []NamedArtefact
}

func NewDraft(name, version, description string) *Draft {
	return &Draft{
		Name:        name,
		Version:     version,
		Description: description,
	}
}

func (d *Draft) WithParent(id string) *Draft {
	d.Parent = stringPtr(id)
	return d
}

// AddArtefact attaches v under name. Adding a name twice replaces the value
// but keeps its original position.
func (d *Draft) AddArtefact(name string, v interface{}) error {
	a, err := NewArtefact(v)
	if err != nil {
		return err
	}

	for i := range d.artefacts {
		if d.artefacts[i].Name == name {
			d.artefacts[i].Artefact = a
			return nil
		}
	}
	d.artefacts = append(d.artefacts, NamedArtefact{Name: name, Artefact: a})
	return nil
}

// MustAddArtefact is AddArtefact for statically known values. It panics on
// an unsupported type.
func (d *Draft) MustAddArtefact(name string, v interface{}) *Draft {
	if err := d.AddArtefact(name, v); err != nil {
		panic(err)
	}
	return d
}

func (d *Draft) Artefacts() []NamedArtefact {
	out := make([]NamedArtefact, len(d.artefacts))
	copy(out, d.artefacts)
	return out
}

func (d *Draft) Validate() error {
	err := draftValidator.Struct(d)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		fields[e.Field()] = "is " + e.Tag()
	}
	return InvalidDraftError{Fields: fields}
}
