package cli

import (
	"errors"

	"github.com/MakeNowJust/heredoc"
)

var (
	ErrConfigNotFound = errors.New(heredoc.Doc(`
	Config file not found. Loading from defaults...

	Run "traintrack config init" to initialize a new configuration file
	Run "traintrack help environment" for more information.

	Alternatively, make a "traintrack.yaml" file in the current directory from the example given
`))
)
