package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/goto/salt/term"
	"github.com/heldtogether/traintrack/cli"
	"github.com/heldtogether/traintrack/internal/client"
)

const (
	exitOK    = 0
	exitError = 1
)

func main() {
	cliConfig, err := cli.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cmd, err := cli.New(cliConfig).ExecuteContextC(ctx); err != nil {
		printError(err)

		cmdErr := strings.HasPrefix(err.Error(), "unknown command")
		flagErr := strings.HasPrefix(err.Error(), "unknown flag")
		sflagErr := strings.HasPrefix(err.Error(), "unknown shorthand flag")

		if cmdErr || flagErr || sflagErr {
			if !strings.HasSuffix(err.Error(), "\n") {
				fmt.Println()
			}
			fmt.Println(cmd.UsageString())
			os.Exit(exitOK)
		} else {
			os.Exit(exitError)
		}
	}
}

func printError(err error) {
	var herr *client.HTTPError
	if errors.As(err, &herr) && herr.Body != "" && herr.Message == "" {
		fmt.Fprintln(os.Stderr, term.Redf("Error: %s", err))
		fmt.Fprintln(os.Stderr, herr.Body)
		return
	}
	fmt.Fprintln(os.Stderr, term.Redf("Error: %s", err))
}
