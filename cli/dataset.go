package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/heldtogether/traintrack/core/dataset"
	"github.com/spf13/cobra"
)

func datasetCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dataset",
		Aliases: []string{"datasets"},
		Short:   "Manage datasets",
		Annotations: map[string]string{
			"group": "core",
		},
		Example: heredoc.Doc(`
		$ traintrack dataset list
		$ traintrack dataset latest <name>
		$ traintrack dataset view <id>
		$ traintrack dataset lineage
		$ traintrack dataset diff <id> <other-id>
		$ traintrack dataset publish --name <name> --version <version> --description <description>
		`),
	}

	cmd.AddCommand(
		listDatasetsCommand(cfg),
		latestDatasetCommand(cfg),
		viewDatasetCommand(cfg),
		lineageDatasetCommand(cfg),
		diffDatasetCommand(cfg),
		publishDatasetCommand(cfg),
	)

	return cmd
}

func listDatasetsCommand(cfg *Config) *cobra.Command {
	var name, output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "lists all datasets",
		Example: heredoc.Doc(`
			$ traintrack dataset list
			$ traintrack dataset list --name iris -o json
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			cat, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			items := cat.Items()
			if name != "" {
				items = cat.FilterByName(name)
			}

			spinner.Stop()
			if output == "json" {
				fmt.Println(term.Bluef(prettyPrint(items)))
				return nil
			}

			printDatasets(items)
			fmt.Println(term.Cyanf("To view all the data in JSON format, use flag `-o json`"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter by dataset name")
	cmd.Flags().StringVarP(&output, "out", "o", "table", "flag to control output viewing, for json `-o json`")

	return cmd
}

func latestDatasetCommand(cfg *Config) *cobra.Command {
	var useSemver bool

	cmd := &cobra.Command{
		Use:   "latest <name>",
		Short: "view the latest version of a dataset",
		Example: heredoc.Doc(`
			$ traintrack dataset latest iris
			$ traintrack dataset latest iris --semver
		`),
		Args: cobra.ExactArgs(1),
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			cat, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}

			policy := dataset.LexicalVersionPolicy
			if useSemver {
				policy = dataset.SemverVersionPolicy
			}
			ds, ok := cat.LatestVersionWith(args[0], policy)
			if !ok {
				return dataset.NotFoundError{Name: args[0]}
			}
			spinner.Stop()

			fmt.Println(term.Bluef(prettyPrint(ds)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&useSemver, "semver", false, "order versions as semantic versions instead of strings")

	return cmd
}

func viewDatasetCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <id>",
		Short: "view dataset for the given ID",
		Example: heredoc.Doc(`
			$ traintrack dataset view <id>
		`),
		Args: cobra.ExactArgs(1),
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			ds, err := svc.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			spinner.Stop()

			fmt.Println(term.Bluef(prettyPrint(ds)))
			return nil
		},
	}

	return cmd
}

func lineageDatasetCommand(cfg *Config) *cobra.Command {
	var direction string

	cmd := &cobra.Command{
		Use:   "lineage [<id>]",
		Short: "observe the lineage of datasets",
		Long: heredoc.Doc(`
			Without an ID, draws every dataset as a graph of derivations.
			With an ID, lists its ancestors or descendants.
		`),
		Example: heredoc.Doc(`
			$ traintrack dataset lineage
			$ traintrack dataset lineage <id> --direction upstream
		`),
		Args: cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			cat, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) == 0 {
				spinner.Stop()
				fmt.Println(strings.Join(renderLineage(cat.Lineage()), "\n"))
				return nil
			}

			related, err := cat.LineageOf(args[0], dataset.LineageDirection(direction))
			if err != nil {
				return err
			}
			spinner.Stop()

			printDatasets(related)
			return nil
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", string(dataset.LineageDirectionDownstream), "upstream or downstream")

	return cmd
}

func diffDatasetCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <id> <other-id>",
		Short: "compare two datasets",
		Example: heredoc.Doc(`
			$ traintrack dataset diff <id> <other-id>
		`),
		Args: cobra.ExactArgs(2),
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			cat, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}

			var pair [2]dataset.Dataset
			for i, id := range args {
				ds, ok := cat.FindByID(id)
				if !ok {
					return dataset.NotFoundError{ID: id}
				}
				pair[i] = ds
			}

			changelog, err := pair[0].Diff(pair[1])
			if err != nil {
				return err
			}
			spinner.Stop()

			if len(changelog) == 0 {
				fmt.Println(term.Greenf("no differences"))
				return nil
			}

			report := [][]string{{"TYPE", "PATH", "FROM", "TO"}}
			for _, c := range changelog {
				report = append(report, []string{
					c.Type,
					strings.Join(c.Path, "."),
					fmt.Sprint(derefValue(c.From)),
					fmt.Sprint(derefValue(c.To)),
				})
			}
			printer.Table(os.Stdout, report)
			return nil
		},
	}

	return cmd
}

func publishDatasetCommand(cfg *Config) *cobra.Command {
	var (
		name, version, description, parent string
		artefacts                          []string
		forceID                            string
		force                              bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "upload artefacts and register a new dataset version",
		Long: heredoc.Doc(`
			Upload every artefact and register the dataset.

			Files ending in .csv are sent as tabular data, .txt as text and
			anything else as raw bytes. An artefact is named after its file
			unless given as name=path.
		`),
		Example: heredoc.Doc(`
			$ traintrack dataset publish --name iris --version 1.0.0 --description "raw measurements" --artefact train=train.csv
			$ traintrack dataset publish --name iris --version 1.1.0 --description cleaned --parent <id> --artefact notes.txt
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			var draft *dataset.Draft
			if forceID != "" {
				existing, err := svc.Get(cmd.Context(), forceID)
				if err != nil {
					return err
				}
				draft = existing.Draft()
				if name != "" {
					draft.Name = name
				}
				if version != "" {
					draft.Version = version
				}
				if description != "" {
					draft.Description = description
				}
			} else {
				draft = dataset.NewDraft(name, version, description)
			}
			if parent != "" {
				draft.WithParent(parent)
			}

			for _, a := range artefacts {
				artefactName, path, err := parseArtefactFlag(a)
				if err != nil {
					return err
				}
				artefact, err := loadArtefact(path)
				if err != nil {
					return fmt.Errorf("load artefact %q: %w", artefactName, err)
				}
				if err := draft.AddArtefact(artefactName, artefact); err != nil {
					return err
				}
			}

			ds, err := svc.Publish(cmd.Context(), draft, dataset.WithForce(force))
			if err != nil {
				return err
			}
			spinner.Stop()

			fmt.Println(term.Greenf("published %s with ID %s", ds.String(), ds.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "dataset name")
	cmd.Flags().StringVar(&version, "version", "", "dataset version")
	cmd.Flags().StringVar(&description, "description", "", "dataset description")
	cmd.Flags().StringVar(&parent, "parent", "", "ID of the dataset this one was derived from")
	cmd.Flags().StringArrayVarP(&artefacts, "artefact", "a", nil, "artefact file as name=path, may be repeated")
	cmd.Flags().StringVar(&forceID, "force-id", "", "republish over an existing dataset ID, requires --force")
	cmd.Flags().BoolVar(&force, "force", false, "allow publishing a dataset that already has an ID")

	return cmd
}

func printDatasets(items []dataset.Dataset) {
	report := [][]string{{"ID", "NAME", "VERSION", "PARENT", "DESCRIPTION"}}
	for _, d := range items {
		report = append(report, []string{d.ID, term.Bluef(d.Name), d.Version, d.ParentID(), d.Description})
	}
	printer.Table(os.Stdout, report)
}

func derefValue(v interface{}) interface{} {
	if p, ok := v.(*string); ok {
		if p == nil {
			return ""
		}
		return *p
	}
	return v
}
