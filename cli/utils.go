package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goto/salt/log"
	"github.com/heldtogether/traintrack/core/dataset"
	"github.com/heldtogether/traintrack/internal/client"
)

func prettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", "\t")
	return string(s)
}

func initLogger(logLevel string) *log.Logrus {
	logger := log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stderr),
	)
	return logger
}

func newService(cfg *Config) (*dataset.Service, error) {
	logger := initLogger(cfg.LogLevel)

	clientCfg := cfg.Client
	if clientCfg.TokenPath == "" {
		clientCfg.TokenPath = client.DefaultTokenPath
	}
	clnt, err := client.New(clientCfg, client.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return dataset.NewService(dataset.ServiceDeps{
		Client: clnt,
		Stager: dataset.NewStager(cfg.StagingDir),
		Logger: logger,
	}), nil
}

// parseArtefactFlag splits a "name=path" flag value. A bare path is named
// after its file name without extension.
func parseArtefactFlag(s string) (name, path string, err error) {
	if i := strings.Index(s, "="); i >= 0 {
		name, path = s[:i], s[i+1:]
	} else {
		path = s
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if name == "" || path == "" {
		return "", "", fmt.Errorf("invalid artefact %q: expected name=path", s)
	}
	return name, path, nil
}

// loadArtefact reads a file from disk as an artefact. CSV files become
// tabular data with their first record as the header, .txt files become text
// and everything else is sent as raw bytes.
func loadArtefact(path string) (dataset.Artefact, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readTabular(f)
	case ".txt":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return dataset.Text(b), nil
	default:
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return dataset.Binary(b), nil
	}
}

func readTabular(r io.Reader) (dataset.Tabular, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return dataset.Tabular{}, fmt.Errorf("invalid csv: %w", err)
	}
	if len(records) == 0 {
		return dataset.Tabular{Columns: []string{}}, nil
	}

	header := records[0]
	rows := make([]map[string]interface{}, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]interface{}, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return dataset.NewTabular(header, rows...), nil
}
