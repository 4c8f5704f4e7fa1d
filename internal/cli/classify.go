package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"tag-ledger/internal/models"
	"tag-ledger/internal/services"

	"github.com/google/subcommands"
)

// classifyCmd explains how raw rows would be classified without touching the database.
type classifyCmd struct {
	out        io.Writer
	in         io.Reader
	file       string
	configFile string
}

type classifiedRow struct {
	Row            int                    `json:"row"`
	Classification services.Classification `json:"classification"`
}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "show the credit/debit classification of raw rows" }
func (*classifyCmd) Usage() string {
	return `ledgerctl classify [-f rows.json] [-classifier-config aliases.yaml]

  Reads a JSON object or an array of objects, from a file or stdin, and prints the
  movement each row classifies to together with the rule and fields that decided it.
`
}

func (c *classifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "File holding the rows. Reads stdin when empty.")
	f.StringVar(&c.configFile, "classifier-config", os.Getenv("CLASSIFIER_CONFIG_FILE"), "YAML file with field alias overrides")
}

func (c *classifyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var (
		content []byte
		err     error
	)
	if c.file != "" {
		content, err = os.ReadFile(c.file)
	} else {
		content, err = io.ReadAll(c.in)
	}
	if err != nil {
		return fail(os.Stderr, "Error reading rows: %v", err)
	}

	rows, err := decodeRows(content)
	if err != nil {
		return fail(os.Stderr, "Error decoding rows: %v", err)
	}

	cfg, err := services.LoadClassifierConfig(c.configFile)
	if err != nil {
		return fail(os.Stderr, "Error: %v", err)
	}
	classifier := services.NewClassifier(cfg)

	out := make([]classifiedRow, 0, len(rows))
	for i, row := range rows {
		out = append(out, classifiedRow{Row: i + 1, Classification: classifier.Explain(row)})
	}

	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fail(os.Stderr, "Error writing result: %v", err)
	}
	return subcommands.ExitSuccess
}

// decodeRows accepts a single object or an array. Numbers are kept as json.Number so
// amounts are not rounded through float64.
func decodeRows(content []byte) ([]models.JSONBMap, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("no rows given")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	if trimmed[0] == '{' {
		var row models.JSONBMap
		if err := dec.Decode(&row); err != nil {
			return nil, err
		}
		return []models.JSONBMap{row}, nil
	}

	var rows []models.JSONBMap
	if err := dec.Decode(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}
