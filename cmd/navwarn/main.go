// navwarn parses broadcast warning bulletins from a file or stdin and
// prints one structured record per message.
//
// Usage:
//
//	navwarn batch.txt
//	cat batch.txt | navwarn
//	navwarn --json batch.txt
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/navwarn-etl/internal/domain"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	jsonOut   bool
	pivotYear int
	rulesPath string
}

var rootCmd = &cobra.Command{
	Use:   "navwarn [file]",
	Short: "Parse NAVWARN/HYDROARC bulletin batches into structured records",
	Long: `Parse a raw broadcast warning batch into structured records: one per
message, with DTG, identifier, hazard category, coordinates, and
cancellation references. Reads the named file, or stdin when no file
is given.

Malformed fields degrade per record; the only hard failure is
unreadable input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&rootFlags.jsonOut, "json", false, "Emit full records as a JSON array")
	f.IntVar(&rootFlags.pivotYear, "pivot-year", domain.DefaultPivotYear, "Pivot year for two-digit DTG years")
	f.StringVar(&rootFlags.rulesPath, "rules", "", "Path to a hazard rules YAML file (default: embedded rules)")
	rootCmd.Version = version
	rootCmd.SilenceUsage = true
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	opts := domain.Options{PivotYear: rootFlags.pivotYear}
	if rootFlags.rulesPath != "" {
		rules, err := domain.LoadHazardRules(rootFlags.rulesPath)
		if err != nil {
			return err
		}
		opts.Rules = rules
	}

	records := domain.ParseBatch(text, opts)

	if rootFlags.jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	for _, rec := range records {
		fmt.Fprintln(cmd.OutOrStdout(), formatLine(rec))
	}
	return nil
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// formatLine renders one record as a summary line. Absent fields render
// as placeholders so the columns stay greppable.
func formatLine(rec domain.NavWarnRecord) string {
	dtg := "absent"
	switch {
	case rec.DTG != nil:
		dtg = rec.DTG.UTC().Format("2006-01-02T15:04:05")
	case rec.RawDTG != "":
		dtg = rec.RawDTG
	}

	id := "NO-ID"
	if rec.MessageID != nil {
		id = *rec.MessageID
	}

	return fmt.Sprintf("%s | %s | %s | %d coords | %d cancellations",
		dtg, id, rec.Hazard, len(rec.Coordinates), len(rec.Cancellations))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
