// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/thesaurus-engine/internal/thesaurus"
	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the validated thesaurus",
	Long: `Export applies the decisions file to the term list and writes a
VOSviewer thesaurus: a "label / replace by" table listing every term marked
for elimination (empty replacement) or merge (replacement is the target).
Terms that are kept or still pending are not listed.

Use --output - to write the text format to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output path (default from export.output)")
	exportCmd.Flags().String("format", "", "output format: txt or xlsx (default from export.format)")
	decisionsFlag(exportCmd)

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.Export.Output
	}
	format := cfg.Export.Format
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		format = types.ExportFormat(f)
	}

	decisionsPath, _ := cmd.Flags().GetString("decisions")
	records, err := loadTerms(args[0], decisionsPath)
	if err != nil {
		return err
	}

	if output == "-" {
		if format == types.ExportXLSX {
			return fmt.Errorf("xlsx export cannot be written to stdout")
		}
		fmt.Fprintln(os.Stdout, thesaurus.Export(records))
		return nil
	}

	if err := thesaurus.Write(output, format, records); err != nil {
		return err
	}
	entries := len(thesaurus.Rows(records)) - 1
	logger.Info("Thesaurus exported",
		zap.String("path", output),
		zap.String("format", string(format)),
		zap.Int("entries", entries))
	fmt.Fprintf(os.Stdout, "Wrote %d entries to %s\n", entries, output)
	return nil
}
