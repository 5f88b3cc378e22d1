/*
Copyright © 2025 The taxflor authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"log/slog"
	"time"

	"github.com/apinae/taxflor/internal/ioexport"
	"github.com/apinae/taxflor/internal/ioextract"
	"github.com/apinae/taxflor/internal/iofs"
	"github.com/apinae/taxflor/internal/ioimport"
	"github.com/apinae/taxflor/pkg/config"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getRunCmd returns the run command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getRunCmd() *cobra.Command {
	var (
		columns   []string
		precision string
		sourceDir string
		outDir    string
		outFile   string
		format    string
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Import, enrich and export an observation table",
		Long: `Run the whole pipeline once.

This command:
  1. Locates the newest observation export and reference taxonomy
     in the source directory (by modification time)
  2. Extracts the requested columns from champs_additionnels
  3. Resolves plant mentions against the reference taxonomy,
     at species rank first, then genus, then family
  4. Optionally drops records below a minimal taxonomic precision
  5. Writes the enriched table as csv or xlsx

The correction table for plant names lives in
~/.config/taxflor/corrections.yaml and can be extended freely.

Examples:
  # enrich with all derived columns
  taxflor run

  # only the plant columns, keep records resolved to at least genus
  taxflor run -c plante -p genus

  # different source directory, xlsx output
  taxflor run --source-dir ~/exports --format xlsx`,
		Aliases: []string{"enrich"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPipeline(
				cmd, columns, precision,
				sourceDir, outDir, outFile, format,
			)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	runCmd.Flags().StringSliceVarP(
		&columns, "columns", "c", []string{},
		"derived columns to compute (empty = all)",
	)
	runCmd.Flags().StringVarP(
		&precision, "precision", "p", "",
		"minimal taxonomic precision: family, genus or species",
	)
	runCmd.Flags().StringVarP(
		&sourceDir, "source-dir", "s", "",
		"directory with the observation export and taxonomy",
	)
	runCmd.Flags().StringVarP(
		&outDir, "out-dir", "o", "",
		"output directory",
	)
	runCmd.Flags().StringVarP(
		&outFile, "out-file", "f", "",
		"output file name",
	)
	runCmd.Flags().StringVar(
		&format, "format", "",
		"output format: csv or xlsx",
	)

	return runCmd
}

func runPipeline(
	cmd *cobra.Command,
	columns []string,
	precision string,
	sourceDir string,
	outDir string,
	outFile string,
	format string,
) error {
	start := time.Now()

	// Build options from explicitly set flags
	var runOpts []config.Option

	if cmd.Flags().Changed("columns") {
		runOpts = append(runOpts, config.OptExtractColumns(columns))
	}
	if cmd.Flags().Changed("precision") {
		runOpts = append(runOpts, config.OptExtractPrecision(precision))
	}
	if cmd.Flags().Changed("source-dir") {
		runOpts = append(runOpts, config.OptImportSourceDir(sourceDir))
	}
	if cmd.Flags().Changed("out-dir") {
		runOpts = append(runOpts, config.OptExportDir(outDir))
	}
	if cmd.Flags().Changed("out-file") {
		runOpts = append(runOpts, config.OptExportFile(outFile))
	}
	if cmd.Flags().Changed("format") {
		runOpts = append(runOpts, config.OptExportFormat(format))
	}

	if len(runOpts) > 0 {
		cfg.Update(runOpts)
	}

	corr, excluded, err := iofs.LoadCorrections(cfg.HomeDir)
	if err != nil {
		return err
	}
	slog.Info("correction table loaded",
		"corrections", len(corr), "excluded_hybrids", len(excluded))

	obs, err := ioimport.Observations(&cfg.Import)
	if err != nil {
		return err
	}
	gn.Info("Loaded <em>%s</em> observations",
		humanize.Comma(int64(obs.Len())))

	idx, err := ioimport.Taxonomy(&cfg.Import)
	if err != nil {
		return err
	}
	gn.Info("Loaded <em>%s</em> reference taxa",
		humanize.Comma(int64(idx.Len())))

	ext := ioextract.New(cfg, corr, excluded)
	enriched, err := ext.Extract(obs, idx)
	if err != nil {
		return err
	}

	path, err := ioexport.Write(&cfg.Export, enriched)
	if err != nil {
		return err
	}

	gn.Info(
		"Wrote <em>%s</em> rows to <em>%s</em> in %s",
		humanize.Comma(int64(enriched.Len())),
		path,
		gnfmt.TimeString(time.Since(start).Seconds()),
	)

	return nil
}
