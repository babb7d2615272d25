package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/licensetower/pkg/config"
	"github.com/matzehuels/licensetower/pkg/errors"
	"github.com/matzehuels/licensetower/pkg/report"
	"github.com/matzehuels/licensetower/pkg/scan"
)

// scanOptions holds the flags for the scan (root) command.
type scanOptions struct {
	root       string
	out        string
	jsonOut    string
	configPath string
	noCache    bool
}

// scanCommand creates the root command, which runs the scan itself.
func (c *CLI) scanCommand() *cobra.Command {
	var opts scanOptions

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Export package license metadata from node_modules to a spreadsheet",
		Long: `Licensetower walks a node_modules tree, extracts name, version,
declared license, and homepage from every package manifest, grabs the
contents of each package's LICENSE file, and writes everything to a
single-sheet spreadsheet.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScan(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "node_modules", "path to the node_modules root")
	cmd.Flags().StringVar(&opts.out, "out", "licenses.xlsx", "output spreadsheet filename")
	cmd.Flags().StringVar(&opts.jsonOut, "json", "", "also write records to a JSON file")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/licensetower/config.toml)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the decode cache")

	return cmd
}

func (c *CLI) runScan(ctx context.Context, opts scanOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	dcache := newCache(ctx, c.Logger, cfg.Cache, opts.noCache)
	defer dcache.Close()

	runID := uuid.NewString()
	logger := c.Logger.With("run", runID[:8])

	scanner := scan.New(logger,
		scan.WithCache(dcache, cfg.Cache.TTLOrDefault()),
		scan.WithChunkSize(cfg.ChunkSize),
		scan.WithLicenseNames(cfg.LicenseNames),
	)

	prog := newProgress(logger)
	sp := newSpinnerWithContext(ctx, "Scanning "+opts.root)
	sp.Start()
	records, err := scanner.Run(ctx, opts.root)
	sp.Stop()
	if err != nil {
		return err
	}
	printInfo("Found %d package manifest(s)", len(records))

	tbl := report.Build(records)
	if err := report.WriteXLSX(tbl, opts.out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write report")
	}
	if opts.jsonOut != "" {
		if err := report.ExportJSON(records, runID, opts.jsonOut); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write JSON export")
		}
		printFile(opts.jsonOut)
	}

	printSuccess("Wrote %d row(s) to %s", len(tbl.Rows), opts.out)
	prog.done(fmt.Sprintf("Processed %d manifest(s)", len(records)))
	return nil
}
