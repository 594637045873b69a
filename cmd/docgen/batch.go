package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sahilbrid/nyaay-saathi/internal/app/fanout"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
)

const defaultBatchWorkers = 4

func newBatchCmd(c *cli) *cobra.Command {
	var (
		workers int
		out     outputFlags
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Render every YAML data file in a directory",
		Long: `Render each *.yaml file of dir. Every file names its category and is
rendered in its own session; outputs are named after the input file. One
failing file does not stop the others.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(out.format, out.printEngine()); err != nil {
				return err
			}
			files, err := filepath.Glob(filepath.Join(args[0], "*.yaml"))
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no *.yaml files in %s", args[0])
			}

			results := fanout.Run(cmd.Context(), workers, files, func(ctx context.Context, file string) (string, error) {
				return c.renderFile(ctx, file, out)
			})

			for _, r := range results {
				if r.Err == nil {
					fmt.Fprintln(cmd.OutOrStdout(), r.Value)
				}
			}
			return fanout.Errs(results, func(i int) string { return filepath.Base(files[i]) })
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", defaultBatchWorkers, "documents rendered at once")
	out.register(cmd, c)
	return cmd
}

func (c *cli) renderFile(ctx context.Context, file string, out outputFlags) (string, error) {
	doc, err := readDocumentFile(file)
	if err != nil {
		return "", err
	}
	if doc.Category == "" {
		return "", errors.New("category is required")
	}

	artifact, err := c.generate(ctx, doc.Category, form.Values(doc.Data), out.format, out.printEngine())
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	path := filepath.Join(c.outDir, base+filepath.Ext(artifact.Filename))
	if err := writeFile(path, artifact.Data); err != nil {
		return "", err
	}
	return path, nil
}
