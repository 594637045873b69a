package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

// outputFlags are shared by every command that writes documents.
type outputFlags struct {
	format string
	engine string
}

func (o *outputFlags) register(cmd *cobra.Command, c *cli) {
	cmd.Flags().StringVar(&o.format, "format", formatHTML, "output format: html, pdf or print")
	cmd.Flags().StringVar(&o.engine, "engine", string(ports.PrintEngineHTML), "print engine for --format print: html or chrome")
	cmd.Flags().StringVar(&c.outDir, "out", "", "output directory (default: export.output_dir)")
}

func (o *outputFlags) printEngine() ports.PrintEngine {
	return ports.PrintEngine(o.engine)
}

func newRenderCmd(c *cli) *cobra.Command {
	var (
		file string
		out  outputFlags
	)

	cmd := &cobra.Command{
		Use:   "render <category-id>",
		Short: "Render a document from a YAML data file",
		Long: `Render one document. The data file holds the form values under "data";
they are validated in full before anything is rendered.

  docgen render wage-theft -f claim.yaml --format pdf --out ./out`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(out.format, out.printEngine()); err != nil {
				return err
			}
			doc, err := readDocumentFile(file)
			if err != nil {
				return err
			}

			artifact, err := c.generate(cmd.Context(), args[0], form.Values(doc.Data), out.format, out.printEngine())
			if err != nil {
				return err
			}

			path := filepath.Join(c.outDir, artifact.Filename)
			if err := writeFile(path, artifact.Data); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with the form data")
	_ = cmd.MarkFlagRequired("file")
	out.register(cmd, c)
	return cmd
}
