package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
)

func newFillCmd(c *cli) *cobra.Command {
	var (
		render bool
		out    outputFlags
	)

	cmd := &cobra.Command{
		Use:   "fill <category-id>",
		Short: "Fill a category form interactively",
		Long: `Prompt for every field of the category form, section by section. Each
answer is checked as it is entered. The answers are saved as <category-id>.yaml
in the output directory and, with --render, rendered in the chosen format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]
			if render {
				if err := checkFormat(out.format, out.printEngine()); err != nil {
					return err
				}
			}
			if _, err := c.svc.GetCategory(ctx, id); err != nil {
				return err
			}

			view, err := c.svc.StartSession(ctx)
			if err != nil {
				return err
			}
			fv, err := c.svc.Form(ctx, view.SessionID, id)
			_ = c.svc.EndSession(ctx, view.SessionID)
			if err != nil {
				return err
			}

			p := c.prompter
			if p == nil {
				p = surveyPrompter{}
			}

			values := form.Values{}
			for _, section := range fv.Layout.Sections {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", section.Title)
				for _, field := range section.Fields {
					rule, _ := fv.Schema.Field(field.Name)
					v, err := p.Ask(ctx, field, fv.InitialValues[field.Name], rule.Check)
					if err != nil {
						return err
					}
					values[field.Name] = v
				}
			}

			path := filepath.Join(c.outDir, id+".yaml")
			if err := writeDocumentFile(path, documentFile{Category: id, Data: values}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)

			if !render {
				return nil
			}
			artifact, err := c.generate(ctx, id, values, out.format, out.printEngine())
			if err != nil {
				return err
			}
			docPath := filepath.Join(c.outDir, artifact.Filename)
			if err := writeFile(docPath, artifact.Data); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), docPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "render the document after filling")
	out.register(cmd, c)
	return cmd
}
