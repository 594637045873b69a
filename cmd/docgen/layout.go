package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type layoutField struct {
	Name      string `yaml:"name"`
	Label     string `yaml:"label"`
	Input     string `yaml:"input"`
	Required  bool   `yaml:"required,omitempty"`
	MinLength int    `yaml:"min,omitempty"`
}

type layoutSection struct {
	Name        string        `yaml:"name"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description,omitempty"`
	Fields      []layoutField `yaml:"fields"`
}

type layoutDoc struct {
	Category string          `yaml:"category"`
	Title    string          `yaml:"title,omitempty"`
	NotFound bool            `yaml:"not_found,omitempty"`
	Sections []layoutSection `yaml:"sections"`
}

func newLayoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "layout <category-id>",
		Short: "Print the form layout of a category as YAML",
		Long: `Print the sections and fields of a category form. An unknown category
prints the personal section only, marked not_found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			view, err := c.svc.StartSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.svc.EndSession(ctx, view.SessionID) }()

			fv, err := c.svc.Form(ctx, view.SessionID, args[0])
			if err != nil {
				return err
			}

			doc := layoutDoc{Category: fv.CategoryID, NotFound: !fv.Found}
			if fv.Category != nil {
				doc.Title = fv.Category.Title
			}
			for _, s := range fv.Layout.Sections {
				sec := layoutSection{Name: s.Name, Title: s.Title, Description: s.Description}
				for _, f := range s.Fields {
					rule, _ := fv.Schema.Field(f.Name)
					sec.Fields = append(sec.Fields, layoutField{
						Name:      f.Name,
						Label:     f.Label,
						Input:     f.Input,
						Required:  f.Required,
						MinLength: rule.MinLength,
					})
				}
				doc.Sections = append(doc.Sections, sec)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
