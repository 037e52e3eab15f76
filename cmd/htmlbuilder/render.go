package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/SRombauts/HtmlBuilder/internal/errors"
	"github.com/SRombauts/HtmlBuilder/pkg/dom"
	"github.com/SRombauts/HtmlBuilder/pkg/layout"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a single description",
		Long: `Render a YAML or JSON description to HTML.

The document is written to stdout unless --output is given. Indentation,
newlines and escaping come from htmlbuilder.json.

Examples:
  htmlbuilder render docs/index.yaml
  htmlbuilder render docs/index.yaml -o index.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			doc, err := layout.BuildFile(args[0])
			if err != nil {
				return err
			}
			renderer := dom.NewRenderer(cfg.RenderConfig())

			if output == "" {
				return renderer.WriteDocument(cmd.OutOrStdout(), doc)
			}
			if err := writeDocument(renderer, doc, output); err != nil {
				return err
			}
			success(cmd.ErrOrStderr(), "Wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to this file")

	return cmd
}

// writeDocument renders doc to the file at path.
func writeDocument(renderer *dom.Renderer, doc *dom.Document, path string) error {
	var buf bytes.Buffer
	if err := renderer.WriteDocument(&buf, doc); err != nil {
		return errors.New("E160").WithPath(path).Wrap(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.New("E160").WithPath(path).Wrap(err)
	}
	return nil
}
