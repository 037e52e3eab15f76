package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SRombauts/HtmlBuilder/internal/errors"
	"github.com/SRombauts/HtmlBuilder/pkg/dom"
	"github.com/SRombauts/HtmlBuilder/pkg/layout"
)

func buildCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every description in the source directory",
		Long: `Render every description found in paths.source and write
<name>.html files to paths.output.

Examples:
  htmlbuilder build
  htmlbuilder build --config site/htmlbuilder.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			files, err := layout.Glob(cfg.SourcePath())
			if err != nil {
				return err
			}
			out := cmd.ErrOrStderr()
			if len(files) == 0 {
				warn(out, "No descriptions in %s", cfg.SourcePath())
				return nil
			}

			if err := os.MkdirAll(cfg.OutputPath(), 0755); err != nil {
				return errors.New("E160").WithPath(cfg.OutputPath()).Wrap(err)
			}

			renderer := dom.NewRenderer(cfg.RenderConfig())
			for _, file := range files {
				doc, err := layout.BuildFile(file)
				if err != nil {
					return err
				}
				target := filepath.Join(cfg.OutputPath(), layout.Name(file)+".html")
				if err := writeDocument(renderer, doc, target); err != nil {
					return err
				}
				info(out, "%s -> %s", file, target)
			}

			success(out, "Built %d documents", len(files))
			return nil
		},
	}

	return cmd
}
