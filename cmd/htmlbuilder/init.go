package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SRombauts/HtmlBuilder/internal/errors"
	"github.com/SRombauts/HtmlBuilder/internal/templates"
)

func initCmd() *cobra.Command {
	var (
		template    string
		description string
		lang        string
	)

	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a new project",
		Long: `Create a directory with an htmlbuilder.json and example descriptions.

Templates:
  minimal   A configuration file and a single page
  site      Several linked pages with a table and a form (default)

Examples:
  htmlbuilder init handbook
  htmlbuilder init handbook --template=minimal --lang=fr`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !isValidProjectName(name) {
				return errors.New("E163").WithDetail("'" + name + "' cannot be used as a project name")
			}

			tmpl, err := templates.Get(template)
			if err != nil {
				return err
			}

			dir, err := filepath.Abs(name)
			if err != nil {
				return err
			}
			if _, err := os.Stat(dir); !os.IsNotExist(err) {
				return errors.New("E161").WithPath(dir)
			}

			if description == "" {
				description = "Built with HtmlBuilder"
			}
			cfg := templates.Config{
				ProjectName: name,
				Description: description,
				Lang:        lang,
			}

			out := cmd.ErrOrStderr()
			info(out, "Creating project from '%s' template...", template)
			if err := tmpl.Create(dir, cfg); err != nil {
				os.RemoveAll(dir)
				return err
			}
			for _, p := range tmpl.Paths() {
				info(out, "%s", filepath.Join(name, p))
			}

			success(out, "Created %s/", name)
			info(out, "cd %s && htmlbuilder serve", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "site", "Project template (minimal, site)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")
	cmd.Flags().StringVar(&lang, "lang", "en", "Page language")

	return cmd
}

func isValidProjectName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
