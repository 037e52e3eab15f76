// Package templates provides project scaffolding templates.
//
// # Available Templates
//
//   - minimal: a configuration file and a single page
//   - site: several linked pages with a table and a form
//
// # Usage
//
//	tmpl, err := templates.Get("site")
//	if err != nil {
//	    return err
//	}
//	if err := tmpl.Create(projectDir, templates.Config{ProjectName: "docs"}); err != nil {
//	    return err
//	}
//
// # Template Variables
//
//	{{.ProjectName}}     - Name of the project
//	{{.Description}}     - Project description
//	{{.Lang}}            - Page language, "en" by default
package templates
