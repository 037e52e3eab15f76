package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/SRombauts/HtmlBuilder/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// ProjectName is the name of the project and the default page title.
	ProjectName string

	// Description is a short project description shown on the index page.
	Description string

	// Lang is the lang attribute of every page.
	Lang string
}

// Template represents a project template.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"site":    siteTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("E162").
			WithDetail("Template '" + name + "' not found")
	}
	return tmpl, nil
}

// List returns all available template names, sorted.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Paths returns the relative paths the template creates, sorted.
func (t *Template) Paths() []string {
	paths := make([]string, 0, len(t.Files))
	for p := range t.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Create generates a project from the template.
func (t *Template) Create(dir string, cfg Config) error {
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}

	for _, relPath := range t.Paths() {
		tmpl, err := template.New(relPath).Parse(t.Files[relPath])
		if err != nil {
			return errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		fullPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return errors.New("E160").WithPath(fullPath).Wrap(err)
		}
		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return errors.New("E160").WithPath(fullPath).Wrap(err)
		}
	}

	return nil
}

const configFile = `{
  "name": "{{.ProjectName}}",
  "render": {
    "indent": "  ",
    "newline": "\n",
    "escape": true
  },
  "paths": {
    "source": "docs",
    "output": "dist"
  },
  "serve": {
    "port": 3000,
    "watch": true
  }
}
`

func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "A configuration file and a single page",
		Files: map[string]string{
			"htmlbuilder.json": configFile,
			"docs/index.yaml": `title: {{printf "%q" .ProjectName}}
lang: {{.Lang}}
head:
  - type: meta
    charset: utf-8
body:
  - type: h1
    content: {{printf "%q" .ProjectName}}
  - type: p
    content: {{printf "%q" .Description}}
`,
		},
	}
}

func siteTemplate() *Template {
	return &Template{
		Name:        "site",
		Description: "Several linked pages with a table and a form",
		Files: map[string]string{
			"htmlbuilder.json": configFile,
			".gitignore":       "dist/\n",
			"docs/index.yaml": `title: {{printf "%q" .ProjectName}}
lang: {{.Lang}}
head:
  - type: meta
    charset: utf-8
  - type: link
    rel: stylesheet
    href: /style.css
body:
  - type: header
    children:
      - type: h1
        content: {{printf "%q" .ProjectName}}
      - type: nav
        children:
          - type: ul
            children:
              - type: li
                children:
                  - type: a
                    href: /docs/about
                    content: About
              - type: li
                children:
                  - type: a
                    href: /docs/contact
                    content: Contact
  - type: main
    children:
      - type: p
        content: {{printf "%q" .Description}}
`,
			"docs/about.yaml": `title: About
lang: {{.Lang}}
head:
  - type: meta
    charset: utf-8
body:
  - type: h1
    content: About
  - type: table
    attrs:
      class: facts
    children:
      - type: tr
        children:
          - type: th
            content: Project
          - type: td
            content: {{printf "%q" .ProjectName}}
      - type: tr
        children:
          - type: th
            content: Pages
          - type: td
            content: "3"
  - type: p
    children:
      - type: a
        href: /
        content: Home
`,
			"docs/contact.json": `{
  "title": "Contact",
  "lang": "{{.Lang}}",
  "head": [
    {"type": "meta", "charset": "utf-8"}
  ],
  "body": [
    {"type": "h1", "content": "Contact"},
    {
      "type": "form",
      "action": "/contact",
      "children": [
        {"type": "input", "input": "email", "name": "email"},
        {"type": "br"},
        {"type": "input", "input": "checkbox", "name": "copy", "checked": true},
        {"type": "text", "content": "Send me a copy"},
        {"type": "br"},
        {"type": "input", "input": "submit", "value": "Send"}
      ]
    }
  ]
}
`,
		},
	}
}
