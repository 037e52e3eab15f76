package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SRombauts/HtmlBuilder/internal/config"
	"github.com/SRombauts/HtmlBuilder/internal/errors"
	"github.com/SRombauts/HtmlBuilder/pkg/layout"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"minimal", false},
		{"site", false},
		{"nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Get(tt.name)
			if tt.wantErr {
				if !errors.HasCode(err, "E162") {
					t.Errorf("got %v, want E162", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tmpl.Name != tt.name {
				t.Errorf("Name = %q, want %q", tmpl.Name, tt.name)
			}
		})
	}
}

func TestList(t *testing.T) {
	if diff := cmp.Diff([]string{"minimal", "site"}, List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestCreate(t *testing.T) {
	cfg := Config{
		ProjectName: "handbook",
		Description: `Notes: "quoted" & more`,
	}

	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			tmpl, _ := Get(name)
			dir := t.TempDir()

			if err := tmpl.Create(dir, cfg); err != nil {
				t.Fatalf("Create: %v", err)
			}
			for _, p := range tmpl.Paths() {
				if _, err := os.Stat(filepath.Join(dir, p)); err != nil {
					t.Errorf("%s not created: %v", p, err)
				}
			}

			loaded, err := config.Load(dir)
			if err != nil {
				t.Fatalf("generated config does not load: %v", err)
			}
			if loaded.Name != "handbook" {
				t.Errorf("Name = %q, want handbook", loaded.Name)
			}

			files, err := layout.Glob(loaded.SourcePath())
			if err != nil {
				t.Fatal(err)
			}
			if len(files) == 0 {
				t.Fatal("no descriptions generated")
			}
			for _, file := range files {
				doc, err := layout.BuildFile(file)
				if err != nil {
					t.Errorf("%s does not build: %v", file, err)
					continue
				}
				if !strings.Contains(doc.Render(), `<html lang="en">`) {
					t.Errorf("%s: lang not set", file)
				}
			}
		})
	}
}

func TestCreateIndexContent(t *testing.T) {
	tmpl, _ := Get("minimal")
	dir := t.TempDir()
	if err := tmpl.Create(dir, Config{ProjectName: "handbook", Description: "a: b", Lang: "fr"}); err != nil {
		t.Fatal(err)
	}

	doc, err := layout.BuildFile(filepath.Join(dir, "docs", "index.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	out := doc.Render()
	for _, want := range []string{
		`<html lang="fr">`,
		"<title>handbook</title>",
		`<meta charset="utf-8"/>`,
		"<p>a: b</p>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
