package layout

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SRombauts/HtmlBuilder/internal/errors"
)

// Extensions are the file extensions recognised as descriptions, in lookup order.
var Extensions = []string{".yaml", ".yml", ".json"}

// configFileName is skipped by Glob so a project root can double as a source dir.
const configFileName = "htmlbuilder.json"

// Description is a declarative document: a title, metadata for the head and
// a tree of body nodes.
type Description struct {
	Title string `yaml:"title"`
	Lang  string `yaml:"lang"`
	Head  []Node `yaml:"head"`
	Body  []Node `yaml:"body"`
}

// Node describes one element. Type selects the constructor; the variant
// parameters are only valid for the types that use them.
type Node struct {
	Type     string            `yaml:"type"`
	Content  string            `yaml:"content"`
	Attrs    map[string]string `yaml:"attrs"`
	Children []Node            `yaml:"children"`

	Href    string `yaml:"href"`
	Src     string `yaml:"src"`
	Alt     string `yaml:"alt"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Rel     string `yaml:"rel"`
	Mime    string `yaml:"mime"`
	Charset string `yaml:"charset"`
	Name    string `yaml:"name"`
	Value   string `yaml:"value"`
	Input   string `yaml:"input"`
	Action  string `yaml:"action"`
	Target  string `yaml:"target"`
	Checked bool   `yaml:"checked"`
	RowSpan uint   `yaml:"rowspan"`
	ColSpan uint   `yaml:"colspan"`
}

// params returns the names of the variant parameters n sets.
func (n *Node) params() []string {
	var out []string
	set := func(name string, ok bool) {
		if ok {
			out = append(out, name)
		}
	}
	set("href", n.Href != "")
	set("src", n.Src != "")
	set("alt", n.Alt != "")
	set("width", n.Width != 0)
	set("height", n.Height != 0)
	set("rel", n.Rel != "")
	set("mime", n.Mime != "")
	set("charset", n.Charset != "")
	set("name", n.Name != "")
	set("value", n.Value != "")
	set("input", n.Input != "")
	set("action", n.Action != "")
	set("target", n.Target != "")
	set("checked", n.Checked)
	set("rowspan", n.RowSpan != 0)
	set("colspan", n.ColSpan != 0)
	return out
}

// Parse decodes a YAML or JSON description. Unknown fields are rejected.
func Parse(data []byte) (*Description, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Description
	if err := dec.Decode(&d); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.New("E130").WithDetail("empty description")
		}
		return nil, errors.New("E130").WithDetail(err.Error())
	}
	return &d, nil
}

// Load reads and parses the description at path.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E134").WithPath(path)
		}
		return nil, errors.New("E130").WithPath(path).Wrap(err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, inFile(path, err)
	}
	return d, nil
}

// inFile prefixes the path of a coded error with the file it came from.
func inFile(file string, err error) error {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		return err
	}
	if e.Path == "" {
		e.Path = file
	} else if !strings.HasPrefix(e.Path, file) {
		e.Path = file + ":" + e.Path
	}
	return e
}

// Glob returns the description files directly inside dir, sorted by name.
func Glob(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.New("E134").WithPath(dir).Wrap(err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == configFileName || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if isDescription(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Find returns the description called name in dir, trying each of Extensions.
func Find(dir, name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", errors.New("E134").WithDetailf("invalid document name %q", name)
	}
	for _, ext := range Extensions {
		path := filepath.Join(dir, name+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", errors.New("E134").WithDetailf("no %s.{yaml,yml,json} in %s", name, dir)
}

// Name returns the document name of a description file: its base name
// without extension.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isDescription(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
