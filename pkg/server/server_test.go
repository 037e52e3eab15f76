package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/SRombauts/HtmlBuilder/internal/config"
	"github.com/SRombauts/HtmlBuilder/internal/dev"
)

type fixture struct {
	dir string
	srv *Server
	reg *prometheus.Registry
	sr  *tracetest.SpanRecorder
}

func newFixture(t *testing.T, watch bool) *fixture {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "docs"), 0755); err != nil {
		t.Fatal(err)
	}

	cfg := config.New()
	cfg.Name = "Site"
	cfg.Serve.Watch = watch
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	srv := New(cfg, WithRegistry(reg), WithTracerProvider(tp), WithShutdownTimeout(time.Second))
	return &fixture{dir: dir, srv: srv, reg: reg, sr: sr}
}

func (f *fixture) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, "docs", name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func (f *fixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestIndex(t *testing.T) {
	f := newFixture(t, false)

	rec := f.get(t, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<p>No descriptions in docs</p>") {
		t.Errorf("empty index should say so:\n%s", rec.Body.String())
	}

	f.write(t, "about.yaml", "title: About\n")
	f.write(t, "home.yml", "title: Home\n")

	body := f.get(t, "/").Body.String()
	for _, want := range []string{
		"<title>Site</title>",
		"<h1>Site</h1>",
		`<ul id="documents">`,
		`<a href="/docs/about">about</a>`,
		`<a href="/docs/home">home</a>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "<script") {
		t.Error("reload script should only be added in watch mode")
	}
}

func TestDocument(t *testing.T) {
	f := newFixture(t, false)
	f.write(t, "index.yaml", "title: Welcome\nbody:\n  - type: p\n    content: Hi\n  - type: br\n")

	rec := f.get(t, "/docs/index")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	want := `<!doctype html>
<html>
  <head>
    <title>Welcome</title>
  </head>
  <body>
    <p>Hi</p>
    <br/>
  </body>
</html>
`
	if got := rec.Body.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	var render bool
	for _, span := range f.sr.Ended() {
		if span.Name() == "render" {
			render = true
		}
	}
	if !render {
		t.Error("expected a render span")
	}
}

func TestDocumentErrors(t *testing.T) {
	f := newFixture(t, false)
	f.write(t, "bad.yaml", "body:\n  - type: nosuchtag\n")

	rec := f.get(t, "/docs/missing")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing: status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "E134") {
		t.Errorf("missing: body = %q", rec.Body.String())
	}

	rec = f.get(t, "/docs/bad")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("bad: status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "E131") || !strings.Contains(rec.Body.String(), "body[0]") {
		t.Errorf("bad: body = %q", rec.Body.String())
	}

	want := `
# HELP htmlbuilder_render_errors_total Total number of documents that failed to build, by error code
# TYPE htmlbuilder_render_errors_total counter
htmlbuilder_render_errors_total{code="E131"} 1
`
	if err := testutil.GatherAndCompare(f.reg, strings.NewReader(want), "htmlbuilder_render_errors_total"); err != nil {
		t.Error(err)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, false)
	f.write(t, "index.yaml", "title: x\n")
	f.get(t, "/docs/index")

	rec := f.get(t, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	for _, want := range []string{
		`htmlbuilder_http_requests_total{method="GET",route="/docs/{name}",status="200"} 1`,
		"htmlbuilder_rendered_bytes_count 1",
	} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestEscapingFromConfig(t *testing.T) {
	f := newFixture(t, false)
	f.srv.cfg.Render.Escape = true
	f.srv = New(f.srv.cfg, WithRegistry(prometheus.NewRegistry()))
	f.write(t, "x.yaml", "body:\n  - type: p\n    content: \"1 < 2\"\n")

	if body := f.get(t, "/docs/x").Body.String(); !strings.Contains(body, "<p>1 &lt; 2</p>") {
		t.Errorf("content should be escaped:\n%s", body)
	}
}

func TestWatchMode(t *testing.T) {
	f := newFixture(t, true)
	f.write(t, "index.yaml", "title: x\n")

	body := f.get(t, "/docs/index").Body.String()
	if !strings.Contains(body, `<script src="/_htmlbuilder/reload.js"></script>`) {
		t.Errorf("reload script missing:\n%s", body)
	}

	rec := f.get(t, dev.ScriptPath)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), dev.ReloadPath) {
		t.Errorf("script: status = %d", rec.Code)
	}
}

func TestHandleChangesNotifiesClients(t *testing.T) {
	f := newFixture(t, true)
	good := f.write(t, "good.yaml", "title: ok\n")
	bad := f.write(t, "bad.yaml", "body:\n  - type: nosuchtag\n")

	ts := httptest.NewServer(f.srv.Handler())
	defer ts.Close()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+dev.ReloadPath, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(time.Second)
	for f.srv.Hub().ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	f.srv.handleChanges([]dev.Change{{Path: bad, Type: dev.ChangeDescription}})
	f.srv.handleChanges([]dev.Change{{Path: good, Type: dev.ChangeDescription}})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	want := []dev.ReloadMessageType{dev.ReloadTypeError, dev.ReloadTypeClear, dev.ReloadTypeFull}
	for _, w := range want {
		var msg dev.ReloadMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("ReadJSON: %v", err)
		}
		if msg.Type != w {
			t.Errorf("got %q, want %q", msg.Type, w)
		}
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	f := newFixture(t, true)
	f.write(t, "index.yaml", "title: x\n")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.srv.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/docs/index"
	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get(url)
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(b), "<title>x</title>") {
		t.Errorf("unexpected body %q", b)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
