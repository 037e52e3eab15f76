package dev

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/SRombauts/HtmlBuilder/internal/config"
)

func startWatcher(t *testing.T, dir string) <-chan []Change {
	t.Helper()

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{dir},
		Interval: 20 * time.Millisecond,
	})
	changes := make(chan []Change, 10)
	watcher.OnChange(func(c []Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go watcher.Start(ctx)

	deadline := time.Now().Add(time.Second)
	for !watcher.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	// Let the seeding scan finish.
	time.Sleep(50 * time.Millisecond)
	return changes
}

func waitChange(t *testing.T, changes <-chan []Change) []Change {
	t.Helper()
	select {
	case c := <-changes:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout waiting for change")
		return nil
	}
}

func TestWatcher_Modify(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "index.yaml")
	if err := os.WriteFile(file, []byte("title: a\n"), 0644); err != nil {
		t.Fatal(err)
	}

	changes := startWatcher(t, tmpDir)

	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(file, future, future); err != nil {
		t.Fatal(err)
	}

	got := waitChange(t, changes)
	if len(got) != 1 {
		t.Fatalf("got %d changes, want 1", len(got))
	}
	if got[0].Path != file {
		t.Errorf("Path = %q, want %q", got[0].Path, file)
	}
	if got[0].Type != ChangeDescription {
		t.Errorf("Type = %v, want %v", got[0].Type, ChangeDescription)
	}
}

func TestWatcher_NewFileInEmptyDir(t *testing.T) {
	tmpDir := t.TempDir()
	changes := startWatcher(t, tmpDir)

	file := filepath.Join(tmpDir, "new.yml")
	if err := os.WriteFile(file, []byte("title: b\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got := waitChange(t, changes)
	if got[0].Path != file || got[0].Removed {
		t.Errorf("got %+v", got[0])
	}
}

func TestWatcher_Removed(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "gone.json")
	if err := os.WriteFile(file, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	changes := startWatcher(t, tmpDir)
	if err := os.Remove(file); err != nil {
		t.Fatal(err)
	}

	got := waitChange(t, changes)
	if !got[0].Removed {
		t.Errorf("expected removal, got %+v", got[0])
	}
}

func TestWatcher_Ignore(t *testing.T) {
	w := NewWatcher(WatcherConfig{Ignore: []string{".git", "*.swp"}})

	tests := []struct {
		path string
		want bool
	}{
		{"docs/.git/HEAD", true},
		{"docs/page.yaml.swp", true},
		{"docs/page.yaml", false},
		{"docs/gitbook/page.yaml", false},
	}
	for _, tt := range tests {
		if got := w.shouldIgnore(tt.path); got != tt.want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcher_StopIdempotent(t *testing.T) {
	w := NewWatcher(WatcherConfig{Paths: []string{t.TempDir()}})
	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	deadline := time.Now().Add(time.Second)
	for !w.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	w.Stop()
	w.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Start did not return after Stop")
	}
}

func TestClassifyChange(t *testing.T) {
	tests := []struct {
		path string
		want ChangeType
	}{
		{"docs/index.yaml", ChangeDescription},
		{"docs/INDEX.YML", ChangeDescription},
		{"docs/page.json", ChangeDescription},
		{"htmlbuilder.json", ChangeConfig},
		{"docs/logo.png", ChangeAsset},
	}
	for _, tt := range tests {
		if got := classifyChange(tt.path); got != tt.want {
			t.Errorf("classifyChange(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestCollectWatchPaths(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.New()
	if err := cfg.SaveTo(filepath.Join(tmpDir, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	paths := CollectWatchPaths(cfg)
	want := []string{filepath.Join(tmpDir, "docs"), filepath.Join(tmpDir, config.ConfigFileName)}
	if len(paths) != len(want) {
		t.Fatalf("got %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestReloadHub_Broadcast(t *testing.T) {
	hub := NewReloadHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.ClientCount() != 1 {
		t.Fatalf("ClientCount() = %d, want 1", hub.ClientCount())
	}

	hub.NotifyReload("index.yaml")
	hub.NotifyError(errors.New("E131: bad type"))
	hub.NotifyError(nil)
	hub.ClearError()

	want := []ReloadMessage{
		{Type: ReloadTypeFull, File: "index.yaml"},
		{Type: ReloadTypeError, Error: "E131: bad type"},
		{Type: ReloadTypeClear},
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for _, w := range want {
		var msg ReloadMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("ReadJSON: %v", err)
		}
		if msg != w {
			t.Errorf("got %+v, want %+v", msg, w)
		}
	}
}

func dialHub(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestReloadHub_CloseDuringBroadcast(t *testing.T) {
	hub := NewReloadHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conns := []*websocket.Conn{dialHub(t, url), dialHub(t, url), dialHub(t, url)}

	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() < len(conns) && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.ClientCount() != len(conns) {
		t.Fatalf("ClientCount() = %d, want %d", hub.ClientCount(), len(conns))
	}

	// Drain so writes never block on full socket buffers.
	for _, c := range conns {
		go func(c *websocket.Conn) {
			for {
				if _, _, err := c.ReadMessage(); err != nil {
					return
				}
			}
		}(c)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				hub.NotifyReload("index.yaml")
			}
		}()
	}
	hub.Close()
	wg.Wait()

	if n := hub.ClientCount(); n != 0 {
		t.Errorf("ClientCount() after Close = %d, want 0", n)
	}

	late, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial after Close: %v", err)
	}
	defer late.Close()
	late.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := late.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Errorf("got %v, want a going-away close", err)
	}
	if n := hub.ClientCount(); n != 0 {
		t.Errorf("ClientCount() = %d, want 0", n)
	}
}

func TestServeScript(t *testing.T) {
	rec := httptest.NewRecorder()
	ServeScript(rec, httptest.NewRequest(http.MethodGet, ScriptPath, nil))

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/javascript") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), ReloadPath) {
		t.Error("script should connect to the reload endpoint")
	}
}
