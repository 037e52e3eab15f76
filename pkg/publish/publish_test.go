package publish

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/go-cmp/cmp"

	"github.com/SRombauts/HtmlBuilder/internal/errors"
	"github.com/SRombauts/HtmlBuilder/pkg/dom"
)

type putCall struct {
	Bucket, Key, ContentType, CacheControl, Body string
}

type fakeS3 struct {
	mu    sync.Mutex
	calls []putCall
	fail  map[string]error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	key := aws.ToString(in.Key)
	if err := f.fail[key]; err != nil {
		return nil, err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, putCall{
		Bucket:       aws.ToString(in.Bucket),
		Key:          key,
		ContentType:  aws.ToString(in.ContentType),
		CacheControl: aws.ToString(in.CacheControl),
		Body:         string(body),
	})
	return &s3.PutObjectOutput{}, nil
}

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(&fakeS3{}, ""); !errors.HasCode(err, "E151") {
		t.Errorf("got %v, want E151", err)
	}
}

func TestPublish(t *testing.T) {
	fake := &fakeS3{}
	p, err := New(fake, "site", WithPrefix("pages/"), WithCacheControl("max-age=60"))
	if err != nil {
		t.Fatal(err)
	}

	doc := dom.NewDocument("Hi")
	if err := p.Publish(context.Background(), "index.html", doc); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	want := []putCall{{
		Bucket:       "site",
		Key:          "pages/index.html",
		ContentType:  "text/html; charset=utf-8",
		CacheControl: "max-age=60",
		Body:         doc.Render(),
	}}
	if diff := cmp.Diff(want, fake.calls); diff != "" {
		t.Errorf("PutObject calls mismatch (-want +got):\n%s", diff)
	}
}

func TestPublishUsesRenderer(t *testing.T) {
	fake := &fakeS3{}
	r := dom.NewRenderer(dom.RenderConfig{Indent: "\t", Escape: true})
	p, _ := New(fake, "site", WithRenderer(r))

	doc := dom.NewDocument("a & b")
	if err := p.Publish(context.Background(), "x.html", doc); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(fake.calls[0].Body, "\t\t<title>a &amp; b</title>") {
		t.Errorf("body not rendered with the configured renderer:\n%s", fake.calls[0].Body)
	}
	if fake.calls[0].CacheControl != "" {
		t.Error("Cache-Control should be unset by default")
	}
}

func TestPublishFailure(t *testing.T) {
	boom := stderrors.New("access denied")
	fake := &fakeS3{fail: map[string]error{"x.html": boom}}
	p, _ := New(fake, "site")

	err := p.Publish(context.Background(), "x.html", dom.NewDocument(""))
	if !errors.HasCode(err, "E150") {
		t.Errorf("got %v, want E150", err)
	}
	if !stderrors.Is(err, boom) {
		t.Error("upload error should be wrapped")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestPublishDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "title: B\n")
	writeFile(t, dir, "a.yml", "title: A\n")

	fake := &fakeS3{}
	p, _ := New(fake, "site", WithPrefix("p/"))

	keys, err := p.PublishDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("PublishDir: %v", err)
	}
	if diff := cmp.Diff([]string{"p/a.html", "p/b.html"}, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(fake.calls[1].Body, "<title>B</title>") {
		t.Errorf("unexpected body %q", fake.calls[1].Body)
	}
}

func TestPublishDirStopsOnError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "title: A\n")
	writeFile(t, dir, "b.yaml", "body:\n  - type: nosuchtag\n")
	writeFile(t, dir, "c.yaml", "title: C\n")

	fake := &fakeS3{}
	p, _ := New(fake, "site")

	keys, err := p.PublishDir(context.Background(), dir)
	if !errors.HasCode(err, "E131") {
		t.Errorf("got %v, want E131", err)
	}
	if diff := cmp.Diff([]string{"a.html"}, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.PublishDir(ctx, dir); !stderrors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
