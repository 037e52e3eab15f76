package server

import (
	"bytes"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/SRombauts/HtmlBuilder/internal/dev"
	"github.com/SRombauts/HtmlBuilder/internal/errors"
	"github.com/SRombauts/HtmlBuilder/pkg/dom"
	"github.com/SRombauts/HtmlBuilder/pkg/layout"
)

// handleIndex lists every description of the source directory.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	title := s.cfg.Name
	if title == "" {
		title = "HtmlBuilder"
	}

	doc := dom.NewDocument(title)
	doc.AddToHead(dom.NewMetaCharset("utf-8"))
	s.addReloadScript(doc)

	body := doc.Append(dom.Heading1(title))
	files, err := layout.Glob(s.cfg.SourcePath())
	if err != nil {
		s.logger.Warn("cannot list descriptions", "dir", s.cfg.SourcePath(), "error", err)
	}
	if len(files) == 0 {
		body.AppendChild(dom.Paragraph("No descriptions in " + s.cfg.Paths.Source))
	} else {
		list := dom.NewList(false).ID("documents")
		for _, f := range files {
			name := layout.Name(f)
			item := dom.NewListItem()
			item.AppendChild(dom.Anchor(name, "/docs/"+url.PathEscape(name)))
			list.Append(item)
		}
		body.AppendChild(list)
	}

	s.writeDocument(w, doc)
}

// handleDocument builds and renders one description.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	path, err := layout.Find(s.cfg.SourcePath(), name)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}

	start := time.Now()
	_, span := s.tracer.Start(r.Context(), "render",
		trace.WithAttributes(attribute.String("htmlbuilder.document", name)),
	)
	defer span.End()

	doc, err := layout.BuildFile(path)
	if err != nil {
		e := errors.FromError(err, "E130")
		s.metrics.ObserveRenderError(e.Code)
		span.RecordError(err)
		span.SetStatus(codes.Error, e.Code)
		s.logger.Warn("description failed to build", "document", name, "error", err)
		s.writeError(w, http.StatusUnprocessableEntity, e)
		return
	}
	s.addReloadScript(doc)

	n := s.writeDocument(w, doc)
	span.SetAttributes(attribute.Int("htmlbuilder.bytes", n))
	s.metrics.ObserveRender(name, n, time.Since(start))
}

func (s *Server) addReloadScript(doc *dom.Document) {
	if s.cfg.Serve.Watch {
		doc.AddToHead(dom.NewScript(dev.ScriptPath))
	}
}

// writeDocument renders doc with the configured renderer and returns the
// number of bytes written.
func (s *Server) writeDocument(w http.ResponseWriter, doc *dom.Document) int {
	var buf bytes.Buffer
	if err := s.renderer.WriteDocument(&buf, doc); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return 0
	}
	n := buf.Len()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Debug("write response failed", "error", err)
	}
	return n
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	http.Error(w, err.Error(), status)
}
