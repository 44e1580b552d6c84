package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/graphport/graphport/pkg/cache"
	"github.com/graphport/graphport/pkg/errors"
	"github.com/graphport/graphport/pkg/format"
	"github.com/graphport/graphport/pkg/observability"
	"github.com/graphport/graphport/pkg/render"
)

// maxBodySize bounds uploaded graph files.
const maxBodySize = 32 << 20

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// formatInfo describes one entry of the capability listing.
type formatInfo struct {
	Format string `json:"format"`
	Read   bool   `json:"read"`
	Write  bool   `json:"write"`
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	formats := format.Formats()
	out := make([]formatInfo, 0, len(formats))
	for _, f := range formats {
		out = append(out, formatInfo{
			Format: string(f),
			Read:   format.CanRead(f),
			Write:  format.CanWrite(f),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleConvert reads the posted graph in the "from" format and writes it
// back in the "to" format.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	from, err := requiredFormat(r, "from")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	to, err := requiredFormat(r, "to")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	readOpts := format.ReadOptions{Directed: r.URL.Query().Get("directed") == "true"}
	g, err := format.ReadFrom(io.LimitReader(r.Body, maxBodySize), from, readOpts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := format.WriteTo(g, &buf, to, format.WriteOptions{}); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType(to))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handleRender draws the posted graph. The artifact is cached keyed by the
// body hash, the output format, and the drawing options.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	in, err := requiredFormat(r, "in")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	target := "svg"
	if t := r.URL.Query().Get("format"); t != "" {
		target = t
	}
	switch target {
	case "svg", "png", "dot":
	default:
		s.writeError(w, r, errors.New(errors.ErrCodeUnsupportedOp,
			"format %s is not a render target", target))
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading request body"))
		return
	}

	opts := s.renderOptions(r)
	key := cache.ArtifactKey(cache.Hash(body), target, string(in), opts)

	ttl := time.Duration(s.cfg.Cache.TTLHours) * time.Hour
	if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		observability.Cache().OnCacheHit(r.Context(), "artifact")
		w.Header().Set("Content-Type", renderContentType(target))
		w.Header().Set("X-Cache", "HIT")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}
	observability.Cache().OnCacheMiss(r.Context(), "artifact")

	readOpts := format.ReadOptions{Directed: r.URL.Query().Get("directed") == "true"}
	g, err := format.ReadFrom(bytes.NewReader(body), in, readOpts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	writeOpts := format.WriteOptions{Render: opts}
	start := time.Now()
	observability.Render().OnRenderStart(r.Context(), target)
	if target == "png" {
		err = format.WritePNG(g, &buf, writeOpts)
	} else {
		err = format.WriteTo(g, &buf, format.Format(target), writeOpts)
	}
	observability.Render().OnRenderComplete(r.Context(), target, time.Since(start), err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.cache.Set(r.Context(), key, buf.Bytes(), ttl); err != nil {
		s.logger.Warn("cache set failed", "error", err, "request_id", reqID(r.Context()))
	} else {
		observability.Cache().OnCacheSet(r.Context(), "artifact", buf.Len())
	}

	w.Header().Set("Content-Type", renderContentType(target))
	w.Header().Set("X-Cache", "MISS")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// renderOptions builds drawing options from query parameters, falling back
// to the configured defaults.
func (s *Server) renderOptions(r *http.Request) render.Options {
	q := r.URL.Query()
	opts := render.Options{
		Width:      s.cfg.Render.Width,
		Height:     s.cfg.Render.Height,
		VertexSize: s.cfg.Render.VertexSize,
		Layout:     s.cfg.Render.Layout,
	}
	if v, err := strconv.ParseFloat(q.Get("width"), 64); err == nil {
		opts.Width = v
	}
	if v, err := strconv.ParseFloat(q.Get("height"), 64); err == nil {
		opts.Height = v
	}
	if v, err := strconv.ParseFloat(q.Get("vertex-size"), 64); err == nil {
		opts.VertexSize = v
	}
	if l := q.Get("layout"); l != "" {
		opts.Layout = l
	}
	return opts
}

func requiredFormat(r *http.Request, param string) (format.Format, error) {
	v := r.URL.Query().Get(param)
	if v == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "missing required parameter %q", param)
	}
	return format.Parse(v)
}

func renderContentType(target string) string {
	switch target {
	case "png":
		return "image/png"
	default:
		return contentType(format.Format(target))
	}
}

func contentType(f format.Format) string {
	switch f {
	case format.SVG:
		return "image/svg+xml"
	case format.DOT:
		return "text/vnd.graphviz"
	case format.GraphML, format.GML:
		return "application/xml"
	case format.GraphMLz, format.Pickle:
		return "application/octet-stream"
	default:
		return "text/plain; charset=utf-8"
	}
}

// writeError maps coded errors to HTTP statuses and renders a JSON body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeValidation, errors.ErrCodeInvalidInput, errors.ErrCodeInvalidPath,
		errors.ErrCodeParse, errors.ErrCodeUnknownFormat, errors.ErrCodeAmbiguousFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeUnsupportedOp:
		status = http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err, "request_id", reqID(r.Context()))
	}

	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
