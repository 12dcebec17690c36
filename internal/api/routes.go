// Package api provides HTTP handlers for the color table server.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/klauspost/compress/gzhttp"
	"github.com/subsurface-colortables/server/internal/service"
	"github.com/subsurface-colortables/server/pkg/colortable"
)

// RouterConfig contains router configuration.
type RouterConfig struct {
	Service     *service.ColorTableService
	CORSOrigins []string
	Title       string
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(gzipMiddleware)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/info", infoHandler(cfg.Service, cfg.Title))

		r.Route("/colortables", func(r chi.Router) {
			r.Get("/", listHandler(cfg.Service))
			r.Get("/default", defaultHandler(cfg.Service))
			r.Get("/{name}", tableHandler(cfg.Service))
			r.Get("/{name}/legend", legendHandler(cfg.Service))
			r.Get("/{name}/preview.png", previewHandler(cfg.Service))
		})
	})

	return r
}

func gzipMiddleware(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

// tableName returns the {name} path parameter. Names containing "/"
// (e.g. "Time/Depth") arrive path-escaped.
func tableName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, colortable.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func infoHandler(svc *service.ColorTableService, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tables := svc.List(service.FilterAll)
		names := make([]string, len(tables))
		for i, t := range tables {
			names[i] = t.Name
		}
		writeJSON(w, map[string]interface{}{
			"title": title,
			"count": len(tables),
			"names": names,
			"cache": svc.CacheStats(),
		})
	}
}

// listHandler returns the catalogue. Query params: discrete=true|false,
// format=json|yaml.
func listHandler(svc *service.ColorTableService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		format, err := colortable.ParseFormat(q.Get("format"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		filter, err := service.ParseFilter(q.Get("discrete"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var data []byte
		if filter == service.FilterAll {
			data, err = svc.Encoded("", format)
		} else {
			var buf bytes.Buffer
			err = colortable.Encode(&buf, format, svc.List(filter))
			data = buf.Bytes()
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Write(data)
	}
}

func defaultHandler(svc *service.ColorTableService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.DefaultTable()
		if err != nil {
			writeLookupError(w, err)
			return
		}
		writeJSON(w, t)
	}
}

func tableHandler(svc *service.ColorTableService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, err := colortable.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		data, err := svc.Encoded(tableName(r), format)
		if err != nil {
			writeLookupError(w, err)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Write(data)
	}
}

func legendHandler(svc *service.ColorTableService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		legend, err := svc.Legend(tableName(r))
		if err != nil {
			writeLookupError(w, err)
			return
		}
		writeJSON(w, legend)
	}
}

func previewHandler(svc *service.ColorTableService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := svc.Preview(tableName(r))
		if err != nil {
			writeLookupError(w, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.Write(data)
	}
}
