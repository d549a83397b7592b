// Package race serves the mini car game used as the canary workload.
package race

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type gamePage struct {
	URL string
}

// NewRouter creates the game router. metrics is mounted on /metrics when not nil.
func NewRouter(log logrus.FieldLogger, requestMetrics *Metrics, metrics http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	if requestMetrics != nil {
		r.Use(requestMetrics.Middleware)
	}
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render(w, log, http.StatusOK, "mini-car-game.html", gamePage{})
	})
	r.Get("/app/123/{username}", func(w http.ResponseWriter, r *http.Request) {
		render(w, log, http.StatusOK, "mini-car-game.html", gamePage{URL: chi.URLParam(r, "username")})
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render(w, log, http.StatusNotFound, "404.html", nil)
	})

	return r
}

func render(w http.ResponseWriter, log logrus.FieldLogger, status int, name string, data any) {
	buf := &bytes.Buffer{}
	if err := templates.ExecuteTemplate(buf, name, data); err != nil {
		log.WithError(err).WithField("template", name).Error("rendering template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// requestLogger logs every completed request with its status and duration.
func requestLogger(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.WithFields(logrus.Fields{
				"request_id":  middleware.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"remote_addr": r.RemoteAddr,
				"status":      ww.Status(),
				"bytes":       ww.BytesWritten(),
				"duration":    time.Since(start).String(),
			}).Info("request completed")
		})
	}
}
