package contador

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"unicode/utf8"

	"github.com/gorilla/mux"
)

type Options struct {
	// File is read by the /obtener_archivo handler.
	File string
	// StoreFileContent makes a successful file read replace the content shown
	// on the home page. When false the content is only logged.
	StoreFileContent bool
	Logger           *slog.Logger
	Publisher        Publisher
}

type Server struct {
	state     *AppState
	opts      Options
	log       *slog.Logger
	publisher Publisher
	metrics   *metrics
}

func NewServer(state *AppState, opts Options) *Server {
	if opts.File == "" {
		opts.File = DefaultFile
	}
	s := &Server{
		state:     state,
		opts:      opts,
		log:       opts.Logger,
		publisher: opts.Publisher,
		metrics:   newMetrics(state),
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.publisher == nil {
		s.publisher = NopPublisher{}
	}
	return s
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.metrics.middleware)
	s.metrics.instrumentFallbacks(r)

	r.HandleFunc("/", s.Home).Methods(http.MethodGet)
	r.HandleFunc("/incrementar", s.Increment).Methods(http.MethodPost)
	r.HandleFunc("/obtener_archivo", s.ReadFile).Methods(http.MethodPost)
	r.HandleFunc("/calcular", s.Calculate).Methods(http.MethodPost)
	r.Handle("/metrics", s.metrics.handler()).Methods(http.MethodGet)
	return r
}

func (s *Server) publish(ctx context.Context, event Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("publish event", "type", event.Type, "err", err)
	}
}

func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	var page bytes.Buffer
	if err := RenderHome(&page, s.state.Snapshot()); err != nil {
		s.log.Error("render home", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page.Bytes())
}

func (s *Server) Increment(w http.ResponseWriter, r *http.Request) {
	count := s.state.Increment()

	event := NewEvent(EventIncrement)
	event.Count = count
	s.publish(r.Context(), event)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: invalid UTF-8", path)
	}
	return string(data), nil
}

func (s *Server) ReadFile(w http.ResponseWriter, r *http.Request) {
	content, err := readText(s.opts.File)
	if err != nil {
		s.log.Error("read file", "file", s.opts.File, "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.log.Info("file content", "file", s.opts.File, "content", content)
	if s.opts.StoreFileContent {
		s.state.SetFileContent(content)
	}

	event := NewEvent(EventFileRead)
	event.Bytes = len(content)
	s.publish(r.Context(), event)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) Calculate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	input, err := ParseCalculatorInput(r.PostForm)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := Calculate(input)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	event := NewEvent(EventCalculation)
	event.Operation = input.Operation
	event.Result = result
	s.publish(r.Context(), event)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(FormatResult(result)))
}
