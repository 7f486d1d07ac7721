// Package httpapi отдаёт анализ снимков и планирование маршрутов по HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	app "debris-analyzer/internal/application"
	"debris-analyzer/internal/container"
	"debris-analyzer/internal/domain/entity"
)

const (
	Version = "1.0.0"

	defaultMaxUpload = 16 << 20
	multipartMemory  = 8 << 20
)

var allowedExtensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true, "bmp": true, "tiff": true,
}

// Options настройки HTTP-сервера
type Options struct {
	MaxUploadBytes int64
	CORSOrigin     string
}

// Server обрабатывает запросы API
type Server struct {
	analysis  *app.AnalysisService
	planning  *app.PlanningService
	maxUpload int64
	origin    string
}

// NewServer создаёт сервер поверх сервисов контейнера
func NewServer(c *container.Container, opts Options) *Server {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = defaultMaxUpload
	}
	if opts.CORSOrigin == "" {
		opts.CORSOrigin = "*"
	}
	return &Server{
		analysis:  c.AnalysisService,
		planning:  c.PlanningService,
		maxUpload: opts.MaxUploadBytes,
		origin:    opts.CORSOrigin,
	}
}

// Handler возвращает маршрутизатор со всеми middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/plan-path", s.handlePlanPath)

	return withRequestID(withAccessLog(withCORS(s.origin, mux)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "Space Debris Analyzer API is running",
		Version: Version,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "No image file provided")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		// Часть с пустым именем файла multipart считает обычным полем.
		if _, ok := r.MultipartForm.Value["image"]; ok {
			writeError(w, http.StatusBadRequest, "No file selected")
			return
		}
		writeError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "No file selected")
		return
	}
	if !allowedFile(header.Filename) {
		writeError(w, http.StatusBadRequest, "Invalid file type")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read image")
		return
	}

	result, err := s.analysis.Analyze(r.Context(), data)
	if err != nil {
		if errors.Is(err, entity.ErrImageDecode) {
			writeError(w, http.StatusBadRequest, "Could not decode image")
			return
		}
		log.Printf("[%s] analysis failed: %v", RequestID(r.Context()), err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Analysis failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, NewAnalyzeResponse(result))
}

func (s *Server) handlePlanPath(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	resp, err := Plan(r.Context(), s.planning, req)
	if err != nil {
		status, msg := StatusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("[%s] path planning failed: %v", RequestID(r.Context()), err)
		}
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ErrNoDebris — в запросе нет ни одного объекта
var ErrNoDebris = &entity.InputError{Field: "debris_list", Reason: "No debris objects provided"}

// Plan выполняет запрос планирования; используется сервером и CLI.
func Plan(ctx context.Context, svc *app.PlanningService, req PlanRequest) (*PlanResponse, error) {
	if len(req.DebrisList) == 0 {
		return nil, ErrNoDebris
	}

	start, debris, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	result, err := svc.PlanPath(ctx, start, debris)
	if err != nil {
		return nil, err
	}

	resp := NewPlanResponse(result)
	return &resp, nil
}

// StatusFor сопоставляет ошибку планирования с HTTP-статусом и сообщением
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrNoDebris):
		return http.StatusBadRequest, ErrNoDebris.Reason
	case errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, fmt.Sprintf("Path planning failed: %v", err)
	}
}

func allowedFile(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return allowedExtensions[strings.ToLower(ext)]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
