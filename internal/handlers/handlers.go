// Package handlers exposes model generation over HTTP.
package handlers

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/gorilla/mux"

	"github.com/limaJavier/cargolp/pkg/lp"
	"github.com/limaJavier/cargolp/pkg/model"
)

const maxBodyBytes = 1 << 20

// Handlers holds the dependencies of the HTTP endpoints. A Generator is stateless, so one is shared by every request.
type Handlers struct {
	generator lp.Generator
	logger    logr.Logger
}

func NewHandlers(generator lp.Generator, logger logr.Logger) *Handlers {
	return &Handlers{
		generator: generator,
		logger:    logger,
	}
}

// Router registers the endpoints:
//
//	POST /v1/models  body: instance as JSON, YAML or the plain "k n" text, by Content-Type
//	GET  /healthz
func (h *Handlers) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", h.HealthCheck).Methods(http.MethodGet)
	router.HandleFunc("/v1/models", h.GenerateModel).Methods(http.MethodPost)
	return router
}

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

// GenerateModel answers with the LP model as text/plain.
// 400: unreadable body, 413: body over 1 MiB, 422: empty tables or zero availability, 500: model over the size limit.
func (h *Handlers) GenerateModel(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	} else if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	input, err := decodeInput(r.Header.Get("Content-Type"), body)
	if errors.Is(err, model.ErrNoCompartments) || errors.Is(err, model.ErrNoLoads) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lpModel, err := h.generator.Generate(input)
	if errors.Is(err, lp.ErrDivisionByZero) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	} else if err != nil {
		h.logger.Error(err, "cannot generate model", "k", input.K(), "n", input.N())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.V(1).Info("model generated", "variables", lpModel.Variables, "constraints", lpModel.Constraints)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Model-Variables", strconv.Itoa(lpModel.Variables))
	w.Header().Set("X-Model-Constraints", strconv.Itoa(lpModel.Constraints))
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, lpModel.Text)
}

func decodeInput(contentType string, body []byte) (model.ModelInput, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return model.InputFromYaml(body)
	case "text/plain":
		return model.ReadText(bytes.NewReader(body))
	default:
		return model.InputFromJson(body)
	}
}
