package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"

	"github.com/optionscope/optionscope/src/models"
	"github.com/optionscope/optionscope/src/scanner"
	"github.com/optionscope/optionscope/src/signals"
)

var queryDecoder = schema.NewDecoder()

type SignalRequest struct {
	Symbol    string `schema:"symbol,required"`
	Direction string `schema:"direction,required"`
}

type TopRequest struct {
	Direction string `schema:"direction,required"`
	N         int    `schema:"n"`
}

type TopResponse struct {
	Direction models.Direction  `json:"direction"`
	Contracts []models.Contract `json:"contracts"`
}

// Handler exposes the signal builder and scanner over HTTP. It is a thin
// presentation layer; all decisions happen in the pipeline.
type Handler struct {
	builder *signals.Builder
	scanner *scanner.Scanner
}

func NewRouter(builder *signals.Builder, sc *scanner.Scanner) *mux.Router {
	h := &Handler{
		builder: builder,
		scanner: sc,
	}

	router := mux.NewRouter()
	router.HandleFunc("/signal", h.handleSignal).Methods(http.MethodGet)
	router.HandleFunc("/top10", h.handleTop).Methods(http.MethodGet)

	return router
}

func (h *Handler) handleSignal(w http.ResponseWriter, r *http.Request) {
	var req SignalRequest
	if err := queryDecoder.Decode(&req, r.URL.Query()); err != nil {
		setErrorResponse(http.StatusBadRequest, fmt.Errorf("handleSignal: decode query: %w", err), w)
		return
	}

	report := h.builder.GenerateSignal(r.Context(), req.Symbol, req.Direction)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(report)); err != nil {
		log.Errorf("handleSignal: write response: %v", err)
	}
}

func (h *Handler) handleTop(w http.ResponseWriter, r *http.Request) {
	var req TopRequest
	if err := queryDecoder.Decode(&req, r.URL.Query()); err != nil {
		setErrorResponse(http.StatusBadRequest, fmt.Errorf("handleTop: decode query: %w", err), w)
		return
	}

	direction, err := models.ParseDirection(req.Direction)
	if err != nil {
		setErrorResponse(http.StatusBadRequest, err, w)
		return
	}

	contracts := h.scanner.TopAcrossWatchlist(r.Context(), direction, req.N)

	response := TopResponse{
		Direction: direction,
		Contracts: contracts,
	}

	if err := setResponse(response, w); err != nil {
		log.Errorf("handleTop: %v", err)
	}
}

func setResponse(response interface{}, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("setResponse: encode: %w", err)
	}

	return nil
}

func setErrorResponse(statusCode int, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if encodeErr := json.NewEncoder(w).Encode(models.ErrorDTO{Msg: err.Error()}); encodeErr != nil {
		log.Errorf("setErrorResponse: encode: %v", encodeErr)
	}
}
