package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"seafreight/internal/rate"
)

type Server struct {
	est rate.Estimator
}

// New builds the HTTP API around est. A nil est falls back to sea freight.
func New(est rate.Estimator) http.Handler {
	if est == nil {
		est = rate.NewSeaFreight()
	}
	s := &Server{est: est}
	r := chi.NewRouter()
	// Observability: Request ID and basic logger
	r.Use(requestIDMiddleware)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Get("/rates", s.handleGetRates)
	r.Post("/rates", s.handlePostRates)
	r.Get("/rates/options", s.handleGetOptions)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Rates
type RateRequest struct {
	WeightKg      float64 `json:"weight_kg"`
	DistanceKm    float64 `json:"distance_km"`
	ContainerSize string  `json:"container_size"`
	GoodsType     string  `json:"goods_type"`
}

type RateResponse struct {
	Currency      string  `json:"currency"`
	Amount        float64 `json:"amount"`
	AmountRounded float64 `json:"amount_rounded"`
	Display       string  `json:"display"`
	ContainerSize string  `json:"container_size"`
	GoodsType     string  `json:"goods_type"`
}

type OptionsResponse struct {
	ContainerSizes []rate.ContainerSize `json:"container_sizes"`
	GoodsTypes     []rate.GoodsType     `json:"goods_types"`
}

func (s *Server) handleGetRates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	weight, err := parseFloatField(q.Get("weight_kg"))
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid_request", "weight_kg must be a number")
		return
	}
	distance, err := parseFloatField(q.Get("distance_km"))
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid_request", "distance_km must be a number")
		return
	}
	s.estimate(w, RateRequest{
		WeightKg:      weight,
		DistanceKm:    distance,
		ContainerSize: q.Get("container_size"),
		GoodsType:     q.Get("goods_type"),
	})
}

func (s *Server) handlePostRates(w http.ResponseWriter, r *http.Request) {
	var req RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	s.estimate(w, req)
}

func (s *Server) estimate(w http.ResponseWriter, req RateRequest) {
	quote, err := s.est.Estimate(rate.Request{
		WeightKg:      req.WeightKg,
		DistanceKm:    req.DistanceKm,
		ContainerSize: req.ContainerSize,
		GoodsType:     req.GoodsType,
	})
	if err != nil {
		var ie *rate.InvalidInputError
		if errors.As(err, &ie) {
			writeFieldErrorJSON(w, http.StatusUnprocessableEntity, "invalid_input", ie.Reason, ie.Field)
			return
		}
		log.Println("estimate error:", err)
		writeErrorJSON(w, http.StatusInternalServerError, "estimate_error", "failed to estimate rate")
		return
	}
	res := RateResponse{
		Currency:      quote.Currency,
		Amount:        quote.Amount,
		AmountRounded: quote.Rounded(),
		Display:       quote.Display(),
		ContainerSize: string(quote.ContainerSize),
		GoodsType:     string(quote.GoodsType),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (s *Server) handleGetOptions(w http.ResponseWriter, r *http.Request) {
	res := OptionsResponse{
		ContainerSizes: rate.ContainerSizes(),
		GoodsTypes:     rate.GoodsTypes(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// writeErrorJSON writes a standardized JSON error response:
// {"error": {"code": string, "message": string}}
func writeErrorJSON(w http.ResponseWriter, status int, code string, message string) {
	writeFieldErrorJSON(w, status, code, message, "")
}

// writeFieldErrorJSON is writeErrorJSON plus the offending input field, when known.
func writeFieldErrorJSON(w http.ResponseWriter, status int, code, message, field string) {
	body := map[string]string{
		"code":    code,
		"message": message,
	}
	if field != "" {
		body["field"] = field
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": body})
}

// requestIDMiddleware ensures X-Request-ID is set on the response.
// If provided in the request header, it is propagated; otherwise a UUID is generated.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := strings.TrimSpace(r.Header.Get("X-Request-ID"))
		if rid == "" {
			rid = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r)
	})
}

// parseFloatField parses a query value. Empty values become 0 so the
// calculator reports them as non-positive.
func parseFloatField(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
