// Package api serves the mini-app's order endpoints.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"optimizer/internal/model"
	"optimizer/internal/repository"
)

// catalogItem is a catalog row with the zero-quantity baseline the mini-app
// expects for a fresh selection.
type catalogItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
}

type handler struct {
	orders *repository.OrderRepository
	log    *zap.Logger
}

// New constructs the root http.Handler with all routes and middlewares applied.
func New(orders *repository.OrderRepository, log *zap.Logger) http.Handler {
	h := &handler{orders: orders, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, "GET")
			return
		}
		h.listProducts(w, r)
	})
	mux.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, "GET")
			return
		}
		h.listOrders(w, r)
	})
	mux.HandleFunc("/orders/upsert", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			methodNotAllowed(w, "POST")
			return
		}
		h.upsertOrder(w, r)
	})

	return withCORS(h.withRecover(h.withLogging(mux)))
}

func (h *handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.orders.ListProducts(r.Context())
	if err != nil {
		h.log.Error("list products", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	items := make([]catalogItem, 0, len(products))
	for _, p := range products {
		items = append(items, catalogItem{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Unit:     p.Unit,
			Quantity: 0,
		})
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		h.log.Error("list orders", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *handler) upsertOrder(w http.ResponseWriter, r *http.Request) {
	var doc model.OrderDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid order document")
		return
	}
	if doc.ID == "" {
		writeError(w, http.StatusBadRequest, "order id is required")
		return
	}

	if err := h.orders.UpsertOrder(r.Context(), doc); err != nil {
		h.log.Error("upsert order", zap.String("order", doc.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save order")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// The mini-app front end is served from a different origin.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}

func (h *handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				h.log.Error("panic in handler", zap.Any("panic", rec))
				writeError(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
