package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"optimizer/internal/model"
	"optimizer/internal/repository"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	db, err := repository.NewDB(":memory:", zap.NewNop())
	require.NoError(t, err)
	return New(repository.NewOrderRepository(db), zap.NewNop())
}

func TestGetProductsReturnsSeededCatalog(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 81)
	for _, item := range items {
		require.Zero(t, item.Quantity, "catalog quantities reset to the zero baseline")
	}
}

func TestOrderUpsertRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	doc := model.OrderDocument{
		ID:     "O1",
		Status: "sent_to_financier",
		Products: []model.OrderLine{
			{ID: "1", Name: "Молоко (Sut)", Category: "🥛 Молочные продукты", Quantity: 5, Unit: "л"},
			{ID: "45", Name: "Сахар (Shakar)", Category: "☕ Напитки и сладкое", Quantity: 2, Unit: "кг"},
		},
		CreatedAt: "2026-08-30T10:00:00Z",
		Branch:    "uchtepa",
	}
	body, err := json.Marshal(doc)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders/upsert", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"success"}`, rec.Body.String())

	// Re-upsert with a single line: the whole document is replaced.
	doc.Products = doc.Products[:1]
	body, err = json.Marshal(doc)
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders/upsert", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []model.OrderDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	require.Equal(t, "O1", orders[0].ID)
	require.Len(t, orders[0].Products, 1)
}

func TestOrderUpsertRejectsBadInput(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders/upsert", bytes.NewReader([]byte("not json"))))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders/upsert", bytes.NewReader([]byte(`{"status":"new"}`))))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, "GET", rec.Header().Get("Allow"))

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/upsert", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/orders", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
