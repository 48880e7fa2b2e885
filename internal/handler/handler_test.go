package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bloomlavka/bloom_api/internal/models"
	"github.com/bloomlavka/bloom_api/internal/repository"
	"github.com/bloomlavka/bloom_api/internal/service"
)

type fakeNotifier struct {
	notified int
	err      error
}

func (n *fakeNotifier) Notify(context.Context, string) error {
	if n.err != nil {
		return n.err
	}
	n.notified++
	return nil
}

func setupRouter(t *testing.T, flowers []models.Flower, notifier service.Notifier) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewFlowerRepository(filepath.Join(t.TempDir(), "flowers.json"))
	if err := repo.WriteAll(flowers); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	catalogSvc := service.NewCatalogService(repo, 10)
	orderSvc := service.NewOrderService(notifier)

	flowerHandler := NewFlowerHandler(catalogSvc)
	orderHandler := NewOrderHandler(orderSvc)

	router := gin.New()
	router.GET("/api/flowers", flowerHandler.GetFlowers)
	router.GET("/api/flowers/:id/quote", flowerHandler.GetQuote)
	router.POST("/api/order", orderHandler.CreateOrder)
	return router
}

var testCatalog = []models.Flower{
	{ID: 1, Name: "White Rose", Latin: "Rosa White", SupplierPrice: 350, PackSize: 25, Markup: 0.3},
	{ID: 2, Name: "Tulip", Latin: "Tulipa", SupplierPrice: 120, PackSize: 50, Markup: 0.25},
}

func TestGetFlowers(t *testing.T) {
	router := setupRouter(t, testCatalog, &fakeNotifier{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flowers", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var flowers []models.Flower
	if err := json.Unmarshal(w.Body.Bytes(), &flowers); err != nil {
		t.Fatalf("response is not a flower array: %v", err)
	}
	if len(flowers) != 2 {
		t.Fatalf("expected 2 flowers, got %d", len(flowers))
	}
	if flowers[0].PricePerPiece != 455 {
		t.Errorf("card price = %d, want 455", flowers[0].PricePerPiece)
	}
}

func TestGetQuote(t *testing.T) {
	router := setupRouter(t, testCatalog, &fakeNotifier{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flowers/1/quote?quantity=30", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var quote service.Quote
	if err := json.Unmarshal(w.Body.Bytes(), &quote); err != nil {
		t.Fatalf("bad quote body: %v", err)
	}
	if quote.TotalPrice != 20650 || quote.PricePerPiece != 689 {
		t.Errorf("quote = %+v, want total 20650 per-piece 689", quote)
	}
}

func TestGetQuoteUnknownFlower(t *testing.T) {
	router := setupRouter(t, testCatalog, &fakeNotifier{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flowers/99/quote?quantity=25", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetQuoteBadParams(t *testing.T) {
	router := setupRouter(t, testCatalog, &fakeNotifier{})

	for _, path := range []string{"/api/flowers/abc/quote", "/api/flowers/1/quote?quantity=x"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, w.Code)
		}
	}
}

func postOrder(router *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrder(t *testing.T) {
	notifier := &fakeNotifier{}
	router := setupRouter(t, testCatalog, notifier)

	w := postOrder(router, map[string]any{
		"flower":     map[string]any{"id": 1, "name": "White Rose"},
		"quantity":   25,
		"totalPrice": 11375,
		"phone":      "+7 (900) 123-45-67",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["success"] != true {
		t.Errorf("body = %s, want {\"success\":true}", w.Body.String())
	}
	if notifier.notified != 1 {
		t.Errorf("notified %d times, want 1", notifier.notified)
	}
}

func TestCreateOrderMissingContact(t *testing.T) {
	notifier := &fakeNotifier{}
	router := setupRouter(t, testCatalog, notifier)

	w := postOrder(router, map[string]any{
		"flower":     map[string]any{"id": 1, "name": "White Rose"},
		"quantity":   25,
		"totalPrice": 11375,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] == "" {
		t.Errorf("body = %s, want an error message", w.Body.String())
	}
	if notifier.notified != 0 {
		t.Error("rejected order was dispatched")
	}
}

func TestCreateOrderDispatchFailure(t *testing.T) {
	router := setupRouter(t, testCatalog, &fakeNotifier{err: errors.New("telegram down")})

	w := postOrder(router, map[string]any{
		"flower":     map[string]any{"id": 1, "name": "White Rose"},
		"quantity":   25,
		"totalPrice": 11375,
		"phone":      "+7 (900) 123-45-67",
	})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestCreateOrderTelegramUserContact(t *testing.T) {
	notifier := &fakeNotifier{}
	router := setupRouter(t, testCatalog, notifier)

	w := postOrder(router, map[string]any{
		"flower":     map[string]any{"id": 2, "name": "Tulip"},
		"quantity":   50,
		"totalPrice": 7500,
		"tgUser":     map[string]any{"id": 42, "username": "flowerfan"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if notifier.notified != 1 {
		t.Errorf("notified %d times, want 1", notifier.notified)
	}
}
