package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quality-fastfood/db"
	"quality-fastfood/models"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return New()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var e struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return e.Detail
}

func validOrderRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		CustomerName: "John Doe",
		Phone:        "9876543210",
		Address:      "12 Marine Drive, Mumbai",
		Items: []models.OrderItem{
			{ItemID: 1, Name: "Classic Vada Pav", Category: "Vada Pav", Price: 25, Quantity: 2},
		},
	}
}

func TestGetMenuShape(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodGet, "/menu", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var menu models.MenuResponse
	if err := json.Unmarshal(w.Body.Bytes(), &menu); err != nil {
		t.Fatalf("decode menu: %v", err)
	}
	if len(menu.Categories) != 5 {
		t.Errorf("categories = %d, want 5", len(menu.Categories))
	}

	seen := map[int64]bool{}
	for _, cat := range menu.Categories {
		for _, it := range cat.Items {
			if seen[it.ID] {
				t.Errorf("duplicate menu item id %d", it.ID)
			}
			seen[it.ID] = true
			if it.Price <= 0 {
				t.Errorf("item %d has non-positive price %d", it.ID, it.Price)
			}
			if it.Category != cat.Category {
				t.Errorf("item %d category %q under group %q", it.ID, it.Category, cat.Category)
			}
		}
	}
	if len(seen) != 22 {
		t.Errorf("menu has %d items, want 22", len(seen))
	}
}

func TestGetMenuItem(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/menu/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var item models.MenuItem
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode item: %v", err)
	}
	if item.Name != "Classic Vada Pav" || item.Price != 25 {
		t.Errorf("unexpected item: %+v", item)
	}

	w = doJSON(t, router, http.MethodGet, "/menu/999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(detail(t, w), "999") {
		t.Errorf("detail should name the missing id: %s", detail(t, w))
	}
}

func TestCreateOrderRejectsUnknownItem(t *testing.T) {
	router := newTestRouter()
	req := validOrderRequest()
	req.Items[0].ItemID = 99

	w := doJSON(t, router, http.MethodPost, "/order", req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := detail(t, w); got != "Invalid item ID: 99" {
		t.Errorf("detail = %q", got)
	}
}

func TestCreateOrderRejectsPriceMismatch(t *testing.T) {
	router := newTestRouter()
	req := validOrderRequest()
	req.Items[0].Price = 999

	w := doJSON(t, router, http.MethodPost, "/order", req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := detail(t, w); !strings.Contains(got, "Price mismatch") {
		t.Errorf("detail = %q, want price mismatch", got)
	}
}

func TestCreateOrderRejectsBadPhone(t *testing.T) {
	router := newTestRouter()
	req := validOrderRequest()
	req.Phone = "5876543210"

	w := doJSON(t, router, http.MethodPost, "/order", req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := detail(t, w); !strings.Contains(got, "Indian mobile") {
		t.Errorf("detail = %q, want phone message", got)
	}
}

func TestCreateOrderRejectsMissingFields(t *testing.T) {
	router := newTestRouter()
	req := validOrderRequest()
	req.Address = ""

	w := doJSON(t, router, http.MethodPost, "/order", req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	router := newTestRouter()
	req := validOrderRequest()
	req.Items = nil

	w := doJSON(t, router, http.MethodPost, "/order", req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

// Integration test: requires a database. Skips when no pool is configured.
func TestCreateAndFetchOrder_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping order integration test in short mode")
	}
	if db.Pool == nil {
		t.Skip("skipping order integration test: no DB pool")
	}
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/order", validOrderRequest())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var resp models.OrderSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || !strings.HasPrefix(resp.OrderID, "QFF-") {
		t.Fatalf("unexpected response: %+v", resp)
	}

	w = doJSON(t, router, http.MethodGet, "/orders/"+resp.OrderID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("fetch status = %d, want 200", w.Code)
	}
	var order models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.TotalPrice != 50 {
		t.Errorf("total_price = %d, want 50", order.TotalPrice)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Errorf("unexpected items: %+v", order.Items)
	}
}

func TestNewOrderIDFormat(t *testing.T) {
	id := NewOrderID()
	if !strings.HasPrefix(id, "QFF-") || len(id) != 12 {
		t.Errorf("order id %q should look like QFF-XXXXXXXX", id)
	}
	if id == NewOrderID() {
		t.Error("order ids should be unique")
	}
}
