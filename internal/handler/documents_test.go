package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/pharmadesk/api/internal/document"
	"github.com/pharmadesk/api/internal/handler"
	"github.com/pharmadesk/api/internal/ws"
)

// mockBroadcaster records broadcast events.
type mockBroadcaster struct {
	kinds  []string
	events []ws.Event
}

func (m *mockBroadcaster) Broadcast(kind string, event ws.Event) {
	m.kinds = append(m.kinds, kind)
	m.events = append(m.events, event)
}

func newDocumentsRouter(hub handler.Broadcaster) chi.Router {
	r := chi.NewRouter()
	h := handler.NewDocumentsHandler(hub)
	r.Route("/documents", h.RegisterRoutes)
	return r
}

const saleBody = `{
	"header": {"customer_name": "Jane Doe", "payment_method": "CASH"},
	"items": [{"product_ref": "1", "display_name": "Paracetamol 500mg", "quantity": 3, "unit_price": "10", "discount_percent": "0", "line_total": "30"}],
	"adjustments": {"tax_rate_percent": "10", "shipping_cost": "0"},
	"totals": {"subtotal": "30", "tax_amount": "3", "shipping_cost": "0", "grand_total": "33"}
}`

func TestDocumentsCreate(t *testing.T) {
	hub := &mockBroadcaster{}
	r := newDocumentsRouter(hub)

	req := httptest.NewRequest(http.MethodPost, "/documents/sale", strings.NewReader(saleBody))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Error("receipt ID is empty")
	}

	if len(hub.events) != 1 || hub.kinds[0] != "SALE" {
		t.Fatalf("broadcast kinds = %v, want [SALE]", hub.kinds)
	}
	if hub.events[0].Type != "document.submitted" {
		t.Errorf("event type = %q", hub.events[0].Type)
	}
}

func TestDocumentsCreateRejectsEmptyItems(t *testing.T) {
	r := newDocumentsRouter(&mockBroadcaster{})

	req := httptest.NewRequest(http.MethodPost, "/documents/sale", strings.NewReader(`{"items": []}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDocumentsCreateInvalidKind(t *testing.T) {
	r := newDocumentsRouter(&mockBroadcaster{})

	req := httptest.NewRequest(http.MethodPost, "/documents/invoices", strings.NewReader(saleBody))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDocumentsListNewestFirst(t *testing.T) {
	r := newDocumentsRouter(&mockBroadcaster{})

	for _, name := range []string{"first", "second"} {
		body := strings.Replace(saleBody, "Jane Doe", name, 1)
		req := httptest.NewRequest(http.MethodPost, "/documents/sale", strings.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed submit status = %d", rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/documents/sale", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Documents []document.Document `json:"documents"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Documents) != 2 {
		t.Fatalf("documents = %d, want 2", len(resp.Documents))
	}
	if resp.Documents[0].Header.CustomerName != "second" {
		t.Errorf("first listed = %q, want newest (second)", resp.Documents[0].Header.CustomerName)
	}
	if resp.Documents[0].ID == "" {
		t.Error("stored document has no receipt ID")
	}
}

func TestDocumentsListIsolatedPerKind(t *testing.T) {
	r := newDocumentsRouter(&mockBroadcaster{})

	req := httptest.NewRequest(http.MethodPost, "/documents/sale", strings.NewReader(saleBody))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/documents/delivery_note", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp struct {
		Documents []document.Document `json:"documents"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Documents) != 0 {
		t.Errorf("delivery_note documents = %d, want 0", len(resp.Documents))
	}
}
