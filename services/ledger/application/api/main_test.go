package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sitebooks/backend/pkg/app"
	"github.com/sitebooks/backend/pkg/config"
	"github.com/sitebooks/backend/pkg/logger"
	"github.com/sitebooks/backend/services/ledger/infrastructure/persistence/memory"
)

// newTestRouter mounts the ledger routes on the in-memory store, the same
// wiring cmd/api uses when DATABASE_URL is unset.
func newTestRouter() chi.Router {
	a := &app.Application{
		Store:  memory.NewStore(),
		Logger: logger.New(&config.Config{LogLevel: "error"}),
	}
	r := chi.NewRouter()
	LedgerRoutes(r, a)
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestPostTransaction(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/transactions", map[string]any{
		"date":        "2024-03-01",
		"type":        "expense",
		"description": "Office rent",
		"amount":      150000,
		"created_by":  "owner",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID        string `json:"id"`
		Date      string `json:"date"`
		Type      string `json:"type"`
		CreatedBy string `json:"created_by"`
	}
	decode(t, w, &resp)
	if resp.Date != "2024-03-01" || resp.Type != "expense" || resp.CreatedBy != "owner" {
		t.Errorf("unexpected response: %+v", resp)
	}

	list := doJSON(t, r, http.MethodGet, "/transactions", nil)
	if list.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", list.Code)
	}
	var txs []struct {
		ID string `json:"id"`
	}
	decode(t, list, &txs)
	if len(txs) != 1 || txs[0].ID != resp.ID {
		t.Errorf("expected the created transaction in the list, got %+v", txs)
	}
}

func TestPostTransaction_InvalidType(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/transactions", map[string]any{
		"date":        "2024-03-01",
		"type":        "transfer",
		"description": "x",
		"amount":      10,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPostTransaction_NonPositiveAmount(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/transactions", map[string]any{
		"date":        "2024-03-01",
		"type":        "expense",
		"description": "x",
		"amount":      0,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestApproveTransaction(t *testing.T) {
	r := newTestRouter()

	created := doJSON(t, r, http.MethodPost, "/transactions", map[string]any{
		"date":        "2024-03-01",
		"type":        "revenue",
		"description": "deposit",
		"amount":      100,
	})
	var tx struct {
		ID       string `json:"id"`
		Approved bool   `json:"approved"`
	}
	decode(t, created, &tx)
	if tx.Approved {
		t.Fatal("expected unapproved on creation")
	}

	w := doJSON(t, r, http.MethodPost, "/transactions/"+tx.ID+"/approve", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	decode(t, w, &tx)
	if !tx.Approved {
		t.Fatal("expected approved after call")
	}

	missing := doJSON(t, r, http.MethodPost, "/transactions/123e4567-e89b-12d3-a456-426614174000/approve", nil)
	if missing.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", missing.Code)
	}

	bad := doJSON(t, r, http.MethodPost, "/transactions/not-a-uuid/approve", nil)
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", bad.Code)
	}
}

func TestReceiptFlow(t *testing.T) {
	r := newTestRouter()

	created := doJSON(t, r, http.MethodPost, "/inventory/items", map[string]any{
		"name":      "Cement",
		"quantity":  20,
		"unit":      "bag",
		"min_level": 10,
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create item: expected 201, got %d: %s", created.Code, created.Body.String())
	}
	var item struct {
		ID string `json:"id"`
	}
	decode(t, created, &item)

	w := doJSON(t, r, http.MethodPost, "/inventory/receipts", map[string]any{
		"item_id":    item.ID,
		"quantity":   10,
		"unit_price": 5,
		"supplier":   "ABC Suppliers",
		"date":       "2024-03-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("record receipt: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// Decimal fields serialize as quoted strings to preserve precision.
	var change struct {
		Item struct {
			Quantity string `json:"quantity"`
		} `json:"item"`
		Movement struct {
			Kind  string `json:"kind"`
			Total string `json:"total"`
		} `json:"movement"`
		Transaction struct {
			Type        string `json:"type"`
			Description string `json:"description"`
		} `json:"transaction"`
	}
	decode(t, w, &change)
	if change.Item.Quantity != "30" {
		t.Errorf("expected quantity 30, got %s", change.Item.Quantity)
	}
	if change.Movement.Kind != "in" || change.Movement.Total != "50" {
		t.Errorf("unexpected movement: %+v", change.Movement)
	}
	if change.Transaction.Type != "expense" {
		t.Errorf("expected derived expense, got %s", change.Transaction.Type)
	}
	wantDesc := "Inventory receipt: Cement from ABC Suppliers (10 bag @ 5)"
	if change.Transaction.Description != wantDesc {
		t.Errorf("expected description %q, got %q", wantDesc, change.Transaction.Description)
	}

	// The overview snapshot reflects all writes.
	overview := doJSON(t, r, http.MethodGet, "/overview", nil)
	if overview.Code != http.StatusOK {
		t.Fatalf("overview: expected 200, got %d", overview.Code)
	}
	var ov struct {
		Transactions []json.RawMessage `json:"transactions"`
		Items        []json.RawMessage `json:"items"`
		Movements    []json.RawMessage `json:"movements"`
	}
	decode(t, overview, &ov)
	if len(ov.Items) != 1 || len(ov.Movements) != 1 || len(ov.Transactions) != 1 {
		t.Errorf("expected 1 item, 1 movement, 1 transaction; got %d/%d/%d",
			len(ov.Items), len(ov.Movements), len(ov.Transactions))
	}
}

func TestIssue_UnknownItem(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/inventory/issues", map[string]any{
		"item_id":    "123e4567-e89b-12d3-a456-426614174000",
		"quantity":   1,
		"unit_price": 1,
		"project":    "site",
		"date":       "2024-03-01",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProjectFlow(t *testing.T) {
	r := newTestRouter()

	created := doJSON(t, r, http.MethodPost, "/projects", map[string]any{
		"name":     "Golden Valley",
		"location": "Yangon",
		"floors":   8,
		"units":    32,
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create project: expected 201, got %d: %s", created.Code, created.Body.String())
	}
	var project struct {
		ID string `json:"id"`
	}
	decode(t, created, &project)

	cost := doJSON(t, r, http.MethodPost, fmt.Sprintf("/projects/%s/costs", project.ID), map[string]any{
		"type":   "construction",
		"amount": 2500000,
		"date":   "2024-03-01",
		"note":   "Foundation work",
	})
	if cost.Code != http.StatusCreated {
		t.Fatalf("book cost: expected 201, got %d: %s", cost.Code, cost.Body.String())
	}

	sale := doJSON(t, r, http.MethodPost, fmt.Sprintf("/projects/%s/sales", project.ID), map[string]any{
		"unit_no": "A-12",
		"buyer":   "U Kyaw",
		"price":   85000000,
		"date":    "2024-03-05",
	})
	if sale.Code != http.StatusCreated {
		t.Fatalf("book sale: expected 201, got %d: %s", sale.Code, sale.Body.String())
	}

	overview := doJSON(t, r, http.MethodGet, fmt.Sprintf("/projects/%s/overview", project.ID), nil)
	if overview.Code != http.StatusOK {
		t.Fatalf("project overview: expected 200, got %d", overview.Code)
	}
	var ov struct {
		Project struct {
			Name string `json:"name"`
		} `json:"project"`
		Costs []json.RawMessage `json:"costs"`
		Sales []json.RawMessage `json:"sales"`
	}
	decode(t, overview, &ov)
	if ov.Project.Name != "Golden Valley" || len(ov.Costs) != 1 || len(ov.Sales) != 1 {
		t.Errorf("unexpected project overview: %+v", ov)
	}

	// Deleting the project removes its costs and sales with it.
	del := doJSON(t, r, http.MethodDelete, "/projects/"+project.ID, nil)
	if del.Code != http.StatusNoContent {
		t.Fatalf("delete project: expected 204, got %d", del.Code)
	}
	gone := doJSON(t, r, http.MethodGet, fmt.Sprintf("/projects/%s/overview", project.ID), nil)
	if gone.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", gone.Code)
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodDelete, "/inventory/items/123e4567-e89b-12d3-a456-426614174000", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
