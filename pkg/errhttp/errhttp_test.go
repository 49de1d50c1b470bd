package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	ledgerdomain "github.com/sitebooks/backend/services/ledger/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrTransactionNotFound", ledgerdomain.ErrTransactionNotFound, http.StatusNotFound},
		{"ErrItemNotFound", ledgerdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrProjectNotFound", ledgerdomain.ErrProjectNotFound, http.StatusNotFound},
		{"ErrInvalidAmount", ledgerdomain.ErrInvalidAmount, http.StatusUnprocessableEntity},
		{"ErrStoreUnavailable", ledgerdomain.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"wrapped ErrItemNotFound", fmt.Errorf("record receipt: %w", ledgerdomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrInvalidAmount", fmt.Errorf("%w: quantity", ledgerdomain.ErrInvalidAmount), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, ledgerdomain.ErrTransactionNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, ledgerdomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
