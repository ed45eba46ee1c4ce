// internal/api/handler/api/templates_test.go
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/newthinker/tradedeck/internal/api/response"
	"github.com/newthinker/tradedeck/internal/storage/kv"
	"github.com/newthinker/tradedeck/internal/template"
)

func newTestStore() *template.Store {
	return template.NewStore(kv.NewMemory(), nil)
}

func saveBody(name string) *bytes.Buffer {
	body := map[string]any{
		"name": name,
		"form": map[string]string{
			"action":       "BUY",
			"symbol":       "SBIN-EQ",
			"symbol_token": "3045",
			"exchange":     "NSE",
			"product_type": "INTRADAY",
			"order_type":   "MARKET",
			"quantity":     "1",
		},
	}
	data, _ := json.Marshal(body)
	return bytes.NewBuffer(data)
}

func TestTemplatesHandler_ListEmpty(t *testing.T) {
	handler := NewTemplatesHandler(newTestStore(), nil)

	req := httptest.NewRequest("GET", "/api/templates", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var resp response.SuccessResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	data := resp.Data.(map[string]any)
	if data["count"].(float64) != 0 {
		t.Errorf("expected empty list, got %v", data)
	}
}

func TestTemplatesHandler_Save(t *testing.T) {
	store := newTestStore()
	handler := NewTemplatesHandler(store, nil)

	req := httptest.NewRequest("POST", "/api/templates", saveBody("My Setup"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Save(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}

	templates := store.List(req.Context())
	if len(templates) != 1 || templates[0].Name != "My Setup" {
		t.Errorf("expected saved template, got %v", templates)
	}
}

func TestTemplatesHandler_Save_EmptyName(t *testing.T) {
	store := newTestStore()
	handler := NewTemplatesHandler(store, nil)

	req := httptest.NewRequest("POST", "/api/templates", saveBody(""))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Save(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if len(store.List(req.Context())) != 0 {
		t.Error("empty name must not mutate the store")
	}
}

func TestTemplatesHandler_Save_InvalidJSON(t *testing.T) {
	handler := NewTemplatesHandler(newTestStore(), nil)

	req := httptest.NewRequest("POST", "/api/templates", bytes.NewBufferString(`{broken`))
	w := httptest.NewRecorder()

	handler.Save(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestTemplatesHandler_Load(t *testing.T) {
	store := newTestStore()
	handler := NewTemplatesHandler(store, nil)

	save := httptest.NewRequest("POST", "/api/templates", saveBody("First"))
	handler.Save(httptest.NewRecorder(), save)

	req := httptest.NewRequest("GET", "/api/templates/0", nil)
	req.SetPathValue("index", "0")
	w := httptest.NewRecorder()

	handler.Load(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var resp response.SuccessResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	data := resp.Data.(map[string]any)
	if data["name"] != "First" {
		t.Errorf("expected First, got %v", data["name"])
	}
}

func TestTemplatesHandler_Load_OutOfRange(t *testing.T) {
	handler := NewTemplatesHandler(newTestStore(), nil)

	req := httptest.NewRequest("GET", "/api/templates/5", nil)
	req.SetPathValue("index", "5")
	w := httptest.NewRecorder()

	handler.Load(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestTemplatesHandler_Load_BadIndex(t *testing.T) {
	handler := NewTemplatesHandler(newTestStore(), nil)

	req := httptest.NewRequest("GET", "/api/templates/abc", nil)
	req.SetPathValue("index", "abc")
	w := httptest.NewRecorder()

	handler.Load(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestTemplatesHandler_Delete(t *testing.T) {
	store := newTestStore()
	handler := NewTemplatesHandler(store, nil)

	for _, name := range []string{"A", "B", "C"} {
		save := httptest.NewRequest("POST", "/api/templates", saveBody(name))
		handler.Save(httptest.NewRecorder(), save)
	}

	req := httptest.NewRequest("DELETE", "/api/templates/1", nil)
	req.SetPathValue("index", "1")
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	templates := store.List(req.Context())
	if len(templates) != 2 || templates[0].Name != "A" || templates[1].Name != "C" {
		t.Errorf("expected [A C], got %v", templates)
	}
}

func TestTemplatesHandler_Delete_OutOfRange(t *testing.T) {
	handler := NewTemplatesHandler(newTestStore(), nil)

	req := httptest.NewRequest("DELETE", "/api/templates/0", nil)
	req.SetPathValue("index", "0")
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
