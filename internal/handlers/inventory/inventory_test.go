package inventory_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bestdeal-service/internal/handlers/inventory"
	"bestdeal-service/internal/repository/memstore"
	service "bestdeal-service/internal/service/inventory"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := inventory.NewInventoryHandler(service.NewInventoryService(memstore.New(), zap.NewNop()))

	r := gin.New()
	r.GET("/vehicles", h.ListVehicles)
	r.GET("/vehicles/:id", h.GetVehicle)
	r.POST("/vehicles", h.CreateVehicle)
	r.PUT("/vehicles/:id", h.UpdateVehicle)
	r.DELETE("/vehicles/:id", h.DeleteVehicle)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestVehicleLifecycle(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/vehicles", `{
		"year": 2019,
		"make": "Honda",
		"model": "Civic",
		"price": 18500,
		"featured": true
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d, body %s", w.Code, w.Body.String())
	}
	created := decode(t, w)
	id, ok := created["id"].(string)
	if !ok || id == "" {
		t.Fatalf("expected a string id, got %v", created["id"])
	}
	if created["make"] != "Honda" || created["featured"] != true {
		t.Fatalf("create lost fields: %v", created)
	}

	w = do(t, r, http.MethodGet, "/vehicles/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: status %d, body %s", w.Code, w.Body.String())
	}
	if got := decode(t, w); got["model"] != "Civic" {
		t.Fatalf("get mismatch: %v", got)
	}

	w = do(t, r, http.MethodPut, "/vehicles/"+id, `{
		"year": 2019,
		"make": "Honda",
		"model": "Civic",
		"price": 17900
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d, body %s", w.Code, w.Body.String())
	}
	updated := decode(t, w)
	if updated["price"] != float64(17900) {
		t.Fatalf("price not updated: %v", updated["price"])
	}
	if updated["id"] != id {
		t.Fatalf("id changed on update: %v", updated["id"])
	}

	w = do(t, r, http.MethodGet, "/vehicles", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("list body %q: %v", w.Body.String(), err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(list))
	}

	w = do(t, r, http.MethodDelete, "/vehicles/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d", w.Code)
	}
	if body := decode(t, w); body["deleted"] != true {
		t.Fatalf("expected {deleted:true}, got %v", body)
	}

	// Idempotent delete reports false, not an error.
	w = do(t, r, http.MethodDelete, "/vehicles/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("second delete: status %d", w.Code)
	}
	if body := decode(t, w); body["deleted"] != false {
		t.Fatalf("expected {deleted:false}, got %v", body)
	}

	w = do(t, r, http.MethodGet, "/vehicles/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: status %d", w.Code)
	}
}

func TestGetUnknownVehicle(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodGet, "/vehicles/000000000000000000000000", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "vehicle not found") {
		t.Fatalf("message missing: %s", w.Body.String())
	}
}

func TestUpdateUnknownVehicle(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPut, "/vehicles/000000000000000000000000", `{
		"year": 2019,
		"make": "Honda",
		"model": "Civic"
	}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
}

func TestCreateVehicleValidation(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/vehicles", `{
		"year": 2019,
		"make": "Honda",
		"model": "Civic",
		"vin": "TOOSHORT"
	}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "must be at least 11 characters") {
		t.Fatalf("vin reason missing: %s", w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/vehicles", `{"year": 2019, "model": "Civic"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"make"`) {
		t.Fatalf("make field missing: %s", w.Body.String())
	}
}

func TestCreateVehicleRejectsMalformedJSON(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/vehicles", `{"year": `)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
}
