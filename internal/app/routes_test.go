package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/codezest/catalog/internal/middleware"
)

// stubModule records whether RegisterRoutes was called and mounts one route.
type stubModule struct {
	registered bool
}

func (m *stubModule) RegisterRoutes(api *gin.RouterGroup, _ middleware.Authz) {
	m.registered = true
	api.GET("/stub", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func newTestRouter(t *testing.T, deps *RouteDeps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if err := RegisterRoutes(r, deps); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRegisterRoutes_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if err := RegisterRoutes(nil, &RouteDeps{Modules: []Module{&stubModule{}}}); err == nil {
		t.Error("expected error for nil router")
	}
	if err := RegisterRoutes(gin.New(), nil); err == nil {
		t.Error("expected error for nil deps")
	}
	if err := RegisterRoutes(gin.New(), &RouteDeps{}); err == nil {
		t.Error("expected error for empty module list")
	}
	if err := RegisterRoutes(gin.New(), &RouteDeps{Modules: []Module{nil}}); err == nil {
		t.Error("expected error for nil module")
	}
}

func TestRegisterRoutes_MountsModules(t *testing.T) {
	mod := &stubModule{}
	r := newTestRouter(t, &RouteDeps{
		Modules: []Module{mod},
		Authz:   middleware.Noop(),
		DB:      setupTestDB(t),
	})

	if !mod.registered {
		t.Fatal("expected module routes registered")
	}

	w := doGet(r, "/api/v1/stub")
	if w.Code != http.StatusOK {
		t.Errorf("GET /api/v1/stub = %d; want 200", w.Code)
	}
}

func TestHealth_OK(t *testing.T) {
	r := newTestRouter(t, &RouteDeps{
		Modules: []Module{&stubModule{}},
		Authz:   middleware.Noop(),
		DB:      setupTestDB(t),
	})

	w := doGet(r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var resp struct {
		Status     string            `json:"status"`
		Components map[string]string `json:"components"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != "ok" || resp.Components["database"] != "ok" {
		t.Errorf("resp = %+v", resp)
	}
	if _, ok := resp.Components["cache"]; ok {
		t.Error("expected no cache component without cache configured")
	}
}

func TestHealth_DegradedWithoutDatabase(t *testing.T) {
	r := newTestRouter(t, &RouteDeps{
		Modules: []Module{&stubModule{}},
		Authz:   middleware.Noop(),
	})

	w := doGet(r, "/health")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d; want 503", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"degraded"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestNoRoute(t *testing.T) {
	r := newTestRouter(t, &RouteDeps{
		Modules: []Module{&stubModule{}},
		Authz:   middleware.Noop(),
		DB:      setupTestDB(t),
	})

	w := doGet(r, "/api/v1/nope")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}

	var resp struct {
		Status string `json:"status"`
		Error  struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != "error" || resp.Error.Code != "RESOURCE_NOT_FOUND" {
		t.Errorf("resp = %+v", resp)
	}
	if !strings.Contains(resp.Error.Message, "GET /api/v1/nope") {
		t.Errorf("message = %q", resp.Error.Message)
	}
}
