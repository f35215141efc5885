package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
)

// fakeVerifier implements TokenVerifier.
type fakeVerifier struct {
	token *jwt.Token
	err   error
}

func (f *fakeVerifier) ValidateAndParse(string) (*jwt.Token, error) {
	return f.token, f.err
}

func setupAuthRouter(v TokenVerifier, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", Auth(v))
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c),
			"roles":   GetUserRoles(c),
		})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	valid := &fakeVerifier{token: &jwt.Token{UserID: "u-1", Roles: []string{"USER"}}}

	tests := []struct {
		name       string
		verifier   TokenVerifier
		authHeader string
		wantStatus int
	}{
		{"missing header", valid, "", http.StatusUnauthorized},
		{"not bearer", valid, "Basic abc", http.StatusUnauthorized},
		{"invalid token", &fakeVerifier{err: errors.New("expired")}, "Bearer bad", http.StatusUnauthorized},
		{"valid token", valid, "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupAuthRouter(tt.verifier)
			w := doRequest(r, tt.authHeader)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d; want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestAuth_StoresIdentityInContext(t *testing.T) {
	v := &fakeVerifier{token: &jwt.Token{UserID: "u-42", Roles: []string{"ADMIN", "USER"}}}
	r := setupAuthRouter(v)

	w := doRequest(r, "Bearer good")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"u-42", "ADMIN", "USER"} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q missing %q", body, want)
		}
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		userRoles  []string
		allowed    []string
		wantStatus int
	}{
		{"role allowed", []string{"ADMIN"}, []string{"ADMIN"}, http.StatusOK},
		{"one of several", []string{"USER"}, []string{"ADMIN", "USER"}, http.StatusOK},
		{"role denied", []string{"USER"}, []string{"ADMIN"}, http.StatusForbidden},
		{"no roles", nil, []string{"ADMIN"}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &fakeVerifier{token: &jwt.Token{UserID: "u-1", Roles: tt.userRoles}}
			r := setupAuthRouter(v, tt.allowed...)
			w := doRequest(r, "Bearer good")
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d; want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireRole_WithoutAuthIsUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", RequireRole("ADMIN"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want 401", w.Code)
	}
}

func TestNoopAuthzAdmitsEverything(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authz := Noop()
	r := gin.New()
	r.GET("/x", authz.Authenticate, authz.RequireRole("ADMIN"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d; want 200", w.Code)
	}
}
