package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finlens/internal/auth"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func newLoginRouter(t *testing.T) (*gin.Engine, *auth.TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	issuer, err := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", time.Hour)
	if err != nil {
		t.Fatalf("issuer: %v", err)
	}

	h := &Handler{tracer: testTracer(), login: NewLoginHandler(string(hash), issuer)}
	r := gin.New()
	h.RegisterRoutes(r, BearerAuth(issuer))
	return r, issuer
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesToken(t *testing.T) {
	r, issuer := newLoginRouter(t)

	w := postLogin(r, `{"password":"letmein"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Token     string `json:"token"`
		ExpiresAt string `json:"expires_at"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if body.Token == "" || body.ExpiresAt == "" {
		t.Fatalf("incomplete login payload: %+v", body)
	}
	if err := issuer.Verify(body.Token, time.Now()); err != nil {
		t.Fatalf("issued token should verify: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newLoginRouter(t)

	w := postLogin(r, `{"password":"guess"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLoginBadBody(t *testing.T) {
	r, _ := newLoginRouter(t)

	w := postLogin(r, `not json`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}

func TestLoginNotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{tracer: testTracer(), login: NewLoginHandler("", nil)}
	r := gin.New()
	h.RegisterRoutes(r, nil)

	w := postLogin(r, `{"password":"x"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestBearerAuthProtectsDataRoutes(t *testing.T) {
	r, issuer := newLoginRouter(t)

	// No token.
	w := doRequest(t, r, http.MethodGet, "/screener")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	// Garbage token.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/screener", nil)
	req.Header.Set("Authorization", "Bearer nope")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", w.Code)
	}

	// Health stays open.
	w = doRequest(t, r, http.MethodGet, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("health must not require auth, got %d", w.Code)
	}

	// Valid token reaches the handler.
	token, _ := issuer.Issue(time.Now())
	gin.SetMode(gin.TestMode)
	h := &Handler{tracer: testTracer(), screener: &screenerStub{}}
	r2 := gin.New()
	h.RegisterRoutes(r2, BearerAuth(issuer))
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/screener", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r2.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", w.Code)
	}
}

func TestBearerAuthNoopWhenDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{tracer: testTracer(), screener: &screenerStub{}}
	r := gin.New()
	h.RegisterRoutes(r, BearerAuth(nil))

	w := doRequest(t, r, http.MethodGet, "/screener")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with auth disabled, got %d", w.Code)
	}
}
