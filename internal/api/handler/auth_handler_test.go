package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campushub/campus-portal/internal/api"
	"github.com/campushub/campus-portal/internal/api/handler"
	"github.com/campushub/campus-portal/internal/api/middleware"
	"github.com/campushub/campus-portal/internal/core/domain"
	"github.com/campushub/campus-portal/internal/core/ports"
)

type stubAuthService struct {
	signupUser *domain.User
	signupErr  error
	loginRes   *ports.LoginResult
	loginErr   error

	loggedOutToken string
}

func (s *stubAuthService) Signup(_ context.Context, in ports.SignupInput) (*domain.User, error) {
	if s.signupErr != nil {
		return nil, s.signupErr
	}
	return s.signupUser, nil
}

func (s *stubAuthService) Login(_ context.Context, identifier, password string) (*ports.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginRes, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	s.loggedOutToken = token
	return nil
}

func (s *stubAuthService) CurrentUser(_ context.Context, token string) (*domain.User, error) {
	return nil, domain.ErrUnauthorized
}

func (s *stubAuthService) ChangePassword(_ context.Context, userID, token, current, next string) error {
	return nil
}

func newAuthTestServer(svc ports.AuthService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewAuthHandler(svc, handler.CookieConfig{TTL: 24 * time.Hour, Secure: false})
	e.POST("/v1/auth/signup", h.Signup)
	e.POST("/v1/auth/login", h.Login)
	e.POST("/v1/auth/logout", h.Logout)
	return e
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := rec.Result()
	for _, cookie := range res.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	t.Fatalf("no %q cookie in response", middleware.SessionCookie)
	return nil
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Signup(t *testing.T) {
	svc := &stubAuthService{signupUser: &domain.User{ID: "user-1", Role: domain.RoleUser}}
	e := newAuthTestServer(svc)

	rec := postJSON(e, "/v1/auth/signup", `{"username":"alice","email":"alice@x.edu","password":"secret1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"user_id":"user-1"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Signup_ValidationRejects(t *testing.T) {
	svc := &stubAuthService{signupUser: &domain.User{ID: "user-1", Role: domain.RoleUser}}
	e := newAuthTestServer(svc)

	rec := postJSON(e, "/v1/auth/signup", `{"username":"ab","email":"alice@x.edu","password":"secret1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_Signup_Conflict(t *testing.T) {
	svc := &stubAuthService{signupErr: domain.ErrUserExists}
	e := newAuthTestServer(svc)

	rec := postJSON(e, "/v1/auth/signup", `{"username":"alice","email":"alice@x.edu","password":"secret1"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	svc := &stubAuthService{loginRes: &ports.LoginResult{Token: "opaque-token", UserID: "user-1", Role: domain.RoleUser}}
	e := newAuthTestServer(svc)

	rec := postJSON(e, "/v1/auth/login", `{"identifier":"alice","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "opaque-token") {
		t.Fatalf("token leaked into the response body: %s", rec.Body.String())
	}

	cookie := sessionCookieFrom(t, rec)
	if cookie.Value != "opaque-token" {
		t.Fatalf("cookie value = %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if cookie.Path != "/" {
		t.Fatalf("cookie path = %q", cookie.Path)
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie SameSite = %v", cookie.SameSite)
	}
	if cookie.MaxAge != int((24 * time.Hour).Seconds()) {
		t.Fatalf("cookie MaxAge = %d", cookie.MaxAge)
	}
}

func TestAuthHandler_Login_FailureBodiesAreIdentical(t *testing.T) {
	// Unknown identifier and wrong password surface as the same error value,
	// so the rendered responses must be byte-identical.
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	e := newAuthTestServer(svc)

	first := postJSON(e, "/v1/auth/login", `{"identifier":"ghost","password":"secret1"}`)
	second := postJSON(e, "/v1/auth/login", `{"identifier":"alice","password":"wrong"}`)

	if first.Code != http.StatusUnauthorized || second.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("failure bodies differ: %q vs %q", first.Body.String(), second.Body.String())
	}
	if len(first.Result().Cookies()) != 0 {
		t.Fatalf("failed login must not set cookies")
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	svc := &stubAuthService{}
	e := newAuthTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "opaque-token"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.loggedOutToken != "opaque-token" {
		t.Fatalf("logout destroyed token %q", svc.loggedOutToken)
	}

	cookie := sessionCookieFrom(t, rec)
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("cookie not cleared: value=%q maxage=%d", cookie.Value, cookie.MaxAge)
	}
}

func TestAuthHandler_Logout_WithoutCookie(t *testing.T) {
	svc := &stubAuthService{}
	e := newAuthTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
