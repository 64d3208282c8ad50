package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"sareeMarket/domain"
	"sareeMarket/pkg/utils"
)

const (
	testJWTSecret   = "test-jwt-secret"
	testAdminSecret = "test-admin-secret"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func perform(t *testing.T, mw echo.MiddlewareFunc, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := mw(okHandler)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	return rec
}

func bearer(t *testing.T, user domain.User, ttl time.Duration) string {
	t.Helper()

	token, err := utils.GenerateJWT(user, testJWTSecret, ttl)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	return "Bearer " + token
}

func TestAuthMiddleware(t *testing.T) {
	mw := AuthMiddleware(testJWTSecret)

	t.Run("missing header", func(t *testing.T) {
		rec := perform(t, mw, http.Header{})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := perform(t, mw, http.Header{echo.HeaderAuthorization: []string{"Token abc"}})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := perform(t, mw, http.Header{echo.HeaderAuthorization: []string{"Bearer garbage"}})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		auth := bearer(t, domain.User{ID: "u1"}, -time.Minute)
		rec := perform(t, mw, http.Header{echo.HeaderAuthorization: []string{auth}})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("valid token passes claims through", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, bearer(t, domain.User{ID: "u1", Name: "Asha", Mobile: "9999999999"}, time.Hour))
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var gotUserID string
		handler := func(c echo.Context) error {
			gotUserID, _ = c.Get("user_id").(string)
			return c.NoContent(http.StatusOK)
		}

		if err := mw(handler)(c); err != nil {
			t.Fatalf("middleware returned error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if gotUserID != "u1" {
			t.Fatalf("user_id = %q, want u1", gotUserID)
		}
	})
}

func TestAdminCheck(t *testing.T) {
	mw := AdminCheck(testAdminSecret, testJWTSecret)

	t.Run("shared secret header", func(t *testing.T) {
		rec := perform(t, mw, http.Header{HeaderAdminSecret: []string{testAdminSecret}})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("wrong shared secret", func(t *testing.T) {
		rec := perform(t, mw, http.Header{HeaderAdminSecret: []string{"nope"}})
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("admin token", func(t *testing.T) {
		auth := bearer(t, domain.User{ID: "admin", IsAdmin: true}, time.Hour)
		rec := perform(t, mw, http.Header{echo.HeaderAuthorization: []string{auth}})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("non-admin token", func(t *testing.T) {
		auth := bearer(t, domain.User{ID: "u1"}, time.Hour)
		rec := perform(t, mw, http.Header{echo.HeaderAuthorization: []string{auth}})
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("no credentials", func(t *testing.T) {
		rec := perform(t, mw, http.Header{})
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})
}
