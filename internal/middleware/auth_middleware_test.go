package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/pkg/auth"
)

func newRoleRouter(t *testing.T, enabled bool, role string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Minute,
		TokenIssuer:    "hostelhub-test",
	})
	m := NewAuthMiddleware(jwtService, enabled)

	router := gin.New()
	router.POST("/rooms",
		func(c *gin.Context) {
			if role != "" {
				c.Set("roleType", role)
			}
		},
		m.RoleRequired(string(models.RoleAdmin)),
		func(c *gin.Context) { c.Status(http.StatusCreated) },
	)
	return router
}

func TestRoleRequiredAllowsMatchingRole(t *testing.T) {
	router := newRoleRouter(t, true, string(models.RoleAdmin))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rooms", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for admin, got %d", w.Code)
	}
}

func TestRoleRequiredRejectsOtherRoles(t *testing.T) {
	router := newRoleRouter(t, true, string(models.RoleStudent))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rooms", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", w.Code)
	}
}

func TestRoleRequiredRejectsMissingRole(t *testing.T) {
	router := newRoleRouter(t, true, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rooms", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a role, got %d", w.Code)
	}
}

func TestRoleRequiredPassesThroughWhenDisabled(t *testing.T) {
	router := newRoleRouter(t, false, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rooms", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected pass-through when auth disabled, got %d", w.Code)
	}
}
