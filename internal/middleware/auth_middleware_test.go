package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	appauth "github.com/ecesahin/registrar/internal/app/auth"
	"github.com/ecesahin/registrar/internal/app/models"
	"github.com/ecesahin/registrar/internal/pkg/auth"
)

func newAuthTestRouter(jwtService *auth.JWTService, captured **appauth.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewAuthMiddleware(jwtService).JWTAuth())
	router.GET("/protected", func(c *gin.Context) {
		*captured = PrincipalFromContext(c)
		c.Status(http.StatusOK)
	})
	return router
}

func issueToken(t *testing.T, jwtService *auth.JWTService) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{
		ID: 7, Email: "ada@school.edu", Role: models.RoleStudent,
	})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func TestJWTAuthSetsPrincipal(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour})
	var principal *appauth.Principal
	router := newAuthTestRouter(jwtService, &principal)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if principal == nil {
		t.Fatal("no principal set")
	}
	if principal.UserID != 7 || principal.Email != "ada@school.edu" || principal.Role != models.RoleStudent {
		t.Errorf("unexpected principal: %+v", principal)
	}
}

func TestJWTAuthRejections(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour})
	expiredService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: -time.Minute})
	otherKeyService := auth.NewJWTService(auth.JWTConfig{SecretKey: "other-secret", TokenExp: time.Hour})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "garbage token", header: "Bearer not.a.token"},
		{name: "expired token", header: "Bearer " + issueToken(t, expiredService)},
		{name: "wrong signing key", header: "Bearer " + issueToken(t, otherKeyService)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var principal *appauth.Principal
			router := newAuthTestRouter(jwtService, &principal)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if principal != nil {
				t.Error("handler ran despite rejected token")
			}
		})
	}
}

func TestPrincipalFromContextMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if p := PrincipalFromContext(c); p != nil {
		t.Errorf("principal = %+v, want nil", p)
	}
}
