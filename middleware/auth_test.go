package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"

	"resale-store/middleware"
	"resale-store/models"
	"resale-store/store"
	"resale-store/utils"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	utils.JwtKey = []byte("test-secret")

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	middleware.AuthMiddleware(okHandler()).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for a missing header, got %d", recorder.Code)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	utils.JwtKey = []byte("test-secret")

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	middleware.AuthMiddleware(okHandler()).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for an invalid token, got %d", recorder.Code)
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	utils.JwtKey = []byte("test-secret")

	claims := &utils.Claims{
		Email: "ana@example.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(utils.JwtKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	middleware.AuthMiddleware(okHandler()).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for an expired token, got %d", recorder.Code)
	}
}

func TestAuthMiddlewareAttachesClaims(t *testing.T) {
	utils.JwtKey = []byte("test-secret")

	token, err := utils.GenerateJWT("ana@example.com")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := middleware.Authenticated(r); ok {
			seen = claims.Email
		}
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	middleware.AuthMiddleware(handler).ServeHTTP(recorder, req)

	if seen != "ana@example.com" {
		t.Errorf("Expected the decoded email on the context, got '%s'", seen)
	}
}

func TestRequireRoleMismatch(t *testing.T) {
	utils.JwtKey = []byte("test-secret")
	mem := store.NewMemory()
	mem.Users.Upsert(context.Background(), models.User{
		Email: "buyer@example.com", Role: models.RoleBuyer,
	})

	token, _ := utils.GenerateJWT("buyer@example.com")
	gate := middleware.RequireRole(mem.Users, models.RoleSeller)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	middleware.AuthMiddleware(gate(okHandler())).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for a buyer on a seller gate, got %d", recorder.Code)
	}
}

func TestRequireRoleMatch(t *testing.T) {
	utils.JwtKey = []byte("test-secret")
	mem := store.NewMemory()
	mem.Users.Upsert(context.Background(), models.User{
		Email: "seller@example.com", Role: models.RoleSeller,
	})

	token, _ := utils.GenerateJWT("seller@example.com")
	gate := middleware.RequireRole(mem.Users, models.RoleSeller)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	middleware.AuthMiddleware(gate(okHandler())).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected 200 for a seller on a seller gate, got %d", recorder.Code)
	}
}
