package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"resale-store/checkout"
	"resale-store/controllers"
	"resale-store/models"
	"resale-store/routes"
	"resale-store/store"
	"resale-store/utils"
)

// fakeProcessor stands in for Stripe.
type fakeProcessor struct {
	clientSecret string
	err          error
}

func (f *fakeProcessor) CreateIntent(ctx context.Context, price float64) (string, error) {
	return f.clientSecret, f.err
}

// testEnv wires the real router and controllers onto in-memory
// stores.
type testEnv struct {
	mem       *store.Memory
	router    *mux.Router
	processor *fakeProcessor
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	utils.JwtKey = []byte("test-secret")

	mem := store.NewMemory()
	processor := &fakeProcessor{clientSecret: "cs_test_123"}
	saga := &checkout.Saga{Orders: mem.Orders, Products: mem.Products, Payments: mem.Payments}

	router := mux.NewRouter()
	routes.RegisterRoutes(router, mem.Users,
		controllers.NewUserController(mem.Users, nil),
		controllers.NewCategoryController(mem.Categories),
		controllers.NewProductController(mem.Products, mem.Categories),
		controllers.NewOrderController(mem.Orders, mem.Products),
		controllers.NewPaymentController(processor, saga, mem.Orders, nil),
		controllers.NewReportController(mem.Reports, mem.Products),
	)

	return &testEnv{mem: mem, router: router, processor: processor}
}

func (env *testEnv) addUser(t *testing.T, email, role string) models.User {
	t.Helper()
	user, _, err := env.mem.Users.Upsert(context.Background(), models.User{
		Name: email, Email: email, Role: role,
	})
	if err != nil {
		t.Fatalf("add user %s: %v", email, err)
	}
	return user
}

func (env *testEnv) token(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.GenerateJWT(email)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// do performs a request against the router. A non-empty token goes
// into the Authorization header; a non-nil body is JSON-encoded.
func (env *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(recorder.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
