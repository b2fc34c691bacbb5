package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"resale-store/models"
)

func (env *testEnv) addCategory(t *testing.T, name string) models.Category {
	t.Helper()
	if err := env.mem.Categories.Seed(context.Background(), []string{name}); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	categories, err := env.mem.Categories.List(context.Background())
	if err != nil || len(categories) == 0 {
		t.Fatalf("list categories: %v", err)
	}
	return categories[0]
}

func TestCreateProductStampsSellerAndStatus(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "seller@example.com", models.RoleSeller)
	category := env.addCategory(t, "Electronics")

	recorder := env.do(t, http.MethodPost, "/products", env.token(t, "seller@example.com"),
		map[string]interface{}{
			"name":         "Used Laptop",
			"price":        250,
			"category_id":  category.ID.Hex(),
			"seller_email": "spoofed@example.com",
		})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var product models.Product
	decodeBody(t, recorder, &product)
	if product.SellerEmail != "seller@example.com" {
		t.Errorf("Expected the authenticated seller, got '%s'", product.SellerEmail)
	}
	if product.Status != models.ProductAvailable {
		t.Errorf("Expected status %q, got %q", models.ProductAvailable, product.Status)
	}
	if product.Advertised {
		t.Error("Expected a new listing to start unadvertised")
	}
}

func TestCreateProductUnknownCategory(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "seller@example.com", models.RoleSeller)

	recorder := env.do(t, http.MethodPost, "/products", env.token(t, "seller@example.com"),
		map[string]interface{}{
			"name":        "Used Laptop",
			"price":       250,
			"category_id": primitive.NewObjectID().Hex(),
		})
	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", recorder.Code)
	}
}

func TestListByCategoryExcludesSold(t *testing.T) {
	env := newTestEnv(t)
	category := env.addCategory(t, "Furniture")
	ctx := context.Background()

	available, _ := env.mem.Products.Insert(ctx, models.Product{
		Name: "Chair", CategoryID: category.ID, Price: 20, Status: models.ProductAvailable,
	})
	env.mem.Products.Insert(ctx, models.Product{
		Name: "Table", CategoryID: category.ID, Price: 50, Status: models.ProductSold,
	})

	recorder := env.do(t, http.MethodGet, "/category/"+category.ID.Hex(), "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", recorder.Code)
	}

	var products []models.Product
	decodeBody(t, recorder, &products)
	if len(products) != 1 || products[0].ID != available.ID {
		t.Errorf("Expected only the available product, got %d products", len(products))
	}
	for _, product := range products {
		if product.Status != models.ProductAvailable {
			t.Errorf("Listing leaked a product with status %q", product.Status)
		}
	}
}

func TestListAdvertisedFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	promoted, _ := env.mem.Products.Insert(ctx, models.Product{
		Name: "Promoted", Advertised: true, Status: models.ProductAvailable,
	})
	env.mem.Products.Insert(ctx, models.Product{
		Name: "SoldPromoted", Advertised: true, Status: models.ProductSold,
	})
	env.mem.Products.Insert(ctx, models.Product{
		Name: "Plain", Advertised: false, Status: models.ProductAvailable,
	})

	recorder := env.do(t, http.MethodGet, "/products/advertised", "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", recorder.Code)
	}

	var products []models.Product
	decodeBody(t, recorder, &products)
	if len(products) != 1 || products[0].ID != promoted.ID {
		t.Errorf("Expected only the promoted available product, got %d products", len(products))
	}
}

func TestToggleAdvertiseAlternation(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "seller@example.com", models.RoleSeller)
	product, _ := env.mem.Products.Insert(context.Background(), models.Product{
		Name: "Lamp", SellerEmail: "seller@example.com", Price: 10,
		Status: models.ProductAvailable,
	})

	token := env.token(t, "seller@example.com")
	path := "/product/advertise/" + product.ID.Hex()

	first := env.do(t, http.MethodPut, path, token, nil)
	if first.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", first.Code, first.Body.String())
	}
	var response map[string]bool
	decodeBody(t, first, &response)
	if !response["advertised"] {
		t.Error("Expected first toggle to advertise")
	}

	second := env.do(t, http.MethodPut, path, token, nil)
	if second.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", second.Code)
	}
	decodeBody(t, second, &response)
	if response["advertised"] {
		t.Error("Expected second toggle to restore the original value")
	}
}

func TestToggleAdvertiseOnSomeoneElsesListing(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "seller@example.com", models.RoleSeller)
	env.addUser(t, "rival@example.com", models.RoleSeller)
	product, _ := env.mem.Products.Insert(context.Background(), models.Product{
		Name: "Lamp", SellerEmail: "seller@example.com", Price: 10,
		Status: models.ProductAvailable,
	})

	recorder := env.do(t, http.MethodPut, "/product/advertise/"+product.ID.Hex(),
		env.token(t, "rival@example.com"), nil)
	if recorder.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", recorder.Code)
	}
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "seller@example.com", models.RoleSeller)
	product, _ := env.mem.Products.Insert(context.Background(), models.Product{
		Name: "Lamp", SellerEmail: "seller@example.com", Price: 10,
		Status: models.ProductAvailable,
	})

	recorder := env.do(t, http.MethodDelete, "/product/"+product.ID.Hex(),
		env.token(t, "seller@example.com"), nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", recorder.Code)
	}

	if _, err := env.mem.Products.GetByID(context.Background(), product.ID); err == nil {
		t.Error("Expected the product to be gone")
	}
}
