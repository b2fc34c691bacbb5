package checkout

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"resale-store/models"
	"resale-store/store"
)

func newSagaFixture(t *testing.T) (*Saga, *store.Memory, models.Order, models.Product) {
	t.Helper()
	mem := store.NewMemory()
	saga := &Saga{Orders: mem.Orders, Products: mem.Products, Payments: mem.Payments}

	product, err := mem.Products.Insert(context.Background(), models.Product{
		Name:        "Used Laptop",
		SellerEmail: "seller@example.com",
		Price:       250,
		Status:      models.ProductAvailable,
	})
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}

	order, err := mem.Orders.Insert(context.Background(), models.Order{
		Email:       "buyer@example.com",
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Paid:        false,
	})
	if err != nil {
		t.Fatalf("insert order: %v", err)
	}

	return saga, mem, order, product
}

func TestRecordSettlesOrderAndProduct(t *testing.T) {
	saga, mem, order, product := newSagaFixture(t)

	result, err := saga.Record(context.Background(), models.Payment{
		OrderID:       order.ID,
		ProductID:     product.ID,
		TransactionID: "t1",
		BuyerEmail:    order.Email,
		Amount:        order.Price,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Replayed {
		t.Error("Expected a first recording, got a replay")
	}

	updatedOrder, _ := mem.Orders.GetByID(context.Background(), order.ID)
	if !updatedOrder.Paid {
		t.Error("Expected order to be paid")
	}
	if updatedOrder.TransactionID != "t1" {
		t.Errorf("Expected transaction ID 't1', got '%s'", updatedOrder.TransactionID)
	}

	updatedProduct, _ := mem.Products.GetByID(context.Background(), product.ID)
	if updatedProduct.Status != models.ProductSold {
		t.Errorf("Expected product status %q, got %q", models.ProductSold, updatedProduct.Status)
	}
}

func TestRecordReplaySameTransaction(t *testing.T) {
	saga, _, order, product := newSagaFixture(t)

	payment := models.Payment{
		OrderID:       order.ID,
		ProductID:     product.ID,
		TransactionID: "t1",
		Amount:        order.Price,
	}

	first, err := saga.Record(context.Background(), payment)
	if err != nil {
		t.Fatalf("first record: %v", err)
	}
	second, err := saga.Record(context.Background(), payment)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !second.Replayed {
		t.Error("Expected the second call to be a replay")
	}
	if second.Payment.ID != first.Payment.ID {
		t.Error("Expected the replay to return the originally recorded payment")
	}
}

func TestRecordTransactionReusedForDifferentOrder(t *testing.T) {
	saga, mem, order, product := newSagaFixture(t)

	otherProduct, _ := mem.Products.Insert(context.Background(), models.Product{
		Name:   "Old Bike",
		Price:  90,
		Status: models.ProductAvailable,
	})
	otherOrder, _ := mem.Orders.Insert(context.Background(), models.Order{
		Email:     "buyer@example.com",
		ProductID: otherProduct.ID,
	})

	if _, err := saga.Record(context.Background(), models.Payment{
		OrderID: order.ID, ProductID: product.ID, TransactionID: "t1",
	}); err != nil {
		t.Fatalf("first record: %v", err)
	}

	_, err := saga.Record(context.Background(), models.Payment{
		OrderID: otherOrder.ID, ProductID: otherProduct.ID, TransactionID: "t1",
	})
	if !errors.Is(err, ErrTransactionReused) {
		t.Errorf("Expected ErrTransactionReused, got: %v", err)
	}
}

func TestRecordMissingOrder(t *testing.T) {
	saga, _, _, product := newSagaFixture(t)

	_, err := saga.Record(context.Background(), models.Payment{
		OrderID:       primitive.NewObjectID(),
		ProductID:     product.ID,
		TransactionID: "t1",
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
}

func TestRecordMissingProduct(t *testing.T) {
	saga, _, order, _ := newSagaFixture(t)

	_, err := saga.Record(context.Background(), models.Payment{
		OrderID:       order.ID,
		ProductID:     primitive.NewObjectID(),
		TransactionID: "t1",
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
}

func TestRecordMissingTransactionID(t *testing.T) {
	saga, _, order, product := newSagaFixture(t)

	_, err := saga.Record(context.Background(), models.Payment{
		OrderID:   order.ID,
		ProductID: product.ID,
	})
	if !errors.Is(err, ErrMissingTransaction) {
		t.Errorf("Expected ErrMissingTransaction, got: %v", err)
	}
}

func TestRecordProductMismatch(t *testing.T) {
	saga, mem, order, _ := newSagaFixture(t)

	stray, _ := mem.Products.Insert(context.Background(), models.Product{
		Name: "Stray", Price: 10, Status: models.ProductAvailable,
	})

	_, err := saga.Record(context.Background(), models.Payment{
		OrderID:       order.ID,
		ProductID:     stray.ID,
		TransactionID: "t1",
	})
	if !errors.Is(err, ErrProductMismatch) {
		t.Errorf("Expected ErrProductMismatch, got: %v", err)
	}
}
