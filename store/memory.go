package store

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"resale-store/models"
)

// Memory bundles in-memory implementations of every store interface.
// The tests run against it, and it makes local development possible
// without a Mongo instance. Each collection has its own mutex,
// mirroring Mongo's per-document atomicity with no cross-collection
// coordination.
type Memory struct {
	Users      *MemoryUserStore
	Categories *MemoryCategoryStore
	Products   *MemoryProductStore
	Orders     *MemoryOrderStore
	Payments   *MemoryPaymentStore
	Reports    *MemoryReportStore
}

func NewMemory() *Memory {
	return &Memory{
		Users:      &MemoryUserStore{users: make(map[primitive.ObjectID]models.User)},
		Categories: &MemoryCategoryStore{categories: make(map[primitive.ObjectID]models.Category)},
		Products:   &MemoryProductStore{products: make(map[primitive.ObjectID]models.Product)},
		Orders:     &MemoryOrderStore{orders: make(map[primitive.ObjectID]models.Order)},
		Payments:   &MemoryPaymentStore{payments: make(map[primitive.ObjectID]models.Payment)},
		Reports:    &MemoryReportStore{reports: make(map[primitive.ObjectID]models.Report)},
	}
}

// MemoryUserStore implements UserStore.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func (s *MemoryUserStore) Upsert(ctx context.Context, user models.User) (models.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return existing, false, nil
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	return user, true, nil
}

func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryUserStore) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	for _, user := range s.users {
		if user.Role == role {
			users = append(users, user)
		}
	}
	return users, nil
}

func (s *MemoryUserStore) SetVerified(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	user.Verified = true
	s.users[id] = user
	return user, nil
}

func (s *MemoryUserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// MemoryCategoryStore implements CategoryStore.
type MemoryCategoryStore struct {
	mu         sync.Mutex
	categories map[primitive.ObjectID]models.Category
}

func (s *MemoryCategoryStore) List(ctx context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var categories []models.Category
	for _, category := range s.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (s *MemoryCategoryStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return models.Category{}, ErrNotFound
	}
	return category, nil
}

func (s *MemoryCategoryStore) Seed(ctx context.Context, names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.categories) > 0 {
		return nil
	}
	for _, name := range names {
		id := primitive.NewObjectID()
		s.categories[id] = models.Category{ID: id, Name: name}
	}
	return nil
}

// MemoryProductStore implements ProductStore.
type MemoryProductStore struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]models.Product
}

func (s *MemoryProductStore) Insert(ctx context.Context, product models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	s.products[product.ID] = product
	return product, nil
}

func (s *MemoryProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return product, nil
}

func (s *MemoryProductStore) ListAvailableByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []models.Product
	for _, product := range s.products {
		if product.CategoryID == categoryID && product.Status == models.ProductAvailable {
			products = append(products, product)
		}
	}
	return products, nil
}

func (s *MemoryProductStore) ListBySeller(ctx context.Context, email string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []models.Product
	for _, product := range s.products {
		if product.SellerEmail == email {
			products = append(products, product)
		}
	}
	return products, nil
}

func (s *MemoryProductStore) ListAdvertised(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []models.Product
	for _, product := range s.products {
		if product.Advertised && product.Status == models.ProductAvailable {
			products = append(products, product)
		}
	}
	return products, nil
}

func (s *MemoryProductStore) ToggleAdvertise(ctx context.Context, id primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return false, ErrNotFound
	}
	product.Advertised = !product.Advertised
	s.products[id] = product
	return product.Advertised, nil
}

func (s *MemoryProductStore) MarkSold(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return ErrNotFound
	}
	product.Status = models.ProductSold
	s.products[id] = product
	return nil
}

func (s *MemoryProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}

// MemoryOrderStore implements OrderStore.
type MemoryOrderStore struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]models.Order
}

func (s *MemoryOrderStore) Insert(ctx context.Context, order models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()
	s.orders[order.ID] = order
	return order, nil
}

func (s *MemoryOrderStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return order, nil
}

func (s *MemoryOrderStore) ListByBuyer(ctx context.Context, email string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	for _, order := range s.orders {
		if order.Email == email {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (s *MemoryOrderStore) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return ErrNotFound
	}
	order.Paid = true
	order.TransactionID = transactionID
	s.orders[id] = order
	return nil
}

// MemoryPaymentStore implements PaymentStore.
type MemoryPaymentStore struct {
	mu       sync.Mutex
	payments map[primitive.ObjectID]models.Payment
}

func (s *MemoryPaymentStore) Insert(ctx context.Context, payment models.Payment) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.payments {
		if existing.TransactionID == payment.TransactionID {
			return models.Payment{}, ErrDuplicate
		}
	}
	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()
	s.payments[payment.ID] = payment
	return payment, nil
}

func (s *MemoryPaymentStore) GetByTransactionID(ctx context.Context, transactionID string) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, payment := range s.payments {
		if payment.TransactionID == transactionID {
			return payment, nil
		}
	}
	return models.Payment{}, ErrNotFound
}

// MemoryReportStore implements ReportStore.
type MemoryReportStore struct {
	mu      sync.Mutex
	reports map[primitive.ObjectID]models.Report
}

func (s *MemoryReportStore) Insert(ctx context.Context, report models.Report) (models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report.ID = primitive.NewObjectID()
	report.CreatedAt = time.Now()
	s.reports[report.ID] = report
	return report, nil
}

func (s *MemoryReportStore) List(ctx context.Context) ([]models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reports []models.Report
	for _, report := range s.reports {
		reports = append(reports, report)
	}
	return reports, nil
}

func (s *MemoryReportStore) DeleteByProduct(ctx context.Context, productID primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, report := range s.reports {
		if report.ProductID == productID {
			delete(s.reports, id)
			deleted++
		}
	}
	return deleted, nil
}
