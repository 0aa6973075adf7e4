package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/classicmodels-api/internal/domain"
	"github.com/classicmodels-api/internal/repository"
	"github.com/classicmodels-api/internal/service"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&domain.Office{},
		&domain.Employee{},
		&domain.Customer{},
		&domain.ProductLine{},
		&domain.Product{},
		&domain.Order{},
		&domain.OrderDetail{},
		&domain.Payment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func TestOfficePaginated_Envelope(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := repository.NewOfficeRepository(db)
	svc := service.NewOfficeService(repo)

	for _, code := range []string{"1", "2", "3", "4", "5"} {
		office := &domain.Office{
			OfficeCode:   code,
			City:         "Boston",
			Phone:        "+1 215 837 0825",
			AddressLine1: "1550 Court Place",
			Country:      "USA",
			PostalCode:   "02107",
			Territory:    "NA",
		}
		if err := repo.Create(ctx, office); err != nil {
			t.Fatalf("failed to seed office: %v", err)
		}
	}

	page, err := svc.Paginated(ctx, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 5 || page.Page != 2 || page.Size != 2 || page.Pages != 3 {
		t.Errorf("unexpected envelope: %+v", page)
	}
	if len(page.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(page.Items))
	}
}

func TestOfficePaginated_PastEnd(t *testing.T) {
	db := openTestDB(t)
	svc := service.NewOfficeService(repository.NewOfficeRepository(db))

	page, err := svc.Paginated(context.Background(), 5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Items == nil {
		t.Error("items must be an empty slice, not nil")
	}
	if len(page.Items) != 0 || page.Total != 0 || page.Pages != 0 {
		t.Errorf("unexpected envelope: %+v", page)
	}
}

func TestEmployeesByOffice_OfficeNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := service.NewEmployeeService(
		repository.NewEmployeeRepository(db),
		repository.NewOfficeRepository(db),
	)

	_, err := svc.ByOffice(context.Background(), "42")
	if !errors.Is(err, domain.ErrOfficeNotFound) {
		t.Errorf("expected ErrOfficeNotFound, got %v", err)
	}
}

func TestCustomerOrders(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	customers := repository.NewCustomerRepository(db)
	orders := repository.NewOrderRepository(db)
	svc := service.NewCustomerService(customers, orders)

	customer := &domain.Customer{
		CustomerNumber:   101,
		CustomerName:     "Atelier graphique",
		ContactLastName:  "Schmitt",
		ContactFirstName: "Carine",
		Phone:            "40.32.2555",
		AddressLine1:     "54, rue Royale",
		City:             "Nantes",
		Country:          "France",
	}
	if err := customers.Create(ctx, customer); err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	for i, number := range []int{10100, 10101} {
		order := &domain.Order{
			OrderNumber:    number,
			OrderDate:      time.Date(2004, 10, 19+i, 0, 0, 0, 0, time.UTC),
			RequiredDate:   time.Date(2004, 10, 29, 0, 0, 0, 0, time.UTC),
			Status:         "Shipped",
			CustomerNumber: 101,
		}
		if err := orders.Create(ctx, order); err != nil {
			t.Fatalf("failed to seed order: %v", err)
		}
	}

	got, err := svc.Orders(ctx, 101)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 orders, got %d", len(got))
	}

	// Клиент без заказов - пустой список, а не ошибка
	empty := &domain.Customer{
		CustomerNumber:   102,
		CustomerName:     "Signal Gift Stores",
		ContactLastName:  "King",
		ContactFirstName: "Jean",
		Phone:            "7025551838",
		AddressLine1:     "8489 Strong St.",
		City:             "Las Vegas",
		Country:          "USA",
	}
	if err := customers.Create(ctx, empty); err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	got, err = svc.Orders(ctx, 102)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no orders, got %d", len(got))
	}

	// Несуществующий клиент
	_, err = svc.Orders(ctx, 999)
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestOrderDetailsByOrder_OrderNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := service.NewOrderDetailService(
		repository.NewOrderDetailRepository(db),
		repository.NewOrderRepository(db),
	)

	_, err := svc.ByOrder(context.Background(), 99999)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}
