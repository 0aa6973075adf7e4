package repository_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/classicmodels-api/internal/domain"
	"github.com/classicmodels-api/internal/repository"
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

func seedOffice(t *testing.T, db *gorm.DB, code string) *domain.Office {
	t.Helper()
	office := &domain.Office{
		OfficeCode:   code,
		City:         "San Francisco",
		Phone:        "+1 650 219 4782",
		AddressLine1: "100 Market Street",
		Country:      "USA",
		PostalCode:   "94080",
		Territory:    "NA",
	}
	if err := repository.NewOfficeRepository(db).Create(context.Background(), office); err != nil {
		t.Fatalf("failed to seed office: %v", err)
	}
	return office
}

func seedEmployee(t *testing.T, db *gorm.DB, number int, officeCode string, reportsTo *int) *domain.Employee {
	t.Helper()
	employee := &domain.Employee{
		EmployeeNumber: number,
		LastName:       "Bow",
		FirstName:      "Anthony",
		Extension:      "x5428",
		Email:          fmt.Sprintf("emp%d@classicmodels.com", number),
		OfficeCode:     officeCode,
		ReportsTo:      reportsTo,
		JobTitle:       "Sales Rep",
	}
	if err := repository.NewEmployeeRepository(db).Create(context.Background(), employee); err != nil {
		t.Fatalf("failed to seed employee: %v", err)
	}
	return employee
}

func seedCustomer(t *testing.T, db *gorm.DB, number int, salesRep *int) *domain.Customer {
	t.Helper()
	customer := &domain.Customer{
		CustomerNumber:         number,
		CustomerName:           "Mini Gifts Distributors Ltd.",
		ContactLastName:        "Nelson",
		ContactFirstName:       "Susan",
		Phone:                  "4155551450",
		AddressLine1:           "5677 Strong St.",
		City:                   "San Rafael",
		Country:                "USA",
		SalesRepEmployeeNumber: salesRep,
	}
	if err := repository.NewCustomerRepository(db).Create(context.Background(), customer); err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	return customer
}

func seedProductLine(t *testing.T, db *gorm.DB, name string) *domain.ProductLine {
	t.Helper()
	line := &domain.ProductLine{ProductLine: name}
	if err := repository.NewProductLineRepository(db).Create(context.Background(), line); err != nil {
		t.Fatalf("failed to seed product line: %v", err)
	}
	return line
}

func seedProduct(t *testing.T, db *gorm.DB, code, line string) *domain.Product {
	t.Helper()
	product := &domain.Product{
		ProductCode:        code,
		ProductName:        "1952 Alpine Renault 1300",
		ProductLine:        line,
		ProductScale:       "1:10",
		ProductVendor:      "Classic Metal Creations",
		ProductDescription: "Turnable front wheels",
		QuantityInStock:    7305,
		BuyPrice:           98.58,
		MSRP:               214.30,
	}
	if err := repository.NewProductRepository(db).Create(context.Background(), product); err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

func seedOrder(t *testing.T, db *gorm.DB, number, customerNumber int) *domain.Order {
	t.Helper()
	order := &domain.Order{
		OrderNumber:    number,
		OrderDate:      time.Date(2004, 10, 19, 0, 0, 0, 0, time.UTC),
		RequiredDate:   time.Date(2004, 10, 29, 0, 0, 0, 0, time.UTC),
		Status:         "In Process",
		CustomerNumber: customerNumber,
	}
	if err := repository.NewOrderRepository(db).Create(context.Background(), order); err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	return order
}

func seedOrderDetail(t *testing.T, db *gorm.DB, orderNumber int, productCode string, quantity int) *domain.OrderDetail {
	t.Helper()
	detail := &domain.OrderDetail{
		OrderNumber:     orderNumber,
		ProductCode:     productCode,
		QuantityOrdered: quantity,
		PriceEach:       136.52,
		OrderLineNumber: 1,
	}
	if err := repository.NewOrderDetailRepository(db).Create(context.Background(), detail); err != nil {
		t.Fatalf("failed to seed order detail: %v", err)
	}
	return detail
}

func TestOfficeCreateAndGetByKey(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := repository.NewOfficeRepository(db)

	seedOffice(t, db, "1")

	office, err := repo.GetByKey(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if office.City != "San Francisco" || office.Country != "USA" {
		t.Errorf("unexpected office fields: %+v", office)
	}
}

func TestGetByKey_NotFound(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := repository.NewCustomerRepository(db).GetByKey(ctx, 999)
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := repository.NewOfficeRepository(db).Delete(ctx, "42")
	if !errors.Is(err, domain.ErrOfficeNotFound) {
		t.Errorf("expected ErrOfficeNotFound, got %v", err)
	}
}

func TestCreate_DuplicateKey(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := repository.NewOfficeRepository(db)

	office := seedOffice(t, db, "1")

	dup := *office
	err := repo.Create(ctx, &dup)
	if !errors.Is(err, domain.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestCreate_ForeignKeyViolation(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	seedProductLine(t, db, "Classic Cars")
	seedProduct(t, db, "S10_1949", "Classic Cars")

	bad := &domain.Product{
		ProductCode:        "S10_2000",
		ProductName:        "Ghost Racer",
		ProductLine:        "Nonexistent Line",
		ProductScale:       "1:10",
		ProductVendor:      "Classic Metal Creations",
		ProductDescription: "No such line",
		QuantityInStock:    1,
		BuyPrice:           10,
		MSRP:               20,
	}
	err := repository.NewProductRepository(db).Create(ctx, bad)
	if !errors.Is(err, domain.ErrForeignKeyViolation) {
		t.Errorf("expected ErrForeignKeyViolation, got %v", err)
	}
}

func TestListPaginated(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := repository.NewCustomerRepository(db)

	for i := 1; i <= 7; i++ {
		seedCustomer(t, db, 100+i, nil)
	}

	items, total, pages, err := repo.ListPaginated(ctx, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 7 {
		t.Errorf("expected total 7, got %d", total)
	}
	if pages != 3 {
		t.Errorf("expected 3 pages, got %d", pages)
	}
	if len(items) != 3 {
		t.Errorf("expected 3 items on first page, got %d", len(items))
	}

	// Последняя страница короче
	items, _, _, err = repo.ListPaginated(ctx, 3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 item on last page, got %d", len(items))
	}

	// Сумма по всем страницам равна total
	seen := 0
	for page := 1; page <= pages; page++ {
		items, _, _, err := repo.ListPaginated(ctx, page, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen += len(items)
	}
	if int64(seen) != total {
		t.Errorf("expected %d items across pages, got %d", total, seen)
	}

	// Страница за пределами данных - пустой список без ошибки
	items, total, pages, err = repo.ListPaginated(ctx, 10, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty page, got %d items", len(items))
	}
	if total != 7 || pages != 3 {
		t.Errorf("expected total/pages preserved, got %d/%d", total, pages)
	}
}

func TestListAll_OffsetLimit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := repository.NewCustomerRepository(db)

	for i := 1; i <= 5; i++ {
		seedCustomer(t, db, 100+i, nil)
	}

	items, err := repo.ListAll(ctx, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}

	items, err = repo.ListAll(ctx, 10, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty result, got %d items", len(items))
	}
}

func TestUpdate_EmptyPatch(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := repository.NewCustomerRepository(db)

	seedCustomer(t, db, 101, nil)

	updated, err := repo.Update(ctx, 101, map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.CustomerName != "Mini Gifts Distributors Ltd." || updated.City != "San Rafael" {
		t.Errorf("empty patch must not change fields: %+v", updated)
	}
}

func TestUpdate_SingleField(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := repository.NewCustomerRepository(db)

	seedCustomer(t, db, 101, nil)

	updated, err := repo.Update(ctx, 101, map[string]any{"city": "Boston"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.City != "Boston" {
		t.Errorf("expected city Boston, got %s", updated.City)
	}
	if updated.CustomerName != "Mini Gifts Distributors Ltd." || updated.Country != "USA" {
		t.Errorf("other fields must stay untouched: %+v", updated)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := repository.NewCustomerRepository(db).Update(ctx, 999, map[string]any{"city": "Boston"})
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestUpdate_ForeignKeyViolation(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	seedOffice(t, db, "1")
	seedEmployee(t, db, 1002, "1", nil)

	_, err := repository.NewEmployeeRepository(db).Update(ctx, 1002, map[string]any{"office_code": "99"})
	if !errors.Is(err, domain.ErrForeignKeyViolation) {
		t.Errorf("expected ErrForeignKeyViolation, got %v", err)
	}
}

func TestOfficeDelete_CascadeAndSetNull(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	seedOffice(t, db, "1")
	seedOffice(t, db, "2")
	rep := seedEmployee(t, db, 1002, "1", nil)
	other := seedEmployee(t, db, 1003, "2", nil)
	seedCustomer(t, db, 101, &rep.EmployeeNumber)

	if err := repository.NewOfficeRepository(db).Delete(ctx, "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Сотрудники удалённого офиса каскадно удалены
	_, err := repository.NewEmployeeRepository(db).GetByKey(ctx, rep.EmployeeNumber)
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Errorf("expected cascade delete of employee, got %v", err)
	}

	// Сотрудник другого офиса не тронут
	if _, err := repository.NewEmployeeRepository(db).GetByKey(ctx, other.EmployeeNumber); err != nil {
		t.Errorf("employee of another office must survive: %v", err)
	}

	// Клиент остался, но без менеджера
	customer, err := repository.NewCustomerRepository(db).GetByKey(ctx, 101)
	if err != nil {
		t.Fatalf("customer must survive office delete: %v", err)
	}
	if customer.SalesRepEmployeeNumber != nil {
		t.Errorf("expected nil sales rep, got %v", *customer.SalesRepEmployeeNumber)
	}
}

func TestEmployeeDelete_SetNullSubordinates(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	seedOffice(t, db, "1")
	manager := seedEmployee(t, db, 1002, "1", nil)
	subordinate := seedEmployee(t, db, 1056, "1", &manager.EmployeeNumber)

	if err := repository.NewEmployeeRepository(db).Delete(ctx, manager.EmployeeNumber); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repository.NewEmployeeRepository(db).GetByKey(ctx, subordinate.EmployeeNumber)
	if err != nil {
		t.Fatalf("subordinate must survive manager delete: %v", err)
	}
	if got.ReportsTo != nil {
		t.Errorf("expected nil reportsTo, got %v", *got.ReportsTo)
	}
}

func TestCustomerDelete_CascadesOrdersAndDetails(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	seedCustomer(t, db, 101, nil)
	seedProductLine(t, db, "Classic Cars")
	seedProduct(t, db, "S10_1949", "Classic Cars")
	seedOrder(t, db, 10100, 101)
	seedOrderDetail(t, db, 10100, "S10_1949", 5)

	if err := repository.NewCustomerRepository(db).Delete(ctx, 101); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := repository.NewOrderRepository(db).GetByKey(ctx, 10100)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("expected cascade delete of order, got %v", err)
	}

	_, err = repository.NewOrderDetailRepository(db).GetByKey(ctx, 10100, "S10_1949")
	if !errors.Is(err, domain.ErrOrderDetailNotFound) {
		t.Errorf("expected cascade delete of order detail, got %v", err)
	}

	// Товар не зависит от клиента
	if _, err := repository.NewProductRepository(db).GetByKey(ctx, "S10_1949"); err != nil {
		t.Errorf("product must survive customer delete: %v", err)
	}
}

func TestProductLineDelete_CascadesProducts(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	seedProductLine(t, db, "Classic Cars")
	seedProduct(t, db, "S10_1949", "Classic Cars")

	if err := repository.NewProductLineRepository(db).Delete(ctx, "Classic Cars"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := repository.NewProductRepository(db).GetByKey(ctx, "S10_1949")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected cascade delete of product, got %v", err)
	}
}

func TestOrderDetail_CompositeKey(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := repository.NewOrderDetailRepository(db)

	seedCustomer(t, db, 101, nil)
	seedProductLine(t, db, "Classic Cars")
	seedProduct(t, db, "S10_1949", "Classic Cars")
	seedProduct(t, db, "S10_1950", "Classic Cars")
	seedOrder(t, db, 10100, 101)
	seedOrderDetail(t, db, 10100, "S10_1949", 5)
	seedOrderDetail(t, db, 10100, "S10_1950", 2)

	// Поиск строго по обоим полям ключа
	detail, err := repo.GetByKey(ctx, 10100, "S10_1950")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.QuantityOrdered != 2 {
		t.Errorf("expected quantity 2, got %d", detail.QuantityOrdered)
	}

	_, err = repo.GetByKey(ctx, 10100, "S10_9999")
	if !errors.Is(err, domain.ErrOrderDetailNotFound) {
		t.Errorf("expected ErrOrderDetailNotFound, got %v", err)
	}

	// Частичное обновление меняет только указанное поле
	updated, err := repo.Update(ctx, 10100, "S10_1949", map[string]any{"quantity_ordered": 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.QuantityOrdered != 10 {
		t.Errorf("expected quantity 10, got %d", updated.QuantityOrdered)
	}
	if updated.PriceEach != 136.52 || updated.OrderLineNumber != 1 {
		t.Errorf("other fields must stay untouched: %+v", updated)
	}

	if err := repo.Delete(ctx, 10100, "S10_1950"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(ctx, 10100, "S10_1950"); !errors.Is(err, domain.ErrOrderDetailNotFound) {
		t.Errorf("expected ErrOrderDetailNotFound on second delete, got %v", err)
	}
}

func TestPayment_CompositeKey(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := repository.NewPaymentRepository(db)

	seedCustomer(t, db, 101, nil)
	seedCustomer(t, db, 102, nil)

	payment := &domain.Payment{
		CustomerNumber: 101,
		CheckNumber:    "HQ336336",
		PaymentDate:    time.Date(2004, 10, 19, 0, 0, 0, 0, time.UTC),
		Amount:         6066.78,
	}
	if err := repo.Create(ctx, payment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Тот же номер чека у другого клиента - другой ключ
	other := &domain.Payment{
		CustomerNumber: 102,
		CheckNumber:    "HQ336336",
		PaymentDate:    time.Date(2004, 11, 2, 0, 0, 0, 0, time.UTC),
		Amount:         1000,
	}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("same check number for another customer must be allowed: %v", err)
	}

	got, err := repo.GetByKey(ctx, 101, "HQ336336")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Amount != 6066.78 {
		t.Errorf("expected amount 6066.78, got %f", got.Amount)
	}

	updated, err := repo.Update(ctx, 101, "HQ336336", map[string]any{"amount": 7000.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Amount != 7000.0 {
		t.Errorf("expected amount 7000, got %f", updated.Amount)
	}
	if updated.PaymentDate.Format("2006-01-02") != "2004-10-19" {
		t.Errorf("payment date must stay untouched, got %s", updated.PaymentDate)
	}

	// Каскад от клиента
	if err := repository.NewCustomerRepository(db).Delete(ctx, 101); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.GetByKey(ctx, 101, "HQ336336"); !errors.Is(err, domain.ErrPaymentNotFound) {
		t.Errorf("expected cascade delete of payment, got %v", err)
	}
}
