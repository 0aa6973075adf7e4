package handler

import (
	"log/slog"
	"net/http"

	"github.com/classicmodels-api/internal/middleware"
)

// Handlers - набор обработчиков для всех сущностей API
type Handlers struct {
	Offices      *OfficeHandler
	Employees    *EmployeeHandler
	Customers    *CustomerHandler
	Orders       *OrderHandler
	OrderDetails *OrderDetailHandler
	Products     *ProductHandler
	ProductLines *ProductLineHandler
	Payments     *PaymentHandler
	Auth         *AuthHandler
}

// Router настраивает маршруты API
type Router struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	handlers Handlers
	verifier middleware.TokenVerifier
}

// NewRouter создаёт новый роутер
func NewRouter(handlers Handlers, verifier middleware.TokenVerifier, logger *slog.Logger) *Router {
	return &Router{
		mux:      http.NewServeMux(),
		logger:   logger,
		handlers: handlers,
		verifier: verifier,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Корневой документ и health check
	r.mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, r.logger, http.StatusOK, map[string]string{
			"message": "Welcome to ClassicModels API",
		})
	})
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Аутентификация
	r.mux.HandleFunc("POST /api/v1/auth/token", r.handlers.Auth.Token)
	r.mux.Handle("GET /api/v1/auth/me",
		middleware.RequireAuth(r.verifier)(http.HandlerFunc(r.handlers.Auth.Me)))

	// Офисы
	r.registerCrud("offices", "{officeCode}", crudSet{
		list:      r.handlers.Offices.List,
		paginated: r.handlers.Offices.Paginated,
		get:       r.handlers.Offices.Get,
		create:    r.handlers.Offices.Create,
		update:    r.handlers.Offices.Update,
		delete:    r.handlers.Offices.Delete,
	})

	// Сотрудники
	r.registerCrud("employees", "{employeeNumber}", crudSet{
		list:      r.handlers.Employees.List,
		paginated: r.handlers.Employees.Paginated,
		get:       r.handlers.Employees.Get,
		create:    r.handlers.Employees.Create,
		update:    r.handlers.Employees.Update,
		delete:    r.handlers.Employees.Delete,
	})
	r.mux.HandleFunc("GET /api/v1/employees/office/{officeCode}", r.handlers.Employees.ByOffice)

	// Клиенты
	r.registerCrud("customers", "{customerNumber}", crudSet{
		list:      r.handlers.Customers.List,
		paginated: r.handlers.Customers.Paginated,
		get:       r.handlers.Customers.Get,
		create:    r.handlers.Customers.Create,
		update:    r.handlers.Customers.Update,
		delete:    r.handlers.Customers.Delete,
	})
	r.mux.HandleFunc("GET /api/v1/customers/{customerNumber}/orders", r.handlers.Customers.Orders)

	// Заказы
	r.registerCrud("orders", "{orderNumber}", crudSet{
		list:      r.handlers.Orders.List,
		paginated: r.handlers.Orders.Paginated,
		get:       r.handlers.Orders.Get,
		create:    r.handlers.Orders.Create,
		update:    r.handlers.Orders.Update,
		delete:    r.handlers.Orders.Delete,
	})
	r.mux.HandleFunc("GET /api/v1/orders/{orderNumber}/details", r.handlers.Orders.Details)
	r.mux.HandleFunc("GET /api/v1/orders/customer/{customerNumber}", r.handlers.Orders.ByCustomer)

	// Позиции заказов (составной ключ)
	r.mux.HandleFunc("GET /api/v1/orderdetails/order/{orderNumber}", r.handlers.OrderDetails.ByOrder)
	r.mux.HandleFunc("GET /api/v1/orderdetails/{orderNumber}/{productCode}", r.handlers.OrderDetails.Get)
	r.mux.HandleFunc("POST /api/v1/orderdetails", r.handlers.OrderDetails.Create)
	r.mux.HandleFunc("PUT /api/v1/orderdetails/{orderNumber}/{productCode}", r.handlers.OrderDetails.Update)
	r.mux.HandleFunc("DELETE /api/v1/orderdetails/{orderNumber}/{productCode}", r.handlers.OrderDetails.Delete)

	// Товары
	r.registerCrud("products", "{productCode}", crudSet{
		list:      r.handlers.Products.List,
		paginated: r.handlers.Products.Paginated,
		get:       r.handlers.Products.Get,
		create:    r.handlers.Products.Create,
		update:    r.handlers.Products.Update,
		delete:    r.handlers.Products.Delete,
	})
	r.mux.HandleFunc("GET /api/v1/products/productline/{productLine}", r.handlers.Products.ByProductLine)

	// Линейки товаров
	r.registerCrud("productlines", "{productLine}", crudSet{
		list:      r.handlers.ProductLines.List,
		paginated: r.handlers.ProductLines.Paginated,
		get:       r.handlers.ProductLines.Get,
		create:    r.handlers.ProductLines.Create,
		update:    r.handlers.ProductLines.Update,
		delete:    r.handlers.ProductLines.Delete,
	})

	// Платежи (составной ключ)
	r.mux.HandleFunc("GET /api/v1/payments/customer/{customerNumber}", r.handlers.Payments.ByCustomer)
	r.mux.HandleFunc("GET /api/v1/payments/{customerNumber}/{checkNumber}", r.handlers.Payments.Get)
	r.mux.HandleFunc("POST /api/v1/payments", r.handlers.Payments.Create)
	r.mux.HandleFunc("PUT /api/v1/payments/{customerNumber}/{checkNumber}", r.handlers.Payments.Update)
	r.mux.HandleFunc("DELETE /api/v1/payments/{customerNumber}/{checkNumber}", r.handlers.Payments.Delete)

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.CORS(handler)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

type crudSet struct {
	list      http.HandlerFunc
	paginated http.HandlerFunc
	get       http.HandlerFunc
	create    http.HandlerFunc
	update    http.HandlerFunc
	delete    http.HandlerFunc
}

// registerCrud регистрирует стандартный набор CRUD маршрутов сущности
func (r *Router) registerCrud(entity, keyPattern string, set crudSet) {
	base := "/api/v1/" + entity

	r.mux.HandleFunc("GET "+base, set.list)
	r.mux.HandleFunc("GET "+base+"/paginated", set.paginated)
	r.mux.HandleFunc("GET "+base+"/"+keyPattern, set.get)
	r.mux.HandleFunc("POST "+base, set.create)
	r.mux.HandleFunc("PUT "+base+"/"+keyPattern, set.update)
	r.mux.HandleFunc("DELETE "+base+"/"+keyPattern, set.delete)
}
