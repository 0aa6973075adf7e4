package dto

import (
	"time"

	"github.com/classicmodels-api/internal/domain"
)

const dateLayout = "2006-01-02"

// Page - конверт пагинированного ответа
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// TokenRequest - запрос на выпуск токена
type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse - ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateOfficeRequest - запрос на создание офиса
type CreateOfficeRequest struct {
	OfficeCode   string  `json:"officeCode" validate:"required,max=10"`
	City         string  `json:"city" validate:"required,max=50"`
	Phone        string  `json:"phone" validate:"required,max=50"`
	AddressLine1 string  `json:"addressLine1" validate:"required,max=50"`
	AddressLine2 *string `json:"addressLine2" validate:"omitempty,max=50"`
	State        *string `json:"state" validate:"omitempty,max=50"`
	Country      string  `json:"country" validate:"required,max=50"`
	PostalCode   string  `json:"postalCode" validate:"required,max=15"`
	Territory    string  `json:"territory" validate:"required,max=10"`
}

// ToModel собирает доменную модель из запроса
func (r *CreateOfficeRequest) ToModel() *domain.Office {
	return &domain.Office{
		OfficeCode:   r.OfficeCode,
		City:         r.City,
		Phone:        r.Phone,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		State:        r.State,
		Country:      r.Country,
		PostalCode:   r.PostalCode,
		Territory:    r.Territory,
	}
}

// UpdateOfficeRequest - запрос на частичное обновление офиса
type UpdateOfficeRequest struct {
	City         *string `json:"city" validate:"omitempty,min=1,max=50"`
	Phone        *string `json:"phone" validate:"omitempty,min=1,max=50"`
	AddressLine1 *string `json:"addressLine1" validate:"omitempty,min=1,max=50"`
	AddressLine2 *string `json:"addressLine2" validate:"omitempty,max=50"`
	State        *string `json:"state" validate:"omitempty,max=50"`
	Country      *string `json:"country" validate:"omitempty,min=1,max=50"`
	PostalCode   *string `json:"postalCode" validate:"omitempty,min=1,max=15"`
	Territory    *string `json:"territory" validate:"omitempty,min=1,max=10"`
}

// Patch возвращает карту колонок для обновления; поля, не переданные
// в запросе, в карту не попадают
func (r *UpdateOfficeRequest) Patch() map[string]any {
	patch := map[string]any{}
	putString(patch, "city", r.City)
	putString(patch, "phone", r.Phone)
	putString(patch, "address_line1", r.AddressLine1)
	putString(patch, "address_line2", r.AddressLine2)
	putString(patch, "state", r.State)
	putString(patch, "country", r.Country)
	putString(patch, "postal_code", r.PostalCode)
	putString(patch, "territory", r.Territory)
	return patch
}

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	EmployeeNumber int    `json:"employeeNumber" validate:"required,min=1"`
	LastName       string `json:"lastName" validate:"required,max=50"`
	FirstName      string `json:"firstName" validate:"required,max=50"`
	Extension      string `json:"extension" validate:"required,max=10"`
	Email          string `json:"email" validate:"required,email,max=100"`
	OfficeCode     string `json:"officeCode" validate:"required,max=10"`
	ReportsTo      *int   `json:"reportsTo" validate:"omitempty,min=1"`
	JobTitle       string `json:"jobTitle" validate:"required,max=50"`
}

// ToModel собирает доменную модель из запроса
func (r *CreateEmployeeRequest) ToModel() *domain.Employee {
	return &domain.Employee{
		EmployeeNumber: r.EmployeeNumber,
		LastName:       r.LastName,
		FirstName:      r.FirstName,
		Extension:      r.Extension,
		Email:          r.Email,
		OfficeCode:     r.OfficeCode,
		ReportsTo:      r.ReportsTo,
		JobTitle:       r.JobTitle,
	}
}

// UpdateEmployeeRequest - запрос на частичное обновление сотрудника
type UpdateEmployeeRequest struct {
	LastName   *string `json:"lastName" validate:"omitempty,min=1,max=50"`
	FirstName  *string `json:"firstName" validate:"omitempty,min=1,max=50"`
	Extension  *string `json:"extension" validate:"omitempty,min=1,max=10"`
	Email      *string `json:"email" validate:"omitempty,email,max=100"`
	OfficeCode *string `json:"officeCode" validate:"omitempty,min=1,max=10"`
	ReportsTo  *int    `json:"reportsTo" validate:"omitempty,min=1"`
	JobTitle   *string `json:"jobTitle" validate:"omitempty,min=1,max=50"`
}

// Patch возвращает карту колонок для обновления
func (r *UpdateEmployeeRequest) Patch() map[string]any {
	patch := map[string]any{}
	putString(patch, "last_name", r.LastName)
	putString(patch, "first_name", r.FirstName)
	putString(patch, "extension", r.Extension)
	putString(patch, "email", r.Email)
	putString(patch, "office_code", r.OfficeCode)
	putInt(patch, "reports_to", r.ReportsTo)
	putString(patch, "job_title", r.JobTitle)
	return patch
}

// CreateCustomerRequest - запрос на создание клиента
type CreateCustomerRequest struct {
	CustomerNumber         int      `json:"customerNumber" validate:"required,min=1"`
	CustomerName           string   `json:"customerName" validate:"required,max=50"`
	ContactLastName        string   `json:"contactLastName" validate:"required,max=50"`
	ContactFirstName       string   `json:"contactFirstName" validate:"required,max=50"`
	Phone                  string   `json:"phone" validate:"required,max=50"`
	AddressLine1           string   `json:"addressLine1" validate:"required,max=50"`
	AddressLine2           *string  `json:"addressLine2" validate:"omitempty,max=50"`
	City                   string   `json:"city" validate:"required,max=50"`
	State                  *string  `json:"state" validate:"omitempty,max=50"`
	PostalCode             *string  `json:"postalCode" validate:"omitempty,max=15"`
	Country                string   `json:"country" validate:"required,max=50"`
	SalesRepEmployeeNumber *int     `json:"salesRepEmployeeNumber" validate:"omitempty,min=1"`
	CreditLimit            *float64 `json:"creditLimit" validate:"omitempty,min=0"`
}

// ToModel собирает доменную модель из запроса
func (r *CreateCustomerRequest) ToModel() *domain.Customer {
	return &domain.Customer{
		CustomerNumber:         r.CustomerNumber,
		CustomerName:           r.CustomerName,
		ContactLastName:        r.ContactLastName,
		ContactFirstName:       r.ContactFirstName,
		Phone:                  r.Phone,
		AddressLine1:           r.AddressLine1,
		AddressLine2:           r.AddressLine2,
		City:                   r.City,
		State:                  r.State,
		PostalCode:             r.PostalCode,
		Country:                r.Country,
		SalesRepEmployeeNumber: r.SalesRepEmployeeNumber,
		CreditLimit:            r.CreditLimit,
	}
}

// UpdateCustomerRequest - запрос на частичное обновление клиента
type UpdateCustomerRequest struct {
	CustomerName           *string  `json:"customerName" validate:"omitempty,min=1,max=50"`
	ContactLastName        *string  `json:"contactLastName" validate:"omitempty,min=1,max=50"`
	ContactFirstName       *string  `json:"contactFirstName" validate:"omitempty,min=1,max=50"`
	Phone                  *string  `json:"phone" validate:"omitempty,min=1,max=50"`
	AddressLine1           *string  `json:"addressLine1" validate:"omitempty,min=1,max=50"`
	AddressLine2           *string  `json:"addressLine2" validate:"omitempty,max=50"`
	City                   *string  `json:"city" validate:"omitempty,min=1,max=50"`
	State                  *string  `json:"state" validate:"omitempty,max=50"`
	PostalCode             *string  `json:"postalCode" validate:"omitempty,max=15"`
	Country                *string  `json:"country" validate:"omitempty,min=1,max=50"`
	SalesRepEmployeeNumber *int     `json:"salesRepEmployeeNumber" validate:"omitempty,min=1"`
	CreditLimit            *float64 `json:"creditLimit" validate:"omitempty,min=0"`
}

// Patch возвращает карту колонок для обновления
func (r *UpdateCustomerRequest) Patch() map[string]any {
	patch := map[string]any{}
	putString(patch, "customer_name", r.CustomerName)
	putString(patch, "contact_last_name", r.ContactLastName)
	putString(patch, "contact_first_name", r.ContactFirstName)
	putString(patch, "phone", r.Phone)
	putString(patch, "address_line1", r.AddressLine1)
	putString(patch, "address_line2", r.AddressLine2)
	putString(patch, "city", r.City)
	putString(patch, "state", r.State)
	putString(patch, "postal_code", r.PostalCode)
	putString(patch, "country", r.Country)
	putInt(patch, "sales_rep_employee_number", r.SalesRepEmployeeNumber)
	putFloat(patch, "credit_limit", r.CreditLimit)
	return patch
}

// CreateOrderRequest - запрос на создание заказа; даты передаются
// строками в формате YYYY-MM-DD
type CreateOrderRequest struct {
	OrderNumber    int     `json:"orderNumber" validate:"required,min=1"`
	OrderDate      string  `json:"orderDate" validate:"required,datetime=2006-01-02"`
	RequiredDate   string  `json:"requiredDate" validate:"required,datetime=2006-01-02"`
	ShippedDate    *string `json:"shippedDate" validate:"omitempty,datetime=2006-01-02"`
	Status         string  `json:"status" validate:"required,max=15"`
	Comments       *string `json:"comments"`
	CustomerNumber int     `json:"customerNumber" validate:"required,min=1"`
}

// ToModel собирает доменную модель из запроса
func (r *CreateOrderRequest) ToModel() (*domain.Order, error) {
	orderDate, err := time.Parse(dateLayout, r.OrderDate)
	if err != nil {
		return nil, err
	}
	requiredDate, err := time.Parse(dateLayout, r.RequiredDate)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		OrderNumber:    r.OrderNumber,
		OrderDate:      orderDate,
		RequiredDate:   requiredDate,
		Status:         r.Status,
		Comments:       r.Comments,
		CustomerNumber: r.CustomerNumber,
	}

	if r.ShippedDate != nil {
		shippedDate, err := time.Parse(dateLayout, *r.ShippedDate)
		if err != nil {
			return nil, err
		}
		order.ShippedDate = &shippedDate
	}

	return order, nil
}

// UpdateOrderRequest - запрос на частичное обновление заказа
type UpdateOrderRequest struct {
	OrderDate      *string `json:"orderDate" validate:"omitempty,datetime=2006-01-02"`
	RequiredDate   *string `json:"requiredDate" validate:"omitempty,datetime=2006-01-02"`
	ShippedDate    *string `json:"shippedDate" validate:"omitempty,datetime=2006-01-02"`
	Status         *string `json:"status" validate:"omitempty,min=1,max=15"`
	Comments       *string `json:"comments"`
	CustomerNumber *int    `json:"customerNumber" validate:"omitempty,min=1"`
}

// Patch возвращает карту колонок для обновления
func (r *UpdateOrderRequest) Patch() (map[string]any, error) {
	patch := map[string]any{}
	if err := putDate(patch, "order_date", r.OrderDate); err != nil {
		return nil, err
	}
	if err := putDate(patch, "required_date", r.RequiredDate); err != nil {
		return nil, err
	}
	if err := putDate(patch, "shipped_date", r.ShippedDate); err != nil {
		return nil, err
	}
	putString(patch, "status", r.Status)
	putString(patch, "comments", r.Comments)
	putInt(patch, "customer_number", r.CustomerNumber)
	return patch, nil
}

// CreateOrderDetailRequest - запрос на создание позиции заказа
type CreateOrderDetailRequest struct {
	OrderNumber     int     `json:"orderNumber" validate:"required,min=1"`
	ProductCode     string  `json:"productCode" validate:"required,max=15"`
	QuantityOrdered int     `json:"quantityOrdered" validate:"required,min=1"`
	PriceEach       float64 `json:"priceEach" validate:"required,gt=0"`
	OrderLineNumber int     `json:"orderLineNumber" validate:"required,min=1"`
}

// ToModel собирает доменную модель из запроса
func (r *CreateOrderDetailRequest) ToModel() *domain.OrderDetail {
	return &domain.OrderDetail{
		OrderNumber:     r.OrderNumber,
		ProductCode:     r.ProductCode,
		QuantityOrdered: r.QuantityOrdered,
		PriceEach:       r.PriceEach,
		OrderLineNumber: r.OrderLineNumber,
	}
}

// UpdateOrderDetailRequest - запрос на частичное обновление позиции
type UpdateOrderDetailRequest struct {
	QuantityOrdered *int     `json:"quantityOrdered" validate:"omitempty,min=1"`
	PriceEach       *float64 `json:"priceEach" validate:"omitempty,gt=0"`
	OrderLineNumber *int     `json:"orderLineNumber" validate:"omitempty,min=1"`
}

// Patch возвращает карту колонок для обновления
func (r *UpdateOrderDetailRequest) Patch() map[string]any {
	patch := map[string]any{}
	putInt(patch, "quantity_ordered", r.QuantityOrdered)
	putFloat(patch, "price_each", r.PriceEach)
	putInt(patch, "order_line_number", r.OrderLineNumber)
	return patch
}

// CreateProductRequest - запрос на создание товара
type CreateProductRequest struct {
	ProductCode        string  `json:"productCode" validate:"required,max=15"`
	ProductName        string  `json:"productName" validate:"required,max=70"`
	ProductLine        string  `json:"productLine" validate:"required,max=50"`
	ProductScale       string  `json:"productScale" validate:"required,max=10"`
	ProductVendor      string  `json:"productVendor" validate:"required,max=50"`
	ProductDescription string  `json:"productDescription" validate:"required"`
	QuantityInStock    *int    `json:"quantityInStock" validate:"required,min=0"`
	BuyPrice           float64 `json:"buyPrice" validate:"required,gt=0"`
	MSRP               float64 `json:"MSRP" validate:"required,gt=0"`
}

// ToModel собирает доменную модель из запроса
func (r *CreateProductRequest) ToModel() *domain.Product {
	return &domain.Product{
		ProductCode:        r.ProductCode,
		ProductName:        r.ProductName,
		ProductLine:        r.ProductLine,
		ProductScale:       r.ProductScale,
		ProductVendor:      r.ProductVendor,
		ProductDescription: r.ProductDescription,
		QuantityInStock:    *r.QuantityInStock,
		BuyPrice:           r.BuyPrice,
		MSRP:               r.MSRP,
	}
}

// UpdateProductRequest - запрос на частичное обновление товара
type UpdateProductRequest struct {
	ProductName        *string  `json:"productName" validate:"omitempty,min=1,max=70"`
	ProductLine        *string  `json:"productLine" validate:"omitempty,min=1,max=50"`
	ProductScale       *string  `json:"productScale" validate:"omitempty,min=1,max=10"`
	ProductVendor      *string  `json:"productVendor" validate:"omitempty,min=1,max=50"`
	ProductDescription *string  `json:"productDescription" validate:"omitempty,min=1"`
	QuantityInStock    *int     `json:"quantityInStock" validate:"omitempty,min=0"`
	BuyPrice           *float64 `json:"buyPrice" validate:"omitempty,gt=0"`
	MSRP               *float64 `json:"MSRP" validate:"omitempty,gt=0"`
}

// Patch возвращает карту колонок для обновления
func (r *UpdateProductRequest) Patch() map[string]any {
	patch := map[string]any{}
	putString(patch, "product_name", r.ProductName)
	putString(patch, "product_line", r.ProductLine)
	putString(patch, "product_scale", r.ProductScale)
	putString(patch, "product_vendor", r.ProductVendor)
	putString(patch, "product_description", r.ProductDescription)
	putInt(patch, "quantity_in_stock", r.QuantityInStock)
	putFloat(patch, "buy_price", r.BuyPrice)
	putFloat(patch, "msrp", r.MSRP)
	return patch
}

// CreateProductLineRequest - запрос на создание линейки товаров
type CreateProductLineRequest struct {
	ProductLine     string  `json:"productLine" validate:"required,max=50"`
	TextDescription *string `json:"textDescription" validate:"omitempty,max=4000"`
	HTMLDescription *string `json:"htmlDescription"`
	Image           *string `json:"image" validate:"omitempty,max=100"`
}

// ToModel собирает доменную модель из запроса
func (r *CreateProductLineRequest) ToModel() *domain.ProductLine {
	return &domain.ProductLine{
		ProductLine:     r.ProductLine,
		TextDescription: r.TextDescription,
		HTMLDescription: r.HTMLDescription,
		Image:           r.Image,
	}
}

// UpdateProductLineRequest - запрос на частичное обновление линейки
type UpdateProductLineRequest struct {
	TextDescription *string `json:"textDescription" validate:"omitempty,max=4000"`
	HTMLDescription *string `json:"htmlDescription"`
	Image           *string `json:"image" validate:"omitempty,max=100"`
}

// Patch возвращает карту колонок для обновления
func (r *UpdateProductLineRequest) Patch() map[string]any {
	patch := map[string]any{}
	putString(patch, "text_description", r.TextDescription)
	putString(patch, "html_description", r.HTMLDescription)
	putString(patch, "image", r.Image)
	return patch
}

// CreatePaymentRequest - запрос на создание платежа
type CreatePaymentRequest struct {
	CustomerNumber int     `json:"customerNumber" validate:"required,min=1"`
	CheckNumber    string  `json:"checkNumber" validate:"required,max=50"`
	PaymentDate    string  `json:"paymentDate" validate:"required,datetime=2006-01-02"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
}

// ToModel собирает доменную модель из запроса
func (r *CreatePaymentRequest) ToModel() (*domain.Payment, error) {
	paymentDate, err := time.Parse(dateLayout, r.PaymentDate)
	if err != nil {
		return nil, err
	}
	return &domain.Payment{
		CustomerNumber: r.CustomerNumber,
		CheckNumber:    r.CheckNumber,
		PaymentDate:    paymentDate,
		Amount:         r.Amount,
	}, nil
}

// UpdatePaymentRequest - запрос на частичное обновление платежа
type UpdatePaymentRequest struct {
	PaymentDate *string  `json:"paymentDate" validate:"omitempty,datetime=2006-01-02"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
}

// Patch возвращает карту колонок для обновления
func (r *UpdatePaymentRequest) Patch() (map[string]any, error) {
	patch := map[string]any{}
	if err := putDate(patch, "payment_date", r.PaymentDate); err != nil {
		return nil, err
	}
	putFloat(patch, "amount", r.Amount)
	return patch, nil
}

func putString(patch map[string]any, column string, value *string) {
	if value != nil {
		patch[column] = *value
	}
}

func putInt(patch map[string]any, column string, value *int) {
	if value != nil {
		patch[column] = *value
	}
}

func putFloat(patch map[string]any, column string, value *float64) {
	if value != nil {
		patch[column] = *value
	}
}

func putDate(patch map[string]any, column string, value *string) error {
	if value == nil {
		return nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return err
	}
	patch[column] = parsed
	return nil
}
