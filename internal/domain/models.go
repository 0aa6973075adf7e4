package domain

import (
	"time"
)

// Office представляет офис компании
type Office struct {
	OfficeCode   string  `json:"officeCode" gorm:"primaryKey;type:varchar(10)"`
	City         string  `json:"city" gorm:"type:varchar(50);not null"`
	Phone        string  `json:"phone" gorm:"type:varchar(50);not null"`
	AddressLine1 string  `json:"addressLine1" gorm:"type:varchar(50);not null"`
	AddressLine2 *string `json:"addressLine2" gorm:"type:varchar(50)"`
	State        *string `json:"state" gorm:"type:varchar(50)"`
	Country      string  `json:"country" gorm:"type:varchar(50);not null"`
	PostalCode   string  `json:"postalCode" gorm:"type:varchar(15);not null"`
	Territory    string  `json:"territory" gorm:"type:varchar(10);not null"`

	Employees []Employee `json:"-" gorm:"foreignKey:OfficeCode;references:OfficeCode;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Office) TableName() string {
	return "offices"
}

// Employee представляет сотрудника
type Employee struct {
	EmployeeNumber int    `json:"employeeNumber" gorm:"primaryKey"`
	LastName       string `json:"lastName" gorm:"type:varchar(50);not null"`
	FirstName      string `json:"firstName" gorm:"type:varchar(50);not null"`
	Extension      string `json:"extension" gorm:"type:varchar(10);not null"`
	Email          string `json:"email" gorm:"type:varchar(100);not null"`
	OfficeCode     string `json:"officeCode" gorm:"type:varchar(10);not null;index"`
	ReportsTo      *int   `json:"reportsTo" gorm:"index"`
	JobTitle       string `json:"jobTitle" gorm:"type:varchar(50);not null"`

	Subordinates []Employee `json:"-" gorm:"foreignKey:ReportsTo;references:EmployeeNumber;constraint:OnDelete:SET NULL"`
	Customers    []Customer `json:"-" gorm:"foreignKey:SalesRepEmployeeNumber;references:EmployeeNumber;constraint:OnDelete:SET NULL"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Customer представляет клиента
type Customer struct {
	CustomerNumber         int      `json:"customerNumber" gorm:"primaryKey"`
	CustomerName           string   `json:"customerName" gorm:"type:varchar(50);not null"`
	ContactLastName        string   `json:"contactLastName" gorm:"type:varchar(50);not null"`
	ContactFirstName       string   `json:"contactFirstName" gorm:"type:varchar(50);not null"`
	Phone                  string   `json:"phone" gorm:"type:varchar(50);not null"`
	AddressLine1           string   `json:"addressLine1" gorm:"type:varchar(50);not null"`
	AddressLine2           *string  `json:"addressLine2" gorm:"type:varchar(50)"`
	City                   string   `json:"city" gorm:"type:varchar(50);not null"`
	State                  *string  `json:"state" gorm:"type:varchar(50)"`
	PostalCode             *string  `json:"postalCode" gorm:"type:varchar(15)"`
	Country                string   `json:"country" gorm:"type:varchar(50);not null"`
	SalesRepEmployeeNumber *int     `json:"salesRepEmployeeNumber" gorm:"index"`
	CreditLimit            *float64 `json:"creditLimit"`

	Orders   []Order   `json:"-" gorm:"foreignKey:CustomerNumber;references:CustomerNumber;constraint:OnDelete:CASCADE"`
	Payments []Payment `json:"-" gorm:"foreignKey:CustomerNumber;references:CustomerNumber;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Customer) TableName() string {
	return "customers"
}

// Order представляет заказ клиента
type Order struct {
	OrderNumber    int        `json:"orderNumber" gorm:"primaryKey"`
	OrderDate      time.Time  `json:"orderDate" gorm:"type:date;not null"`
	RequiredDate   time.Time  `json:"requiredDate" gorm:"type:date;not null"`
	ShippedDate    *time.Time `json:"shippedDate" gorm:"type:date"`
	Status         string     `json:"status" gorm:"type:varchar(15);not null"`
	Comments       *string    `json:"comments" gorm:"type:text"`
	CustomerNumber int        `json:"customerNumber" gorm:"not null;index"`

	OrderDetails []OrderDetail `json:"-" gorm:"foreignKey:OrderNumber;references:OrderNumber;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Order) TableName() string {
	return "orders"
}

// OrderDetail представляет позицию заказа; идентифицируется
// составным ключом (orderNumber, productCode)
type OrderDetail struct {
	OrderNumber     int     `json:"orderNumber" gorm:"primaryKey;autoIncrement:false"`
	ProductCode     string  `json:"productCode" gorm:"primaryKey;type:varchar(15)"`
	QuantityOrdered int     `json:"quantityOrdered" gorm:"not null"`
	PriceEach       float64 `json:"priceEach" gorm:"not null"`
	OrderLineNumber int     `json:"orderLineNumber" gorm:"not null"`
}

// TableName задаёт имя таблицы для GORM
func (OrderDetail) TableName() string {
	return "orderdetails"
}

// Product представляет товар
type Product struct {
	ProductCode        string  `json:"productCode" gorm:"primaryKey;type:varchar(15)"`
	ProductName        string  `json:"productName" gorm:"type:varchar(70);not null"`
	ProductLine        string  `json:"productLine" gorm:"type:varchar(50);not null;index"`
	ProductScale       string  `json:"productScale" gorm:"type:varchar(10);not null"`
	ProductVendor      string  `json:"productVendor" gorm:"type:varchar(50);not null"`
	ProductDescription string  `json:"productDescription" gorm:"type:text;not null"`
	QuantityInStock    int     `json:"quantityInStock" gorm:"not null"`
	BuyPrice           float64 `json:"buyPrice" gorm:"not null"`
	MSRP               float64 `json:"MSRP" gorm:"column:msrp;not null"`

	OrderDetails []OrderDetail `json:"-" gorm:"foreignKey:ProductCode;references:ProductCode;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Product) TableName() string {
	return "products"
}

// ProductLine представляет линейку товаров
type ProductLine struct {
	ProductLine     string  `json:"productLine" gorm:"primaryKey;type:varchar(50)"`
	TextDescription *string `json:"textDescription" gorm:"type:varchar(4000)"`
	HTMLDescription *string `json:"htmlDescription" gorm:"column:html_description;type:text"`
	Image           *string `json:"image" gorm:"type:varchar(100)"`

	Products []Product `json:"-" gorm:"foreignKey:ProductLine;references:ProductLine;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (ProductLine) TableName() string {
	return "productlines"
}

// Payment представляет платёж клиента; идентифицируется
// составным ключом (customerNumber, checkNumber)
type Payment struct {
	CustomerNumber int       `json:"customerNumber" gorm:"primaryKey;autoIncrement:false"`
	CheckNumber    string    `json:"checkNumber" gorm:"primaryKey;type:varchar(50)"`
	PaymentDate    time.Time `json:"paymentDate" gorm:"type:date;not null"`
	Amount         float64   `json:"amount" gorm:"not null"`
}

// TableName задаёт имя таблицы для GORM
func (Payment) TableName() string {
	return "payments"
}
