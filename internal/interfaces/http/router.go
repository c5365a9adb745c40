package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/auth"
	"github.com/mrwinner04/graph-ql-warehouse/internal/application/usecase"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CompanyUC    *usecase.CompanyUseCase
	UserUC       *usecase.UserUseCase
	CustomerUC   *usecase.CustomerUseCase
	ProductUC    *usecase.ProductUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	OrderUC      *usecase.OrderUseCase
	OrderItemUC  *usecase.OrderItemUseCase
	InvoiceUC    *usecase.InvoiceUseCase
	InvoicePDFUC *usecase.InvoicePDFUseCase
	ReportUC     *usecase.ReportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
//
// Política de roles: owner crea usuarios y lista empresas; owner y operator
// mutan las demás entidades, usuarios incluidos; cualquier rol autenticado
// lee.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	canWrite := RequireRole(string(entity.RoleOwner), string(entity.RoleOperator))
	ownerOnly := RequireRole(string(entity.RoleOwner))

	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Companies (protegido; listar es solo para owners)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", ownerOnly, companyHandler.List)
	companies.Get("/me", companyHandler.GetOwn)
	companies.Put("/me", canWrite, companyHandler.Update)

	// Users (protegido; crear usuarios es solo para owners)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", ownerOnly, userHandler.Create)
	users.Put("/:id", canWrite, userHandler.Update)
	users.Delete("/:id", canWrite, userHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.OrderUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Get("/:id/orders", customerHandler.Orders)
	customers.Post("/", canWrite, customerHandler.Create)
	customers.Put("/:id", canWrite, customerHandler.Update)
	customers.Delete("/:id", canWrite, customerHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.OrderItemUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/order-items", productHandler.OrderItems)
	products.Post("/", canWrite, productHandler.Create)
	products.Put("/:id", canWrite, productHandler.Update)
	products.Delete("/:id", canWrite, productHandler.Delete)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.OrderUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Get("/:id/orders", warehouseHandler.Orders)
	warehouses.Post("/", canWrite, warehouseHandler.Create)
	warehouses.Put("/:id", canWrite, warehouseHandler.Update)
	warehouses.Delete("/:id", canWrite, warehouseHandler.Delete)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderItemUC, deps.InvoiceUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", canWrite, orderHandler.Create)
	orders.Post("/transfer", canWrite, orderHandler.CreateTransfer)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/items", orderHandler.Items)
	orders.Get("/:id/invoices", orderHandler.Invoices)
	orders.Put("/:id", canWrite, orderHandler.Update)
	orders.Delete("/:id", canWrite, orderHandler.Delete)

	// Order items (protegido)
	orderItems := protected.Group("/order-items")
	orderItemHandler := NewOrderItemHandler(deps.OrderItemUC)
	orderItems.Get("/", orderItemHandler.List)
	orderItems.Get("/:id", orderItemHandler.GetByID)
	orderItems.Post("/", canWrite, orderItemHandler.Create)
	orderItems.Put("/:id", canWrite, orderItemHandler.Update)
	orderItems.Delete("/:id", canWrite, orderItemHandler.Delete)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDFUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Post("/", canWrite, invoiceHandler.Create)
	invoices.Put("/:id", canWrite, invoiceHandler.Update)
	invoices.Delete("/:id", canWrite, invoiceHandler.Delete)

	// Reports (protegido, solo lectura)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/best-selling-products", reportHandler.BestSellingProducts)
	reports.Get("/available-stock", reportHandler.AvailableStock)
	reports.Get("/highest-stock-per-warehouse", reportHandler.HighestStockPerWarehouse)
	reports.Get("/client-with-most-orders", reportHandler.ClientWithMostOrders)
}
