package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/auth"
	"github.com/mrwinner04/graph-ql-warehouse/internal/application/usecase"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
	infrapdf "github.com/mrwinner04/graph-ql-warehouse/internal/infrastructure/pdf"
	apphttp "github.com/mrwinner04/graph-ql-warehouse/internal/interfaces/http"
	"github.com/mrwinner04/graph-ql-warehouse/pkg/logger"
)

// Stubs de persistencia vacíos: todo lookup responde "no hay fila". Bastan
// para comprobar qué rutas dejan pasar cada rol — un 404 del caso de uso
// demuestra que el guard de rol no cortó la petición.

type stubUserRepo struct{}

func (stubUserRepo) Create(*entity.User) error                    { return nil }
func (stubUserRepo) GetByID(string) (*entity.User, error)         { return nil, nil }
func (stubUserRepo) FindByEmail(string) (*entity.User, error)     { return nil, nil }
func (stubUserRepo) FindIDByEmail(string) (string, error)         { return "", nil }
func (stubUserRepo) ListByCompany(string) ([]*entity.User, error) { return nil, nil }
func (stubUserRepo) Update(*entity.User) error                    { return nil }
func (stubUserRepo) HardDelete(string, string) (int64, error)     { return 0, nil }
func (stubUserRepo) SoftDelete(string, string) (int64, error)     { return 0, nil }

type stubCompanyRepo struct{}

func (stubCompanyRepo) Create(*entity.Company) error            { return nil }
func (stubCompanyRepo) GetByID(string) (*entity.Company, error) { return nil, nil }
func (stubCompanyRepo) ListAll() ([]*entity.Company, error)     { return nil, nil }
func (stubCompanyRepo) Update(*entity.Company) error            { return nil }

type stubCustomerRepo struct{}

func (stubCustomerRepo) Create(*entity.Customer) error                    { return nil }
func (stubCustomerRepo) GetByID(string) (*entity.Customer, error)         { return nil, nil }
func (stubCustomerRepo) FindIDByEmail(string, string) (string, error)     { return "", nil }
func (stubCustomerRepo) ListByCompany(string) ([]*entity.Customer, error) { return nil, nil }
func (stubCustomerRepo) Update(*entity.Customer) error                    { return nil }
func (stubCustomerRepo) HardDelete(string, string) (int64, error)         { return 0, nil }
func (stubCustomerRepo) SoftDelete(string, string) (int64, error)         { return 0, nil }

type stubProductRepo struct{}

func (stubProductRepo) Create(*entity.Product) error                    { return nil }
func (stubProductRepo) GetByID(string) (*entity.Product, error)         { return nil, nil }
func (stubProductRepo) FindIDByName(string, string) (string, error)     { return "", nil }
func (stubProductRepo) FindIDByCode(string, string) (string, error)     { return "", nil }
func (stubProductRepo) ListByCompany(string) ([]*entity.Product, error) { return nil, nil }
func (stubProductRepo) Update(*entity.Product) error                    { return nil }
func (stubProductRepo) HardDelete(string, string) (int64, error)        { return 0, nil }
func (stubProductRepo) SoftDelete(string, string) (int64, error)        { return 0, nil }

type stubWarehouseRepo struct{}

func (stubWarehouseRepo) Create(*entity.Warehouse) error                    { return nil }
func (stubWarehouseRepo) GetByID(string) (*entity.Warehouse, error)         { return nil, nil }
func (stubWarehouseRepo) FindIDByName(string, string) (string, error)       { return "", nil }
func (stubWarehouseRepo) ListByCompany(string) ([]*entity.Warehouse, error) { return nil, nil }
func (stubWarehouseRepo) Update(*entity.Warehouse) error                    { return nil }
func (stubWarehouseRepo) HardDelete(string, string) (int64, error)          { return 0, nil }
func (stubWarehouseRepo) SoftDelete(string, string) (int64, error)          { return 0, nil }

type stubOrderRepo struct{}

func (stubOrderRepo) Create(*entity.Order) error                      { return nil }
func (stubOrderRepo) GetByID(string) (*entity.Order, error)           { return nil, nil }
func (stubOrderRepo) FindIDByNumber(string, string) (string, error)   { return "", nil }
func (stubOrderRepo) ListByCompany(string) ([]*entity.Order, error)   { return nil, nil }
func (stubOrderRepo) ListByCustomer(string) ([]*entity.Order, error)  { return nil, nil }
func (stubOrderRepo) ListByWarehouse(string) ([]*entity.Order, error) { return nil, nil }
func (stubOrderRepo) Update(*entity.Order) error                      { return nil }
func (stubOrderRepo) HardDelete(string, string) (int64, error)        { return 0, nil }
func (stubOrderRepo) SoftDelete(string, string) (int64, error)        { return 0, nil }

type stubOrderItemRepo struct{}

func (stubOrderItemRepo) Create(*entity.OrderItem) error            { return nil }
func (stubOrderItemRepo) GetByID(string) (*entity.OrderItem, error) { return nil, nil }
func (stubOrderItemRepo) FindByOrderAndProduct(string, string) (*entity.OrderItem, error) {
	return nil, nil
}
func (stubOrderItemRepo) ListByCompany(string) ([]*entity.OrderItem, error) { return nil, nil }
func (stubOrderItemRepo) ListByOrder(string) ([]*entity.OrderItem, error)   { return nil, nil }
func (stubOrderItemRepo) ListByProduct(string) ([]*entity.OrderItem, error) { return nil, nil }
func (stubOrderItemRepo) OrderTotal(string) (decimal.Decimal, error)        { return decimal.Zero, nil }
func (stubOrderItemRepo) Update(*entity.OrderItem) error                    { return nil }
func (stubOrderItemRepo) HardDelete(string) (int64, error)                  { return 0, nil }
func (stubOrderItemRepo) SoftDelete(string) (int64, error)                  { return 0, nil }

type stubInvoiceRepo struct{}

func (stubInvoiceRepo) Create(*entity.Invoice) error                    { return nil }
func (stubInvoiceRepo) GetByID(string) (*entity.Invoice, error)         { return nil, nil }
func (stubInvoiceRepo) FindIDByNumber(string, string) (string, error)   { return "", nil }
func (stubInvoiceRepo) ListByCompany(string) ([]*entity.Invoice, error) { return nil, nil }
func (stubInvoiceRepo) ListByOrder(string) ([]*entity.Invoice, error)   { return nil, nil }
func (stubInvoiceRepo) Update(*entity.Invoice) error                    { return nil }
func (stubInvoiceRepo) HardDelete(string, string) (int64, error)        { return 0, nil }
func (stubInvoiceRepo) SoftDelete(string, string) (int64, error)        { return 0, nil }

type stubReportRepo struct{}

func (stubReportRepo) BestSellingProducts(context.Context, string, int) ([]repository.BestSellingProduct, error) {
	return nil, nil
}
func (stubReportRepo) StockByWarehouse(context.Context, string, string) ([]repository.StockItem, error) {
	return nil, nil
}
func (stubReportRepo) HighestStockPerWarehouse(context.Context, string) ([]repository.WarehouseProductStock, error) {
	return nil, nil
}
func (stubReportRepo) ClientWithMostOrders(context.Context, string) (*repository.CustomerOrderCount, error) {
	return nil, nil
}
func (stubReportRepo) WarehouseTypeConflicts(context.Context, string, string) ([]repository.ProductTypeConflict, error) {
	return nil, nil
}

// buildRouterApp monta el router completo sobre los stubs.
func buildRouterApp() *fiber.App {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	userRepo := stubUserRepo{}
	companyRepo := stubCompanyRepo{}
	customerRepo := stubCustomerRepo{}
	productRepo := stubProductRepo{}
	warehouseRepo := stubWarehouseRepo{}
	orderRepo := stubOrderRepo{}
	orderItemRepo := stubOrderItemRepo{}
	invoiceRepo := stubInvoiceRepo{}
	reportRepo := stubReportRepo{}

	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, orderRepo, orderItemRepo)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		CompanyUC:   usecase.NewCompanyUseCase(companyRepo),
		UserUC:      usecase.NewUserUseCase(userRepo),
		CustomerUC:  usecase.NewCustomerUseCase(customerRepo),
		ProductUC:   usecase.NewProductUseCase(productRepo),
		WarehouseUC: usecase.NewWarehouseUseCase(warehouseRepo, reportRepo),
		OrderUC: usecase.NewOrderUseCase(
			orderRepo, warehouseRepo, orderItemRepo, productRepo, invoiceUC, log,
		),
		OrderItemUC: usecase.NewOrderItemUseCase(orderItemRepo, orderRepo, productRepo, warehouseRepo),
		InvoiceUC:   invoiceUC,
		InvoicePDFUC: usecase.NewInvoicePDFUseCase(
			invoiceRepo, orderRepo, orderItemRepo,
			companyRepo, customerRepo, productRepo,
			infrapdf.NewMarotoPDFGenerator(),
		),
		ReportUC:  usecase.NewReportUseCase(reportRepo, warehouseRepo),
		JWTSecret: testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, role string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Política de roles sobre /api/users: solo la creación queda restringida a
// owner; update y delete admiten también a operator (que borra en lógico).
func TestRouter_PoliticaDeRolesEnUsuarios(t *testing.T) {
	app := buildRouterApp()

	// Operator actualiza: el guard lo deja pasar y el caso de uso responde
	// 404 porque el usuario no existe — nunca 403.
	resp := doJSON(t, app, http.MethodPut, "/api/users/u1", "operator")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"operator debe llegar al caso de uso en update de usuarios")
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/users/u1", "operator")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"operator debe llegar al caso de uso en delete de usuarios")
	resp.Body.Close()

	// La creación sí es solo para owners.
	resp = doJSON(t, app, http.MethodPost, "/api/users", "operator")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"operator no puede crear usuarios")
	resp.Body.Close()

	// Viewer no muta usuarios.
	resp = doJSON(t, app, http.MethodPut, "/api/users/u1", "viewer")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/users/u1", "viewer")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

// Listar empresas sigue siendo exclusivo de owner.
func TestRouter_ListaDeEmpresasSoloOwner(t *testing.T) {
	app := buildRouterApp()

	resp := doJSON(t, app, http.MethodGet, "/api/companies", "operator")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/companies", "owner")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

// El listado general de líneas de orden queda expuesto a cualquier rol
// autenticado, como el resto de lecturas.
func TestRouter_ListadoDeLineasAccesibleAViewer(t *testing.T) {
	app := buildRouterApp()

	resp := doJSON(t, app, http.MethodGet, "/api/order-items", "viewer")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
