package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/dto"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
	"github.com/mrwinner04/graph-ql-warehouse/pkg/logger"
)

// Repos en memoria con el mismo contrato que los de postgres: "no hay fila"
// es (nil, nil), los listados excluyen borrado lógico y GetByID lo incluye.

const (
	testCompanyID  = "00000000-0000-0000-0000-0000000000aa"
	otherCompanyID = "00000000-0000-0000-0000-0000000000bb"
	testUserID     = "00000000-0000-0000-0000-000000000001"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// ───────────────────────────── orders ─────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) FindIDByNumber(companyID, number string) (string, error) {
	for _, o := range r.orders {
		if o.CompanyID == companyID && o.Number == number && o.DeletedAt == nil {
			return o.ID, nil
		}
	}
	return "", nil
}

func (r *fakeOrderRepo) ListByCompany(companyID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.CompanyID == companyID && o.DeletedAt == nil {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByCustomer(customerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID && o.DeletedAt == nil {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByWarehouse(warehouseID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.WarehouseID == warehouseID && o.DeletedAt == nil {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) HardDelete(id, companyID string) (int64, error) {
	o, ok := r.orders[id]
	if !ok || o.CompanyID != companyID {
		return 0, nil
	}
	delete(r.orders, id)
	return 1, nil
}

func (r *fakeOrderRepo) SoftDelete(id, companyID string) (int64, error) {
	o, ok := r.orders[id]
	if !ok || o.CompanyID != companyID || o.DeletedAt != nil {
		return 0, nil
	}
	now := time.Now()
	o.DeletedAt = &now
	return 1, nil
}

// ───────────────────────────── invoices ─────────────────────────────

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]*entity.Invoice)}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) FindIDByNumber(companyID, number string) (string, error) {
	for _, inv := range r.invoices {
		if inv.CompanyID == companyID && inv.Number == number && inv.DeletedAt == nil {
			return inv.ID, nil
		}
	}
	return "", nil
}

func (r *fakeInvoiceRepo) ListByCompany(companyID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.CompanyID == companyID && inv.DeletedAt == nil {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) ListByOrder(orderID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.OrderID == orderID && inv.DeletedAt == nil {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) HardDelete(id, companyID string) (int64, error) {
	inv, ok := r.invoices[id]
	if !ok || inv.CompanyID != companyID {
		return 0, nil
	}
	delete(r.invoices, id)
	return 1, nil
}

func (r *fakeInvoiceRepo) SoftDelete(id, companyID string) (int64, error) {
	inv, ok := r.invoices[id]
	if !ok || inv.CompanyID != companyID || inv.DeletedAt != nil {
		return 0, nil
	}
	now := time.Now()
	inv.DeletedAt = &now
	return 1, nil
}

// ───────────────────────────── order items ─────────────────────────────

// fakeOrderItemRepo réplica en memoria del repo de líneas. El join con la
// orden de ListByCompany se reproduce mirando el repo de órdenes.
type fakeOrderItemRepo struct {
	items  map[string]*entity.OrderItem
	orders *fakeOrderRepo
}

func newFakeOrderItemRepo(orders *fakeOrderRepo) *fakeOrderItemRepo {
	return &fakeOrderItemRepo{items: make(map[string]*entity.OrderItem), orders: orders}
}

func (r *fakeOrderItemRepo) Create(it *entity.OrderItem) error {
	cp := *it
	r.items[it.ID] = &cp
	return nil
}

func (r *fakeOrderItemRepo) GetByID(id string) (*entity.OrderItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeOrderItemRepo) FindByOrderAndProduct(orderID, productID string) (*entity.OrderItem, error) {
	for _, it := range r.items {
		if it.OrderID == orderID && it.ProductID == productID && it.DeletedAt == nil {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderItemRepo) ListByCompany(companyID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, it := range r.items {
		if it.DeletedAt != nil {
			continue
		}
		o, ok := r.orders.orders[it.OrderID]
		if !ok || o.CompanyID != companyID || o.DeletedAt != nil {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeOrderItemRepo) ListByOrder(orderID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, it := range r.items {
		if it.OrderID == orderID && it.DeletedAt == nil {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderItemRepo) ListByProduct(productID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, it := range r.items {
		if it.ProductID == productID && it.DeletedAt == nil {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderItemRepo) OrderTotal(orderID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, it := range r.items {
		if it.OrderID == orderID && it.DeletedAt == nil {
			total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}
	return total, nil
}

func (r *fakeOrderItemRepo) Update(it *entity.OrderItem) error {
	cp := *it
	r.items[it.ID] = &cp
	return nil
}

func (r *fakeOrderItemRepo) HardDelete(id string) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *fakeOrderItemRepo) SoftDelete(id string) (int64, error) {
	it, ok := r.items[id]
	if !ok || it.DeletedAt != nil {
		return 0, nil
	}
	now := time.Now()
	it.DeletedAt = &now
	return 1, nil
}

// ───────────────────────────── products ─────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) FindIDByName(companyID, name string) (string, error) {
	for _, p := range r.products {
		if p.CompanyID == companyID && p.Name == name && p.DeletedAt == nil {
			return p.ID, nil
		}
	}
	return "", nil
}

func (r *fakeProductRepo) FindIDByCode(companyID, code string) (string, error) {
	for _, p := range r.products {
		if p.CompanyID == companyID && p.Code == code && p.DeletedAt == nil {
			return p.ID, nil
		}
	}
	return "", nil
}

func (r *fakeProductRepo) ListByCompany(companyID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.CompanyID == companyID && p.DeletedAt == nil {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) HardDelete(id, companyID string) (int64, error) {
	p, ok := r.products[id]
	if !ok || p.CompanyID != companyID {
		return 0, nil
	}
	delete(r.products, id)
	return 1, nil
}

func (r *fakeProductRepo) SoftDelete(id, companyID string) (int64, error) {
	p, ok := r.products[id]
	if !ok || p.CompanyID != companyID || p.DeletedAt != nil {
		return 0, nil
	}
	now := time.Now()
	p.DeletedAt = &now
	return 1, nil
}

// ───────────────────────────── warehouses ─────────────────────────────

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	cp := *w
	r.warehouses[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarehouseRepo) FindIDByName(companyID, name string) (string, error) {
	for _, w := range r.warehouses {
		if w.CompanyID == companyID && w.Name == name && w.DeletedAt == nil {
			return w.ID, nil
		}
	}
	return "", nil
}

func (r *fakeWarehouseRepo) ListByCompany(companyID string) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		if w.CompanyID == companyID && w.DeletedAt == nil {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	cp := *w
	r.warehouses[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) HardDelete(id, companyID string) (int64, error) {
	w, ok := r.warehouses[id]
	if !ok || w.CompanyID != companyID {
		return 0, nil
	}
	delete(r.warehouses, id)
	return 1, nil
}

func (r *fakeWarehouseRepo) SoftDelete(id, companyID string) (int64, error) {
	w, ok := r.warehouses[id]
	if !ok || w.CompanyID != companyID || w.DeletedAt != nil {
		return 0, nil
	}
	now := time.Now()
	w.DeletedAt = &now
	return 1, nil
}

// ───────────────────────────── reports ─────────────────────────────

// fakeReportRepo devuelve datos preconfigurados y registra los argumentos
// recibidos para poder asertar sobre normalización de límites.
type fakeReportRepo struct {
	bestSelling    []repository.BestSellingProduct
	stock          map[string][]repository.StockItem // por warehouseID
	highestStock   []repository.WarehouseProductStock
	topCustomer    *repository.CustomerOrderCount
	typeConflicts  []repository.ProductTypeConflict
	lastLimit      int
	lastCompanyIDs []string
}

func (r *fakeReportRepo) BestSellingProducts(ctx context.Context, companyID string, limit int) ([]repository.BestSellingProduct, error) {
	r.lastLimit = limit
	r.lastCompanyIDs = append(r.lastCompanyIDs, companyID)
	if limit < len(r.bestSelling) {
		return r.bestSelling[:limit], nil
	}
	return r.bestSelling, nil
}

func (r *fakeReportRepo) StockByWarehouse(ctx context.Context, companyID, warehouseID string) ([]repository.StockItem, error) {
	return r.stock[warehouseID], nil
}

func (r *fakeReportRepo) HighestStockPerWarehouse(ctx context.Context, companyID string) ([]repository.WarehouseProductStock, error) {
	return r.highestStock, nil
}

func (r *fakeReportRepo) ClientWithMostOrders(ctx context.Context, companyID string) (*repository.CustomerOrderCount, error) {
	return r.topCustomer, nil
}

func (r *fakeReportRepo) WarehouseTypeConflicts(ctx context.Context, warehouseID, newType string) ([]repository.ProductTypeConflict, error) {
	return r.typeConflicts, nil
}

// ───────────────────────────── facturación ─────────────────────────────

// fakeInvoiceCreator emisor de facturas controlable: registra las órdenes
// facturadas y puede fallar a demanda.
type fakeInvoiceCreator struct {
	calls []string
	err   error
}

func (f *fakeInvoiceCreator) CreateForOrder(orderID, companyID, userID string) (*dto.InvoiceResponse, error) {
	f.calls = append(f.calls, orderID)
	if f.err != nil {
		return nil, f.err
	}
	return &dto.InvoiceResponse{ID: "inv-" + orderID, OrderID: orderID}, nil
}
