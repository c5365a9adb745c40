package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/access"
	"github.com/mrwinner04/graph-ql-warehouse/internal/application/dto"
	"github.com/mrwinner04/graph-ql-warehouse/internal/application/validate"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
	"github.com/mrwinner04/graph-ql-warehouse/pkg/logger"
)

// invoiceCreator contrato mínimo para la emisión automática de factura.
// Lo implementa *InvoiceUseCase; la interfaz permite fakes en tests.
type invoiceCreator interface {
	CreateForOrder(orderID, companyID, userID string) (*dto.InvoiceResponse, error)
}

// OrderUseCase orquesta la creación de órdenes: asignación de número único,
// defaults, persistencia y emisión automática de factura como efecto lateral
// best-effort.
type OrderUseCase struct {
	repo          repository.OrderRepository
	warehouseRepo repository.WarehouseRepository
	itemRepo      repository.OrderItemRepository
	productRepo   repository.ProductRepository
	invoices      invoiceCreator
	log           *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	repo repository.OrderRepository,
	warehouseRepo repository.WarehouseRepository,
	itemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
	invoices invoiceCreator,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		repo:          repo,
		warehouseRepo: warehouseRepo,
		itemRepo:      itemRepo,
		productRepo:   productRepo,
		invoices:      invoices,
		log:           log,
	}
}

// List lista las órdenes vivas de la empresa.
func (uc *OrderUseCase) List(companyID string) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items, nil
}

// Get resuelve una orden por id validando pertenencia a la empresa.
func (uc *OrderUseCase) Get(id, companyID string) (*dto.OrderResponse, error) {
	order, err := access.ResolveWithAccess(func() (*entity.Order, error) {
		return uc.repo.GetByID(id)
	}, companyID, "Order")
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListByCustomer órdenes vivas de un cliente (resolución de relaciones).
func (uc *OrderUseCase) ListByCustomer(customerID string) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items, nil
}

// ListByWarehouse órdenes vivas registradas en una bodega (resolución de
// relaciones).
func (uc *OrderUseCase) ListByWarehouse(warehouseID string) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items, nil
}

// Create crea una orden.
//
// Número: si no se informa se sintetiza ORD-{timestamp}-{random}; si se
// informa y ya existe en la empresa, se sufija con un timestamp en lugar de
// rechazar (la creación de orden nunca falla por colisión de número). La
// factura se emite automáticamente al final: su fallo se registra y se traga,
// la orden ya creada no se revierte — disponibilidad sobre consistencia, una
// orden sin factura se recupera a mano, una orden rechazada no.
func (uc *OrderUseCase) Create(companyID, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Type == "" {
		// Condición de programación/cliente, no de negocio: error plano, sin reintento.
		return nil, errors.New("order type is required")
	}
	otype := entity.OrderType(in.Type)
	if !otype.Valid() {
		return nil, domain.BadRequest("Order type must be 'sales', 'purchase' or 'transfer'")
	}

	number, err := uc.resolveNumber(companyID, in.Number)
	if err != nil {
		return nil, err
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	now := time.Now()
	order := &entity.Order{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Number:      number,
		Type:        otype,
		CustomerID:  in.CustomerID,
		WarehouseID: in.WarehouseID,
		Date:        date,
		ModifiedBy:  userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}

	// Efecto lateral best-effort: la emisión de factura nunca tumba la orden.
	if _, err := uc.invoices.CreateForOrder(order.ID, companyID, userID); err != nil {
		uc.log.Error().Err(err).Str("order", order.Number).Msg("emisión automática de factura falló; la orden queda sin factura")
	} else {
		uc.log.Info().Str("order", order.Number).Msg("factura emitida automáticamente para la orden")
	}

	return toOrderResponse(order), nil
}

// CreateTransfer crea una orden de transferencia entre dos bodegas de la
// empresa. La bodega destino queda como bodega de registro, de modo que las
// líneas que se agreguen después validan compatibilidad contra el destino.
func (uc *OrderUseCase) CreateTransfer(companyID, userID string, in dto.TransferOrderRequest) (*dto.OrderResponse, error) {
	if in.FromWarehouseID == "" || in.ToWarehouseID == "" {
		return nil, domain.BadRequest("Both source and destination warehouses are required")
	}
	if in.FromWarehouseID == in.ToWarehouseID {
		return nil, domain.BadRequest("Cannot transfer between the same warehouse")
	}
	from, err := uc.warehouseRepo.GetByID(in.FromWarehouseID)
	if err != nil {
		return nil, err
	}
	if from == nil || from.CompanyID != companyID {
		return nil, domain.BadRequest("Source warehouse does not belong to your company")
	}
	to, err := uc.warehouseRepo.GetByID(in.ToWarehouseID)
	if err != nil {
		return nil, err
	}
	if to == nil || to.CompanyID != companyID {
		return nil, domain.BadRequest("Destination warehouse does not belong to your company")
	}

	return uc.Create(companyID, userID, dto.CreateOrderRequest{
		Number:      in.Number,
		Type:        string(entity.OrderTypeTransfer),
		CustomerID:  in.CustomerID,
		WarehouseID: in.ToWarehouseID,
		Date:        in.Date,
	})
}

// Update actualiza una orden de la empresa. El número nuevo revalida
// unicidad excluyendo la propia fila (aquí sí se rechaza con Conflict: el
// re-sufijado es solo para la creación).
func (uc *OrderUseCase) Update(id, companyID, userID string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := access.ResolveWithAccess(func() (*entity.Order, error) {
		return uc.repo.GetByID(id)
	}, companyID, "Order")
	if err != nil {
		return nil, err
	}
	if in.Number != nil {
		if err := validate.FieldUniqueInCompany(func(v string) (string, error) {
			return uc.repo.FindIDByNumber(companyID, v)
		}, "number", *in.Number, "Order", id, nil); err != nil {
			return nil, err
		}
		order.Number = strings.TrimSpace(*in.Number)
	}
	if in.Type != nil {
		otype := entity.OrderType(*in.Type)
		if !otype.Valid() {
			return nil, domain.BadRequest("Order type must be 'sales', 'purchase' or 'transfer'")
		}
		order.Type = otype
	}
	if in.CustomerID != nil {
		order.CustomerID = *in.CustomerID
	}
	if in.WarehouseID != nil && *in.WarehouseID != order.WarehouseID {
		if err := uc.validateWarehouseChange(id, companyID, *in.WarehouseID); err != nil {
			return nil, err
		}
		order.WarehouseID = *in.WarehouseID
	}
	if in.Date != nil {
		order.Date = *in.Date
	}
	order.ModifiedBy = userID
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete aplica la política de borrado por rol tras el guard de empresa.
func (uc *OrderUseCase) Delete(id, companyID string, role entity.UserRole) error {
	if _, err := access.ResolveWithAccess(func() (*entity.Order, error) {
		return uc.repo.GetByID(id)
	}, companyID, "Order"); err != nil {
		return err
	}
	return access.DeleteByRole(uc.repo, id, companyID, role, "Order")
}

// validateWarehouseChange re-valida el contenido completo de la orden contra
// la bodega nueva: todos los productos de las líneas vivas deben ser
// compatibles con su tipo. Una bodega sin especializar admite cualquier cosa.
func (uc *OrderUseCase) validateWarehouseChange(orderID, companyID, warehouseID string) error {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return domain.BadRequest("Warehouse does not belong to your company")
	}
	if warehouse.Type == "" {
		return nil
	}
	items, err := uc.itemRepo.ListByOrder(orderID)
	if err != nil {
		return err
	}
	types := make([]entity.ProductType, 0, len(items))
	for _, it := range items {
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			continue
		}
		types = append(types, product.Type)
	}
	return validate.ProductsWarehouseCompatible(types, warehouse.Type)
}

// resolveNumber aplica la política de número de orden: generar si falta,
// sufijar determinísticamente si el número explícito colisiona.
func (uc *OrderUseCase) resolveNumber(companyID, number string) (string, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), randomSuffix(9)), nil
	}
	existing, err := uc.repo.FindIDByNumber(companyID, number)
	if err != nil {
		return "", err
	}
	if existing != "" {
		return fmt.Sprintf("%s-%d", number, time.Now().UnixMilli()), nil
	}
	return number, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:          o.ID,
		CompanyID:   o.CompanyID,
		Number:      o.Number,
		Type:        string(o.Type),
		CustomerID:  o.CustomerID,
		WarehouseID: o.WarehouseID,
		Date:        o.Date,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
