package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/access"
	"github.com/mrwinner04/graph-ql-warehouse/internal/application/dto"
	"github.com/mrwinner04/graph-ql-warehouse/internal/application/validate"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
)

// OrderItemUseCase líneas de orden. El tenant se resuelve a través de la
// orden: toda operación valida primero que la orden pertenezca al llamador.
type OrderItemUseCase struct {
	repo          repository.OrderItemRepository
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewOrderItemUseCase construye el caso de uso.
func NewOrderItemUseCase(
	repo repository.OrderItemRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *OrderItemUseCase {
	return &OrderItemUseCase{repo: repo, orderRepo: orderRepo, productRepo: productRepo, warehouseRepo: warehouseRepo}
}

// List líneas vivas de todas las órdenes de la empresa.
func (uc *OrderItemUseCase) List(companyID string) ([]dto.OrderItemResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toOrderItemResponse(it))
	}
	return items, nil
}

// ListByOrder líneas vivas de una orden de la empresa.
func (uc *OrderItemUseCase) ListByOrder(orderID, companyID string) ([]dto.OrderItemResponse, error) {
	if _, err := access.ResolveWithAccess(func() (*entity.Order, error) {
		return uc.orderRepo.GetByID(orderID)
	}, companyID, "Order"); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toOrderItemResponse(it))
	}
	return items, nil
}

// ListByProduct líneas vivas en las que aparece un producto de la empresa
// (resolución de relaciones).
func (uc *OrderItemUseCase) ListByProduct(productID, companyID string) ([]dto.OrderItemResponse, error) {
	if _, err := access.ResolveWithAccess(func() (*entity.Product, error) {
		return uc.productRepo.GetByID(productID)
	}, companyID, "Product"); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toOrderItemResponse(it))
	}
	return items, nil
}

// Get resuelve una línea por id; la pertenencia se valida vía su orden.
func (uc *OrderItemUseCase) Get(id, companyID string) (*dto.OrderItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound("OrderItem not found")
	}
	if _, err := access.ResolveWithAccess(func() (*entity.Order, error) {
		return uc.orderRepo.GetByID(item.OrderID)
	}, companyID, "OrderItem"); err != nil {
		return nil, err
	}
	return toOrderItemResponse(item), nil
}

// Create crea una línea de orden.
//
// Reglas: (1) una sola línea viva por par (orden, producto) — la segunda alta
// del mismo producto se rechaza y debe ir por update; (2) el tipo del
// producto debe coincidir con el de la bodega de la orden, salvo que la
// bodega aún no tenga tipo. El chequeo de par duplicado es check-then-insert
// sin lock: dos peticiones concurrentes pueden pasar ambas la verificación
// (comportamiento conocido y documentado, no enmascarado aquí).
func (uc *OrderItemUseCase) Create(companyID, userID string, in dto.CreateOrderItemRequest) (*dto.OrderItemResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.BadRequest("Quantity must be a positive integer")
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}

	order, err := access.ResolveWithAccess(func() (*entity.Order, error) {
		return uc.orderRepo.GetByID(in.OrderID)
	}, companyID, "Order")
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByOrderAndProduct(in.OrderID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.BadRequest("This product is already added to the order. Use updateOrderItem to modify quantity.")
	}

	product, err := access.ResolveWithAccess(func() (*entity.Product, error) {
		return uc.productRepo.GetByID(in.ProductID)
	}, companyID, "Product")
	if err != nil {
		return nil, err
	}
	warehouse, err := uc.warehouseRepo.GetByID(order.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.NotFound("Warehouse not found")
	}
	// Bodega sin especializar: admite cualquier producto.
	if warehouse.Type != "" {
		if err := validate.ProductWarehouseCompatible(product.Type, warehouse.Type); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	item := &entity.OrderItem{
		ID:         uuid.New().String(),
		OrderID:    in.OrderID,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		Price:      price,
		ModifiedBy: userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toOrderItemResponse(item), nil
}

// Update cambia cantidad y/o precio de una línea de la empresa.
func (uc *OrderItemUseCase) Update(id, companyID, userID string, in dto.UpdateOrderItemRequest) (*dto.OrderItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound("OrderItem not found")
	}
	if _, err := access.ResolveWithAccess(func() (*entity.Order, error) {
		return uc.orderRepo.GetByID(item.OrderID)
	}, companyID, "OrderItem"); err != nil {
		return nil, err
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.BadRequest("Quantity must be a positive integer")
		}
		item.Quantity = *in.Quantity
	}
	if in.Price != nil {
		price, err := parsePrice(*in.Price)
		if err != nil {
			return nil, err
		}
		item.Price = price
	}
	item.ModifiedBy = userID
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toOrderItemResponse(item), nil
}

// Delete aplica la política de borrado por rol tras validar la orden.
func (uc *OrderItemUseCase) Delete(id, companyID string, role entity.UserRole) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.NotFound("OrderItem not found")
	}
	if _, err := access.ResolveWithAccess(func() (*entity.Order, error) {
		return uc.orderRepo.GetByID(item.OrderID)
	}, companyID, "OrderItem"); err != nil {
		return err
	}
	return access.DeleteByRole(orderItemDeleter{uc.repo}, id, companyID, role, "OrderItem")
}

// orderItemDeleter adapta el repo de líneas a la política de borrado: la
// línea no lleva company_id propio y el tenant ya quedó verificado vía la
// orden, así que el predicado ignora la empresa.
type orderItemDeleter struct {
	repo repository.OrderItemRepository
}

func (d orderItemDeleter) HardDelete(id, _ string) (int64, error) { return d.repo.HardDelete(id) }
func (d orderItemDeleter) SoftDelete(id, _ string) (int64, error) { return d.repo.SoftDelete(id) }

func toOrderItemResponse(it *entity.OrderItem) *dto.OrderItemResponse {
	if it == nil {
		return nil
	}
	return &dto.OrderItemResponse{
		ID:        it.ID,
		OrderID:   it.OrderID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		Price:     it.Price.StringFixed(2),
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}
