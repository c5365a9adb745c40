package usecase

import (
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
)

// invoiceNumberTries intentos de regeneración ante colisión de número
// autogenerado. Agotados los intentos se usa el último candidato tal cual:
// la colisión residual es teóricamente posible y prácticamente despreciable.
const invoiceNumberTries = 10

// InvoiceUseCase facturación. La vía normal de emisión es el efecto lateral
// de crear una orden; el alta directa queda para flujos excepcionales.
type InvoiceUseCase struct {
	repo      repository.InvoiceRepository
	orderRepo repository.OrderRepository
	itemRepo  repository.OrderItemRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, orderRepo repository.OrderRepository, itemRepo repository.OrderItemRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, orderRepo: orderRepo, itemRepo: itemRepo}
}

// List lista las facturas vivas de la empresa con su total recalculado.
func (uc *InvoiceUseCase) List(companyID string) ([]dto.InvoiceResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		resp, err := uc.withTotal(inv)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return items, nil
}

// Get resuelve una factura por id validando pertenencia a la empresa.
func (uc *InvoiceUseCase) Get(id, companyID string) (*dto.InvoiceResponse, error) {
	invoice, err := access.ResolveWithAccess(func() (*entity.Invoice, error) {
		return uc.repo.GetByID(id)
	}, companyID, "Invoice")
	if err != nil {
		return nil, err
	}
	return uc.withTotal(invoice)
}

// ListByOrder facturas de una orden (resolución de relaciones; la orden ya
// pasó por su propio guard).
func (uc *InvoiceUseCase) ListByOrder(orderID string) ([]dto.InvoiceResponse, error) {
	list, err := uc.repo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		resp, err := uc.withTotal(inv)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return items, nil
}

// Create crea una factura para una orden de la empresa.
//
// Política de número: sin número se genera INV-{timestamp}-{random8} con
// hasta 10 reintentos ante colisión; un número explícito que colisiona se
// rechaza con Conflict (sin re-sufijado automático, al contrario que las
// órdenes).
func (uc *InvoiceUseCase) Create(companyID, userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.OrderID == "" {
		return nil, domain.BadRequest("Order id is required")
	}
	if _, err := access.ResolveWithAccess(func() (*entity.Order, error) {
		return uc.orderRepo.GetByID(in.OrderID)
	}, companyID, "Order"); err != nil {
		return nil, err
	}

	number := strings.TrimSpace(in.Number)
	if number == "" {
		var err error
		number, err = uc.generateNumber(companyID)
		if err != nil {
			return nil, err
		}
	} else {
		if err := validate.FieldUniqueInCompany(func(v string) (string, error) {
			return uc.repo.FindIDByNumber(companyID, v)
		}, "number", number, "Invoice", "", nil); err != nil {
			return nil, err
		}
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	status := entity.InvoiceStatus(in.Status)
	if status == "" {
		status = entity.InvoiceStatusPending
	}
	if !validInvoiceStatus(status) {
		return nil, domain.BadRequest("invalid invoice status '%s'", in.Status)
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		OrderID:    in.OrderID,
		Number:     number,
		Date:       date,
		Status:     status,
		ModifiedBy: userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(invoice); err != nil {
		return nil, err
	}
	return uc.withTotal(invoice)
}

// CreateForOrder emisión automática al crear una orden: número generado,
// fecha ahora, estado pending.
func (uc *InvoiceUseCase) CreateForOrder(orderID, companyID, userID string) (*dto.InvoiceResponse, error) {
	return uc.Create(companyID, userID, dto.CreateInvoiceRequest{OrderID: orderID})
}

// Update actualiza una factura de la empresa. El número nuevo revalida la
// unicidad excluyendo la propia fila.
func (uc *InvoiceUseCase) Update(id, companyID, userID string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := access.ResolveWithAccess(func() (*entity.Invoice, error) {
		return uc.repo.GetByID(id)
	}, companyID, "Invoice")
	if err != nil {
		return nil, err
	}
	if in.Number != nil {
		if err := validate.FieldUniqueInCompany(func(v string) (string, error) {
			return uc.repo.FindIDByNumber(companyID, v)
		}, "number", *in.Number, "Invoice", id, nil); err != nil {
			return nil, err
		}
		invoice.Number = strings.TrimSpace(*in.Number)
	}
	if in.OrderID != nil {
		if _, err := access.ResolveWithAccess(func() (*entity.Order, error) {
			return uc.orderRepo.GetByID(*in.OrderID)
		}, companyID, "Order"); err != nil {
			return nil, err
		}
		invoice.OrderID = *in.OrderID
	}
	if in.Date != nil {
		invoice.Date = *in.Date
	}
	if in.Status != nil {
		status := entity.InvoiceStatus(*in.Status)
		if !validInvoiceStatus(status) {
			return nil, domain.BadRequest("invalid invoice status '%s'", *in.Status)
		}
		invoice.Status = status
	}
	invoice.ModifiedBy = userID
	invoice.UpdatedAt = time.Now()
	if err := uc.repo.Update(invoice); err != nil {
		return nil, err
	}
	return uc.withTotal(invoice)
}

// Delete aplica la política de borrado por rol tras el guard de empresa.
func (uc *InvoiceUseCase) Delete(id, companyID string, role entity.UserRole) error {
	if _, err := access.ResolveWithAccess(func() (*entity.Invoice, error) {
		return uc.repo.GetByID(id)
	}, companyID, "Invoice"); err != nil {
		return err
	}
	return access.DeleteByRole(uc.repo, id, companyID, role, "Invoice")
}

// generateNumber produce un candidato INV-{ms}-{random8} y reintenta hasta
// invoiceNumberTries veces si ya existe en la empresa. Si todos los intentos
// colisionan, devuelve el último candidato sin error.
func (uc *InvoiceUseCase) generateNumber(companyID string) (string, error) {
	var number string
	for i := 0; i < invoiceNumberTries; i++ {
		number = fmt.Sprintf("INV-%d-%s", time.Now().UnixMilli(), randomSuffix(8))
		existing, err := uc.repo.FindIDByNumber(companyID, number)
		if err != nil {
			return "", err
		}
		if existing == "" {
			break
		}
	}
	return number, nil
}

// withTotal proyecta la factura recalculando el total sobre las líneas vivas.
func (uc *InvoiceUseCase) withTotal(inv *entity.Invoice) (*dto.InvoiceResponse, error) {
	total, err := uc.itemRepo.OrderTotal(inv.OrderID)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{
		ID:        inv.ID,
		CompanyID: inv.CompanyID,
		OrderID:   inv.OrderID,
		Number:    inv.Number,
		Date:      inv.Date,
		Status:    string(inv.Status),
		Total:     total.StringFixed(2),
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}, nil
}

func validInvoiceStatus(s entity.InvoiceStatus) bool {
	switch s {
	case entity.InvoiceStatusPending, entity.InvoiceStatusPaid, entity.InvoiceStatusCancelled, entity.InvoiceStatusOverdue:
		return true
	}
	return false
}

// randomSuffix devuelve n caracteres hexadecimales aleatorios para números
// de documento autogenerados.
func randomSuffix(n int) string {
	s := strings.ReplaceAll(uuid.New().String(), "-", "")
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}
