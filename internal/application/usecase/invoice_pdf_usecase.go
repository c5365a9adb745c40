package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/access"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
)

// InvoiceLineForPDF línea enriquecida para la representación impresa.
type InvoiceLineForPDF struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// InvoicePDFGenerator puerto de generación del PDF de factura. Lo implementa
// la infraestructura (Maroto).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		company *entity.Company,
		customer *entity.Customer,
		lines []InvoiceLineForPDF,
		total decimal.Decimal,
	) ([]byte, error)
}

// InvoicePDFUseCase genera la representación impresa de una factura.
type InvoicePDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	orderRepo    repository.OrderRepository
	itemRepo     repository.OrderItemRepository
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    InvoicePDFGenerator
}

// NewInvoicePDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewInvoicePDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderItemRepository,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator InvoicePDFGenerator,
) *InvoicePDFUseCase {
	return &InvoicePDFUseCase{
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// DownloadInvoicePDF recupera factura, empresa, cliente y líneas de la orden
// y genera el PDF. El total se recalcula desde las líneas vivas, igual que en
// la API JSON.
func (uc *InvoicePDFUseCase) DownloadInvoicePDF(ctx context.Context, companyID, invoiceID string) (pdfBytes []byte, filename string, err error) {
	invoice, err := access.ResolveWithAccess(func() (*entity.Invoice, error) {
		return uc.invoiceRepo.GetByID(invoiceID)
	}, companyID, "Invoice")
	if err != nil {
		return nil, "", err
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}

	order, err := uc.orderRepo.GetByID(invoice.OrderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden: %w", err)
	}
	if order == nil {
		return nil, "", domain.NotFound("Order not found")
	}
	customer, err := uc.customerRepo.GetByID(order.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", domain.NotFound("Customer not found")
	}

	items, err := uc.itemRepo.ListByOrder(order.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}

	lines := make([]InvoiceLineForPDF, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		name := "Producto " + it.ProductID // fallback
		if product, pErr := uc.productRepo.GetByID(it.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		subtotal := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(subtotal)
		lines = append(lines, InvoiceLineForPDF{
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.Price,
			Subtotal:    subtotal,
		})
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, invoice, company, customer, lines, total)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("invoice_%s.pdf", invoice.Number)
	return pdfBytes, filename, nil
}
