package taller

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/malarguetech/taller-api/internal/domain"
	"github.com/malarguetech/taller-api/internal/domain/entity"
	"github.com/malarguetech/taller-api/internal/domain/repository"
	"github.com/malarguetech/taller-api/pkg/slug"
)

// ReceiptLine es una línea de repuesto resuelta para el comprobante.
type ReceiptLine struct {
	PartName  string
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// ReceiptData es todo lo que necesita el generador para armar el comprobante
// de ingreso de una orden.
type ReceiptData struct {
	Order       *entity.RepairOrder
	Customer    *entity.Customer
	Device      *entity.Device
	Lines       []ReceiptLine
	TrackingURL string
}

// ReceiptGenerator define la frontera de generación del comprobante en PDF.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, data *ReceiptData) ([]byte, error)
}

// QRGenerator define la frontera de generación de códigos QR (PNG).
type QRGenerator interface {
	GeneratePNG(content string, size int) ([]byte, error)
}

// ReceiptUseCase produce los artefactos entregables de una orden: el
// comprobante de ingreso en PDF y el QR con la URL de seguimiento.
type ReceiptUseCase struct {
	orderRepo    repository.OrderRepository
	itemRepo     repository.OrderPartRepository
	partRepo     repository.PartRepository
	deviceRepo   repository.DeviceRepository
	customerRepo repository.CustomerRepository
	generator    ReceiptGenerator
	qr           QRGenerator
	site         SiteURLs
}

// NewReceiptUseCase construye el caso de uso de comprobantes.
func NewReceiptUseCase(
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderPartRepository,
	partRepo repository.PartRepository,
	deviceRepo repository.DeviceRepository,
	customerRepo repository.CustomerRepository,
	generator ReceiptGenerator,
	qr QRGenerator,
	site SiteURLs,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		partRepo:     partRepo,
		deviceRepo:   deviceRepo,
		customerRepo: customerRepo,
		generator:    generator,
		qr:           qr,
		site:         site,
	}
}

// ReceiptPDF genera el comprobante de ingreso de la orden y un nombre de
// archivo sugerido (derivado del nombre del cliente, sin acentos).
func (uc *ReceiptUseCase) ReceiptPDF(ctx context.Context, orderID string) ([]byte, string, error) {
	data, err := uc.buildData(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateReceipt(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("generar comprobante: %w", err)
	}
	filename := fmt.Sprintf("comprobante-%s.pdf", slug.Make(data.Customer.Name))
	return pdf, filename, nil
}

// TrackingQR genera el PNG del QR con la URL pública de seguimiento.
func (uc *ReceiptUseCase) TrackingQR(ctx context.Context, orderID string, size int) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	png, err := uc.qr.GeneratePNG(uc.site.TrackingURL(order.TrackingToken), size)
	if err != nil {
		return nil, fmt.Errorf("generar qr: %w", err)
	}
	return png, nil
}

func (uc *ReceiptUseCase) buildData(ctx context.Context, orderID string) (*ReceiptData, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	device, err := uc.deviceRepo.GetByID(order.DeviceID)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(device.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	items, err := uc.itemRepo.ListByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	lines := make([]ReceiptLine, 0, len(items))
	for _, item := range items {
		name := item.PartID
		if part, err := uc.partRepo.GetByID(item.PartID); err == nil && part != nil {
			name = part.Name
		}
		lines = append(lines, ReceiptLine{
			PartName:  name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		})
	}

	return &ReceiptData{
		Order:       order,
		Customer:    customer,
		Device:      device,
		Lines:       lines,
		TrackingURL: uc.site.TrackingURL(order.TrackingToken),
	}, nil
}
