package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/malarguetech/taller-api/internal/application/dto"
	"github.com/malarguetech/taller-api/internal/domain"
	"github.com/malarguetech/taller-api/internal/domain/entity"
	"github.com/malarguetech/taller-api/internal/domain/repository"
)

// DeviceUseCase gestiona los equipos ingresados al taller.
type DeviceUseCase struct {
	repo         repository.DeviceRepository
	customerRepo repository.CustomerRepository
}

// NewDeviceUseCase construye el caso de uso.
func NewDeviceUseCase(repo repository.DeviceRepository, customerRepo repository.CustomerRepository) *DeviceUseCase {
	return &DeviceUseCase{repo: repo, customerRepo: customerRepo}
}

// Create registra un equipo para un cliente existente.
func (uc *DeviceUseCase) Create(in dto.CreateDeviceRequest) (*dto.DeviceResponse, error) {
	if in.CustomerID == "" || in.Brand == "" || in.Model == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	devType := in.Type
	if devType == "" {
		devType = "Notebook"
	}
	device := &entity.Device{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		Type:         devType,
		Brand:        in.Brand,
		Model:        in.Model,
		SerialNumber: in.SerialNumber,
		IntakeNotes:  in.IntakeNotes,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(device); err != nil {
		return nil, err
	}
	return toDeviceResponse(device), nil
}

// GetByID busca un equipo por ID.
func (uc *DeviceUseCase) GetByID(id string) (*dto.DeviceResponse, error) {
	device, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, domain.ErrNotFound
	}
	return toDeviceResponse(device), nil
}

// List lista equipos paginados; con customerID filtra por cliente.
func (uc *DeviceUseCase) List(customerID string, limit, offset int) ([]dto.DeviceResponse, error) {
	var devices []*entity.Device
	var err error
	if customerID != "" {
		devices, err = uc.repo.ListByCustomer(customerID)
	} else {
		devices, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.DeviceResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, *toDeviceResponse(d))
	}
	return out, nil
}

// Update modifica un equipo.
func (uc *DeviceUseCase) Update(id string, in dto.UpdateDeviceRequest) (*dto.DeviceResponse, error) {
	device, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, domain.ErrNotFound
	}
	if in.Type != nil {
		device.Type = *in.Type
	}
	if in.Brand != nil {
		device.Brand = *in.Brand
	}
	if in.Model != nil {
		device.Model = *in.Model
	}
	if in.SerialNumber != nil {
		device.SerialNumber = *in.SerialNumber
	}
	if in.IntakeNotes != nil {
		device.IntakeNotes = *in.IntakeNotes
	}
	if err := uc.repo.Update(device); err != nil {
		return nil, err
	}
	return toDeviceResponse(device), nil
}

// Delete elimina un equipo; con órdenes asociadas devuelve domain.ErrReferenced.
func (uc *DeviceUseCase) Delete(id string) error {
	device, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if device == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toDeviceResponse(d *entity.Device) *dto.DeviceResponse {
	return &dto.DeviceResponse{
		ID:           d.ID,
		CustomerID:   d.CustomerID,
		Type:         d.Type,
		Brand:        d.Brand,
		Model:        d.Model,
		SerialNumber: d.SerialNumber,
		IntakeNotes:  d.IntakeNotes,
		CreatedAt:    d.CreatedAt,
	}
}
