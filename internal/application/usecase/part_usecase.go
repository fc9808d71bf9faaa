package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/malarguetech/taller-api/internal/application/dto"
	"github.com/malarguetech/taller-api/internal/domain"
	"github.com/malarguetech/taller-api/internal/domain/entity"
	"github.com/malarguetech/taller-api/internal/domain/repository"
)

// PartUseCase gestiona el catálogo de repuestos. El stock NO se edita por
// acá: la cantidad solo cambia a través del libro de inventario, para que
// cada cambio tenga su movimiento de auditoría.
type PartUseCase struct {
	repo    repository.PartRepository
	movRepo repository.StockMovementRepository
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(repo repository.PartRepository, movRepo repository.StockMovementRepository) *PartUseCase {
	return &PartUseCase{repo: repo, movRepo: movRepo}
}

// Create da de alta un repuesto. SKU duplicado devuelve domain.ErrDuplicate.
// La cantidad inicial se acepta acá (carga del catálogo); después solo
// movimientos.
func (uc *PartUseCase) Create(in dto.CreatePartRequest) (*dto.PartResponse, error) {
	if in.SKU == "" || in.Name == "" || in.Quantity < 0 || in.MinQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	part := &entity.Part{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		UnitPrice:   in.UnitPrice,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// GetByID busca un repuesto por ID.
func (uc *PartUseCase) GetByID(id string) (*dto.PartResponse, error) {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return toPartResponse(part), nil
}

// List lista repuestos paginados.
func (uc *PartUseCase) List(onlyActive bool, limit, offset int) ([]dto.PartResponse, error) {
	parts, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, *toPartResponse(p))
	}
	return out, nil
}

// Update modifica el catálogo (nombre, precio, umbral, activo); nunca el stock.
func (uc *PartUseCase) Update(id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		part.Name = *in.Name
	}
	if in.Description != nil {
		part.Description = *in.Description
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		part.MinQuantity = *in.MinQuantity
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		part.UnitPrice = *in.UnitPrice
	}
	if in.Active != nil {
		part.Active = *in.Active
	}
	part.UpdatedAt = time.Now()
	if err := uc.repo.Update(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// Delete elimina un repuesto. Referenciado por líneas de orden o movimientos
// devuelve domain.ErrReferenced: el historial debe seguir siendo auditable.
func (uc *PartUseCase) Delete(id string) error {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ListMovements lista los movimientos de stock de un repuesto.
func (uc *PartUseCase) ListMovements(partID string, limit, offset int) ([]dto.MovementResponse, error) {
	part, err := uc.repo.GetByID(partID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByPart(partID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// ListAllMovements lista los movimientos de stock de todo el taller.
func (uc *PartUseCase) ListAllMovements(limit, offset int) ([]dto.MovementResponse, error) {
	movements, err := uc.movRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

func toMovementResponses(movements []*entity.StockMovement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:        m.ID,
			PartID:    m.PartID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reason:    m.Reason,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	return &dto.PartResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		UnitPrice:   p.UnitPrice,
		Active:      p.Active,
		LowStock:    p.LowStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
