package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/entity"
	"github.com/bizness/bizness-api/internal/domain/repository"
)

// BusinessUseCase casos de uso de los espacios de trabajo (negocios) de un usuario.
type BusinessUseCase struct {
	repo repository.BusinessRepository
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository) *BusinessUseCase {
	return &BusinessUseCase{repo: repo}
}

// Authorize verifica que el usuario pueda operar sobre el negocio: debe ser su dueño o administrador.
func (uc *BusinessUseCase) Authorize(ctx context.Context, userID, role, businessID string) (*entity.Business, error) {
	b, err := uc.repo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if role != entity.RoleAdmin && !b.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return b, nil
}

// Create crea un negocio para el usuario.
func (uc *BusinessUseCase) Create(ctx context.Context, ownerID string, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	now := time.Now()
	b := &entity.Business{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(in.Name),
		Category:  strings.TrimSpace(in.Category),
		Logo:      in.Logo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if b.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toBusinessResponse(b), nil
}

// GetByID obtiene un negocio por ID.
func (uc *BusinessUseCase) GetByID(ctx context.Context, id string) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return toBusinessResponse(b), nil
}

// ListByOwner lista los negocios del usuario, más recientes primero.
func (uc *BusinessUseCase) ListByOwner(ctx context.Context, ownerID string) ([]dto.BusinessResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BusinessResponse, 0, len(list))
	for _, b := range list {
		out = append(out, *toBusinessResponse(b))
	}
	return out, nil
}

// Update actualiza nombre, categoría o logo.
func (uc *BusinessUseCase) Update(ctx context.Context, id string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		b.Name = name
	}
	if in.Category != nil {
		b.Category = strings.TrimSpace(*in.Category)
	}
	if in.Logo != nil {
		b.Logo = *in.Logo
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return toBusinessResponse(b), nil
}

// Delete elimina el negocio y, en cascada, todos sus datos.
func (uc *BusinessUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	return &dto.BusinessResponse{
		ID:        b.ID,
		OwnerID:   b.OwnerID,
		Name:      b.Name,
		Category:  b.Category,
		Logo:      b.Logo,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
