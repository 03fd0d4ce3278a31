package usecase

import (
	"context"

	"github.com/bizness/bizness-api/internal/application/auth"
	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para la administración de usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios con la cantidad de negocios de cada uno.
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.AdminUserListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListWithStats(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdminUserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.AdminUserResponse{
			UserResponse:  *auth.ToUserResponse(&u.User),
			BusinessCount: u.BusinessCount,
		})
	}
	return &dto.AdminUserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateStatus suspende o reactiva una cuenta. Un administrador no puede cambiar su propio estado.
func (uc *UserUseCase) UpdateStatus(ctx context.Context, actorID, userID string, in dto.UpdateUserStatusRequest) (*dto.UserResponse, error) {
	if actorID == userID {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.UpdateStatus(ctx, userID, in.Status); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}
