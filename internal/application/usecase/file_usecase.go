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

// FileUseCase casos de uso del gestor de archivos (solo metadatos).
type FileUseCase struct {
	repo repository.FileRepository
}

// NewFileUseCase construye el caso de uso.
func NewFileUseCase(repo repository.FileRepository) *FileUseCase {
	return &FileUseCase{repo: repo}
}

// Create registra un archivo o carpeta. El padre, si se indica, debe ser una carpeta del mismo negocio.
func (uc *FileUseCase) Create(ctx context.Context, businessID string, in dto.CreateFileRequest) (*dto.FileResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Size < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkFolder(ctx, businessID, in.ParentID); err != nil {
		return nil, err
	}
	f := &entity.FileItem{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		ParentID:   in.ParentID,
		Name:       name,
		Type:       strings.TrimSpace(in.Type),
		Size:       in.Size,
		IsFolder:   in.IsFolder,
		CreatedAt:  time.Now(),
	}
	if f.IsFolder {
		f.Type = entity.FolderType
		f.Size = 0
	} else if f.Type == "" {
		f.Type = "application/octet-stream"
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return toFileResponse(f), nil
}

// List lista el contenido de una carpeta; parentID nil = raíz.
func (uc *FileUseCase) List(ctx context.Context, businessID string, parentID *string) ([]dto.FileResponse, error) {
	if err := uc.checkFolder(ctx, businessID, parentID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListChildren(ctx, businessID, parentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FileResponse, 0, len(list))
	for _, f := range list {
		out = append(out, *toFileResponse(f))
	}
	return out, nil
}

// Delete elimina el elemento y, si es carpeta, todo su contenido.
func (uc *FileUseCase) Delete(ctx context.Context, businessID, id string) (*dto.DeletedResponse, error) {
	n, err := uc.repo.DeleteTree(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	return &dto.DeletedResponse{Deleted: n}, nil
}

func (uc *FileUseCase) checkFolder(ctx context.Context, businessID string, folderID *string) error {
	if folderID == nil {
		return nil
	}
	parent, err := uc.repo.GetByID(ctx, businessID, *folderID)
	if err != nil {
		return err
	}
	if parent == nil {
		return domain.ErrNotFound
	}
	if !parent.IsFolder {
		return domain.ErrInvalidInput
	}
	return nil
}

func toFileResponse(f *entity.FileItem) *dto.FileResponse {
	return &dto.FileResponse{
		ID:         f.ID,
		BusinessID: f.BusinessID,
		ParentID:   f.ParentID,
		Name:       f.Name,
		Type:       f.Type,
		Size:       f.Size,
		IsFolder:   f.IsFolder,
		CreatedAt:  f.CreatedAt,
	}
}
