package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/entity"
	"github.com/bizness/bizness-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos de un negocio.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. Los valores numéricos ya llegan normalizados (≥ 0) y se
// redondean a 4 decimales; fuera del rango de la columna devuelve domain.ErrInvalidInput.
func (uc *ProductUseCase) Create(ctx context.Context, businessID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		BusinessID:   businessID,
		Name:         name,
		Category:     strings.TrimSpace(in.Category),
		HPP:          in.HPP.Decimal,
		SellingPrice: in.SellingPrice.Decimal,
		Stock:        in.Stock.Decimal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := storedAmounts(&product.HPP, &product.SellingPrice, &product.Stock); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto del negocio.
func (uc *ProductUseCase) GetByID(ctx context.Context, businessID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return ToProductResponse(product), nil
}

// Update actualiza los campos enviados de un producto.
func (uc *ProductUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	if in.HPP != nil {
		product.HPP = in.HPP.Decimal
	}
	if in.SellingPrice != nil {
		product.SellingPrice = in.SellingPrice.Decimal
	}
	if in.Stock != nil {
		product.Stock = in.Stock.Decimal
	}
	if err := storedAmounts(&product.HPP, &product.SellingPrice, &product.Stock); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List lista productos del negocio con búsqueda, filtro de categoría y paginación.
func (uc *ProductUseCase) List(ctx context.Context, businessID string, in dto.ProductListRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	list, err := uc.repo.List(ctx, businessID, repository.ProductFilter{
		Query:    strings.TrimSpace(in.Query),
		Category: strings.TrimSpace(in.Category),
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// Delete elimina un producto del negocio.
func (uc *ProductUseCase) Delete(ctx context.Context, businessID, id string) error {
	return uc.repo.Delete(ctx, businessID, id)
}

// ToProductResponse mapea la entidad al DTO e incluye el margen (null si no está definido).
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		BusinessID:    p.BusinessID,
		Name:          p.Name,
		Category:      p.Category,
		HPP:           p.HPP,
		SellingPrice:  p.SellingPrice,
		Stock:         p.Stock,
		MarginPercent: optionalMargin(p.Snapshot().MarginPercent()),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func optionalMargin(m decimal.Decimal, ok bool) *decimal.Decimal {
	if !ok {
		return nil
	}
	m = m.Round(2)
	return &m
}
