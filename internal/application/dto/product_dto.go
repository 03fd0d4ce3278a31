package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Los campos numéricos aceptan número o texto.
type CreateProductRequest struct {
	Name         string     `json:"name" validate:"required,min=1,max=200"`
	Category     string     `json:"category" validate:"omitempty,max=100"`
	HPP          FlexNumber `json:"hpp"`
	SellingPrice FlexNumber `json:"selling_price"`
	Stock        FlexNumber `json:"stock"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name         *string     `json:"name" validate:"omitempty,min=1,max=200"`
	Category     *string     `json:"category" validate:"omitempty,max=100"`
	HPP          *FlexNumber `json:"hpp"`
	SellingPrice *FlexNumber `json:"selling_price"`
	Stock        *FlexNumber `json:"stock"`
}

// ProductListRequest filtros del listado de productos.
type ProductListRequest struct {
	Query    string `query:"q"`
	Category string `query:"category"`
	PageRequest
}

// ProductResponse salida de un producto. MarginPercent es null si el precio de venta es 0.
type ProductResponse struct {
	ID            string           `json:"id"`
	BusinessID    string           `json:"business_id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	HPP           decimal.Decimal  `json:"hpp"`
	SellingPrice  decimal.Decimal  `json:"selling_price"`
	Stock         decimal.Decimal  `json:"stock"`
	MarginPercent *decimal.Decimal `json:"margin_percent"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
