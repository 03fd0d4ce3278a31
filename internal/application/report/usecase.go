// Package report genera las exportaciones descargables del negocio (CSV y PDF).
package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/bizness/bizness-api/internal/application/analytics"
	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/ports"
	"github.com/bizness/bizness-api/internal/application/usecase"
	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/entity"
	"github.com/bizness/bizness-api/internal/domain/pricing"
	"github.com/bizness/bizness-api/internal/domain/repository"
)

// Export archivo generado listo para descargar.
type Export struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReportUseCase exporta productos a CSV y el inventario a PDF.
type ReportUseCase struct {
	businesses repository.BusinessRepository
	products   repository.ProductRepository
	overview   *analytics.OverviewUseCase
	pdf        ports.ReportPDFGenerator
	now        func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	businesses repository.BusinessRepository,
	products repository.ProductRepository,
	overview *analytics.OverviewUseCase,
	pdf ports.ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		businesses: businesses,
		products:   products,
		overview:   overview,
		pdf:        pdf,
		now:        time.Now,
	}
}

// ProductsCSV exporta todos los productos: BOM UTF-8, encabezado y una fila por producto.
// Nombre de archivo: Products_Inventory_<YYYY-MM-DD>.csv.
func (uc *ReportUseCase) ProductsCSV(ctx context.Context, businessID string) (*Export, error) {
	list, err := uc.products.List(ctx, businessID, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pricing.WriteProductsCsv(&buf, entity.ProductSnapshots(list)); err != nil {
		return nil, fmt.Errorf("report: csv: %w", err)
	}
	return &Export{
		Filename:    fmt.Sprintf("Products_Inventory_%s.csv", uc.now().Format("2006-01-02")),
		ContentType: "text/csv; charset=utf-8",
		Content:     buf.Bytes(),
	}, nil
}

// InventoryPDF genera el reporte PDF de inventario con las métricas del resumen y la tabla de productos.
func (uc *ReportUseCase) InventoryPDF(ctx context.Context, businessID string) (*Export, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("report: generador PDF no configurado")
	}
	b, err := uc.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	overview, err := uc.overview.GetOverview(ctx, businessID)
	if err != nil {
		return nil, err
	}
	list, err := uc.products.List(ctx, businessID, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	products := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		products = append(products, *usecase.ToProductResponse(p))
	}
	now := uc.now()
	doc, err := uc.pdf.InventoryReport(&dto.InventoryReportData{
		BusinessName: b.Name,
		Overview:     *overview,
		Products:     products,
		GeneratedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("report: pdf: %w", err)
	}
	return &Export{
		Filename:    fmt.Sprintf("Inventory_Report_%s.pdf", now.Format("2006-01-02")),
		ContentType: "application/pdf",
		Content:     doc,
	}, nil
}
