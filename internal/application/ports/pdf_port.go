package ports

import "github.com/bizness/bizness-api/internal/application/dto"

// ReportPDFGenerator genera los reportes PDF descargables.
type ReportPDFGenerator interface {
	// HPPReport genera "Laporan HPP & Rekomendasi Harga" a partir de un cálculo.
	HPPReport(calc *dto.HPPCalculationResponse) ([]byte, error)

	// InventoryReport genera el reporte de inventario de un negocio.
	InventoryReport(data *dto.InventoryReportData) ([]byte, error)
}
