package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/cataleon/cataleon/app/models"
	"github.com/cataleon/cataleon/app/utils/format"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// CatalogPDFConfig carries the header context for a catalog export.
type CatalogPDFConfig struct {
	Profile      *models.VendorProfile
	GoldRate     decimal.Decimal
	USDToINRRate decimal.Decimal
}

// GenerateCatalogPDF renders a landscape catalog document: vendor identity
// header, the current gold and exchange rates, and one table row per product
// carrying the same fields the valuation rule consumes.
func GenerateCatalogPDF(cfg CatalogPDFConfig, products []models.Product) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, cfg.Profile.BusinessName, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	sub := fmt.Sprintf("%s, %s", cfg.Profile.Address, cfg.Profile.City)
	if cfg.Profile.GSTNumber != "" {
		sub += "  |  GST: " + cfg.Profile.GSTNumber
	}
	pdf.CellFormat(0, 5, sub, "", 1, "C", false, 0, "")

	rateLine := fmt.Sprintf("Gold rate: %s/g  |  1 USD = INR %s  |  Generated: %s",
		format.INR(cfg.GoldRate), cfg.USDToINRRate.StringFixed(2), time.Now().Format("02 Jan 2006 15:04"))
	pdf.CellFormat(0, 5, rateLine, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Name", "SKU", "Type", "Metal", "Gross g", "Net g", "Purity", "Dia ct", "Dia value", "Making", "Cert", "Gemstone", "Retail"}
	widths := []float64{48, 22, 24, 18, 16, 16, 14, 14, 22, 20, 18, 22, 23}

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for i := range products {
		p := &products[i]
		purity := NormalizePurity(p.Purity, p.PurityUnit)
		cells := []string{
			truncate(p.Name, 34),
			p.Sku,
			string(p.ProductType),
			p.MetalType,
			p.GrossWeight.StringFixed(2),
			p.NetWeight.StringFixed(2),
			purity.StringFixed(3),
			p.DiamondWeight.StringFixed(2),
			format.INR(p.DiamondValue),
			format.INR(p.MakingCharge),
			format.INR(p.CertificationCost),
			format.INR(p.GemstoneCost),
			format.INR(p.RetailPrice),
		}
		for j, c := range cells {
			align := "L"
			if j >= 4 {
				align = "R"
			}
			pdf.CellFormat(widths[j], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render catalog PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateInvoicePDF renders an invoice or manufacturing estimate.
func GenerateInvoicePDF(profile *models.VendorProfile, invoice *models.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	title := "INVOICE"
	if invoice.Kind == models.KindEstimate {
		title = "MANUFACTURING ESTIMATE"
	}

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, profile.BusinessName, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("%s, %s", profile.Address, profile.City), "", 1, "L", false, 0, "")
	if profile.GSTNumber != "" {
		pdf.CellFormat(0, 5, "GST: "+profile.GSTNumber, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	meta := fmt.Sprintf("Date: %s", invoice.CreatedAt.Format("02 Jan 2006"))
	if invoice.Number != "" {
		meta = fmt.Sprintf("No: %s  |  %s", invoice.Number, meta)
	}
	pdf.CellFormat(0, 5, meta, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "Billed to: "+invoice.CustomerName, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Description", "Qty", "Unit price", "Line total"}
	widths := []float64{100, 15, 32, 33}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, item := range invoice.Items {
		pdf.CellFormat(widths[0], 6, truncate(item.Description, 60), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, format.INR(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, format.INR(item.LineTotal), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(widths[0]+widths[1], 6, "", "", 0, "", false, 0, "")
	pdf.CellFormat(widths[2], 6, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 6, format.INR(invoice.Subtotal), "1", 1, "R", false, 0, "")
	if invoice.TaxPercent.IsPositive() {
		pdf.CellFormat(widths[0]+widths[1], 6, "", "", 0, "", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("Tax (%s%%)", invoice.TaxPercent.StringFixed(1)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, format.INR(invoice.TaxAmount), "1", 1, "R", false, 0, "")
	}
	pdf.CellFormat(widths[0]+widths[1], 7, "", "", 0, "", false, 0, "")
	pdf.CellFormat(widths[2], 7, "Grand total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 7, format.INR(invoice.GrandTotal), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
