package services

import (
	"bytes"
	"fmt"

	"github.com/cataleon/cataleon/app/models"
	"github.com/xuri/excelize/v2"
)

type templateColumn struct {
	Header   string
	Required bool
	Sample   string
}

var jewelleryColumns = []templateColumn{
	{"Name", true, "Classic Gold Ring 1"},
	{"SKU", false, "RING-001"},
	{"Metal Type", true, "gold"},
	{"Gross Weight (g)", true, "5.250"},
	{"Net Weight (g)", false, "4.800"},
	{"Purity (karat)", true, "22"},
	{"Diamond Weight (ct)", false, "0.50"},
	{"Diamond Value", false, "15000"},
	{"Diamond Color", false, "D"},
	{"Diamond Clarity", false, "VS1"},
	{"Making Charge", true, "2500"},
	{"Certification Cost", false, "500"},
	{"Gemstone Cost", false, "0"},
	{"Stock", true, "1"},
	{"Description", false, "Handcrafted 22K ring"},
}

var looseDiamondColumns = []templateColumn{
	{"Name", true, "Round Brilliant 1.01ct"},
	{"SKU", false, "DIA-001"},
	{"Diamond Weight (ct)", true, "1.01"},
	{"Diamond Color", true, "E"},
	{"Diamond Clarity", true, "VVS2"},
	{"Diamond Value", true, "350000"},
	{"Certification Cost", false, "2000"},
	{"Stock", true, "1"},
	{"Description", false, "GIA certified, excellent cut"},
}

var gemstoneColumns = []templateColumn{
	{"Name", true, "Ceylon Blue Sapphire"},
	{"SKU", false, "GEM-001"},
	{"Gemstone", true, "Sapphire"},
	{"Gemstone Cost", true, "45000"},
	{"Certification Cost", false, "1000"},
	{"Stock", true, "1"},
	{"Description", false, "Natural, heat treated"},
}

func columnsFor(productType models.ProductType) ([]templateColumn, error) {
	switch productType {
	case models.TypeJewellery:
		return jewelleryColumns, nil
	case models.TypeLooseDiamonds:
		return looseDiamondColumns, nil
	case models.TypeGemstones:
		return gemstoneColumns, nil
	}
	return nil, fmt.Errorf("%w: unknown product type %q", ErrInvalidInput, productType)
}

// GenerateImportTemplate builds the downloadable XLSX import template for one
// product type: an Instructions sheet enumerating required vs optional
// columns and a Sample Data sheet with the headers plus one example row.
func GenerateImportTemplate(productType models.ProductType) ([]byte, error) {
	columns, err := columnsFor(productType)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const instructions = "Instructions"
	const sample = "Sample Data"

	if err := f.SetSheetName("Sheet1", instructions); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sample); err != nil {
		return nil, err
	}

	f.SetCellValue(instructions, "A1", fmt.Sprintf("%s import template", productType))
	f.SetCellValue(instructions, "A3", "Column")
	f.SetCellValue(instructions, "B3", "Required")
	for i, col := range columns {
		row := 4 + i
		f.SetCellValue(instructions, fmt.Sprintf("A%d", row), col.Header)
		required := "Optional"
		if col.Required {
			required = "Required"
		}
		f.SetCellValue(instructions, fmt.Sprintf("B%d", row), required)
	}
	f.SetCellValue(instructions, fmt.Sprintf("A%d", 5+len(columns)),
		"Fill the Sample Data sheet with one row per product, keeping the header row intact.")

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sample, cell, col.Header)
		cell, _ = excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sample, cell, col.Sample)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write template workbook: %w", err)
	}
	return buf.Bytes(), nil
}
