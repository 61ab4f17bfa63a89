package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"assettracker/src/schemas"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{
	"ID", "Name", "Category", "Department", "Status",
	"Purchase Date", "Warranty Expiry", "Value", "Usage Type",
}

type ExportServiceI interface {
	GenerateXLSX(ctx context.Context, assets []schemas.AssetResponse) (*excelize.File, error)
	GenerateCSV(ctx context.Context, assets []schemas.AssetResponse) ([]byte, error)
}

// ExportService renders the joined asset inventory as downloadable files.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func assetExportRow(asset *schemas.AssetResponse) []string {
	categoryName := ""
	if asset.CategoryName != nil {
		categoryName = *asset.CategoryName
	}
	warrantyExpiry := ""
	if asset.WarrantyExpiry != nil {
		warrantyExpiry = *asset.WarrantyExpiry
	}
	return []string{
		strconv.Itoa(asset.ID),
		asset.Name,
		categoryName,
		asset.Department,
		asset.Status,
		asset.PurchaseDate,
		warrantyExpiry,
		strconv.FormatFloat(asset.Value, 'f', -1, 64),
		asset.UsageType,
	}
}

func (s *ExportService) GenerateXLSX(ctx context.Context, assets []schemas.AssetResponse) (*excelize.File, error) {
	file := excelize.NewFile()
	const sheet = "Assets"

	index, err := file.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for rowIdx := range assets {
		row := assetExportRow(&assets[rowIdx])
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return file, nil
}

func (s *ExportService) GenerateCSV(ctx context.Context, assets []schemas.AssetResponse) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, err
	}
	for i := range assets {
		if err := writer.Write(assetExportRow(&assets[i])); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}
