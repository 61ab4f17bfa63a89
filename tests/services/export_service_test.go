package services_test

import (
	"context"
	"strings"
	"testing"

	"assettracker/src/schemas"
	"assettracker/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAssets() []schemas.AssetResponse {
	categoryName := "Laptops"
	warrantyExpiry := "2026-06-15"
	categoryID := 1
	return []schemas.AssetResponse{
		{
			ID:             1,
			Name:           "ThinkPad X1",
			CategoryID:     &categoryID,
			Department:     "IT",
			Status:         "In Use",
			PurchaseDate:   "2024-03-01",
			WarrantyExpiry: &warrantyExpiry,
			Value:          1500.5,
			UsageType:      "General",
			CategoryName:   &categoryName,
		},
		{
			ID:           2,
			Name:         "Standing Desk",
			Department:   "Office",
			Status:       "In Use",
			PurchaseDate: "2023-01-10",
			Value:        300,
			UsageType:    "Shared",
		},
	}
}

func TestGenerateCSV(t *testing.T) {
	service := services.NewExportService()

	data, err := service.GenerateCSV(context.Background(), sampleAssets())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Name,Category,Department,Status,Purchase Date,Warranty Expiry,Value,Usage Type", lines[0])
	assert.Equal(t, "1,ThinkPad X1,Laptops,IT,In Use,2024-03-01,2026-06-15,1500.5,General", lines[1])
	assert.Equal(t, "2,Standing Desk,,Office,In Use,2023-01-10,,300,Shared", lines[2])
}

func TestGenerateCSVEmpty(t *testing.T) {
	service := services.NewExportService()

	data, err := service.GenerateCSV(context.Background(), nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "ID,Name,Category")
}

func TestGenerateXLSX(t *testing.T) {
	service := services.NewExportService()

	file, err := service.GenerateXLSX(context.Background(), sampleAssets())
	require.NoError(t, err)
	defer file.Close()

	sheets := file.GetSheetList()
	require.Equal(t, []string{"Assets"}, sheets)

	rows, err := file.GetRows("Assets")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Usage Type", rows[0][8])
	assert.Equal(t, "ThinkPad X1", rows[1][1])
	assert.Equal(t, "Laptops", rows[1][2])
	assert.Equal(t, "Standing Desk", rows[2][1])
	assert.Equal(t, "300", rows[2][7])
}
