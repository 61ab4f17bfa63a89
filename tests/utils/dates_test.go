package utils_test

import (
	"testing"
	"time"

	"assettracker/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatShortDate(t *testing.T) {
	date := time.Date(2024, time.March, 1, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-01", utils.FormatShortDate(date))
}

func TestFormatShortDatePtr(t *testing.T) {
	assert.Nil(t, utils.FormatShortDatePtr(nil))

	date := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	formatted := utils.FormatShortDatePtr(&date)
	require.NotNil(t, formatted)
	assert.Equal(t, "2026-06-15", *formatted)
}

func TestToday(t *testing.T) {
	assert.Equal(t, time.Now().Format(utils.ShortDashDateLayout), utils.Today())
}
