package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReport_ExportProgress(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.onboard(t, "jee")

	raw, err := f.report.ExportProgress(ctx, session.ID)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	wb, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{SheetProgress, SheetTests, SheetAchievements}, wb.GetSheetList())

	learner, err := wb.GetCellValue(SheetProgress, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", learner)

	domainName, err := wb.GetCellValue(SheetProgress, "B2")
	require.NoError(t, err)
	assert.Equal(t, "JEE Preparation", domainName)

	header, err := wb.GetCellValue(SheetTests, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Mock Test", header)

	rows, err := wb.GetRows(SheetTests)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.Equal(t, "JEE Main Full Mock 1", rows[1][0])
}

func TestReport_RequiresDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session, err := f.onboarding.Start(ctx)
	require.NoError(t, err)

	_, err = f.report.ExportProgress(ctx, session.ID)
	assert.ErrorIs(t, err, ErrNotOnboarded)
}
