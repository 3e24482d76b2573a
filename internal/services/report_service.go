package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/domains"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/repositories"
)

// Report sheet names
const (
	SheetProgress     = "Progress"
	SheetTests        = "Tests"
	SheetAchievements = "Achievements"
)

type reportService struct {
	store    *sessionStore
	registry *domains.Registry
	datasets *domains.DatasetProvider
	logger   *slog.Logger
}

func NewReportService(repo repositories.SessionRepository, registry *domains.Registry, datasets *domains.DatasetProvider, logger *slog.Logger) ReportService {
	return &reportService{
		store:    &sessionStore{repo: repo, logger: logger},
		registry: registry,
		datasets: datasets,
		logger:   logger,
	}
}

// ExportProgress renders the session's domain progress as an XLSX workbook
func (s *reportService) ExportProgress(ctx context.Context, sessionID string) ([]byte, error) {
	session, err := s.store.loadOnboarded(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	domainID := session.User.DomainID()
	cfg := s.registry.Lookup(domainID)
	data := s.datasets.Dataset(domainID)
	t := cfg.Terminology

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("Failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetProgress); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	progress := [][]interface{}{
		{"Learner", session.User.Name},
		{"Domain", cfg.Name},
		{"Coins", session.Dashboard.Coins},
		{"Streak", session.Dashboard.Streak},
		{},
		{t.Topic, "Progress (%)"},
	}
	for _, p := range data.ProgressTopics {
		progress = append(progress, []interface{}{p.Name, p.Progress})
	}
	if err := writeRows(f, SheetProgress, progress); err != nil {
		return nil, err
	}

	tests := [][]interface{}{{t.Test, "Questions", "Duration", "Attempted", "Score"}}
	for _, tst := range data.Tests {
		tests = append(tests, []interface{}{tst.Title, tst.Questions, tst.Duration, tst.Attempted, tst.Score})
	}
	if err := writeSheet(f, SheetTests, tests); err != nil {
		return nil, err
	}

	achievements := [][]interface{}{{"Achievement", "Description", "Unlocked", "Progress (%)"}}
	for _, a := range data.Achievements {
		achievements = append(achievements, []interface{}{a.Title, a.Description, a.Unlocked, a.Progress})
	}
	if err := writeSheet(f, SheetAchievements, achievements); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Info("Progress report exported", "session_id", sessionID, "domain", cfg.ID, "bytes", buf.Len())
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
