package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Chajse/EduSumm/internal/models"
	"github.com/Chajse/EduSumm/pkg/export"
	appErrors "github.com/Chajse/EduSumm/pkg/errors"
)

// Supported export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

var gradeExportHeaders = []string{"Student", "Subject Code", "Subject", "Semester", "Year", "Midterm", "Final", "Recorded At"}

type renderer interface {
	ContentType() string
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFile is a rendered export ready to stream to a client.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders grade listings into downloadable files.
type ExportService struct {
	grades    gradeDetailLister
	renderers map[string]renderer
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService constructs an ExportService. Nil renderers fall back to the
// default CSV and PDF exporters.
func NewExportService(grades gradeDetailLister, logger *zap.Logger, csv, pdf renderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		grades:    grades,
		renderers: map[string]renderer{ExportFormatCSV: csv, ExportFormatPDF: pdf},
		logger:    logger,
		now:       time.Now,
	}
}

// Grades renders the joined grade list in the requested format.
func (s *ExportService) Grades(ctx context.Context, format string, filter models.GradeFilter) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}
	r, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	rows, err := s.grades.ListDetailed(ctx, filter)
	if err != nil {
		s.logger.Error("load grades for export failed", zap.Error(err))
		return nil, appErrors.Internal(err, "Failed to export grades")
	}

	payload, err := r.Render(gradeDataset(rows), "Grade Report")
	if err != nil {
		s.logger.Error("render grade export failed", zap.String("format", format), zap.Error(err))
		return nil, appErrors.Internal(err, "Failed to export grades")
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("grades_%s.%s", s.now().UTC().Format("20060102_150405"), format),
		ContentType: r.ContentType(),
		Data:        payload,
	}, nil
}

func gradeDataset(rows []models.GradeDetail) export.Dataset {
	dataset := export.Dataset{Headers: gradeExportHeaders}
	for _, row := range rows {
		record := map[string]string{
			"Student":     row.Student.FullName(),
			"Semester":    row.Semester,
			"Year":        strconv.Itoa(row.Year),
			"Midterm":     formatScore(row.MidtermGrade),
			"Final":       formatScore(row.FinalGrade),
			"Recorded At": row.CreatedAt.UTC().Format(time.RFC3339),
		}
		if row.Student == nil {
			record["Student"] = row.StudentID
		}
		if row.Subject != nil {
			record["Subject Code"] = row.Subject.SubjectCode
			record["Subject"] = row.Subject.SubjectName
		} else {
			record["Subject"] = row.SubjectID
		}
		dataset.Rows = append(dataset.Rows, record)
	}
	return dataset
}

func formatScore(score *float64) string {
	if score == nil {
		return ""
	}
	return strconv.FormatFloat(*score, 'f', -1, 64)
}
