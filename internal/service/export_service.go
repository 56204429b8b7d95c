package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/edupanel/edu-admin-api/internal/models"
	appErrors "github.com/edupanel/edu-admin-api/pkg/errors"
	"github.com/edupanel/edu-admin-api/pkg/export"
)

type exportStudentLister interface {
	List(ctx context.Context) ([]models.Student, error)
}

// ExportResult is a rendered roster document.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders the joined student roster as CSV or PDF.
type ExportService struct {
	students exportStudentLister
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportService creates an export service.
func NewExportService(students exportStudentLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		students: students,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// Render produces the roster in the requested format ("csv" or "pdf").
func (s *ExportService) Render(ctx context.Context, format string) (*ExportResult, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	dataset := rosterDataset(students)

	switch strings.ToLower(format) {
	case "csv", "":
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{Filename: "students.csv", ContentType: "text/csv", Data: data}, nil
	case "pdf":
		data, err := s.pdf.Render(dataset, "Student Roster")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{Filename: "students.pdf", ContentType: "application/pdf", Data: data}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}

func rosterDataset(students []models.Student) export.Dataset {
	headers := []string{"Name", "Email", "Course", "Marks"}
	rows := make([]map[string]string, 0, len(students))
	for _, student := range students {
		courseName := "-"
		if student.Course != nil {
			courseName = student.Course.CourseName
		}
		parts := make([]string, 0, len(student.Marks))
		for _, mark := range student.Marks {
			parts = append(parts, fmt.Sprintf("%s: %d", mark.Subject, mark.Score))
		}
		rows = append(rows, map[string]string{
			"Name":   student.Name,
			"Email":  student.Email,
			"Course": courseName,
			"Marks":  strings.Join(parts, "; "),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
