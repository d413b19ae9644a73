package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Chajse/EduSumm/internal/models"
)

// GradeRepository handles grade persistence.
type GradeRepository struct {
	db *sqlx.DB
}

// NewGradeRepository creates a new grade repository.
func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

type gradeDetailRow struct {
	models.Grade
	StudentRefID     sql.NullString `db:"student_ref_id"`
	StudentFirstName sql.NullString `db:"student_first_name"`
	StudentLastName  sql.NullString `db:"student_last_name"`
	SubjectRefID     sql.NullString `db:"subject_ref_id"`
	SubjectCode      sql.NullString `db:"subject_code"`
	SubjectName      sql.NullString `db:"subject_name"`
}

func (row gradeDetailRow) detail() models.GradeDetail {
	detail := models.GradeDetail{Grade: row.Grade}
	if row.StudentRefID.Valid {
		detail.Student = &models.StudentRef{
			ID:        row.StudentRefID.String,
			FirstName: row.StudentFirstName.String,
			LastName:  row.StudentLastName.String,
		}
	}
	if row.SubjectRefID.Valid {
		detail.Subject = &models.SubjectRef{
			ID:          row.SubjectRefID.String,
			SubjectCode: row.SubjectCode.String,
			SubjectName: row.SubjectName.String,
		}
	}
	return detail
}

func gradeConditions(filter models.GradeFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	if filter.StudentID != "" {
		args = append(args, filter.StudentID)
		conditions = append(conditions, fmt.Sprintf("g.student_id = $%d", len(args)))
	}
	if filter.SubjectID != "" {
		args = append(args, filter.SubjectID)
		conditions = append(conditions, fmt.Sprintf("g.subject_id = $%d", len(args)))
	}
	if filter.Semester != "" {
		args = append(args, filter.Semester)
		conditions = append(conditions, fmt.Sprintf("g.semester = $%d", len(args)))
	}
	if filter.Year > 0 {
		args = append(args, filter.Year)
		conditions = append(conditions, fmt.Sprintf("g.year = $%d", len(args)))
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List returns grades in insertion order.
func (r *GradeRepository) List(ctx context.Context, filter models.GradeFilter) ([]models.Grade, error) {
	clause, args := gradeConditions(filter)
	query := `SELECT g.id, g.student_id, g.subject_id, g.midterm_grade, g.final_grade, g.semester, g.year, g.created_at
        FROM grades g` + clause + " ORDER BY g.seq"
	grades := make([]models.Grade, 0)
	if err := r.db.SelectContext(ctx, &grades, query, args...); err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	return grades, nil
}

// ListDetailed returns grades left-joined with their student and subject, in
// insertion order. Dangling references yield nil Student or Subject.
func (r *GradeRepository) ListDetailed(ctx context.Context, filter models.GradeFilter) ([]models.GradeDetail, error) {
	clause, args := gradeConditions(filter)
	query := `SELECT g.id, g.student_id, g.subject_id, g.midterm_grade, g.final_grade, g.semester, g.year, g.created_at,
        s.id AS student_ref_id, s.first_name AS student_first_name, s.last_name AS student_last_name,
        sub.id AS subject_ref_id, sub.subject_code, sub.subject_name
        FROM grades g
        LEFT JOIN students s ON s.id = g.student_id
        LEFT JOIN subjects sub ON sub.id = g.subject_id` + clause + " ORDER BY g.seq"

	var rows []gradeDetailRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list grade details: %w", err)
	}
	details := make([]models.GradeDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, row.detail())
	}
	return details, nil
}

// Create inserts a grade. CreatedAt is always set here.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	if grade.ID == "" {
		grade.ID = uuid.NewString()
	}
	grade.CreatedAt = time.Now().UTC()
	const query = `INSERT INTO grades (id, student_id, subject_id, midterm_grade, final_grade, semester, year, created_at)
        VALUES (:id, :student_id, :subject_id, :midterm_grade, :final_grade, :semester, :year, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, grade); err != nil {
		return fmt.Errorf("create grade: %w", err)
	}
	return nil
}
