package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Chajse/EduSumm/internal/models"
)

// EnrollmentRepository handles persistence of enrollment history.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// List returns enrollment history joined with student names and subject codes.
func (r *EnrollmentRepository) List(ctx context.Context) ([]models.EnrollmentDetail, error) {
	const query = `SELECT e.id, e.student_id, e.subject_id, e.semester, e.year, e.status,
        s.first_name, s.last_name, sub.subject_code
        FROM enrollment_history e
        LEFT JOIN students s ON s.id = e.student_id
        LEFT JOIN subjects sub ON sub.id = e.subject_id
        ORDER BY e.year DESC, e.semester DESC`
	items := make([]models.EnrollmentDetail, 0)
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list enrollment history: %w", err)
	}
	for i := range items {
		items[i].StudentName = models.JoinName(items[i].FirstName, items[i].LastName)
	}
	return items, nil
}

// Create inserts an enrollment history row.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.EnrollmentHistory) error {
	if enrollment.ID == "" {
		enrollment.ID = uuid.NewString()
	}
	const query = `INSERT INTO enrollment_history (id, student_id, subject_id, semester, year, status)
        VALUES (:id, :student_id, :subject_id, :semester, :year, :status)`
	if _, err := r.db.NamedExecContext(ctx, query, enrollment); err != nil {
		return fmt.Errorf("create enrollment history: %w", err)
	}
	return nil
}

// Update replaces an enrollment history row.
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.EnrollmentHistory) error {
	const query = `UPDATE enrollment_history SET student_id = :student_id, subject_id = :subject_id, semester = :semester, year = :year, status = :status WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, enrollment)
	if err != nil {
		return fmt.Errorf("update enrollment history: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update enrollment history rows affected: %w", err)
	}
	return rowsAffectedOrNotFound(affected)
}

// Delete removes an enrollment history row.
func (r *EnrollmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM enrollment_history WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete enrollment history: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete enrollment history rows affected: %w", err)
	}
	return rowsAffectedOrNotFound(affected)
}
