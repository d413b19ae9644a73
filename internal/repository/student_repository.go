package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Chajse/EduSumm/internal/models"
)

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// CascadeResult reports how many dependent rows a cascading delete removed.
type CascadeResult struct {
	Grades      int64
	Enrollments int64
}

// List returns every student.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	const query = `SELECT id, first_name, last_name, birthdate, email, gender, course, year, block FROM students ORDER BY last_name, first_name`
	students := make([]models.Student, 0)
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	const query = `INSERT INTO students (id, first_name, last_name, birthdate, email, gender, course, year, block)
        VALUES (:id, :first_name, :last_name, :birthdate, :email, :gender, :course, :year, :block)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update replaces every column of an existing student.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	const query = `UPDATE students SET first_name = :first_name, last_name = :last_name, birthdate = :birthdate, email = :email, gender = :gender, course = :course, year = :year, block = :block WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, student)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update student rows affected: %w", err)
	}
	return rowsAffectedOrNotFound(affected)
}

// DeleteCascade removes the student together with its grades and enrollment
// history in a single transaction. sql.ErrNoRows is returned, and nothing is
// removed, when the student does not exist.
func (r *StudentRepository) DeleteCascade(ctx context.Context, id string) (result CascadeResult, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("begin student delete transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `DELETE FROM grades WHERE student_id = $1`, id)
	if err != nil {
		return result, fmt.Errorf("delete student grades: %w", err)
	}
	if result.Grades, err = res.RowsAffected(); err != nil {
		return result, fmt.Errorf("delete student grades rows affected: %w", err)
	}

	res, err = tx.ExecContext(ctx, `DELETE FROM enrollment_history WHERE student_id = $1`, id)
	if err != nil {
		return result, fmt.Errorf("delete student enrollment history: %w", err)
	}
	if result.Enrollments, err = res.RowsAffected(); err != nil {
		return result, fmt.Errorf("delete student enrollment history rows affected: %w", err)
	}

	res, err = tx.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return result, fmt.Errorf("delete student: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return result, fmt.Errorf("delete student rows affected: %w", err)
	}
	if err = rowsAffectedOrNotFound(affected); err != nil {
		return CascadeResult{}, err
	}

	if err = tx.Commit(); err != nil {
		return result, fmt.Errorf("commit student delete: %w", err)
	}
	return result, nil
}
