package repository

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chajse/EduSumm/internal/models"
)

func TestEnrollmentRepositoryListBuildsStudentName(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "student_id", "subject_id", "semester", "year", "status", "first_name", "last_name", "subject_code"}).
		AddRow("e1", "s1", "sub1", "1st", 2024, "enrolled", "Ana", "Cruz", "MATH101").
		AddRow("e2", "s9", "sub9", "1st", 2024, "dropped", nil, nil, nil)
	mock.ExpectQuery(`FROM enrollment_history e\s+LEFT JOIN students s`).WillReturnRows(rows)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Ana Cruz", items[0].StudentName)
	require.NotNil(t, items[0].SubjectCode)
	assert.Equal(t, "MATH101", *items[0].SubjectCode)
	assert.Equal(t, "", items[1].StudentName)
	assert.Nil(t, items[1].FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectExec("INSERT INTO enrollment_history").
		WithArgs(sqlmock.AnyArg(), "s1", "sub1", "1st", 2024, "enrolled").
		WillReturnResult(sqlmock.NewResult(1, 1))

	item := &models.EnrollmentHistory{StudentID: "s1", SubjectID: "sub1", Semester: "1st", Year: 2024, Status: "enrolled"}
	require.NoError(t, repo.Create(context.Background(), item))
	assert.NotEmpty(t, item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryUpdateNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectExec("UPDATE enrollment_history SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.EnrollmentHistory{ID: "missing", StudentID: "s1", SubjectID: "sub1"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectExec("DELETE FROM enrollment_history").WithArgs("e1").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "e1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
