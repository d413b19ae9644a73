package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chajse/EduSumm/internal/models"
	appErrors "github.com/Chajse/EduSumm/pkg/errors"
)

type mockGradeRepo struct {
	details    []models.GradeDetail
	created    []models.Grade
	lastFilter models.GradeFilter
	err        error
	calls      int
}

func (m *mockGradeRepo) List(ctx context.Context, filter models.GradeFilter) ([]models.Grade, error) {
	m.calls++
	grades := make([]models.Grade, 0, len(m.details))
	for _, d := range m.details {
		grades = append(grades, d.Grade)
	}
	return grades, m.err
}

func (m *mockGradeRepo) ListDetailed(ctx context.Context, filter models.GradeFilter) ([]models.GradeDetail, error) {
	m.calls++
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.details, nil
}

func (m *mockGradeRepo) Create(ctx context.Context, grade *models.Grade) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	grade.ID = "g-new"
	m.created = append(m.created, *grade)
	return nil
}

func score(v float64) *float64 { return &v }

func TestGradeServiceCreateAcceptsZeroScore(t *testing.T) {
	repo := &mockGradeRepo{}
	cache := &recordingInvalidator{}
	svc := NewGradeService(repo, cache, nil, nil)

	grade, err := svc.Create(context.Background(), CreateGradeRequest{
		StudentID: "s1", SubjectID: "sub1", MidtermGrade: score(0), FinalGrade: score(75), Semester: "1st", Year: 2024,
	})
	require.NoError(t, err)
	assert.Equal(t, "g-new", grade.ID)
	require.Len(t, repo.created, 1)
	assert.Equal(t, 0.0, *repo.created[0].MidtermGrade)
	assert.Equal(t, []string{DashboardCachePattern}, cache.patterns)
}

func TestGradeServiceCreateMissingScore(t *testing.T) {
	repo := &mockGradeRepo{}
	svc := NewGradeService(repo, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateGradeRequest{
		StudentID: "s1", SubjectID: "sub1", FinalGrade: score(75), Semester: "1st", Year: 2024,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Equal(t, "Missing required fields", appErrors.FromError(err).Message)
	assert.Zero(t, repo.calls)
}

func TestGradeServiceCreateStoreFailure(t *testing.T) {
	svc := NewGradeService(&mockGradeRepo{err: errors.New("fk violation")}, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateGradeRequest{
		StudentID: "s1", SubjectID: "sub1", MidtermGrade: score(80), FinalGrade: score(75), Semester: "1st", Year: 2024,
	})
	assert.ErrorIs(t, err, appErrors.ErrInternal)
	assert.Equal(t, "Failed to submit grade", appErrors.FromError(err).Message)
}

func TestGradeServiceListPassesFilter(t *testing.T) {
	repo := &mockGradeRepo{details: []models.GradeDetail{{Grade: models.Grade{ID: "g1"}}}}
	svc := NewGradeService(repo, nil, nil, nil)

	grades, err := svc.List(context.Background(), models.GradeFilter{SubjectID: "sub1"})
	require.NoError(t, err)
	assert.Len(t, grades, 1)
	assert.Equal(t, "sub1", repo.lastFilter.SubjectID)
}
