package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chajse/EduSumm/internal/models"
	"github.com/Chajse/EduSumm/internal/repository"
	appErrors "github.com/Chajse/EduSumm/pkg/errors"
)

type mockSubjectRepo struct {
	subjects  map[string]models.Subject
	deleteErr error
	calls     int
}

func (m *mockSubjectRepo) List(ctx context.Context) ([]models.Subject, error) {
	out := make([]models.Subject, 0, len(m.subjects))
	for _, s := range m.subjects {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockSubjectRepo) Create(ctx context.Context, subject *models.Subject) error {
	m.calls++
	subject.ID = "sub-new"
	return nil
}

func (m *mockSubjectRepo) Update(ctx context.Context, subject *models.Subject) error {
	m.calls++
	if _, ok := m.subjects[subject.ID]; !ok {
		return sql.ErrNoRows
	}
	m.subjects[subject.ID] = *subject
	return nil
}

func (m *mockSubjectRepo) Delete(ctx context.Context, id string) error {
	m.calls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.subjects[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.subjects, id)
	return nil
}

func TestSubjectServiceCreateRequiresCodeAndName(t *testing.T) {
	repo := &mockSubjectRepo{}
	svc := NewSubjectService(repo, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateSubjectRequest{SubjectCode: "MATH101"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Zero(t, repo.calls)

	subject, err := svc.Create(context.Background(), CreateSubjectRequest{SubjectCode: "MATH101", SubjectName: "Algebra", Credits: 3})
	require.NoError(t, err)
	assert.Equal(t, "sub-new", subject.ID)
}

func TestSubjectServiceDeleteWithRelatedRecords(t *testing.T) {
	repo := &mockSubjectRepo{deleteErr: repository.ErrHasRelatedRecords}
	cache := &recordingInvalidator{}
	svc := NewSubjectService(repo, cache, nil, nil)

	err := svc.Delete(context.Background(), DeleteRequest{ID: "sub1"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrHasRelatedRecords.Code, appErr.Code)
	assert.Equal(t, 400, appErr.Status)
	assert.Empty(t, cache.patterns)
}

func TestSubjectServiceDeleteGenericFailure(t *testing.T) {
	svc := NewSubjectService(&mockSubjectRepo{deleteErr: errors.New("timeout")}, nil, nil, nil)

	err := svc.Delete(context.Background(), DeleteRequest{ID: "sub1"})
	assert.ErrorIs(t, err, appErrors.ErrInternal)
	assert.Equal(t, "Failed to delete subject", appErrors.FromError(err).Message)
}

func TestSubjectServiceUpdateAndDelete(t *testing.T) {
	repo := &mockSubjectRepo{subjects: map[string]models.Subject{"sub1": {ID: "sub1", SubjectCode: "MATH101", SubjectName: "Algebra"}}}
	cache := &recordingInvalidator{}
	svc := NewSubjectService(repo, cache, nil, nil)

	_, err := svc.Update(context.Background(), UpdateSubjectRequest{ID: "sub1", SubjectCode: "MATH101", SubjectName: "Linear Algebra"})
	require.NoError(t, err)
	assert.Equal(t, "Linear Algebra", repo.subjects["sub1"].SubjectName)

	_, err = svc.Update(context.Background(), UpdateSubjectRequest{ID: "nope", SubjectCode: "X", SubjectName: "Y"})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	require.NoError(t, svc.Delete(context.Background(), DeleteRequest{ID: "sub1"}))
	assert.ErrorIs(t, svc.Delete(context.Background(), DeleteRequest{ID: "sub1"}), appErrors.ErrNotFound)
	assert.Len(t, cache.patterns, 2)
}
