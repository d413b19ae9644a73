package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chajse/EduSumm/internal/dto"
	appErrors "github.com/Chajse/EduSumm/pkg/errors"
	"github.com/Chajse/EduSumm/pkg/summarizer"
)

type stubSummarizer struct {
	summary string
	err     error
	inputs  []string
}

func (s *stubSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	s.inputs = append(s.inputs, text)
	return s.summary, s.err
}

type stubDashboard struct{ overview *dto.DashboardResponse }

func (s stubDashboard) Summary(ctx context.Context) (*dto.DashboardResponse, bool) {
	return s.overview, false
}

func TestSummaryServiceRejectsEmptyText(t *testing.T) {
	upstream := &stubSummarizer{summary: "ok"}
	svc := NewSummaryService(upstream, nil, nil, nil)

	_, err := svc.Summarize(context.Background(), SummaryRequest{Text: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Equal(t, "No text provided", appErrors.FromError(err).Message)
	assert.Empty(t, upstream.inputs)
}

func TestSummaryServiceSummarize(t *testing.T) {
	upstream := &stubSummarizer{summary: "short version"}
	metrics := NewMetricsService()
	svc := NewSummaryService(upstream, nil, metrics, nil)

	out, err := svc.Summarize(context.Background(), SummaryRequest{Text: " long text "})
	require.NoError(t, err)
	assert.Equal(t, "short version", out)
	assert.Equal(t, []string{"long text"}, upstream.inputs)
	assert.Equal(t, uint64(1), metrics.Snapshot().SummariesTotal)
}

func TestSummaryServiceUpstreamFailure(t *testing.T) {
	svc := NewSummaryService(&stubSummarizer{err: summarizer.ErrSummaryFailed}, nil, nil, nil)

	_, err := svc.Summarize(context.Background(), SummaryRequest{Text: "text"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErr.Code)
	assert.Equal(t, "Error generating summary", appErr.Message)
	assert.True(t, errors.Is(err, summarizer.ErrSummaryFailed))
}

func TestSummaryServiceDatabaseSummary(t *testing.T) {
	assert.Equal(t, "No grade records are available yet.", NewSummaryService(nil, nil, nil, nil).DatabaseSummary(context.Background()))

	overview := dto.DefaultDashboard()
	overview.Stats = dto.DashboardStats{TotalStudents: 2, AverageGrade: 79, EnrollmentRate: 100}
	overview.GradeDistribution.Midterm[dto.BandExcellent] = 2
	overview.RecentActivities = []dto.RecentActivity{{Action: "Grade recorded for Ana Cruz in Physics"}}

	text := NewSummaryService(nil, stubDashboard{overview: overview}, nil, nil).DatabaseSummary(context.Background())
	assert.True(t, strings.HasPrefix(text, "2 students have recorded grades with an average grade of 79."))
	assert.Contains(t, text, "Midterm distribution (90-100: 2, 80-89: 0, 70-79: 0, 60-69: 0, Below 60: 0).")
	assert.Contains(t, text, "Latest: Grade recorded for Ana Cruz in Physics.")
}
