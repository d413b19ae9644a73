package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Chajse/EduSumm/internal/dto"
	appErrors "github.com/Chajse/EduSumm/pkg/errors"
	"github.com/Chajse/EduSumm/pkg/summarizer"
)

type dashboardProvider interface {
	Summary(ctx context.Context) (*dto.DashboardResponse, bool)
}

// SummaryRequest carries free text to summarize.
type SummaryRequest struct {
	Text string `json:"text"`
}

// SummaryService fronts the summarization upstream.
type SummaryService struct {
	summarizer summarizer.Summarizer
	dashboard  dashboardProvider
	metrics    *MetricsService
	logger     *zap.Logger
}

// NewSummaryService constructs the service. dashboard may be nil, in which
// case DatabaseSummary reports no data.
func NewSummaryService(s summarizer.Summarizer, dashboard dashboardProvider, metrics *MetricsService, logger *zap.Logger) *SummaryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummaryService{summarizer: s, dashboard: dashboard, metrics: metrics, logger: logger}
}

// Summarize returns the upstream summary of req.Text.
func (s *SummaryService) Summarize(ctx context.Context, req SummaryRequest) (string, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "No text provided")
	}

	start := time.Now()
	summary, err := s.summarizer.Summarize(ctx, text)
	s.metrics.ObserveSummary(err == nil, time.Since(start))
	if err != nil {
		s.logger.Error("summary generation failed", zap.Int("text_length", len(text)), zap.Error(err))
		return "", appErrors.Internal(err, "Error generating summary")
	}
	return summary, nil
}

// DatabaseSummary describes the current grade records in plain text.
func (s *SummaryService) DatabaseSummary(ctx context.Context) string {
	if s.dashboard == nil {
		return "No grade records are available yet."
	}
	overview, _ := s.dashboard.Summary(ctx)
	return DescribeDashboard(overview)
}

// DescribeDashboard renders the overview as a short report.
func DescribeDashboard(overview *dto.DashboardResponse) string {
	if overview == nil || overview.Stats.TotalStudents == 0 {
		return "No grade records are available yet."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d students have recorded grades with an average grade of %.0f.", overview.Stats.TotalStudents, overview.Stats.AverageGrade)
	writeBands(&b, "Midterm", overview.GradeDistribution.Midterm)
	writeBands(&b, "Finals", overview.GradeDistribution.Finals)
	if n := len(overview.RecentActivities); n > 0 {
		fmt.Fprintf(&b, " Latest: %s.", overview.RecentActivities[n-1].Action)
	}
	return b.String()
}

func writeBands(b *strings.Builder, label string, dist map[string]int) {
	parts := make([]string, 0, len(dto.GradeBands))
	for _, band := range dto.GradeBands {
		parts = append(parts, fmt.Sprintf("%s: %d", band, dist[band]))
	}
	fmt.Fprintf(b, " %s distribution (%s).", label, strings.Join(parts, ", "))
}
