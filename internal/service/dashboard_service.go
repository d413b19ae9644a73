package service

import (
	"context"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Chajse/EduSumm/internal/dto"
	"github.com/Chajse/EduSumm/internal/models"
)

const (
	dashboardCacheKey      = "dashboard:summary"
	recentActivityLimit    = 5
	recentActivityTime     = "Recently"
	recentActivityType     = "grades"
	fullEnrollmentRate     = 100
	dashboardQueryLabel    = "dashboard_grades"
	defaultDashboardTTLSec = 60
)

type gradeDetailLister interface {
	ListDetailed(ctx context.Context, filter models.GradeFilter) ([]models.GradeDetail, error)
}

type dashboardCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL time.Duration
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Grades  gradeDetailLister
	Cache   dashboardCache
	Metrics *MetricsService
	Logger  *zap.Logger
	Config  DashboardServiceConfig
}

// DashboardService aggregates grades into the dashboard overview.
type DashboardService struct {
	grades  gradeDetailLister
	cache   dashboardCache
	metrics *MetricsService
	logger  *zap.Logger
	cfg     DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultDashboardTTLSec * time.Second
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		grades:  params.Grades,
		cache:   params.Cache,
		metrics: params.Metrics,
		logger:  logger,
		cfg:     cfg,
	}
}

// Summary returns the dashboard overview and whether it was served from
// cache. It never fails: store errors are logged and a zero-valued overview
// is returned instead.
func (s *DashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, bool) {
	if cached, hit := s.tryCache(ctx); hit {
		return cached, true
	}

	start := time.Now()
	rows, err := s.grades.ListDetailed(ctx, models.GradeFilter{})
	s.metrics.ObserveDBQuery(dashboardQueryLabel, time.Since(start))
	if err != nil {
		s.logger.Error("dashboard aggregation failed", zap.Error(err))
		return dto.DefaultDashboard(), false
	}

	summary := BuildDashboard(rows)
	s.persistCache(ctx, summary)
	return summary, false
}

// BuildDashboard derives the overview from grades in store order.
func BuildDashboard(rows []models.GradeDetail) *dto.DashboardResponse {
	midterms := make([]*float64, 0, len(rows))
	finals := make([]*float64, 0, len(rows))
	for _, row := range rows {
		midterms = append(midterms, row.MidtermGrade)
		finals = append(finals, row.FinalGrade)
	}

	totalStudents := DistinctStudents(rows)
	var enrollmentRate float64
	if totalStudents > 0 {
		enrollmentRate = fullEnrollmentRate
	}

	return &dto.DashboardResponse{
		Stats: dto.DashboardStats{
			TotalStudents:  totalStudents,
			AverageGrade:   AverageGrade(append(midterms, finals...)),
			EnrollmentRate: enrollmentRate,
		},
		GradeDistribution: dto.GradeDistribution{
			Midterm: Distribution(midterms),
			Finals:  Distribution(finals),
		},
		RecentActivities: RecentActivities(rows, recentActivityLimit),
	}
}

// GradeBand returns the distribution label for score.
func GradeBand(score float64) string {
	switch {
	case score >= 90:
		return dto.BandExcellent
	case score >= 80:
		return dto.BandGood
	case score >= 70:
		return dto.BandFair
	case score >= 60:
		return dto.BandPassing
	default:
		return dto.BandFailing
	}
}

// Distribution counts non-nil scores per band. Every band is present.
func Distribution(scores []*float64) map[string]int {
	dist := dto.EmptyDistribution()
	for _, score := range scores {
		if score == nil {
			continue
		}
		dist[GradeBand(*score)]++
	}
	return dist
}

// AverageGrade is the mean of positive scores rounded half up. Zero, negative
// and nil scores mean "not graded" and are ignored; no scores averages to 0.
func AverageGrade(scores []*float64) float64 {
	var sum float64
	var count int
	for _, score := range scores {
		if score == nil || *score <= 0 {
			continue
		}
		sum += *score
		count++
	}
	if count == 0 {
		return 0
	}
	return math.Floor(sum/float64(count) + 0.5)
}

// DistinctStudents counts unique student ids across rows.
func DistinctStudents(rows []models.GradeDetail) int {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		seen[row.StudentID] = struct{}{}
	}
	return len(seen)
}

// RecentActivities describes the last limit rows, oldest first.
func RecentActivities(rows []models.GradeDetail, limit int) []dto.RecentActivity {
	start := len(rows) - limit
	if start < 0 {
		start = 0
	}
	activities := make([]dto.RecentActivity, 0, len(rows)-start)
	for _, row := range rows[start:] {
		activities = append(activities, dto.RecentActivity{
			Action: activityAction(row),
			Time:   recentActivityTime,
			Type:   recentActivityType,
		})
	}
	return activities
}

func activityAction(row models.GradeDetail) string {
	var b strings.Builder
	b.WriteString("Grade recorded for")
	if name := row.Student.FullName(); name != "" {
		b.WriteString(" ")
		b.WriteString(name)
	}
	if row.Subject != nil && row.Subject.SubjectName != "" {
		b.WriteString(" in ")
		b.WriteString(row.Subject.SubjectName)
	}
	return b.String()
}

func (s *DashboardService) tryCache(ctx context.Context) (*dto.DashboardResponse, bool) {
	if s.cache == nil {
		return nil, false
	}
	var cached dto.DashboardResponse
	hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached)
	if err != nil {
		s.logger.Warn("dashboard cache read failed", zap.Error(err))
		return nil, false
	}
	if !hit {
		return nil, false
	}
	return &cached, true
}

func (s *DashboardService) persistCache(ctx context.Context, value *dto.DashboardResponse) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, dashboardCacheKey, value, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", dashboardCacheKey), zap.Error(err))
	}
}
