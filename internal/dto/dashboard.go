package dto

// Grade distribution band labels, highest first.
const (
	BandExcellent = "90-100"
	BandGood      = "80-89"
	BandFair      = "70-79"
	BandPassing   = "60-69"
	BandFailing   = "Below 60"
)

// GradeBands lists every distribution label in display order.
var GradeBands = []string{BandExcellent, BandGood, BandFair, BandPassing, BandFailing}

// DashboardResponse is the aggregated overview served on /dashboard.
type DashboardResponse struct {
	Stats             DashboardStats    `json:"stats"`
	GradeDistribution GradeDistribution `json:"gradeDistribution"`
	RecentActivities  []RecentActivity  `json:"recentActivities"`
}

// DashboardStats carries headline numbers.
type DashboardStats struct {
	TotalStudents  int     `json:"totalStudents"`
	AverageGrade   float64 `json:"averageGrade"`
	EnrollmentRate float64 `json:"enrollmentRate"`
}

// GradeDistribution counts scores per band for each exam.
type GradeDistribution struct {
	Midterm map[string]int `json:"midterm"`
	Finals  map[string]int `json:"finals"`
}

// RecentActivity describes one recently recorded grade.
type RecentActivity struct {
	Action string `json:"action"`
	Time   string `json:"time"`
	Type   string `json:"type"`
}

// EmptyDistribution returns a band map with every label set to zero.
func EmptyDistribution() map[string]int {
	dist := make(map[string]int, len(GradeBands))
	for _, band := range GradeBands {
		dist[band] = 0
	}
	return dist
}

// DefaultDashboard is the zero-valued overview returned when data is unavailable.
func DefaultDashboard() *DashboardResponse {
	return &DashboardResponse{
		GradeDistribution: GradeDistribution{
			Midterm: EmptyDistribution(),
			Finals:  EmptyDistribution(),
		},
		RecentActivities: []RecentActivity{},
	}
}
