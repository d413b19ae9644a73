package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chajse/EduSumm/internal/dto"
	"github.com/Chajse/EduSumm/internal/models"
	"github.com/Chajse/EduSumm/internal/service"
	appErrors "github.com/Chajse/EduSumm/pkg/errors"
)

type fakeStudentSrv struct {
	students   []models.Student
	createErr  error
	deleteErr  error
	lastCreate service.CreateStudentRequest
	lastDelete service.DeleteRequest
}

func (f *fakeStudentSrv) List(context.Context) ([]models.Student, error) {
	return f.students, nil
}

func (f *fakeStudentSrv) Create(_ context.Context, req service.CreateStudentRequest) (*models.Student, error) {
	f.lastCreate = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Student{ID: "s-new", FirstName: req.FirstName}, nil
}

func (f *fakeStudentSrv) Update(_ context.Context, req service.UpdateStudentRequest) (*models.Student, error) {
	return &models.Student{ID: req.ID}, nil
}

func (f *fakeStudentSrv) Delete(_ context.Context, req service.DeleteRequest) error {
	f.lastDelete = req
	return f.deleteErr
}

type fakeSubjectSrv struct{ deleteErr error }

func (f *fakeSubjectSrv) List(context.Context) ([]models.Subject, error) { return nil, nil }
func (f *fakeSubjectSrv) Create(context.Context, service.CreateSubjectRequest) (*models.Subject, error) {
	return &models.Subject{}, nil
}
func (f *fakeSubjectSrv) Update(context.Context, service.UpdateSubjectRequest) (*models.Subject, error) {
	return &models.Subject{}, nil
}
func (f *fakeSubjectSrv) Delete(context.Context, service.DeleteRequest) error { return f.deleteErr }

type fakeGradeSrv struct {
	lastFilter models.GradeFilter
}

func (f *fakeGradeSrv) List(_ context.Context, filter models.GradeFilter) ([]models.GradeDetail, error) {
	f.lastFilter = filter
	return []models.GradeDetail{{Grade: models.Grade{ID: "g1"}, Student: &models.StudentRef{FirstName: "Ana"}}}, nil
}

func (f *fakeGradeSrv) Create(_ context.Context, req service.CreateGradeRequest) (*models.Grade, error) {
	return &models.Grade{ID: "g-new", StudentID: req.StudentID}, nil
}

type fakeExporter struct {
	format string
	err    error
}

func (f *fakeExporter) Grades(_ context.Context, format string, _ models.GradeFilter) (*service.ExportFile, error) {
	f.format = format
	if f.err != nil {
		return nil, f.err
	}
	return &service.ExportFile{Filename: "grades.csv", ContentType: "text/csv", Data: []byte("Student\n")}, nil
}

type fakeEnrollmentSrv struct{}

func (fakeEnrollmentSrv) List(context.Context) ([]models.EnrollmentDetail, error) { return nil, nil }
func (fakeEnrollmentSrv) Create(context.Context, service.CreateEnrollmentRequest) (*models.EnrollmentHistory, error) {
	return &models.EnrollmentHistory{}, nil
}
func (fakeEnrollmentSrv) Update(context.Context, service.UpdateEnrollmentRequest) (*models.EnrollmentHistory, error) {
	return nil, appErrors.Clone(appErrors.ErrNotFound, "Enrollment not found")
}
func (fakeEnrollmentSrv) Delete(context.Context, service.DeleteRequest) error { return nil }

type fakeUserSrv struct{}

func (fakeUserSrv) List(context.Context) ([]models.User, error) {
	return []models.User{{ID: "u1", Name: "Maria"}}, nil
}
func (fakeUserSrv) Create(_ context.Context, req service.CreateUserRequest) (*models.User, error) {
	return &models.User{ID: "u-new", Name: req.Name}, nil
}
func (fakeUserSrv) Update(context.Context, service.UpdateUserRequest) (*models.User, error) {
	return &models.User{}, nil
}
func (fakeUserSrv) Delete(context.Context, service.DeleteRequest) error { return nil }

type fakeDashboardSrv struct {
	resp *dto.DashboardResponse
	hit  bool
}

func (f *fakeDashboardSrv) Summary(context.Context) (*dto.DashboardResponse, bool) {
	return f.resp, f.hit
}

type fakeSummarySrv struct{ err error }

func (f *fakeSummarySrv) Summarize(_ context.Context, req service.SummaryRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "summary of " + req.Text, nil
}

func (f *fakeSummarySrv) DatabaseSummary(context.Context) string { return "2 students" }

type testDeps struct {
	students  *fakeStudentSrv
	subjects  *fakeSubjectSrv
	grades    *fakeGradeSrv
	exporter  *fakeExporter
	dashboard *fakeDashboardSrv
	summary   *fakeSummarySrv
	checks    map[string]ReadinessCheck
}

func newTestRouter(deps testDeps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if deps.students == nil {
		deps.students = &fakeStudentSrv{}
	}
	if deps.subjects == nil {
		deps.subjects = &fakeSubjectSrv{}
	}
	if deps.grades == nil {
		deps.grades = &fakeGradeSrv{}
	}
	if deps.exporter == nil {
		deps.exporter = &fakeExporter{}
	}
	if deps.dashboard == nil {
		deps.dashboard = &fakeDashboardSrv{}
	}
	if deps.summary == nil {
		deps.summary = &fakeSummarySrv{}
	}
	r := gin.New()
	RegisterRoutes(r, Handlers{
		Students:    NewStudentHandler(deps.students),
		Subjects:    NewSubjectHandler(deps.subjects),
		Grades:      NewGradeHandler(deps.grades, deps.exporter),
		Enrollments: NewEnrollmentHandler(fakeEnrollmentSrv{}),
		Users:       NewUserHandler(fakeUserSrv{}),
		Dashboard:   NewDashboardHandler(deps.dashboard),
		Summary:     NewSummaryHandler(deps.summary),
		Metrics:     NewMetricsHandler(service.NewMetricsService(), deps.checks),
	}, true)
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestStudentRoutes(t *testing.T) {
	students := &fakeStudentSrv{students: []models.Student{{ID: "s1", FirstName: "Ana"}}}
	r := newTestRouter(testDeps{students: students})

	rec := perform(r, http.MethodGet, "/api/students", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].([]interface{})
	assert.Equal(t, "Ana", data[0].(map[string]interface{})["firstName"])

	rec = perform(r, http.MethodPost, "/api/students", `{"firstName":"Ben","lastName":"Lim","email":"ben@example.com","year":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Student added successfully", body["message"])
	assert.Equal(t, 3, students.lastCreate.Year)

	rec = perform(r, http.MethodDelete, "/api/students", `{"id":"s1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s1", students.lastDelete.ID)
	assert.Equal(t, "Student and related records deleted successfully", decode(t, rec)["message"])
}

func TestStudentRoutesErrors(t *testing.T) {
	students := &fakeStudentSrv{
		createErr: appErrors.Clone(appErrors.ErrValidation, "Missing required fields (firstName, lastName, email)"),
		deleteErr: appErrors.Clone(appErrors.ErrNotFound, "Student not found"),
	}
	r := newTestRouter(testDeps{students: students})

	rec := perform(r, http.MethodPost, "/api/students", `{"firstName":"Ben"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec)["code"])

	rec = perform(r, http.MethodPost, "/api/students", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = perform(r, http.MethodDelete, "/api/students", `{"id":"missing"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Student not found", decode(t, rec)["error"])

	students.createErr = appErrors.Internal(errors.New("pq: connection refused"), "Failed to add student")
	rec = perform(r, http.MethodPost, "/api/students", `{"firstName":"Ben","lastName":"Lim","email":"b@example.com"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestSubjectDeleteConflict(t *testing.T) {
	subjects := &fakeSubjectSrv{deleteErr: appErrors.Clone(appErrors.ErrHasRelatedRecords, "This subject cannot be deleted because it is being used in grades or enrollments. Please delete those records first.")}
	r := newTestRouter(testDeps{subjects: subjects})

	rec := perform(r, http.MethodDelete, "/api/subjects", `{"id":"sub1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["hasRelatedRecords"])
	assert.Contains(t, body["error"], "cannot be deleted")
}

func TestGradeRoutes(t *testing.T) {
	grades := &fakeGradeSrv{}
	exporter := &fakeExporter{}
	r := newTestRouter(testDeps{grades: grades, exporter: exporter})

	rec := perform(r, http.MethodGet, "/api/grades?studentId=s1&year=2024", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.GradeFilter{StudentID: "s1", Year: 2024}, grades.lastFilter)

	rec = perform(r, http.MethodGet, "/api/grades?year=soon", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = perform(r, http.MethodPost, "/api/grades", `{"studentId":"s1","subjectId":"sub1","midtermGrade":0,"finalGrade":90,"semester":"1st","year":2024}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "g-new", decode(t, rec)["data"].(map[string]interface{})["id"])

	rec = perform(r, http.MethodGet, "/api/grades/export?format=csv", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "csv", exporter.format)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="grades.csv"`, rec.Header().Get("Content-Disposition"))

	exporter.err = appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	rec = perform(r, http.MethodGet, "/api/grades/export?format=xlsx", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnrollmentAndUserRoutes(t *testing.T) {
	r := newTestRouter(testDeps{})

	rec := perform(r, http.MethodPut, "/api/enrollment", `{"id":"e1","studentId":"s1","subjectId":"sub1"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = perform(r, http.MethodPost, "/api/users", `{"name":"Maria","age":31,"email":"m@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Maria", decode(t, rec)["data"].(map[string]interface{})["name"])
}

func TestDashboardRouteAlwaysOK(t *testing.T) {
	r := newTestRouter(testDeps{dashboard: &fakeDashboardSrv{resp: nil}})

	rec := perform(r, http.MethodGet, "/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	body := decode(t, rec)
	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(0), stats["totalStudents"])
	midterm := body["gradeDistribution"].(map[string]interface{})["midterm"].(map[string]interface{})
	assert.Len(t, midterm, 5)
	assert.Equal(t, []interface{}{}, body["recentActivities"])
}

func TestDashboardRouteCacheHit(t *testing.T) {
	resp := dto.DefaultDashboard()
	resp.Stats.TotalStudents = 4
	r := newTestRouter(testDeps{dashboard: &fakeDashboardSrv{resp: resp, hit: true}})

	rec := perform(r, http.MethodGet, "/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, float64(4), decode(t, rec)["stats"].(map[string]interface{})["totalStudents"])
}

func TestSummaryRoutes(t *testing.T) {
	summary := &fakeSummarySrv{}
	r := newTestRouter(testDeps{summary: summary})

	rec := perform(r, http.MethodPost, "/api/summary", `{"text":"hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "summary of hello", decode(t, rec)["summary"])

	rec = perform(r, http.MethodGet, "/api/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2 students", decode(t, rec)["summary"])

	summary.err = appErrors.Internal(errors.New("upstream 502"), "Error generating summary")
	rec = perform(r, http.MethodPost, "/api/summary", `{"text":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error generating summary", decode(t, rec)["error"])
}

func TestHealthReadyAndMetrics(t *testing.T) {
	r := newTestRouter(testDeps{checks: map[string]ReadinessCheck{
		"database": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("dial tcp: refused") },
	}})

	rec := perform(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = perform(r, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "not_ready", body["status"])
	assert.Equal(t, map[string]interface{}{"database": "ok", "redis": "unavailable"}, body["checks"])

	rec = perform(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = perform(r, http.MethodGet, "/api/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode(t, rec), "data")
}
