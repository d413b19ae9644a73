package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler registered by RegisterRoutes.
type Handlers struct {
	Students    *StudentHandler
	Subjects    *SubjectHandler
	Grades      *GradeHandler
	Enrollments *EnrollmentHandler
	Users       *UserHandler
	Dashboard   *DashboardHandler
	Summary     *SummaryHandler
	Metrics     *MetricsHandler
}

// RegisterRoutes mounts the API on r. Update and delete requests carry the
// record id in the JSON body.
func RegisterRoutes(r *gin.Engine, h Handlers, exposeMetrics bool) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	if exposeMetrics {
		r.GET("/metrics", h.Metrics.Prometheus)
	}

	r.GET("/dashboard", h.Dashboard.Summary)

	api := r.Group("/api")

	students := api.Group("/students")
	students.GET("", h.Students.List)
	students.POST("", h.Students.Create)
	students.PUT("", h.Students.Update)
	students.DELETE("", h.Students.Delete)

	subjects := api.Group("/subjects")
	subjects.GET("", h.Subjects.List)
	subjects.POST("", h.Subjects.Create)
	subjects.PUT("", h.Subjects.Update)
	subjects.DELETE("", h.Subjects.Delete)

	grades := api.Group("/grades")
	grades.GET("", h.Grades.List)
	grades.POST("", h.Grades.Create)
	grades.GET("/export", h.Grades.Export)

	enrollment := api.Group("/enrollment")
	enrollment.GET("", h.Enrollments.List)
	enrollment.POST("", h.Enrollments.Create)
	enrollment.PUT("", h.Enrollments.Update)
	enrollment.DELETE("", h.Enrollments.Delete)

	users := api.Group("/users")
	users.GET("", h.Users.List)
	users.POST("", h.Users.Create)
	users.PUT("", h.Users.Update)
	users.DELETE("", h.Users.Delete)

	api.GET("/summary", h.Summary.Database)
	api.POST("/summary", h.Summary.Summarize)
	api.GET("/metrics", h.Metrics.Snapshot)
}
