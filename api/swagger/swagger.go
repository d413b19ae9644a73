package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "EduSumm API",
        "description": "School records with dashboard aggregation and text summarization",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student roster"},
        {"name": "Subjects", "description": "Subject catalogue"},
        {"name": "Grades", "description": "Midterm and final scores"},
        {"name": "Enrollment", "description": "Enrollment history"},
        {"name": "Users", "description": "Application users"},
        {"name": "Dashboard", "description": "Aggregated overview"},
        {"name": "Summary", "description": "Language model summaries"}
    ],
    "paths": {
        "/health": {
            "get": {"summary": "Health check", "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {"200": {"description": "Ready"}, "503": {"description": "A dependency is unavailable"}}
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard overview",
                "description": "Always 200. X-Cache reports HIT or MISS.",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/DashboardResponse"}}}
            }
        },
        "/api/students": {
            "get": {"tags": ["Students"], "summary": "List students", "responses": {"200": {"$ref": "#/responses/Data"}}},
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}],
                "responses": {"200": {"$ref": "#/responses/Success"}, "400": {"$ref": "#/responses/Error"}}
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}],
                "responses": {"200": {"$ref": "#/responses/Success"}, "404": {"$ref": "#/responses/Error"}}
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student with grades and enrollment history",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DeleteRequest"}}],
                "responses": {"200": {"$ref": "#/responses/Success"}, "404": {"$ref": "#/responses/Error"}}
            }
        },
        "/api/subjects": {
            "get": {"tags": ["Subjects"], "summary": "List subjects", "responses": {"200": {"$ref": "#/responses/Data"}}},
            "post": {
                "tags": ["Subjects"],
                "summary": "Create subject",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubjectRequest"}}],
                "responses": {"200": {"$ref": "#/responses/Success"}, "400": {"$ref": "#/responses/Error"}}
            },
            "put": {
                "tags": ["Subjects"],
                "summary": "Update subject",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubjectRequest"}}],
                "responses": {"200": {"$ref": "#/responses/Success"}, "404": {"$ref": "#/responses/Error"}}
            },
            "delete": {
                "tags": ["Subjects"],
                "summary": "Delete subject",
                "description": "Rejected with hasRelatedRecords when grades or enrollments reference the subject.",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DeleteRequest"}}],
                "responses": {"200": {"$ref": "#/responses/Success"}, "400": {"$ref": "#/responses/Error"}}
            }
        },
        "/api/grades": {
            "get": {
                "tags": ["Grades"],
                "summary": "List grades with student and subject details",
                "parameters": [
                    {"name": "studentId", "in": "query", "type": "string"},
                    {"name": "subjectId", "in": "query", "type": "string"},
                    {"name": "semester", "in": "query", "type": "string"},
                    {"name": "year", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"$ref": "#/responses/Data"}}
            },
            "post": {
                "tags": ["Grades"],
                "summary": "Submit a grade",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GradeRequest"}}],
                "responses": {"200": {"$ref": "#/responses/Success"}, "400": {"$ref": "#/responses/Error"}}
            }
        },
        "/api/grades/export": {
            "get": {
                "tags": ["Grades"],
                "summary": "Download grades as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "studentId", "in": "query", "type": "string"},
                    {"name": "subjectId", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "File", "schema": {"type": "file"}}, "400": {"$ref": "#/responses/Error"}}
            }
        },
        "/api/enrollment": {
            "get": {"tags": ["Enrollment"], "summary": "List enrollment history", "responses": {"200": {"$ref": "#/responses/Data"}}},
            "post": {
                "tags": ["Enrollment"],
                "summary": "Record enrollment",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollmentRequest"}}],
                "responses": {"200": {"$ref": "#/responses/Success"}, "400": {"$ref": "#/responses/Error"}}
            },
            "put": {
                "tags": ["Enrollment"],
                "summary": "Update enrollment",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollmentRequest"}}],
                "responses": {"200": {"$ref": "#/responses/Success"}, "404": {"$ref": "#/responses/Error"}}
            },
            "delete": {
                "tags": ["Enrollment"],
                "summary": "Delete enrollment",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DeleteRequest"}}],
                "responses": {"200": {"$ref": "#/responses/Success"}, "404": {"$ref": "#/responses/Error"}}
            }
        },
        "/api/users": {
            "get": {"tags": ["Users"], "summary": "List users", "responses": {"200": {"$ref": "#/responses/Data"}}},
            "post": {
                "tags": ["Users"],
                "summary": "Create user",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UserRequest"}}],
                "responses": {"200": {"$ref": "#/responses/Success"}, "400": {"$ref": "#/responses/Error"}}
            },
            "put": {
                "tags": ["Users"],
                "summary": "Update user",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UserRequest"}}],
                "responses": {"200": {"$ref": "#/responses/Success"}, "404": {"$ref": "#/responses/Error"}}
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Delete user",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DeleteRequest"}}],
                "responses": {"200": {"$ref": "#/responses/Success"}, "404": {"$ref": "#/responses/Error"}}
            }
        },
        "/api/summary": {
            "get": {
                "tags": ["Summary"],
                "summary": "Plain-text digest of recorded grades",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/SummaryResponse"}}}
            },
            "post": {
                "tags": ["Summary"],
                "summary": "Summarize free text",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SummaryRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SummaryResponse"}},
                    "400": {"$ref": "#/responses/Error"},
                    "500": {"$ref": "#/responses/Error"}
                }
            }
        },
        "/api/metrics": {
            "get": {"summary": "Aggregated request, cache and query counters", "responses": {"200": {"$ref": "#/responses/Data"}}}
        }
    },
    "responses": {
        "Data": {"description": "OK", "schema": {"type": "object", "properties": {"data": {"type": "object"}}}},
        "Success": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
        "Error": {"description": "Error", "schema": {"$ref": "#/definitions/Envelope"}}
    },
    "definitions": {
        "StudentRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "birthdate": {"type": "string"},
                "email": {"type": "string"},
                "gender": {"type": "string"},
                "course": {"type": "string"},
                "year": {"type": "integer"},
                "block": {"type": "string"}
            },
            "required": ["firstName", "lastName", "email"]
        },
        "SubjectRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "subjectCode": {"type": "string"},
                "subjectName": {"type": "string"},
                "instructorName": {"type": "string"},
                "credits": {"type": "integer"}
            },
            "required": ["subjectCode", "subjectName"]
        },
        "GradeRequest": {
            "type": "object",
            "properties": {
                "studentId": {"type": "string"},
                "subjectId": {"type": "string"},
                "midtermGrade": {"type": "number"},
                "finalGrade": {"type": "number"},
                "semester": {"type": "string"},
                "year": {"type": "integer"}
            },
            "required": ["studentId", "subjectId", "midtermGrade", "finalGrade", "semester", "year"]
        },
        "EnrollmentRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "studentId": {"type": "string"},
                "subjectId": {"type": "string"},
                "semester": {"type": "string"},
                "year": {"type": "integer"},
                "status": {"type": "string"}
            },
            "required": ["studentId", "subjectId", "semester", "year", "status"]
        },
        "UserRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "age": {"type": "integer"},
                "email": {"type": "string"}
            },
            "required": ["name", "age", "email"]
        },
        "DeleteRequest": {
            "type": "object",
            "properties": {"id": {"type": "string"}},
            "required": ["id"]
        },
        "SummaryRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}},
            "required": ["text"]
        },
        "SummaryResponse": {
            "type": "object",
            "properties": {"summary": {"type": "string"}}
        },
        "DashboardResponse": {
            "type": "object",
            "properties": {
                "stats": {
                    "type": "object",
                    "properties": {
                        "totalStudents": {"type": "integer"},
                        "averageGrade": {"type": "number"},
                        "enrollmentRate": {"type": "number"}
                    }
                },
                "gradeDistribution": {
                    "type": "object",
                    "properties": {
                        "midterm": {"type": "object", "additionalProperties": {"type": "integer"}},
                        "finals": {"type": "object", "additionalProperties": {"type": "integer"}}
                    }
                },
                "recentActivities": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "action": {"type": "string"},
                            "time": {"type": "string"},
                            "type": {"type": "string"}
                        }
                    }
                }
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"type": "object"},
                "error": {"type": "string"},
                "code": {"type": "string"},
                "hasRelatedRecords": {"type": "boolean"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
