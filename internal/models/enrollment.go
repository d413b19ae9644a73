package models

// EnrollmentHistory records a student's enrollment in a subject for a term.
type EnrollmentHistory struct {
	ID        string `db:"id" json:"id"`
	StudentID string `db:"student_id" json:"studentId"`
	SubjectID string `db:"subject_id" json:"subjectId"`
	Semester  string `db:"semester" json:"semester"`
	Year      int    `db:"year" json:"year"`
	Status    string `db:"status" json:"status"`
}

// EnrollmentDetail enriches EnrollmentHistory with student and subject info.
// The joined columns are nil when the referenced row is missing.
type EnrollmentDetail struct {
	EnrollmentHistory
	FirstName   *string `db:"first_name" json:"firstName"`
	LastName    *string `db:"last_name" json:"lastName"`
	SubjectCode *string `db:"subject_code" json:"subjectCode"`
	StudentName string  `db:"-" json:"studentName"`
}
