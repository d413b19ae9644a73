package models

import "time"

// Grade is a midterm/final score pair recorded for a student in a subject.
// Scores are pointers so rows written before the NOT NULL constraint, or
// partially filled imports, remain representable.
type Grade struct {
	ID           string    `db:"id" json:"id"`
	StudentID    string    `db:"student_id" json:"studentId"`
	SubjectID    string    `db:"subject_id" json:"subjectId"`
	MidtermGrade *float64  `db:"midterm_grade" json:"midtermGrade"`
	FinalGrade   *float64  `db:"final_grade" json:"finalGrade"`
	Semester     string    `db:"semester" json:"semester"`
	Year         int       `db:"year" json:"year"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// GradeDetail is a grade left-joined with its student and subject. Student and
// Subject are nil when the referenced row does not exist.
type GradeDetail struct {
	Grade
	Student *StudentRef `json:"student"`
	Subject *SubjectRef `json:"subject"`
}

// GradeFilter narrows grade listings. Zero values are ignored.
type GradeFilter struct {
	StudentID string
	SubjectID string
	Semester  string
	Year      int
}
