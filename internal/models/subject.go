package models

// Subject represents an academic subject.
type Subject struct {
	ID             string `db:"id" json:"id"`
	SubjectCode    string `db:"subject_code" json:"subjectCode"`
	SubjectName    string `db:"subject_name" json:"subjectName"`
	InstructorName string `db:"instructor_name" json:"instructorName"`
	Credits        int    `db:"credits" json:"credits"`
}

// SubjectRef is the part of a subject carried by joined rows.
type SubjectRef struct {
	ID          string `json:"id"`
	SubjectCode string `json:"subjectCode"`
	SubjectName string `json:"subjectName"`
}
