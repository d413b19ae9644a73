package models

import "strings"

// Student represents a learner registered in the institution.
type Student struct {
	ID        string `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Birthdate string `db:"birthdate" json:"birthdate"`
	Email     string `db:"email" json:"email"`
	Gender    string `db:"gender" json:"gender"`
	Course    string `db:"course" json:"course"`
	Year      int    `db:"year" json:"year"`
	Block     string `db:"block" json:"block"`
}

// StudentRef is the part of a student carried by joined rows.
type StudentRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName joins the name parts, skipping empty ones.
func (s *StudentRef) FullName() string {
	if s == nil {
		return ""
	}
	return joinNonEmpty(s.FirstName, s.LastName)
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// DerefString returns the pointed-to string or "".
func DerefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// JoinName builds a display name from optional name parts.
func JoinName(first, last *string) string {
	return joinNonEmpty(DerefString(first), DerefString(last))
}
