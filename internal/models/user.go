package models

// User is a standalone account record unrelated to the academic tables.
type User struct {
	ID    string `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Age   int    `db:"age" json:"age"`
	Email string `db:"email" json:"email"`
}
