package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// ErrHasRelatedRecords is returned when a delete is rejected because other
// rows still reference the target.
var ErrHasRelatedRecords = errors.New("record is referenced by other records")

// pqForeignKeyViolation is the SQLSTATE for foreign_key_violation.
const pqForeignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqForeignKeyViolation
}

// rowsAffectedOrNotFound translates a zero-row mutation into sql.ErrNoRows.
func rowsAffectedOrNotFound(affected int64) error {
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
