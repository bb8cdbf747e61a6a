package repository

import (
	"database/sql"
	"time"
)

// parseTime parses an RFC3339 string stored in SQLite. Returns the zero time
// if parsing fails.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullableString converts a sql.NullString to a plain string, empty when NULL.
func nullableString(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// nullableIntToValue converts an int to a value suitable for SQLite storage.
// Returns nil (SQL NULL) when the value is zero, keeping optional profile
// fields out of the row.
func nullableIntToValue(v int) interface{} {
	if v == 0 {
		return nil
	}
	return v
}

// nullableFloatToValue converts a float64 to a value suitable for SQLite
// storage. Returns nil (SQL NULL) when the value is zero.
func nullableFloatToValue(v float64) interface{} {
	if v == 0 {
		return nil
	}
	return v
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
