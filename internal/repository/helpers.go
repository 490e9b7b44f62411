package repository

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/forgo/chronicle/api/internal/database"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isUniqueConstraintError checks if an error is a unique index violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// recordIDString converts SurrealDB's record ID representations to a
// plain "table:id" string.
func recordIDString(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	case map[string]interface{}:
		if tb, ok := v["tb"].(string); ok {
			if id, ok := v["id"].(string); ok {
				return tb + ":" + id
			}
		}
	}

	// Fallback through JSON for exotic ID encodings
	if data, err := json.Marshal(id); err == nil {
		var rid models.RecordID
		if err := json.Unmarshal(data, &rid); err == nil {
			return rid.String()
		}
	}

	return ""
}

// recordTime converts the datetime representations SurrealDB may return
// into a time.Time, zero when unparseable.
func recordTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	}
	return time.Time{}
}

// resultRows unwraps the {status, result} wrapper produced by the database
// layer and returns the rows of the first statement.
func resultRows(results []interface{}) []interface{} {
	if len(results) == 0 {
		return nil
	}
	if resp, ok := results[0].(map[string]interface{}); ok {
		if rows, ok := resp["result"].([]interface{}); ok {
			return rows
		}
	}
	return nil
}

// rowCount extracts the count value from a `SELECT count() ... GROUP ALL`
// result.
func rowCount(result interface{}) int {
	data, ok := result.(map[string]interface{})
	if !ok {
		return 0
	}
	switch c := data["count"].(type) {
	case float64:
		return int(c)
	case float32:
		return int(c)
	case int:
		return c
	case int64:
		return int(c)
	case uint64:
		return int(c)
	}
	return 0
}

// decodeRow converts a single SurrealDB row into the destination struct.
// The row's id and datetime fields are normalised first, then the map is
// round-tripped through JSON so struct tags apply.
func decodeRow(row interface{}, dest interface{}) error {
	if row == nil {
		return database.ErrNotFound
	}

	data, ok := row.(map[string]interface{})
	if !ok {
		return errors.New("unexpected result format")
	}

	normalised := make(map[string]interface{}, len(data))
	for k, v := range data {
		switch k {
		case "id":
			normalised[k] = recordIDString(v)
		case "campaign":
			// Stored as record links; models carry plain id strings
			normalised["campaign_id"] = recordIDString(v)
		case "owner":
			normalised["owner_id"] = recordIDString(v)
		case "created_on":
			normalised[k] = recordTime(v).Format(time.RFC3339Nano)
		default:
			normalised[k] = v
		}
	}

	jsonBytes, err := json.Marshal(normalised)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonBytes, dest)
}
