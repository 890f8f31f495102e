// Package mongoexport converts the wrapper objects found in mongoexport
// --jsonArray output ({"$oid": ...}, {"$date": ...}) into native Go values.
// All functions are total over decoded JSON values and never touch I/O.
package mongoexport

import (
	"errors"
	"fmt"
	"time"
)

const (
	oidKey  = "$oid"
	dateKey = "$date"
)

// ErrMalformedIdentifier marks a value that is neither an $oid wrapper nor a
// plain string.
var ErrMalformedIdentifier = errors.New("malformed identifier")

// ObjectID unwraps a {"$oid": "<hex>"} mapping into its string form. A plain
// string passes through unchanged. Only one wrapper level is inspected;
// anything else fails with ErrMalformedIdentifier.
func ObjectID(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case map[string]any:
		wrapped, ok := val[oidKey]
		if !ok {
			return "", fmt.Errorf("%w: missing %s key", ErrMalformedIdentifier, oidKey)
		}
		s, ok := wrapped.(string)
		if !ok {
			return "", fmt.Errorf("%w: %s value is %T, not string", ErrMalformedIdentifier, oidKey, wrapped)
		}
		return s, nil
	default:
		return "", fmt.Errorf("%w: unexpected type %T", ErrMalformedIdentifier, v)
	}
}

// Timestamp unwraps a {"$date": "<ISO-8601>"} mapping into a UTC time. A
// plain ISO-8601 string is accepted too. The second return is false when the
// value cannot be parsed; callers log and keep the field null rather than
// rejecting the record.
func Timestamp(v any) (time.Time, bool) {
	switch val := v.(type) {
	case string:
		return parseISO(val)
	case map[string]any:
		wrapped, ok := val[dateKey]
		if !ok {
			return time.Time{}, false
		}
		s, ok := wrapped.(string)
		if !ok {
			return time.Time{}, false
		}
		return parseISO(s)
	default:
		return time.Time{}, false
	}
}

func parseISO(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
