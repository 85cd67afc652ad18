package domain

import (
	"bytes"
	"fmt"
	"time"
)

// Timestamp decodes the backend's zone-less local date-times
// ("2024-05-01T10:15:30" with optional fraction) as well as RFC 3339.
type Timestamp struct {
	time.Time
}

const localLayout = "2006-01-02T15:04:05.999999999"

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("timestamp: expected string, got %s", b)
	}
	s := string(b[1 : len(b)-1])
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	if v, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = v
		return nil
	}
	v, err := time.ParseInLocation(localLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	t.Time = v
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(localLayout) + `"`), nil
}

// Date renders the calendar date, or "-" when unset.
func (t Timestamp) Date() string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
