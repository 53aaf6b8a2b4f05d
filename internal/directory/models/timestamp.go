package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Timestamp is a Graph datetime that always serializes in one canonical
// textual form: RFC 3339 seconds precision, UTC. Upstream payloads arrive
// with varying fractional precision and offsets; normalizing here keeps
// every rollup path emitting the identical text for the same instant.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		// Graph occasionally omits the offset on legacy fields.
		parsed, err = time.Parse("2006-01-02T15:04:05", strings.TrimSuffix(raw, "Z"))
		if err != nil {
			return err
		}
		parsed = parsed.UTC()
	}
	t.Time = parsed
	return nil
}
