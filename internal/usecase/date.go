package usecase

import (
	"encoding/json"
	"time"

	"clientaccount/internal/errors"
)

var dateLayouts = []string{time.DateOnly, time.RFC3339Nano}

// Date is a calendar date that binds from either "2006-01-02" or an RFC 3339
// timestamp and renders as "2006-01-02".
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves d unset.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "date must be a JSON string")
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			d.Time = parsed
			return nil
		}
	}

	return errors.Errorf("date %q is neither YYYY-MM-DD nor RFC 3339", raw)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.Format(time.DateOnly))
}
