package visits

import (
	"encoding/json"
	"time"
)

// EpochMillisUnknown is returned for missing or unparseable dates. It is the
// largest integer the backend's JSON number space can represent exactly, so
// unknown dates always sort to the end of an ascending order.
const EpochMillisUnknown int64 = 1<<53 - 1

// The backend is not consistent about how it serializes dates: some endpoints
// return ISO-8601 strings, others return the raw Firestore timestamp object
// with a _seconds field. FlexTime accepts both, plus null and anything else,
// and normalizes to epoch milliseconds for ordering. Decoding never fails;
// unexpected shapes become the unknown sentinel.
type FlexTime struct {
	t     time.Time
	known bool
}

var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{t: t.UTC(), known: true}
}

// EpochMillis normalizes to milliseconds since the epoch, or
// EpochMillisUnknown when no date was decoded.
func (f FlexTime) EpochMillis() int64 {
	if !f.known {
		return EpochMillisUnknown
	}
	return f.t.UnixMilli()
}

// Time reports the decoded time and whether one is present.
func (f FlexTime) Time() (time.Time, bool) {
	return f.t, f.known
}

func (f *FlexTime) UnmarshalJSON(data []byte) error {
	*f = FlexTime{}

	var value string
	if err := json.Unmarshal(data, &value); err == nil {
		for _, layout := range stringLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				*f = FlexTime{t: t.UTC(), known: true}
				return nil
			}
		}
		return nil
	}

	var stamp struct {
		Seconds *float64 `json:"_seconds"`
	}
	if err := json.Unmarshal(data, &stamp); err == nil && stamp.Seconds != nil {
		*f = FlexTime{t: time.UnixMilli(int64(*stamp.Seconds * 1000)).UTC(), known: true}
	}
	return nil
}

func (f FlexTime) MarshalJSON() ([]byte, error) {
	if !f.known {
		return []byte("null"), nil
	}
	return json.Marshal(f.t.Format(time.RFC3339))
}
