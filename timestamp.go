package dropbox

import (
	"encoding/json"
	"time"

	"github.com/go-openapi/strfmt"
)

// TimestampFormat is the layout of timestamps on the wire.
const TimestampFormat = "2006-01-02T15:04:05Z"

// Timestamp is a UTC instant with second precision, as the API exchanges
// them (e.g. "2015-05-12T15:50:38Z").
type Timestamp time.Time

// NewTimestamp truncates t to the second.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UTC().Truncate(time.Second))
}

// Time returns the timestamp as a time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) String() string {
	return time.Time(t).UTC().Format(TimestampFormat)
}

// MarshalJSON writes the timestamp in TimestampFormat.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts any RFC 3339 date-time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var dt strfmt.DateTime
	if err := dt.UnmarshalJSON(data); err != nil {
		return err
	}
	*t = Timestamp(time.Time(dt).UTC())
	return nil
}
