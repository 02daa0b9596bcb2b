package dropbox_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomblancdev/dropbox-go"
)

func TestTimestamp_JSON(t *testing.T) {
	ts := dropbox.NewTimestamp(time.Date(2015, 5, 12, 15, 50, 38, 123456789, time.UTC))

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2015-05-12T15:50:38Z"`, string(data))

	var back dropbox.Timestamp
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, ts.Time().Equal(back.Time()))
}

// TestTimestamp_Offset verifies other RFC 3339 offsets are normalised to UTC.
func TestTimestamp_Offset(t *testing.T) {
	var ts dropbox.Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2015-05-12T17:50:38+02:00"`), &ts))

	assert.Equal(t, "2015-05-12T15:50:38Z", ts.String())
}

func TestTimestamp_Invalid(t *testing.T) {
	var ts dropbox.Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}
