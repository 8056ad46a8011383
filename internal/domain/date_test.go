package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_ParseFormatRoundtrip(t *testing.T) {
	dates := []Date{
		NewDate(2020, time.January, 1),
		NewDate(2020, time.February, 29),
		NewDate(1999, time.December, 31),
	}

	for _, d := range dates {
		t.Run(d.String(), func(t *testing.T) {
			parsed, err := ParseDate(d.String())
			require.NoError(t, err)
			assert.True(t, parsed.Equal(d.Time))
		})
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2021, time.March, 5)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2021-03-05"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d, back)
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "2020-13-01", "01/02/2020", "2020-01-01T00:00:00"} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2021-01-02T03:04:05Z", time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"2021-01-02T03:04:05", time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"2021-01-02T03:04:05.123456", time.Date(2021, 1, 2, 3, 4, 5, 123456000, time.UTC)},
		{"2021-01-02 03:04:05", time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}

	_, err := ParseTimestamp("yesterday")
	assert.Error(t, err)
}
