package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "plain date", input: "2025-01-10", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "utc timestamp", input: "2025-01-10T23:30:00Z", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "positive offset keeps local day", input: "2025-01-10T00:00:00+05:30", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "negative offset keeps local day", input: "2025-01-10T22:00:00-05:00", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("10/01/2025")
	assert.Error(t, err)
}
