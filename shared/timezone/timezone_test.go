package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/shared/timezone"
)

func TestNowUsesAppLocation(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.Equal(t, timezone.GetLocation(), timezone.Now().Location())
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse(time.DateOnly, "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", timezone.Format(parsed, time.DateOnly))

	_, err = timezone.Parse(time.DateOnly, "01/01/2024")
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	moment := time.Date(2025, 3, 14, 17, 45, 12, 0, timezone.GetLocation())

	start := timezone.StartOfDay(moment)

	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, timezone.GetLocation()), start)
}

func TestStartOfMonth(t *testing.T) {
	moment := time.Date(2025, 3, 14, 17, 45, 12, 0, timezone.GetLocation())

	start := timezone.StartOfMonth(moment)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, timezone.GetLocation()), start)
}
