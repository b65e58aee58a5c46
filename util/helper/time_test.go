package helper_util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	helper_util "github.com/stockroom-app/api/util/helper"
)

func TestFormatTime(t *testing.T) {
	t.Run("FormatTime_FixedWidth", func(t *testing.T) {
		whole := time.Date(2026, 8, 30, 10, 0, 5, 0, time.UTC)
		fractional := time.Date(2026, 8, 30, 10, 0, 5, 123456789, time.UTC)

		assert.Equal(t, "2026-08-30T10:00:05.000000000Z", helper_util.FormatTime(whole))
		assert.Equal(t, "2026-08-30T10:00:05.123456789Z", helper_util.FormatTime(fractional))
		assert.Len(t, helper_util.FormatTime(whole), len(helper_util.FormatTime(fractional)))
	})

	t.Run("FormatTime_LexicographicOrderMatchesChronological", func(t *testing.T) {
		// Trailing fractional zeros are the hazard: a trimmed ".12345"
		// would sort after ".123456" even though it is earlier.
		earlier := time.Date(2026, 8, 30, 10, 0, 5, 123450000, time.UTC)
		later := time.Date(2026, 8, 30, 10, 0, 5, 123456000, time.UTC)

		assert.True(t, earlier.Before(later))
		assert.Less(t, helper_util.FormatTime(earlier), helper_util.FormatTime(later))
	})

	t.Run("FormatTime_RoundTripsThroughParseTime", func(t *testing.T) {
		original := time.Date(2026, 8, 30, 10, 0, 5, 123450000, time.UTC)

		parsed, err := helper_util.ParseTime(helper_util.FormatTime(original))

		assert.NoError(t, err)
		assert.True(t, parsed.Equal(original))
	})

	t.Run("FormatTime_NormalizesToUTC", func(t *testing.T) {
		zone := time.FixedZone("UTC+2", 2*60*60)
		local := time.Date(2026, 8, 30, 12, 0, 5, 0, zone)

		assert.Equal(t, "2026-08-30T10:00:05.000000000Z", helper_util.FormatTime(local))
	})
}
