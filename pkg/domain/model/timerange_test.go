package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
)

func TestParseTimeRange(t *testing.T) {
	now := time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC)

	t.Run("explicit dates, end inclusive", func(t *testing.T) {
		r, err := model.ParseTimeRange("2023-01-01", "2023-12-31", now)
		gt.NoError(t, err).Required()
		gt.True(t, r.Start.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
		gt.True(t, r.End.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		gt.True(t, r.Contains(time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC)))
		gt.False(t, r.Contains(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		gt.Equal(t, 365, r.Days())
	})

	t.Run("defaults to the last 30 days", func(t *testing.T) {
		r, err := model.ParseTimeRange("", "", now)
		gt.NoError(t, err).Required()
		gt.Equal(t, model.DefaultRangeDays, r.Days())
		gt.True(t, r.Contains(now))
		gt.True(t, r.Start.Equal(time.Date(2024, 4, 21, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("single day", func(t *testing.T) {
		r, err := model.ParseTimeRange("2024-02-29", "2024-02-29", now)
		gt.NoError(t, err).Required()
		gt.Equal(t, 1, r.Days())
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := model.ParseTimeRange("2024-02-02", "2024-02-01", now)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidDateRange))
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := model.ParseTimeRange("01/02/2024", "", now)
		gt.True(t, errors.Is(err, model.ErrInvalidDateRange))

		_, err = model.ParseTimeRange("", "tomorrow", now)
		gt.True(t, errors.Is(err, model.ErrInvalidDateRange))
	})
}
