package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zemuria/ops-console/internal/domain/entity"
)

func TestSegmentationService(t *testing.T) {
	s := NewSegmentationService()

	t.Run("timezone histogram preserves source order", func(t *testing.T) {
		in := []entity.SegmentBucket{
			{Label: "Asia/Kolkata", Count: 120},
			{Label: "America/New_York", Count: 45},
			{Label: "Europe/Berlin", Count: 12},
		}

		out := s.TimezoneHistogram(in)
		assert.Equal(t, in, out)
	})

	t.Run("timezone histogram on nil yields empty", func(t *testing.T) {
		out := s.TimezoneHistogram(nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("zip truncates to shorter sequence", func(t *testing.T) {
		out := s.ZipBuckets([]string{"A", "B", "C"}, []int{1, 2})

		assert.Equal(t, []entity.SegmentBucket{
			{Label: "A", Count: 1},
			{Label: "B", Count: 2},
		}, out)
	})

	t.Run("zip with more counts than labels", func(t *testing.T) {
		out := s.ZipBuckets([]string{"Light"}, []int{3, 9, 27})
		assert.Equal(t, []entity.SegmentBucket{{Label: "Light", Count: 3}}, out)
	})

	t.Run("zip of empty sequences", func(t *testing.T) {
		out := s.ZipBuckets(nil, nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("churn candidates pass through", func(t *testing.T) {
		in := []entity.ChurnCandidate{
			{UserEmail: "a@example.com", PeakStreak: 40},
			{UserEmail: "b@example.com", PeakStreak: 12, LastInteraction: "2026-07-01"},
		}
		assert.Equal(t, in, s.ChurnCandidates(in))
	})

	t.Run("nil churn list means no churn risk", func(t *testing.T) {
		out := s.ChurnCandidates(nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}
