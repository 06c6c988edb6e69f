package service

import "github.com/zemuria/ops-console/internal/domain/entity"

// SegmentationService normalizes the three independently shaped user
// segmentation payloads into uniform display-ready sequences. Every
// normalization is total: sparse or nil input yields an empty sequence,
// never an error.
type SegmentationService struct{}

// NewSegmentationService creates a new segmentation service
func NewSegmentationService() *SegmentationService {
	return &SegmentationService{}
}

// TimezoneHistogram passes the timezone buckets through in source order.
// The backend already ranks them; re-sorting would break the axis order.
func (s *SegmentationService) TimezoneHistogram(buckets []entity.SegmentBucket) []entity.SegmentBucket {
	if buckets == nil {
		return []entity.SegmentBucket{}
	}
	return buckets
}

// ZipBuckets zips two parallel label/count sequences index-wise into
// buckets. Mismatched lengths produce only the overlapping prefix; it never
// indexes past the shorter sequence.
func (s *SegmentationService) ZipBuckets(labels []string, counts []int) []entity.SegmentBucket {
	n := len(labels)
	if len(counts) < n {
		n = len(counts)
	}

	buckets := make([]entity.SegmentBucket, 0, n)
	for i := 0; i < n; i++ {
		buckets = append(buckets, entity.SegmentBucket{Label: labels[i], Count: counts[i]})
	}
	return buckets
}

// ChurnCandidates normalizes the churn-risk list for display. The one-level
// unwrap of the backend's inconsistent nesting happens at the decode
// boundary; here a wrapped-empty and a bare-empty result are the same
// "no churn risk".
func (s *SegmentationService) ChurnCandidates(list []entity.ChurnCandidate) []entity.ChurnCandidate {
	if list == nil {
		return []entity.ChurnCandidate{}
	}
	return list
}
