package entity

// SegmentBucket is one labelled slice of a histogram or pie. Label order is
// preserved from the source because legend and axis order depend on it.
type SegmentBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ChurnCandidate is a user with a high historical engagement streak but no
// recent activity. Read-only, ephemeral per fetch.
type ChurnCandidate struct {
	UserEmail       string `json:"user_email"`
	PeakStreak      int    `json:"peak_streak"`
	LastInteraction string `json:"last_interaction,omitempty"` // empty means never seen
}

// VIPUser is a high-engagement user surfaced on the analytics page
type VIPUser struct {
	UserEmail      string  `json:"user_email"`
	CurrentCredits float64 `json:"current_credits"`
	TotalUsage     int     `json:"total_usage"`
}
