package bandit

import "time"

// Time-of-day buckets. Statistics are partitioned per bucket so a profile
// learns separate preferences in the morning, afternoon and evening.
const (
	BucketMorning   = "morning"
	BucketAfternoon = "afternoon"
	BucketEvening   = "evening"
)

// TimeBucket maps a wall-clock hour (host-local) to its serving bucket:
// [5,12) morning, [12,18) afternoon, evening otherwise.
func TimeBucket(t time.Time) string {
	h := t.Hour()
	switch {
	case h >= 5 && h < 12:
		return BucketMorning
	case h >= 12 && h < 18:
		return BucketAfternoon
	default:
		return BucketEvening
	}
}

// ComposeContextKey derives the composite key statistics are partitioned
// under: profile hash plus the current time bucket.
//
// Known limitation: feedback recomputes the bucket at feedback time, so an
// exposure just before a bucket boundary whose click arrives just after it
// will not find its stat entry.
func ComposeContextKey(profileHash string, now time.Time) string {
	return profileHash + "_" + TimeBucket(now)
}
