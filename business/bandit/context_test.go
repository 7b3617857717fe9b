package bandit

import (
	"testing"
	"time"
)

func TestTimeBucket(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, BucketEvening},
		{4, BucketEvening},
		{5, BucketMorning},
		{11, BucketMorning},
		{12, BucketAfternoon},
		{17, BucketAfternoon},
		{18, BucketEvening},
		{23, BucketEvening},
	}

	for _, tc := range cases {
		ts := time.Date(2024, 3, 15, tc.hour, 30, 0, 0, time.Local)
		if got := TimeBucket(ts); got != tc.want {
			t.Errorf("TimeBucket(hour=%d) = %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestComposeContextKey(t *testing.T) {
	morning := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	evening := time.Date(2024, 3, 15, 21, 0, 0, 0, time.Local)

	if got := ComposeContextKey("user_abc", morning); got != "user_abc_morning" {
		t.Errorf("ComposeContextKey morning = %q", got)
	}
	if got := ComposeContextKey("user_abc", evening); got != "user_abc_evening" {
		t.Errorf("ComposeContextKey evening = %q", got)
	}

	// Same profile, different times of day: different learning partitions.
	if ComposeContextKey("user_abc", morning) == ComposeContextKey("user_abc", evening) {
		t.Error("expected distinct context keys across time buckets")
	}
}
