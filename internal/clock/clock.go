package clock

import "time"

// Clock abstracts time for repositories so createdAt ordering is testable.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
