package asciiart

import "time"

// Clock supplies the time used to measure processing time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
