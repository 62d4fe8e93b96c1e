package hal

import "time"

type hostTime struct {
	start time.Time
}

func newHostTime() *hostTime {
	return &hostTime{start: time.Now()}
}

func (t *hostTime) Millis() uint32 {
	return uint32(time.Since(t.start) / time.Millisecond)
}
