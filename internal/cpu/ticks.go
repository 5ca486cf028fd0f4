package cpu

import "time"

var epoch = time.Now()

// Ticks returns a monotonic nanosecond reading for micro-benchmarks.
func Ticks() int64 {
	return int64(time.Since(epoch))
}

// TicksSince returns the nanoseconds elapsed since start.
func TicksSince(start int64) int64 {
	return Ticks() - start
}
