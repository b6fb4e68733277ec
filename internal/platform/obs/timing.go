package obs

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Time logs the duration of the named stage when the returned func is called.
// Use as: defer obs.Time(logger, "load.instance")(&err)
func Time(logger log.Logger, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		// Failures are reported to the user by the caller.
		if errp != nil && *errp != nil {
			level.Debug(logger).Log("op", name, "dur", dur.Milliseconds(), "err", *errp)
			return
		}
		level.Debug(logger).Log("op", name, "dur", dur.Milliseconds())
	}
}
