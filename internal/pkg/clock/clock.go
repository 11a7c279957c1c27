// Package clock provides the wall clock used in production wiring.
package clock

import "time"

// System implements ports.Clock in UTC.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }
