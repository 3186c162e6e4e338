package experience

import (
	"fmt"
	"time"

	"github.com/skyyrose/showroom/internal/wpajax"
)

// Countdown renders the time remaining until a pre-order launch, corrected
// for local clock skew against the server time reported at fetch.
type Countdown struct {
	launch time.Time
	skew   time.Duration // local clock minus server clock at fetch time
	status string
}

// NewCountdown builds a countdown from the server's payload. localNow is
// the local clock reading taken when the payload arrived.
func NewCountdown(cfg *wpajax.CountdownConfig, localNow time.Time) *Countdown {
	server := time.Unix(cfg.ServerTimeUnix, 0)
	return &Countdown{
		launch: time.Unix(cfg.LaunchDateUnix, 0),
		skew:   localNow.Sub(server),
		status: cfg.Status,
	}
}

// Remaining returns the skew-corrected time until launch, clamped at zero.
func (c *Countdown) Remaining(now time.Time) time.Duration {
	d := c.launch.Sub(now.Add(-c.skew))
	if d < 0 {
		return 0
	}
	return d
}

// Status returns the pre-order status, rolling blooming_soon over to
// now_blooming once the corrected countdown reaches zero.
func (c *Countdown) Status(now time.Time) string {
	if c.status == wpajax.StatusBloomingSoon && c.Remaining(now) == 0 {
		return wpajax.StatusNowBlooming
	}
	return c.status
}

// Label formats the remaining time as "DDd HHh MMm SSs".
func (c *Countdown) Label(now time.Time) string {
	d := c.Remaining(now)
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	mins := int(d / time.Minute)
	d -= time.Duration(mins) * time.Minute
	secs := int(d / time.Second)
	return fmt.Sprintf("%02dd %02dh %02dm %02ds", days, hours, mins, secs)
}
