package health

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/period/clock"
	"github.com/ErlanBelekov/period/relative"
)

// ClockPinger fails when the clock reads outside the years offsets can
// represent; every offset would overflow in that state.
type ClockPinger struct {
	Clock clock.Clock
}

func (p ClockPinger) Ping(_ context.Context) error {
	if y := p.Clock.Now().Year(); y < relative.MinYear || y > relative.MaxYear {
		return fmt.Errorf("clock reads year %d, outside %d..%d", y, relative.MinYear, relative.MaxYear)
	}
	return nil
}
