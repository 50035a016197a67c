package mock

import (
	"context"

	"github.com/CarlosDimare/soccerwiki"
)

var _ soccerwiki.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of soccerwiki.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, host)
}
