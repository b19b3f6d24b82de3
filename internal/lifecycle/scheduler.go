package lifecycle

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// jobScheduler runs a recurring job at a fixed interval until stopped.
// Stop must be safe to call from inside a running job and from multiple
// goroutines; the returned context is done once in-flight jobs drain.
type jobScheduler interface {
	Every(interval time.Duration, job func())
	Stop() context.Context
}

// cronScheduler is the production scheduler, one cron instance per
// lifecycle. SkipIfStillRunning keeps a slow tick (e.g. a hanging
// upstream fetch) from piling up behind itself.
type cronScheduler struct {
	c *cron.Cron
}

func newCronScheduler() jobScheduler {
	return &cronScheduler{
		c: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
}

func (s *cronScheduler) Every(interval time.Duration, job func()) {
	s.c.Schedule(cron.Every(interval), cron.FuncJob(job))
	s.c.Start()
}

func (s *cronScheduler) Stop() context.Context {
	return s.c.Stop()
}
