package simulation

import (
	"log"
	"sync"
	"time"
)

// Scheduler runs the simulator on a fixed interval. It is owned by the
// process entry point, not the web layer, so it can be started and
// stopped independently.
type Scheduler struct {
	sim      *Simulator
	interval time.Duration

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewScheduler creates a scheduler that runs sim every interval.
func NewScheduler(sim *Simulator, interval time.Duration) *Scheduler {
	return &Scheduler{
		sim:      sim,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the ticking loop in its own goroutine.
func (s *Scheduler) Start() {
	go s.run()
	log.Printf("purchase scheduler started, interval %s", s.interval)
}

// Stop halts the loop and waits for it to exit. Safe to call twice.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
}

func (s *Scheduler) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.sim.Run(); err != nil {
				// Errors are logged once per tick, never fatal
				log.Printf("scheduled purchase simulation failed: %v", err)
			}
		case <-s.stop:
			log.Println("purchase scheduler stopped")
			return
		}
	}
}
