// Package running reports which dock items have a live process.
package running

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/phanxgames/dock"
	"github.com/shirou/gopsutil/v4/process"
)

// Set holds normalized executable paths of running processes.
type Set map[string]struct{}

// normalize makes paths comparable case-insensitively.
func normalize(p string) string {
	return strings.ToLower(filepath.Clean(p))
}

// NewSet builds a Set from executable paths.
func NewSet(exes ...string) Set {
	s := make(Set, len(exes))
	for _, e := range exes {
		if e != "" {
			s[normalize(e)] = struct{}{}
		}
	}
	return s
}

// Contains reports whether exe is running.
func (s Set) Contains(exe string) bool {
	if exe == "" {
		return false
	}
	_, ok := s[normalize(exe)]
	return ok
}

// Flags returns one running flag per item. Separators, special items and
// items without a path are never running.
func (s Set) Flags(items []dock.Item) []bool {
	flags := make([]bool, len(items))
	for i, it := range items {
		if it.IsSeparator() || it.IsSpecial() {
			continue
		}
		flags[i] = s.Contains(it.Path)
	}
	return flags
}

// Snapshot lists the executables of all processes the caller may inspect.
// Processes whose executable cannot be read are skipped.
func Snapshot(ctx context.Context) (Set, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	s := make(Set, len(procs))
	for _, p := range procs {
		exe, err := p.ExeWithContext(ctx)
		if err != nil || exe == "" {
			continue
		}
		s[normalize(exe)] = struct{}{}
	}
	return s, nil
}

// Poller takes a Snapshot on an interval and publishes it.
type Poller struct {
	interval time.Duration
	snapshot func(context.Context) (Set, error)
	out      chan Set
}

// NewPoller creates a poller sampling every interval.
func NewPoller(interval time.Duration) *Poller {
	if interval <= 0 {
		interval = dock.RunningPollInterval
	}
	return &Poller{interval: interval, snapshot: Snapshot, out: make(chan Set, 1)}
}

// Updates delivers the latest snapshot. Stale snapshots are replaced rather
// than queued.
func (p *Poller) Updates() <-chan Set {
	return p.out
}

// Run samples immediately and then on every tick until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		p.sample(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *Poller) sample(ctx context.Context) {
	s, err := p.snapshot(ctx)
	if err != nil {
		if ctx.Err() == nil {
			dock.Logger().Warn("process snapshot failed", "err", err)
		}
		return
	}
	// Drop an unread snapshot so the newest one wins.
	select {
	case <-p.out:
	default:
	}
	p.out <- s
}
