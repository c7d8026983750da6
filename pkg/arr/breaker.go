package arr

import (
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrUpstreamDown is returned by [Breaker.Do] while the breaker is open:
// the upstream instance failed repeatedly and the cooldown has not yet
// elapsed, so the request was rejected without being sent.
var ErrUpstreamDown = errors.New("upstream unavailable: circuit open")

// BreakerState is the operating mode of a [Breaker].
type BreakerState int

const (
	// BreakerClosed is the normal state; requests pass through.
	BreakerClosed BreakerState = iota

	// BreakerOpen rejects every request with [ErrUpstreamDown] until the
	// cooldown elapses.
	BreakerOpen

	// BreakerProbing lets a limited number of requests through after the
	// cooldown to test whether the upstream recovered.
	BreakerProbing
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerProbing:
		return "probing"
	default:
		return "unknown"
	}
}

// BreakerConfig holds the tuning knobs for a [Breaker].
type BreakerConfig struct {
	// Name labels log messages, usually the upstream base URL.
	Name string

	// MaxFailures is the number of consecutive failures before the breaker
	// opens. Default: 5.
	MaxFailures int

	// Cooldown is how long the breaker stays open before probing the
	// upstream again. Default: 30s.
	Cooldown time.Duration

	// ProbeMax is how many probe requests may pass while probing before the
	// breaker decides to close or re-open. Default: 3.
	ProbeMax int
}

// Breaker guards an upstream *arr instance with the three-state circuit
// breaker pattern. When the instance is down, tool calls fail fast with
// [ErrUpstreamDown] instead of each waiting out a connect timeout. It never
// retries; it only rejects. Safe for concurrent use.
type Breaker struct {
	name        string
	maxFailures int
	cooldown    time.Duration
	probeMax    int

	mu          sync.Mutex
	state       BreakerState
	failures    int
	lastFailure time.Time
	probes      int
	probeFails  int
}

// NewBreaker creates a [Breaker], replacing zero config fields with the
// defaults.
func NewBreaker(cfg BreakerConfig) *Breaker {
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = 5
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 30 * time.Second
	}
	if cfg.ProbeMax <= 0 {
		cfg.ProbeMax = 3
	}
	return &Breaker{
		name:        cfg.Name,
		maxFailures: cfg.MaxFailures,
		cooldown:    cfg.Cooldown,
		probeMax:    cfg.ProbeMax,
		state:       BreakerClosed,
	}
}

// Do runs fn if the breaker allows it, recording the outcome. In the open
// state it returns [ErrUpstreamDown] without calling fn; while probing only
// a limited number of calls pass.
func (b *Breaker) Do(fn func() error) error {
	b.mu.Lock()
	switch b.state {
	case BreakerOpen:
		if time.Since(b.lastFailure) < b.cooldown {
			b.mu.Unlock()
			return ErrUpstreamDown
		}
		b.state = BreakerProbing
		b.probes = 0
		b.probeFails = 0
		slog.Info("upstream breaker probing", "upstream", b.name)

	case BreakerProbing:
		if b.probes >= b.probeMax {
			// Probe budget spent, stay open until a probe outcome lands.
			b.mu.Unlock()
			return ErrUpstreamDown
		}
	}

	probing := b.state == BreakerProbing
	if probing {
		b.probes++
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.onFailure(probing)
	} else {
		b.onSuccess(probing)
	}
	return err
}

// onFailure must be called with b.mu held.
func (b *Breaker) onFailure(probing bool) {
	b.lastFailure = time.Now()

	if probing {
		b.probeFails++
		// One failed probe re-opens immediately.
		b.state = BreakerOpen
		b.failures = b.maxFailures
		slog.Warn("upstream breaker re-opened", "upstream", b.name)
		return
	}

	b.failures++
	if b.failures >= b.maxFailures {
		b.state = BreakerOpen
		slog.Warn("upstream breaker opened",
			"upstream", b.name,
			"consecutive_failures", b.failures)
	}
}

// onSuccess must be called with b.mu held.
func (b *Breaker) onSuccess(probing bool) {
	if probing {
		if b.probes-b.probeFails >= b.probeMax {
			b.state = BreakerClosed
			b.failures = 0
			b.probes = 0
			b.probeFails = 0
			slog.Info("upstream breaker closed", "upstream", b.name)
		}
		return
	}
	b.failures = 0
}

// State reports the breaker's state. An open breaker whose cooldown elapsed
// reports [BreakerProbing]; the transition itself happens on the next [Do].
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == BreakerOpen && time.Since(b.lastFailure) >= b.cooldown {
		return BreakerProbing
	}
	return b.state
}

// Reset forces the breaker back to closed, clearing all counters.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state = BreakerClosed
	b.failures = 0
	b.probes = 0
	b.probeFails = 0
}

// BreakerGroup hands out one [Breaker] per upstream base URL, so a tool call
// that overrides the connection never poisons the breaker of the default
// instance. The zero value is not usable; create one with [NewBreakerGroup].
type BreakerGroup struct {
	cfg BreakerConfig

	mu       sync.Mutex
	breakers map[string]*Breaker
}

// NewBreakerGroup creates a group whose breakers share cfg. The cfg.Name is
// ignored; each breaker is named after its upstream base URL.
func NewBreakerGroup(cfg BreakerConfig) *BreakerGroup {
	return &BreakerGroup{
		cfg:      cfg,
		breakers: make(map[string]*Breaker),
	}
}

// For returns the breaker guarding baseURL, creating it on first use.
func (g *BreakerGroup) For(baseURL string) *Breaker {
	g.mu.Lock()
	defer g.mu.Unlock()

	br, ok := g.breakers[baseURL]
	if !ok {
		cfg := g.cfg
		cfg.Name = baseURL
		br = NewBreaker(cfg)
		g.breakers[baseURL] = br
	}
	return br
}
