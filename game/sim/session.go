// Package sim orchestrates one simulation run: a collector, a set of
// pursuers and the shared grid, advanced tick by tick until the collector
// is caught or every reward is collected.
package sim

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BonheurByiringiro/PACMAN-Game/game/agent"
	"github.com/BonheurByiringiro/PACMAN-Game/game/grid"
	"github.com/BonheurByiringiro/PACMAN-Game/game/search"
)

const rewardScore = 10

// stallThreshold is how many consecutive ticks the collector may sit on
// the same cell before the session flags it as stalled.
const stallThreshold = 120

// State is the lifecycle state of a session.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
	StateTimedOut
)

func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateTimedOut:
		return "timed_out"
	default:
		return "playing"
	}
}

// PursuerSpawn places one pursuer.
type PursuerSpawn struct {
	Start   grid.Position
	Cadence int
}

// Options configures a session. Zero values fall back to the defaults
// noted per field.
type Options struct {
	CollectorStart   grid.Position
	CollectorCadence int // default 15
	Algorithm        search.Algorithm
	Strategy         agent.Strategy
	DangerRadius     int // 0 = agent default
	RecalcEvery      int // 0 = agent default
	Difficulty       string // pursuer tier, resolver default applies
	Pursuers         []PursuerSpawn
	Seed             int64 // 0 = time-seeded randomness
	MaxTicks         int   // 0 = run until won or lost
}

// Session owns the grid and both agent kinds for one run and implements
// the per-tick control flow: threats to the collector, collector step,
// pursuer retarget and step, then collision and win checks. The agents
// themselves are single-threaded; the session mutex is the only
// serialization point, so Tick and the accessors are safe to call from
// scheduler goroutines.
type Session struct {
	ID string

	mu        sync.Mutex
	grid      *grid.Grid
	collector *agent.Collector
	pursuers  []*agent.Pursuer

	state    State
	ticks    int
	maxTicks int

	lastPos   grid.Position
	stalled   int
	stallWarn *rate.Limiter

	done   chan struct{}
	logger *zap.Logger
}

// New builds a session from the given grid and options.
func New(g *grid.Grid, opts Options, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cadence := opts.CollectorCadence
	if cadence < 1 {
		cadence = 15
	}

	searcher := search.NewSearcher(opts.Algorithm)
	if opts.Seed != 0 {
		searcher.Rand = rand.New(rand.NewSource(opts.Seed))
	}
	collector, err := agent.NewCollector(g, opts.CollectorStart, searcher, cadence, logger)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	collector.SetStrategy(opts.Strategy)
	if opts.DangerRadius > 0 {
		collector.SetDangerRadius(opts.DangerRadius)
	}
	if opts.RecalcEvery > 0 {
		collector.SetRecalcEvery(opts.RecalcEvery)
	}

	pursuers := make([]*agent.Pursuer, 0, len(opts.Pursuers))
	for i, spawn := range opts.Pursuers {
		ps := search.NewSearcher(search.Resolve(opts.Difficulty))
		if opts.Seed != 0 {
			ps.Rand = rand.New(rand.NewSource(opts.Seed + int64(i) + 1))
		}
		p, err := agent.NewPursuer(g, spawn.Start, spawn.Cadence, ps, logger)
		if err != nil {
			return nil, fmt.Errorf("sim: pursuer %d: %w", i, err)
		}
		pursuers = append(pursuers, p)
	}

	s := &Session{
		ID:        uuid.NewString(),
		grid:      g,
		collector: collector,
		pursuers:  pursuers,
		state:     StatePlaying,
		maxTicks:  opts.MaxTicks,
		lastPos:   collector.Position(),
		stallWarn: rate.NewLimiter(rate.Every(5*time.Second), 1),
		done:      make(chan struct{}),
		logger:    logger,
	}
	logger.Info("session created",
		zap.String("session_id", s.ID),
		zap.Int("rewards", collector.TotalRewards()),
		zap.Int("pursuers", len(pursuers)),
		zap.String("difficulty", search.ParseDifficulty(opts.Difficulty).String()),
		zap.String("algorithm", opts.Algorithm.String()),
		zap.String("strategy", opts.Strategy.String()))
	return s, nil
}

// State returns the session lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Ticks returns how many ticks have run.
func (s *Session) Ticks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// Score is 10 points per collected reward.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collector.Collected() * rewardScore
}

// Collector exposes the collector agent (read-mostly; used by hosts and
// tests).
func (s *Session) Collector() *agent.Collector { return s.collector }

// Pursuers exposes the pursuer agents.
func (s *Session) Pursuers() []*agent.Pursuer { return s.pursuers }

// Done is closed when the session reaches a terminal state.
func (s *Session) Done() <-chan struct{} { return s.done }

// Tick runs one simulated frame. No-op once the session is terminal.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePlaying {
		return
	}
	s.ticks++

	threats := make([]grid.Position, len(s.pursuers))
	for i, p := range s.pursuers {
		threats[i] = p.Position()
	}
	s.collector.UpdateThreats(threats)
	s.collector.Step()

	for _, p := range s.pursuers {
		p.SetTarget(s.collector.Position())
		p.Step()
	}

	if s.caught() {
		s.finish(StateLost)
		return
	}
	if s.collector.AllRewardsCollected() {
		s.finish(StateWon)
		return
	}
	if s.maxTicks > 0 && s.ticks >= s.maxTicks {
		s.finish(StateTimedOut)
		return
	}
	s.trackStall()
}

// LogStatus emits a progress snapshot; wired to a periodic scheduler task
// by the host.
func (s *Session) LogStatus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos := s.collector.Position()
	s.logger.Info("session status",
		zap.String("session_id", s.ID),
		zap.String("state", s.state.String()),
		zap.Int("ticks", s.ticks),
		zap.Int("score", s.collector.Collected()*rewardScore),
		zap.Int("collected", s.collector.Collected()),
		zap.Int("total", s.collector.TotalRewards()),
		zap.Int("row", pos.Row), zap.Int("col", pos.Col))
}

func (s *Session) caught() bool {
	for _, p := range s.pursuers {
		if p.Position() == s.collector.Position() {
			return true
		}
	}
	return false
}

func (s *Session) finish(state State) {
	s.state = state
	pos := s.collector.Position()
	s.logger.Info("session finished",
		zap.String("session_id", s.ID),
		zap.String("state", state.String()),
		zap.Int("ticks", s.ticks),
		zap.Int("score", s.collector.Collected()*rewardScore),
		zap.Int("collected", s.collector.Collected()),
		zap.Int("total", s.collector.TotalRewards()),
		zap.Int("row", pos.Row), zap.Int("col", pos.Col))
	close(s.done)
}

// trackStall warns (throttled) when the collector has not moved for a
// while; this usually means every remaining reward is unreachable.
func (s *Session) trackStall() {
	if s.collector.Position() != s.lastPos {
		s.lastPos = s.collector.Position()
		s.stalled = 0
		return
	}
	s.stalled++
	if s.stalled >= stallThreshold && s.stallWarn.Allow() {
		s.logger.Warn("collector has not moved",
			zap.String("session_id", s.ID),
			zap.Int("stalled_ticks", s.stalled),
			zap.Int("row", s.lastPos.Row), zap.Int("col", s.lastPos.Col))
	}
}
