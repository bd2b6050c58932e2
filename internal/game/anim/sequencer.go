// Package anim drives per-actor animation playback for battle. Each
// creature gets one Sequencer: a small state machine that accepts play
// requests, runs their timed waits on real timers, and emits the two
// side-channel events the battle flow synchronizes on, the damage frame
// and playback completion.
package anim

import (
	"log/slog"
	"sync"
	"time"
)

// State is the playback state of one actor.
type State int8

const (
	StateIdle      State = iota
	StatePlaying         // a requested clip is running
	StateReturning       // clip finished, settling back to idle
	StateDead            // terminal until an explicit revive
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StateReturning:
		return "ReturningToIdle"
	case StateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Request asks the sequencer to play one clip. Windup is the delay from
// playback start to the damage frame; a Windup of 0 plays the clip without
// emitting a damage frame, which is what reaction and victory clips want.
type Request struct {
	Trigger  Trigger
	Windup   time.Duration
	Duration time.Duration
}

// EventFunc observes a sequencer event for one actor.
type EventFunc func(actorID string, trigger Trigger)

// Sequencer is the per-actor playback state machine.
//
// A new request while one is already playing cancels the in-flight waits
// and restarts timing for the new request; the superseded request's events
// never fire. A defeat signal preempts everything and parks the actor in
// StateDead until Revive. Completion fires exactly once per request that
// runs to the end of its duration.
type Sequencer struct {
	mu      sync.Mutex
	actorID string
	settle  time.Duration

	state   State
	trigger Trigger

	// gen invalidates stale timer callbacks: every transition that cancels
	// pending waits bumps it, and a callback fires only if its generation
	// is still current.
	gen uint64

	windupTimer   *time.Timer
	durationTimer *time.Timer
	settleTimer   *time.Timer

	completeSubs    []EventFunc
	damageFrameSubs []EventFunc
}

// NewSequencer creates an idle sequencer for one actor. The settle delay
// is the pause between a clip finishing and the actor reading as idle
// again.
func NewSequencer(actorID string, settle time.Duration) *Sequencer {
	return &Sequencer{actorID: actorID, settle: settle, state: StateIdle}
}

// ActorID returns the creature this sequencer animates.
func (s *Sequencer) ActorID() string { return s.actorID }

// State returns the current playback state.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Trigger returns the clip currently playing or settling, "" when idle,
// and TriggerFaint while dead.
func (s *Sequencer) Trigger() Trigger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trigger
}

// OnComplete registers an observer for playback completion. Observers are
// called outside the sequencer lock, in registration order.
func (s *Sequencer) OnComplete(fn EventFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completeSubs = append(s.completeSubs, fn)
}

// OnDamageFrame registers an observer for the damage frame.
func (s *Sequencer) OnDamageFrame(fn EventFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.damageFrameSubs = append(s.damageFrameSubs, fn)
}

// Play starts a clip, superseding whatever was playing. Returns false
// when the actor is dead; dead actors do not animate until revived.
// An unknown trigger degrades to the generic attack clip with a warning
// rather than rejecting the request.
func (s *Sequencer) Play(req Request) bool {
	if !Known(req.Trigger) {
		slog.Warn("unknown animation trigger, using attack",
			"actor", s.actorID,
			"trigger", string(req.Trigger))
		req.Trigger = TriggerAttack
	}
	if req.Duration <= 0 {
		req.Duration = time.Millisecond
	}

	s.mu.Lock()
	if s.state == StateDead {
		s.mu.Unlock()
		return false
	}

	s.cancelTimersLocked()
	s.gen++
	gen := s.gen
	s.state = StatePlaying
	s.trigger = req.Trigger

	if req.Windup > 0 {
		s.windupTimer = time.AfterFunc(req.Windup, func() { s.fireDamageFrame(gen) })
	}
	s.durationTimer = time.AfterFunc(req.Duration, func() { s.finishPlay(gen) })
	s.mu.Unlock()
	return true
}

// SignalDefeat preempts any running wait and parks the actor in StateDead.
// Pending damage-frame and completion events for the interrupted clip are
// dropped.
func (s *Sequencer) SignalDefeat() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTimersLocked()
	s.gen++
	s.state = StateDead
	s.trigger = TriggerFaint
}

// Revive returns a dead actor to StateIdle. Events queued before the
// defeat stay dropped; nothing replays. No-op unless dead.
func (s *Sequencer) Revive() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateDead {
		return
	}
	s.gen++
	s.state = StateIdle
	s.trigger = ""
}

// fireDamageFrame runs on the windup timer.
func (s *Sequencer) fireDamageFrame(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.state != StatePlaying {
		s.mu.Unlock()
		return
	}
	subs := make([]EventFunc, len(s.damageFrameSubs))
	copy(subs, s.damageFrameSubs)
	trigger := s.trigger
	s.mu.Unlock()

	for _, fn := range subs {
		fn(s.actorID, trigger)
	}
}

// finishPlay runs on the duration timer: emits completion and starts the
// settle wait back to idle.
func (s *Sequencer) finishPlay(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.state != StatePlaying {
		s.mu.Unlock()
		return
	}
	s.state = StateReturning
	trigger := s.trigger
	subs := make([]EventFunc, len(s.completeSubs))
	copy(subs, s.completeSubs)
	if s.settle > 0 {
		s.settleTimer = time.AfterFunc(s.settle, func() { s.settleDone(gen) })
	} else {
		s.state = StateIdle
		s.trigger = ""
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(s.actorID, trigger)
	}
}

// settleDone runs on the settle timer.
func (s *Sequencer) settleDone(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.state != StateReturning {
		return
	}
	s.state = StateIdle
	s.trigger = ""
}

// cancelTimersLocked stops every pending timer. Callers hold the lock;
// the generation bump makes any already-fired callback a no-op.
func (s *Sequencer) cancelTimersLocked() {
	if s.windupTimer != nil {
		s.windupTimer.Stop()
		s.windupTimer = nil
	}
	if s.durationTimer != nil {
		s.durationTimer.Stop()
		s.durationTimer = nil
	}
	if s.settleTimer != nil {
		s.settleTimer.Stop()
		s.settleTimer = nil
	}
}
