package battle

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/velrin/bestiago/internal/config"
	"github.com/velrin/bestiago/internal/data"
	"github.com/velrin/bestiago/internal/game/anim"
	"github.com/velrin/bestiago/internal/game/progression"
	"github.com/velrin/bestiago/internal/model"
	"github.com/velrin/bestiago/internal/random"
)

var tracer = otel.Tracer("github.com/velrin/bestiago/internal/game/battle")

// Side identifies which team a creature fights on.
type Side int8

const (
	SideNone Side = iota
	SideAllies
	SideEnemies
)

func (s Side) String() string {
	switch s {
	case SideAllies:
		return "Allies"
	case SideEnemies:
		return "Enemies"
	default:
		return "None"
	}
}

// ErrSessionFinished rejects actions after one side has been wiped out.
var ErrSessionFinished = fmt.Errorf("battle already finished")

// minReactTime keeps damage reactions visible even under extreme timing
// hints.
const minReactTime = 100 * time.Millisecond

// Session runs one battle between two teams. It serializes actions: one
// technique use runs to completion, resolution through playback through
// HP application, before the next begins. Each creature's sequencer still
// times its own playback concurrently, so multi-target reactions animate
// in parallel.
type Session struct {
	id   string
	bal  config.Balance
	src  random.Source
	prog *progression.Engine

	resolver *Resolver
	usage    *UsageTracker

	// actMu serializes PerformAction and EndTurn.
	actMu sync.Mutex

	mu         sync.RWMutex
	byID       map[string]*model.Creature
	sides      map[string]Side
	allies     []*model.Creature
	enemies    []*model.Creature
	seqs       map[string]*anim.Sequencer
	turn       int32
	winner     Side
	lastActive time.Time

	finished atomic.Bool

	// Pending waits armed by PerformAction before a playback starts, so
	// sequencer events cannot be lost to a race.
	pendMu          sync.Mutex
	framePending    map[string]chan struct{}
	completePending map[string]chan struct{}
}

// SessionParams configures a new battle session.
type SessionParams struct {
	Balance     config.Balance
	Source      random.Source
	Progression *progression.Engine
	Allies      []*model.Creature
	Enemies     []*model.Creature
}

// NewSession builds a battle between the two teams. Both sides need at
// least one creature and every creature needs a unique ID.
func NewSession(p SessionParams) (*Session, error) {
	if len(p.Allies) == 0 || len(p.Enemies) == 0 {
		return nil, fmt.Errorf("creating battle: both sides need at least one creature")
	}
	if p.Source == nil {
		src, err := random.Crypto()
		if err != nil {
			return nil, fmt.Errorf("creating battle: %w", err)
		}
		p.Source = src
	}
	if p.Progression == nil {
		p.Progression = progression.New(p.Source)
	}

	usage := NewUsageTracker()
	s := &Session{
		id:              uuid.NewString(),
		bal:             p.Balance,
		src:             p.Source,
		prog:            p.Progression,
		resolver:        NewResolver(p.Balance, usage, p.Source),
		usage:           usage,
		byID:            make(map[string]*model.Creature, len(p.Allies)+len(p.Enemies)),
		sides:           make(map[string]Side, len(p.Allies)+len(p.Enemies)),
		seqs:            make(map[string]*anim.Sequencer, len(p.Allies)+len(p.Enemies)),
		turn:            1,
		lastActive:      time.Now(),
		framePending:    make(map[string]chan struct{}),
		completePending: make(map[string]chan struct{}),
	}

	settle := time.Duration(p.Balance.SettleMs) * time.Millisecond
	add := func(c *model.Creature, side Side) error {
		if c == nil {
			return fmt.Errorf("creating battle: nil creature on side %s", side)
		}
		if _, dup := s.byID[c.ID()]; dup {
			return fmt.Errorf("creating battle: duplicate creature %q", c.ID())
		}
		s.byID[c.ID()] = c
		s.sides[c.ID()] = side

		seq := anim.NewSequencer(c.ID(), settle)
		seq.OnDamageFrame(func(actorID string, _ anim.Trigger) { s.fire(s.framePending, actorID) })
		seq.OnComplete(func(actorID string, _ anim.Trigger) { s.fire(s.completePending, actorID) })
		s.seqs[c.ID()] = seq

		if c.IsDead() {
			seq.SignalDefeat()
		}
		return nil
	}
	for _, c := range p.Allies {
		if err := add(c, SideAllies); err != nil {
			return nil, err
		}
		s.allies = append(s.allies, c)
	}
	for _, c := range p.Enemies {
		if err := add(c, SideEnemies); err != nil {
			return nil, err
		}
		s.enemies = append(s.enemies, c)
	}

	slog.Info("battle started",
		"battle", s.id,
		"allies", len(s.allies),
		"enemies", len(s.enemies))
	return s, nil
}

// ID returns the battle identifier.
func (s *Session) ID() string { return s.id }

// Turn returns the current turn number, starting at 1.
func (s *Session) Turn() int32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.turn
}

// Finished reports whether one side has been wiped out.
func (s *Session) Finished() bool { return s.finished.Load() }

// Winner returns the winning side, or SideNone while the battle runs.
func (s *Session) Winner() Side {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.winner
}

// LastActive returns the time of the last action or turn tick.
func (s *Session) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActive
}

// Creature returns a participant by ID, nil when unknown.
func (s *Session) Creature(id string) *model.Creature {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// SideOf returns which team a creature fights on.
func (s *Session) SideOf(id string) Side {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sides[id]
}

// Sequencer returns the animation sequencer for a participant.
func (s *Session) Sequencer(id string) *anim.Sequencer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seqs[id]
}

// Living returns the living creatures of one side, in team order.
func (s *Session) Living(side Side) []*model.Creature {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return living(s.team(side))
}

// Creatures returns every participant, allies first, dead included.
func (s *Session) Creatures() []*model.Creature {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Creature, 0, len(s.allies)+len(s.enemies))
	out = append(out, s.allies...)
	return append(out, s.enemies...)
}

// CanAct reports whether a creature may act this turn; a confusion check
// here consumes its chance roll.
func (s *Session) CanAct(id string) FailReason {
	return CanAct(s.Creature(id), s.bal, s.src)
}

// PerformAction runs one technique use end to end: pre-action gate,
// resolution, actor playback, outcome application at the damage frame,
// target reactions, and defeat handling with experience awards. It blocks
// until the actor's playback and all reaction playbacks finish.
//
// Explicit target IDs are honored for single-target techniques; multi and
// random target kinds select their own targets. The returned outcome has
// the applied fields (Heal, StatusApplied, Defeated) filled in.
func (s *Session) PerformAction(ctx context.Context, actorID, techniqueID string, targetIDs ...string) (*Outcome, error) {
	s.actMu.Lock()
	defer s.actMu.Unlock()

	ctx, span := tracer.Start(ctx, "battle.perform_action")
	defer span.End()
	span.SetAttributes(
		attribute.String("battle.id", s.id),
		attribute.String("battle.actor", actorID),
		attribute.String("battle.technique", techniqueID),
	)

	if s.Finished() {
		return nil, ErrSessionFinished
	}

	actor := s.Creature(actorID)
	if actor == nil {
		return nil, fmt.Errorf("performing action: unknown creature %q", actorID)
	}
	tech := data.GetTechnique(techniqueID)
	if tech == nil {
		return nil, fmt.Errorf("performing action: unknown technique %q", techniqueID)
	}

	s.touch()

	// Pre-action gate: held or confused creatures burn the turn without
	// resolving anything.
	if gate := CanAct(actor, s.bal, s.src); gate != FailNone {
		slog.Debug("action blocked",
			"battle", s.id,
			"actor", actor.Name(),
			"reason", gate.String())
		return &Outcome{ActorID: actorID, TechniqueID: techniqueID, Failure: gate}, nil
	}

	targets, err := s.selectTargets(actor, tech, targetIDs)
	if err != nil {
		return nil, err
	}

	out, err := s.resolver.Resolve(actor, tech, targets)
	if err != nil {
		return nil, err
	}
	if out.Failed() {
		span.SetAttributes(attribute.String("battle.failure", out.Failure.String()))
		return out, nil
	}

	// Playback drives state application: the damage frame gates the HP
	// and status mutations so visuals and numbers stay in step.
	frameCh := s.arm(s.framePending, actorID)
	doneCh := s.arm(s.completePending, actorID)
	seq := s.Sequencer(actorID)
	seq.Play(anim.Request{
		Trigger:  anim.TriggerFor(tech),
		Windup:   out.Windup,
		Duration: out.Duration,
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-frameCh:
	}

	reacting := s.applyOutcome(actor, tech, out)

	// An everyone-sweep can take the actor down with its own hit, which
	// preempts the playback; there is no completion to wait for then.
	if actor.IsAlive() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-doneCh:
		}
	} else {
		s.disarm(s.completePending, actorID, doneCh)
	}

	// Reactions usually end inside the actor's playback window; wait out
	// any that run longer so the next action starts on a clean stage.
	g, waitCtx := errgroup.WithContext(ctx)
	for _, ch := range reacting {
		g.Go(func() error {
			select {
			case <-waitCtx.Done():
				return waitCtx.Err()
			case <-ch:
				return nil
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("battle.damage", int(out.TotalDamage())))
	s.checkEnd()
	return out, nil
}

// EndTurn runs end-of-turn upkeep over every living creature, allies
// first, and advances the turn counter. Poison and burn can defeat here;
// nobody is credited experience for an upkeep death.
func (s *Session) EndTurn() []CreatureUpkeep {
	s.actMu.Lock()
	defer s.actMu.Unlock()

	s.touch()

	var report []CreatureUpkeep
	for _, c := range append(s.Living(SideAllies), s.Living(SideEnemies)...) {
		res := TickUpkeep(c, s.bal)
		report = append(report, CreatureUpkeep{CreatureID: c.ID(), UpkeepResult: res})
		if res.Died {
			s.Sequencer(c.ID()).SignalDefeat()
			slog.Info("creature succumbed",
				"battle", s.id,
				"creature", c.Name())
		}
	}

	s.mu.Lock()
	s.turn++
	s.mu.Unlock()

	s.checkEnd()
	return report
}

// CreatureUpkeep pairs one creature with its end-of-turn upkeep result.
type CreatureUpkeep struct {
	CreatureID string
	UpkeepResult
}

// selectTargets resolves a technique's target kind to concrete creatures.
// Explicit IDs steer the single-target kinds; a dead explicit enemy is
// redirected to the first living one. Everyone sweeps allies before
// enemies so multi-target application order stays deterministic.
func (s *Session) selectTargets(actor *model.Creature, tech *data.TechniqueTemplate, targetIDs []string) ([]*model.Creature, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	actorSide := s.sides[actor.ID()]
	own := s.team(actorSide)
	opposing := s.team(opposite(actorSide))

	explicit := func() (*model.Creature, error) {
		if len(targetIDs) == 0 {
			return nil, nil
		}
		c := s.byID[targetIDs[0]]
		if c == nil {
			return nil, fmt.Errorf("performing action: unknown target %q", targetIDs[0])
		}
		return c, nil
	}

	switch tech.Target {
	case data.TargetSingleEnemy:
		c, err := explicit()
		if err != nil {
			return nil, err
		}
		if c == nil || c.IsDead() || s.sides[c.ID()] == actorSide {
			if alive := living(opposing); len(alive) > 0 {
				c = alive[0]
			}
		}
		if c == nil {
			return nil, fmt.Errorf("performing action: no living enemy to target")
		}
		return []*model.Creature{c}, nil

	case data.TargetAllEnemies:
		return living(opposing), nil

	case data.TargetRandomEnemy:
		alive := living(opposing)
		if len(alive) == 0 {
			return nil, fmt.Errorf("performing action: no living enemy to target")
		}
		return []*model.Creature{alive[s.src.IntN(len(alive))]}, nil

	case data.TargetSingleAlly:
		c, err := explicit()
		if err != nil {
			return nil, err
		}
		if c == nil || s.sides[c.ID()] != actorSide {
			c = actor
		}
		return []*model.Creature{c}, nil

	case data.TargetAllAllies:
		return living(own), nil

	case data.TargetSelf:
		return []*model.Creature{actor}, nil

	case data.TargetEveryone:
		return append(living(own), living(opposing)...), nil

	default:
		return nil, fmt.Errorf("performing action: technique %q has unknown target kind %d", tech.ID, tech.Target)
	}
}

// applyOutcome mutates creatures per the resolved outcome and fills the
// applied fields. Runs at the actor's damage frame. Returns the completion
// channels of every reaction playback it started.
func (s *Session) applyOutcome(actor *model.Creature, tech *data.TechniqueTemplate, out *Outcome) []chan struct{} {
	react := out.Duration - out.Windup
	if react < minReactTime {
		react = minReactTime
	}

	var reacting []chan struct{}
	for i := range out.Targets {
		row := &out.Targets[i]
		target := s.Creature(row.TargetID)
		if target == nil || !row.Hit {
			continue
		}

		if row.Damage > 0 {
			row.Defeated = target.ReduceHP(row.Damage)
		}
		if row.HealRolled > 0 {
			row.Heal = target.Heal(row.HealRolled)
		}
		if row.Modifier != nil {
			target.AddModifier(*row.Modifier)
		}
		if row.StatusAttempt != nil && target.ApplyStatus(*row.StatusAttempt) {
			row.StatusApplied = row.StatusAttempt.Kind
		}

		if row.Defeated {
			s.onDefeat(actor, target)
			continue
		}
		if row.Damage > 0 && target.ID() != actor.ID() {
			ch := s.arm(s.completePending, target.ID())
			s.Sequencer(target.ID()).Play(anim.Request{Trigger: anim.TriggerHurt, Duration: react})
			reacting = append(reacting, ch)
		}
	}

	if self := out.SelfEffect; self != nil {
		if self.HealRolled > 0 {
			self.Heal = actor.Heal(self.HealRolled)
		}
		if self.Modifier != nil {
			actor.AddModifier(*self.Modifier)
		}
	}

	slog.Debug("outcome applied",
		"battle", s.id,
		"actor", actor.Name(),
		"technique", tech.ID,
		"damage", out.TotalDamage())
	return reacting
}

// onDefeat parks the victim's sequencer in its dead state and awards
// experience to the actor when the victim fought for the other side.
func (s *Session) onDefeat(actor, victim *model.Creature) {
	s.Sequencer(victim.ID()).SignalDefeat()

	slog.Info("creature defeated",
		"battle", s.id,
		"creature", victim.Name(),
		"by", actor.Name())

	if s.SideOf(actor.ID()) == s.SideOf(victim.ID()) {
		return
	}
	xp := progression.DefeatExperience(victim)
	if _, err := s.prog.GrantExperience(actor, xp); err != nil {
		slog.Error("awarding defeat experience",
			"battle", s.id,
			"creature", actor.Name(),
			"error", err)
	}
}

// checkEnd marks the battle finished once a side has no living creatures
// and plays the victory clip for the survivors.
func (s *Session) checkEnd() {
	s.mu.Lock()
	alliesAlive := len(living(s.allies)) > 0
	enemiesAlive := len(living(s.enemies)) > 0
	if alliesAlive && enemiesAlive {
		s.mu.Unlock()
		return
	}
	if s.finished.Swap(true) {
		s.mu.Unlock()
		return
	}
	winner := SideNone
	var standing []*model.Creature
	if alliesAlive {
		winner = SideAllies
		standing = living(s.allies)
	} else if enemiesAlive {
		winner = SideEnemies
		standing = living(s.enemies)
	}
	s.winner = winner
	seqs := make([]*anim.Sequencer, 0, len(standing))
	for _, c := range standing {
		seqs = append(seqs, s.seqs[c.ID()])
	}
	turn := s.turn
	s.mu.Unlock()

	for _, seq := range seqs {
		seq.Play(anim.Request{
			Trigger:  anim.TriggerVictory,
			Duration: time.Duration(s.bal.DefaultDurationMs) * time.Millisecond,
		})
	}
	slog.Info("battle finished",
		"battle", s.id,
		"winner", winner.String(),
		"turns", turn)
}

// arm registers a one-shot wait for a sequencer event.
func (s *Session) arm(pending map[string]chan struct{}, id string) chan struct{} {
	s.pendMu.Lock()
	defer s.pendMu.Unlock()
	ch := make(chan struct{})
	pending[id] = ch
	return ch
}

// fire releases a pending wait, if one is armed.
func (s *Session) fire(pending map[string]chan struct{}, id string) {
	s.pendMu.Lock()
	defer s.pendMu.Unlock()
	if ch, ok := pending[id]; ok {
		close(ch)
		delete(pending, id)
	}
}

// disarm drops a pending wait that will never fire, if it is still the
// armed one.
func (s *Session) disarm(pending map[string]chan struct{}, id string, ch chan struct{}) {
	s.pendMu.Lock()
	defer s.pendMu.Unlock()
	if pending[id] == ch {
		delete(pending, id)
	}
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

func (s *Session) team(side Side) []*model.Creature {
	if side == SideAllies {
		return s.allies
	}
	return s.enemies
}

func opposite(side Side) Side {
	if side == SideAllies {
		return SideEnemies
	}
	return SideAllies
}

func living(team []*model.Creature) []*model.Creature {
	out := make([]*model.Creature, 0, len(team))
	for _, c := range team {
		if c.IsAlive() {
			out = append(out, c)
		}
	}
	return out
}
