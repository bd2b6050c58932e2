package battle

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velrin/bestiago/internal/data"
	"github.com/velrin/bestiago/internal/game/anim"
	"github.com/velrin/bestiago/internal/model"
)

// setupTechniques installs a minimal deterministic technique table: sure
// hits, no criticals, so a flat balance leaves zero random draws.
func setupTechniques(t *testing.T) {
	t.Helper()
	old := data.TechniqueTable
	data.TechniqueTable = map[string]*data.TechniqueTemplate{
		"strike": {
			ID: "strike", Name: "Strike",
			Category: data.CategoryPhysical, Target: data.TargetSingleEnemy,
			GutsCost: 10, UsesPerBattle: -1,
			Power: 40, Accuracy: 100, HitCount: 1,
			AlwaysHits: true, MakesContact: true,
		},
		"sweep": {
			ID: "sweep", Name: "Sweep",
			Category: data.CategoryPhysical, Target: data.TargetAllEnemies,
			GutsCost: 15, UsesPerBattle: -1,
			Power: 40, Accuracy: 100, HitCount: 1,
			AlwaysHits: true, MakesContact: true,
		},
		"finisher": {
			ID: "finisher", Name: "Finisher",
			Category: data.CategoryPhysical, Target: data.TargetSingleEnemy,
			GutsCost: 20, UsesPerBattle: -1,
			Power: 200, Accuracy: 100, HitCount: 1,
			AlwaysHits: true, MakesContact: true,
		},
		"lash": {
			ID: "lash", Name: "Lash",
			Category: data.CategoryPhysical, Target: data.TargetRandomEnemy,
			GutsCost: 10, UsesPerBattle: -1,
			Power: 40, Accuracy: 100, HitCount: 1,
			AlwaysHits: true, MakesContact: true,
		},
		"mend": {
			ID: "mend", Name: "Mend",
			Category: data.CategoryHealing, Target: data.TargetSingleAlly,
			GutsCost: 15, UsesPerBattle: -1,
			EffectValue: 30, AlwaysHits: true, HitCount: 1,
		},
	}
	t.Cleanup(func() { data.TechniqueTable = old })
}

// newDuelSession builds a 1v1 battle with the default deterministic pair:
// the attacker deals 26 per strike into the defender.
func newDuelSession(t *testing.T, src *scriptedSource) (*Session, *model.Creature, *model.Creature) {
	t.Helper()
	a := attacker()
	d := defender()
	s, err := NewSession(SessionParams{
		Balance: flatBalance(),
		Source:  src,
		Allies:  []*model.Creature{a},
		Enemies: []*model.Creature{d},
	})
	require.NoError(t, err)
	return s, a, d
}

func TestNewSession_Validation(t *testing.T) {
	_, err := NewSession(SessionParams{Balance: flatBalance()})
	assert.Error(t, err, "both sides need creatures")

	c := attacker()
	_, err = NewSession(SessionParams{
		Balance: flatBalance(),
		Allies:  []*model.Creature{c},
		Enemies: []*model.Creature{c},
	})
	assert.Error(t, err, "one creature cannot fight on both sides")
}

func TestSession_DamageAppliesAtDamageFrame(t *testing.T) {
	setupTechniques(t)
	synctest.Test(t, func(t *testing.T) {
		s, _, d := newDuelSession(t, &scriptedSource{})

		outCh := make(chan *Outcome, 1)
		go func() {
			out, err := s.PerformAction(context.Background(), "atk-1", "strike")
			if err != nil {
				t.Error("perform action:", err)
			}
			outCh <- out
		}()

		// Before the damage frame (400ms in) nothing has been applied.
		time.Sleep(200 * time.Millisecond)
		synctest.Wait()
		if got := d.CurrentHP(); got != 100 {
			t.Fatalf("HP before damage frame = %d, want untouched", got)
		}

		// Past the damage frame the HP loss lands, playback still running.
		time.Sleep(300 * time.Millisecond)
		synctest.Wait()
		if got := d.CurrentHP(); got != 74 {
			t.Fatalf("HP after damage frame = %d, want 74", got)
		}

		out := <-outCh
		require.Len(t, out.Targets, 1)
		assert.Equal(t, int32(26), out.Targets[0].Damage)
		assert.True(t, out.Targets[0].Hit)
		assert.False(t, out.Targets[0].Defeated)
	})
}

func TestSession_DefeatAwardsExperience(t *testing.T) {
	setupTechniques(t)
	synctest.Test(t, func(t *testing.T) {
		a := battleCreature("atk-1", [data.StatCount]int32{100, 10, 10, 10, 10, 10})
		frail := model.NewCreature(model.CreatureParams{
			ID: "def-1", Species: battleSpecies(), Name: "def-1",
			Level: 5, Stats: [data.StatCount]int32{30, 10, 10, 10, 10, 5},
			CurrentHP: 30, Guts: 100, MaxGuts: 100, Alive: true,
		})
		s, err := NewSession(SessionParams{
			Balance: flatBalance(),
			Source:  &scriptedSource{},
			Allies:  []*model.Creature{a},
			Enemies: []*model.Creature{frail},
		})
		require.NoError(t, err)

		xpBefore := a.XP()
		out, err := s.PerformAction(context.Background(), "atk-1", "finisher")
		require.NoError(t, err)

		require.Len(t, out.Targets, 1)
		assert.True(t, out.Targets[0].Defeated)
		assert.True(t, frail.IsDead())

		// Yield 16 at level 5 pays 80 experience to the victor.
		assert.Equal(t, xpBefore+80, a.XP())

		assert.True(t, s.Finished())
		assert.Equal(t, SideAllies, s.Winner())
		assert.Equal(t, anim.StateDead, s.Sequencer("def-1").State())
		assert.Equal(t, anim.TriggerVictory, s.Sequencer("atk-1").Trigger())

		_, err = s.PerformAction(context.Background(), "atk-1", "strike")
		assert.ErrorIs(t, err, ErrSessionFinished)
	})
}

func TestSession_MultiTargetSweep(t *testing.T) {
	setupTechniques(t)
	synctest.Test(t, func(t *testing.T) {
		a := attacker()
		d1 := battleCreature("def-1", [data.StatCount]int32{100, 10, 10, 10, 10, 5})
		d2 := battleCreature("def-2", [data.StatCount]int32{100, 10, 10, 10, 10, 5})
		s, err := NewSession(SessionParams{
			Balance: flatBalance(),
			Source:  &scriptedSource{},
			Allies:  []*model.Creature{a},
			Enemies: []*model.Creature{d1, d2},
		})
		require.NoError(t, err)

		out, err := s.PerformAction(context.Background(), "atk-1", "sweep")
		require.NoError(t, err)

		require.Len(t, out.Targets, 2)
		assert.Equal(t, "def-1", out.Targets[0].TargetID)
		assert.Equal(t, "def-2", out.Targets[1].TargetID)
		assert.Equal(t, int32(74), d1.CurrentHP())
		assert.Equal(t, int32(74), d2.CurrentHP())

		// Both reactions have finished by the time the action returns.
		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, anim.StateIdle, s.Sequencer("def-1").State())
		assert.Equal(t, anim.StateIdle, s.Sequencer("def-2").State())
	})
}

func TestSession_RandomTargetDraw(t *testing.T) {
	setupTechniques(t)
	synctest.Test(t, func(t *testing.T) {
		a := attacker()
		d1 := battleCreature("def-1", [data.StatCount]int32{100, 10, 10, 10, 10, 5})
		d2 := battleCreature("def-2", [data.StatCount]int32{100, 10, 10, 10, 10, 5})
		s, err := NewSession(SessionParams{
			Balance: flatBalance(),
			Source:  &scriptedSource{seq: []int{1}},
			Allies:  []*model.Creature{a},
			Enemies: []*model.Creature{d1, d2},
		})
		require.NoError(t, err)

		out, err := s.PerformAction(context.Background(), "atk-1", "lash")
		require.NoError(t, err)
		require.Len(t, out.Targets, 1)
		assert.Equal(t, "def-2", out.Targets[0].TargetID, "the draw picked index 1")
		assert.Equal(t, int32(100), d1.CurrentHP())
		assert.Equal(t, int32(74), d2.CurrentHP())
	})
}

func TestSession_DeadExplicitTargetRedirects(t *testing.T) {
	setupTechniques(t)
	synctest.Test(t, func(t *testing.T) {
		a := attacker()
		d1 := battleCreature("def-1", [data.StatCount]int32{100, 10, 10, 10, 10, 5})
		d2 := battleCreature("def-2", [data.StatCount]int32{100, 10, 10, 10, 10, 5})
		d1.ReduceHP(d1.MaxHP())
		s, err := NewSession(SessionParams{
			Balance: flatBalance(),
			Source:  &scriptedSource{},
			Allies:  []*model.Creature{a},
			Enemies: []*model.Creature{d1, d2},
		})
		require.NoError(t, err)

		out, err := s.PerformAction(context.Background(), "atk-1", "strike", "def-1")
		require.NoError(t, err)
		require.Len(t, out.Targets, 1)
		assert.Equal(t, "def-2", out.Targets[0].TargetID)
	})
}

func TestSession_HealAction(t *testing.T) {
	setupTechniques(t)
	synctest.Test(t, func(t *testing.T) {
		s, a, _ := newDuelSession(t, &scriptedSource{})
		a.SetCurrentHP(50)

		out, err := s.PerformAction(context.Background(), "atk-1", "mend", "atk-1")
		require.NoError(t, err)
		require.Len(t, out.Targets, 1)
		assert.Equal(t, int32(30), out.Targets[0].HealRolled)
		assert.Equal(t, int32(30), out.Targets[0].Heal)
		assert.Equal(t, int32(80), a.CurrentHP())
	})
}

func TestSession_HealClampsAtMax(t *testing.T) {
	setupTechniques(t)
	synctest.Test(t, func(t *testing.T) {
		s, a, _ := newDuelSession(t, &scriptedSource{})
		a.SetCurrentHP(90)

		out, err := s.PerformAction(context.Background(), "atk-1", "mend", "atk-1")
		require.NoError(t, err)
		assert.Equal(t, int32(30), out.Targets[0].HealRolled)
		assert.Equal(t, int32(10), out.Targets[0].Heal, "clamped to max HP")
		assert.Equal(t, int32(100), a.CurrentHP())
	})
}

func TestSession_BlockedTurn(t *testing.T) {
	setupTechniques(t)
	synctest.Test(t, func(t *testing.T) {
		s, a, d := newDuelSession(t, &scriptedSource{})
		require.True(t, a.ApplyStatus(model.ActiveStatus{Kind: data.StatusStun, Remaining: 2}))

		out, err := s.PerformAction(context.Background(), "atk-1", "strike")
		require.NoError(t, err)
		assert.Equal(t, FailBlocked, out.Failure)
		assert.Equal(t, int32(100), a.Guts(), "a blocked turn costs nothing")
		assert.Equal(t, int32(100), d.CurrentHP())
	})
}

func TestSession_StatusInflictionApplied(t *testing.T) {
	setupTechniques(t)
	synctest.Test(t, func(t *testing.T) {
		data.TechniqueTable["venom"] = &data.TechniqueTemplate{
			ID: "venom", Name: "Venom",
			Category: data.CategoryPhysical, Target: data.TargetSingleEnemy,
			GutsCost: 10, UsesPerBattle: -1,
			Power: 40, Accuracy: 100, HitCount: 1,
			AlwaysHits: true, MakesContact: true,
			Status: data.StatusPoison, StatusChance: 100, StatusTurns: 3,
		}
		// The status chance consumes the only scripted draw.
		s, _, d := newDuelSession(t, &scriptedSource{seq: []int{0}})

		out, err := s.PerformAction(context.Background(), "atk-1", "venom")
		require.NoError(t, err)
		assert.Equal(t, data.StatusPoison, out.Targets[0].StatusApplied)
		assert.True(t, d.HasStatus(data.StatusPoison))
	})
}

func TestSession_EndTurnUpkeep(t *testing.T) {
	setupTechniques(t)
	s, _, d := newDuelSession(t, &scriptedSource{})
	require.True(t, d.ApplyStatus(model.ActiveStatus{Kind: data.StatusPoison, Remaining: 2}))

	report := s.EndTurn()
	require.Len(t, report, 2)
	assert.Equal(t, int32(2), s.Turn())

	var poisoned *CreatureUpkeep
	for i := range report {
		if report[i].CreatureID == "def-1" {
			poisoned = &report[i]
		}
	}
	require.NotNil(t, poisoned)
	assert.Equal(t, int32(6), poisoned.DamageOverTime)
	assert.Equal(t, int32(94), d.CurrentHP())
}

func TestSession_UnknownInputs(t *testing.T) {
	setupTechniques(t)
	s, _, _ := newDuelSession(t, &scriptedSource{})

	_, err := s.PerformAction(context.Background(), "nobody", "strike")
	assert.Error(t, err)

	_, err = s.PerformAction(context.Background(), "atk-1", "unheard_of")
	assert.Error(t, err)
}

func TestManager_Lifecycle(t *testing.T) {
	setupTechniques(t)
	m := NewManager(flatBalance(), time.Minute, time.Hour)

	s, err := m.Create(SessionParams{
		Balance: flatBalance(),
		Source:  &scriptedSource{},
		Allies:  []*model.Creature{attacker()},
		Enemies: []*model.Creature{defender()},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, m.Count())
	assert.Same(t, s, m.Get(s.ID()))
	assert.Nil(t, m.Get("missing"))

	m.Remove(s.ID())
	assert.Equal(t, 0, m.Count())
}

func TestManager_SweepsIdleSessions(t *testing.T) {
	setupTechniques(t)
	synctest.Test(t, func(t *testing.T) {
		m := NewManager(flatBalance(), 500*time.Millisecond, 2*time.Second)
		_, err := m.Create(SessionParams{
			Balance: flatBalance(),
			Source:  &scriptedSource{},
			Allies:  []*model.Creature{attacker()},
			Enemies: []*model.Creature{defender()},
		})
		require.NoError(t, err)

		m.Start()
		defer m.Stop()

		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, 1, m.Count(), "fresh session survives the sweep")

		time.Sleep(3 * time.Second)
		synctest.Wait()
		assert.Equal(t, 0, m.Count(), "idle session swept")
	})
}

func TestManager_SweepsFinishedSessions(t *testing.T) {
	setupTechniques(t)
	synctest.Test(t, func(t *testing.T) {
		m := NewManager(flatBalance(), 500*time.Millisecond, time.Hour)
		frail := model.NewCreature(model.CreatureParams{
			ID: "def-1", Species: battleSpecies(), Name: "def-1",
			Level: 5, Stats: [data.StatCount]int32{20, 10, 10, 10, 10, 5},
			CurrentHP: 20, Guts: 100, MaxGuts: 100, Alive: true,
		})
		s, err := m.Create(SessionParams{
			Balance: flatBalance(),
			Source:  &scriptedSource{},
			Allies:  []*model.Creature{attacker()},
			Enemies: []*model.Creature{frail},
		})
		require.NoError(t, err)

		_, err = s.PerformAction(context.Background(), "atk-1", "finisher")
		require.NoError(t, err)
		require.True(t, s.Finished())

		m.Start()
		defer m.Stop()

		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, 0, m.Count())
	})
}
