package integration

import (
	"github.com/google/uuid"

	"github.com/velrin/bestiago/internal/config"
	"github.com/velrin/bestiago/internal/data"
	"github.com/velrin/bestiago/internal/game/battle"
	"github.com/velrin/bestiago/internal/game/stat"
	"github.com/velrin/bestiago/internal/model"
	"github.com/velrin/bestiago/internal/random"
)

// TestBattleOutcomePersisted drives a short real-time battle end to end and
// checks the victor's progress survives a save and reload.
func (s *PersistenceSuite) TestBattleOutcomePersisted() {
	bal := config.DefaultBalance()
	src := random.New(42)

	tamer, err := s.tamers.Create(s.ctx, "Riley", "hunter2hunter2")
	s.Require().NoError(err)

	champion, err := stat.Spawn(uuid.NewString(), data.GetSpecies("ember_pup"), "Champ", 25, bal.MaxGuts, src)
	s.Require().NoError(err)
	champion.SetTamerID(tamer.ID)

	wild, err := stat.Spawn(uuid.NewString(), data.GetSpecies("tidal_koi"), "", 3, bal.MaxGuts, src)
	s.Require().NoError(err)

	sess, err := battle.NewSession(battle.SessionParams{
		Balance: bal,
		Source:  src,
		Allies:  []*model.Creature{champion},
		Enemies: []*model.Creature{wild},
	})
	s.Require().NoError(err)

	xpBefore := champion.XP()

	// A level 25 attacker finishes a level 3 wild in a couple of tackles;
	// the cap only guards against a pathological roll streak.
	for turn := 0; turn < 10 && !sess.Finished(); turn++ {
		_, err := sess.PerformAction(s.ctx, champion.ID(), "tackle")
		s.Require().NoError(err)
		if sess.Finished() {
			break
		}
		sess.EndTurn()
	}

	s.Require().True(sess.Finished(), "battle must end inside the action cap")
	s.Equal(battle.SideAllies, sess.Winner())
	s.True(wild.IsDead())
	s.Greater(champion.XP(), xpBefore, "victory pays experience")

	s.Require().NoError(s.roster.SaveRoster(s.ctx, tamer.ID, []*model.Creature{champion}))

	loaded, err := s.roster.LoadRoster(s.ctx, tamer.ID)
	s.Require().NoError(err)
	s.Require().Len(loaded, 1)

	got := loaded[0]
	s.Equal(champion.XP(), got.XP())
	s.Equal(champion.Level(), got.Level())
	s.Equal(champion.CurrentHP(), got.CurrentHP())
	s.Equal(champion.Guts(), got.Guts())
	s.Equal(champion.Techniques(), got.Techniques())
}
