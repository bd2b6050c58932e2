package integration

import (
	"github.com/google/uuid"

	"github.com/velrin/bestiago/internal/data"
	"github.com/velrin/bestiago/internal/db"
	"github.com/velrin/bestiago/internal/model"
)

// storedCreature builds a creature with distinctive values in every
// persisted field so round trips catch column mix-ups.
func (s *PersistenceSuite) storedCreature(tamerID string) *model.Creature {
	sp := data.GetSpecies("ember_pup")
	s.Require().NotNil(sp, "built-in species must be loaded")

	return model.NewCreature(model.CreatureParams{
		ID:      uuid.NewString(),
		TamerID: tamerID,
		Species: sp,
		Name:    "Cinder",
		Level:   12,
		XP:      1800,
		Stats:   [data.StatCount]int32{104, 77, 38, 52, 49, 33},
		Growth: [data.StatCount]data.GrowthRank{
			data.GrowthB, data.GrowthA, data.GrowthC,
			data.GrowthB, data.GrowthB, data.GrowthC,
		},
		CurrentHP:  61,
		Guts:       80,
		MaxGuts:    100,
		Techniques: []string{"tackle", "ember_burst", "war_cry", "fury_swipes"},
		Alive:      true,
	})
}

func (s *PersistenceSuite) TestTamerLifecycle() {
	created, err := s.tamers.Create(s.ctx, "Riley", "hunter2hunter2")
	s.Require().NoError(err)
	s.NotEmpty(created.ID)
	s.NotEqual("hunter2hunter2", created.PasswordHash, "password must be stored hashed")
	s.False(created.CreatedAt.IsZero())

	// Lookup is case-insensitive.
	got, err := s.tamers.GetByName(s.ctx, "riley")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(created.ID, got.ID)
	s.True(got.LastLogin.IsZero(), "no login recorded yet")

	authed, err := s.tamers.Authenticate(s.ctx, "Riley", "hunter2hunter2")
	s.Require().NoError(err)
	s.Equal(created.ID, authed.ID)
	s.False(authed.LastLogin.IsZero(), "authenticate stamps last_login")

	_, err = s.tamers.Authenticate(s.ctx, "Riley", "wrong-password")
	s.ErrorIs(err, db.ErrInvalidCredentials)

	_, err = s.tamers.Authenticate(s.ctx, "nobody", "hunter2hunter2")
	s.ErrorIs(err, db.ErrInvalidCredentials)
}

func (s *PersistenceSuite) TestTamerNotFound() {
	got, err := s.tamers.GetByName(s.ctx, "missing")
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *PersistenceSuite) TestTamerDuplicateName() {
	_, err := s.tamers.Create(s.ctx, "Riley", "first")
	s.Require().NoError(err)

	_, err = s.tamers.Create(s.ctx, "Riley", "second")
	s.Error(err, "names are unique")
}

func (s *PersistenceSuite) TestCreatureRoundTrip() {
	tamer, err := s.tamers.Create(s.ctx, "Riley", "hunter2hunter2")
	s.Require().NoError(err)

	c := s.storedCreature(tamer.ID)
	s.Require().NoError(s.creatures.Save(s.ctx, c))

	got, err := s.creatures.Load(s.ctx, c.ID())
	s.Require().NoError(err)
	s.Require().NotNil(got)

	s.Equal(c.ID(), got.ID())
	s.Equal(tamer.ID, got.TamerID())
	s.Equal("ember_pup", got.Species().ID)
	s.Equal("Cinder", got.Name())
	s.Equal(int32(12), got.Level())
	s.Equal(int64(1800), got.XP())
	s.Equal(c.Stats(), got.Stats())
	s.Equal(c.GrowthRanks(), got.GrowthRanks())
	s.Equal(int32(61), got.CurrentHP())
	s.Equal(int32(80), got.Guts())
	s.Equal(int32(100), got.MaxGuts())
	s.Equal(c.Techniques(), got.Techniques())
	s.True(got.IsAlive())
}

func (s *PersistenceSuite) TestCreatureNotFound() {
	got, err := s.creatures.Load(s.ctx, uuid.NewString())
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *PersistenceSuite) TestCreatureUpsert() {
	tamer, err := s.tamers.Create(s.ctx, "Riley", "hunter2hunter2")
	s.Require().NoError(err)

	c := s.storedCreature(tamer.ID)
	s.Require().NoError(s.creatures.Save(s.ctx, c))

	// Progress the creature and save again over the same row.
	c.SetLevel(13)
	c.AddXP(400)
	c.RaiseStat(data.StatPower, 9)
	c.ReduceHP(20)
	c.LearnTechnique("takedown")
	s.Require().NoError(s.creatures.Save(s.ctx, c))

	var count int
	s.Require().NoError(s.pool.QueryRow(s.ctx, "SELECT COUNT(*) FROM creatures").Scan(&count))
	s.Equal(1, count, "upsert must not duplicate the row")

	got, err := s.creatures.Load(s.ctx, c.ID())
	s.Require().NoError(err)
	s.Equal(int32(13), got.Level())
	s.Equal(int64(2200), got.XP())
	s.Equal(int32(86), got.Stat(data.StatPower))
	s.Equal(int32(41), got.CurrentHP())
	s.Contains(got.Techniques(), "takedown")
}

func (s *PersistenceSuite) TestWildCreatureHasNoTamer() {
	c := s.storedCreature("")
	s.Require().NoError(s.creatures.Save(s.ctx, c))

	got, err := s.creatures.Load(s.ctx, c.ID())
	s.Require().NoError(err)
	s.Empty(got.TamerID())
}

func (s *PersistenceSuite) TestListByTamerAndDelete() {
	tamer, err := s.tamers.Create(s.ctx, "Riley", "hunter2hunter2")
	s.Require().NoError(err)

	first := s.storedCreature(tamer.ID)
	second := s.storedCreature(tamer.ID)
	second.SetName("Ash")
	stray := s.storedCreature("")

	s.Require().NoError(s.creatures.Save(s.ctx, first))
	s.Require().NoError(s.creatures.Save(s.ctx, second))
	s.Require().NoError(s.creatures.Save(s.ctx, stray))

	roster, err := s.creatures.ListByTamer(s.ctx, tamer.ID)
	s.Require().NoError(err)
	s.Require().Len(roster, 2, "wild creatures stay off the roster")
	s.Equal(first.ID(), roster[0].ID(), "oldest first")
	s.Equal(second.ID(), roster[1].ID())

	s.Require().NoError(s.creatures.Delete(s.ctx, first.ID()))

	roster, err = s.creatures.ListByTamer(s.ctx, tamer.ID)
	s.Require().NoError(err)
	s.Require().Len(roster, 1)
	s.Equal(second.ID(), roster[0].ID())
}

func (s *PersistenceSuite) TestRosterSavedAtomically() {
	tamer, err := s.tamers.Create(s.ctx, "Riley", "hunter2hunter2")
	s.Require().NoError(err)

	good := s.storedCreature(tamer.ID)
	// References a tamer that does not exist, so the insert violates the
	// foreign key and the whole transaction must roll back.
	orphan := s.storedCreature(uuid.NewString())

	err = s.roster.SaveRoster(s.ctx, tamer.ID, []*model.Creature{good, orphan})
	s.Require().Error(err)

	var count int
	s.Require().NoError(s.pool.QueryRow(s.ctx, "SELECT COUNT(*) FROM creatures").Scan(&count))
	s.Equal(0, count, "failed roster save must leave nothing behind")

	// The same roster without the orphan lands completely.
	s.Require().NoError(s.roster.SaveRoster(s.ctx, tamer.ID, []*model.Creature{good}))

	loaded, err := s.roster.LoadRoster(s.ctx, tamer.ID)
	s.Require().NoError(err)
	s.Len(loaded, 1)
}

func (s *PersistenceSuite) TestTamerCascadeDelete() {
	tamer, err := s.tamers.Create(s.ctx, "Riley", "hunter2hunter2")
	s.Require().NoError(err)

	c := s.storedCreature(tamer.ID)
	s.Require().NoError(s.creatures.Save(s.ctx, c))

	s.Require().NoError(s.tamers.Delete(s.ctx, tamer.ID))

	got, err := s.creatures.Load(s.ctx, c.ID())
	s.Require().NoError(err)
	s.Nil(got, "roster goes with the tamer")
}
