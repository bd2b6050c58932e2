package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velrin/bestiago/internal/data"
	"github.com/velrin/bestiago/internal/model"
)

// CreatureRepository manages persisted creatures. Only durable fields are
// stored; battle-transient state lives in the session and is dropped on save.
type CreatureRepository struct {
	pool *pgxpool.Pool
}

// NewCreatureRepository creates a CreatureRepository on the given pool.
func NewCreatureRepository(pool *pgxpool.Pool) *CreatureRepository {
	return &CreatureRepository{pool: pool}
}

const upsertCreatureSQL = `
	INSERT INTO creatures (
		id, tamer_id, species_id, name, level, experience,
		life, power, intelligence, skill, speed, defense,
		growth_life, growth_power, growth_intelligence,
		growth_skill, growth_speed, growth_defense,
		current_hp, guts, max_guts, techniques, alive
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
	          $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	ON CONFLICT (id) DO UPDATE SET
		tamer_id = EXCLUDED.tamer_id,
		name = EXCLUDED.name,
		level = EXCLUDED.level,
		experience = EXCLUDED.experience,
		life = EXCLUDED.life,
		power = EXCLUDED.power,
		intelligence = EXCLUDED.intelligence,
		skill = EXCLUDED.skill,
		speed = EXCLUDED.speed,
		defense = EXCLUDED.defense,
		growth_life = EXCLUDED.growth_life,
		growth_power = EXCLUDED.growth_power,
		growth_intelligence = EXCLUDED.growth_intelligence,
		growth_skill = EXCLUDED.growth_skill,
		growth_speed = EXCLUDED.growth_speed,
		growth_defense = EXCLUDED.growth_defense,
		current_hp = EXCLUDED.current_hp,
		guts = EXCLUDED.guts,
		max_guts = EXCLUDED.max_guts,
		techniques = EXCLUDED.techniques,
		alive = EXCLUDED.alive,
		updated_at = now()
`

// creatureArgs flattens a creature into the upsert parameter list.
func creatureArgs(c *model.Creature) []any {
	stats := c.Stats()
	growth := c.GrowthRanks()

	// A creature without a tamer is wild; store NULL, not "".
	var tamerID any
	if id := c.TamerID(); id != "" {
		tamerID = id
	}

	return []any{
		c.ID(), tamerID, c.Species().ID, c.Name(), c.Level(), c.XP(),
		stats[data.StatLife], stats[data.StatPower], stats[data.StatIntelligence],
		stats[data.StatSkill], stats[data.StatSpeed], stats[data.StatDefense],
		growth[data.StatLife].String(), growth[data.StatPower].String(),
		growth[data.StatIntelligence].String(), growth[data.StatSkill].String(),
		growth[data.StatSpeed].String(), growth[data.StatDefense].String(),
		c.CurrentHP(), c.Guts(), c.MaxGuts(), c.Techniques(), c.IsAlive(),
	}
}

// Save upserts a creature.
func (r *CreatureRepository) Save(ctx context.Context, c *model.Creature) error {
	if c == nil || c.Species() == nil {
		return fmt.Errorf("saving creature: nil creature or species")
	}
	if _, err := r.pool.Exec(ctx, upsertCreatureSQL, creatureArgs(c)...); err != nil {
		return fmt.Errorf("saving creature %s: %w", c.ID(), err)
	}
	return nil
}

// SaveTx upserts a creature inside an existing transaction.
func (r *CreatureRepository) SaveTx(ctx context.Context, tx pgx.Tx, c *model.Creature) error {
	if c == nil || c.Species() == nil {
		return fmt.Errorf("saving creature: nil creature or species")
	}
	if _, err := tx.Exec(ctx, upsertCreatureSQL, creatureArgs(c)...); err != nil {
		return fmt.Errorf("saving creature %s: %w", c.ID(), err)
	}
	return nil
}

const selectCreatureSQL = `
	SELECT id, COALESCE(tamer_id::text, ''), species_id, name, level, experience,
	       life, power, intelligence, skill, speed, defense,
	       growth_life, growth_power, growth_intelligence,
	       growth_skill, growth_speed, growth_defense,
	       current_hp, guts, max_guts, techniques, alive
	FROM creatures
`

// scanCreature rebuilds a creature from one row. The species must be loaded;
// a row referencing an unknown species is a data error.
func scanCreature(row pgx.Row) (*model.Creature, error) {
	var (
		id, tamerID, speciesID, name string
		level                        int32
		experience                   int64
		stats                        [data.StatCount]int32
		growthRaw                    [data.StatCount]string
		currentHP, guts, maxGuts     int32
		techniques                   []string
		alive                        bool
	)

	err := row.Scan(
		&id, &tamerID, &speciesID, &name, &level, &experience,
		&stats[data.StatLife], &stats[data.StatPower], &stats[data.StatIntelligence],
		&stats[data.StatSkill], &stats[data.StatSpeed], &stats[data.StatDefense],
		&growthRaw[data.StatLife], &growthRaw[data.StatPower], &growthRaw[data.StatIntelligence],
		&growthRaw[data.StatSkill], &growthRaw[data.StatSpeed], &growthRaw[data.StatDefense],
		&currentHP, &guts, &maxGuts, &techniques, &alive,
	)
	if err != nil {
		return nil, err
	}

	sp := data.GetSpecies(speciesID)
	if sp == nil {
		return nil, fmt.Errorf("creature %s references unknown species %q", id, speciesID)
	}

	var growth [data.StatCount]data.GrowthRank
	for i, raw := range growthRaw {
		growth[i] = data.ParseGrowthRank(raw)
	}

	return model.NewCreature(model.CreatureParams{
		ID:         id,
		TamerID:    tamerID,
		Species:    sp,
		Name:       name,
		Level:      level,
		XP:         experience,
		Stats:      stats,
		Growth:     growth,
		CurrentHP:  currentHP,
		Guts:       guts,
		MaxGuts:    maxGuts,
		Techniques: techniques,
		Alive:      alive,
	}), nil
}

// Load retrieves a creature by ID.
// Returns nil, nil when the creature does not exist.
func (r *CreatureRepository) Load(ctx context.Context, id string) (*model.Creature, error) {
	row := r.pool.QueryRow(ctx, selectCreatureSQL+` WHERE id = $1`, id)
	c, err := scanCreature(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading creature %s: %w", id, err)
	}
	return c, nil
}

// ListByTamer retrieves a tamer's roster, oldest first.
func (r *CreatureRepository) ListByTamer(ctx context.Context, tamerID string) ([]*model.Creature, error) {
	rows, err := r.pool.Query(ctx, selectCreatureSQL+` WHERE tamer_id = $1 ORDER BY created_at ASC`, tamerID)
	if err != nil {
		return nil, fmt.Errorf("querying creatures for tamer %s: %w", tamerID, err)
	}
	defer rows.Close()

	// Typical rosters hold a handful of creatures.
	roster := make([]*model.Creature, 0, 8)
	for rows.Next() {
		c, err := scanCreature(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning creature row: %w", err)
		}
		roster = append(roster, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating creature rows: %w", err)
	}
	return roster, nil
}

// Delete removes a creature.
func (r *CreatureRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM creatures WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting creature %s: %w", id, err)
	}
	return nil
}
