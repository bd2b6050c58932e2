// Command battlesim runs an unattended duel between two spawned creatures
// and narrates every turn, for tuning balance numbers without a client.
//
// Usage:
//
//	go run ./cmd/battlesim -red ember_pup -blue tidal_koi -level 12
//	go run ./cmd/battlesim -seed 42 -turns 20
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/velrin/bestiago/internal/config"
	"github.com/velrin/bestiago/internal/data"
	"github.com/velrin/bestiago/internal/game/battle"
	"github.com/velrin/bestiago/internal/game/stat"
	"github.com/velrin/bestiago/internal/model"
	"github.com/velrin/bestiago/internal/random"
)

func main() {
	redSpecies := flag.String("red", "ember_pup", "species of the red corner")
	blueSpecies := flag.String("blue", "tidal_koi", "species of the blue corner")
	redLevel := flag.Int("red-level", 12, "red creature level")
	blueLevel := flag.Int("blue-level", 12, "blue creature level")
	seed := flag.Int64("seed", 0, "RNG seed, 0 picks one")
	maxTurns := flag.Int("turns", 30, "stop after this many turns")
	flag.Parse()

	if err := run(*redSpecies, *blueSpecies, int32(*redLevel), int32(*blueLevel), *seed, *maxTurns); err != nil {
		fmt.Fprintf(os.Stderr, "battlesim: %v\n", err)
		os.Exit(1)
	}
}

func run(redSpecies, blueSpecies string, redLevel, blueLevel int32, seed int64, maxTurns int) error {
	if err := data.LoadTechniques(); err != nil {
		return fmt.Errorf("loading techniques: %w", err)
	}
	if err := data.LoadSpecies(); err != nil {
		return fmt.Errorf("loading species: %w", err)
	}

	if seed == 0 {
		s, err := random.NewSeed()
		if err != nil {
			return fmt.Errorf("seeding rng: %w", err)
		}
		seed = s
	}
	src := random.New(seed)
	bal := config.DefaultBalance()

	red, err := spawnFighter("red", redSpecies, redLevel, bal.MaxGuts, src)
	if err != nil {
		return err
	}
	blue, err := spawnFighter("blue", blueSpecies, blueLevel, bal.MaxGuts, src)
	if err != nil {
		return err
	}

	sess, err := battle.NewSession(battle.SessionParams{
		Balance: bal,
		Source:  src,
		Allies:  []*model.Creature{red},
		Enemies: []*model.Creature{blue},
	})
	if err != nil {
		return fmt.Errorf("creating battle: %w", err)
	}

	fmt.Printf("seed %d\n", seed)
	fmt.Printf("RED  %s (%s) lv%d  HP %d  [%s]\n",
		red.Name(), redSpecies, red.Level(), red.MaxHP(), techniqueList(red))
	fmt.Printf("BLUE %s (%s) lv%d  HP %d  [%s]\n\n",
		blue.Name(), blueSpecies, blue.Level(), blue.MaxHP(), techniqueList(blue))

	ctx := context.Background()
	picks := map[string]int{}

	for turn := 1; turn <= maxTurns && !sess.Finished(); turn++ {
		fmt.Printf("--- turn %d ---\n", turn)

		redTech := chooseTechnique(red, picks)
		blueTech := chooseTechnique(blue, picks)

		first, firstTech, second, secondTech := orderActors(red, redTech, blue, blueTech, src)
		for _, act := range []struct {
			c    *model.Creature
			tech string
		}{{first, firstTech}, {second, secondTech}} {
			if sess.Finished() || act.c.IsDead() {
				continue
			}
			out, err := sess.PerformAction(ctx, act.c.ID(), act.tech)
			if err != nil {
				return fmt.Errorf("turn %d: %w", turn, err)
			}
			narrate(sess, act.c, out)
		}

		if sess.Finished() {
			break
		}
		for _, up := range sess.EndTurn() {
			narrateUpkeep(sess, up)
		}
		fmt.Printf("    %s %d/%d HP | %s %d/%d HP\n\n",
			red.Name(), red.CurrentHP(), red.MaxHP(),
			blue.Name(), blue.CurrentHP(), blue.MaxHP())
	}

	fmt.Println()
	if !sess.Finished() {
		fmt.Printf("draw after %d turns: %s %d HP, %s %d HP\n",
			maxTurns, red.Name(), red.CurrentHP(), blue.Name(), blue.CurrentHP())
		return nil
	}
	switch sess.Winner() {
	case battle.SideAllies:
		fmt.Printf("%s wins on turn %d with %d HP left\n", red.Name(), sess.Turn(), red.CurrentHP())
	case battle.SideEnemies:
		fmt.Printf("%s wins on turn %d with %d HP left\n", blue.Name(), sess.Turn(), blue.CurrentHP())
	}
	return nil
}

func spawnFighter(id, speciesID string, level, maxGuts int32, src random.Source) (*model.Creature, error) {
	tmpl := data.GetSpecies(speciesID)
	if tmpl == nil {
		return nil, fmt.Errorf("unknown species %q", speciesID)
	}
	return stat.Spawn(id, tmpl, "", level, maxGuts, src)
}

func techniqueList(c *model.Creature) string {
	out := ""
	for i, id := range c.Techniques() {
		if i > 0 {
			out += " "
		}
		out += id
	}
	return out
}

// chooseTechnique rotates through the creature's learnset, skipping moves
// it cannot afford and heals it does not need. Falls back to the first
// known technique so a starving creature still swings.
func chooseTechnique(c *model.Creature, picks map[string]int) string {
	known := c.Techniques()
	if len(known) == 0 {
		return ""
	}
	start := picks[c.ID()]
	for i := range known {
		id := known[(start+i)%len(known)]
		tech := data.GetTechnique(id)
		if tech == nil {
			continue
		}
		if tech.GutsCost > c.Guts() {
			continue
		}
		if tech.Category == data.CategoryHealing && c.CurrentHP() == c.MaxHP() {
			continue
		}
		picks[c.ID()] = (start + i + 1) % len(known)
		return id
	}
	return known[0]
}

// orderActors decides who moves first: technique priority, then effective
// Speed, then a coin flip.
func orderActors(red *model.Creature, redTech string, blue *model.Creature, blueTech string, src random.Source) (*model.Creature, string, *model.Creature, string) {
	rp, bp := techniquePriority(redTech), techniquePriority(blueTech)
	redFirst := rp > bp
	if rp == bp {
		rs, bs := red.EffectiveStat(data.StatSpeed), blue.EffectiveStat(data.StatSpeed)
		redFirst = rs > bs
		if rs == bs {
			redFirst = src.IntN(2) == 0
		}
	}
	if redFirst {
		return red, redTech, blue, blueTech
	}
	return blue, blueTech, red, redTech
}

func techniquePriority(id string) int32 {
	if tech := data.GetTechnique(id); tech != nil {
		return tech.Priority
	}
	return 0
}

func narrate(sess *battle.Session, actor *model.Creature, out *battle.Outcome) {
	tech := data.GetTechnique(out.TechniqueID)
	name := out.TechniqueID
	if tech != nil {
		name = tech.Name
	}

	if out.Failed() {
		fmt.Printf("%s tried %s but could not act (%s)\n", actor.Name(), name, out.Failure)
		return
	}

	fmt.Printf("%s used %s (guts -%d)\n", actor.Name(), name, out.GutsSpent)
	for i := range out.Targets {
		narrateTarget(sess, &out.Targets[i])
	}
	if out.SelfEffect != nil {
		narrateTarget(sess, out.SelfEffect)
	}
}

func narrateTarget(sess *battle.Session, t *battle.TargetOutcome) {
	target := sess.Creature(t.TargetID)
	tname := t.TargetID
	if target != nil {
		tname = target.Name()
	}

	switch {
	case !t.Hit && t.Damage == 0 && t.Heal == 0 && t.Modifier == nil && t.StatusApplied == data.StatusNone:
		fmt.Printf("    %s dodged\n", tname)
		return
	case t.Damage > 0:
		crit := ""
		if t.Critical {
			crit = " CRIT"
		}
		if t.Hits > 1 {
			fmt.Printf("    %s takes %d damage%s across %d hits\n", tname, t.Damage, crit, t.Hits)
		} else {
			fmt.Printf("    %s takes %d damage%s\n", tname, t.Damage, crit)
		}
	case t.Heal > 0:
		fmt.Printf("    %s recovers %d HP\n", tname, t.Heal)
	}
	if t.Modifier != nil {
		fmt.Printf("    %s: %s %+d%%\n", tname, t.Modifier.Stat, t.Modifier.Percent)
	}
	if t.StatusApplied != data.StatusNone {
		fmt.Printf("    %s is afflicted by %s\n", tname, t.StatusApplied)
	}
	if t.Defeated {
		fmt.Printf("    %s is defeated!\n", tname)
	}
}

func narrateUpkeep(sess *battle.Session, up battle.CreatureUpkeep) {
	c := sess.Creature(up.CreatureID)
	name := up.CreatureID
	if c != nil {
		name = c.Name()
	}
	if up.DamageOverTime > 0 {
		fmt.Printf("    %s suffers %d from its ailment\n", name, up.DamageOverTime)
	}
	if up.Died {
		fmt.Printf("    %s succumbed!\n", name)
	}
	if up.StatusExpired != data.StatusNone {
		fmt.Printf("    %s shook off %s\n", name, up.StatusExpired)
	}
	for _, m := range up.ModifiersExpired {
		fmt.Printf("    %s: %s modifier wore off\n", name, m.Stat)
	}
}
