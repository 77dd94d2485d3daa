package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/feathergames/skyflock/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	firstKillTick  int
	victoryTick    int
	gameOverTick   int
	kills          int
	rescued        int
	shots          int
	hits           int
	maneuverStarts map[string]int
	boundaryWarns  int
	wraps          int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 7200, "ticks per run (60 = 1s)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "hunt", "scenario name")
	flag.Parse()

	if runs <= 0 || ticks <= 0 {
		fmt.Println("error: -runs and -ticks must be > 0")
		return
	}
	if scenario != "hunt" {
		fmt.Printf("error: unsupported scenario %q (supported: hunt)\n", scenario)
		return
	}

	fmt.Printf("=== Headless Flight Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		scenario, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runScenarioHunt(i+1, seed, ticks)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

// runScenarioHunt flies a simple pursuit autopilot: full throttle, bank
// toward the nearest enemy, pitch toward its altitude, trigger held.
func runScenarioHunt(runIndex int, seed int64, ticks int) runStats {
	ts := game.NewTestSim(
		game.WithSeed(seed),
		game.WithFlatTerrain(),
	)

	ts.RunTicksFn(ticks, func(tick int) game.Input {
		w := ts.World
		in := game.Input{Throttle: true, Shoot: true}

		var target game.Vec3
		found := false
		best := math.MaxFloat64
		for _, e := range w.Enemies {
			d := e.Pos.Sub(w.Player.Pos).LenSq()
			if d < best {
				best = d
				target = e.Pos
				found = true
			}
		}
		if !found {
			return in
		}
		p := w.Player

		// Bank toward the target heading.
		want := math.Atan2(target.X-p.Pos.X, target.Z-p.Pos.Z)
		diff := want - p.Pose.Yaw
		for diff > math.Pi {
			diff -= 2 * math.Pi
		}
		for diff <= -math.Pi {
			diff += 2 * math.Pi
		}
		if diff > 0.1 {
			in.Left = true
		} else if diff < -0.1 {
			in.Right = true
		}

		// Chase the target's altitude.
		if target.Y > p.Pos.Y+5 {
			in.Up = true
		} else if target.Y < p.Pos.Y-5 {
			in.Down = true
		}
		return in
	})

	stats := runStats{
		runIndex:       runIndex,
		seed:           seed,
		firstKillTick:  -1,
		victoryTick:    -1,
		gameOverTick:   -1,
		maneuverStarts: map[string]int{},
	}

	for _, e := range ts.SimLog.Entries() {
		switch {
		case e.Category == "combat" && e.Key == "destroyed":
			stats.kills++
			if stats.firstKillTick < 0 {
				stats.firstKillTick = e.Tick
			}
		case e.Category == "enemy" && e.Key == "maneuver":
			stats.maneuverStarts[e.Value]++
		case e.Category == "world" && e.Key == "victory":
			stats.victoryTick = e.Tick
		case e.Category == "world" && e.Key == "game_over":
			stats.gameOverTick = e.Tick
		case e.Category == "event" && e.Key == "warning_on":
			stats.boundaryWarns++
		}
	}
	stats.rescued = ts.World.Rescued
	stats.shots = ts.Reporter.TotalShots
	stats.hits = ts.Reporter.TotalHits
	return stats
}

func printRun(s runStats) {
	fmt.Printf("--- run %d (seed %d) ---\n", s.runIndex, s.seed)
	acc := 0.0
	if s.shots > 0 {
		acc = float64(s.hits) / float64(s.shots) * 100
	}
	fmt.Printf("shots=%d hits=%d (%.0f%%) kills=%d rescued=%d\n",
		s.shots, s.hits, acc, s.kills, s.rescued)
	fmt.Printf("first_kill=T%d victory=T%d game_over=T%d boundary_warnings=%d\n",
		s.firstKillTick, s.victoryTick, s.gameOverTick, s.boundaryWarns)
	if len(s.maneuverStarts) > 0 {
		fmt.Printf("maneuvers:")
		for _, k := range []string{"dive", "evade", "barrel_roll"} {
			if n := s.maneuverStarts[k]; n > 0 {
				fmt.Printf(" %s=%d", k, n)
			}
		}
		fmt.Println()
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	var shots, hits, kills, rescued, victories, crashes int
	for _, s := range all {
		shots += s.shots
		hits += s.hits
		kills += s.kills
		rescued += s.rescued
		if s.victoryTick >= 0 {
			victories++
		}
		if s.gameOverTick >= 0 {
			crashes++
		}
	}
	acc := 0.0
	if shots > 0 {
		acc = float64(hits) / float64(shots) * 100
	}
	fmt.Printf("=== aggregate over %d runs ===\n", len(all))
	fmt.Printf("shots=%d hits=%d (%.0f%%) kills=%d rescued=%d victories=%d crashes=%d\n",
		shots, hits, acc, kills, rescued, victories, crashes)
}
