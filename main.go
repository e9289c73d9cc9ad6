package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"tiles/config"
	"tiles/experiments"
	"tiles/experiments/metrics"
	"tiles/utils"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	experiment := flag.String("experiment", "play", "Experiment to run: "+strings.Join(presetNames(), ", "))
	agentKind := flag.String("agent", experiments.KindExpectimax, "Agent for the play experiment: "+strings.Join(experiments.Kinds, ", "))
	games := flag.Int("games", 0, "Games per agent (overrides the config)")
	seed := flag.Uint64("seed", 0, "Seed of the first game (overrides the config)")
	depth := flag.Int("depth", 0, "Search depth (overrides the config)")
	out := flag.String("out", "", "Output directory (overrides the config)")
	verbose := flag.Bool("verbose", false, "Log every move and cache statistics")
	profiling := flag.String("profile", "", "Profile the run into the current directory: cpu, mem or trace")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	switch *profiling {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "trace":
		defer profile.Start(profile.TraceProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		log.Fatal().Msgf("unknown profile %q, want cpu, mem or trace", *profiling)
	}

	c := config.Default()
	if *configPath != "" {
		var err error
		if c, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *games > 0 {
		c.Experiment.Games = *games
	}
	if *seed > 0 {
		c.Seed = *seed
	}
	if *depth > 0 {
		c.Search.Depth = *depth
	}
	if *out != "" {
		c.Experiment.OutputDir = *out
	}

	preset, ok := experiments.Presets[*experiment]
	if !ok {
		log.Fatal().Msgf("unknown experiment %q, want one of %s", *experiment, strings.Join(presetNames(), ", "))
	}
	if utils.FindIndex(experiments.Kinds, *agentKind) < 0 {
		log.Fatal().Msgf("unknown agent %q, want one of %s", *agentKind, strings.Join(experiments.Kinds, ", "))
	}

	configs := preset(c)
	if *experiment == "play" {
		configs = []metrics.AgentConfig{experiments.AgentConfigFrom(1, *agentKind, c)}
	}

	summaries, err := experiments.Run(*experiment, c, configs)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
	}
	for _, s := range summaries {
		fmt.Printf("agent %d (%s): %d games, mean %.1f, median %.1f, best %d, reached 2048 in %.0f%%\n",
			s.Agent, s.Kind, s.Games, s.MeanScore, s.MedianScore, s.BestScore, 100*s.WinRate)
		for _, tile := range s.Tiles() {
			fmt.Printf("  max tile %5d: %d\n", tile, s.MaxTiles[tile])
		}
	}
}

func presetNames() []string {
	names := make([]string, 0, len(experiments.Presets))
	for name := range experiments.Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
