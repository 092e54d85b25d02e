// Command locoreplay runs a scripted key sequence through the character
// controller without opening a window and prints the resulting trace.
//
// Usage:
//
//	locoreplay -script walk.yaml [-config config.yaml] [-changes]
//	locoreplay [-config config.yaml] -dump-config out.yaml
//	locoreplay [-config config.yaml] -save-config
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/locomotion/internal/config"
	"github.com/Faultbox/locomotion/internal/engine/character"
	"github.com/Faultbox/locomotion/internal/locomotion"
	"github.com/Faultbox/locomotion/internal/logger"
	"github.com/Faultbox/locomotion/internal/replay"
)

var (
	flagScript     = flag.String("script", "", "Path to replay script (required)")
	flagChanges    = flag.Bool("changes", false, "Only print frames where the state changes")
	flagDumpConfig = flag.String("dump-config", "", "Write the effective config to this path and exit")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the user config directory and exit")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if *flagDumpConfig != "" {
		if err := cfg.SaveTo(*flagDumpConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Dump config: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if *flagSaveConfig {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Save config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(filepath.Join(config.ConfigDir(), "config.yaml"))
		return
	}

	if *flagScript == "" {
		fmt.Fprintln(os.Stderr, "locoreplay: -script is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, *flagScript, *flagChanges); err != nil {
		logger.Fatal("replay failed", zap.Error(err))
	}
}

func run(cfg *config.Config, path string, changesOnly bool) error {
	script, err := replay.Load(path)
	if err != nil {
		return err
	}

	log := logger.Named("replay")
	player, err := character.New(cfg, locomotion.WithTransitionObserver(func(from, to locomotion.State) {
		log.Debug("state", zap.Stringer("from", from), zap.Stringer("to", to))
	}))
	if err != nil {
		return err
	}

	frames, err := replay.Run(script, player)
	if err != nil {
		return err
	}
	log.Info("replayed",
		zap.String("script", path),
		zap.Int("frames", len(frames)),
		zap.Stringer("final_state", player.State()),
	)

	if changesOnly {
		frames = replay.Transitions(frames)
	}
	return replay.WriteTrace(os.Stdout, frames)
}
