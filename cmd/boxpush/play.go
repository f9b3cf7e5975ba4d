package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxpush/internal/audio"
	"github.com/vovakirdan/boxpush/internal/game"
	"github.com/vovakirdan/boxpush/internal/platform/tui"
)

var (
	flagStartLevel int
	flagPick       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle",
	Long: `Start playing. Clearing the last level wraps back to the first.

Controls:
  Arrows/WASD/hjkl - Move
  R                - Restart level
  M                - Toggle sound
  Ctrl+S           - Save screenshot
  Q/Ctrl+C         - Quit

Examples:
  boxpush play
  boxpush play --level 3
  boxpush play --pick
  boxpush play --mute --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "level", 1, "Level number to start on (1-based)")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the starting level from a list")
}

func runPlay(_ *cobra.Command, _ []string) {
	a := setup(true)
	defer a.close()

	if flagStartLevel < 1 || flagStartLevel > a.catalog.Len() {
		fmt.Fprintf(os.Stderr, "Error: level %d out of range (1-%d)\n", flagStartLevel, a.catalog.Len())
		os.Exit(1)
	}
	start := flagStartLevel - 1

	rt := runtimeConfig()

	// Open records storage
	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	if flagPick {
		level, ok, err := tui.RunLevelPicker(a.catalog, store, a.theme, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		// User pressed back or quit
		if !ok {
			return
		}
		start = level
	}

	opts := []game.Option{
		game.WithStartLevel(start),
		game.WithMuted(a.cfg.Audio.Muted),
		game.WithLogger(a.logger),
		game.WithPlayer(playerName()),
	}
	if store != nil {
		opts = append(opts, game.WithRecorder(store))
	}
	sess := game.NewSession(a.catalog, opts...)

	gen := audio.NewGenerator(a.audioSink(), sess, a.logger)
	sess.SetNotifier(game.NewFeedback(gen))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if a.cfg.Audio.Enabled && a.cfg.Audio.Melody {
		go audio.NewMelody(gen, a.melodyOptions(rt.Seed)...).Run(ctx)
	}

	if err := tui.Run(sess, rt, a.glyphs, a.theme); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	if n := sess.Clears(); n > 0 {
		fmt.Printf("Cleared %d level(s) this session.\n", n)
	}
}

// audioSink opens the speaker, falling back to silence when audio is
// disabled or the device cannot be opened.
func (a *app) audioSink() audio.Sink {
	if !a.cfg.Audio.Enabled {
		return audio.NopSink{}
	}
	sink := audio.NewSpeakerSink(a.cfg.Audio.Volume)
	if err := sink.Init(); err != nil {
		a.logger.Warn("audio device unavailable, playing silently", "err", err)
		return audio.NopSink{}
	}
	return sink
}

// melodyOptions maps audio config onto melody options.
func (a *app) melodyOptions(seed int64) []audio.MelodyOption {
	opts := []audio.MelodyOption{
		audio.WithInterval(time.Duration(a.cfg.Audio.MelodyIntervalMs) * time.Millisecond),
		audio.WithNoteLength(a.cfg.Audio.MelodyNoteMs),
	}
	if seed != 0 {
		opts = append(opts, audio.WithSeed(seed))
	}
	return opts
}
