package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/bobmelting/pkg/app"
	"github.com/gonewx/bobmelting/pkg/config"
	"github.com/gonewx/bobmelting/pkg/embedded"
	"github.com/gonewx/bobmelting/pkg/game"
)

var (
	verbose    = flag.Bool("verbose", false, "Enable log output")
	configPath = flag.String("config", "", "Game config file (default: embedded data/game.yaml)")
	levelPath  = flag.String("level", "", "Level map file (default: embedded data/levels/snowfield.yaml)")
	seed       = flag.Int64("seed", 0, "Random seed of the first session (0 = clock)")
	showBounds = flag.Bool("bounds", false, "Draw enemy boundaries and debug info")
	headless   = flag.Bool("headless", false, "Run sessions without a window and print survival times")
	runs       = flag.Int("runs", 8, "Number of headless sessions, seeded seed, seed+1, ...")
	seconds    = flag.Int("seconds", 300, "Simulated time cap per headless session")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	if *headless {
		if err := runHeadless(); err != nil {
			fmt.Fprintf(os.Stderr, "headless run failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		LevelPath:  *levelPath,
		Seed:       *seed,
		ShowBounds: *showBounds,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to start: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Bob is Melting")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.DefaultTPS)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

func runHeadless() error {
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	if *runs < 1 {
		return fmt.Errorf("-runs must be >= 1, got %d", *runs)
	}

	cfg, level, err := app.LoadResources(*configPath, *levelPath)
	if err != nil {
		return err
	}

	base := *seed
	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = base + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := game.RunBatch(ctx, cfg, level, seeds, *seconds)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tSURVIVED\tHEALTH\tMELTED\tENEMIES\tSTAGE")
	total := 0
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%ds\t%d\t%t\t%d\t%d\n", r.Seed, r.Survived, r.FinalHealth, r.GameOver, r.Enemies, r.Stage)
		total += r.Survived
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nLevel %q, %d runs, mean survival %.1fs\n", level.Name, len(results), float64(total)/float64(len(results)))
	return nil
}
