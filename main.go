// knucklebones plays the Knucklebones dice game between two random players,
// or replays a recorded transcript, and reports boards and scores.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"go.uber.org/zap"

	"knucklebones/config"
	"knucklebones/engine"
	"knucklebones/record"
	"knucklebones/types"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagColumns = flag.Int("columns", 0, "Number of columns per board")
	flagRows    = flag.Int("rows", 0, "Number of rows per column")
	flagFaces   = flag.Int("faces", 0, "Highest die face")
	flagGames   = flag.Int("games", 0, "Number of self-play games")
	flagSeed    = flag.Uint64("seed", 0, "Random seed (0 = time based)")
	flagReplay  = flag.String("replay", "", "Replay a transcript such as \"6@0 3@2\"")
	flagUndo    = flag.Int("undo", 0, "Drop the last n plies of the transcript before replaying")
	flagSave    = flag.Bool("save-config", false, "Write the effective settings to the config file")
	flagVerbose = flag.Bool("verbose", false, "Print both boards after every move")
	flagJSON    = flag.Bool("json", false, "Print the final state of each game as JSON")
	flagDebug   = flag.Bool("debug", false, "Use the development logger")
	flagVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("knucklebones %s\n", Version)
		return
	}

	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Log.Development || *flagDebug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if *flagSave {
		if err := cfg.Save(); err != nil {
			log.Error("saving config failed", zap.Error(err))
			os.Exit(1)
		}
		log.Info("config saved")
	}

	d := &driver{
		log:     log,
		out:     os.Stdout,
		cfg:     cfg.Game.Engine(),
		verbose: *flagVerbose,
		json:    *flagJSON,
		undo:    *flagUndo,
	}

	if *flagReplay != "" {
		if err := d.replay(*flagReplay); err != nil {
			log.Error("replay failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	seed := cfg.Driver.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info("starting self-play",
		zap.Int("games", cfg.Driver.Games),
		zap.Uint64("seed", seed),
		zap.Int("columns", cfg.Game.Columns),
		zap.Int("rows", cfg.Game.Rows),
		zap.Int("faces", cfg.Game.MaxDieValue),
	)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := 0; i < cfg.Driver.Games; i++ {
		if _, err := d.selfPlay(rng); err != nil {
			log.Error("self-play failed", zap.Int("game", i), zap.Error(err))
			os.Exit(1)
		}
	}
}

// applyFlags overrides config values with any flags that were set.
func applyFlags(cfg *config.Config) {
	if *flagColumns > 0 {
		cfg.Game.Columns = *flagColumns
	}
	if *flagRows > 0 {
		cfg.Game.Rows = *flagRows
	}
	if *flagFaces > 0 {
		cfg.Game.MaxDieValue = *flagFaces
	}
	if *flagGames > 0 {
		cfg.Driver.Games = *flagGames
	}
	if *flagSeed > 0 {
		cfg.Driver.Seed = *flagSeed
	}
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// driver runs games and writes boards to out.
type driver struct {
	log     *zap.Logger
	out     io.Writer
	cfg     engine.GameConfig
	verbose bool
	json    bool
	undo    int
}

// selfPlay plays one game where both players pick a random open column.
func (d *driver) selfPlay(rng *rand.Rand) (*record.Record, error) {
	dice := engine.NewPCGRoller(rng.Uint64(), rng.Uint64())
	g, err := engine.NewGame(d.cfg, engine.WithRoller(dice))
	if err != nil {
		return nil, err
	}
	rec := record.New(g.Config())
	log := d.log.With(zap.Stringer("match", rec.ID))

	for !g.IsGameOver() {
		columns := g.AvailableColumns(g.CurrentPlayer())
		if len(columns) == 0 {
			return rec, errors.New("no open column on a running game")
		}
		column := columns[rng.IntN(len(columns))]
		player, die := g.CurrentPlayer(), g.DieValue()
		if !rec.Play(g, column) {
			return rec, fmt.Errorf("move %d@%d rejected", die, column)
		}
		log.Debug("move",
			zap.Stringer("player", player),
			zap.Int("die", die),
			zap.Int("column", column),
			zap.String("encoded", g.Encode()),
		)
		if d.verbose {
			fmt.Fprintf(d.out, "Player %s placed %d in column %d\n", player, die, column)
			d.printBoards(g)
		}
	}

	d.logResult(log, g, rec)
	return rec, d.printFinal(g)
}

// replay rebuilds a game from a transcript, dropping the last d.undo plies.
func (d *driver) replay(transcript string) error {
	plies, err := record.Parse(transcript)
	if err != nil {
		return err
	}
	rec := record.New(d.cfg)
	for _, p := range plies {
		rec.Add(p)
	}
	rec.Undo(d.undo)
	g, err := record.Replay(rec.Config, rec.Plies())
	if err != nil {
		return err
	}
	d.printBoards(g)
	d.logResult(d.log.With(zap.Stringer("match", rec.ID)), g, rec)
	return d.printFinal(g)
}

func (d *driver) logResult(log *zap.Logger, g *engine.Game, rec *record.Record) {
	cfg := g.Config()
	fields := []zap.Field{
		zap.Int("columns", cfg.Columns),
		zap.Int("rows", cfg.Rows),
		zap.Int("turns", rec.Len()),
		zap.Int("score_a", g.Score(types.PlayerA)),
		zap.Int("score_b", g.Score(types.PlayerB)),
		zap.Bool("finished", g.IsGameOver()),
		zap.String("transcript", rec.String()),
	}
	if winner, ok := g.Winner(); ok {
		fields = append(fields, zap.Stringer("winner", winner))
	}
	log.Info("result", fields...)
}

func (d *driver) printBoards(g *engine.Game) {
	for _, p := range types.Players {
		fmt.Fprint(d.out, g.Render(p))
		fmt.Fprintf(d.out, "Number of elements: %d, Score: %d\n\n", g.OccupiedCount(p), g.Score(p))
	}
}

func (d *driver) printFinal(g *engine.Game) error {
	if !d.json {
		return nil
	}
	data, err := json.MarshalIndent(g.State(), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(d.out, string(data))
	return err
}
