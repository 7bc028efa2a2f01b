package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/hackgame/arena/internal/config"
	"github.com/hackgame/arena/internal/core/event"
	coresys "github.com/hackgame/arena/internal/core/system"
	"github.com/hackgame/arena/internal/data"
	"github.com/hackgame/arena/internal/entity"
	"github.com/hackgame/arena/internal/input"
	"github.com/hackgame/arena/internal/level"
	"github.com/hackgame/arena/internal/persist"
	"github.com/hackgame/arena/internal/render"
	"github.com/hackgame/arena/internal/scripting"
	"github.com/hackgame/arena/internal/system"
	"github.com/hackgame/arena/internal/world"
)

// endScreen keeps the final frame up after the match is decided.
const endScreen = time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := config.PathFromEnv()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	log.Info("starting", zap.String("name", cfg.Server.Name), zap.String("config", cfgPath))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Match history database (optional)
	var store system.MatchStore
	if cfg.Database.Enabled {
		dbCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		db, err := persist.NewDB(dbCtx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()

		if err := persist.RunMigrations(dbCtx, db.Pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		store = persist.NewMatchRepo(db)
	}

	// 4. Lua engine for enemy fire patterns
	engine, err := scripting.NewEngine(cfg.Scripting.Dir, log)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer engine.Close()

	// 5. Level
	file, err := data.LoadLevel(cfg.Simulation.Level)
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}
	bus := event.NewBus()
	lvl, err := level.Build(file, level.Deps{
		TileSize:  cfg.Simulation.TileSize,
		EnemyFire: cfg.Simulation.EnemyFire,
		Volley:    scriptedVolley(engine),
		Events:    bus,
		Log:       log,
	})
	if err != nil {
		return fmt.Errorf("build level: %w", err)
	}

	// 6. Renderer and input
	var (
		renderer render.Renderer
		keys     <-chan input.Key
		term     *render.Terminal
	)
	switch cfg.Render.Mode {
	case "terminal":
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("terminal init: %w", err)
		}
		term = render.NewTerminal(screen, cfg.Simulation.TileSize, log)
		renderer, keys = term, term.Keys()
	default:
		renderer = render.NewHeadless()
	}

	// 7. Systems
	control := &system.Control{}
	stats := &system.Stats{}
	stats.Subscribe(lvl.Events)
	persistSys := system.NewPersistenceSystem(lvl, store, stats, file.Name, log)

	runner := coresys.NewRunner()
	runner.Register(system.NewInputSystem(keys, lvl, control, system.DefaultHold, log))
	runner.Register(system.NewEventDispatchSystem(lvl.Events))
	runner.Register(system.NewTickSystem(lvl))
	runner.Register(system.NewCleanupSystem(lvl, log))
	runner.Register(system.NewRenderSystem(lvl, renderer, control, stats, log))
	runner.Register(persistSys)
	driver := system.NewDriver(runner, control)

	// 8. Run
	g, gctx := errgroup.WithContext(ctx)
	if term != nil {
		g.Go(func() error { return term.PollInput(gctx) })
	}
	g.Go(func() error {
		if term != nil {
			defer term.Close()
		}
		return gameLoop(gctx, driver, lvl, control, stats, cfg.Simulation, log)
	})
	err = g.Wait()

	persistSys.SaveUnfinished()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("stopped",
		zap.Uint64("frames", lvl.State.Frame),
		zap.String("winner", lvl.State.Winner()),
		zap.Int("kills", stats.Kills),
	)
	return nil
}

func gameLoop(ctx context.Context, driver *system.Driver, lvl *world.Level, control *system.Control,
	stats *system.Stats, cfg config.SimulationConfig, log *zap.Logger) error {
	ticker := time.NewTicker(cfg.TickRate)
	defer ticker.Stop()

	var endedAt time.Time
	for {
		select {
		case <-ctx.Done():
			log.Info("shutdown signal")
			return ctx.Err()
		case now := <-ticker.C:
			driver.Frame(cfg.TickRate)

			switch {
			case control.Quitting():
				log.Info("quit requested")
				return nil
			case cfg.MaxFrames > 0 && lvl.State.Frame >= cfg.MaxFrames:
				log.Info("frame limit reached", zap.Uint64("max_frames", cfg.MaxFrames))
				return nil
			case stats.Ended:
				if endedAt.IsZero() {
					endedAt = now
				} else if now.Sub(endedAt) >= endScreen {
					return nil
				}
			}
		}
	}
}

// scriptedVolley asks the Lua engine for each volley; an empty answer makes
// the enemy fall back to its built-in pattern.
func scriptedVolley(engine *scripting.Engine) entity.VolleyPattern {
	return func(n int, hp int32) []entity.Shot {
		shots := engine.EnemyVolley(scripting.VolleyContext{Volley: n, Hitpoints: int(hp)})
		out := make([]entity.Shot, len(shots))
		for i, s := range shots {
			out[i] = entity.Shot{Angle: s.Angle, Unbreakable: s.Unbreakable}
		}
		return out
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	// The terminal renderer owns stdout/stderr, so logs go to a file when set.
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	} else if cfg.Format != "json" {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return zapCfg.Build()
}
