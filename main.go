package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iburimskiy/nmbk-site/internal/config"
	"github.com/iburimskiy/nmbk-site/internal/content"
	"github.com/iburimskiy/nmbk-site/internal/game"
	"github.com/iburimskiy/nmbk-site/internal/logging"
	"github.com/iburimskiy/nmbk-site/internal/notify"
	"github.com/iburimskiy/nmbk-site/internal/sound"
)

var (
	contentFile string
	verbose     bool
	noSound     bool
	noSplash    bool
)

var rootCmd = &cobra.Command{
	Use:   "nmbk",
	Short: "NMBK Technologies site",
	Long: `Opens the NMBK site in a window: Solutions, Enrichment and Contact pages
over an animated particle hero.

Mouse wheel, arrows, PageUp/PageDown, Home/End scroll. Esc quits.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("content") {
			cfg.ContentFile = contentFile
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		if noSound {
			cfg.Sound = false
		}
		return run(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.Flags().StringVar(&contentFile, "content", "", "YAML content file to load and watch (overrides NMBK_CONTENT_FILE)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().BoolVar(&noSound, "no-sound", false, "disable interface sounds")
	rootCmd.Flags().BoolVar(&noSplash, "no-splash", false, "skip the splash loader")
}

func run(ctx context.Context, cfg config.Env) error {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	notifier := notify.New(cfg.Notify, logger.Named("notify"))

	store := content.NewStore(content.Default())
	if cfg.ContentFile != "" {
		c, err := content.Load(cfg.ContentFile)
		if err != nil {
			return err
		}
		store.Set(c)
		w, err := content.NewWatcher(cfg.ContentFile, store, config.ContentDebounce, logger.Named("content"))
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			logger.Warn("content hot reload disabled", zap.Error(err))
		}
		defer w.Stop()
	}

	splash := config.SplashDuration
	if noSplash {
		splash = 0
	}
	g, err := game.New(game.Options{
		Content:   store,
		Sound:     sound.New(cfg.Sound, logger.Named("sound")),
		Notifier:  notifier,
		Particles: cfg.Particles,
		Splash:    splash,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(store.Get().Brand + " - Architecting The Future")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	logger.Info("starting",
		zap.Int("width", cfg.WindowWidth),
		zap.Int("height", cfg.WindowHeight),
		zap.Int("particles", cfg.Particles),
		zap.String("content", cfg.ContentFile))
	start := time.Now()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		notifier.Error("NMBK", fmt.Sprintf("The window closed unexpectedly: %v", err))
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("stopped", zap.Duration("uptime", time.Since(start)))
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
