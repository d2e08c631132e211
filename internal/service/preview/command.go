package preview

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/oshokin/landing-motion/internal/config"
	"github.com/oshokin/landing-motion/internal/content"
	domain "github.com/oshokin/landing-motion/internal/domain/landing"
	"github.com/oshokin/landing-motion/internal/logger"
	"github.com/oshokin/landing-motion/internal/notify"
	"github.com/oshokin/landing-motion/internal/repository/snapshot"
)

// Options controls the landing-preview process. Non-empty values override the
// configuration file.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ContentFile specifies the landing content YAML file.
	ContentFile string
	// SnapshotFile specifies where the reader's position is kept.
	SnapshotFile string
	// LogFile receives log output.
	LogFile string
	// LogLevel is the minimum level written to LogFile.
	LogLevel string
	// Sound enables the notification chime.
	Sound bool
	// Watch reloads ContentFile when it changes.
	Watch bool
}

// Run opens the terminal, shows the landing page and blocks until the reader
// quits or ctx is canceled. The reader's position is restored on start and
// saved on exit.
func Run(ctx context.Context, opts *Options) error {
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err = resolveSettings(settings, opts); err != nil {
		return fmt.Errorf("resolve settings: %w", err)
	}

	// The terminal belongs to the screen, so logs go to a file or nowhere.
	closeLog, err := logger.OpenFile(settings.LogFile)
	if err != nil {
		return err
	}

	defer func() {
		_ = closeLog()
	}()

	if level, ok := logger.ParseLogLevel(settings.LogLevel); ok {
		logger.SetLevel(level)
	}

	ctx = logger.WithName(ctx, "landing-preview")

	page, err := content.Load(ctx, settings.ContentFile)
	if err != nil {
		return err
	}

	toast := notify.NewToast(notify.DefaultToastTTL)
	notifier := notify.Fanout{toast}

	if settings.Sound {
		chime, cerr := notify.NewChime()
		if cerr != nil {
			logger.WarnKV(ctx, "Sound disabled", "error", cerr)
		} else {
			defer chime.Close()

			notifier = append(notifier, chime)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	defer screen.Fini()

	repo := snapshot.NewFileRepository(settings.SnapshotFile)

	a, err := newApp(ctx, &appConfig{
		screen:   screen,
		settings: settings,
		content:  page,
		repo:     repo,
		toast:    toast,
		notifier: notifier,
	})
	if err != nil {
		return fmt.Errorf("initialise preview: %w", err)
	}

	logger.InfoKV(ctx, "Preview started",
		"content_file", settings.ContentFile,
		"snapshot_file", settings.SnapshotFile,
		"session_id", a.session.ID,
	)

	runErr := serve(ctx, a, settings)

	if err = a.close(ctx); err != nil {
		logger.ErrorKV(ctx, "Failed to save session", "error", err)

		if runErr == nil {
			runErr = err
		}
	}

	logger.Info(ctx, "Preview stopped")

	return runErr
}

// serve runs the screen loop and, when enabled, the content watcher next to it.
// Quitting the screen stops the watcher.
func serve(ctx context.Context, a *app, settings *config.Config) error {
	if !settings.Watch || settings.ContentFile == "" {
		return a.run(ctx)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(groupCtx)

	group.Go(func() error {
		defer cancel()

		return a.run(runCtx)
	})

	group.Go(func() error {
		return content.Watch(runCtx, settings.ContentFile, func(c *domain.Content) {
			select {
			case a.reloads <- c:
			case <-runCtx.Done():
			}
		})
	})

	return group.Wait()
}

// resolveSettings applies command-line overrides and validates the result.
func resolveSettings(settings *config.Config, opts *Options) error {
	if opts.ContentFile != "" {
		settings.ContentFile = opts.ContentFile
	}

	if opts.SnapshotFile != "" {
		settings.SnapshotFile = opts.SnapshotFile
	}

	if opts.LogFile != "" {
		settings.LogFile = opts.LogFile
	}

	if opts.LogLevel != "" {
		settings.LogLevel = opts.LogLevel
	}

	settings.Sound = settings.Sound || opts.Sound
	settings.Watch = settings.Watch || opts.Watch

	return config.Validate(settings)
}
