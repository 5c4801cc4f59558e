// Command seed validates a storefront seed file (JSON or YAML) and imports it
// into MongoDB. Import refuses to write anything while any record is invalid.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/storefront/internal/seed"
	"github.com/dmitrymomot/storefront/pkg/config"
	"github.com/dmitrymomot/storefront/pkg/environment"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/mongo"
)

// Config is read from the environment; arguments and flags override it.
type Config struct {
	SeedFile       string `env:"SEED_FILE"`
	AppEnv         string `env:"APP_ENV" envDefault:"development"`
	LogLevel       string `env:"LOG_LEVEL"`
	StrictSettings bool   `env:"SEED_STRICT_SETTINGS" envDefault:"false"`
	BcryptCost     int    `env:"SEED_BCRYPT_COST" envDefault:"10"`
}

var (
	errNoSeedFile  = errors.New("no seed file given: pass a path or set SEED_FILE")
	errInvalidSeed = errors.New("seed file contains invalid records")
)

// openStore connects the import command to its database. Tests replace it.
var openStore = func(ctx context.Context) (seed.Store, func(), error) {
	var cfg mongo.Config
	if err := config.Load(&cfg); err != nil {
		return nil, nil, err
	}
	db, err := mongo.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = db.Client().Disconnect(context.WithoutCancel(ctx)) }
	return mongo.NewStore(db), closeFn, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var strict bool

	root := &cobra.Command{
		Use:   "seed",
		Short: "Validate and import storefront seed data",
		Long: `Validates every product, user, web page and setting in a seed file
against the storefront schemas. The file may be JSON or YAML; without
an argument the SEED_FILE environment variable is used.

Examples:
  seed check data/seed.json
  seed check --strict-settings data/seed.yaml
  MONGODB_URI=mongodb://localhost:27017 seed import data/seed.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&strict, "strict-settings", false,
		"require default* settings to reference an available* entry")

	// loadConfig merges the environment with the command line.
	loadConfig := func(cmd *cobra.Command, args []string) (Config, error) {
		var cfg Config
		if err := config.Load(&cfg); err != nil {
			return cfg, err
		}
		if len(args) == 1 {
			cfg.SeedFile = args[0]
		}
		if cmd.Flags().Changed("strict-settings") {
			cfg.StrictSettings = strict
		}
		return cfg, nil
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "check [file]",
			Short: "Report every invalid record of a seed file",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig(cmd, args)
				if err != nil {
					return err
				}
				return check(cmd.Context(), cfg, cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "import [file]",
			Short: "Replace the seeded MongoDB collections with a valid seed file",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig(cmd, args)
				if err != nil {
					return err
				}
				return importSeed(cmd.Context(), cfg, cmd.OutOrStdout())
			},
		},
	)

	return root
}

// setup builds the logger and loads the seed document.
func setup(ctx context.Context, cfg Config, out io.Writer) (context.Context, *slog.Logger, seed.Document, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	env := environment.Parse(cfg.AppEnv)
	ctx = environment.WithContext(ctx, env)

	opts := []logger.Option{
		logger.WithEnvironment(env, "seed"),
		logger.WithContextExtractors(environment.LoggerExtractor()),
		logger.WithOutput(out),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel, slog.LevelInfo)))
	}
	log := logger.New(opts...)

	if cfg.SeedFile == "" {
		log.ErrorContext(ctx, "seed failed", logger.Error(errNoSeedFile))
		return ctx, log, seed.Document{}, errNoSeedFile
	}
	doc, err := seed.Load(cfg.SeedFile)
	if err != nil {
		log.ErrorContext(ctx, "seed failed", logger.Error(err))
		return ctx, log, seed.Document{}, err
	}
	return ctx, log, doc, nil
}

func newChecker(cfg Config, log *slog.Logger) *seed.Checker {
	return seed.NewChecker(
		seed.WithLogger(log),
		seed.WithStrictSettings(cfg.StrictSettings),
		seed.WithBcryptCost(cfg.BcryptCost),
	)
}

func check(ctx context.Context, cfg Config, out io.Writer) error {
	ctx, log, doc, err := setup(ctx, cfg, out)
	if err != nil {
		return err
	}
	report := newChecker(cfg, log).Check(ctx, doc)
	if !report.OK() {
		return fmt.Errorf("%w: %d of %d", errInvalidSeed, report.Failed, report.Checked)
	}
	return nil
}

func importSeed(ctx context.Context, cfg Config, out io.Writer) error {
	ctx, log, doc, err := setup(ctx, cfg, out)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx)
	if err != nil {
		log.ErrorContext(ctx, "seed failed", logger.Error(err))
		return err
	}
	defer closeStore()

	if _, err := newChecker(cfg, log).Import(ctx, store, doc); err != nil {
		if errors.Is(err, seed.ErrInvalidSeed) {
			return errors.Join(errInvalidSeed, err)
		}
		return err
	}
	log.InfoContext(ctx, "seeded database successfully")
	return nil
}
