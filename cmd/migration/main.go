// Command migration manages the galero schema and loads the demo
// competition into a fresh database.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/galero/internal/config"
	"github.com/riskibarqy/galero/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/galero/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/galero/internal/platform/logging"
)

const seedTimeout = 30 * time.Second

// defaultMigrationDirs are tried after MIGRATIONS_DIR, in order: a checkout
// and the container image layout.
var defaultMigrationDirs = []string{"./db/migrations", "/app/db/migrations"}

type command struct {
	args string
	run  func(ctx context.Context, dbURL string, args []string) error
}

var commands = map[string]command{
	"up":      {run: withMigrator(migrateUp)},
	"down":    {args: "[steps]", run: withMigrator(migrateDown)},
	"version": {run: withMigrator(printVersion)},
	"force":   {args: "<version>", run: withMigrator(forceVersion)},
	"goto":    {args: "<version>", run: withMigrator(gotoVersion)},
	"seed":    {run: seed},
}

var logger = logging.NewNop()

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, ok := commands[strings.ToLower(strings.TrimSpace(os.Args[1]))]
	if !ok {
		usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger = logging.New(cfg.LogLevel, logging.FormatConsole).Named("migration")
	defer func() { _ = logger.Sync() }()

	dbURL := strings.TrimSpace(cfg.DBURL)
	if dbURL == "" {
		logger.Error("DB_URL is required")
		_ = logger.Sync()
		os.Exit(1)
	}

	if err := cmd.run(context.Background(), dbURL, os.Args[2:]); err != nil {
		logger.Error("migration command failed", "command", os.Args[1], "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func withMigrator(fn func(m *migrate.Migrate, args []string) error) func(context.Context, string, []string) error {
	return func(_ context.Context, dbURL string, args []string) error {
		dir, err := migrationsDir()
		if err != nil {
			return err
		}
		m, err := migrate.New("file://"+filepath.ToSlash(dir), dbURL)
		if err != nil {
			return fmt.Errorf("open migrator: %w", err)
		}
		defer func() {
			srcErr, dbErr := m.Close()
			if err := errors.Join(srcErr, dbErr); err != nil {
				logger.Warn("close migrator", "error", err)
			}
		}()
		return fn(m, args)
	}
}

// applied treats ErrNoChange as success.
func applied(err error, msg string, args ...any) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("schema already current")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info(msg, args...)
	return nil
}

func migrateUp(m *migrate.Migrate, _ []string) error {
	return applied(m.Up(), "migrations applied")
}

func migrateDown(m *migrate.Migrate, args []string) error {
	steps, err := parseSteps(args)
	if err != nil {
		return err
	}
	return applied(m.Steps(-steps), "migrations rolled back", "steps", steps)
}

func printVersion(m *migrate.Migrate, _ []string) error {
	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		fmt.Println("version: none\ndirty: false")
		return nil
	case err != nil:
		return fmt.Errorf("read version: %w", err)
	}
	fmt.Printf("version: %d\ndirty: %t\n", version, dirty)
	return nil
}

func forceVersion(m *migrate.Migrate, args []string) error {
	if len(args) == 0 {
		return errors.New("force needs a version")
	}
	version, err := parseVersion(args[0])
	if err != nil {
		return err
	}
	if err := m.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	logger.Info("version forced", "version", version)
	return nil
}

func gotoVersion(m *migrate.Migrate, args []string) error {
	if len(args) == 0 {
		return errors.New("goto needs a target version")
	}
	target, err := parseTarget(args[0])
	if err != nil {
		return err
	}
	return applied(m.Migrate(target), "migrated", "version", target)
}

// seed loads the bundled demo competition. It is a no-op once any edition
// exists.
func seed(ctx context.Context, dbURL string, _ []string) error {
	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", dbURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = db.Close() }()

	seeded, err := postgres.BootstrapSeed(ctx, db, memory.SeedSnapshot())
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	if seeded {
		logger.Info("seed applied")
	} else {
		logger.Info("seed skipped, editions already present")
	}
	return nil
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps < 1 {
		return 0, fmt.Errorf("down steps must be >= 1, got %d", steps)
	}
	return steps, nil
}

func parseVersion(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("version must be >= 0, got %d", v)
	}
	return v, nil
}

func parseTarget(raw string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(v), nil
}

func migrationsDir() (string, error) {
	candidates := append([]string{strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))}, defaultMigrationDirs...)
	for _, c := range candidates {
		if c == "" {
			continue
		}
		abs, err := filepath.Abs(c)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", fmt.Errorf("no migrations directory among MIGRATIONS_DIR, %s", strings.Join(defaultMigrationDirs, ", "))
}

func usage() {
	bin := filepath.Base(os.Args[0])
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(os.Stderr, "usage: %s <command> [args]\n\ncommands:\n", bin)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s %s %s\n", bin, name, commands[name].args)
	}
}
