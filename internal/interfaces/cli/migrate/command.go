package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/swiftticket/swiftticket/internal/infrastructure/config"
	"github.com/swiftticket/swiftticket/internal/infrastructure/database"
	"github.com/swiftticket/swiftticket/internal/infrastructure/migration"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

const scriptsDir = "./internal/infrastructure/migration/scripts"

var (
	configPath string
	name       string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long: `Manage database migrations including running migrations, checking status, and creating new migration files.
MySQL uses the versioned SQL scripts; SQLite is migrated from the models and supports "up" only.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new timestamped SQL migration file in the scripts directory.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*gorm.DB, logger.Interface, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	gormDB, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return gormDB, logger.NewLogger(), nil
}

// gooseStrategy returns the SQL script strategy, or an error on databases
// that are migrated from the models.
func gooseStrategy(gormDB *gorm.DB, log logger.Interface) (*migration.GooseStrategy, error) {
	goose, ok := migration.ForDialect(gormDB, log).(*migration.GooseStrategy)
	if !ok {
		return nil, fmt.Errorf("%s databases are migrated from the models; only \"up\" is supported", gormDB.Dialector.Name())
	}
	return goose, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	gormDB, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(gormDB)

	log.Infow("running up migrations", "dialect", gormDB.Dialector.Name())

	if err := migration.NewManager(gormDB, log).Migrate(gormDB); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	gormDB, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(gormDB)

	strategy, err := gooseStrategy(gormDB, log)
	if err != nil {
		return err
	}

	log.Infow("running down migrations", "steps", steps)

	if err := strategy.MigrateDown(gormDB, steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	gormDB, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(gormDB)

	strategy, err := gooseStrategy(gormDB, log)
	if err != nil {
		return err
	}

	version, err := strategy.GetVersion(gormDB)
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(gormDB); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

// runCreate only writes a file; it needs no config or database.
func runCreate(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger()

	scriptsPath, err := filepath.Abs(scriptsDir)
	if err != nil {
		return fmt.Errorf("failed to get scripts path: %w", err)
	}

	strategy := migration.NewGooseStrategy(scriptsPath, log).(*migration.GooseStrategy)
	if err := strategy.Create(name); err != nil {
		log.Errorw("failed to create migration", "error", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, scriptsPath)
	return nil
}
