package bot

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	moderationApp "github.com/swiftticket/swiftticket/internal/application/moderation"
	settingApp "github.com/swiftticket/swiftticket/internal/application/setting"
	settingUsecases "github.com/swiftticket/swiftticket/internal/application/setting/usecases"
	ticketApp "github.com/swiftticket/swiftticket/internal/application/ticket"
	"github.com/swiftticket/swiftticket/internal/domain/permission"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/infrastructure/cache"
	"github.com/swiftticket/swiftticket/internal/infrastructure/config"
	"github.com/swiftticket/swiftticket/internal/infrastructure/database"
	dg "github.com/swiftticket/swiftticket/internal/infrastructure/discord"
	"github.com/swiftticket/swiftticket/internal/infrastructure/migration"
	permissionInfra "github.com/swiftticket/swiftticket/internal/infrastructure/permission"
	"github.com/swiftticket/swiftticket/internal/infrastructure/repository"
	"github.com/swiftticket/swiftticket/internal/infrastructure/transcript"
	discordIface "github.com/swiftticket/swiftticket/internal/interfaces/discord"
	httpIface "github.com/swiftticket/swiftticket/internal/interfaces/http"
	"github.com/swiftticket/swiftticket/internal/interfaces/http/handlers"
	"github.com/swiftticket/swiftticket/internal/shared/db"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
	"github.com/swiftticket/swiftticket/internal/shared/version"
)

const shutdownTimeout = 30 * time.Second

var (
	configPath  string
	skipMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Run the Discord bot",
		Long:  `Connect to the Discord gateway and serve ticket commands until interrupted.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not apply database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()
	log.Infow("starting swiftticket", "version", version.String())

	gormDB, err := database.Open(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(gormDB); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	if !skipMigrate {
		if err := migration.NewManager(gormDB, log).Migrate(gormDB); err != nil {
			return err
		}
	}

	session, err := dg.NewSession(cfg.Discord)
	if err != nil {
		return err
	}
	// The bot's own id is needed before the gateway opens: it authors
	// automatic warnings and owns the slash commands.
	self, err := session.User("@me")
	if err != nil {
		return fmt.Errorf("failed to identify bot user: %w", err)
	}
	appID := cfg.Discord.AppID
	if appID == "" {
		appID = self.ID
	}

	settingRepo, redisClient, err := settingsRepository(cfg, gormDB, log)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	enforcer, err := newEnforcer(cfg, gormDB, log)
	if err != nil {
		return err
	}
	policy := permission.NewPolicy(enforcer)

	router := discordIface.NewRouter(buildContainer(cfg, gormDB, session, settingRepo, policy, self.ID, log))
	bot := discordIface.NewBot(session, router, appID, cfg.Discord.GuildID, log)

	var ops *httpIface.Server
	if cfg.Ops.Enabled {
		ops = newOpsServer(cfg, gormDB, bot, log)
		ops.Start()
	}

	if err := bot.Start(); err != nil {
		return err
	}
	log.Infow("bot connected", "user", self.Username, "app_id", appID, "guild_scope", cfg.Discord.GuildID)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Infow("received signal, shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := bot.Stop(ctx); err != nil {
		log.Errorw("bot forced to shutdown", "error", err)
	}
	if ops != nil {
		if err := ops.Shutdown(ctx); err != nil {
			log.Errorw("ops server forced to shutdown", "error", err)
		}
	}

	log.Infow("bot exited gracefully")
	return nil
}

// settingsRepository returns the settings table, behind the redis cache when
// enabled. An unreachable redis is logged and skipped.
func settingsRepository(cfg *config.Config, gormDB *gorm.DB, log logger.Interface) (setting.Repository, *redis.Client, error) {
	var repo setting.Repository = repository.NewGuildSettingsRepository(gormDB)
	if !cfg.Redis.Enabled {
		return repo, nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unavailable, settings cache disabled", "address", cfg.Redis.GetAddr(), "error", err)
		_ = client.Close()
		return repo, nil, nil
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

	ttl := time.Duration(cfg.Redis.SettingsTTLSeconds) * time.Second
	return cache.NewCachedSettingsRepository(repo, client, ttl, log.Named("settings_cache")), client, nil
}

func newEnforcer(cfg *config.Config, gormDB *gorm.DB, log logger.Interface) (*permissionInfra.Enforcer, error) {
	if !cfg.Permission.Persist {
		return permissionInfra.NewDefaultMemoryEnforcer(log)
	}
	e, err := permissionInfra.NewEnforcer(gormDB, log)
	if err != nil {
		return nil, err
	}
	if err := permissionInfra.InitTicketPermissions(e, log); err != nil {
		return nil, err
	}
	return e, nil
}

func buildContainer(
	cfg *config.Config,
	gormDB *gorm.DB,
	session *discordgo.Session,
	settingRepo setting.Repository,
	policy *permission.Policy,
	systemActor string,
	log logger.Interface,
) *discordIface.Container {
	provider := settingUsecases.NewSettingProvider(settingRepo, settingUsecases.SettingProviderConfig{
		Timezone: cfg.Discord.DefaultTimezone,
	}, log)

	categoryRepo := repository.NewCategoryRepository(gormDB)
	modRepo := repository.NewModActionRepository(gormDB)

	moderation := moderationApp.NewServiceDDD(modRepo, provider, policy, dg.NewMemberModerator(session), systemActor, log)

	tickets := ticketApp.NewServiceDDD(ticketApp.ServiceDeps{
		TicketRepo:     repository.NewTicketRepository(gormDB),
		CategoryRepo:   categoryRepo,
		LinkRepo:       repository.NewTicketLinkRepository(gormDB),
		ModerationRepo: modRepo,
		TxManager:      db.NewTransactionManager(gormDB),
		Settings:       provider,
		Policy:         policy,
		Gateway:        dg.NewChannelGateway(session, log),
		Publisher:      dg.NewTicketPublisher(session),
		Notifier:       dg.NewChannelNotifier(session),
		Renderer:       transcript.NewRenderer(),
		Warner:         moderation,
		Logger:         log,
	})

	return &discordIface.Container{
		Tickets:    tickets,
		Settings:   settingApp.NewServiceDDD(provider, categoryRepo, policy, log),
		Moderation: moderation,
		Owners:     dg.NewGuildDirectory(session),
		Session:    session,
		Logger:     log,
	}
}

// newOpsServer checks the database and the gateway. The settings cache is not
// a readiness dependency.
func newOpsServer(cfg *config.Config, gormDB *gorm.DB, bot *discordIface.Bot, log logger.Interface) *httpIface.Server {
	checks := []handlers.Check{
		{Name: "database", Run: func(ctx context.Context) error { return database.Ping(ctx, gormDB) }},
		{Name: "discord", Run: func(context.Context) error {
			if !bot.Ready() {
				return fmt.Errorf("gateway not connected")
			}
			return nil
		}},
	}

	opsLog := log.Named("ops")
	router := httpIface.NewRouter(handlers.NewHealthHandler(opsLog, checks...), opsLog)
	router.SetupRoutes()
	return httpIface.NewServer(cfg.Ops.GetAddr(), router, opsLog)
}
