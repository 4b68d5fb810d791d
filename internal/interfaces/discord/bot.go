package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	dg "github.com/swiftticket/swiftticket/internal/infrastructure/discord"
	"github.com/swiftticket/swiftticket/internal/shared/goroutine"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

const sendPermissions = discordgo.PermissionViewChannel | discordgo.PermissionSendMessages

// Bot owns the gateway session. Every inbound event runs in its own tracked
// goroutine so that shutdown can wait for in-flight handlers.
type Bot struct {
	session *discordgo.Session
	router  *Router
	appID   string
	guildID string
	tracker *goroutine.Tracker
	logger  logger.Interface

	// ctx is handed to handlers; it is cancelled only after they drained.
	ctx    context.Context
	cancel context.CancelFunc

	mu sync.Mutex
	// guilds reported by READY; their GUILD_CREATE is not a join
	known map[string]bool
	ready bool
}

// NewBot wires the router into the session. appID is the application the
// slash commands belong to; guildID scopes them when set.
func NewBot(session *discordgo.Session, router *Router, appID, guildID string, log logger.Interface) *Bot {
	ctx, cancel := context.WithCancel(context.Background())
	log = log.Named("bot")
	return &Bot{
		session: session,
		router:  router,
		appID:   appID,
		guildID: guildID,
		tracker: goroutine.NewTracker(log),
		logger:  log,
		ctx:     ctx,
		cancel:  cancel,
		known:   make(map[string]bool),
	}
}

// Start registers the event handlers and opens the gateway connection.
func (b *Bot) Start() error {
	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onGuildCreate)
	b.session.AddHandler(b.onInteraction)
	b.session.AddHandler(b.onMessage)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}
	return nil
}

// Stop closes the gateway and waits for running handlers until ctx is done.
func (b *Bot) Stop(ctx context.Context) error {
	defer b.cancel()

	b.mu.Lock()
	b.ready = false
	b.mu.Unlock()

	if err := b.session.Close(); err != nil {
		b.logger.Warnw("failed to close discord gateway", "error", err)
	}
	if err := b.tracker.Wait(ctx); err != nil {
		return fmt.Errorf("handlers still running at shutdown: %w", err)
	}
	return nil
}

// Ready reports whether the gateway session is open and identified.
func (b *Bot) Ready() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ready
}

// dispatch runs fn in a tracked goroutine with a request-scoped logger.
func (b *Bot) dispatch(event, guildID, userID string, fn func(ctx context.Context, log logger.Interface)) {
	log := b.logger.With(
		"request_id", uuid.NewString(),
		"event", event,
		"guild_id", guildID,
		"user_id", userID,
	)
	b.tracker.Go(event, func() {
		fn(b.ctx, log)
	})
}

func (b *Bot) onReady(s *discordgo.Session, e *discordgo.Ready) {
	b.mu.Lock()
	for _, g := range e.Guilds {
		b.known[g.ID] = true
	}
	b.ready = true
	b.mu.Unlock()

	appID := b.appID
	if appID == "" && e.Application != nil {
		appID = e.Application.ID
	}
	b.logger.Infow("discord gateway ready",
		"user", e.User.Username,
		"guilds", len(e.Guilds))

	b.dispatch("register_commands", b.guildID, e.User.ID, func(ctx context.Context, log logger.Interface) {
		if err := dg.RegisterCommands(ctx, s, appID, b.guildID); err != nil {
			log.Errorw("failed to register slash commands", "error", err)
			return
		}
		log.Infow("slash commands registered", "scope", scope(b.guildID))
	})
}

func scope(guildID string) string {
	if guildID == "" {
		return "global"
	}
	return "guild"
}

func (b *Bot) onGuildCreate(s *discordgo.Session, e *discordgo.GuildCreate) {
	b.mu.Lock()
	seen := b.known[e.ID]
	b.known[e.ID] = true
	b.mu.Unlock()
	if seen || e.Unavailable {
		return
	}

	g := e.Guild
	b.dispatch("guild_join", g.ID, "", func(ctx context.Context, log logger.Interface) {
		log.Infow("joined guild", "name", g.Name)
		b.router.HandleGuildJoin(ctx, g, func(channelID string) bool {
			if s.State == nil || s.State.User == nil {
				return false
			}
			perms, err := s.State.UserChannelPermissions(s.State.User.ID, channelID)
			return err == nil && perms&sendPermissions == sendPermissions
		}, log)
	})
}

func (b *Bot) onInteraction(_ *discordgo.Session, e *discordgo.InteractionCreate) {
	i := e.Interaction
	userID := ""
	if i.Member != nil && i.Member.User != nil {
		userID = i.Member.User.ID
	} else if i.User != nil {
		userID = i.User.ID
	}
	b.dispatch("interaction", i.GuildID, userID, func(ctx context.Context, log logger.Interface) {
		b.router.HandleInteraction(ctx, i, log)
	})
}

func (b *Bot) onMessage(_ *discordgo.Session, e *discordgo.MessageCreate) {
	m := e.Message
	if m.Author == nil || m.Author.Bot {
		return
	}
	b.dispatch("message", m.GuildID, m.Author.ID, func(ctx context.Context, log logger.Interface) {
		b.router.HandleMessage(ctx, m, log)
	})
}
