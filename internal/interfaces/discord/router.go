package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/swiftticket/swiftticket/internal/domain/permission"
	dg "github.com/swiftticket/swiftticket/internal/infrastructure/discord"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// request is everything a handler needs about one interaction.
type request struct {
	interaction *discordgo.Interaction
	guildID     string
	actor       permission.Actor
	reply       *reply
	log         logger.Interface
}

type handlerFunc func(ctx context.Context, req *request, cmd Command) error

type slashHandlerFunc func(ctx context.Context, req *request, data discordgo.ApplicationCommandInteractionData) error

// Router decodes interactions into commands and dispatches them to the
// application services.
type Router struct {
	tickets    TicketService
	settings   SettingService
	moderation ModerationService
	owners     OwnerLookup
	session    Session
	logger     logger.Interface

	components map[Kind]handlerFunc
	modals     map[Kind]handlerFunc
	slash      map[string]slashHandlerFunc
}

func NewRouter(c *Container) *Router {
	r := &Router{
		tickets:    c.Tickets,
		settings:   c.Settings,
		moderation: c.Moderation,
		owners:     c.Owners,
		session:    c.Session,
		logger:     c.Logger.Named("router"),
	}

	r.components = map[Kind]handlerFunc{
		KindCategoryAdd:     r.handleCategoryAdd,
		KindPanelPage:       r.handlePanelPage,
		KindSlots:           r.handleSlots,
		KindSettingsWarn:    r.handleSettingsModal,
		KindSettingsTimeout: r.handleSettingsModal,
		KindToggle:          r.handleToggle,
		KindOpenSelect:      r.handleOpenSelect,
		KindClaim:           r.handleTransition,
		KindClose:           r.handleTransition,
		KindReopen:          r.handleTransition,
		KindTranscript:      r.handleTranscript,
		KindLink:            r.handleLinkButton,
	}
	r.modals = map[Kind]handlerFunc{
		KindCategoryModal: r.submitCategory,
		KindWarnModal:     r.submitSettings,
		KindTimeoutModal:  r.submitSettings,
		KindOpenModal:     r.submitOpen,
		KindLinkModal:     r.submitLink,
	}
	r.slash = map[string]slashHandlerFunc{
		dg.CommandTicket: r.handleTicketCommand,
		dg.CommandInfo:   r.handleInfo,
		dg.CommandMod:    r.handleModCommand,
	}
	return r
}

// HandleInteraction runs one interaction to completion. Errors are reported
// to the invoker and never returned.
func (r *Router) HandleInteraction(ctx context.Context, i *discordgo.Interaction, log logger.Interface) {
	var (
		run handlerFunc
		cmd Command
	)
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		h, ok := r.slash[data.Name]
		if !ok {
			log.Debugw("ignoring unknown slash command", "name", data.Name)
			return
		}
		run = func(ctx context.Context, req *request, _ Command) error { return h(ctx, req, data) }
	case discordgo.InteractionMessageComponent:
		cmd = DecodeComponent(i.MessageComponentData().CustomID)
		run = r.components[cmd.Kind]
	case discordgo.InteractionModalSubmit:
		cmd = DecodeModal(i.ModalSubmitData().CustomID)
		run = r.modals[cmd.Kind]
	}
	if run == nil {
		log.Debugw("ignoring unrecognized interaction", "type", i.Type.String())
		return
	}
	if i.GuildID == "" || i.Member == nil {
		_ = newReply(r.session, i).Notice(dg.NoticeError, "Server only", "SwiftTicket commands work inside a server.")
		return
	}

	req := &request{
		interaction: i,
		guildID:     i.GuildID,
		actor:       r.actor(ctx, i),
		reply:       newReply(r.session, i),
		log:         log.With("command", cmd.Kind.String()),
	}

	if err := run(ctx, req, cmd); err != nil {
		r.fail(req, err)
	}
}

func (r *Router) actor(ctx context.Context, i *discordgo.Interaction) permission.Actor {
	m := i.Member
	actor := permission.Actor{
		UserID:  m.User.ID,
		RoleIDs: m.Roles,
		IsAdmin: m.Permissions&(discordgo.PermissionAdministrator|discordgo.PermissionManageGuild) != 0,
	}
	ownerID, err := r.owners.OwnerID(ctx, i.GuildID)
	if err != nil {
		r.logger.Warnw("failed to resolve guild owner", "guild_id", i.GuildID, "error", err)
		return actor
	}
	actor.IsOwner = ownerID == actor.UserID
	return actor
}

var errorTitles = map[errors.ErrorType]string{
	errors.ErrorTypeNotConfigured: "Setup required",
	errors.ErrorTypeNotFound:      "Not found",
	errors.ErrorTypeForbidden:     "Not allowed",
	errors.ErrorTypeInvalidState:  "Invalid state",
	errors.ErrorTypeValidation:    "Invalid input",
	errors.ErrorTypeUpstream:      "Something went wrong",
}

// describe maps an error to the notice shown to the invoker.
func describe(err error) (title, body string) {
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Type == errors.ErrorTypeUpstream {
		return errorTitles[errors.ErrorTypeUpstream], "Please try again in a moment."
	}
	return errorTitles[appErr.Type], appErr.Message
}

func (r *Router) fail(req *request, err error) {
	if errors.TypeOf(err) == errors.ErrorTypeUpstream {
		req.log.Errorw("interaction failed", "error", err)
	} else {
		req.log.Infow("interaction rejected", "error", err)
	}

	title, body := describe(err)
	if req.reply.answered {
		// a modal or update was already sent; surface the error as a followup
		req.reply.deferred = true
	}
	if rerr := req.reply.Notice(dg.NoticeError, title, body); rerr != nil {
		req.log.Warnw("failed to send error notice", "error", rerr)
	}
}
