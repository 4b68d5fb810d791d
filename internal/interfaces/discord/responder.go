package discord

import (
	"github.com/bwmarrin/discordgo"

	dg "github.com/swiftticket/swiftticket/internal/infrastructure/discord"
)

// Session is the subset of *discordgo.Session the router talks to.
type Session interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ Session = (*discordgo.Session)(nil)

const (
	flagsV2          = discordgo.MessageFlagsIsComponentsV2
	flagsV2Ephemeral = discordgo.MessageFlagsIsComponentsV2 | discordgo.MessageFlagsEphemeral
)

// reply tracks whether an interaction was already acknowledged so that the
// final answer goes through the right endpoint.
type reply struct {
	session     Session
	interaction *discordgo.Interaction
	deferred    bool
	answered    bool
}

func newReply(s Session, i *discordgo.Interaction) *reply {
	return &reply{session: s, interaction: i}
}

// Defer acknowledges the interaction with an ephemeral "thinking" state.
func (r *reply) Defer() error {
	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err == nil {
		r.deferred = true
	}
	return err
}

// Ephemeral answers with components visible only to the invoker.
func (r *reply) Ephemeral(components []discordgo.MessageComponent) error {
	return r.send(components, flagsV2Ephemeral)
}

// Public answers with components visible to the channel.
func (r *reply) Public(components []discordgo.MessageComponent) error {
	return r.send(components, flagsV2)
}

func (r *reply) Notice(kind dg.NoticeKind, title, body string) error {
	return r.Ephemeral(dg.Notice(kind, title, body))
}

func (r *reply) send(components []discordgo.MessageComponent, flags discordgo.MessageFlags) error {
	r.answered = true
	if r.deferred {
		_, err := r.session.FollowupMessageCreate(r.interaction, true, &discordgo.WebhookParams{
			Components:      components,
			Flags:           flags,
			AllowedMentions: &discordgo.MessageAllowedMentions{},
		})
		return err
	}
	return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Components:      components,
			Flags:           flags,
			AllowedMentions: &discordgo.MessageAllowedMentions{},
		},
	})
}

// Update replaces the message the component is attached to.
func (r *reply) Update(components []discordgo.MessageComponent) error {
	r.answered = true
	return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Components: components,
			Flags:      flagsV2,
		},
	})
}

// Modal opens a modal. It must be the first response.
func (r *reply) Modal(resp *discordgo.InteractionResponse) error {
	r.answered = true
	return r.session.InteractionRespond(r.interaction, resp)
}
