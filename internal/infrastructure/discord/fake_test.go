package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

type permissionCall struct {
	channelID   string
	targetID    string
	targetType  discordgo.PermissionOverwriteType
	allow, deny int64
}

type timeoutCall struct {
	guildID, userID string
	until           time.Time
}

// fakeREST records every call and serves history from messages, newest
// first like the real endpoint.
type fakeREST struct {
	createdChannels []discordgo.GuildChannelCreateData
	channelEdits    map[string]*discordgo.ChannelEdit
	permissions     []permissionCall
	sent            []*discordgo.MessageSend
	edits           []*discordgo.MessageEdit
	timeouts        []timeoutCall
	historyCalls    []string

	messages []*discordgo.Message
	err      error
}

func (f *fakeREST) GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.createdChannels = append(f.createdChannels, data)
	return &discordgo.Channel{ID: fmt.Sprintf("chan-%d", len(f.createdChannels)), GuildID: guildID}, nil
}

func (f *fakeREST) ChannelEdit(channelID string, data *discordgo.ChannelEdit, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.channelEdits == nil {
		f.channelEdits = make(map[string]*discordgo.ChannelEdit)
	}
	f.channelEdits[channelID] = data
	return &discordgo.Channel{ID: channelID, Name: data.Name}, nil
}

func (f *fakeREST) ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64, _ ...discordgo.RequestOption) error {
	if f.err != nil {
		return f.err
	}
	f.permissions = append(f.permissions, permissionCall{channelID, targetID, targetType, allow, deny})
	return nil
}

func (f *fakeREST) ChannelMessages(_ string, limit int, beforeID, _, _ string, _ ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.historyCalls = append(f.historyCalls, beforeID)

	start := 0
	if beforeID != "" {
		for i, m := range f.messages {
			if m.ID == beforeID {
				start = i + 1
				break
			}
		}
	}
	end := min(start+limit, len(f.messages))
	return f.messages[start:end], nil
}

func (f *fakeREST) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, data)
	return &discordgo.Message{ID: fmt.Sprintf("msg-%d", len(f.sent)), ChannelID: channelID}, nil
}

func (f *fakeREST) ChannelMessageEditComplex(m *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.edits = append(f.edits, m)
	return &discordgo.Message{ID: m.ID, ChannelID: m.Channel}, nil
}

func (f *fakeREST) GuildMemberTimeout(guildID, userID string, until *time.Time, _ ...discordgo.RequestOption) error {
	if f.err != nil {
		return f.err
	}
	f.timeouts = append(f.timeouts, timeoutCall{guildID, userID, *until})
	return nil
}

var _ RESTClient = (*fakeREST)(nil)
