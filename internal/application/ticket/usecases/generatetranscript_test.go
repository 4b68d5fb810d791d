package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftticket/swiftticket/internal/application/ticket/dto"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	vo "github.com/swiftticket/swiftticket/internal/domain/ticket/valueobjects"
	apperrors "github.com/swiftticket/swiftticket/internal/shared/errors"
)

func TestGenerateTranscriptUseCase_Execute(t *testing.T) {
	tk := newTestTicket(t, vo.StatusClosed, testStaffID)
	before := tk.State()
	repo := &mockTicketRepository{
		GetByMessageIDFunc: func(ctx context.Context, messageID string) (*ticket.Ticket, error) {
			return tk, nil
		},
		UpdateStatusFunc: func(ctx context.Context, t *ticket.Ticket, expected vo.TicketStatus) error {
			panic("transcript must not write the ticket")
		},
	}

	history := []dto.ChannelMessage{
		{ID: "1", AuthorID: testCreatorID, AuthorName: "alice", Content: "hi", SentAt: testCreatedAt},
		{ID: "2", AuthorID: testStaffID, AuthorName: "bob", Content: "hello", SentAt: testCreatedAt.Add(time.Minute)},
	}
	var sentContent string
	var sentFile dto.File
	gateway := &mockChannelGateway{
		FetchHistoryFunc: func(ctx context.Context, channelID string) ([]dto.ChannelMessage, error) {
			assert.Equal(t, testChannelID, channelID)
			return history, nil
		},
		SendFileFunc: func(ctx context.Context, channelID, content string, file dto.File) error {
			sentContent = content
			sentFile = file
			return nil
		},
	}
	renderer := &mockTranscriptRenderer{
		RenderFunc: func(ticketID uint, messages []dto.ChannelMessage, generatedAt time.Time) (*dto.File, error) {
			assert.Equal(t, uint(10), ticketID)
			assert.Len(t, messages, 2)
			return &dto.File{Name: "ticket-transcript-1.html", ContentType: "text/html"}, nil
		},
	}

	uc := NewGenerateTranscriptUseCase(repo, settingsProvider(configuredSettings()), newTestPolicy(t), gateway, renderer, &mockLogger{})
	result, err := uc.Execute(context.Background(), GenerateTranscriptCommand{
		GuildID:   testGuildID,
		MessageID: testMessageID,
		Actor:     strangerActor(),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Messages)
	assert.Equal(t, "ticket-transcript-1.html", result.FileName)
	assert.Equal(t, "Transcript for ticket #10", sentContent)
	assert.Equal(t, "ticket-transcript-1.html", sentFile.Name)
	assert.Equal(t, before, tk.State())
}

func TestGenerateTranscriptUseCase_Execute_HistoryFailure(t *testing.T) {
	tk := newTestTicket(t, vo.StatusOpen, "")
	repo := &mockTicketRepository{
		GetByMessageIDFunc: func(ctx context.Context, messageID string) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	sent := false
	gateway := &mockChannelGateway{
		FetchHistoryFunc: func(ctx context.Context, channelID string) ([]dto.ChannelMessage, error) {
			return nil, errors.New("forbidden")
		},
		SendFileFunc: func(ctx context.Context, channelID, content string, file dto.File) error {
			sent = true
			return nil
		},
	}

	uc := NewGenerateTranscriptUseCase(repo, settingsProvider(configuredSettings()), newTestPolicy(t), gateway, &mockTranscriptRenderer{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), GenerateTranscriptCommand{GuildID: testGuildID, MessageID: testMessageID, Actor: creatorActor()})

	require.Error(t, err)
	assert.True(t, apperrors.IsUpstreamError(err))
	assert.False(t, sent)
}
