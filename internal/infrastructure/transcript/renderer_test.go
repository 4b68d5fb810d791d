package transcript

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftticket/swiftticket/internal/application/ticket/dto"
)

func TestRenderer_Render(t *testing.T) {
	generated := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	messages := []dto.ChannelMessage{
		{
			ID:         "1",
			AuthorID:   "111",
			AuthorName: "alice",
			Content:    "I **cannot** log in",
			SentAt:     time.Date(2026, 3, 2, 9, 0, 0, 0, time.FixedZone("CET", 3600)),
		},
		{
			ID:         "2",
			AuthorID:   "222",
			AuthorName: "<b>mallory</b>",
			Content:    "<script>alert(1)</script>[click](javascript:alert(1))",
			SentAt:     time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC),
		},
	}

	file, err := NewRenderer().Render(42, messages, generated)
	require.NoError(t, err)

	assert.Equal(t, "ticket-transcript-1772443800.html", file.Name)
	assert.Contains(t, file.ContentType, "text/html")

	raw, err := io.ReadAll(file.Reader)
	require.NoError(t, err)
	html := string(raw)

	assert.Contains(t, html, "Ticket #42")
	assert.Contains(t, html, "<strong>cannot</strong>")
	assert.Contains(t, html, "alice (111)")
	assert.Contains(t, html, "2026-03-02 08:00:00 UTC")
	assert.Contains(t, html, "mallory (222)")
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "javascript:")
	assert.NotContains(t, html, "<b>mallory")
}

func TestRenderer_EmptyChannel(t *testing.T) {
	file, err := NewRenderer().Render(1, nil, time.Unix(0, 0))
	require.NoError(t, err)

	raw, err := io.ReadAll(file.Reader)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "0 messages")
}
