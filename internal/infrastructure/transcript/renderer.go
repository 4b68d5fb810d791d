package transcript

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/swiftticket/swiftticket/internal/application/ticket/dto"
)

const timestampLayout = "2006-01-02 15:04:05 UTC"

var page = template.Must(template.New("transcript").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Ticket #{{.TicketID}} transcript</title>
<style>
body{font-family:system-ui,sans-serif;margin:2rem;background:#f8fafc;color:#0f172a}
.msg{margin:0 0 1rem;padding:.75rem 1rem;background:#fff;border-radius:6px}
.meta{color:#64748b;font-size:.85rem}
</style>
</head>
<body>
<h1>Ticket #{{.TicketID}}</h1>
<p class="meta">Generated {{.GeneratedAt}} &middot; {{len .Messages}} messages</p>
{{range .Messages}}<div class="msg">
<p class="meta"><strong>{{.Author}}</strong> &middot; {{.SentAt}}</p>
{{.Body}}
</div>
{{end}}</body>
</html>
`))

type pageData struct {
	TicketID    uint
	GeneratedAt string
	Messages    []messageData
}

type messageData struct {
	Author string
	SentAt string
	Body   template.HTML
}

// Renderer builds the HTML transcript of a ticket channel.
type Renderer struct {
	markdown *markdown
}

func NewRenderer() *Renderer {
	return &Renderer{markdown: newMarkdown()}
}

// Render returns the transcript file named ticket-transcript-<unix>.html.
func (r *Renderer) Render(ticketID uint, messages []dto.ChannelMessage, generatedAt time.Time) (*dto.File, error) {
	data := pageData{
		TicketID:    ticketID,
		GeneratedAt: generatedAt.UTC().Format(timestampLayout),
		Messages:    make([]messageData, 0, len(messages)),
	}

	// Content is sanitised before it is trusted as template.HTML.
	for _, m := range messages {
		body, err := r.markdown.toHTML(m.Content)
		if err != nil {
			return nil, fmt.Errorf("message %s: %w", m.ID, err)
		}
		data.Messages = append(data.Messages, messageData{
			Author: fmt.Sprintf("%s (%s)", r.markdown.escape(m.AuthorName), r.markdown.escape(m.AuthorID)),
			SentAt: m.SentAt.UTC().Format(timestampLayout),
			Body:   template.HTML(body),
		})
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render transcript: %w", err)
	}

	return &dto.File{
		Name:        fmt.Sprintf("ticket-transcript-%d.html", generatedAt.Unix()),
		ContentType: "text/html; charset=utf-8",
		Reader:      &buf,
	}, nil
}
