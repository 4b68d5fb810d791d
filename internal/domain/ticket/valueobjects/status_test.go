package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	all := []TicketStatus{StatusOpen, StatusClaimed, StatusClosed}
	allowed := map[[2]TicketStatus]bool{
		{StatusOpen, StatusClaimed}:   true,
		{StatusClaimed, StatusClosed}: true,
		{StatusClosed, StatusOpen}:    true,
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				assert.Equal(t, allowed[[2]TicketStatus{from, to}], from.CanTransitionTo(to))
			})
		}
	}
}

func TestTicketStatus_UnknownHasNoEdges(t *testing.T) {
	assert.False(t, TicketStatus("RESOLVED").CanTransitionTo(StatusOpen))
}

func TestNewTicketStatus(t *testing.T) {
	s, err := NewTicketStatus("CLAIMED")
	require.NoError(t, err)
	assert.True(t, s.IsClaimed())
	assert.Equal(t, "Claimed", s.Label())

	_, err = NewTicketStatus("open")
	assert.Error(t, err)
}
