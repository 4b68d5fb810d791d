package usecases

import (
	"context"
	"time"

	"github.com/swiftticket/swiftticket/internal/application/ticket/dto"
	"github.com/swiftticket/swiftticket/internal/domain/permission"
	permvo "github.com/swiftticket/swiftticket/internal/domain/permission/value_objects"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/shared/biztime"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

const statsWindow = 90 * 24 * time.Hour

type GetUserStatsQuery struct {
	GuildID string
	UserID  string
	Actor   permission.Actor
}

// GetUserStatsUseCase summarises a member's ticket activity in one guild.
type GetUserStatsUseCase struct {
	resolver ticketResolver
	policy   *permission.Policy
	logger   logger.Interface
	now      func() time.Time
}

func NewGetUserStatsUseCase(
	ticketRepo ticket.TicketRepository,
	settings setting.SettingProvider,
	policy *permission.Policy,
	logger logger.Interface,
) *GetUserStatsUseCase {
	return &GetUserStatsUseCase{
		resolver: ticketResolver{ticketRepo: ticketRepo, settings: settings, logger: logger},
		policy:   policy,
		logger:   logger,
		now:      biztime.NowUTC,
	}
}

func (uc *GetUserStatsUseCase) Execute(ctx context.Context, query GetUserStatsQuery) (*dto.UserStatsDTO, error) {
	s, err := uc.resolver.requireSettings(ctx, query.GuildID)
	if err != nil {
		return nil, err
	}

	allowed, err := uc.policy.Authorize(query.Actor, permission.Subject{StaffRoleID: s.StaffRoleID}, permvo.ResourceStats, permvo.ActionRead)
	if err != nil {
		return nil, errors.NewUpstreamError("failed to check permissions", err)
	}
	if !allowed {
		return nil, errors.NewForbiddenError("You cannot view ticket statistics.")
	}

	repo := uc.resolver.ticketRepo
	stats, err := repo.GetUserStats(ctx, query.GuildID, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user stats", "error", err, "user_id", query.UserID)
		return nil, errors.NewUpstreamError("failed to load ticket statistics", err)
	}
	history, err := repo.GetCreatorHistory(ctx, query.GuildID, query.UserID)
	if err != nil {
		return nil, errors.NewUpstreamError("failed to load ticket history", err)
	}

	now := uc.now()
	recent, err := repo.ListByCreatorSince(ctx, query.GuildID, query.UserID, now.Add(-statsWindow))
	if err != nil {
		return nil, errors.NewUpstreamError("failed to load recent tickets", err)
	}

	out := &dto.UserStatsDTO{
		UserID:       query.UserID,
		Total:        history.Total,
		Created:      stats.Created,
		Claimed:      stats.Claimed,
		Closed:       stats.Closed,
		LastActivity: history.LastSupportAt,
		Timezone:     s.Timezone,
	}
	for _, t := range recent {
		age := now.Sub(t.CreatedAt())
		if age <= 7*24*time.Hour {
			out.Last7Days++
		}
		if age <= 30*24*time.Hour {
			out.Last30Days++
		}
		out.Last90Days++
	}
	return out, nil
}
