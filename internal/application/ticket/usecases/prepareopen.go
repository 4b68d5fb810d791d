package usecases

import (
	"context"
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

const msgInvalidCategory = "Category not found."

// PrepareOpenCommand is a selection in the public open panel. CategoryID is
// the raw select value.
type PrepareOpenCommand struct {
	GuildID    string
	CategoryID string
}

type PrepareOpenResult struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
}

// PrepareOpenUseCase checks the selected category before the reason modal
// is shown. Settings are checked on submit, not here.
type PrepareOpenUseCase struct {
	categoryRepo ticket.CategoryRepository
	logger       logger.Interface
}

func NewPrepareOpenUseCase(categoryRepo ticket.CategoryRepository, logger logger.Interface) *PrepareOpenUseCase {
	return &PrepareOpenUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *PrepareOpenUseCase) Execute(ctx context.Context, cmd PrepareOpenCommand) (*PrepareOpenResult, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(cmd.CategoryID), 10, 64)
	if err != nil || id == 0 {
		return nil, errors.NewNotFoundError(msgInvalidCategory, cmd.CategoryID)
	}

	c, err := uc.categoryRepo.GetByID(ctx, cmd.GuildID, uint(id))
	if err != nil {
		if stderrors.Is(err, ticket.ErrCategoryNotFound) {
			return nil, errors.NewNotFoundError(msgInvalidCategory)
		}
		uc.logger.Errorw("failed to load category", "error", err, "guild_id", cmd.GuildID, "category_id", id)
		return nil, errors.NewUpstreamError("failed to load category", err)
	}

	return &PrepareOpenResult{CategoryID: c.ID(), Name: c.Name()}, nil
}
