package setting

import (
	"context"

	"github.com/swiftticket/swiftticket/internal/application/setting/dto"
	"github.com/swiftticket/swiftticket/internal/application/setting/usecases"
	"github.com/swiftticket/swiftticket/internal/domain/permission"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// ServiceDDD aggregates all setting-related use cases
type ServiceDDD struct {
	setupUC          *usecases.SetupGuildUseCase
	getSettingsUC    *usecases.GetSettingsUseCase
	updateSettingsUC *usecases.UpdateSettingsUseCase
	createCategoryUC *usecases.CreateCategoryUseCase
	logger           logger.Interface
}

// NewServiceDDD creates a new setting service
func NewServiceDDD(
	provider setting.SettingProvider,
	categoryRepo ticket.CategoryRepository,
	policy *permission.Policy,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		setupUC:          usecases.NewSetupGuildUseCase(provider, policy, logger),
		getSettingsUC:    usecases.NewGetSettingsUseCase(provider, categoryRepo, policy, logger),
		updateSettingsUC: usecases.NewUpdateSettingsUseCase(provider, categoryRepo, policy, logger),
		createCategoryUC: usecases.NewCreateCategoryUseCase(provider, categoryRepo, policy, logger),
		logger:           logger,
	}
}

func (s *ServiceDDD) Setup(ctx context.Context, cmd usecases.SetupGuildCommand) (*dto.SettingsDTO, error) {
	return s.setupUC.Execute(ctx, cmd)
}

func (s *ServiceDDD) GetPanel(ctx context.Context, query usecases.GetPanelQuery) (*dto.PanelDTO, error) {
	return s.getSettingsUC.GetPanel(ctx, query)
}

func (s *ServiceDDD) GetOpenPanel(ctx context.Context, query usecases.GetOpenPanelQuery) (*dto.OpenPanelDTO, error) {
	return s.getSettingsUC.GetOpenPanel(ctx, query)
}

func (s *ServiceDDD) SetCategorySlots(ctx context.Context, cmd usecases.UpdateSettingsCommand) (*usecases.UpdateSettingsResult, error) {
	return s.updateSettingsUC.SetCategorySlots(ctx, cmd)
}

func (s *ServiceDDD) SetWarnThreshold(ctx context.Context, cmd usecases.UpdateSettingsCommand) (*usecases.UpdateSettingsResult, error) {
	return s.updateSettingsUC.SetWarnThreshold(ctx, cmd)
}

func (s *ServiceDDD) SetWarnTimeout(ctx context.Context, cmd usecases.UpdateSettingsCommand) (*usecases.UpdateSettingsResult, error) {
	return s.updateSettingsUC.SetWarnTimeout(ctx, cmd)
}

func (s *ServiceDDD) ToggleFeature(ctx context.Context, cmd usecases.UpdateSettingsCommand) (*usecases.UpdateSettingsResult, error) {
	return s.updateSettingsUC.ToggleFeature(ctx, cmd)
}

func (s *ServiceDDD) ConfigureModeration(ctx context.Context, cmd usecases.ConfigureModerationCommand) (*usecases.UpdateSettingsResult, error) {
	return s.updateSettingsUC.ConfigureModeration(ctx, cmd)
}

func (s *ServiceDDD) PrepareCategory(ctx context.Context, cmd usecases.PrepareCategoryCommand) error {
	return s.createCategoryUC.Prepare(ctx, cmd)
}

func (s *ServiceDDD) CreateCategory(ctx context.Context, cmd usecases.CreateCategoryCommand) (*usecases.CreateCategoryResult, error) {
	return s.createCategoryUC.Execute(ctx, cmd)
}
