package cmd

import (
	"log/slog"
	"strconv"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/adapters/out/postgres"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/adapters/out/postgres/partnerrepo"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/adapters/out/postgres/routerepo"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/adapters/out/postgres/stockrepo"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/application/usecases/commands"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/application/usecases/queries"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	engineConfig services.EngineConfig
	logger       *slog.Logger

	slaEngine        *services.SLAEngine
	allocationEngine *services.AllocationEngine
	partnerSelector  *services.PartnerSelector
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	engineConfig, err := buildEngineConfig(config)
	if err != nil {
		return CompositionRoot{}, err
	}

	slaEngine, err := services.NewSLAEngine(routerepo.NewGormRouteTable(gormDB), engineConfig)
	if err != nil {
		return CompositionRoot{}, err
	}

	allocationEngine, err := services.NewAllocationEngine(stockrepo.NewGormInventoryStore(gormDB), engineConfig)
	if err != nil {
		return CompositionRoot{}, err
	}

	partnerSelector, err := services.NewPartnerSelector(partnerrepo.NewGormPartnerCatalog(gormDB), engineConfig)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		engineConfig:     engineConfig,
		logger:           logger,
		slaEngine:        slaEngine,
		allocationEngine: allocationEngine,
		partnerSelector:  partnerSelector,
	}, nil
}

// buildEngineConfig starts from the engine defaults and applies the
// optional overrides carried by the environment config.
func buildEngineConfig(config Config) (services.EngineConfig, error) {
	engineConfig := services.DefaultEngineConfig()

	if config.EnginePriority != "" {
		priority, err := services.PriorityOrderFromString(config.EnginePriority)
		if err != nil {
			return services.EngineConfig{}, err
		}
		engineConfig.Priority = priority
	}

	if config.EngineCutoffHour != "" {
		cutoffHour, err := strconv.Atoi(config.EngineCutoffHour)
		if err != nil {
			return services.EngineConfig{}, err
		}
		engineConfig.CutoffHour = cutoffHour
	}

	if err := engineConfig.Validate(); err != nil {
		return services.EngineConfig{}, err
	}
	return engineConfig, nil
}

func (c *CompositionRoot) CreateOrchestrateOrderCommandHandler() (commands.OrchestrateOrderCommandHandler, error) {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOrchestrateOrderCommandHandler(
		f, c.slaEngine, c.allocationEngine, c.partnerSelector, c.engineConfig, c.logger)
}

func (c *CompositionRoot) CreateAllocateStockCommandHandler() (commands.AllocateStockCommandHandler, error) {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAllocateStockCommandHandler(f, c.allocationEngine)
}

func (c *CompositionRoot) CreateComputePromiseQueryHandler() (queries.ComputePromiseQueryHandler, error) {
	return queries.NewComputePromiseQueryHandler(c.slaEngine)
}

func (c *CompositionRoot) CreateSelectPartnerQueryHandler() (queries.SelectPartnerQueryHandler, error) {
	return queries.NewSelectPartnerQueryHandler(c.uowFactory.Create().OrderRepository(), c.partnerSelector)
}

func (c *CompositionRoot) CreateTrackComplianceQueryHandler() (queries.TrackComplianceQueryHandler, error) {
	return queries.NewTrackComplianceQueryHandler(c.uowFactory.Create().OrderRepository(), c.slaEngine)
}

func (c *CompositionRoot) CreateGetUndeliveredOrdersQueryHandler() queries.GetUndeliveredOrdersQueryHandler {
	return queries.NewGetUndeliveredOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
