//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/bomac1193/ophelian-os-sub001/application/commands/bus"
	"github.com/bomac1193/ophelian-os-sub001/application/ports"
	querybus "github.com/bomac1193/ophelian-os-sub001/application/queries/bus"
	domaincfg "github.com/bomac1193/ophelian-os-sub001/domain/config"
	"github.com/bomac1193/ophelian-os-sub001/domain/disclosure"
	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
	"github.com/bomac1193/ophelian-os-sub001/domain/synthesis"
	"github.com/bomac1193/ophelian-os-sub001/infrastructure/config"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	DomainConfig *domaincfg.DomainConfig
	Generator    *genome.Generator
	Engine       *synthesis.Engine
	Projector    *disclosure.Projector
	Gate         *disclosure.AccessGate
	GenomeRepo   ports.GenomeRepository
	Accounts     ports.AccountReader
	EventBus     ports.EventBus
	CommandBus   *bus.CommandBus
	QueryBus     *querybus.QueryBus
	Cache        ports.Cache
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvidePolicy,
	ProvideDomainConfig,
	ProvideGenerator,
	ProvideSynthesisEngine,
	ProvideProjector,
	ProvideAccessGate,
	ProvideCache,
	ProvideGenomeRepository,
	ProvideAccountReader,
	ProvideEventBus,
	ProvideEventPublisher,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
