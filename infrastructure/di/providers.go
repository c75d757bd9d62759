package di

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bomac1193/ophelian-os-sub001/application/commands"
	"github.com/bomac1193/ophelian-os-sub001/application/commands/bus"
	"github.com/bomac1193/ophelian-os-sub001/application/ports"
	"github.com/bomac1193/ophelian-os-sub001/application/queries"
	querybus "github.com/bomac1193/ophelian-os-sub001/application/queries/bus"
	domaincfg "github.com/bomac1193/ophelian-os-sub001/domain/config"
	"github.com/bomac1193/ophelian-os-sub001/domain/disclosure"
	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
	"github.com/bomac1193/ophelian-os-sub001/domain/synthesis"
	"github.com/bomac1193/ophelian-os-sub001/infrastructure/config"
	"github.com/bomac1193/ophelian-os-sub001/infrastructure/persistence/jsonfile"
	"github.com/bomac1193/ophelian-os-sub001/infrastructure/persistence/memory"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvidePolicy loads the optional operator policy file
func ProvidePolicy(cfg *config.Config) (*config.Policy, error) {
	return config.LoadPolicy(cfg.PolicyPath)
}

// ProvideDomainConfig builds the domain configuration for the environment,
// with the policy file overlaid
func ProvideDomainConfig(cfg *config.Config, policy *config.Policy) (*domaincfg.DomainConfig, error) {
	domainCfg := policy.Apply(domaincfg.LoadDomainConfig(cfg.Environment))
	if err := domainCfg.Validate(); err != nil {
		return nil, err
	}
	return domainCfg, nil
}

// ProvideGenerator creates the genome generator
func ProvideGenerator(domainCfg *domaincfg.DomainConfig) *genome.Generator {
	return genome.NewGenerator(domainCfg)
}

// ProvideSynthesisEngine creates the template synthesis engine
func ProvideSynthesisEngine(domainCfg *domaincfg.DomainConfig) *synthesis.Engine {
	return synthesis.NewEngine(domainCfg)
}

// ProvideProjector creates the disclosure projector
func ProvideProjector() *disclosure.Projector {
	return disclosure.NewProjector()
}

// ProvideAccessGate creates the disclosure access gate
func ProvideAccessGate(domainCfg *domaincfg.DomainConfig) *disclosure.AccessGate {
	return disclosure.NewAccessGate(domainCfg)
}

// ProvideCache creates an in-memory cache
func ProvideCache() ports.Cache {
	return memory.NewCache()
}

// ProvideGenomeRepository creates a genome repository. A configured store
// path selects the file-backed store; otherwise genomes live in memory for
// the life of the process. Either way reads go through the cache.
func ProvideGenomeRepository(cfg *config.Config, cache ports.Cache) (ports.GenomeRepository, error) {
	var inner ports.GenomeRepository
	if cfg.StorePath != "" {
		repo, err := jsonfile.NewGenomeRepository(cfg.StorePath)
		if err != nil {
			return nil, err
		}
		inner = repo
	} else {
		inner = memory.NewGenomeRepository()
	}
	return memory.NewCachedGenomeRepository(inner, cache), nil
}

// ProvideAccountReader creates an account reader backed by the repository
func ProvideAccountReader(genomeRepo ports.GenomeRepository) ports.AccountReader {
	return memory.NewAccountReader(genomeRepo)
}

// ProvideEventBus creates an in-process event bus
func ProvideEventBus(logger *zap.Logger) ports.EventBus {
	return memory.NewEventBus(logger)
}

// ProvideEventPublisher creates an event publisher (adapter for EventBus)
func ProvideEventPublisher(eventBus ports.EventBus) ports.EventPublisher {
	return eventBus
}

// CommandHandlerAdapter adapts specific command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	generator *genome.Generator,
	genomeRepo ports.GenomeRepository,
	eventPublisher ports.EventPublisher,
	domainCfg *domaincfg.DomainConfig,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	generateHandler := commands.NewGenerateGenomeHandler(generator, genomeRepo, eventPublisher, logger)
	commandBus.Register(commands.GenerateGenomeCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			generateCmd, ok := cmd.(commands.GenerateGenomeCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := generateHandler.Handle(ctx, generateCmd)
			return err
		},
	})

	rerollHandler := commands.NewRerollGenomeHandler(generator, genomeRepo, eventPublisher, logger)
	commandBus.Register(commands.RerollGenomeCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			rerollCmd, ok := cmd.(commands.RerollGenomeCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := rerollHandler.Handle(ctx, rerollCmd)
			return err
		},
	})

	patchHandler := commands.NewPatchGenomeHandler(genomeRepo, eventPublisher, domainCfg, logger)
	commandBus.Register(commands.PatchGenomeCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			patchCmd, ok := cmd.(commands.PatchGenomeCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := patchHandler.Handle(ctx, patchCmd)
			return err
		},
	})

	return commandBus
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	genomeRepo ports.GenomeRepository,
	accounts ports.AccountReader,
	projector *disclosure.Projector,
	gate *disclosure.AccessGate,
	engine *synthesis.Engine,
	eventPublisher ports.EventPublisher,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	disclosureHandler := queries.NewGetDisclosureHandler(genomeRepo, accounts, projector, gate, logger)
	queryBus.Register(queries.GetDisclosureQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.GetDisclosureQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return disclosureHandler.Handle(ctx, q)
		},
	})

	exportHandler := queries.NewExportGenomeHandler(genomeRepo)
	queryBus.Register(queries.ExportGenomeQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.ExportGenomeQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return exportHandler.Handle(ctx, q)
		},
	})

	loreHandler := queries.NewSynthesizeLoreHandler(engine, eventPublisher, logger)
	queryBus.Register(queries.SynthesizeLoreQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.SynthesizeLoreQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return loreHandler.Handle(ctx, q)
		},
	})

	promptHandler := queries.NewSynthesizePromptHandler(genomeRepo, engine)
	queryBus.Register(queries.SynthesizePromptQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.SynthesizePromptQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return promptHandler.Handle(ctx, q)
		},
	})

	listHandler := queries.NewListGenomesHandler(genomeRepo)
	queryBus.Register(queries.ListGenomesQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.ListGenomesQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listHandler.Handle(ctx, q)
		},
	})

	return queryBus
}
