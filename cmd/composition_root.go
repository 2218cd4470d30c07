package cmd

import (
	"log/slog"
	"time"

	httpserver "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/mail"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/filerepo"
	redisqueue "dispatch/internal/adapters/out/redis"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/keylock"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All handlers built
// from the same root share one lock registry, so critical sections keyed by
// delivery and by (courier, day) hold across every entry point.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	locks      *keylock.Registry
	admission  services.WithdrawalAdmission
	queue      ports.NotificationQueue
	proofs     ports.ProofStore
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *goredis.Client,
	location *time.Location,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		locks:      keylock.NewRegistry(),
		admission:  services.NewWithdrawalAdmission(location),
		queue:      redisqueue.NewNotificationQueue(redisClient, config.NotificationQueueKey),
		proofs:     filerepo.NewGormProofStore(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, c.queue, c.logger)
}

func (c *CompositionRoot) CreateWithdrawDeliveryCommandHandler() commands.WithdrawDeliveryCommandHandler {
	var f commands.WithdrawalUoWFactory = FuncWithdrawalUoWFactory(func() commands.WithdrawalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewWithdrawDeliveryCommandHandler(f, c.locks, c.admission)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.locks, c.proofs, c.queue, c.logger)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDeliveryCommandHandler(f, c.locks, c.queue, c.logger)
}

func (c *CompositionRoot) CreateReportProblemCommandHandler() commands.ReportProblemCommandHandler {
	var f commands.ProblemUoWFactory = FuncProblemUoWFactory(func() commands.ProblemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportProblemCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelDueToProblemCommandHandler() commands.CancelDueToProblemCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDueToProblemCommandHandler(f, c.locks, c.queue, c.logger)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRecipientCommandHandler() commands.CreateRecipientCommandHandler {
	var f commands.RecipientUoWFactory = FuncRecipientUoWFactory(func() commands.RecipientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRecipientCommandHandler(f)
}

func (c *CompositionRoot) CreateGetProblemsQueryHandler() queries.GetProblemsQueryHandler {
	return queries.NewGetProblemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryProblemsQueryHandler() queries.GetDeliveryProblemsQueryHandler {
	return queries.NewGetDeliveryProblemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierDeliveriesQueryHandler() queries.GetCourierDeliveriesQueryHandler {
	return queries.NewGetCourierDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.queue, mail.NewLogMailer(c.logger), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpserver.Server {
	return httpserver.NewServer(
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateWithdrawDeliveryCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateCancelDeliveryCommandHandler(),
		c.CreateReportProblemCommandHandler(),
		c.CreateCancelDueToProblemCommandHandler(),
		c.CreateCreateCourierCommandHandler(),
		c.CreateCreateRecipientCommandHandler(),
		c.CreateGetProblemsQueryHandler(),
		c.CreateGetDeliveryProblemsQueryHandler(),
		c.CreateGetCourierDeliveriesQueryHandler(),
		c.proofs,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncWithdrawalUoWFactory func() commands.WithdrawalUoW

func (f FuncWithdrawalUoWFactory) Create() commands.WithdrawalUoW {
	return f()
}

type FuncProblemUoWFactory func() commands.ProblemUoW

func (f FuncProblemUoWFactory) Create() commands.ProblemUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncRecipientUoWFactory func() commands.RecipientUoW

func (f FuncRecipientUoWFactory) Create() commands.RecipientUoW {
	return f()
}
