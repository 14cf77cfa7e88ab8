package components

import (
	"vps-rental/internal/infra/db"
	"vps-rental/internal/infra/loginlog"
	"vps-rental/internal/infra/readstore"
	"vps-rental/internal/infra/repository"
	"vps-rental/internal/infra/uow"
	"vps-rental/internal/usecase/commands"
	"vps-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPgxUnitOfWork,

		// Write side
		fx.Annotate(
			repository.NewOfferingRepository,
			fx.As(new(commands.OfferingRepository)),
		),
		fx.Annotate(
			repository.NewSpecificationRepository,
			fx.As(new(commands.SpecificationRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),

		// Read side
		fx.Annotate(
			readstore.NewOfferingReadStore,
			fx.As(new(queries.OfferingReadStore)),
			fx.As(new(commands.OfferingReader)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
			fx.As(new(commands.OrderReader)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),

		// Login event log
		fx.Annotate(
			loginlog.NewRedisRecorder,
			fx.As(new(commands.LoginRecorder)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
