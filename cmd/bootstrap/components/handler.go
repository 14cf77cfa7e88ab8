package components

import (
	"vps-rental/internal/handler"
	"vps-rental/internal/handler/api"
	"vps-rental/internal/handler/middleware"
	"vps-rental/internal/pkg/config"
	"vps-rental/internal/pkg/jwt"
	"vps-rental/internal/usecase/commands"
	"vps-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewOfferingHandler,
		api.NewOrderHandler,
		fx.Annotate(
			func(svc *jwt.Service) *jwt.Service { return svc },
			fx.As(new(middleware.TokenValidator)),
		),
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(
	authCommands commands.AuthCommands,
	userQueries queries.UserQueries,
	cfg config.Config,
	jwtSvc *jwt.Service,
) *api.AuthHandler {
	return api.NewAuthHandler(authCommands, userQueries, cfg.Cookie, jwtSvc.TokenDuration())
}
