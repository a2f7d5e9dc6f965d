package components

import (
	"komani-booking/internal/infra/sessions"
	"komani-booking/internal/usecase/commands"
	"komani-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			sessions.NewStore,
			fx.As(new(commands.SessionRepository)),
			fx.As(new(queries.SessionReader)),
		),
	),
)
