package bootstrap

import (
	"komani-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	CatalogModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
