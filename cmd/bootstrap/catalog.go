package bootstrap

import (
	"komani-booking/internal/infra/catalog"
	"komani-booking/internal/infra/i18n"
	"komani-booking/internal/usecase/commands"
	"komani-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

// CatalogModule provides the static, load-once collaborators: the tour
// catalog and the message bundles.
var CatalogModule = fx.Module("catalog",
	fx.Provide(
		fx.Annotate(
			catalog.NewStore,
			fx.As(new(commands.TourCatalog)),
			fx.As(new(queries.TourCatalog)),
		),
		fx.Annotate(
			i18n.NewTranslator,
			fx.As(new(commands.Translator)),
			fx.As(new(queries.Translator)),
		),
	),
)
