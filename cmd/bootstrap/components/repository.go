package components

import (
	"meetingsync/internal/infra/readstore"
	"meetingsync/internal/infra/zoomclient"
	"meetingsync/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			readstore.NewScheduleStore,
			fx.As(new(usecase.ScheduleReader)),
		),
		fx.Annotate(
			zoomclient.New,
			fx.As(new(usecase.SessionProvider)),
		),
	),
)
