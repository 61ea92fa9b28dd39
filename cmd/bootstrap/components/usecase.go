package components

import (
	"meetingsync/internal/domain/videoaccount"
	"meetingsync/internal/pkg/clock"
	"meetingsync/internal/pkg/config"
	"meetingsync/internal/pkg/ttlcache"
	"meetingsync/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseServicesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.ProviderConfig { return cfg.Provider },
	func(cfg config.Config) config.SuggestionConfig { return cfg.Suggestion },
	func(cfg config.Config, clk clock.Clock) *ttlcache.Cache[[]videoaccount.Account] {
		return ttlcache.New[[]videoaccount.Account](cfg.Accounts.TTL, clk)
	},
	func() usecase.RoomScorer { return usecase.DefaultRoomScorer },
)

var usecaseServicesModule = fx.Module("usecase/services",
	fx.Provide(
		usecase.NewDirectory,
		usecase.NewAvailabilityService,
		usecase.NewCapacityService,
		usecase.NewMeetingValidator,
		usecase.NewBookingService,
	),
)
