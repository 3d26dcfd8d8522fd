package app

import (
	"go.uber.org/fx"

	"github.com/amparo-care/amparo/auth"
	"github.com/amparo-care/amparo/authz"
	"github.com/amparo-care/amparo/client"
	"github.com/amparo-care/amparo/conditions"
	"github.com/amparo-care/amparo/config"
	"github.com/amparo-care/amparo/elders"
	"github.com/amparo-care/amparo/logger"
	"github.com/amparo-care/amparo/medications"
	"github.com/amparo-care/amparo/notifications"
	"github.com/amparo-care/amparo/session"
	"github.com/amparo-care/amparo/tasks"
	"github.com/amparo-care/amparo/users"
	"github.com/amparo-care/amparo/visits"
)

// Dependencies is the full client DI graph; every CLI command runs a one-shot
// function against it.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.NopLogger,
		fx.Provide(
			logger.NewProductionLogger,
			logger.Suggar,
			config.Load,
			session.NewStore,
			session.Current,
			func(s *session.Session) client.TokenSource { return s },
			client.NewClient,
			auth.NewClient,
			users.NewClient,
			elders.NewClient,
			visits.NewClient,
			visits.NewAggregator,
			visits.NewScheduler,
			tasks.NewClient,
			medications.NewClient,
			conditions.NewClient,
			notifications.NewClient,
			notifications.NewWatcher,
			authz.NewAuthorizer,
		),
	}
}
