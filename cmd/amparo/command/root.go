package command

import (
	"context"
	"fmt"
	"os"

	"github.com/DataDog/datadog-agent/pkg/util/fxutil"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/amparo-care/amparo/app"
	"github.com/amparo-care/amparo/authz"
	"github.com/amparo-care/amparo/errors"
	"github.com/amparo-care/amparo/session"
	"github.com/amparo-care/amparo/users"
)

var logLevel string

// Run executes a given function with dependencies supplied by the client DI graph
// `f` must return an error or nothing
// `opts` can be used to supply additional arguments that are not provided by the graph
func Run(f interface{}, opts ...fx.Option) error {
	deps := append(opts, app.Dependencies()...)
	return fxutil.OneShot(f, deps...)
}

var rootCmd = &cobra.Command{
	Use:   "amparo",
	Short: "Companion CLI for the Amparo elder-care coordination backend",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Overwrite zap's log level
		return os.Setenv("LOG_LEVEL", logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "error", "Log Level")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// requireActor returns the signed-in user after an authorization check, or a
// friendly error telling the user what to do instead.
func requireActor(ctx context.Context, sess *session.Session, authorizer authz.Authorizer, action string) (users.User, error) {
	if !sess.SignedIn() {
		return users.User{}, fmt.Errorf("not signed in, run `amparo login` first")
	}
	if err := authorizer.Authorize(ctx, sess.User, action); err != nil {
		return users.User{}, fmt.Errorf("%s is not available to %s accounts: %w", action, sess.User.Role, errors.Forbidden)
	}
	return sess.User, nil
}
