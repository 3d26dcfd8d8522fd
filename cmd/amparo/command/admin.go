package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amparo-care/amparo/authz"
	"github.com/amparo-care/amparo/carenet"
	"github.com/amparo-care/amparo/elders"
	"github.com/amparo-care/amparo/session"
	"github.com/amparo-care/amparo/users"
	"github.com/amparo-care/amparo/visits"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative reports",
}

var adminNetworkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show care circles and elders without scheduled visits",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(showCareNetwork) },
}

func showCareNetwork(visitsClient visits.Client, usersClient users.Client, eldersClient elders.Client, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	if _, err := requireActor(ctx, sess, authorizer, authz.ActionNetworkRead); err != nil {
		return err
	}

	visitList, err := visitsClient.List(ctx)
	if err != nil {
		return err
	}
	directory, err := usersClient.List(ctx)
	if err != nil {
		return err
	}
	elderList, err := eldersClient.List(ctx)
	if err != nil {
		return err
	}

	reporter := carenet.NewReporter(visitList, users.FilterByRole(directory, users.RoleGuardian), elderList)
	circles, err := reporter.Circles()
	if err != nil {
		return err
	}

	for i, circle := range circles {
		names := make([]string, 0, len(circle.Members))
		for _, m := range circle.Members {
			names = append(names, fmt.Sprintf("%s (%s)", m.Name, m.Kind))
		}
		fmt.Printf("Circle %d: %s (%d visits)\n", i+1, strings.Join(names, ", "), circle.Visits)
	}

	unvisited := reporter.UnvisitedElders()
	if len(unvisited) > 0 {
		fmt.Println("Elders without a scheduled visit:")
		for _, m := range unvisited {
			fmt.Printf("  %s\n", m.Name)
		}
	}
	return nil
}

func init() {
	adminCmd.AddCommand(adminNetworkCmd)
	rootCmd.AddCommand(adminCmd)
}
