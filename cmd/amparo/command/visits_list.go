package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amparo-care/amparo/authz"
	"github.com/amparo-care/amparo/screen"
	"github.com/amparo-care/amparo/session"
	"github.com/amparo-care/amparo/users"
	"github.com/amparo-care/amparo/visits"
)

var (
	visitsSortOption   string
	visitsWatch        bool
	visitsPollInterval time.Duration
)

var visitsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the visits visible to the signed-in user",
	Long:  "Lists visits for the current role: all of them for admins, own visits for caregivers and guardians.",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listVisits) },
}

func listVisits(aggregator *visits.Aggregator, sess *session.Session, authorizer authz.Authorizer, logger *zap.SugaredLogger) error {
	ctx := context.TODO()
	actor, err := requireActor(ctx, sess, authorizer, authz.ActionVisitsRead)
	if err != nil {
		return err
	}

	view := newVisitListView(visits.SortOption(visitsSortOption))
	if err := view.refresh(ctx, aggregator, actor); err != nil {
		return err
	}
	view.render()

	if !visitsWatch {
		return nil
	}

	// Watch mode refetches on an interval. A failed refetch keeps the last
	// rendered list; results arriving after interruption are dropped.
	ticker := time.NewTicker(visitsPollInterval)
	defer ticker.Stop()
	defer view.scope.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := view.refresh(ctx, aggregator, actor); err != nil {
				logger.Errorw("visit refresh failed, keeping previous list", "error", err)
				continue
			}
			view.render()
		}
	}
}

// visitListView owns one screen's list state; commits go through its scope.
type visitListView struct {
	scope  *screen.Scope
	sort   visits.SortOption
	visits []visits.Visit
}

func newVisitListView(sort visits.SortOption) *visitListView {
	return &visitListView{scope: screen.NewScope(), sort: sort}
}

func (v *visitListView) refresh(ctx context.Context, aggregator *visits.Aggregator, actor users.User) error {
	list, err := aggregator.ListForActor(ctx, actor)
	if err != nil {
		return err
	}
	sorted := visits.Sort(list, v.sort)
	v.scope.Commit(func() { v.visits = sorted })
	return nil
}

func (v *visitListView) render() {
	if len(v.visits) == 0 {
		fmt.Println("No visits scheduled yet.")
		return
	}
	for _, visit := range v.visits {
		fmt.Printf("%-24s %-16s %-20s %s\n",
			visit.ElderName,
			formatVisitDate(visit.Date),
			visit.Location,
			visit.GuardianName,
		)
	}
}

func formatVisitDate(date visits.FlexTime) string {
	t, ok := date.Time()
	if !ok {
		return "unconfirmed"
	}
	return t.Format("02/01/2006 15:04")
}

func init() {
	visitsListCmd.Flags().StringVar(&visitsSortOption, "sort", string(visits.SortSoonest),
		"Sort order: proximas, distantes, az, za")
	visitsListCmd.Flags().BoolVar(&visitsWatch, "watch", false, "Keep refreshing the list")
	visitsListCmd.Flags().DurationVar(&visitsPollInterval, "interval", 30*time.Second, "Refresh interval for --watch")
	visitsCmd.AddCommand(visitsListCmd)
}
