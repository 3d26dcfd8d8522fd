package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amparo-care/amparo/authz"
	"github.com/amparo-care/amparo/session"
	"github.com/amparo-care/amparo/visits"
)

var (
	scheduleDate     string
	scheduleGuardian string
	scheduleElder    string
	scheduleLocation string
)

var visitsScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule a visit as the signed-in caregiver",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(scheduleVisit) },
}

func scheduleVisit(scheduler *visits.Scheduler, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	actor, err := requireActor(ctx, sess, authorizer, authz.ActionVisitsSchedule)
	if err != nil {
		return err
	}

	date, err := parseScheduleDate(scheduleDate)
	if err != nil {
		return err
	}

	created, err := scheduler.Schedule(ctx, visits.ScheduleParams{
		Date:        date,
		GuardianID:  scheduleGuardian,
		CaregiverID: actor.ID,
		ElderID:     scheduleElder,
		Location:    scheduleLocation,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Visit %s scheduled for %s\n", created.ID, date.Format("02/01/2006"))
	return nil
}

func parseScheduleDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("--date must be YYYY-MM-DD or RFC3339")
}

func init() {
	visitsScheduleCmd.Flags().StringVar(&scheduleDate, "date", "", "Visit date (YYYY-MM-DD)")
	visitsScheduleCmd.Flags().StringVar(&scheduleGuardian, "guardian", "", "Guardian id")
	visitsScheduleCmd.Flags().StringVar(&scheduleElder, "elder", "", "Elder id")
	visitsScheduleCmd.Flags().StringVar(&scheduleLocation, "location", "", "Where the visit happens")
	visitsCmd.AddCommand(visitsScheduleCmd)
}
