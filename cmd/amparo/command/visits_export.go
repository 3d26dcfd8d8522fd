package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amparo-care/amparo/authz"
	"github.com/amparo-care/amparo/session"
	"github.com/amparo-care/amparo/visits"
)

var (
	exportOutput string
	exportSort   string
)

var visitsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the visible visit list as an xlsx workbook",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(exportVisits) },
}

func exportVisits(aggregator *visits.Aggregator, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	actor, err := requireActor(ctx, sess, authorizer, authz.ActionVisitsExport)
	if err != nil {
		return err
	}

	list, err := aggregator.ListForActor(ctx, actor)
	if err != nil {
		return err
	}
	sorted := visits.Sort(list, visits.SortOption(exportSort))

	report, err := visits.NewReport(sorted).Generate()
	if err != nil {
		return err
	}
	if err := report.Save(exportOutput); err != nil {
		return err
	}

	fmt.Printf("Wrote %d visits to %s\n", len(sorted), exportOutput)
	return nil
}

func init() {
	visitsExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "visits.xlsx", "Output file")
	visitsExportCmd.Flags().StringVar(&exportSort, "sort", string(visits.SortSoonest),
		"Sort order: proximas, distantes, az, za")
	visitsCmd.AddCommand(visitsExportCmd)
}
