package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amparo-care/amparo/authz"
	"github.com/amparo-care/amparo/conditions"
	"github.com/amparo-care/amparo/session"
)

var (
	conditionName        string
	conditionDescription string
)

var conditionsCmd = &cobra.Command{
	Use:   "conditions",
	Short: "Browse and curate the health-condition catalog",
}

var conditionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the health-condition catalog",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listConditions) },
}

func listConditions(conditionsClient conditions.Client, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	if _, err := requireActor(ctx, sess, authorizer, authz.ActionConditionsRead); err != nil {
		return err
	}

	list, err := conditionsClient.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range list {
		fmt.Printf("%s %s\n", c.Name, c.Description)
	}
	return nil
}

var conditionsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a condition to the catalog (admin only)",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(addCondition) },
}

func addCondition(conditionsClient conditions.Client, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	if _, err := requireActor(ctx, sess, authorizer, authz.ActionConditionsWrite); err != nil {
		return err
	}
	if conditionName == "" {
		return fmt.Errorf("--name is required")
	}

	created, err := conditionsClient.Create(ctx, conditions.Condition{
		Name:        conditionName,
		Description: conditionDescription,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Condition %s added\n", created.Name)
	return nil
}

func init() {
	conditionsAddCmd.Flags().StringVar(&conditionName, "name", "", "Condition name")
	conditionsAddCmd.Flags().StringVar(&conditionDescription, "description", "", "Condition description")

	conditionsCmd.AddCommand(conditionsListCmd)
	conditionsCmd.AddCommand(conditionsAddCmd)
	rootCmd.AddCommand(conditionsCmd)
}
