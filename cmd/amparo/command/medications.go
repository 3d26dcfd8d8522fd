package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amparo-care/amparo/authz"
	"github.com/amparo-care/amparo/medications"
	"github.com/amparo-care/amparo/session"
)

var (
	medicationElderId  string
	medicationName     string
	medicationDosage   string
	medicationSchedule string
	medicationId       string
)

var medicationsCmd = &cobra.Command{
	Use:     "meds",
	Aliases: []string{"medications"},
	Short:   "Manage an elder's medications",
}

var medicationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List medications for an elder",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listMedications) },
}

func listMedications(medicationsClient medications.Client, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	if _, err := requireActor(ctx, sess, authorizer, authz.ActionMedicationsRead); err != nil {
		return err
	}
	if medicationElderId == "" {
		return fmt.Errorf("--elder is required")
	}

	list, err := medicationsClient.ListByElder(ctx, medicationElderId)
	if err != nil {
		return err
	}
	for _, m := range list {
		fmt.Printf("%s %s %s %s\n", m.ID, m.Name, m.Dosage, m.Schedule)
	}
	return nil
}

var medicationsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a medication for an elder",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(addMedication) },
}

func addMedication(medicationsClient medications.Client, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	if _, err := requireActor(ctx, sess, authorizer, authz.ActionMedicationsWrite); err != nil {
		return err
	}
	if medicationElderId == "" || medicationName == "" {
		return fmt.Errorf("--elder and --name are required")
	}

	created, err := medicationsClient.Create(ctx, medications.Medication{
		ElderID:  medicationElderId,
		Name:     medicationName,
		Dosage:   medicationDosage,
		Schedule: medicationSchedule,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Medication %s added\n", created.ID)
	return nil
}

var medicationsRemoveCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove a medication",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(removeMedication) },
}

func removeMedication(medicationsClient medications.Client, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	if _, err := requireActor(ctx, sess, authorizer, authz.ActionMedicationsWrite); err != nil {
		return err
	}
	if medicationId == "" {
		return fmt.Errorf("--medication is required")
	}

	if err := medicationsClient.Delete(ctx, medicationId); err != nil {
		return err
	}
	fmt.Println("Medication removed")
	return nil
}

func init() {
	medicationsCmd.PersistentFlags().StringVar(&medicationElderId, "elder", "", "Elder id")
	medicationsAddCmd.Flags().StringVar(&medicationName, "name", "", "Medication name")
	medicationsAddCmd.Flags().StringVar(&medicationDosage, "dosage", "", "Dosage")
	medicationsAddCmd.Flags().StringVar(&medicationSchedule, "schedule", "", "When to administer")
	medicationsRemoveCmd.Flags().StringVar(&medicationId, "medication", "", "Medication id")

	medicationsCmd.AddCommand(medicationsListCmd)
	medicationsCmd.AddCommand(medicationsAddCmd)
	medicationsCmd.AddCommand(medicationsRemoveCmd)
	rootCmd.AddCommand(medicationsCmd)
}
