package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amparo-care/amparo/authz"
	"github.com/amparo-care/amparo/elders"
	"github.com/amparo-care/amparo/session"
	"github.com/amparo-care/amparo/users"
)

var (
	elderName     string
	elderBirth    string
	elderGuardian string
	elderId       string
	elderPhotoUrl string
)

var eldersCmd = &cobra.Command{
	Use:   "elders",
	Short: "Manage elders in your care",
}

var eldersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the elders visible to the signed-in user",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listElders) },
}

func listElders(eldersClient elders.Client, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	actor, err := requireActor(ctx, sess, authorizer, authz.ActionEldersRead)
	if err != nil {
		return err
	}

	var list []elders.Elder
	switch actor.Role {
	case users.RoleGuardian:
		list, err = eldersClient.ListByGuardian(ctx, actor.ID)
	case users.RoleCaregiver:
		list, err = eldersClient.ListByCaregiver(ctx, actor.ID)
	default:
		list, err = eldersClient.List(ctx)
	}
	if err != nil {
		return err
	}

	for _, e := range list {
		fmt.Printf("%s %s\n", e.ID, e.Name)
	}
	fmt.Printf("Found %v elders\n", len(list))
	return nil
}

var eldersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new elder",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(addElder) },
}

func addElder(eldersClient elders.Client, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	actor, err := requireActor(ctx, sess, authorizer, authz.ActionEldersWrite)
	if err != nil {
		return err
	}
	if elderName == "" {
		return fmt.Errorf("--name is required")
	}

	created, err := eldersClient.Create(ctx, elders.Elder{
		Name:        elderName,
		BirthDate:   elderBirth,
		GuardianID:  elderGuardian,
		CaregiverID: actor.ID,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Elder %s registered as %s\n", created.Name, created.ID)
	return nil
}

var eldersLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link an elder to a guardian",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(linkElder) },
}

func linkElder(eldersClient elders.Client, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	actor, err := requireActor(ctx, sess, authorizer, authz.ActionEldersLink)
	if err != nil {
		return err
	}
	if elderId == "" || elderGuardian == "" {
		return fmt.Errorf("--elder and --guardian are required")
	}

	err = eldersClient.Link(ctx, elders.Link{
		ElderID:     elderId,
		GuardianID:  elderGuardian,
		CaregiverID: actor.ID,
	})
	if err != nil {
		return err
	}
	fmt.Println("Linked")
	return nil
}

var eldersPhotoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Set or clear an elder's photo url",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(setElderPhoto) },
}

func setElderPhoto(eldersClient elders.Client, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	if _, err := requireActor(ctx, sess, authorizer, authz.ActionEldersWrite); err != nil {
		return err
	}
	if elderId == "" {
		return fmt.Errorf("--elder is required")
	}

	var photoUrl *string
	if elderPhotoUrl != "" {
		photoUrl = &elderPhotoUrl
	}
	if err := eldersClient.SetPhotoURL(ctx, elderId, photoUrl); err != nil {
		return err
	}
	fmt.Println("Photo updated")
	return nil
}

func init() {
	eldersAddCmd.Flags().StringVar(&elderName, "name", "", "Elder name")
	eldersAddCmd.Flags().StringVar(&elderBirth, "birth-date", "", "Birth date (YYYY-MM-DD)")
	eldersAddCmd.Flags().StringVar(&elderGuardian, "guardian", "", "Guardian id")
	eldersLinkCmd.Flags().StringVar(&elderId, "elder", "", "Elder id")
	eldersLinkCmd.Flags().StringVar(&elderGuardian, "guardian", "", "Guardian id")
	eldersPhotoCmd.Flags().StringVar(&elderId, "elder", "", "Elder id")
	eldersPhotoCmd.Flags().StringVar(&elderPhotoUrl, "url", "", "Photo url, empty clears it")

	eldersCmd.AddCommand(eldersListCmd)
	eldersCmd.AddCommand(eldersAddCmd)
	eldersCmd.AddCommand(eldersLinkCmd)
	eldersCmd.AddCommand(eldersPhotoCmd)
	rootCmd.AddCommand(eldersCmd)
}
