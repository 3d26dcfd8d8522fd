package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amparo-care/amparo/auth"
	"github.com/amparo-care/amparo/users"
)

var (
	registerName     string
	registerEmail    string
	registerPassword string
	registerRole     string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(register) },
}

func register(authClient auth.Client) error {
	if registerName == "" || registerEmail == "" || registerPassword == "" {
		return fmt.Errorf("--name, --email and --password are required")
	}
	switch registerRole {
	case users.RoleCaregiver, users.RoleGuardian:
	default:
		return fmt.Errorf("--role must be %q or %q", users.RoleCaregiver, users.RoleGuardian)
	}

	err := authClient.Register(context.TODO(), auth.RegistrationParams{
		Name:     registerName,
		Email:    registerEmail,
		Password: registerPassword,
		Role:     registerRole,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Account created for %s, run `amparo login` to sign in\n", registerEmail)
	return nil
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password")
	registerCmd.Flags().StringVar(&registerRole, "role", users.RoleGuardian, "Account role")
	rootCmd.AddCommand(registerCmd)
}
