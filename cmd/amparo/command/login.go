package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amparo-care/amparo/auth"
	"github.com/amparo-care/amparo/session"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(login) },
}

func login(authClient auth.Client, store session.Store) error {
	if loginEmail == "" || loginPassword == "" {
		return fmt.Errorf("both --email and --password are required")
	}

	credentials, err := authClient.Login(context.TODO(), auth.LoginParams{
		Email:    loginEmail,
		Password: loginPassword,
	})
	if err != nil {
		return err
	}

	if err := store.Save(&session.Session{User: credentials.User, Token: credentials.Token}); err != nil {
		return err
	}

	fmt.Printf("Signed in as %s (%s)\n", credentials.User.Name, credentials.User.Role)
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the persisted session",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(logout) },
}

func logout(store session.Store) error {
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("Signed out")
	return nil
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(whoami) },
}

func whoami(sess *session.Session) error {
	if !sess.SignedIn() {
		fmt.Println("Not signed in")
		return nil
	}
	fmt.Printf("%s <%s> %s\n", sess.User.Name, sess.User.Email, sess.User.Role)
	return nil
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
