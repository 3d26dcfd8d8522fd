package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/amparo-care/amparo/authz"
	"github.com/amparo-care/amparo/config"
	"github.com/amparo-care/amparo/notifications"
	"github.com/amparo-care/amparo/screen"
	"github.com/amparo-care/amparo/session"
)

var (
	notificationsWatch bool
	notificationId     string
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List unread notifications, optionally watching for new ones",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listNotifications) },
}

func listNotifications(notificationsClient notifications.Client, watcher *notifications.Watcher, cfg *config.Config, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	actor, err := requireActor(ctx, sess, authorizer, authz.ActionNotificationsRead)
	if err != nil {
		return err
	}

	if !notificationsWatch {
		list, err := notificationsClient.ListByUser(ctx, actor.ID)
		if err != nil {
			return err
		}
		unread := 0
		for _, n := range list {
			if n.Read {
				continue
			}
			unread += 1
			fmt.Printf("%s %s\n", n.ID, n.Message)
		}
		fmt.Printf("%d unread\n", unread)
		return nil
	}

	// Watch until interrupted; the scope drops deliveries that land after
	// the interrupt, mirroring a screen being torn down mid-fetch.
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	scope := screen.NewScope()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		scope.Close()
		cancel()
	}()

	err = watcher.WithInterval(cfg.NotificationInterval).
		Watch(watchCtx, scope, actor.ID, func(n notifications.Notification) {
			fmt.Printf("[%s] %s\n", time.Now().Format("15:04:05"), n.Message)
		})
	if err == context.Canceled {
		return nil
	}
	return err
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Mark a notification as read",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(markNotificationRead) },
}

func markNotificationRead(notificationsClient notifications.Client, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	if _, err := requireActor(ctx, sess, authorizer, authz.ActionNotificationsWrite); err != nil {
		return err
	}
	if notificationId == "" {
		return fmt.Errorf("--notification is required")
	}

	if err := notificationsClient.SetRead(ctx, notificationId, true); err != nil {
		return err
	}
	fmt.Println("Marked as read")
	return nil
}

func init() {
	notificationsCmd.Flags().BoolVar(&notificationsWatch, "watch", false, "Keep polling for new notifications")
	notificationsReadCmd.Flags().StringVar(&notificationId, "notification", "", "Notification id")

	notificationsCmd.AddCommand(notificationsReadCmd)
	rootCmd.AddCommand(notificationsCmd)
}
