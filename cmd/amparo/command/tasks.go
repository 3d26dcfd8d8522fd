package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amparo-care/amparo/authz"
	"github.com/amparo-care/amparo/session"
	"github.com/amparo-care/amparo/tasks"
)

var (
	taskElderId     string
	taskDescription string
	taskId          string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage an elder's care tasks",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks for an elder",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listTasks) },
}

func listTasks(tasksClient tasks.Client, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	if _, err := requireActor(ctx, sess, authorizer, authz.ActionTasksRead); err != nil {
		return err
	}
	if taskElderId == "" {
		return fmt.Errorf("--elder is required")
	}

	list, err := tasksClient.ListByElder(ctx, taskElderId)
	if err != nil {
		return err
	}
	for _, t := range list {
		fmt.Printf("%s [%s] %s\n", t.ID, t.Status, t.Description)
	}
	return nil
}

var tasksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task for an elder",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(addTask) },
}

func addTask(tasksClient tasks.Client, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	if _, err := requireActor(ctx, sess, authorizer, authz.ActionTasksWrite); err != nil {
		return err
	}
	if taskElderId == "" || taskDescription == "" {
		return fmt.Errorf("--elder and --description are required")
	}

	created, err := tasksClient.Create(ctx, tasks.Task{
		ElderID:     taskElderId,
		Description: taskDescription,
		Status:      tasks.StatusPending,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Task %s created\n", created.ID)
	return nil
}

var tasksDoneCmd = &cobra.Command{
	Use:   "done",
	Short: "Mark a task as completed",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(completeTask) },
}

func completeTask(tasksClient tasks.Client, sess *session.Session, authorizer authz.Authorizer) error {
	ctx := context.TODO()
	if _, err := requireActor(ctx, sess, authorizer, authz.ActionTasksWrite); err != nil {
		return err
	}
	if taskId == "" {
		return fmt.Errorf("--task is required")
	}

	if err := tasksClient.SetStatus(ctx, taskId, tasks.StatusDone); err != nil {
		return err
	}
	fmt.Println("Task completed")
	return nil
}

func init() {
	tasksCmd.PersistentFlags().StringVar(&taskElderId, "elder", "", "Elder id")
	tasksAddCmd.Flags().StringVar(&taskDescription, "description", "", "What needs doing")
	tasksDoneCmd.Flags().StringVar(&taskId, "task", "", "Task id")

	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksAddCmd)
	tasksCmd.AddCommand(tasksDoneCmd)
	rootCmd.AddCommand(tasksCmd)
}
