package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandeepkv93/pomod/internal/idgen"
	"github.com/sandeepkv93/pomod/internal/model"
	"github.com/sandeepkv93/pomod/internal/tasklist"
	"github.com/spf13/cobra"
)

func newTasksCommand(opts *options) *cobra.Command {
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "List persisted tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaskList(cmd, opts, func(ctx context.Context, list *tasklist.List) error {
				tasks := list.Tasks()
				out := cmd.OutOrStdout()
				if len(tasks) == 0 {
					fmt.Fprintln(out, "No tasks.")
					return nil
				}
				for i, task := range tasks {
					fmt.Fprintf(out, "%d. %s (%s)\n", i+1, task.Name, task.Progress())
					if desc := strings.TrimSpace(task.Description); desc != "" {
						fmt.Fprintf(out, "   %s\n", strings.ReplaceAll(desc, "\n", "\n   "))
					}
				}
				return nil
			})
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Append a task to the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, _ := cmd.Flags().GetString("description")
			total, _ := cmd.Flags().GetInt("pomodoros")
			return withTaskList(cmd, opts, func(ctx context.Context, list *tasklist.List) error {
				id, err := idgen.NewUUIDGenerator().NewID(ctx)
				if err != nil {
					return fmt.Errorf("generate task id: %w", err)
				}
				task, err := list.Add(ctx, model.Task{
					ID:             id,
					Name:           strings.TrimSpace(strings.Join(args, " ")),
					Description:    desc,
					TotalPomodoros: total,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) as #%d\n", task.Name, task.ID, list.Len())
				return nil
			})
		},
	}
	addCmd.Flags().String("description", "", "task description (markdown)")
	addCmd.Flags().Int("pomodoros", 1, "pomodoros needed to finish the task")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaskList(cmd, opts, func(ctx context.Context, list *tasklist.List) error {
				n := list.Len()
				if err := list.RemoveAll(ctx); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %d task(s)\n", n)
				return nil
			})
		},
	}

	tasksCmd.AddCommand(addCmd, clearCmd)
	return tasksCmd
}

func withTaskList(cmd *cobra.Command, opts *options, fn func(context.Context, *tasklist.List) error) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	list := tasklist.New(store, consoleLogger(cmd, cfg))
	list.Load(ctx)
	return fn(ctx, list)
}
