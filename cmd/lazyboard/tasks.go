package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Joseda-hg/lazyboard/internal/model"
)

func tasksCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage the local task list",
	}
	cmd.AddCommand(tasksListCmd(opts))
	cmd.AddCommand(tasksAddCmd(opts))
	cmd.AddCommand(tasksToggleCmd(opts))
	cmd.AddCommand(tasksRemoveCmd(opts))
	return cmd
}

func tasksListCmd(opts *globalOptions) *cobra.Command {
	var (
		status string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := model.ParseStatusFilter(status)
			if err != nil {
				return err
			}
			a, err := openApp(cmd.Context(), *opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			visible := a.tasks.Filtered(filter)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), visible)
			}
			return printTasks(cmd.OutOrStdout(), visible, a.tasks.Stats())
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", "all", "filter: all, active or completed")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output as JSON")
	return cmd
}

func tasksAddCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			created, err := a.tasks.Add(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added %d: %s\n", created.ID, created.Text)
			return err
		},
	}
}

func tasksToggleCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a task between active and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateTask(cmd, opts, args[0], "toggled", func(a *app, id int64) error {
				return a.tasks.Toggle(cmd.Context(), id)
			})
		},
	}
}

func tasksRemoveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateTask(cmd, opts, args[0], "deleted", func(a *app, id int64) error {
				return a.tasks.Delete(cmd.Context(), id)
			})
		},
	}
}

// mutateTask reports unknown ids as errors even though the board treats them
// as no-ops.
func mutateTask(cmd *cobra.Command, opts *globalOptions, rawID, verb string, apply func(*app, int64) error) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q", rawID)
	}
	a, err := openApp(cmd.Context(), *opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	if _, ok := a.tasks.Get(id); !ok {
		return fmt.Errorf("task %d not found", id)
	}
	if err := apply(a, id); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", verb, id)
	return err
}

func printTasks(w io.Writer, list []model.Task, stats model.TaskStats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tCREATED\tTEXT")
	for _, task := range list {
		done := " "
		if task.Completed {
			done = "x"
		}
		fmt.Fprintf(tw, "%d\t[%s]\t%s\t%s\n", task.ID, done, task.CreatedAt.Local().Format("2006-01-02 15:04"), task.Text)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d total, %d active, %d completed\n", stats.Total, stats.Active, stats.Completed)
	return err
}
