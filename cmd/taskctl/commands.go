package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	appservice "tasktracker/internal/app/service"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/projection"
)

const shortIDLen = 8

// newRootCmd builds the command tree. The returned func releases the store
// opened by whichever command ran and must be called after Execute.
func newRootCmd(open storeOpener, hasher *appservice.PasswordHasher) (*cobra.Command, func() error) {
	a := &app{open: open, hasher: hasher}

	root := &cobra.Command{
		Use:          "taskctl",
		Short:        "Track your tasks from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newSignupCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newAddCmd(a),
		newListCmd(a),
		newToggleCmd(a),
		newEditCmd(a),
		newRmCmd(a),
		newStatsCmd(a),
		newThemeCmd(a),
	)
	return root, a.close
}

// --- Account ---

func newSignupCmd(a *app) *cobra.Command {
	var input domain.SignupInput
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.users.Signup(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&input.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&input.Password, "password", "", "Password")
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in; later commands act on your tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.users.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", user.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.users.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

// --- Tasks ---

type taskFlags struct {
	description string
	priority    string
	status      string
	due         string
	taskType    string
}

func newAddCmd(a *app) *cobra.Command {
	var flags taskFlags
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.currentUserID(cmd.Context())
			if err != nil {
				return err
			}

			input := domain.CreateTaskInput{
				UserID:      userID,
				Title:       strings.Join(args, " "),
				Description: flags.description,
				Priority:    domain.Priority(flags.priority),
				Status:      domain.TaskStatus(flags.status),
			}
			if flags.due != "" {
				due, err := domain.ParseTimestamp(flags.due)
				if err != nil {
					return err
				}
				input.DueDate = &due
			}
			if flags.taskType != "" {
				taskType, err := domain.ParseTaskType(flags.taskType)
				if err != nil {
					return err
				}
				input.TaskType = &taskType
			}

			task, err := a.tasks.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", shortID(task.ID), task.Title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.description, "description", "d", "", "Description")
	cmd.Flags().StringVarP(&flags.priority, "priority", "p", "", "Priority: high, medium or low")
	cmd.Flags().StringVarP(&flags.status, "status", "s", "", "Status: todo, in-progress or completed")
	cmd.Flags().StringVar(&flags.due, "due", "", "Due date, e.g. 2026-01-31 or 2026-01-31T17:00")
	cmd.Flags().StringVar(&flags.taskType, "type", "", "Type: feature, bug, epic or story")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var filter, sortBy, query string
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List your tasks",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := a.currentUserID(cmd.Context())
			if err != nil {
				return err
			}

			view := domain.ViewState{SearchQuery: query}
			if view.Filter, err = domain.ParseFilter(filter); err != nil {
				return err
			}
			if view.SortBy, err = domain.ParseSortKey(sortBy); err != nil {
				return err
			}

			tasks := projection.Project(a.tasks.List(cmd.Context()), userID, view)
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks")
				return nil
			}
			return writeTaskTable(cmd.OutOrStdout(), tasks)
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "Filter: all, active or completed")
	cmd.Flags().StringVar(&sortBy, "sort", "dueDate", "Sort: dueDate, priority, title or status")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Only tasks whose title or description contains this text")
	return cmd
}

func newToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a task completed, or reopen it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.resolveTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			task, err = a.tasks.Toggle(cmd.Context(), task.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", shortID(task.ID), task.Status)
			return nil
		},
	}
}

func newEditCmd(a *app) *cobra.Command {
	var title string
	var flags taskFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.resolveTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var input domain.UpdateTaskInput
			changed := cmd.Flags().Changed
			if changed("title") {
				input.Title = &title
			}
			if changed("description") {
				input.Description = &flags.description
			}
			if changed("priority") {
				priority := domain.Priority(flags.priority)
				input.Priority = &priority
			}
			if changed("status") {
				status := domain.TaskStatus(flags.status)
				input.Status = &status
			}
			if changed("due") {
				due, err := domain.ParseTimestamp(flags.due)
				if err != nil {
					return err
				}
				input.DueDate = &due
			}
			if changed("type") {
				input.TaskTypeSet = true
				if flags.taskType != "" {
					taskType, err := domain.ParseTaskType(flags.taskType)
					if err != nil {
						return err
					}
					input.TaskType = &taskType
				}
			}

			task, err = a.tasks.Update(cmd.Context(), task.ID, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", shortID(task.ID), task.Title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&flags.description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&flags.priority, "priority", "p", "", "Priority: high, medium or low")
	cmd.Flags().StringVarP(&flags.status, "status", "s", "", "Status: todo, in-progress or completed")
	cmd.Flags().StringVar(&flags.due, "due", "", "Due date")
	cmd.Flags().StringVar(&flags.taskType, "type", "", "Type: feature, bug, epic or story; empty clears it")
	return cmd
}

func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Short:   "Delete a task",
		Aliases: []string{"delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.resolveTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := a.tasks.Delete(cmd.Context(), task.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", shortID(task.ID), task.Title)
			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show a summary of your tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := a.currentUserID(cmd.Context())
			if err != nil {
				return err
			}
			summary := projection.Summarize(a.tasks.List(cmd.Context()), userID, time.Local)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total:       %d\n", summary.Total)
			fmt.Fprintf(out, "Completed:   %d\n", summary.Completed)
			fmt.Fprintf(out, "Active:      %d\n", summary.Active)
			fmt.Fprintf(out, "In progress: %d\n", summary.InProgress)
			for _, epic := range summary.Epics {
				state := "open"
				if epic.Completed {
					state = "done"
				}
				fmt.Fprintf(out, "Epic %s %s (%s)\n", shortID(epic.ID), epic.Title, state)
			}
			return nil
		},
	}
}

func newThemeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the display theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				theme, err := domain.ParseTheme(args[0])
				if err != nil {
					return err
				}
				if err := a.preferences.SetTheme(cmd.Context(), theme); err != nil {
					return err
				}
			}
			theme, err := a.preferences.Theme(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		},
	}
}

func writeTaskTable(w io.Writer, tasks []domain.Task) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tDUE\tTITLE")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			shortID(task.ID),
			task.Status,
			task.Priority,
			task.DueDate.Local().Format(domain.DateLayout),
			task.Title,
		)
	}
	return tw.Flush()
}

// shortID is the id's tail. Time-ordered ids share their leading digits, so
// the tail is what tells tasks apart.
func shortID(id domain.TaskID) string {
	if len(id) <= shortIDLen {
		return string(id)
	}
	return string(id[len(id)-shortIDLen:])
}
