package cli

import (
	"context"
	"errors"

	"github.com/samvad-hq/iis-schedule-client/pkg/iis"
	"github.com/spf13/cobra"
)

// listCommand describes a parameterless resource command.
type listCommand struct {
	use   string
	short string
	fetch func(ctx context.Context, c *iis.Client) (any, error)
}

var listCommands = []listCommand{
	{"week", "Print the current week number", func(ctx context.Context, c *iis.Client) (any, error) { return c.CurrentWeek(ctx) }},
	{"auditories", "List auditories", func(ctx context.Context, c *iis.Client) (any, error) { return c.Auditories(ctx) }},
	{"departments", "List departments", func(ctx context.Context, c *iis.Client) (any, error) { return c.Departments(ctx) }},
	{"faculties", "List faculties", func(ctx context.Context, c *iis.Client) (any, error) { return c.Faculties(ctx) }},
	{"employees", "List employees", func(ctx context.Context, c *iis.Client) (any, error) { return c.Employees(ctx) }},
	{"groups", "List student groups", func(ctx context.Context, c *iis.Client) (any, error) { return c.Groups(ctx) }},
	{"specialities", "List specialities", func(ctx context.Context, c *iis.Client) (any, error) { return c.Specialities(ctx) }},
}

func newListCommands(opts *options) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(listCommands))
	for _, lc := range listCommands {
		lc := lc
		cmds = append(cmds, &cobra.Command{
			Use:   lc.use,
			Short: lc.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				v, err := lc.fetch(cmd.Context(), opts.client())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), v)
			},
		})
	}
	return cmds
}

func newLastUpdateCmd(opts *options) *cobra.Command {
	var (
		groupNumber   string
		groupID       uint32
		employeeURLID string
		employeeID    uint32
	)

	cmd := &cobra.Command{
		Use:   "last-update",
		Short: "Print when a group or employee schedule last changed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var q iis.LastUpdateQuery
			switch {
			case cmd.Flags().Changed("group-number"):
				q = iis.LastUpdateByGroupNumber{GroupNumber: groupNumber}
			case cmd.Flags().Changed("group-id"):
				q = iis.LastUpdateByGroupID{GroupID: groupID}
			case cmd.Flags().Changed("employee-url-id"):
				q = iis.LastUpdateByEmployeeURLID{URLID: employeeURLID}
			case cmd.Flags().Changed("employee-id"):
				q = iis.LastUpdateByEmployeeID{EmployeeID: employeeID}
			default:
				return errors.New("one of --group-number, --group-id, --employee-url-id, --employee-id is required")
			}
			lu, err := opts.client().LastUpdate(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), lu)
		},
	}
	cmd.Flags().StringVar(&groupNumber, "group-number", "", "student group number, e.g. 155841")
	cmd.Flags().Uint32Var(&groupID, "group-id", 0, "student group id")
	cmd.Flags().StringVar(&employeeURLID, "employee-url-id", "", "employee url id, e.g. s-nesterenkov")
	cmd.Flags().Uint32Var(&employeeID, "employee-id", 0, "employee id")
	cmd.MarkFlagsMutuallyExclusive("group-number", "group-id", "employee-url-id", "employee-id")
	return cmd
}

func newAnnouncementsCmd(opts *options) *cobra.Command {
	var (
		departmentID  uint32
		employeeURLID string
	)

	cmd := &cobra.Command{
		Use:   "announcements",
		Short: "List announcements of a department or employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var q iis.AnnouncementQuery
			switch {
			case cmd.Flags().Changed("department-id"):
				q = iis.AnnouncementsOfDepartment{DepartmentID: departmentID}
			case cmd.Flags().Changed("employee-url-id"):
				q = iis.AnnouncementsOfEmployee{EmployeeURLID: employeeURLID}
			default:
				return errors.New("one of --department-id, --employee-url-id is required")
			}
			anns, err := opts.client().Announcements(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), anns)
		},
	}
	cmd.Flags().Uint32Var(&departmentID, "department-id", 0, "department id")
	cmd.Flags().StringVar(&employeeURLID, "employee-url-id", "", "employee url id")
	cmd.MarkFlagsMutuallyExclusive("department-id", "employee-url-id")
	return cmd
}
