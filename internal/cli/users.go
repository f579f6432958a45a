package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/glamgiant/internal/listing"
	"github.com/me/glamgiant/pkg/model"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage user accounts",
	}
	cmd.AddCommand(newUsersListCmd(), newUsersCreateCmd(), newUsersDeleteCmd())
	return cmd
}

func newUsersListCmd() *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireView("/users-management"); err != nil {
				return err
			}
			engine := listing.Users(pageSize)
			if err := checkSort(engine, opts.sort); err != nil {
				return err
			}
			users, err := authed().ListUsers(cmd.Context())
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}
			res := engine.Apply(users, opts.query())
			return renderResult(cmd, res,
				[]string{"ID", "NAME", "EMAIL", "ROLE", "TEST SUBJECT"},
				func(u model.User) []string {
					return []string{u.ID, u.Name, u.Email, string(u.Role), yesNo(u.TestSubjectStatus)}
				})
		},
	}
	opts.bind(cmd)
	return cmd
}

func newUsersCreateCmd() *cobra.Command {
	var in userInput
	var testSubject bool
	var allergies string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireView("/users-management"); err != nil {
				return err
			}
			if err := validate.Struct(in); err != nil {
				return fmt.Errorf("invalid user: %w", err)
			}
			role, err := model.ParseRole(in.Role)
			if err != nil {
				return err
			}
			u, err := authed().CreateUser(cmd.Context(), model.UserInput{
				Name:              in.Name,
				Email:             in.Email,
				Password:          in.Password,
				Role:              role,
				TestSubjectStatus: testSubject,
				AllergicReactions: allergies,
			})
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			success(cmd, "User %s created (%s, %s)", u.Email, u.ID, u.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&in.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "Initial password")
	cmd.Flags().StringVar(&in.Role, "role", string(model.RoleClient), "Role (admin, employee, tester, client)")
	cmd.Flags().BoolVar(&testSubject, "test-subject", false, "Mark as a test subject")
	cmd.Flags().StringVar(&allergies, "allergies", "", "Known allergic reactions")
	return cmd
}

func newUsersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requireView("/users-management")
			if err != nil {
				return err
			}
			if args[0] == id.ID {
				return errors.New("you cannot delete your own account")
			}
			if err := authed().DeleteUser(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete user: %w", err)
			}
			success(cmd, "User %s deleted", args[0])
			return nil
		},
	}
}
