package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomblancdev/dropbox-go"
	"github.com/tomblancdev/dropbox-go/check"
	"github.com/tomblancdev/dropbox-go/users"
)

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Args:  cobra.NoArgs,
		Short: "Show the account the token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := call(cmd.Context(), a, users.GetCurrentAccount(""))
			if err != nil {
				return err
			}
			if acct == nil {
				return fmt.Errorf("whoami: empty response")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", acct.Name.DisplayName, acct.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "account: %s (%s)\n", acct.AccountID, acct.AccountType.Tag)
			return nil
		},
	}
}

func newSpaceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "space",
		Args:  cobra.NoArgs,
		Short: "Show space usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			usage, err := call(cmd.Context(), a, users.GetSpaceUsage(""))
			if err != nil {
				return err
			}
			if usage == nil {
				return fmt.Errorf("space: empty response")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "used %s of %s (%s free)\n",
				formatSize(usage.Used), formatSize(usage.Allocation.Allocated), formatSize(usage.Free()))
			return nil
		},
	}
}

func newEchoCommand(a *app) *cobra.Command {
	var useApp bool

	cmd := &cobra.Command{
		Use:   "echo <query>",
		Args:  cobra.ExactArgs(1),
		Short: "Check connectivity by echoing a query",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := check.User("", &check.EchoArg{Query: args[0]})
			if useApp {
				req = check.App("", &check.EchoArg{Query: args[0]})
			}
			res, err := call(cmd.Context(), a, req)
			if err != nil {
				return err
			}
			if res == nil {
				return fmt.Errorf("echo: empty response")
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Result)
			return nil
		},
	}
	cmd.Flags().BoolVar(&useApp, "app", false, "Use the app check route")
	return cmd
}

func newVersionCommand(a *app) *cobra.Command {
	var serverVersion string

	cmd := &cobra.Command{
		Use:         "version",
		Args:        cobra.NoArgs,
		Short:       "Print version information",
		Annotations: map[string]string{offline: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dbx %s\n", dropbox.Version)
			fmt.Fprintf(out, "API %s (supports %s)\n", dropbox.APIVersion, dropbox.APIVersionRange)

			if serverVersion == "" {
				return nil
			}
			result := dropbox.CheckCompatibility(serverVersion)
			fmt.Fprintf(out, "%s: %s\n", result.Status, result.Message)
			if !result.IsCompatible() {
				return fmt.Errorf("server API version %s is %s", serverVersion, result.Status)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&serverVersion, "check", "", "Check an API version for compatibility")
	return cmd
}

// formatSize renders n bytes with a binary unit.
func formatSize(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
