package main

import (
	"fmt"
	"time"

	"github.com/go-openapi/swag"
	"github.com/spf13/cobra"

	"github.com/tomblancdev/dropbox-go"
	"github.com/tomblancdev/dropbox-go/filerequests"
)

func newFileRequestCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file-request",
		Short: "Manage file requests",
	}
	cmd.AddCommand(newFileRequestCreateCommand(a), newFileRequestCountCommand(a))
	return cmd
}

func newFileRequestCreateCommand(a *app) *cobra.Command {
	var (
		title       string
		destination string
		description string
		deadline    string
		grace       string
		closed      bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Args:  cobra.NoArgs,
		Short: "Create a file request",
		Example: `  dbx file-request create --title "Homework" --destination /Homework \
      --deadline 2026-12-01T17:00:00Z --grace seven_days`,
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := &filerequests.CreateFileRequestArgs{
				Title:       title,
				Destination: destination,
			}
			if description != "" {
				arg.Description = swag.String(description)
			}
			if closed {
				arg.Open = swag.Bool(false)
			}
			if deadline != "" {
				t, err := time.Parse(time.RFC3339, deadline)
				if err != nil {
					return fmt.Errorf("--deadline: %w", err)
				}
				arg.Deadline = &filerequests.FileRequestDeadline{Deadline: dropbox.NewTimestamp(t)}
				if grace != "" {
					arg.Deadline.AllowLateUploads = &filerequests.GracePeriod{Tag: grace}
				}
			}

			req, err := call(cmd.Context(), a, filerequests.Create("", arg))
			if err != nil {
				return err
			}
			if req == nil {
				return fmt.Errorf("file-request create: empty response")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", req.ID, req.URL)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&title, "title", "", "Title shown to uploaders")
	flags.StringVar(&destination, "destination", "", "Folder uploads land in")
	flags.StringVar(&description, "description", "", "Description shown to uploaders")
	flags.StringVar(&deadline, "deadline", "", "Deadline, RFC 3339")
	flags.StringVar(&grace, "grace", "", "Late upload period: one_day, two_days, seven_days, thirty_days or always")
	flags.BoolVar(&closed, "closed", false, "Create the request closed")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("destination")
	return cmd
}

func newFileRequestCountCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Args:  cobra.NoArgs,
		Short: "Count file requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := call(cmd.Context(), a, filerequests.Count(""))
			if err != nil {
				return err
			}
			if res == nil {
				return fmt.Errorf("file-request count: empty response")
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.FileRequestCount)
			return nil
		},
	}
}
