package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tomblancdev/dropbox-go"
	"github.com/tomblancdev/dropbox-go/files"
)

// statConcurrency bounds the metadata calls stat runs at once.
const statConcurrency = 4

func newLsCommand(a *app) *cobra.Command {
	var recursive, deleted bool

	cmd := &cobra.Command{
		Use:   "ls [path]",
		Args:  cobra.MaximumNArgs(1),
		Short: "List a folder",
		Example: `  dbx ls
  dbx ls /Photos --recursive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := &files.ListFolderArg{Recursive: recursive, IncludeDeleted: deleted}
			if len(args) == 1 {
				arg.Path = rootPath(args[0])
			}

			var entries []files.Metadata
			var err error
			if a.async {
				entries, err = listAsync(cmd, a, arg)
			} else {
				entries, err = files.ListAll(cmd.Context(), a.client, "", arg)
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for i := range entries {
				printEntry(w, &entries[i])
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "List everything below the folder")
	cmd.Flags().BoolVar(&deleted, "deleted", false, "Include deleted entries")
	return cmd
}

// listAsync follows cursors like files.ListAll, one async call per page.
func listAsync(cmd *cobra.Command, a *app, arg *files.ListFolderArg) ([]files.Metadata, error) {
	page, err := call(cmd.Context(), a, files.ListFolder("", arg))
	var entries []files.Metadata
	for err == nil && page != nil {
		entries = append(entries, page.Entries...)
		if !page.HasMore {
			break
		}
		page, err = call(cmd.Context(), a, files.ListFolderContinue("", &files.ListFolderContinueArg{Cursor: page.Cursor}))
	}
	return entries, err
}

func newStatCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stat <path>...",
		Args:  cobra.MinimumNArgs(1),
		Short: "Show the metadata of files and folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]*files.Metadata, len(args))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(statConcurrency)
			for i, path := range args {
				g.Go(func() error {
					md, err := call(ctx, a, files.GetMetadata("", &files.GetMetadataArg{Path: path}))
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					results[i] = md
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, md := range results {
				if md != nil {
					printEntry(w, md)
				}
			}
			return w.Flush()
		},
	}
}

func newMkdirCommand(a *app) *cobra.Command {
	var autorename bool

	cmd := &cobra.Command{
		Use:   "mkdir <path>",
		Args:  cobra.ExactArgs(1),
		Short: "Create a folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := call(cmd.Context(), a, files.CreateFolder("", &files.CreateFolderArg{
				Path:       args[0],
				Autorename: autorename,
			}))
			if err != nil {
				return err
			}
			if res != nil {
				fmt.Fprintln(cmd.OutOrStdout(), res.Metadata.PathDisplay)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&autorename, "autorename", false, "Pick another name if the path exists")
	return cmd
}

func newRmCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>",
		Args:  cobra.ExactArgs(1),
		Short: "Delete a file or folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := call(cmd.Context(), a, files.Delete("", &files.DeleteArg{Path: args[0]}))
			if err != nil {
				return err
			}
			if res != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", res.Metadata.PathDisplay)
			}
			return nil
		},
	}
}

func newPutCommand(a *app) *cobra.Command {
	var overwrite, autorename bool

	cmd := &cobra.Command{
		Use:   "put <local> <remote>",
		Args:  cobra.ExactArgs(2),
		Short: "Upload a file of up to 150 MiB",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return err
			}
			modified := dropbox.NewTimestamp(info.ModTime())

			commit := &files.CommitInfo{
				Path:           args[1],
				Autorename:     autorename,
				ClientModified: &modified,
			}
			if overwrite {
				commit.Mode = &files.WriteMode{Tag: files.WriteModeOverwrite}
			}

			md, err := call(cmd.Context(), a, files.Upload("", commit, f))
			if err != nil {
				return err
			}
			if md != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s (%s, rev %s)\n", md.PathDisplay, formatSize(md.Size), md.Rev)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	cmd.Flags().BoolVar(&autorename, "autorename", false, "Pick another name if the path exists")
	return cmd
}

func newWatchCommand(a *app) *cobra.Command {
	var timeout time.Duration
	var recursive bool

	cmd := &cobra.Command{
		Use:   "watch [path]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Print entries as they change until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := &files.ListFolderArg{Recursive: recursive}
			if len(args) == 1 {
				arg.Path = rootPath(args[0])
			}

			w, err := files.Watch(cmd.Context(), a.client, "", arg, uint64(timeout/time.Second))
			if err != nil {
				return err
			}
			defer w.Close()

			a.logger.Info("watching", "path", arg.Path, "cursor", w.Cursor())

			out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for entry := range w.EventsWithContext(cmd.Context()) {
				printEntry(out, entry)
				if err := out.Flush(); err != nil {
					return err
				}
			}
			return w.Err()
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Longpoll timeout, between 30s and 8m")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Watch everything below the folder")
	return cmd
}

// rootPath maps "/" to the root, which the API names "".
func rootPath(p string) string {
	if p == "/" {
		return ""
	}
	return p
}

func printEntry(w *tabwriter.Writer, md *files.Metadata) {
	size := "-"
	if md.IsFile() {
		size = formatSize(md.Size)
	}
	path := md.PathDisplay
	if path == "" {
		path = md.Name
	}
	fmt.Fprintf(w, "%s\t%s\t%s\n", md.Tag, size, path)
}
