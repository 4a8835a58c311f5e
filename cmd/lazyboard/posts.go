package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Joseda-hg/lazyboard/internal/model"
)

func postsCmd(opts *globalOptions) *cobra.Command {
	var (
		search string
		page   int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Fetch posts and print one page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 {
				return fmt.Errorf("--page must be at least 1")
			}
			a, err := openApp(cmd.Context(), *opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.posts.Load(cmd.Context()); err != nil {
				return err
			}
			result, err := a.posts.View(search, page)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return printPosts(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVarP(&search, "query", "q", "", "case-insensitive search over title and body")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output as JSON")

	cmd.AddCommand(postShowCmd(opts))
	return cmd
}

func postShowCmd(opts *globalOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a single post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid post id %q", args[0])
			}
			a, err := openApp(cmd.Context(), *opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			post, err := a.posts.Post(cmd.Context(), id)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), post)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\nPost #%d by user %d\n\n%s\n", post.Title, post.ID, post.UserID, post.Body)
			return err
		},
	}
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output as JSON")
	return cmd
}

func printPosts(w io.Writer, page model.Page[model.Post]) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tTITLE")
	for _, post := range page.Items {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", post.ID, post.UserID, post.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\npage %d of %d, %d posts\n", page.CurrentPage, page.TotalPages, page.TotalItems)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
