package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/Justice-Caban/QuickQuotes/internal/palette"
	"github.com/Justice-Caban/QuickQuotes/internal/storage"
	"github.com/spf13/cobra"
)

// previewLength is how much of a quote list shows
const previewLength = 60

func newQuoteCmd(a *app) *cobra.Command {
	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Manage quotes",
		Long:  "Add, list, edit, delete and favorite quotes.",
	}

	quoteCmd.AddCommand(
		newQuoteAddCmd(a),
		newQuoteListCmd(a),
		newQuoteEditCmd(a),
		newQuoteDeleteCmd(a),
		newQuoteFavoriteCmd(a),
	)

	return quoteCmd
}

func newQuoteAddCmd(a *app) *cobra.Command {
	var author, category string

	cmd := &cobra.Command{
		Use:     "add <content>",
		Short:   "Submit a quote",
		Example: `  quickquotes quote add --author "Seneca" --category wisdom "Luck is what happens when preparation meets opportunity."`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := palette.ParseCategory(category)
			if err != nil {
				return err
			}

			st, err := a.openStorage()
			if err != nil {
				return err
			}
			defer st.Close()

			q := &storage.Quote{
				Content:  strings.Join(args, " "),
				Author:   author,
				Category: c,
				UserID:   a.cfg.User.ID,
			}
			if err := st.Quotes.Create(q); err != nil {
				return err
			}

			a.logger.Debug().Str("id", q.ID).Str("category", c.String()).Msg("quote created")
			fmt.Fprintln(cmd.OutOrStdout(), q.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&author, "author", "a", "", "who said it (required)")
	cmd.Flags().StringVarP(&category, "category", "c", palette.Motivational.String(), "quote category")
	_ = cmd.MarkFlagRequired("author")
	return cmd
}

func newQuoteListCmd(a *app) *cobra.Command {
	var (
		search    string
		category  string
		mine      bool
		favorites bool
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quotes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := storage.QuoteFilter{Search: search, Limit: limit}
			if category != "" {
				c, err := palette.ParseCategory(category)
				if err != nil {
					return err
				}
				filter.Category = &c
			}
			if mine {
				filter.UserID = a.cfg.User.ID
			}

			st, err := a.openStorage()
			if err != nil {
				return err
			}
			defer st.Close()

			var quotes []*storage.Quote
			if favorites {
				quotes, err = st.Favorites.ListQuotes(a.cfg.User.ID, search)
			} else {
				quotes, err = st.Quotes.List(filter)
			}
			if err != nil {
				return err
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tCATEGORY\tAUTHOR\tQUOTE")
			for _, q := range quotes {
				if favorites && filter.Category != nil && q.Category != *filter.Category {
					continue
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", shortID(q.ID), q.Category, q.Author, truncate(q.Content, previewLength))
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "match content or author")
	cmd.Flags().StringVarP(&category, "category", "c", "", "only this category")
	cmd.Flags().BoolVar(&mine, "mine", false, "only quotes you submitted")
	cmd.Flags().BoolVar(&favorites, "favorites", false, "only your favorites")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of quotes")
	return cmd
}

func newQuoteEditCmd(a *app) *cobra.Command {
	var content, author, category string

	cmd := &cobra.Command{
		Use:     "edit <id>",
		Short:   "Edit one of your quotes",
		Example: `  quickquotes quote edit 1a2b3c4d --author "Lucius Annaeus Seneca" --category wisdom`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("content") && !flags.Changed("author") && !flags.Changed("category") {
				return fmt.Errorf("nothing to change: set --content, --author or --category")
			}

			st, err := a.openStorage()
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := resolveID(st, args[0])
			if err != nil {
				return err
			}
			q, err := st.Quotes.Get(id)
			if err != nil {
				return err
			}
			if q.UserID != a.cfg.User.ID {
				return fmt.Errorf("quote %s was submitted by another user", shortID(id))
			}

			if flags.Changed("content") {
				q.Content = content
			}
			if flags.Changed("author") {
				q.Author = author
			}
			if flags.Changed("category") {
				c, err := palette.ParseCategory(category)
				if err != nil {
					return err
				}
				q.Category = c
			}

			if err := st.Quotes.Update(q); err != nil {
				return err
			}

			a.logger.Debug().Str("id", q.ID).Msg("quote updated")
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", q.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "new quote text")
	cmd.Flags().StringVarP(&author, "author", "a", "", "new author")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category")
	return cmd
}

func newQuoteDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStorage()
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := resolveID(st, args[0])
			if err != nil {
				return err
			}
			if err := st.Quotes.Delete(id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			return nil
		},
	}
}

func newQuoteFavoriteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "fav <id>",
		Aliases: []string{"favorite"},
		Short:   "Toggle a quote in your favorites",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStorage()
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := resolveID(st, args[0])
			if err != nil {
				return err
			}
			on, err := st.Favorites.Toggle(a.cfg.User.ID, id)
			if err != nil {
				return err
			}

			if on {
				fmt.Fprintln(cmd.OutOrStdout(), "Added to favorites")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Removed from favorites")
			}
			return nil
		},
	}
}

// resolveID expands the short IDs printed by list
func resolveID(st *storage.Storage, prefix string) (string, error) {
	if _, err := st.Quotes.Get(prefix); err == nil {
		return prefix, nil
	}

	quotes, err := st.Quotes.List(storage.QuoteFilter{})
	if err != nil {
		return "", err
	}

	var match string
	for _, q := range quotes {
		if strings.HasPrefix(q.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("quote id %q is ambiguous", prefix)
			}
			match = q.ID
		}
	}
	if match == "" {
		return "", storage.ErrQuoteNotFound
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
