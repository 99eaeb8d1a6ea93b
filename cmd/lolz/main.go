// Command lolz is a small command-line front end for the Lolz forum API.
//
// Every command prints the JSON answer of one API call to stdout:
//
//	export LOLZ_TOKEN=...
//	lolz thread get 42
//	lolz search "golang" --limit 5
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	lolz "github.com/jamesprial/go-lolz-api-wrapper"
	"github.com/jamesprial/go-lolz-api-wrapper/pkg/types"
)

const commandTimeout = 60 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "lolz",
		Short:         "Command-line client for the Lolz forum API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = zerolog.New(zerolog.ConsoleWriter{
				Out:        cmd.ErrOrStderr(),
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			}).With().Timestamp().Logger()

			if opts.debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.token, "token", "", "API access token (default $LOLZ_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "API base URL (default "+lolz.DefaultBaseURL+")")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML profile with token, base_url, timeout and rate_limit")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Dump HTTP traffic to stderr")

	rootCmd.AddCommand(newCategoriesCmd(opts))
	rootCmd.AddCommand(newForumsCmd(opts))
	rootCmd.AddCommand(newThreadCmd(opts))
	rootCmd.AddCommand(newPostCmd(opts))
	rootCmd.AddCommand(newUserCmd(opts))
	rootCmd.AddCommand(newNotificationsCmd(opts))
	rootCmd.AddCommand(newConversationsCmd(opts))
	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newAttachmentHashCmd())

	return rootCmd
}

func newClient(opts *globalOptions) (*lolz.Client, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}
	logger := log.Logger
	cfg.Logger = &logger
	return lolz.NewClient(cfg)
}

// run builds a client, performs one call and prints its answer.
func run(cmd *cobra.Command, opts *globalOptions, call func(ctx context.Context, c *lolz.Client) (types.Response, error)) error {
	c, err := newClient(opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	start := time.Now()
	resp, err := call(ctx, c)
	if err != nil {
		return err
	}
	log.Debug().Str("command", cmd.CommandPath()).Dur("elapsed", time.Since(start)).Msg("call finished")

	return printJSON(cmd, resp)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func newCategoriesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List forum categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lolz.Client) (types.Response, error) {
				return c.GetCategories(ctx, nil)
			})
		},
	}
}

func newForumsCmd(opts *globalOptions) *cobra.Command {
	var parentCategory int

	cmd := &cobra.Command{
		Use:   "forums",
		Short: "List forums",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lolz.Client) (types.Response, error) {
				return c.GetForums(ctx, &types.ForumsRequest{ParentCategoryID: parentCategory})
			})
		},
	}
	cmd.Flags().IntVar(&parentCategory, "category", 0, "Only forums below this category")
	return cmd
}

func newThreadCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thread",
		Short: "Read or create threads",
	}

	getCmd := &cobra.Command{
		Use:   "get <thread-id>",
		Short: "Show one thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, c *lolz.Client) (types.Response, error) {
				return c.GetThread(ctx, id)
			})
		},
	}

	var (
		forumID           int
		title, body, tags string
	)
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new thread",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lolz.Client) (types.Response, error) {
				return c.CreateThread(ctx, &types.CreateThreadRequest{
					ForumID:     forumID,
					ThreadTitle: title,
					PostBody:    body,
					ThreadTags:  tags,
				})
			})
		},
	}
	createCmd.Flags().IntVar(&forumID, "forum", 0, "Forum id")
	createCmd.Flags().StringVar(&title, "title", "", "Thread title")
	createCmd.Flags().StringVar(&body, "body", "", "First post body")
	createCmd.Flags().StringVar(&tags, "tags", "", "Comma separated tags")
	_ = createCmd.MarkFlagRequired("forum")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("body")

	cmd.AddCommand(getCmd, createCmd)
	return cmd
}

func newPostCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Read posts",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get <post-id>",
		Short: "Show one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, c *lolz.Client) (types.Response, error) {
				return c.GetPost(ctx, id)
			})
		},
	})
	return cmd
}

func newUserCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Read user profiles",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get <user-id|short-link>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lolz.Client) (types.Response, error) {
				if id, err := strconv.Atoi(args[0]); err == nil {
					return c.GetUser(ctx, id, "")
				}
				return c.GetUser(ctx, 0, args[0])
			})
		},
	})
	return cmd
}

func newNotificationsCmd(opts *globalOptions) *cobra.Command {
	var readID int

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List notifications, or mark them read with --read[=id]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			markRead := cmd.Flags().Changed("read")
			return run(cmd, opts, func(ctx context.Context, c *lolz.Client) (types.Response, error) {
				if markRead {
					return c.ReadNotifications(ctx, readID)
				}
				return c.GetNotifications(ctx)
			})
		},
	}
	cmd.Flags().IntVar(&readID, "read", 0, "Mark notifications read; all of them unless an id is given")
	cmd.Flags().Lookup("read").NoOptDefVal = "0"
	return cmd
}

func newConversationsCmd(opts *globalOptions) *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "conversations",
		Short: "List conversations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lolz.Client) (types.Response, error) {
				return c.GetConversations(ctx, &types.PageRequest{Page: page, Limit: limit})
			})
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "Items per page")
	return cmd
}

func newSearchCmd(opts *globalOptions) *cobra.Command {
	var forumID, limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full text search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lolz.Client) (types.Response, error) {
				return c.Search(ctx, args[0], &types.SearchRequest{ForumID: forumID, Limit: limit})
			})
		},
	}
	cmd.Flags().IntVar(&forumID, "forum", 0, "Restrict to one forum")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results")
	return cmd
}

func newAttachmentHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attachment-hash",
		Short: "Print a fresh attachment hash for grouping uploads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), lolz.NewAttachmentHash())
			return err
		},
	}
}
