// fal is a small command line tool for poking at a FreeAgent company:
// listing and showing resources through the cached client.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/ledgerline/freeagent/api"
	"github.com/ledgerline/freeagent/cache"
	"github.com/ledgerline/freeagent/client"

	"github.com/carlmjohnson/versioninfo"
	cli "github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "fal",
		Usage:   "FreeAgent ledger tool",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-host",
				Usage:   "method, hostname, and port of FreeAgent API",
				Value:   client.DefaultHost,
				EnvVars: []string{"FREEAGENT_API_HOST"},
			},
			&cli.StringFlag{
				Name:     "access-token",
				Usage:    "OAuth2 access token",
				Required: true,
				EnvVars:  []string{"FREEAGENT_ACCESS_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "redis-url",
				Usage:   "optional shared cache, redis connection URL: redis://<user>:<pass>@<hostname>:6379/<db>",
				EnvVars: []string{"FAL_REDIS_URL"},
			},
			&cli.DurationFlag{
				Name:    "cache-ttl",
				Usage:   "how long fetched resources stay fresh",
				Value:   5 * time.Minute,
				EnvVars: []string{"FAL_CACHE_TTL"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				EnvVars: []string{"FAL_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			companyCmd,
			invoiceCmd,
			contactCmd,
			timeslipCmd,
		},
	}

	return app.Run(args)
}

func configLogger(cctx *cli.Context) {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func newAPI(cctx *cli.Context) (*api.FreeAgent, error) {
	configLogger(cctx)

	var store cache.Store
	if url := cctx.String("redis-url"); url != "" {
		rs, err := cache.NewRedisStore(url)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		store = rs
	}

	c := &client.Client{
		Host: cctx.String("api-host"),
		Auth: &client.AuthInfo{AccessToken: cctx.String("access-token")},
	}
	return api.New(c, &api.Options{
		Store: store,
		TTL:   cctx.Duration("cache-ttl"),
	}), nil
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func parseID(cctx *cli.Context) (int64, error) {
	arg := cctx.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("expected a numeric resource id argument")
	}
	return strconv.ParseInt(arg, 10, 64)
}

var companyCmd = &cli.Command{
	Name:  "company",
	Usage: "sub-commands for the authenticated company",
	Subcommands: []*cli.Command{
		{
			Name:  "show",
			Usage: "print the company record",
			Action: func(cctx *cli.Context) error {
				fa, err := newAPI(cctx)
				if err != nil {
					return err
				}
				company, err := fa.Company.Get(cctx.Context)
				if err != nil {
					return err
				}
				return printJSON(company)
			},
		},
	},
}

var invoiceCmd = &cli.Command{
	Name:  "invoice",
	Usage: "sub-commands for invoices",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "list invoices",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "view",
					Usage: "server-side subset, eg: open, overdue, draft",
				},
				&cli.StringFlag{
					Name:  "contact",
					Usage: "limit to one contact (API URL)",
				},
			},
			Action: func(cctx *cli.Context) error {
				fa, err := newAPI(cctx)
				if err != nil {
					return err
				}
				invoices, err := fa.Invoices.List(cctx.Context, &api.InvoiceFilter{
					View:    cctx.String("view"),
					Contact: cctx.String("contact"),
				})
				if err != nil {
					return err
				}
				return printJSON(invoices)
			},
		},
		{
			Name:      "show",
			Usage:     "print one invoice",
			ArgsUsage: "<id>",
			Action: func(cctx *cli.Context) error {
				fa, err := newAPI(cctx)
				if err != nil {
					return err
				}
				id, err := parseID(cctx)
				if err != nil {
					return err
				}
				inv, err := fa.Invoices.Get(cctx.Context, id)
				if err != nil {
					return err
				}
				return printJSON(inv)
			},
		},
		{
			Name:      "send",
			Usage:     "mark a draft invoice as sent",
			ArgsUsage: "<id>",
			Action: func(cctx *cli.Context) error {
				fa, err := newAPI(cctx)
				if err != nil {
					return err
				}
				id, err := parseID(cctx)
				if err != nil {
					return err
				}
				return fa.Invoices.MarkAsSent(cctx.Context, id)
			},
		},
	},
}

var contactCmd = &cli.Command{
	Name:  "contact",
	Usage: "sub-commands for contacts",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "list contacts",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "view",
					Usage: "server-side subset, eg: active, clients, suppliers",
				},
			},
			Action: func(cctx *cli.Context) error {
				fa, err := newAPI(cctx)
				if err != nil {
					return err
				}
				contacts, err := fa.Contacts.List(cctx.Context, &api.ContactFilter{
					View: cctx.String("view"),
				})
				if err != nil {
					return err
				}
				return printJSON(contacts)
			},
		},
		{
			Name:      "show",
			Usage:     "print one contact",
			ArgsUsage: "<id>",
			Action: func(cctx *cli.Context) error {
				fa, err := newAPI(cctx)
				if err != nil {
					return err
				}
				id, err := parseID(cctx)
				if err != nil {
					return err
				}
				contact, err := fa.Contacts.Get(cctx.Context, id)
				if err != nil {
					return err
				}
				return printJSON(contact)
			},
		},
	},
}

var timeslipCmd = &cli.Command{
	Name:  "timeslip",
	Usage: "sub-commands for timeslips",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "list timeslips in a date range",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "from",
					Usage: "start date (YYYY-MM-DD)",
				},
				&cli.StringFlag{
					Name:  "to",
					Usage: "end date (YYYY-MM-DD)",
				},
				&cli.StringFlag{
					Name:  "view",
					Usage: "all, unbilled or running",
				},
			},
			Action: func(cctx *cli.Context) error {
				fa, err := newAPI(cctx)
				if err != nil {
					return err
				}
				timeslips, err := fa.Timeslips.List(cctx.Context, &api.TimeslipFilter{
					FromDate: cctx.String("from"),
					ToDate:   cctx.String("to"),
					View:     cctx.String("view"),
				})
				if err != nil {
					return err
				}
				return printJSON(timeslips)
			},
		},
	},
}
