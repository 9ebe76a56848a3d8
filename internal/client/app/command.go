package app

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func configFrom(cmd *cli.Command) Config {
	return Config{
		Addr:               cmd.String("addr"),
		CACert:             cmd.String("cacert"),
		InsecureSkipVerify: cmd.Bool("insecure-skip-verify"),
		Plaintext:          cmd.Bool("plaintext"),
		AuthMode:           cmd.String("auth-mode"),
		Store:              cmd.String("store"),
		StorePath:          cmd.String("store-path"),
		RedisURL:           cmd.String("redis-url"),
		ContinueURL:        cmd.String("continue-url"),
		Timeout:            cmd.Duration("timeout"),
		In:                 cmd.Root().Reader,
		Out:                cmd.Root().Writer,
	}
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// run opens an App for one command and closes it afterwards.
func run(fn func(ctx context.Context, a *App, cmd *cli.Command) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		log := newLogger(cmd.Bool("verbose"))
		defer func() { _ = log.Sync() }()
		a, err := Open(ctx, configFrom(cmd), log)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()
		return fn(ctx, a, cmd)
	}
}

func optional(cmd *cli.Command, name string) *string {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.String(name)
	return &v
}

func profileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "first name"},
		&cli.StringFlag{Name: "last-name", Usage: "last name"},
		&cli.StringFlag{Name: "email", Usage: "contact email"},
	}
}

func profileInput(cmd *cli.Command) ProfileInput {
	return ProfileInput{Name: optional(cmd, "name"), LastName: optional(cmd, "last-name"), Email: optional(cmd, "email")}
}

// Command is the micromuu CLI.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "micromuu",
		Usage: "Manage your ranch: sign in, keep your profile and farms",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Sources: cli.EnvVars("MICROMUU_ADDR"),
				Usage:   "server host:port",
				Value:   "localhost:8443",
			},
			&cli.StringFlag{
				Name:    "cacert",
				Sources: cli.EnvVars("MICROMUU_CACERT"),
				Usage:   "PEM bundle to verify the server",
			},
			&cli.BoolFlag{
				Name:    "insecure-skip-verify",
				Sources: cli.EnvVars("MICROMUU_INSECURE_SKIP_VERIFY"),
				Usage:   "accept any server certificate (dev only)",
			},
			&cli.BoolFlag{
				Name:    "plaintext",
				Sources: cli.EnvVars("MICROMUU_PLAINTEXT"),
				Usage:   "connect without TLS to a server started with --insecure",
			},
			&cli.StringFlag{
				Name:    "auth-mode",
				Sources: cli.EnvVars("MICROMUU_AUTH_MODE"),
				Usage:   "passwordless|password",
				Value:   "passwordless",
			},
			&cli.StringFlag{
				Name:    "store",
				Sources: cli.EnvVars("MICROMUU_STORE"),
				Usage:   "device storage: sqlite|redis|memory",
				Value:   StoreSQLite,
			},
			&cli.StringFlag{
				Name:    "store-path",
				Sources: cli.EnvVars("MICROMUU_STORE_PATH"),
				Usage:   "sqlite file (default $XDG_CONFIG_HOME/micromuu/micromuu.db)",
			},
			&cli.StringFlag{
				Name:    "redis-url",
				Sources: cli.EnvVars("MICROMUU_REDIS_URL"),
				Usage:   "redis URL for --store=redis",
				Value:   "redis://localhost:6379/0",
			},
			&cli.StringFlag{
				Name:    "continue-url",
				Sources: cli.EnvVars("MICROMUU_CONTINUE_URL"),
				Usage:   "deep link sign-in emails point to",
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Sources: cli.EnvVars("MICROMUU_TIMEOUT"),
				Usage:   "per-call timeout",
				Value:   15 * time.Second,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Sources: cli.EnvVars("MICROMUU_VERBOSE"),
				Usage:   "development logging to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "status",
				Usage: "show the session and the current screen",
				Action: run(func(ctx context.Context, a *App, _ *cli.Command) error {
					return a.Status(ctx)
				}),
			},
			{
				Name:  "register",
				Usage: "create an account",
				Flags: append(profileFlags(), &cli.StringFlag{Name: "password", Usage: "password (password mode; prompted when empty)"}),
				Action: run(func(ctx context.Context, a *App, cmd *cli.Command) error {
					return a.Register(ctx, RegisterInput{
						Name:     cmd.String("name"),
						LastName: cmd.String("last-name"),
						Email:    cmd.String("email"),
						Password: cmd.String("password"),
					})
				}),
			},
			{
				Name:  "login",
				Usage: "sign in (sends a link in passwordless mode)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "password", Usage: "password mode; prompted when empty"},
				},
				Action: run(func(ctx context.Context, a *App, cmd *cli.Command) error {
					return a.Login(ctx, cmd.String("email"), cmd.String("password"))
				}),
			},
			{
				Name:      "link",
				Usage:     "open a micromuu:// link, such as the one in a sign-in email",
				ArgsUsage: "<url>",
				Flags:     []cli.Flag{&cli.StringFlag{Name: "email", Usage: "email the link was sent to"}},
				Action: run(func(ctx context.Context, a *App, cmd *cli.Command) error {
					return a.Link(ctx, cmd.Args().First(), cmd.String("email"))
				}),
			},
			{
				Name:  "welcome",
				Usage: "acknowledge the welcome screen",
				Action: run(func(ctx context.Context, a *App, _ *cli.Command) error {
					return a.Welcome(ctx)
				}),
			},
			{
				Name:  "profile",
				Usage: "your rancher profile",
				Action: run(func(ctx context.Context, a *App, _ *cli.Command) error {
					return a.ProfileShow(ctx)
				}),
				Commands: []*cli.Command{
					{
						Name: "show",
						Action: run(func(ctx context.Context, a *App, _ *cli.Command) error {
							return a.ProfileShow(ctx)
						}),
					},
					{
						Name:  "complete",
						Usage: "finish a registration whose details were lost",
						Flags: profileFlags(),
						Action: run(func(ctx context.Context, a *App, cmd *cli.Command) error {
							return a.ProfileComplete(ctx, profileInput(cmd))
						}),
					},
					{
						Name:  "edit",
						Flags: profileFlags(),
						Action: run(func(ctx context.Context, a *App, cmd *cli.Command) error {
							return a.ProfileEdit(ctx, profileInput(cmd))
						}),
					},
				},
			},
			farmsCommand(),
			{
				Name:  "logout",
				Usage: "sign out of this device",
				Action: run(func(ctx context.Context, a *App, _ *cli.Command) error {
					return a.Logout(ctx)
				}),
			},
			{
				Name:  "shell",
				Usage: "interactive session",
				Action: run(func(ctx context.Context, a *App, _ *cli.Command) error {
					return a.Shell(ctx)
				}),
			},
		},
	}
}

func farmsCommand() *cli.Command {
	dashboard := run(func(ctx context.Context, a *App, _ *cli.Command) error {
		return a.Dashboard(ctx)
	})
	return &cli.Command{
		Name:   "farms",
		Usage:  "your active farms",
		Action: dashboard,
		Commands: []*cli.Command{
			{Name: "list", Aliases: []string{"ls"}, Action: dashboard},
			{
				Name: "add",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "location"},
					&cli.StringFlag{Name: "image", Usage: "photo file"},
				},
				Action: run(func(ctx context.Context, a *App, cmd *cli.Command) error {
					return a.FarmAdd(ctx, FarmInput{
						Name:      cmd.String("name"),
						Location:  cmd.String("location"),
						ImagePath: cmd.String("image"),
					})
				}),
			},
			{
				Name:      "show",
				ArgsUsage: "<farm>",
				Action: run(func(ctx context.Context, a *App, cmd *cli.Command) error {
					return a.FarmShow(ctx, cmd.Args().First())
				}),
			},
			{
				Name:      "edit",
				ArgsUsage: "<farm>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "location"},
					&cli.StringFlag{Name: "image", Usage: "replacement photo file"},
					&cli.BoolFlag{Name: "remove-image"},
				},
				Action: run(func(ctx context.Context, a *App, cmd *cli.Command) error {
					return a.FarmEditRun(ctx, cmd.Args().First(), FarmEdit{
						Name:        optional(cmd, "name"),
						Location:    optional(cmd, "location"),
						ImagePath:   cmd.String("image"),
						RemoveImage: cmd.Bool("remove-image"),
					})
				}),
			},
			{
				Name:      "archive",
				ArgsUsage: "<farm>",
				Flags:     []cli.Flag{&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}}},
				Action: run(func(ctx context.Context, a *App, cmd *cli.Command) error {
					return a.FarmArchive(ctx, cmd.Args().First(), cmd.Bool("yes"))
				}),
			},
			{
				Name:  "image",
				Usage: "farm photo",
				Commands: []*cli.Command{
					{
						Name:      "set",
						ArgsUsage: "<farm> <file>",
						Action: run(func(ctx context.Context, a *App, cmd *cli.Command) error {
							return a.FarmEditRun(ctx, cmd.Args().Get(0), FarmEdit{ImagePath: cmd.Args().Get(1)})
						}),
					},
					{
						Name:      "rm",
						ArgsUsage: "<farm>",
						Action: run(func(ctx context.Context, a *App, cmd *cli.Command) error {
							return a.FarmEditRun(ctx, cmd.Args().First(), FarmEdit{RemoveImage: true})
						}),
					},
				},
			},
		},
	}
}
