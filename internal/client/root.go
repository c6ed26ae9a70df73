// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/beer-battle/internal/config"
	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/models"
)

// ErrOwnerNotSet is returned by owner scoped commands when neither --owner
// nor APP_OWNER_ID names an owner.
var ErrOwnerNotSet = errors.New("owner is not set: use --owner or APP_OWNER_ID")

// cli is the state shared by the commands of one invocation.
type cli struct {
	overrides config.ClientOverrides
	buildInfo models.AppBuildInfo

	loadConfig func(config.ClientOverrides) (*config.ClientConfig, error)
	openApp    func(ctx context.Context, cfg *config.ClientConfig) (*App, error)
	now        func() time.Time

	cfg *config.ClientConfig
	app *App
}

// Execute runs the client command line with os.Args. The app is opened
// lazily by the commands that need it and closed before Execute returns.
func Execute(ctx context.Context, buildInfo models.AppBuildInfo) (err error) {
	c := &cli{
		buildInfo:  buildInfo,
		loadConfig: config.GetClientConfig,
		openApp: func(ctx context.Context, cfg *config.ClientConfig) (*App, error) {
			return NewApp(ctx, cfg, logger.NewClientLogger("client"))
		},
		now: time.Now,
	}
	defer func() {
		err = errors.Join(err, c.close())
	}()

	return newRootCommand(c).ExecuteContext(ctx)
}

func newRootCommand(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "beer-battle",
		Short: "Weekly alcohol tracker with offline-first sync",
		Long: `BeerBattle keeps a local record of what you drink, your events and notes,
and mirrors alcohol records and events to the remote document store.

Writes land in the local cache first. When the remote store is unreachable they
are kept in an outbox and replayed by the next sync.

EXAMPLES:

  beer-battle alcohol add Lager 500 5            # log a drink for today
  beer-battle alcohol week                       # this week's drinks
  beer-battle alcohol summary --date 2026-03-01  # weekly totals
  beer-battle event add "Birthday" --date "Friday night"
  beer-battle sync                               # reconcile with the remote store
  beer-battle run                                # keep syncing in the background`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&c.overrides.JSONFilePath, "config", "c", "", "path to the JSON config file")
	root.PersistentFlags().StringVar(&c.overrides.DSN, "db", "", "path to the local SQLite cache")
	root.PersistentFlags().StringVarP(&c.overrides.OwnerID, "owner", "o", "", "owner id the command works for")

	root.AddCommand(
		newAlcoholCommand(c),
		newEventCommand(c),
		newNoteCommand(c),
		newUserCommand(c),
		newSyncCommand(c),
		newRunCommand(c),
		newVersionCommand(c),
	)

	return root
}

// open loads the configuration and opens the app once per invocation.
func (c *cli) open(ctx context.Context) (*App, error) {
	if c.app != nil {
		return c.app, nil
	}

	cfg, err := c.loadConfig(c.overrides)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	app, err := c.openApp(ctx, cfg)
	if err != nil {
		return nil, err
	}

	c.cfg, c.app = cfg, app
	return app, nil
}

// owner opens the app and returns the owner the command works for.
func (c *cli) owner(ctx context.Context) (*App, string, error) {
	app, err := c.open(ctx)
	if err != nil {
		return nil, "", err
	}
	if c.cfg.App.OwnerID == "" {
		return nil, "", ErrOwnerNotSet
	}
	return app, c.cfg.App.OwnerID, nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	app := c.app
	c.app = nil
	return app.Close()
}

// dateFlag parses a --date value; blank means today.
func (c *cli) dateFlag(value string) (time.Time, error) {
	if value == "" {
		return models.CalendarDate(c.now()), nil
	}
	date, err := models.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return date, nil
}
