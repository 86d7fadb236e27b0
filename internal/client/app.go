package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-poster-keeper/internal/config"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/service"
	"github.com/MKhiriev/go-poster-keeper/internal/store"
	"github.com/MKhiriev/go-poster-keeper/internal/utils"
	"github.com/MKhiriev/go-poster-keeper/internal/workers"
	"github.com/MKhiriev/go-poster-keeper/models"
)

type command struct {
	usage   string
	minArgs int
	maxArgs int
	// signedIn commands get the restored session.
	signedIn bool
	run      func(ctx context.Context, session models.Session, args []string) error
}

type App struct {
	services     *service.ClientServices
	syncInterval time.Duration
	out          io.Writer

	commands map[string]command
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, cfg config.ClientWorkers, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are not initialized")
	}

	a := &App{
		services:     services,
		syncInterval: cfg.SyncInterval,
		out:          out,
		logger:       logger,
	}
	a.commands = map[string]command{
		"register": {usage: "register <login> <password> [name]", minArgs: 2, maxArgs: 3, run: a.register},
		"login":    {usage: "login <login> <password>", minArgs: 2, maxArgs: 2, run: a.login},
		"logout":   {usage: "logout", run: a.logout},
		"place":    {usage: "place <lat> <lng>", minArgs: 2, maxArgs: 2, signedIn: true, run: a.place},
		"remove":   {usage: "remove <lat> <lng>", minArgs: 2, maxArgs: 2, signedIn: true, run: a.remove},
		"list":     {usage: "list", signedIn: true, run: a.list},
		"sync":     {usage: "sync", signedIn: true, run: a.sync},
		"run":      {usage: "run", signedIn: true, run: a.runSyncWorker},
	}

	return a, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	name, operands := args[0], args[1:]
	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(operands) < cmd.minArgs || len(operands) > cmd.maxArgs {
		return fmt.Errorf("%w: %s", ErrUsage, cmd.usage)
	}

	var session models.Session
	if cmd.signedIn {
		var err error
		session, err = a.services.SessionService.Restore(ctx)
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return fmt.Errorf("%w: run `login` first", service.ErrNotSignedIn)
		}
		if err != nil {
			return fmt.Errorf("restore session: %w", err)
		}
	}

	a.logger.Debug().Str("command", name).Msg("running client command")
	return cmd.run(ctx, session, operands)
}

func (a *App) register(ctx context.Context, _ models.Session, args []string) error {
	req := models.RegisterRequest{Login: args[0], Password: args[1]}
	if len(args) == 3 {
		req.Name = args[2]
	}

	userID, err := a.services.SessionService.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "registered account #%d, now run `login`\n", userID)
	return nil
}

func (a *App) login(ctx context.Context, _ models.Session, args []string) error {
	session, err := a.services.SessionService.Login(ctx, models.Credentials{Login: args[0], Password: args[1]})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "signed in as user #%d of %s\n", session.UserID, partyLabel(session))

	// the cache was reset, fill it right away
	report, err := a.services.SyncService.RunSyncCycle(ctx, session)
	if err != nil {
		fmt.Fprintf(a.out, "initial sync failed, will retry later: %v\n", err)
		return nil
	}
	fmt.Fprintf(a.out, "loaded %d party posters\n", report.Pull.Applied)
	return nil
}

func (a *App) logout(ctx context.Context, _ models.Session, _ []string) error {
	if err := a.services.SessionService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "signed out, local cache cleared")
	return nil
}

func (a *App) place(ctx context.Context, session models.Session, args []string) error {
	location, err := parseLocation(args)
	if err != nil {
		return err
	}

	poster, _, err := a.services.PosterService.Place(ctx, session, location)
	if err != nil {
		return err
	}

	if poster.Synced() {
		fmt.Fprintf(a.out, "poster #%d placed at %s (server id %d)\n", poster.LocalID, formatLocation(poster.Location), *poster.ServerID)
	} else {
		fmt.Fprintf(a.out, "poster #%d placed at %s, pending sync\n", poster.LocalID, formatLocation(poster.Location))
	}
	return nil
}

func (a *App) remove(ctx context.Context, session models.Session, args []string) error {
	location, err := parseLocation(args)
	if err != nil {
		return err
	}

	removedAt, _, err := a.services.PosterService.Remove(ctx, session, location)
	if errors.Is(err, store.ErrPosterNotFound) {
		fmt.Fprintf(a.out, "no poster within %.0f meters of %s\n", utils.RemovalRadiusMeters, formatLocation(location))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "poster at %s removed\n", formatLocation(removedAt))
	return nil
}

func (a *App) list(ctx context.Context, _ models.Session, _ []string) error {
	posters, err := a.services.PosterService.List(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderPosters(posters))
	return nil
}

func (a *App) sync(ctx context.Context, session models.Session, _ []string) error {
	report, err := a.services.SyncService.RunSyncCycle(ctx, session)
	fmt.Fprintln(a.out, renderReport(report))
	if err != nil {
		if service.IsActionable(err) {
			return fmt.Errorf("sync rejected, sign in again: %w", err)
		}
		return fmt.Errorf("sync failed: %w", err)
	}
	return nil
}

// runSyncWorker keeps syncing in the background until ctx is cancelled.
func (a *App) runSyncWorker(ctx context.Context, session models.Session, _ []string) error {
	fmt.Fprintf(a.out, "syncing every %s, press Ctrl+C to stop\n", a.syncInterval)

	// first cycle without waiting for the ticker
	if _, err := a.services.SyncService.RunSyncCycle(ctx, session); err != nil {
		a.logger.Warn().Err(err).Msg("initial sync cycle failed")
	}

	workers.NewWorkers(
		workers.NewSyncWorker(a.services.SyncJob, session, a.syncInterval, a.logger),
	).Run(ctx)

	fmt.Fprintln(a.out, "stopped")
	return nil
}

func (a *App) printUsage() {
	fmt.Fprintln(a.out, "usage: poster-client [flags] <command> [operands]")
	for _, name := range []string{"register", "login", "logout", "place", "remove", "list", "sync", "run"} {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
}

func parseLocation(args []string) (models.Location, error) {
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: latitude %q: %w", ErrUsage, args[0], err)
	}
	lng, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: longitude %q: %w", ErrUsage, args[1], err)
	}
	return models.Location{Lat: lat, Lng: lng}, nil
}

func partyLabel(session models.Session) string {
	if session.PartyName != "" {
		return session.PartyName
	}
	return "party #" + strconv.FormatInt(session.PartyID, 10)
}
