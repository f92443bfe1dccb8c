package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/MKhiriev/go-doc-portal/internal/adapter"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
)

const (
	envSession    = "PORTAL_SESSION"
	envOwnerToken = "PORTAL_OWNER_TOKEN"
	envPassword   = "PORTAL_PASSWORD"
)

type command struct {
	usage string
	run   func(ctx context.Context, fs *flag.FlagSet, args []string) error
}

// App is the portal CLI.
type App struct {
	portal   adapter.PortalAdapter
	out      io.Writer
	errOut   io.Writer
	getenv   func(string) string
	logger   *logger.Logger
	commands map[string]command
}

func NewApp(portal adapter.PortalAdapter, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		portal: portal,
		out:    out,
		errOut: os.Stderr,
		getenv: os.Getenv,
		logger: logger,
	}

	a.commands = map[string]command{
		"status":     {usage: "status <link-token>", run: a.status},
		"verify":     {usage: "verify [-password p] <link-token>", run: a.verify},
		"ls":         {usage: "ls [-session s] <link-token>", run: a.listFiles},
		"put":        {usage: "put [-session s] [-name n] <link-token> <file>", run: a.putFile},
		"get":        {usage: "get [-session s] [-o path] <link-token> <name>", run: a.getFile},
		"create":     {usage: "create [-owner-token t] [-label l] [-password] [-expires-in d]", run: a.createLink},
		"rotate":     {usage: "rotate [-owner-token t] <link-id>", run: a.rotatePassword},
		"activate":   {usage: "activate [-owner-token t] <link-id>", run: a.setActive(true)},
		"deactivate": {usage: "deactivate [-owner-token t] <link-id>", run: a.setActive(false)},
		"version":    {usage: "version", run: a.version},
	}

	return a
}

// Run executes args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrUsage
	}

	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	fs.Usage = func() { fmt.Fprintf(a.errOut, "usage: %s\n", cmd.usage) }

	a.logger.Debug().Str("func", "App.Run").Str("command", name).Msg("running command")

	if err := cmd.run(ctx, fs, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: portal <command> [flags] [args]\n\ncommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", a.commands[name].usage)
	}
	fmt.Fprint(a.errOut, b.String())
}

// parse parses flags and checks the positional argument count.
func parse(fs *flag.FlagSet, args []string, positional int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() != positional {
		fs.Usage()
		return nil, fmt.Errorf("%w: expected %d argument(s), got %d", ErrUsage, positional, fs.NArg())
	}
	return fs.Args(), nil
}

// orEnv returns value, falling back to the environment variable key.
func (a *App) orEnv(value, key string) string {
	if value != "" {
		return value
	}
	return a.getenv(key)
}

func (a *App) version(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if _, err := parse(fs, args, 0); err != nil {
		return err
	}

	v, err := a.portal.ServerVersion(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "server version: %s\n", v)
	return nil
}
