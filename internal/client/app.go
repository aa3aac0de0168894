package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

type commandFunc func(ctx context.Context, args []string) error

// App dispatches command lines to the API adapter.
type App struct {
	api      adapter.APIAdapter
	out      io.Writer
	commands map[string]commandFunc

	logger *logger.Logger
}

func NewApp(api adapter.APIAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if api == nil {
		return nil, ErrNoAdapter
	}

	a := &App{api: api, out: out, logger: logger}
	a.commands = map[string]commandFunc{
		"version":     a.version,
		"signup":      a.signup,
		"login":       a.login,
		"me":          a.me,
		"tags":        a.catalog(adapter.CatalogTags),
		"ingredients": a.catalog(adapter.CatalogIngredients),
		"recipes":     a.recipes,
	}

	return a, nil
}

// Run executes args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w, expected one of: %s", ErrMissingCommand, a.commandNames())
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q, expected one of: %s", ErrUnknownCommand, args[0], a.commandNames())
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd(ctx, args[1:])
}

func (a *App) commandNames() string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error printing response: %w", err)
	}
	return nil
}
