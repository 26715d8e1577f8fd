// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// App dispatches a single CLI command to the server adapter.
type App struct {
	adapter adapter.ServerAdapter
	args    []string
	out     io.Writer
	logger  *logger.Logger
}

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

func NewApp(serverAdapter adapter.ServerAdapter, args []string, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, fmt.Errorf("server adapter is nil")
	}

	return &App{
		adapter: serverAdapter,
		args:    args,
		out:     out,
		logger:  logger,
	}, nil
}

// Run executes the command given at construction. Interrupts cancel the
// in-flight request.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.Execute(ctx, a.args)
}

// Execute runs args[0] as a command with the remaining args.
func (a *App) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	commands := a.commands()
	cmd, ok := commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	if err := cmd.run(ctx, args[1:]); err != nil {
		if errors.Is(err, ErrUsage) {
			fmt.Fprintf(a.out, "usage: client %s\n", cmd.usage)
		}
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"signup":  {usage: "signup <username> <password>", run: a.signup},
		"login":   {usage: "login <username> <password>", run: a.login},
		"list":    {usage: "list", run: a.list},
		"get":     {usage: "get <id>", run: a.get},
		"create":  {usage: "create <title> [content]", run: a.create},
		"update":  {usage: "update [-title T] [-content C] <id>", run: a.update},
		"delete":  {usage: "delete <id>", run: a.delete},
		"share":   {usage: "share <id> <username>", run: a.share},
		"search":  {usage: "search <query>", run: a.search},
		"version": {usage: "version", run: a.version},
	}
}

func (a *App) printUsage() {
	order := []string{"signup", "login", "list", "get", "create", "update", "delete", "share", "search", "version"}
	commands := a.commands()

	fmt.Fprintln(a.out, "usage: client [flags] <command> [args]")
	fmt.Fprintln(a.out, "commands:")
	for _, name := range order {
		fmt.Fprintf(a.out, "  %s\n", commands[name].usage)
	}
}

func (a *App) signup(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	if err := a.adapter.Signup(ctx, models.Credentials{Username: args[0], Password: args[1]}); err != nil {
		return err
	}
	return a.print(models.MessageResponse{Message: "User created successfully"})
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	token, err := a.adapter.Login(ctx, models.Credentials{Username: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	return a.print(token)
}

func (a *App) list(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	notes, err := a.adapter.ListNotes(ctx)
	if err != nil {
		return err
	}
	return a.printNotes(notes)
}

func (a *App) get(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	note, err := a.adapter.GetNote(ctx, args[0])
	if err != nil {
		return err
	}
	return a.print(note)
}

func (a *App) create(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}

	input := models.NoteInput{Title: args[0]}
	if len(args) == 2 {
		input.Content = args[1]
	}

	note, err := a.adapter.CreateNote(ctx, input)
	if err != nil {
		return err
	}
	return a.print(note)
}

// update only sends the fields whose flags were given, so an empty -content
// clears the content while leaving the title alone.
func (a *App) update(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(a.out)
	title := fs.String("title", "", "new title")
	content := fs.String("content", "", "new content")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() != 1 {
		return ErrUsage
	}

	var patch models.NotePatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			patch.Title = title
		case "content":
			patch.Content = content
		}
	})
	if patch.Title == nil && patch.Content == nil {
		return ErrNothingToPatch
	}

	note, err := a.adapter.UpdateNote(ctx, fs.Arg(0), patch)
	if err != nil {
		return err
	}
	return a.print(note)
}

func (a *App) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := a.adapter.DeleteNote(ctx, args[0]); err != nil {
		return err
	}
	return a.print(models.MessageResponse{Message: "Note deleted successfully"})
}

func (a *App) share(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	note, err := a.adapter.ShareNote(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	return a.print(note)
}

// search joins all remaining args, so an unquoted multi-word query works.
func (a *App) search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	notes, err := a.adapter.SearchNotes(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	return a.printNotes(notes)
}

func (a *App) version(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	v, err := a.adapter.ServerVersion(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) printNotes(notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}
	return a.print(notes)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
