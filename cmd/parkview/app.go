package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"parkview/internal/config"
	"parkview/internal/eventbus"
	"parkview/internal/history"
	"parkview/internal/tablesort"
	"parkview/internal/ui"
	"parkview/internal/ui/services/sorting"
	"parkview/internal/ui/views"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:      "parkview",
		Usage:     "Browse and sort a parking history export",
		ArgsUsage: "[history.json]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file",
				Value:   config.DefaultPath(),
			},
			&cli.StringFlag{
				Name:  "sort",
				Usage: "initial sort column, prefix with - for descending (e.g. -fee)",
			},
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "print the sorted table to stdout and exit",
			},
			&cli.BoolFlag{
				Name:  "no-mouse",
				Usage: "disable mouse support",
			},
			&cli.BoolFlag{
				Name:  "write-config",
				Usage: "write the effective config (defaults filled in) to --config and exit",
			},
		},
		Action: runAction,
	}
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	bus := eventbus.New()
	defer bus.Close()

	unsubscribe := subscribeLogging(bus)
	defer unsubscribe()

	configSvc := config.NewConfigServiceWithBus(cmd.String("config"), bus)
	cfg, err := configSvc.Load()
	if err != nil {
		if cmd.Bool("write-config") {
			// Leave a file that failed to parse for the user to fix
			return err
		}
		log.WithError(err).Error("Error loading config, using defaults")
		cfg = config.DefaultConfig()
	}
	if cmd.Bool("no-mouse") {
		cfg.UISettings.Mouse = false
	}

	w := cmd.Writer
	if w == nil {
		w = os.Stdout
	}

	if cmd.Bool("write-config") {
		if err := configSvc.Save(cfg); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "wrote %s\n", configSvc.Path())
		return err
	}

	source := cmd.Args().First()
	if source == "" {
		source = cfg.HistoryFile
	}

	if cmd.Bool("plain") {
		return runPlain(w, cfg, source, cmd.String("sort"))
	}

	return runTUI(ctx, bus, cfg, source, cmd.String("sort"))
}

// runPlain loads the history, sorts it and prints it as a static table
func runPlain(w io.Writer, cfg *config.Config, source, sortSpec string) error {
	h, err := history.Load(source)
	if err != nil {
		return err
	}

	glyphs := tablesort.Glyphs{
		Ascending:  cfg.UISettings.AscendingGlyph,
		Descending: cfg.UISettings.DescendingGlyph,
	}
	svc := sorting.NewService(nil, history.Columns(), glyphs, tablesort.WithDateLayouts(cfg.DateLayouts...))
	svc.SetRows(history.Rows(h.Records, history.Formatter{
		DateLayouts:    cfg.DateLayouts,
		CurrencySymbol: cfg.UISettings.CurrencySymbol,
	}))

	if sortSpec == "" && cfg.Sort.Column != "" {
		sortSpec = cfg.Sort.Column
		if cfg.Sort.Descending {
			sortSpec = "-" + sortSpec
		}
	}
	if sortSpec != "" && !svc.ApplySpec(sortSpec) {
		return fmt.Errorf("failed to apply sort: unknown column %q", sortSpec)
	}

	_, err = fmt.Fprintln(w, views.RenderPlain(svc.Headers(), svc.Rows(), false))
	return err
}

func runTUI(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, source, sortSpec string) error {
	model := ui.NewModel(bus, cfg, ui.Options{Source: source, Sort: sortSpec})

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	// Forward reload requests to the UI
	unsubscribe := bus.Subscribe(eventbus.EventReloadRequested, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	defer unsubscribe()

	// SIGHUP reloads the history file, e.g. after an export job rewrote it
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go func() {
		for range hup {
			log.Info("SIGHUP received, reloading history")
			bus.Publish(eventbus.ReloadRequestedEvent{})
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

// subscribeLogging records domain events in the log file
func subscribeLogging(bus eventbus.EventBus) func() {
	unsubs := []func(){
		bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.ConfigLoadedEvent)
			log.WithFields(log.Fields{"path": ev.Path, "history_file": ev.HistoryFile}).Info("config loaded")
		}),
		bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
			log.WithField("path", e.(eventbus.ConfigSavedEvent).Path).Info("config saved")
		}),
		bus.Subscribe(eventbus.EventHistoryLoaded, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.HistoryLoadedEvent)
			log.WithFields(log.Fields{"source": ev.History.Source, "records": len(ev.History.Records)}).Info("history loaded")
		}),
		bus.Subscribe(eventbus.EventHistoryLoadFailed, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.HistoryLoadFailedEvent)
			log.WithError(ev.Err).WithField("source", ev.Source).Error("history load failed")
		}),
		bus.Subscribe(eventbus.EventSortApplied, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.SortAppliedEvent)
			log.WithFields(log.Fields{"column": ev.Column, "descending": ev.Descending, "rows": ev.Rows}).Debug("sort applied")
		}),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
