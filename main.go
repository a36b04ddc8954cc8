package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/swiperow/internal/app"
	"github.com/llehouerou/swiperow/internal/config"
	"github.com/llehouerou/swiperow/internal/errmsg"
	"github.com/llehouerou/swiperow/internal/state"
)

// demoItems fill an empty inbox on first start.
var demoItems = []state.SeedItem{
	{Title: "Swipe right to mark me read", Note: "drag with the mouse", Age: 2 * time.Minute},
	{Title: "Swipe left to archive me", Note: "u brings me back", Age: 15 * time.Minute},
	{Title: "Press h or l to reveal a panel", Age: time.Hour},
	{Title: "Press enter to run the revealed action", Age: 3 * time.Hour},
	{Title: "Press m to allow a single open row", Age: 26 * time.Hour},
	{Title: "Press / to filter, n to add an item", Age: 4 * 24 * time.Hour},
	{Title: "Edit config.toml and watch the rows change", Age: 9 * 24 * time.Hour},
}

func main() {
	journal := flag.Int("journal", 0, "print the last N swipe events and exit")
	flag.Parse()

	if err := run(*journal); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(journal int) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	store, err := state.Open(cfg.DBPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	if journal > 0 {
		defer store.Close()
		return printJournal(os.Stdout, store, journal)
	}

	if _, err := store.SeedIfEmpty(demoItems); err != nil {
		store.Close()
		return errors.New(errmsg.Format(errmsg.OpItemAdd, err))
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		store.Close()
		return err
	}
	defer closeLog()
	store.SetLogger(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := []app.Option{app.WithLogger(logger)}
	if updates, err := app.WatchConfig(ctx, config.Paths()); err != nil {
		logger.Debug(errmsg.Format(errmsg.OpConfigWatch, err))
	} else {
		opts = append(opts, app.WithConfigUpdates(updates))
	}

	m, err := app.New(cfg, store, opts...)
	if err != nil {
		store.Close()
		return errors.New(errmsg.Format(errmsg.OpItemsLoad, err))
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		store.Close()
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// newLogger logs to swiperow-debug.log when SWIPEROW_DEBUG is set, and
// discards records otherwise so the terminal UI stays intact.
func newLogger() (*slog.Logger, func(), error) {
	if os.Getenv("SWIPEROW_DEBUG") == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile("swiperow-debug.log", "swiperow")
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

func printJournal(w io.Writer, store state.Interface, limit int) error {
	events, err := store.RecentEvents(limit)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpJournalLoad, err))
	}
	if len(events) == 0 {
		fmt.Fprintln(w, "no swipe events recorded")
		return nil
	}
	for _, ev := range events {
		fmt.Fprintf(w, "%-14s item %-4d %-9s %-26s %s\n",
			humanize.Time(ev.At), ev.ItemID, ev.Side, ev.Action, ev.Method)
	}
	return nil
}
