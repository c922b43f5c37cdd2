// Command dlview shows the sample display list scene in the terminal and
// lets the user pan, zoom and select objects with keys and the mouse.
package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/draw/cells"
	"github.com/gogpu/dlist/internal/demo"
)

func main() {
	cfg := loadConfig()

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("open log file", slog.String("path", cfg.LogFile), slog.Any("error", err))
			os.Exit(1)
		}
		defer f.Close()
		dlist.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	svc := cells.New(80, 23)
	dl := dlist.New(
		dlist.WithDrawService(svc),
		dlist.WithScreenBounds(0, 0, 80, 46),
	)
	if err := demo.Build(dl); err != nil {
		slog.Error("build scene", slog.Any("error", err))
		os.Exit(1)
	}

	p := tea.NewProgram(
		newModel(dl, svc, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		slog.Error("run", slog.Any("error", err))
		os.Exit(1)
	}
}
