// Command dlrender renders the sample display list scene. The raster
// backend writes a PNG file; backends that render to text, such as cells,
// write their text form instead.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/draw"
	_ "github.com/gogpu/dlist/draw/cells"
	"github.com/gogpu/dlist/draw/raster"
	"github.com/gogpu/dlist/draw/record"
	"github.com/gogpu/dlist/internal/demo"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 1000, "image height")
		output  = flag.String("output", "dlist.png", "output file")
		backend = flag.String("backend", "raster", "draw backend: "+fmt.Sprint(draw.Services()))
		zoom    = flag.String("zoom", "", "zoom the map to x1,y1,x2,y2 before drawing")
		verbose = flag.Bool("v", false, "log layout and drawing details")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	dlist.SetLogger(logger)

	var svc draw.Service
	if *backend == "raster" {
		svc = raster.New(*width, *height)
	} else {
		var err error
		if svc, err = draw.NewService(*backend); err != nil {
			logger.Error("backend", slog.String("name", *backend), slog.Any("error", err))
			os.Exit(2)
		}
	}
	dl := dlist.New(
		dlist.WithDrawService(svc),
		dlist.WithScreenBounds(0, 0, float64(*width), float64(*height)),
	)
	if err := demo.Build(dl); err != nil {
		logger.Error("build scene", slog.Any("error", err))
		os.Exit(1)
	}
	if *zoom != "" {
		r, err := parseRect(*zoom)
		if err == nil {
			err = dl.RescaleFrame(demo.MapFrame, false, r[0], r[1], r[2], r[3])
		}
		if err != nil {
			logger.Error("zoom", slog.String("rect", *zoom), slog.Any("error", err))
			os.Exit(2)
		}
	}
	if err := dl.Draw(); err != nil {
		logger.Error("draw", slog.Any("error", err))
		os.Exit(1)
	}
	if err := save(svc, *output); err != nil {
		logger.Error("save", slog.String("output", *output), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("rendered", slog.String("backend", *backend), slog.String("output", *output))
}

func save(svc draw.Service, path string) error {
	switch s := svc.(type) {
	case *raster.Service:
		return s.SavePNG(path)
	case *record.Recorder:
		_, err := fmt.Printf("%d commands\n", len(s.Commands()))
		return err
	case fmt.Stringer:
		return os.WriteFile(path, []byte(s.String()+"\n"), 0o644)
	}
	return fmt.Errorf("backend %T has no output", svc)
}
