package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"goraster/internal/config"
	"goraster/internal/geom"
	"goraster/internal/graphics"
	_ "goraster/internal/render"
	"goraster/internal/tui"
)

func main() {
	conf, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: conf.Level()}))
	slog.SetDefault(logger)
	graphics.SetLogger(logger)

	if conf.Interactive {
		var m tui.Model
		if conf.Input != "" {
			m = tui.NewWithPath(conf.Input)
		} else {
			m = tui.New()
		}
		if err := tui.Run(m); err != nil {
			log.Fatal(err)
		}
		return
	}

	if conf.Input == "" {
		log.Fatal("no input file (use -i, a positional path, or -t for the preview)")
	}
	out, err := render(conf)
	if err != nil {
		log.Fatal(err)
	}
	if err := write(conf.Output, out); err != nil {
		log.Fatal(err)
	}
}

// render loads the input shapes and draws them on a canvas sized by the
// config, or fitted to the shapes when a dimension is zero.
func render(conf config.Config) (string, error) {
	d, err := geom.Load(conf.Input)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", conf.Input, err)
	}
	w, h := d.CanvasSize()
	if conf.Width > 0 {
		w = conf.Width
	}
	if conf.Height > 0 {
		h = conf.Height
	}
	slog.Debug("canvas", "width", w, "height", h, "shapes", len(d.Shapes()))

	c := graphics.NewCanvas(w, h)
	c.DrawAll(d.Shapes()...)
	return c.RenderAs(graphics.Kind(conf.Renderer))
}

func write(path, s string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}
