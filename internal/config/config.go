// Package config reads command settings from a JSON file and flags.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
)

// DefaultFile is read when -f is not given. It may be absent.
const DefaultFile = "goraster.json"

type Config struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Renderer    string `json:"renderer"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Interactive bool   `json:"interactive"`
	LogLevel    string `json:"log_level"`
}

func defaults() Config {
	return Config{Renderer: "ascii", LogLevel: "warn"}
}

// Parse builds a Config from args (without the program name). Values come
// from defaults, then the config file, then flags that were set explicitly.
// A trailing positional argument is taken as the input path.
func Parse(args []string) (Config, error) {
	fset := flag.NewFlagSet("goraster", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	confPtr := fset.String("f", DefaultFile, "config filename")
	inPtr := fset.String("i", "", "input shapes file (.wkt, .geojson, .json, .csv, .kml)")
	outPtr := fset.String("o", "", "output file (default stdout)")
	rendPtr := fset.String("r", "ascii", "renderer kind")
	wPtr := fset.Int("W", 0, "canvas width (default: fit shapes)")
	hPtr := fset.Int("H", 0, "canvas height (default: fit shapes)")
	tuiPtr := fset.Bool("t", false, "open the interactive preview")
	logPtr := fset.String("log", "warn", "log level: debug, info, warn, error")
	if err := fset.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	set := map[string]bool{}
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	conf, err := readConfig(*confPtr)
	if err != nil {
		if set["f"] || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
		conf = defaults()
	}

	if set["i"] {
		conf.Input = *inPtr
	}
	if set["o"] {
		conf.Output = *outPtr
	}
	if set["r"] {
		conf.Renderer = *rendPtr
	}
	if set["W"] {
		conf.Width = *wPtr
	}
	if set["H"] {
		conf.Height = *hPtr
	}
	if set["t"] {
		conf.Interactive = *tuiPtr
	}
	if set["log"] {
		conf.LogLevel = *logPtr
	}
	if rest := fset.Args(); len(rest) > 0 && conf.Input == "" {
		conf.Input = rest[0]
	}

	if conf.Width < 0 || conf.Height < 0 {
		return Config{}, fmt.Errorf("config: negative canvas size %dx%d", conf.Width, conf.Height)
	}
	if _, err := parseLevel(conf.LogLevel); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func readConfig(fn string) (Config, error) {
	conf := defaults()
	b, err := os.ReadFile(fn)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", fn, err)
	}
	if err := json.Unmarshal(b, &conf); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", fn, err)
	}
	return conf, nil
}

// Level returns the slog level named by LogLevel, warn when unset.
func (c Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelWarn, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("config: log level %q: %w", s, err)
	}
	return l, nil
}
