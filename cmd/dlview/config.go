package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/dlist/internal/demo"
)

// Config holds viewer settings read from ~/.dlviewrc.
type Config struct {
	Frame     string
	PanStep   float64
	ZoomStep  float64
	LogFile   string
	Colors    bool
	StatusBar bool
}

func defaultConfig() *Config {
	return &Config{
		Frame:     demo.MapFrame,
		PanStep:   0.25,
		ZoomStep:  0.5,
		Colors:    true,
		StatusBar: true,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}
	file, err := os.Open(filepath.Join(homeDir, ".dlviewrc"))
	if err != nil {
		return config
	}
	defer file.Close()

	parseConfig(file, config, homeDir)
	return config
}

// parseConfig applies key = value lines from r to config. Unknown keys and
// malformed values are ignored.
func parseConfig(r io.Reader, config *Config, homeDir string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "frame":
			if value != "" {
				config.Frame = value
			}
		case "panstep", "pan_step":
			if v, err := strconv.ParseFloat(value, 64); err == nil && v > 0 && v <= 1 {
				config.PanStep = v
			}
		case "zoomstep", "zoom_step":
			if v, err := strconv.ParseFloat(value, 64); err == nil && v > 0 && v < 1 {
				config.ZoomStep = v
			}
		case "logfile", "log_file", "log":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			config.LogFile = value
		case "colors", "colours", "color":
			config.Colors = strings.ToLower(value) == "true"
		case "statusbar", "status_bar", "status":
			config.StatusBar = strings.ToLower(value) == "true"
		}
	}
}
