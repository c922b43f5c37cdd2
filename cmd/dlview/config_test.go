package main

import (
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(*Config) bool
	}{
		{"defaults", "", func(c *Config) bool { return *c == *defaultConfig() }},
		{"frame", "frame = profile", func(c *Config) bool { return c.Frame == "profile" }},
		{"pan step", "pan_step=0.1", func(c *Config) bool { return c.PanStep == 0.1 }},
		{"pan step out of range", "panstep = 3", func(c *Config) bool { return c.PanStep == 0.25 }},
		{"zoom step", "ZoomStep = 0.8", func(c *Config) bool { return c.ZoomStep == 0.8 }},
		{"zoom step bad", "zoomstep = x", func(c *Config) bool { return c.ZoomStep == 0.5 }},
		{"log home", "logfile = ~/dlview.log", func(c *Config) bool { return c.LogFile == "/home/u/dlview.log" }},
		{"colors off", "colors = false", func(c *Config) bool { return !c.Colors }},
		{"status off", "status = FALSE", func(c *Config) bool { return !c.StatusBar }},
		{"comments and junk", "# frame = x\nnot a setting\n\nframe=map2", func(c *Config) bool { return c.Frame == "map2" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaultConfig()
			parseConfig(strings.NewReader(tt.input), c, "/home/u")
			if !tt.check(c) {
				t.Errorf("parseConfig(%q) = %+v", tt.input, *c)
			}
		})
	}
}
