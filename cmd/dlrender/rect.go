package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseRect parses "x1,y1,x2,y2".
func parseRect(s string) ([4]float64, error) {
	var r [4]float64
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return r, fmt.Errorf("want 4 comma separated values, got %d", len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return r, fmt.Errorf("value %d: %w", i+1, err)
		}
		r[i] = v
	}
	return r, nil
}
