package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseAngle parses a radian angle written either as a plain float ("0.5",
// "-1e-3") or as a rational multiple of π ("pi", "-pi/2", "3pi/4", "2*pi").
func parseAngle(s string) (float32, error) {
	in := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if in == "" {
		return 0, fmt.Errorf("angle: empty value")
	}

	i := strings.Index(in, "pi")
	if i < 0 {
		f, err := strconv.ParseFloat(in, 32)
		if err != nil {
			return 0, fmt.Errorf("angle %q: %w", s, err)
		}
		return float32(f), nil
	}

	coef := 1.0
	switch head := strings.TrimSuffix(in[:i], "*"); head {
	case "":
	case "-":
		coef = -1
	case "+":
	default:
		c, err := strconv.ParseFloat(head, 64)
		if err != nil {
			return 0, fmt.Errorf("angle %q: %w", s, err)
		}
		coef = c
	}

	den := 1.0
	if tail := in[i+2:]; tail != "" {
		if !strings.HasPrefix(tail, "/") {
			return 0, fmt.Errorf("angle %q: unexpected %q after pi", s, tail)
		}
		d, err := strconv.ParseFloat(tail[1:], 64)
		if err != nil {
			return 0, fmt.Errorf("angle %q: %w", s, err)
		}
		if d == 0 {
			return 0, fmt.Errorf("angle %q: division by zero", s)
		}
		den = d
	}

	return float32(coef * math.Pi / den), nil
}
