package models

import (
	"fmt"
	"strings"
)

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

var ErrInvalidDirection = fmt.Errorf("invalid direction")

// ParseDirection maps the accepted direction synonyms to Up or Down. Anything
// outside the closed set is rejected with ErrInvalidDirection.
func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "up", "long", "bull", "bullish":
		return Up, nil
	case "down", "short", "bear", "bearish":
		return Down, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidDirection, raw)
	}
}
