// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logging

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Level is a log severity. Higher values are more verbose.
type Level int

const (
	LevelError Level = iota + 1
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// SlogTrace is the slog level used for LevelTrace messages.
const SlogTrace = slog.LevelDebug - 4

var ErrInvalidLevel = errors.New("invalid log level")

var levelNames = map[Level]string{
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
	LevelTrace: "TRACE",
}

// ParseLevel parses a level name (case-insensitive) or its number 1-5.
func ParseLevel(s string) (Level, error) {
	if n, err := strconv.Atoi(s); err == nil {
		lvl := Level(n)
		if _, ok := levelNames[lvl]; ok {
			return lvl, nil
		}
		return 0, ErrInvalidLevel
	}

	for lvl, name := range levelNames {
		if strings.EqualFold(s, name) {
			return lvl, nil
		}
	}
	return 0, ErrInvalidLevel
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// Slog returns the slog threshold for l.
func (l Level) Slog() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	case LevelTrace:
		return SlogTrace
	default:
		return slog.LevelInfo
	}
}
