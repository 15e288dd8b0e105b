// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"encoding"
	"errors"
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"

	"github.com/danielhkuo/simple-web-server/logging"
)

const (
	HelpFlag     = "--help"
	LogLevelFlag = "--loglevel"
)

// HelpText is printed for --help and after fatal argument errors
const HelpText = "Simple web server.\n" +
	"--loglevel\t\tLog level to use. Defaults to Info.\n" +
	"--help\t\tDisplay this help and exit."

var (
	ErrNotFound     = errors.New("Parameter not found")
	ErrMissingValue = errors.New("Parameter passed but value not found")
	ErrConversion   = errors.New("parameter value could not be converted")
)

// ConversionError reports a flag whose value did not parse. Error returns
// only the caller supplied message.
type ConversionError struct {
	Name    string
	Message string
}

func (e *ConversionError) Error() string {
	return e.Message
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// TextUnmarshaler is satisfied by *T when T parses itself from text.
type TextUnmarshaler[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// Config holds everything the server reads at startup
type Config struct {
	ShowHelp bool
	LogLevel logging.Level

	ListenAddr string `env:"LISTEN_ADDR" envDefault:"0.0.0.0:3000"`
	PublicURL  string `env:"PUBLIC_URL" envDefault:"http://localhost:3000"`
}

// HasFlag reports whether name is one of args. Matching is exact.
func HasFlag(args []string, name string) bool {
	return slices.Contains(args, name)
}

// GetValue returns the token after the first occurrence of name, converted
// with parse. args is expected to be os.Args as-is, program name included.
func GetValue[T any](args []string, name string, parse func(string) (T, error), onParseError string) (T, error) {
	var zero T

	idx := slices.Index(args, name)
	if idx < 0 {
		return zero, fmt.Errorf("%w %s", ErrNotFound, name)
	}
	if idx+1 >= len(args) {
		return zero, fmt.Errorf("%w %s", ErrMissingValue, name)
	}

	v, err := parse(args[idx+1])
	if err != nil {
		return zero, &ConversionError{Name: name, Message: onParseError}
	}
	return v, nil
}

// GetText is GetValue for types that implement encoding.TextUnmarshaler.
func GetText[T any, PT TextUnmarshaler[T]](args []string, name string, onParseError string) (T, error) {
	return GetValue(args, name, func(s string) (T, error) {
		var v T
		err := PT(&v).UnmarshalText([]byte(s))
		return v, err
	}, onParseError)
}

// ParseFlags reads the command line and environment.
// args must include the program name at index 0.
func ParseFlags(args []string) (Config, error) {
	// --help wins over everything else
	if HasFlag(args, HelpFlag) {
		return Config{ShowHelp: true}, nil
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	cfg.LogLevel, err = GetText[logging.Level](args, LogLevelFlag, "Invalid log level")
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}
