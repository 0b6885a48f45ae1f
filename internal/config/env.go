package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// env reads typed variables and remembers every parse failure. A variable
// that is unset or blank takes its fallback.
type env struct {
	errs []error
}

func (e *env) fail(key string, err error) {
	e.errs = append(e.errs, fmt.Errorf("parse %s: %w", key, err))
}

func (e *env) err() error {
	return errors.Join(e.errs...)
}

func (e *env) str(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (e *env) boolean(key string, fallback bool) bool {
	raw := e.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		e.fail(key, err)
		return fallback
	}
	return v
}

func (e *env) integer(key string, fallback int) int {
	raw := e.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		e.fail(key, err)
		return fallback
	}
	return v
}

// duration only accepts positive values.
func (e *env) duration(key string, fallback time.Duration) time.Duration {
	raw := e.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err == nil && v <= 0 {
		err = fmt.Errorf("must be > 0, got %s", v)
	}
	if err != nil {
		e.fail(key, err)
		return fallback
	}
	return v
}

// list splits a comma separated value, dropping blank items.
func (e *env) list(key, fallback string) []string {
	parts := strings.Split(e.str(key, fallback), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
