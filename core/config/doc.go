// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct
// fields.
//
// Basic usage:
//
//	import (
//		"github.com/skrivehjelp/kit/core/config"
//		"github.com/skrivehjelp/kit/core/i18n"
//	)
//
//	var cfg i18n.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup
//	config.MustLoad(&cfg)
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process; later calls
// for the same type return the cached value, so separate components can
// load the same config independently and observe identical values.
// Different types are cached independently.
package config
