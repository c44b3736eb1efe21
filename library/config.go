// latsq.go - a command-line Latin square game.
// Copyright (C) 2026 The latsq.go authors.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// Package library maintains a store of named starting grids in a
// Postgres database, fronted by a Redis cache.  It owns the
// database schema (embedded migrations) and the seed data that is
// installed on first use.
package library

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// config is the storage configuration, read from the environment.
type config struct {
	DatabaseURL string `env:"DATABASE_URL" envDefault:"postgres://localhost/latsq?sslmode=disable"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379/"`
}

// loadConfig reads the storage configuration from the environment.
func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse storage env: %w", err)
	}
	return cfg, nil
}
