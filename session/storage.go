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

// Package session records the committed steps of a play session
// in a Redis cache, so an interrupted game can be inspected or
// resumed by session ID.  The game runs fine without a reachable
// cache; callers are expected to treat Connect failure as
// "history disabled", not as a fatal condition.
package session

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/gomodule/redigo/redis"
)

// config is the cache configuration, read from the environment.
type config struct {
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/"`
	Env      string `env:"REDIS_ENV" envDefault:"local"`
}

// Redis connection data
var (
	rdc     redis.Conn // open connection, if any
	rdUrl   string     // URL for the open connection
	rdEnv   string     // environment key prefix
	rdMutex sync.Mutex // prevent concurrent connection use
)

// Connect reads the cache configuration from the environment and
// opens the Redis connection.  Returns the connection URL, if
// successful, an error otherwise.
func Connect() (string, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return "", fmt.Errorf("parse cache env: %w", err)
	}
	rdUrl, rdEnv = cfg.RedisURL, cfg.Env

	rdMutex.Lock()
	defer rdMutex.Unlock()
	return rdConnect()
}

// Close shuts the Redis connection down.
func Close() {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	rdClose()
}

// rdConnect: connect to the configured Redis URL.  Callers must
// hold the mutex.
func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdUrl)
	if err != nil {
		return "", fmt.Errorf("Couldn't connect to cache at %q: %v", rdUrl, err)
	}
	rdc = conn
	return rdUrl, nil
}

// rdClose: close the Redis connection, if open.  Callers must
// hold the mutex.
func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute: execute the body with the Redis connection.  Meant
// to be used inside a handler, because errors in execution will
// panic back to the handler level.
func rdExecute(body func(conn redis.Conn) error) {
	// wrap the body against runtime and cache failures
	wrapper := func(conn redis.Conn) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = e
				} else {
					err = fmt.Errorf("Caught panic during rdExecute: %v", r)
				}
			}
		}()
		// Because Redis connections can go away without warning,
		// we ping to make sure the connection is alive, and try
		// to reconnect if not.
		if _, err := rdc.Do("PING"); err != nil {
			rdClose()
			if _, err = rdConnect(); err != nil {
				return fmt.Errorf("Failed to reconnect to cache at %q", rdUrl)
			}
		}
		// connection is good; run the body
		return body(rdc)
	}
	// grab the mutex and execute the body
	rdMutex.Lock()
	defer func(err error) {
		rdMutex.Unlock()
		if err != nil {
			panic(err)
		}
	}(wrapper(rdc))
}
