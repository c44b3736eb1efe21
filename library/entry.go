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

package library

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"

	"github.com/gridworks/latsq.go/grid"
)

/*

stored puzzle entries

*/

// An Entry is the stored form of a starting grid.  It is JSON
// serializable so it can go into the cache as well as the
// database.  Values use the signed encoding: negative cells are
// the puzzle's givens.
type Entry struct {
	ID     string
	Name   string
	Size   int
	Values []int32
}

// Grid builds the playable grid described by an entry.
func (e *Entry) Grid() (*grid.Grid, error) {
	values := make([]int, len(e.Values))
	for i, v := range e.Values {
		values[i] = int(v)
	}
	g, err := grid.New(e.Size, values)
	if err != nil {
		return nil, fmt.Errorf("stored puzzle %q is unusable: %w", e.ID, err)
	}
	return g, nil
}

// key computes the cache key for an entry.
func (e *Entry) key() string {
	return "PID:" + e.ID
}

// LoadEntry first checks the cache, then the database, to find
// the entry with the given id.  If it loads from the database, it
// caches the result.
func LoadEntry(ctx context.Context, id string) (*Entry, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	e := &Entry{ID: id}
	if found, err := e.cacheLoad(cfg); err == nil && found {
		return e, nil
	}
	// cache miss (or no cache): load from database, then try to
	// cache the result for next time
	if err := e.databaseLoad(ctx, cfg); err != nil {
		return nil, err
	}
	if err := e.cacheInsert(cfg); err != nil {
		// a dead cache shouldn't block play; the database copy
		// is authoritative
		return e, nil
	}
	return e, nil
}

// ListEntries returns all stored entries, without their values,
// ordered by name.
func ListEntries(ctx context.Context) ([]*Entry, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	conn, err := pgx.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("Couldn't connect to db at %q: %v", cfg.DatabaseURL, err)
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx,
		"SELECT puzzleId, name, sideLength FROM puzzles ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("Failure listing puzzles: %v", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		var side int32
		if err := rows.Scan(&e.ID, &e.Name, &side); err != nil {
			return nil, fmt.Errorf("Failure scanning puzzle row: %v", err)
		}
		e.Size = int(side)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// StoreEntry inserts a new entry into the database and caches it.
func StoreEntry(ctx context.Context, e *Entry) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := e.databaseInsert(ctx, cfg); err != nil {
		return err
	}
	e.cacheInsert(cfg)
	return nil
}

/*

cache tier

*/

// cacheLoad: load an already cached entry.  Returns whether the
// entry was found in the cache.
func (e *Entry) cacheLoad(cfg config) (bool, error) {
	conn, err := redis.DialURL(cfg.RedisURL)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	bytes, err := redis.Bytes(conn.Do("GET", e.key()))
	if err == redis.ErrNil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("Cache failure loading entry %q: %v", e.ID, err)
	}
	var stored *Entry
	if err := json.Unmarshal(bytes, &stored); err != nil {
		return false, fmt.Errorf("Failed to unmarshal entry %q: %v", e.ID, err)
	}
	if stored.ID != e.ID {
		return false, fmt.Errorf("Cached entry (id: %q) found for puzzle %q!", stored.ID, e.ID)
	}
	*e = *stored
	return true, nil
}

// cacheInsert: insert an entry into the cache.  Replaces any
// existing entry with the same id.
func (e *Entry) cacheInsert(cfg config) error {
	bytes, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("Failed to marshal entry %q: %v", e.ID, err)
	}
	conn, err := redis.DialURL(cfg.RedisURL)
	if err != nil {
		return err
	}
	defer conn.Close()
	if _, err := conn.Do("SET", e.key(), bytes); err != nil {
		return fmt.Errorf("Cache failure saving entry %q: %v", e.ID, err)
	}
	return nil
}

/*

database tier

*/

// databaseLoad: load an entry from the database.
func (e *Entry) databaseLoad(ctx context.Context, cfg config) error {
	conn, err := pgx.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("Couldn't connect to db at %q: %v", cfg.DatabaseURL, err)
	}
	defer conn.Close(ctx)

	var side int32
	row := conn.QueryRow(ctx,
		"SELECT name, sideLength, valueList FROM puzzles WHERE puzzleId = $1", e.ID)
	if err := row.Scan(&e.Name, &side, &e.Values); err != nil {
		return fmt.Errorf("Failure looking up puzzle %q: %v", e.ID, err)
	}
	e.Size = int(side)
	return nil
}

// databaseInsert: insert a new entry into the database.
func (e *Entry) databaseInsert(ctx context.Context, cfg config) error {
	conn, err := pgx.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("Couldn't connect to db at %q: %v", cfg.DatabaseURL, err)
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx,
		"INSERT INTO puzzles (puzzleId, name, sideLength, valueList, created) "+
			"VALUES ($1, $2, $3, $4, now())",
		e.ID, e.Name, int32(e.Size), e.Values)
	if err != nil {
		return fmt.Errorf("Database error saving entry %q: %v", e.ID, err)
	}
	return nil
}
