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
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
)

/*

installation entries

*/

type dataFunction func(context.Context, pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSamples,
	}
	downFunctions = []dataFunction{
		deleteSamples,
	}
)

// EnsureData installs the schema and, on a fresh install, loads
// the sample puzzles.
func EnsureData() error {
	inVersion, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("Couldn't get initial data schema version: %v", err)
	}
	if err := SchemaUp(); err != nil {
		return fmt.Errorf("Couldn't install data schema: %v", err)
	}
	outVersion, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("Couldn't get final data schema version: %v", err)
	}
	if outVersion == 0 {
		return fmt.Errorf("Database schema still at version 0, shouldn't be.")
	}
	if inVersion != outVersion {
		if err := DataUp(); err != nil {
			return fmt.Errorf("Couldn't load data: %v", err)
		}
	}
	return nil
}

// RemoveData tears down the schema and everything in it.
func RemoveData() error {
	version, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("Couldn't get initial data schema version: %v", err)
	}
	if version > 0 {
		if err := SchemaDown(); err != nil {
			return fmt.Errorf("Couldn't remove tables: %v", err)
		}
	}
	return nil
}

// ReinitializeAll flushes the cache, drops the database, and
// reinstalls schema and sample data.
func ReinitializeAll() error {
	if err := ClearCache(); err != nil {
		return fmt.Errorf("Couldn't clear cache: %v", err)
	}
	if err := RemoveData(); err != nil {
		return fmt.Errorf("Couldn't clear database: %v", err)
	}
	if err := EnsureData(); err != nil {
		return fmt.Errorf("Couldn't load database: %v", err)
	}
	return nil
}

// ClearCache flushes the Redis cache.
func ClearCache() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	conn, err := redis.DialURL(cfg.RedisURL)
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Do("FLUSHALL")
	return err
}

// DataUp loads the sample puzzles into the database.  You should
// do this after you get the schema up!
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown removes the sample puzzles from the database.  You
// should do this before you tear the schema down!
func DataDown() error {
	return applyFunctions(downFunctions)
}

// apply dataFunctions to the database.  Each is applied in a
// separate transaction, so later ones can rely on the effect of
// earlier ones having been committed.
func applyFunctions(fns []dataFunction) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	// helper that runs each function inside a transaction, and
	// ensures that any problems are rolled back.
	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return err
		}
		if err := fn(ctx, tx); err != nil {
			tx.Rollback(ctx)
			return err
		}
		return tx.Commit(ctx)
	}

	for _, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("data load step failed: %v", err)
		}
	}
	return nil
}

/*

sample puzzles

*/

var sampleEntries = []*Entry{
	{
		ID:   "blank-4",
		Name: "Blank 4x4",
		Size: 4,
		Values: []int32{
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		},
	},
	{
		ID:   "starter-4",
		Name: "Starter 4x4",
		Size: 4,
		Values: []int32{
			-1, 0, 0, -4,
			0, -3, 0, 0,
			0, 0, -1, 0,
			-4, 0, 0, -3,
		},
	},
	{
		ID:   "cyclic-9",
		Name: "Cyclic 9x9",
		Size: 9,
		Values: []int32{
			0, -2, 0, 0, 0, -6, 0, 0, -9,
			-2, 0, 0, -5, 0, 0, 0, -9, 0,
			0, 0, -5, 0, 0, -8, 0, 0, 0,
			-4, 0, 0, 0, -8, 0, 0, -2, 0,
			0, 0, -7, 0, 0, 0, -2, 0, 0,
			0, -7, 0, 0, -1, 0, 0, 0, -5,
			0, 0, 0, -1, 0, 0, -4, 0, 0,
			0, -9, 0, 0, 0, -4, 0, 0, -7,
			-9, 0, 0, -3, 0, 0, 0, -7, 0,
		},
	},
}

// insertSamples adds the sample puzzles to the database.
func insertSamples(ctx context.Context, tx pgx.Tx) error {
	for _, e := range sampleEntries {
		_, err := tx.Exec(ctx,
			"INSERT INTO puzzles (puzzleId, name, sideLength, valueList, created) "+
				"VALUES ($1, $2, $3, $4, $5)",
			e.ID, e.Name, int32(e.Size), e.Values, time.Now())
		if err != nil {
			return fmt.Errorf("insert of sample %q failed: %v", e.ID, err)
		}
	}
	return nil
}

// deleteSamples removes the sample puzzles from the database.
func deleteSamples(ctx context.Context, tx pgx.Tx) error {
	for _, e := range sampleEntries {
		if _, err := tx.Exec(ctx, "DELETE FROM puzzles WHERE puzzleId = $1", e.ID); err != nil {
			return fmt.Errorf("delete of sample %q failed: %v", e.ID, err)
		}
	}
	return nil
}
