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

package session

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/gridworks/latsq.go/grid"
)

// A Session tracks one play-through of a puzzle.  Behind the
// scenes, every committed grid state is persisted as a step, so
// an interrupted session can be picked up where it stopped.
type Session struct {
	// these elements are persisted in the session hash
	SID     string // session ID
	Source  string // where the starting grid came from
	Step    int    // current step
	Created string // RFC3339 time when the session was created
	Saved   string // RFC3339 time when the session was last saved

	// the grid is persisted in the steps, serialized as JSON
	Grid *grid.Grid `redis:"-"`
}

// a snapshot is the serialized form of one committed step.
type snapshot struct {
	Size   int   `json:"size"`
	Values []int `json:"values"`
}

/*

session manipulation

*/

// Start resets the session history to step 1 with the loaded
// grid as the starting state.
func (session *Session) Start(g *grid.Grid) {
	session.Grid = g
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step = 1
	bytes := session.marshalStep()
	body := func(conn redis.Conn) (err error) {
		conn.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		conn.Send("DEL", session.stepsKey())
		_, err = conn.Do("RPUSH", session.stepsKey(), bytes)
		if err != nil {
			log.Printf("Redis error on save of session %q after start: %v", session.SID, err)
		}
		return
	}
	rdExecute(body)
	log.Printf("Started session %v from %q.", session.SID, session.Source)
}

// RecordStep appends the current grid state as a new step.
func (session *Session) RecordStep(g *grid.Grid) {
	session.Grid = g
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step++
	bytes := session.marshalStep()
	body := func(conn redis.Conn) (err error) {
		conn.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		_, err = conn.Do("RPUSH", session.stepsKey(), bytes)
		if err != nil {
			log.Printf("Redis error on save of %s:%q step %d: %v",
				session.SID, session.Source, session.Step, err)
		}
		return
	}
	rdExecute(body)
}

// Lookup finds the persisted session for the receiver's SID,
// filling in the persisted fields.  Returns whether a session
// with that ID was found.
func (session *Session) Lookup() (found bool) {
	body := func(conn redis.Conn) error {
		vals, err := redis.Values(conn.Do("HGETALL", session.key()))
		if len(vals) > 0 {
			if err := redis.ScanStruct(vals, session); err != nil {
				log.Printf("Redis error on parse of saved session %q: %v", session.SID, err)
				return err
			}
			found = true
			return nil
		}
		if err != nil {
			log.Printf("Redis error on lookup of session %q: %v", session.SID, err)
			return err
		}
		return nil
	}
	rdExecute(body)
	return
}

// LoadStep restores the grid of the session's latest step.
func (session *Session) LoadStep() {
	var bytes []byte
	body := func(conn redis.Conn) (err error) {
		bytes, err = redis.Bytes(conn.Do("LINDEX", session.stepsKey(), -1))
		if err != nil {
			log.Printf("Error on load of %s:%q step %d: %v",
				session.SID, session.Source, session.Step, err)
		}
		return
	}
	rdExecute(body)
	session.unmarshalStep(bytes)
}

/*

serialization of grid state into and out of the cache

*/

// marshalStep - get JSON for the current step
func (session *Session) marshalStep() []byte {
	bytes, err := json.Marshal(snapshot{Size: session.Grid.Size(), Values: session.Grid.Values()})
	if err != nil {
		log.Printf("Failed to marshal step %d of session %q as JSON: %v",
			session.Step, session.SID, err)
		panic(err)
	}
	return bytes
}

// unmarshalStep - rebuild the grid for a saved step
func (session *Session) unmarshalStep(bytes []byte) {
	var snap snapshot
	if err := json.Unmarshal(bytes, &snap); err != nil {
		log.Printf("Failed to unmarshal saved JSON of %s step %d: %v",
			session.SID, session.Step, err)
		panic(err)
	}
	g, err := grid.New(snap.Size, snap.Values)
	if err != nil {
		log.Printf("Failed to create grid for %s step %d (%+v): %v",
			session.SID, session.Step, snap, err)
		panic(err)
	}
	session.Grid = g
}

/*

session key generation

*/

// key - returns the session key
func (session *Session) key() string {
	return rdEnv + ":SID:" + session.SID
}

// stepsKey - returns the key for the session's step array
func (session *Session) stepsKey() string {
	return session.key() + ":Steps"
}
