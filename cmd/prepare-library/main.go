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

// Prepare the latsq puzzle library for use
package main

import (
	"log"

	"github.com/gridworks/latsq.go/library"
)

func main() {
	log.Printf("Making sure schema and sample puzzles are in place...")
	if err := library.EnsureData(); err != nil {
		log.Fatalf("Couldn't prepare library: %v", err)
	}
	log.Printf("Puzzle library is ready for use.")
}
