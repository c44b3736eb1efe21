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

// Command-line Latin square game
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gridworks/latsq.go/grid"
	"github.com/gridworks/latsq.go/library"
	"github.com/gridworks/latsq.go/session"
)

func main() {
	listFlag := flag.Bool("list", false, "list the stored puzzles and exit")
	puzzleFlag := flag.String("puzzle", "", "play a stored puzzle instead of a file")
	flag.Parse()

	if *listFlag {
		listPuzzles(os.Stdout)
		return
	}

	var g *grid.Grid
	var outName string
	var source string
	if *puzzleFlag != "" {
		g = loadStored(*puzzleFlag)
		outName = "out-" + *puzzleFlag + ".txt"
		source = "library:" + *puzzleFlag
	} else {
		if flag.NArg() < 1 {
			fmt.Printf("Usage: %s <filename>\nError code: 1 => FileName not provided \n", os.Args[0])
			os.Exit(1)
		}
		fileName := flag.Arg(0)
		g = loadFile(fileName)
		outName = "out-" + filepath.Base(fileName)
		source = fileName
	}
	if g == nil {
		return
	}

	sess := openSession(g, source)
	defer session.Close()

	play(os.Stdout, os.Stdin, g, outName, sess)
}

/*

puzzle loading

*/

// loadFile reads the starting grid from a saved game file.  A nil
// return means the game should not start; the diagnostic has
// already been printed.
func loadFile(fileName string) *grid.Grid {
	f, err := os.Open(fileName)
	if err != nil {
		fmt.Printf("Error! Unable to access file %s\n", fileName)
		return nil
	}
	defer f.Close()

	g, err := grid.Read(f)
	if err != nil {
		fmt.Printf("Error: Something went wrong while reading the file %s\n", fileName)
		fmt.Println(err)
		return nil
	}
	return g
}

// loadStored fetches a puzzle from the library and builds its
// starting grid.
func loadStored(id string) *grid.Grid {
	e, err := library.LoadEntry(context.Background(), id)
	if err != nil {
		fmt.Printf("Error! Unable to load stored puzzle %s\n", id)
		fmt.Println(err)
		return nil
	}
	g, err := e.Grid()
	if err != nil {
		fmt.Println(err)
		return nil
	}
	return g
}

// listPuzzles prints the stored puzzles, one per line.
func listPuzzles(w io.Writer) {
	entries, err := library.ListEntries(context.Background())
	if err != nil {
		fmt.Fprintf(w, "Error! Unable to list stored puzzles\n")
		fmt.Fprintln(w, err)
		return
	}
	if len(entries) == 0 {
		fmt.Fprintf(w, "No stored puzzles.\n")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%dx%d\t%s\n", e.ID, e.Size, e.Size, e.Name)
	}
}

/*

session history

*/

// openSession starts a move-history session for this game.  The
// history is a convenience, so a missing session store just turns
// it off rather than stopping the game.
func openSession(g *grid.Grid, source string) *session.Session {
	if _, err := session.Connect(); err != nil {
		log.Printf("Session history disabled: %v", err)
		return nil
	}
	sess := &session.Session{
		SID:    strconv.FormatInt(time.Now().UnixNano(), 36),
		Source: source,
	}
	sess.Start(g)
	return sess
}

// recordStep saves the grid after an accepted move.  Session
// operations panic when the store misbehaves mid-game; the
// history is not worth killing the game over, so we recover and
// keep playing without it.
func recordStep(sess *session.Session, g *grid.Grid) {
	if sess == nil {
		return
	}
	defer func() {
		if err := recover(); err != nil {
			log.Printf("Session history disabled: %v", err)
		}
	}()
	sess.RecordStep(g)
}

/*

the game loop

*/

// play runs the move dialogue until the game ends.  The grid is
// redisplayed only after a move is accepted; rejected moves just
// print their diagnostic and re-prompt.
func play(w io.Writer, r io.Reader, g *grid.Grid, outName string, sess *session.Session) {
	scanner := bufio.NewScanner(r)
	display := true
	for {
		if display {
			fmt.Fprint(w, g)
			fmt.Fprint(w, grid.Instructions(g.Size()))
			display = false
		}
		if !scanner.Scan() {
			// EOF ends the game without saving
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		m, err := grid.ParseMove(line)
		if err != nil {
			fmt.Fprintf(w, "%v\n\n", err)
			continue
		}
		outcome, err := g.Apply(m)
		if err != nil {
			fmt.Fprintf(w, "%v\n\n", err)
			continue
		}
		if outcome == grid.Terminated {
			save(w, g, outName)
			return
		}
		recordStep(sess, g)
		if m.Value == 0 {
			fmt.Fprint(w, "\nValue Cleared!\n\n")
		} else {
			fmt.Fprint(w, "\nValue Inserted!\n\n")
		}
		if outcome == grid.Completed {
			fmt.Fprintln(w, "Game completed!!!")
			fmt.Fprint(w, g)
			save(w, g, outName)
			return
		}
		display = true
	}
}

// save writes the current grid to the output file.  A write
// failure is reported but does not end the program abnormally.
func save(w io.Writer, g *grid.Grid, outName string) {
	f, err := os.Create(outName)
	if err != nil {
		fmt.Fprintf(w, "Error : Unable to generate file %s to save the game!\n", outName)
		return
	}
	defer f.Close()
	if err := g.Write(f); err != nil {
		fmt.Fprintf(w, "Error : Unable to generate file %s to save the game!\n", outName)
		return
	}
	fmt.Fprintf(w, "Saving to %s...\nDone\n", outName)
}
