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

package grid

import (
	"fmt"
	"io"
	"strings"
)

/*

Load and save text format

*/

// Read loads a grid from its textual form: a size token followed
// by size×size whitespace-separated signed integers in row-major
// order.  A bad or missing size gives an InvalidSize Error; any
// missing or malformed cell token gives an InvalidData Error.
func Read(r io.Reader) (*Grid, error) {
	var size int
	if n, _ := fmt.Fscan(r, &size); n != 1 || size < 1 || size > MaxSize {
		return nil, Error{
			Condition: InvalidSizeCondition,
			Values:    ErrorData{size, MaxSize},
		}
	}
	values := make([]int, size*size)
	for i := range values {
		if n, _ := fmt.Fscan(r, &values[i]); n != 1 {
			return nil, Error{
				Condition: InvalidDataCondition,
				Values:    ErrorData{i},
			}
		}
	}
	return New(size, values)
}

// Write saves a grid in the same form Read consumes: the size on
// the first line, then one line per row of space-separated signed
// cell values, with no trailing space on any line.
func (g *Grid) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d\n", g.size); err != nil {
		return err
	}
	for row := 1; row <= g.size; row++ {
		for col := 1; col <= g.size; col++ {
			sep := " "
			if col == g.size {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%d%s", g.Get(row, col), sep); err != nil {
				return err
			}
		}
	}
	return nil
}

/*

Interactive command surface

*/

// ParseMove parses the player's command form "i,j=val" into a
// Move.  Unparseable commands give a BadCommand Error; the caller
// should re-prompt without consuming a move.
func ParseMove(s string) (Move, error) {
	var m Move
	n, err := fmt.Sscanf(strings.TrimSpace(s), "%d,%d=%d", &m.Row, &m.Col, &m.Value)
	if n != 3 || err != nil {
		return Move{}, Error{
			Condition: BadCommandCondition,
			Values:    ErrorData{s},
		}
	}
	return m, nil
}

// Instructions returns the command dialogue shown to the player.
func Instructions(size int) string {
	return fmt.Sprintf("Enter your command in the following format:\n"+
		"+ i,j=val: for entering val at position (i,j)\n"+
		"+ i,j=0 : for clearing cell (i,j)\n"+
		"+ 0,0=0 : for saving and ending the game\n"+
		"Notice: i,j,val numbering is from [1..%d]\n", size)
}

/*

Pretty-printed grids in strings

*/

// ValuesString returns the boxed console rendering of the grid.
// Givens are shown in parentheses, empty cells as 0.
func (g *Grid) ValuesString() string {
	var b strings.Builder
	border := strings.Repeat("+-----", g.size) + "+\n"
	for row := 1; row <= g.size; row++ {
		b.WriteString(border)
		for col := 1; col <= g.size; col++ {
			if v := g.Get(row, col); v < 0 {
				fmt.Fprintf(&b, "| (%d) ", -v)
			} else {
				fmt.Fprintf(&b, "|  %d  ", v)
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}

// String gives the same rendering as ValuesString.
func (g *Grid) String() string {
	if g == nil {
		return ""
	}
	return g.ValuesString()
}
