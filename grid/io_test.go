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
	"reflect"
	"strings"
	"testing"
)

/*

load format

*/

func TestReadValid(t *testing.T) {
	in := "4\n" +
		"-1 0 0 -4\n" +
		"0 -3 0 0\n" +
		"0 0 -1 0\n" +
		"-4 0 0 -3\n"
	g, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if g.Size() != 4 {
		t.Errorf("Read size is %d, expected 4", g.Size())
	}
	if g.Get(1, 1) != -1 || g.Get(2, 2) != -3 || g.Get(1, 2) != 0 {
		t.Errorf("Read values are wrong: %v", g.Values())
	}
}

func TestReadToleratesArbitraryWhitespace(t *testing.T) {
	in := "2 0 0\n\t0  0"
	g, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if g.Size() != 2 {
		t.Errorf("Read size is %d, expected 2", g.Size())
	}
}

func TestReadInvalidSize(t *testing.T) {
	for _, in := range []string{"", "0", "-3", "10", "x"} {
		if _, err := Read(strings.NewReader(in)); ConditionOf(err) != InvalidSizeCondition {
			t.Errorf("Read(%q) gave %v, expected an InvalidSize error", in, err)
		}
	}
}

func TestReadInvalidData(t *testing.T) {
	for _, in := range []string{
		"2",              // no cells at all
		"2 0 0 0",        // one cell short
		"2 0 0 oops 0",   // malformed cell token
		"3 1 2 3 4 5 6 ", // truncated
	} {
		if _, err := Read(strings.NewReader(in)); ConditionOf(err) != InvalidDataCondition {
			t.Errorf("Read(%q) gave %v, expected an InvalidData error", in, err)
		}
	}
}

/*

save format

*/

func TestWriteFormat(t *testing.T) {
	g := mustGrid(t, 3, []int{-2, 0, 0, 0, 1, 0, 0, 0, -3})
	var b strings.Builder
	if err := g.Write(&b); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	e := "3\n" +
		"-2 0 0\n" +
		"0 1 0\n" +
		"0 0 -3\n"
	if b.String() != e {
		t.Errorf("Unexpected save form:\n%vExpected:\n%v", b.String(), e)
	}
}

func TestRoundTrip(t *testing.T) {
	values := []int{
		-1, 2, 0, -4,
		0, -3, 4, 0,
		3, 0, -1, 0,
		-4, 0, 0, -3,
	}
	g := mustGrid(t, 4, values)
	var b strings.Builder
	if err := g.Write(&b); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	r, err := Read(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("Read of written grid failed: %v", err)
	}
	if r.Size() != g.Size() {
		t.Errorf("Round-trip size is %d, expected %d", r.Size(), g.Size())
	}
	if !reflect.DeepEqual(r.Values(), g.Values()) {
		t.Errorf("Round-trip values are %v, expected %v", r.Values(), g.Values())
	}
}

/*

command parsing

*/

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"1,2=3", Move{1, 2, 3}},
		{"4,4=0", Move{4, 4, 0}},
		{"0,0=0", Move{0, 0, 0}},
		{"  2,3=1\n", Move{2, 3, 1}},
		{"-1,2=3", Move{-1, 2, 3}}, // range checking is the engine's job
	}
	for _, c := range cases {
		m, err := ParseMove(c.in)
		if err != nil {
			t.Errorf("ParseMove(%q) failed: %v", c.in, err)
			continue
		}
		if m != c.want {
			t.Errorf("ParseMove(%q) = %v, expected %v", c.in, m, c.want)
		}
	}
}

func TestParseMoveRejectsBadCommands(t *testing.T) {
	for _, in := range []string{"", "quit", "1 2 3", "1,2", "1,2=", "a,b=c", "=3"} {
		if _, err := ParseMove(in); ConditionOf(err) != BadCommandCondition {
			t.Errorf("ParseMove(%q) gave %v, expected a BadCommand error", in, err)
		}
	}
}

/*

rendering

*/

func TestValuesString(t *testing.T) {
	g := mustGrid(t, 2, []int{-1, 0, 2, 0})
	s := g.ValuesString()
	e := "+-----+-----+\n" +
		"| (1) |  0  |\n" +
		"+-----+-----+\n" +
		"|  2  |  0  |\n" +
		"+-----+-----+\n"
	if s != e {
		t.Errorf("Unexpected grid rendering:\n%vExpected:\n%v", s, e)
	}
}

func TestNilGridString(t *testing.T) {
	if s := (*Grid)(nil).String(); s != "" {
		t.Errorf("Nil grid renders %q, expected empty", s)
	}
}

func TestInstructions(t *testing.T) {
	s := Instructions(4)
	if !strings.Contains(s, "0,0=0") {
		t.Errorf("Instructions omit the sentinel command:\n%v", s)
	}
	if !strings.Contains(s, "[1..4]") {
		t.Errorf("Instructions omit the size bound:\n%v", s)
	}
}
