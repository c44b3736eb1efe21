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
	"testing"
)

/*

construction

*/

func TestNewSizeValidation(t *testing.T) {
	for _, size := range []int{-1, 0, MaxSize + 1, 100} {
		if _, err := New(size, nil); ConditionOf(err) != InvalidSizeCondition {
			t.Errorf("New with size %d gave %v, expected an InvalidSize error", size, err)
		}
	}
	for size := 1; size <= MaxSize; size++ {
		g, err := New(size, make([]int, size*size))
		if err != nil {
			t.Fatalf("New with size %d failed: %v", size, err)
		}
		if g.Size() != size {
			t.Errorf("Grid size is %d, expected %d", g.Size(), size)
		}
	}
}

func TestNewValueValidation(t *testing.T) {
	if _, err := New(4, make([]int, 15)); ConditionOf(err) != InvalidDataCondition {
		t.Errorf("New with short value list gave %v, expected an InvalidData error", err)
	}
	if _, err := New(4, make([]int, 17)); ConditionOf(err) != InvalidDataCondition {
		t.Errorf("New with long value list gave %v, expected an InvalidData error", err)
	}
}

func TestNewSignedEncoding(t *testing.T) {
	g, err := New(2, []int{-1, 0, 2, 0})
	if err != nil {
		t.Fatalf("Grid creation failed: %v", err)
	}
	if v := g.Get(1, 1); v != -1 {
		t.Errorf("Given cell reads %d, expected -1", v)
	}
	if !g.IsFixed(1, 1) {
		t.Errorf("Cell (1,1) should be fixed")
	}
	if v := g.Get(2, 1); v != 2 {
		t.Errorf("Player cell reads %d, expected 2", v)
	}
	if g.IsFixed(2, 1) {
		t.Errorf("Cell (2,1) should not be fixed")
	}
	if v := g.Get(1, 2); v != 0 {
		t.Errorf("Empty cell reads %d, expected 0", v)
	}
}

/*

accessors

*/

func TestSetAndGet(t *testing.T) {
	g, err := New(3, make([]int, 9))
	if err != nil {
		t.Fatalf("Grid creation failed: %v", err)
	}
	g.Set(2, 3, 1)
	if v := g.Get(2, 3); v != 1 {
		t.Errorf("Cell (2,3) reads %d, expected 1", v)
	}
	g.Set(2, 3, 0)
	if v := g.Get(2, 3); v != 0 {
		t.Errorf("Cleared cell (2,3) reads %d, expected 0", v)
	}
	g.Set(3, 1, -2)
	if v := g.Get(3, 1); v != -2 {
		t.Errorf("Cell (3,1) reads %d, expected -2", v)
	}
	if !g.IsFixed(3, 1) {
		t.Errorf("Cell (3,1) should be fixed after Set(-2)")
	}
}

func TestComplete(t *testing.T) {
	g, err := New(2, []int{-1, 2, 2, 0})
	if err != nil {
		t.Fatalf("Grid creation failed: %v", err)
	}
	if g.Complete() {
		t.Errorf("Grid with an empty cell reported complete")
	}
	g.Set(2, 2, 1)
	if !g.Complete() {
		t.Errorf("Filled grid not reported complete")
	}
}

func TestValuesSnapshot(t *testing.T) {
	values := []int{-1, 0, 2, 0, -3, 0, 0, 0, 1}
	g, err := New(3, values)
	if err != nil {
		t.Fatalf("Grid creation failed: %v", err)
	}
	got := g.Values()
	if !reflect.DeepEqual(got, values) {
		t.Errorf("Snapshot is %v, expected %v", got, values)
	}
	// the snapshot must not alias the grid
	got[0] = 9
	if g.Get(1, 1) != -1 {
		t.Errorf("Mutating a snapshot changed the grid")
	}
}
