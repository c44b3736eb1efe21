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
	"errors"
	"fmt"
)

/*

Errors

*/

// An Error describes a rejected move or a failed grid load.  Its
// Condition tells the caller which rule was violated; Error()
// produces the user-facing reason string.  Every rejection the
// engine hands back is one of these, so callers can distinguish
// recoverable rule violations from I/O failures.
type Error struct {
	Condition ErrorCondition `json:"condition"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorCondition is the predicate the move or the input failed
// to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	OutOfRangeCondition
	IllegalClearCondition
	CellOccupiedCondition
	DuplicateValueCondition
	InvalidSizeCondition
	InvalidDataCondition
	BadCommandCondition
	MaxCondition
)

// The ErrorData provides details about the thing that failed to
// meet the condition, such as the offending coordinates or the
// limit that was exceeded.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it produces the
// game's (English, non-localized) reason string.
func (e Error) Error() string {
	if len(e.Message) > 0 {
		return e.Message
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Condition {
	case OutOfRangeCondition:
		return fmt.Sprintf("Error: i,j or val are outside the allowed range [1..%v]!", nextVal())
	case IllegalClearCondition:
		return "Error: illegal to clear cell!"
	case CellOccupiedCondition:
		return "Error: cell is already occupied!"
	case DuplicateValueCondition:
		return "Error: Illegal value insertion!"
	case InvalidSizeCondition:
		return fmt.Sprintf("Error: Detected invalid size of latin square in the file...\nMaximum size is %v", valueAt(e.Values, 1))
	case InvalidDataCondition:
		return "Error: Invalid input detected in the Latin square data..."
	case BadCommandCondition:
		return "Error: wrong format of command"
	}
	return fmt.Sprintf("Unknown error: supplemental data is %v", values)
}

// valueAt fetches an ErrorData entry, tolerating short data.
func valueAt(values ErrorData, i int) interface{} {
	if i >= len(values) {
		return "<unknown>"
	}
	return values[i]
}

// ConditionOf extracts the ErrorCondition from an error, or
// UnknownCondition when the error is not a grid Error.
func ConditionOf(err error) ErrorCondition {
	var e Error
	if errors.As(err, &e) {
		return e.Condition
	}
	return UnknownCondition
}
