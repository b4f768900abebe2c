// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package pipeline

// State is the position of a run in its state machine.
//
//	Validating -> Generating -> Writing -> Done
//
// Cancelled and Failed are reachable from every non-terminal state.
type State int

const (
	Validating State = iota
	Generating
	Writing
	Done
	Cancelled
	Failed
)

var stateNames = [...]string{
	Validating: "validating",
	Generating: "generating",
	Writing:    "writing",
	Done:       "done",
	Cancelled:  "cancelled",
	Failed:     "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition leaves s.
func (s State) Terminal() bool {
	return s == Done || s == Cancelled || s == Failed
}

// Phase event names reported to a ProgressSink.
const (
	PhaseValidate = "validate"
	PhaseGenerate = "generate"
	PhaseWrite    = "write"
)

// ProgressSink observes a run. It cannot influence the run; a run calls
// PhaseStarted once per phase it enters and Finished exactly once.
type ProgressSink interface {
	PhaseStarted(phase string)
	Finished(state State, err error)
}

type nopSink struct{}

func (nopSink) PhaseStarted(string)   {}
func (nopSink) Finished(State, error) {}
