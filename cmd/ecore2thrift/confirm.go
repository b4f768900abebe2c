// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/albertocavalcante/ecore2thrift/internal/logging/logfields"
	"github.com/albertocavalcante/ecore2thrift/internal/option"
)

// confirmer answers overwrite questions for concurrent runs, one at a time.
type confirmer struct {
	mu     sync.Mutex
	answer func(path string) (bool, error)
}

func newConfirmer(cfg *option.Config, in io.Reader, out io.Writer) *confirmer {
	c := &confirmer{}
	switch {
	case cfg.AssumeYes:
		c.answer = func(string) (bool, error) { return true, nil }
	case cfg.AssumeNo:
		c.answer = func(string) (bool, error) { return false, nil }
	case isTerminal(in) && isTerminal(out):
		c.answer = func(path string) (bool, error) { return prompt(path, in, out) }
	default:
		c.answer = func(path string) (bool, error) {
			log.WithField(logfields.Path, path).Warn("Output exists; pass --yes to overwrite it")
			return false, nil
		}
	}
	return c
}

// Confirm implements output.ConfirmFunc.
func (c *confirmer) Confirm(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	ok, err := c.answer(path)
	if err != nil {
		log.WithError(err).WithField(logfields.Path, path).Warn("Overwrite prompt failed; keeping the existing file")
		return false
	}
	return ok
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func prompt(path string, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(newConfirmModel(path), tea.WithInput(in), tea.WithOutput(out))
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	final, ok := result.(confirmModel)
	if !ok {
		return false, errors.New("unexpected prompt result")
	}
	return final.confirmed, nil
}

// confirmModel is a single-line y/N question.
type confirmModel struct {
	path      string
	input     textinput.Model
	done      bool
	confirmed bool
}

func newConfirmModel(path string) confirmModel {
	ti := textinput.New()
	ti.Placeholder = "y/N"
	ti.CharLimit = 3
	ti.Focus()
	return confirmModel{path: path, input: ti}
}

func (m confirmModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.done = true
			m.confirmed = isYes(m.input.Value())
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("Overwrite %s? %s\n", m.path, m.input.View())
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
