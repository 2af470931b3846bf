// Copyright 2024 The Yatay Authors. All rights reserved.
// This file is part of yatay and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package interpreter

import "yatay/internal/value"

// Environment is the single flat lexical scope described in spec §4.4. A
// future nested-scope design would add a parent link here; callers already
// go through this handle rather than a bare map, so that change would not
// touch them (spec §9, "Environment identity").
type Environment struct {
	values map[string]value.Value
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// Define binds identifier to v. It is a runtimeError if identifier is
// already bound in this environment (spec §4.4).
func (e *Environment) Define(identifier string, v value.Value) error {
	if _, ok := e.values[identifier]; ok {
		return &runtimeError{message: "identifier '" + identifier + "' already defined"}
	}
	e.values[identifier] = v
	return nil
}

// Set overwrites an existing binding. It is a runtimeError if identifier is
// not already bound (spec §4.4).
func (e *Environment) Set(identifier string, v value.Value) error {
	if _, ok := e.values[identifier]; !ok {
		return &runtimeError{message: "identifier '" + identifier + "' not defined in this context"}
	}
	e.values[identifier] = v
	return nil
}

// Get returns the value bound to identifier. It is a runtimeError if
// identifier is not bound (spec §4.4).
func (e *Environment) Get(identifier string) (value.Value, error) {
	v, ok := e.values[identifier]
	if !ok {
		return value.Nil, &runtimeError{message: "identifier '" + identifier + "' not defined in this context"}
	}
	return v, nil
}
