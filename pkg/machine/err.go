// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package machine

import (
	"errors"

	"github.com/lassandro/lc3emu/pkg/translate"
)

var f = translate.From

var (
	ErrImageTruncated = errors.New(f("image truncated"))
	ErrImageOverflow  = errors.New(f("image overflows memory"))
	ErrNoConsole      = errors.New(f("no console attached"))
	ErrHalted         = errors.New(f("machine halted"))
)

// ErrImageIO reports an image that could not be opened or read.
type ErrImageIO struct {
	Path string
	Err  error
}

func (err ErrImageIO) Error() string {
	if err.Path == "" {
		return f("image read: %v", err.Err)
	}

	return f("image %v: %v", err.Path, err.Err)
}

func (err ErrImageIO) Unwrap() error {
	return err.Err
}

func (err ErrImageIO) Is(target error) (ok bool) {
	_, ok = target.(ErrImageIO)
	return
}

type ErrInvalidOpcode struct {
	PC   uint16
	Word uint16
}

func (err ErrInvalidOpcode) Error() string {
	return f(
		"invalid opcode %v (%#04x) at %#04x",
		Opcode(err.Word>>12).String(), err.Word, err.PC,
	)
}

func (err ErrInvalidOpcode) Is(target error) (ok bool) {
	_, ok = target.(ErrInvalidOpcode)
	return
}

type ErrUnimplementedTrap struct {
	PC     uint16
	Vector uint16
}

func (err ErrUnimplementedTrap) Error() string {
	return f("unimplemented trap %#02x at %#04x", err.Vector, err.PC)
}

func (err ErrUnimplementedTrap) Is(target error) (ok bool) {
	_, ok = target.(ErrUnimplementedTrap)
	return
}

// ErrConsole wraps a failed console read, write or flush.
type ErrConsole struct {
	Op  string
	Err error
}

func (err ErrConsole) Error() string {
	return f("console %v: %v", err.Op, err.Err)
}

func (err ErrConsole) Unwrap() error {
	return err.Err
}

func (err ErrConsole) Is(target error) (ok bool) {
	_, ok = target.(ErrConsole)
	return
}
