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

//go:build linux || darwin

package console

import (
	"bufio"
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

var ErrNotTerminal = errors.New("console: not a terminal")

// Terminal is a console on the process tty. EnterRaw switches the tty to
// unbuffered, unechoed input and Restore puts back the mode it replaced.
type Terminal struct {
	in      *os.File
	out     *bufio.Writer
	restore *unix.Termios
}

func NewTerminal(in *os.File, out *os.File) *Terminal {
	return &Terminal{
		in:  in,
		out: bufio.NewWriter(out),
	}
}

func (t *Terminal) fd() int {
	return int(t.in.Fd())
}

// IsTerminal reports whether the input side is a tty.
func (t *Terminal) IsTerminal() bool {
	_, err := unix.IoctlGetTermios(t.fd(), ioctlGetTermios)
	return err == nil
}

func (t *Terminal) EnterRaw() error {
	termios, err := unix.IoctlGetTermios(t.fd(), ioctlGetTermios)

	if err != nil {
		return ErrNotTerminal
	}

	if t.restore == nil {
		saved := *termios
		t.restore = &saved
	}

	termstate := *termios

	termstate.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR
	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN
	termstate.Cflag &^= unix.CSIZE | unix.PARENB
	termstate.Cflag |= unix.CS8

	// Blocking single byte reads, ByteAvailable does the polling
	termstate.Cc[unix.VMIN] = 1
	termstate.Cc[unix.VTIME] = 0

	return unix.IoctlSetTermios(t.fd(), ioctlSetTermios, &termstate)
}

// Restore is a no-op unless EnterRaw succeeded.
func (t *Terminal) Restore() error {
	if t.restore == nil {
		return nil
	}

	return unix.IoctlSetTermios(t.fd(), ioctlSetTermios, t.restore)
}

func (t *Terminal) ByteAvailable() bool {
	var readfds unix.FdSet
	readfds.Zero()
	readfds.Set(t.fd())

	timeout := unix.Timeval{Sec: 0, Usec: 0}

	n, err := unix.Select(t.fd()+1, &readfds, nil, nil, &timeout)

	return err == nil && n > 0
}

func (t *Terminal) ReadByte() (byte, error) {
	scratch := make([]byte, 1)

	for {
		n, err := t.in.Read(scratch)

		if n == 1 {
			return scratch[0], nil
		} else if err != nil {
			return 0, err
		}
	}
}

func (t *Terminal) WriteByte(c byte) error {
	return t.out.WriteByte(c)
}

func (t *Terminal) Flush() error {
	return t.out.Flush()
}
