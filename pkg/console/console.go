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

// Package console provides the character devices a machine reads keys from
// and writes characters to.
package console

import (
	"bufio"
	"io"
)

// Stream is a console over an arbitrary reader and writer. ByteAvailable
// peeks the reader, so it only satisfies the non-blocking contract for
// readers that never block, such as in-memory buffers and regular files.
type Stream struct {
	in  *bufio.Reader
	out *bufio.Writer
}

func NewStream(in io.Reader, out io.Writer) *Stream {
	return &Stream{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
}

func (s *Stream) ByteAvailable() bool {
	if s.in.Buffered() > 0 {
		return true
	}

	_, err := s.in.Peek(1)
	return err == nil
}

func (s *Stream) ReadByte() (byte, error) {
	return s.in.ReadByte()
}

func (s *Stream) WriteByte(c byte) error {
	return s.out.WriteByte(c)
}

func (s *Stream) Flush() error {
	return s.out.Flush()
}
