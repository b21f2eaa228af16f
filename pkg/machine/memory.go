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
	"bufio"
	"encoding/binary"
	"errors"
	"io"
)

func (mem *Memory) Reset() {
	for i := range mem.Cells {
		mem.Cells[i] = 0x0000
	}
}

// Read returns the word at addr. Reading the keyboard status register polls
// the keyboard and refreshes both keyboard registers first.
func (mem *Memory) Read(addr uint16) (uint16, error) {
	if addr == DEV_KBSR {
		if err := mem.pollKeyboard(); err != nil {
			return 0, err
		}
	}

	return mem.Cells[addr], nil
}

func (mem *Memory) Write(addr uint16, value uint16) {
	mem.Cells[addr] = value
}

func (mem *Memory) pollKeyboard() error {
	if mem.Keyboard == nil || !mem.Keyboard.ByteAvailable() {
		mem.Cells[DEV_KBSR] = 0
		return nil
	}

	key, err := mem.Keyboard.ReadByte()

	if err != nil {
		mem.Cells[DEV_KBSR] = 0
		return ErrConsole{Op: "read", Err: err}
	}

	mem.Cells[DEV_KBSR] = 1 << 15
	mem.Cells[DEV_KBDR] = uint16(key)

	return nil
}

// Load copies a program image into memory. The first big-endian word of the
// image is the origin; every following word is stored at the next address.
func (mem *Memory) Load(reader io.Reader) (origin uint16, words int, err error) {
	buffered := bufio.NewReader(reader)
	scratch := make([]byte, 2)

	if _, err = io.ReadFull(buffered, scratch); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, 0, ErrImageTruncated
		}

		return 0, 0, ErrImageIO{Err: err}
	}

	origin = binary.BigEndian.Uint16(scratch)
	index := int(origin)

	for {
		_, err = io.ReadFull(buffered, scratch)

		if errors.Is(err, io.EOF) {
			return origin, words, nil
		} else if errors.Is(err, io.ErrUnexpectedEOF) {
			return origin, words, ErrImageTruncated
		} else if err != nil {
			return origin, words, ErrImageIO{Err: err}
		}

		if index >= MEMSPACE_SIZE {
			return origin, words, ErrImageOverflow
		}

		mem.Cells[index] = binary.BigEndian.Uint16(scratch)
		index++
		words++
	}
}
