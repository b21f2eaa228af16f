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

// Register names one of the slots of a RegisterFile.
type Register uint8

type Opcode uint8

type Status uint8

type RegisterFile [REGISTER_SLOTS]uint16

// Keyboard is the input half of a Console. ByteAvailable must not block.
type Keyboard interface {
	ByteAvailable() bool
	ReadByte() (byte, error)
}

// Console is the character device behind the trap routines and the
// memory-mapped keyboard registers. It is expected to already deliver
// single unbuffered, unechoed bytes.
type Console interface {
	Keyboard
	WriteByte(c byte) error
	Flush() error
}

type Memory struct {
	Cells    [MEMSPACE_SIZE]uint16
	Keyboard Keyboard
}

type MachineState struct {
	Registers RegisterFile
	Memory    Memory
	Status    Status
}

type MachineDebugger interface {
	Step(mc *Machine)
	Read(addr uint16, mc *Machine)
	Write(addr uint16, mc *Machine)
}

type Machine struct {
	Console  Console
	State    MachineState
	Debugger MachineDebugger
}
