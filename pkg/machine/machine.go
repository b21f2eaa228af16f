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
	"io"
	"os"

	"github.com/lassandro/lc3emu/pkg/encoding"
)

// New returns a reset machine wired to console, which may be nil.
func New(console Console) *Machine {
	mc := &Machine{Console: console}
	mc.Reset()
	return mc
}

// Reset clears registers and memory and puts the machine back at the start
// of user space, ready to run.
func (mc *Machine) Reset() {
	mc.State.Registers.Reset()
	mc.State.Memory.Reset()
	mc.State.Status = STATUS_RUNNING

	mc.State.Memory.Keyboard = mc.Console
}

// LoadImage loads one program image on top of the current memory contents
// and returns its origin and length in words.
func (mc *Machine) LoadImage(reader io.Reader) (uint16, int, error) {
	return mc.State.Memory.Load(reader)
}

func (mc *Machine) LoadImageFile(path string) (uint16, int, error) {
	file, err := os.Open(path)

	if err != nil {
		return 0, 0, ErrImageIO{Path: path, Err: err}
	}

	defer file.Close()

	origin, words, err := mc.LoadImage(file)

	if ioerr, ok := err.(ErrImageIO); ok {
		ioerr.Path = path
		err = ioerr
	}

	return origin, words, err
}

func (mc *Machine) Running() bool {
	return mc.State.Status == STATUS_RUNNING
}

// Halt stops the machine after the current instruction.
func (mc *Machine) Halt() {
	mc.State.Status = STATUS_HALTED
}

// Run steps the machine until it halts. A HALT trap ends the run cleanly;
// any other stop is returned as an error.
func (mc *Machine) Run() error {
	for mc.Running() {
		if err := mc.Step(); err != nil {
			return err
		}
	}

	return nil
}

func (mc *Machine) read(addr uint16) (uint16, error) {
	value, err := mc.State.Memory.Read(addr)

	if err != nil {
		return 0, err
	}

	if mc.Debugger != nil {
		mc.Debugger.Read(addr, mc)
	}

	return value, nil
}

func (mc *Machine) write(addr uint16, value uint16) {
	mc.State.Memory.Write(addr, value)

	if mc.Debugger != nil {
		mc.Debugger.Write(addr, mc)
	}
}

func (mc *Machine) fault(err error) error {
	mc.Halt()
	return err
}

// Step fetches, decodes and executes a single instruction.
func (mc *Machine) Step() error {
	if !mc.Running() {
		return ErrHalted
	}

	regs := &mc.State.Registers
	pc := regs.Get(REG_PC)

	instruction, err := mc.read(pc)

	if err != nil {
		return mc.fault(err)
	}

	opcode, ok := Decode(instruction)

	if !ok {
		return mc.fault(ErrInvalidOpcode{PC: pc, Word: instruction})
	}

	regs.Set(REG_PC, pc+1)

	if err := mc.execute(opcode, instruction); err != nil {
		return mc.fault(err)
	}

	regs.Set(REG_ICOUNT, regs.Get(REG_ICOUNT)+1)

	if mc.Debugger != nil {
		mc.Debugger.Step(mc)
	}

	return nil
}

func (mc *Machine) execute(opcode Opcode, instruction uint16) error {
	regs := &mc.State.Registers

	switch opcode {
	// ADD  |0001    |DR   |SR1  |0|00 |SR2   | Register  addition
	// ADD  |0001    |DR   |SR1  |1|imm5      | Immediate addition
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_ADD:
		dest := Register((instruction >> 9) & 0x7)
		src1 := Register((instruction >> 6) & 0x7)

		regs.SetWithFlags(dest, regs.Get(src1)+operand2(regs, instruction))

	// AND  |0101    |DR   |SR1  |0|00 |SR2   | Register  bitwise
	// AND  |0101    |DR   |SR1  |1|imm5      | Immediate bitwise
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_AND:
		dest := Register((instruction >> 9) & 0x7)
		src1 := Register((instruction >> 6) & 0x7)

		regs.SetWithFlags(dest, regs.Get(src1)&operand2(regs, instruction))

	// BR   |0000    |N|Z|P|PCoffset9         | Conditional branch
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_BR:
		flags := (instruction >> 9) & 0x7

		if flags&regs.Get(REG_COND) != 0 {
			regs.Set(REG_PC, pcOffset(regs, instruction, 9))
		}

	// JMP  |1100    |000  |BaseR|000000      | Jump
	// RET  |1100    |000  |111  |000000      | Return
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_JMP:
		base := Register((instruction >> 6) & 0x7)

		regs.Set(REG_PC, regs.Get(base))

	// JSR  |0100    |1|PCoffset11            | Jump to subroutine
	// JSRR |0100    |0|00 |BaseR|000000      | Jump to subroutine register
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_JSR:
		// Read the base first, JSRR R7 jumps to the old R7
		target := regs.Get(Register((instruction >> 6) & 0x7))

		if (instruction>>11)&0x1 == 1 {
			target = pcOffset(regs, instruction, 11)
		}

		regs.Set(REG_R7, regs.Get(REG_PC))
		regs.Set(REG_PC, target)

	// LD   |0010    |DR   |PCoffset9         | Load
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LD:
		dest := Register((instruction >> 9) & 0x7)

		value, err := mc.read(pcOffset(regs, instruction, 9))

		if err != nil {
			return err
		}

		regs.SetWithFlags(dest, value)

	// LDI  |1010    |DR   |PCoffset9         | Load indirect
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LDI:
		dest := Register((instruction >> 9) & 0x7)

		addr, err := mc.read(pcOffset(regs, instruction, 9))

		if err != nil {
			return err
		}

		value, err := mc.read(addr)

		if err != nil {
			return err
		}

		regs.SetWithFlags(dest, value)

	// LDR  |0110    |DR   |BaseR|offset6     | Load base+offset
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LDR:
		dest := Register((instruction >> 9) & 0x7)

		value, err := mc.read(baseOffset(regs, instruction))

		if err != nil {
			return err
		}

		regs.SetWithFlags(dest, value)

	// LEA  |1110    |DR   |PCoffset9         | Load effective address
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LEA:
		dest := Register((instruction >> 9) & 0x7)

		regs.SetWithFlags(dest, pcOffset(regs, instruction, 9))

	// NOT  |1001    |DR   |SR   |1|11111     | Bitwise complement
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_NOT:
		dest := Register((instruction >> 9) & 0x7)
		src := Register((instruction >> 6) & 0x7)

		regs.SetWithFlags(dest, ^regs.Get(src))

	// ST   |0011    |SR   |PCoffset9         | Store
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_ST:
		src := Register((instruction >> 9) & 0x7)

		mc.write(pcOffset(regs, instruction, 9), regs.Get(src))

	// STI  |1011    |SR   |PCoffset9         | Store indirect
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_STI:
		src := Register((instruction >> 9) & 0x7)

		addr, err := mc.read(pcOffset(regs, instruction, 9))

		if err != nil {
			return err
		}

		mc.write(addr, regs.Get(src))

	// STR  |0111    |SR   |BaseR|offset6     | Store base+offset
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_STR:
		src := Register((instruction >> 9) & 0x7)

		mc.write(baseOffset(regs, instruction), regs.Get(src))

	// TRAP |1111    |0000   |trapvect8       | System call
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_TRAP:
		return mc.trap(instruction & 0xFF)

	default:
		return ErrInvalidOpcode{PC: regs.Get(REG_PC) - 1, Word: instruction}
	}

	return nil
}

// Second ADD/AND operand, either SR2 or the sign extended imm5
func operand2(regs *RegisterFile, instruction uint16) uint16 {
	if (instruction>>5)&0x1 == 1 {
		return encoding.SignExtend(instruction&0x1F, 5)
	}

	return regs.Get(Register(instruction & 0x7))
}

// PC (already incremented) plus the sign extended low bits of instruction
func pcOffset(regs *RegisterFile, instruction uint16, bits uint16) uint16 {
	return regs.Get(REG_PC) + encoding.SignExtend(instruction, bits)
}

// BaseR plus the sign extended offset6
func baseOffset(regs *RegisterFile, instruction uint16) uint16 {
	base := Register((instruction >> 6) & 0x7)
	return regs.Get(base) + encoding.SignExtend(instruction&0x3F, 6)
}
