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

func (mc *Machine) trap(vector uint16) error {
	switch vector {
	case TRAP_GETC, TRAP_OUT, TRAP_PUTS, TRAP_IN, TRAP_PUTSP:
		if mc.Console == nil {
			return ErrNoConsole
		}
	}

	regs := &mc.State.Registers

	switch vector {
	// Read a single character into R0, no echo
	case TRAP_GETC:
		key, err := mc.getc()

		if err != nil {
			return err
		}

		regs.Set(REG_R0, uint16(key))

	// Write the character in R0[7:0]
	case TRAP_OUT:
		if err := mc.putc(byte(regs.Get(REG_R0) & 0xFF)); err != nil {
			return err
		}

		return mc.flush()

	// Write the string of one character per word starting at R0
	case TRAP_PUTS:
		for addr := regs.Get(REG_R0); mc.State.Memory.Cells[addr] != 0; addr++ {
			if err := mc.putc(byte(mc.State.Memory.Cells[addr] & 0xFF)); err != nil {
				return err
			}
		}

		return mc.flush()

	// Prompt for a character, echo it and store it in R0
	case TRAP_IN:
		for i := 0; i < len(PROMPT_IN); i++ {
			if err := mc.putc(PROMPT_IN[i]); err != nil {
				return err
			}
		}

		if err := mc.flush(); err != nil {
			return err
		}

		key, err := mc.getc()

		if err != nil {
			return err
		}

		if err := mc.putc(key); err != nil {
			return err
		}

		if err := mc.flush(); err != nil {
			return err
		}

		regs.SetWithFlags(REG_R0, uint16(key))

	// Write the string of two characters per word starting at R0, low byte
	// first
	case TRAP_PUTSP:
		for addr := regs.Get(REG_R0); mc.State.Memory.Cells[addr] != 0; addr++ {
			word := mc.State.Memory.Cells[addr]

			if err := mc.putc(byte(word & 0xFF)); err != nil {
				return err
			}

			if high := byte(word >> 8); high != 0 {
				if err := mc.putc(high); err != nil {
					return err
				}
			}
		}

		return mc.flush()

	case TRAP_HALT:
		if mc.Console != nil {
			for i := 0; i < len(MESSAGE_HALT); i++ {
				if err := mc.putc(MESSAGE_HALT[i]); err != nil {
					return err
				}
			}

			if err := mc.flush(); err != nil {
				return err
			}
		}

		mc.Halt()

	default:
		return ErrUnimplementedTrap{
			PC:     regs.Get(REG_PC) - 1,
			Vector: vector,
		}
	}

	return nil
}

func (mc *Machine) getc() (byte, error) {
	key, err := mc.Console.ReadByte()

	if err != nil {
		return 0, ErrConsole{Op: "read", Err: err}
	}

	return key, nil
}

func (mc *Machine) putc(c byte) error {
	if err := mc.Console.WriteByte(c); err != nil {
		return ErrConsole{Op: "write", Err: err}
	}

	return nil
}

func (mc *Machine) flush() error {
	if err := mc.Console.Flush(); err != nil {
		return ErrConsole{Op: "flush", Err: err}
	}

	return nil
}
