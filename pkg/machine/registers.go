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
	"fmt"
	"strings"
)

var registerNames = [REGISTER_SLOTS]string{
	"R0", "R1", "R2", "R3", "R4", "R5", "R6", "R7", "PC", "COND", "ICOUNT",
}

func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}

	return fmt.Sprintf("Register(%d)", uint8(r))
}

// ParseRegister maps a register name such as "R3" or "pc" to its slot.
func ParseRegister(name string) (Register, bool) {
	for i, known := range registerNames {
		if strings.EqualFold(known, name) {
			return Register(i), true
		}
	}

	return 0, false
}

func (rf *RegisterFile) Get(r Register) uint16 {
	return rf[r]
}

func (rf *RegisterFile) Set(r Register, value uint16) {
	rf[r] = value
}

// Stores value into r and recomputes the condition flags from it
func (rf *RegisterFile) SetWithFlags(r Register, value uint16) {
	rf[r] = value
	rf[REG_COND] = Flags(value)
}

// Flags returns the single condition flag describing value.
func Flags(value uint16) uint16 {
	if value == 0 {
		return FLAG_ZERO
	} else if value>>15 == 1 {
		return FLAG_NEG
	}

	return FLAG_POS
}

func (rf *RegisterFile) Reset() {
	for i := range rf {
		rf[i] = 0x0000
	}

	rf[REG_PC] = MEMSPACE_USER
	rf[REG_COND] = FLAG_ZERO
}
