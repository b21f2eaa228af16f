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

package debugger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lassandro/lc3emu/pkg/machine"
)

var ErrNoSuchPoint = errors.New("Invalid breakpoint or watchpoint number")

func (dbg *Debugger) out() io.Writer {
	if dbg.Out == nil {
		return os.Stdout
	}

	return dbg.Out
}

func (dbg *Debugger) Step(mc *machine.Machine) {
	if dbg.Trace != nil {
		regs := &mc.State.Registers
		pc := regs.Get(machine.REG_PC)
		next := mc.State.Memory.Cells[pc]

		dbg.Trace.WithFields(logrus.Fields{
			"pc":          fmt.Sprintf("%#04x", pc),
			"instruction": fmt.Sprintf("%#04x", next),
			"opcode":      machine.Opcode(next >> 12).String(),
			"cond":        fmt.Sprintf("%#03b", regs.Get(machine.REG_COND)),
			"count":       regs.Get(machine.REG_ICOUNT),
		}).Debug("step")
	}

	if dbg.HandleBreak == nil {
		return
	}

	if dbg.interrupted.Swap(false) {
		dbg.Break = true
	}

	if dbg.Break {
		dbg.HandleBreak(dbg, mc)
		return
	}

	for _, breakpoint := range dbg.Breakpoints {
		if mc.State.Registers.Get(machine.REG_PC) == breakpoint.Addr {
			dbg.HandleBreak(dbg, mc)
			break
		}
	}
}

func (dbg *Debugger) Read(addr uint16, mc *machine.Machine) {
	if dbg.HandleRead == nil {
		return
	}

	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type&ReadWatch == 0 {
			continue
		}

		if addr == watchpoint.Addr {
			dbg.HandleRead(addr, dbg, mc)
			break
		}
	}
}

func (dbg *Debugger) Write(addr uint16, mc *machine.Machine) {
	if dbg.HandleWrite == nil {
		return
	}

	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type&WriteWatch == 0 {
			continue
		}

		if addr == watchpoint.Addr {
			dbg.HandleWrite(addr, dbg, mc)
			break
		}
	}
}

// Interrupt breaks into HandleBreak after the current instruction. It is
// safe to call from another goroutine, such as a signal handler.
func (dbg *Debugger) Interrupt() {
	dbg.interrupted.Store(true)
}

// AddBreakpoint reports false if addr already has a breakpoint.
func (dbg *Debugger) AddBreakpoint(addr uint16) bool {
	for _, breakpoint := range dbg.Breakpoints {
		if breakpoint.Addr == addr {
			return false
		}
	}

	dbg.Breakpoints = append(dbg.Breakpoints, Breakpoint{Addr: addr})
	return true
}

func (dbg *Debugger) RemoveBreakpoint(i int) error {
	if i < 0 || i >= len(dbg.Breakpoints) {
		return ErrNoSuchPoint
	}

	dbg.Breakpoints = append(dbg.Breakpoints[:i], dbg.Breakpoints[i+1:]...)
	return nil
}

// AddWatchpoint reports false if an identical watchpoint exists.
func (dbg *Debugger) AddWatchpoint(addr uint16, wtype WatchpointType) bool {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Addr == addr && watchpoint.Type == wtype {
			return false
		}
	}

	dbg.Watchpoints = append(dbg.Watchpoints, Watchpoint{addr, wtype})
	return true
}

func (dbg *Debugger) RemoveWatchpoint(i int) error {
	if i < 0 || i >= len(dbg.Watchpoints) {
		return ErrNoSuchPoint
	}

	dbg.Watchpoints = append(dbg.Watchpoints[:i], dbg.Watchpoints[i+1:]...)
	return nil
}

func (dbg *Debugger) PrintMem(mc *machine.MachineState, addr, count uint16) {
	w := dbg.out()

	for i := uint16(0); i < count; i++ {
		cell := addr + i

		if i == 0 {
			fmt.Fprintf(w, "\033[1m[%#04x]\033[0m ", cell)
		} else if i%4 == 0 {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "\033[1m[%#04x]\033[0m ", cell)
		}

		result := mc.Memory.Cells[cell]

		if result == 0 {
			fmt.Fprintf(w, "\033[1;30m%#04x\033[0m ", result)
		} else {
			fmt.Fprintf(w, "%#04x ", result)
		}
	}

	fmt.Fprintln(w)
}

func (dbg *Debugger) PrintRegs(mc *machine.MachineState) {
	w := dbg.out()

	for r := machine.REG_R0; r <= machine.REG_R7; r++ {
		fmt.Fprintf(w, "\033[1m%v:\033[0m %#04x\t", r, mc.Registers.Get(r))
		if r == machine.REG_R3 {
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(
		w,
		"\033[1mPC:\033[0m %#04x\t\033[1mCOND:\033[0m %#03b\t"+
			"\033[1mICOUNT:\033[0m %d\n",
		mc.Registers.Get(machine.REG_PC),
		mc.Registers.Get(machine.REG_COND),
		mc.Registers.Get(machine.REG_ICOUNT),
	)
}
