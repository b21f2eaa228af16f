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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/sirupsen/logrus"

	"github.com/lassandro/lc3emu/pkg/console"
	"github.com/lassandro/lc3emu/pkg/debugger"
	"github.com/lassandro/lc3emu/pkg/encoding"
	"github.com/lassandro/lc3emu/pkg/machine"
)

var commands = []prompt.Suggest{
	{Text: "break", Description: "break [add 0x####|list|remove #|clear]"},
	{Text: "watch", Description: "watch [add 0x#### r|w|rw|list|remove #|clear]"},
	{Text: "register", Description: "register [R#|PC|COND 0x####]"},
	{Text: "memory", Description: "memory [0x####|#] [#]"},
	{Text: "set", Description: "set 0x#### 0x####"},
	{Text: "jump", Description: "jump 0x####"},
	{Text: "next", Description: "Executes one instruction"},
	{Text: "continue", Description: "Runs until a breakpoint or watchpoint"},
	{Text: "reset", Description: "Clears the machine and reloads the images"},
	{Text: "quit", Description: "Halts the machine"},
	{Text: "help", Description: "Lists commands"},
}

type repl struct {
	term    *console.Terminal
	paths   []string
	skip    bool
	lastcmd []string
	history []string
}

func newREPL(term *console.Terminal, paths []string, skip bool) *repl {
	return &repl{term: term, paths: paths, skip: skip}
}

func (r *repl) complete(d prompt.Document) []prompt.Suggest {
	if strings.Contains(d.TextBeforeCursor(), " ") {
		return []prompt.Suggest{}
	}

	return prompt.FilterHasPrefix(commands, d.GetWordBeforeCursor(), true)
}

func (r *repl) handleBreak(dbg *debugger.Debugger, mc *machine.Machine) {
	if !dbg.Break {
		fmt.Println()
		fmt.Println("Program stopped")
		dbg.PrintMem(&mc.State, mc.State.Registers.Get(machine.REG_PC), 4)
	}

	r.loop(dbg, mc)
}

func (r *repl) handleRead(addr uint16, dbg *debugger.Debugger, mc *machine.Machine) {
	fmt.Println()
	fmt.Printf("Program stopped reading [%#04x]\n", addr)
	dbg.PrintMem(&mc.State, addr, 1)
	r.loop(dbg, mc)
}

func (r *repl) handleWrite(addr uint16, dbg *debugger.Debugger, mc *machine.Machine) {
	fmt.Println()
	fmt.Printf("Program stopped writing [%#04x]\n", addr)
	dbg.PrintMem(&mc.State, addr, 1)
	r.loop(dbg, mc)
}

func (r *repl) loop(dbg *debugger.Debugger, mc *machine.Machine) {
	if err := r.term.Restore(); err != nil {
		logrus.WithError(err).Error("failed to restore terminal")
	}

	defer r.term.EnterRaw()

	for {
		line := prompt.Input(
			"(dbg) ",
			r.complete,
			prompt.OptionHistory(r.history),
			prompt.OptionPrefixTextColor(prompt.DarkGray),
		)

		args := strings.Fields(line)

		if len(args) == 0 {
			if len(r.lastcmd) == 0 {
				continue
			}
			args = r.lastcmd
		} else {
			r.lastcmd = args
			r.history = append(r.history, line)
		}

		cmd := args[0]
		args = args[1:]

		switch cmd {
		case "b", "bp", "break", "breakpoint":
			debugBreak(dbg, args)

		case "w", "wp", "watch", "watchpoint":
			debugWatch(dbg, args)

		case "r", "reg", "register", "registers":
			debugReg(dbg, &mc.State, args)

		case "m", "mem", "memory":
			debugMemory(dbg, &mc.State, args)

		case "set":
			debugSet(dbg, &mc.State, args)

		case "j", "jmp", "jump":
			debugJump(&mc.State, args)

		case "c", "continue":
			dbg.Break = false
			return

		case "n", "next":
			dbg.Break = true
			return

		case "q", "quit", "exit":
			mc.Halt()
			return

		case "reset":
			mc.Reset()

			if err := loadImages(mc, r.paths, r.skip); err != nil {
				fmt.Println(err)
			}

			dbg.PrintRegs(&mc.State)

		case "h", "help":
			for _, command := range commands {
				fmt.Printf("%-10s %s\n", command.Text, command.Description)
			}

		default:
			fmt.Printf("error: '%s' is not a valid command\n", cmd)
		}
	}
}

func debugBreak(dbg *debugger.Debugger, args []string) {
	const usage = "break [add|list|remove|clear]"

	if len(args) == 0 {
		args = append(args, "l")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		if len(args) != 1 {
			fmt.Println("break add [0x####]")
			return
		}

		addr, err := encoding.DecodeHex(args[0])

		if err != nil {
			fmt.Println(err)
			return
		}

		if dbg.AddBreakpoint(addr) {
			fmt.Printf("Breakpoint added [%#04x]\n", addr)
		}

	case "l", "ls", "list":
		for i, breakpoint := range dbg.Breakpoints {
			fmt.Printf("#%d: %#04x\n", i, breakpoint.Addr)
		}

	case "r", "rm", "remove":
		if len(args) != 1 {
			fmt.Println("break remove [#]")
			return
		}

		i, err := strconv.Atoi(args[0])

		if err != nil {
			fmt.Println(err)
			return
		}

		if err := dbg.RemoveBreakpoint(i); err != nil {
			fmt.Println(err)
			return
		}

		fmt.Printf("Breakpoint removed [%d]\n", i)

	case "clear":
		dbg.Breakpoints = nil
		fmt.Println("Breakpoints reset")

	default:
		fmt.Println(usage)
	}
}

func debugWatch(dbg *debugger.Debugger, args []string) {
	const usage = "watch [add|list|remove|clear]"

	if len(args) == 0 {
		args = append(args, "l")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		const usage = "watch add [0x####] [read|write|readwrite]"

		if len(args) != 2 {
			fmt.Println(usage)
			return
		}

		addr, err := encoding.DecodeHex(args[0])

		if err != nil {
			fmt.Println(err)
			return
		}

		var wtype debugger.WatchpointType

		switch args[1] {
		case "r", "read":
			wtype = debugger.ReadWatch
		case "w", "write":
			wtype = debugger.WriteWatch
		case "rw", "readwrite":
			wtype = debugger.ReadWriteWatch
		default:
			fmt.Println(usage)
			return
		}

		if dbg.AddWatchpoint(addr, wtype) {
			fmt.Printf("Watchpoint added [%#04x] (%v)\n", addr, wtype)
		}

	case "l", "ls", "list":
		for i, watchpoint := range dbg.Watchpoints {
			fmt.Printf("#%d: %#04x (%v)\n", i, watchpoint.Addr, watchpoint.Type)
		}

	case "r", "rm", "remove":
		if len(args) != 1 {
			fmt.Println("watch remove [#]")
			return
		}

		i, err := strconv.Atoi(args[0])

		if err != nil {
			fmt.Println(err)
			return
		}

		if err := dbg.RemoveWatchpoint(i); err != nil {
			fmt.Println(err)
			return
		}

		fmt.Printf("Watchpoint removed [%d]\n", i)

	case "clear":
		dbg.Watchpoints = nil
		fmt.Println("Watchpoints reset")

	default:
		fmt.Println(usage)
	}
}

func debugReg(dbg *debugger.Debugger, mc *machine.MachineState, args []string) {
	const usage = "register [R#|PC|COND] [0x####]"

	if len(args) == 0 {
		dbg.PrintRegs(mc)
		return
	}

	if len(args) != 2 {
		fmt.Println(usage)
		return
	}

	reg, ok := machine.ParseRegister(args[0])

	if !ok {
		fmt.Println("Invalid register")
		return
	}

	value, err := encoding.DecodeHex(args[1])

	if err != nil {
		fmt.Println(err)
		return
	}

	mc.Registers.Set(reg, value)
	fmt.Printf("\033[1m%v:\033[0m %#04x\n", reg, value)
}

func debugMemory(dbg *debugger.Debugger, mc *machine.MachineState, args []string) {
	const usage = "memory [0x####|#] [#]"

	if len(args) > 2 {
		fmt.Println(usage)
		return
	}

	var size uint16 = 1
	var addr uint16 = mc.Registers.Get(machine.REG_PC)

	if len(args) > 0 {
		if value, err := encoding.DecodeHex(args[0]); err == nil {
			addr = value
		} else if value, err := encoding.DecodeInt(args[0]); err == nil {
			size = uint16(value)
		} else {
			fmt.Println(err)
			return
		}
	}

	if len(args) > 1 {
		value, err := encoding.DecodeInt(args[1])

		if err != nil {
			fmt.Println(err)
			return
		}

		size = uint16(value)
	}

	dbg.PrintMem(mc, addr, size)
}

func debugSet(dbg *debugger.Debugger, mc *machine.MachineState, args []string) {
	if len(args) != 2 {
		fmt.Println("set [0x####] [0x####]")
		return
	}

	addr, err := encoding.DecodeHex(args[0])

	if err != nil {
		fmt.Println(err)
		return
	}

	value, err := encoding.DecodeWord(args[1])

	if err != nil {
		fmt.Println(err)
		return
	}

	mc.Memory.Write(addr, value)
	dbg.PrintMem(mc, addr, 1)
}

func debugJump(mc *machine.MachineState, args []string) {
	if len(args) != 1 {
		fmt.Println("jump [0x####]")
		return
	}

	addr, err := encoding.DecodeHex(args[0])

	if err != nil {
		fmt.Println(err)
		return
	}

	mc.Registers.Set(machine.REG_PC, addr)
	fmt.Printf("\033[1mPC:\033[0m %#04x\n", addr)
}
