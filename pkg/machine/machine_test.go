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

package machine_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lassandro/lc3emu/pkg/console"
	"github.com/lassandro/lc3emu/pkg/machine"
)

type testMachineState struct {
	Registers [8]uint16
	Program   uint16
	Condition uint16
	Memory    map[uint16]uint16
}

type testCase struct {
	Name     string
	Steps    uint
	Keyboard string
	Display  string
	Halted   bool
	Input    testMachineState
	Output   testMachineState
}

func newTestMachine(test *testCase) (*machine.Machine, *bytes.Buffer) {
	var display bytes.Buffer

	mc := machine.New(
		console.NewStream(strings.NewReader(test.Keyboard), &display),
	)

	for i, value := range test.Input.Registers {
		mc.State.Registers.Set(machine.Register(i), value)
	}

	mc.State.Registers.Set(machine.REG_PC, test.Input.Program)

	if test.Input.Condition != 0 {
		mc.State.Registers.Set(machine.REG_COND, test.Input.Condition)
	}

	for addr, value := range test.Input.Memory {
		mc.State.Memory.Cells[addr] = value
	}

	return mc, &display
}

func testMachineSuccess(t *testing.T, test *testCase) {
	if test.Input.Memory == nil && test.Output.Memory == nil {
		panic("No memory maps provided")
	}

	mc, display := newTestMachine(test)

	if test.Steps == 0 {
		test.Steps = 1
	}

	for i := uint(0); i < test.Steps; i++ {
		assert.NoError(t, mc.Step(), "step %d", i)
	}

	for i := 0; i < 8; i++ {
		want := test.Output.Registers[i]
		have := mc.State.Registers.Get(machine.Register(i))
		if have != want {
			t.Errorf(
				"Register mismatch"+
					"\nwant:%#04x (test.Output.Registers[%d])\nhave:%#04x",
				want,
				i,
				have,
			)
		}
	}

	if have := mc.State.Registers.Get(machine.REG_PC); have != test.Output.Program {
		t.Errorf(
			"Program register mismatch"+
				"\nwant:%#04x (test.Output.Program)\nhave:%#04x",
			test.Output.Program,
			have,
		)
	}

	wantCondition := test.Output.Condition
	if wantCondition == 0 {
		wantCondition = machine.FLAG_ZERO
	}

	if have := mc.State.Registers.Get(machine.REG_COND); have != wantCondition {
		t.Errorf(
			"Condition flag mismatch"+
				"\nwant:%#03b (test.Output.Condition)\nhave:%#03b",
			wantCondition,
			have,
		)
	}

	assert.Equal(t, test.Halted, !mc.Running(), "halted")

	for i, value := range mc.State.Memory.Cells {
		input, expectingInput := test.Input.Memory[uint16(i)]
		output, expectingOutput := test.Output.Memory[uint16(i)]

		if expectingOutput {
			// Value was supposed to change
			if value != output {
				t.Fatalf(
					"Memory value mismatch"+
						"\nwant:%#02x (test.Output.Memory[%#04x])\nhave:%#02x",
					output,
					i,
					value,
				)
			}
		} else if expectingInput {
			// Value was supposed to remain
			if value != input {
				t.Fatalf(
					"Memory value mismatch"+
						"\nwant:%#02x (test.Input.Memory[%#04x])\nhave:%#02x",
					input,
					i,
					value,
				)
			}
		} else if value != 0 {
			// Value was expected to remain unitialized
			t.Fatalf(
				"Memory unexpectedly changed"+
					"\nwant:0x00 (test.Output.Memory[%#04x])\nhave:%#02x",
				i,
				value,
			)
		}
	}

	assert.Equal(t, test.Display, display.String(), "display")
}

func testSuccess(t *testing.T, tests []testCase) {
	t.Run("Success", func(t *testing.T) {
		for _, test := range tests {
			t.Run(test.Name, func(t *testing.T) {
				testMachineSuccess(t, &test)
			})
		}
	})
}

// ADD  |0001    |DR   |SR1  |0|00 |SR2   | Register  addition
// ADD  |0001    |DR   |SR1  |1|imm5      | Immediate addition
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestAdd(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "ADD SR2 Negative",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0xCAFE, // DR
					1: 0x0001, // SR1
					2: 0x8001, // SR2
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0001_000_001_000_010,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b100,
				Registers: [8]uint16{
					0: 0x8002, // DR
					1: 0x0001, // SR1
					2: 0x8001, // SR2
				},
			},
		},
		{
			Name: "ADD Overflow SR2 Zero",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0xCAFE, // DR
					1: 0xFFFF, // SR1
					2: 0x0001, // SR2
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0001_000_001_000_010,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b010,
				Registers: [8]uint16{
					0: 0x0000, // DR
					1: 0xFFFF, // SR1
					2: 0x0001, // SR2
				},
			},
		},
		{
			Name: "ADD SR2 Positive",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0xCAFE, // DR
					1: 0x00FF, // SR1
					7: 0x0001, // SR2
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0001_000_001_000_111,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b001,
				Registers: [8]uint16{
					0: 0x0100, // DR
					1: 0x00FF, // SR1
					7: 0x0001, // SR2
				},
			},
		},
		{
			Name: "ADD imm5 Negative",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0xCAFE, // DR
					1: 0x0001, // SR1
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0001_000_001_1_11101,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b100,
				Registers: [8]uint16{
					0: 0xFFFE, // DR (1 + -3)
					1: 0x0001, // SR1
				},
			},
		},
		{
			Name: "ADD Overflow imm5 Zero",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0xCAFE, // DR
					1: 0xFFF1, // SR1
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0001_000_001_1_01111,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b010,
				Registers: [8]uint16{
					0: 0x0000, // DR
					1: 0xFFF1, // SR1
				},
			},
		},
		{
			Name: "ADD imm5 Same Register",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					3: 0x0010, // DR, SR1
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0001_011_011_1_00010,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b001,
				Registers: [8]uint16{
					3: 0x0012, // DR, SR1
				},
			},
		},
	})
}

// AND  |0101    |DR   |SR1  |0|00 |SR2   | Register  bitwise
// AND  |0101    |DR   |SR1  |1|imm5      | Immediate bitwise
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestAnd(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "AND SR2 Negative",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0xCAFE, // DR
					1: 0xFF00, // SR1
					6: 0x8F0F, // SR2
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0101_000_001_000_110,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b100,
				Registers: [8]uint16{
					0: 0x8F00, // DR
					1: 0xFF00, // SR1
					6: 0x8F0F, // SR2
				},
			},
		},
		{
			Name: "AND SR2 Zero",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0xCAFE, // DR
					1: 0x00F0, // SR1
					2: 0x000F, // SR2
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0101_000_001_000_010,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b010,
				Registers: [8]uint16{
					0: 0x0000, // DR
					1: 0x00F0, // SR1
					2: 0x000F, // SR2
				},
			},
		},
		{
			Name: "AND imm5 Negative",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0xCAFE, // DR
					1: 0x8001, // SR1
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0101_000_001_1_10000,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b100,
				Registers: [8]uint16{
					0: 0x8000, // DR
					1: 0x8001, // SR1
				},
			},
		},
		{
			Name: "AND imm5 Clear",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					2: 0xBEEF, // DR, SR1
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0101_010_010_1_00000,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b010,
			},
		},
		{
			Name: "AND imm5 Positive",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0xCAFE, // DR
					1: 0x00FF, // SR1
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0101_000_001_1_01010,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b001,
				Registers: [8]uint16{
					0: 0x000A, // DR
					1: 0x00FF, // SR1
				},
			},
		},
	})
}

// BR   |0000    |N|Z|P|PCoffset9         | Conditional branch
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestBranch(t *testing.T) {
	tests := []testCase{
		{
			Name: "BR Never",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[uint16]uint16{
					0x3000: 0b0000_000_000000000,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b010,
			},
		},
		{
			Name: "BRnzp Forwards",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[uint16]uint16{
					0x3000: 0b0000_111_000000100,
				},
			},
			Output: testMachineState{
				Program:   0x3005,
				Condition: 0b010,
			},
		},
		{
			Name: "BRnzp Backwards",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[uint16]uint16{
					0x3000: 0b0000_111_111111100,
				},
			},
			Output: testMachineState{
				Program:   0x2FFD,
				Condition: 0b010,
			},
		},
	}

	masks := []struct {
		Name string
		Mask uint16
	}{
		{"n", 0b100}, {"z", 0b010}, {"p", 0b001},
		{"nz", 0b110}, {"zp", 0b011}, {"np", 0b101},
	}

	for _, mask := range masks {
		for _, condition := range []uint16{0b100, 0b010, 0b001} {
			program := uint16(0x3001)
			outcome := "False"

			if mask.Mask&condition != 0 {
				program = 0x3011
				outcome = "True"
			}

			tests = append(tests, testCase{
				Name: "BR" + mask.Name + " " + outcome + " " + flagName(condition),
				Input: testMachineState{
					Program:   0x3000,
					Condition: condition,
					Memory: map[uint16]uint16{
						0x3000: mask.Mask<<9 | 0x10,
					},
				},
				Output: testMachineState{
					Program:   program,
					Condition: condition,
				},
			})
		}
	}

	testSuccess(t, tests)
}

func flagName(condition uint16) string {
	switch condition {
	case machine.FLAG_NEG:
		return "N"
	case machine.FLAG_ZERO:
		return "Z"
	default:
		return "P"
	}
}

// JMP  |1100    |000  |BaseR|000000      | Jump
// RET  |1100    |000  |111  |000000      | Return
// JSR  |0100    |1|PCoffset11            | Jump to subroutine
// JSRR |0100    |0|00 |BaseR|000000      | Jump to subroutine register
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestJump(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "JMP",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					2: 0x4000, // BaseR
				},
				Memory: map[uint16]uint16{
					0x3000: 0b1100_000_010_000000,
				},
			},
			Output: testMachineState{
				Program: 0x4000,
				Registers: [8]uint16{
					2: 0x4000, // BaseR
				},
			},
		},
		{
			Name: "RET",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					7: 0x5000, // Return address
				},
				Memory: map[uint16]uint16{
					0x3000: 0b1100_000_111_000000,
				},
			},
			Output: testMachineState{
				Program: 0x5000,
				Registers: [8]uint16{
					7: 0x5000, // Return address
				},
			},
		},
		{
			Name: "JSR Forwards",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[uint16]uint16{
					0x3000: 0b0100_1_00000010000,
				},
			},
			Output: testMachineState{
				Program: 0x3011,
				Registers: [8]uint16{
					7: 0x3001,
				},
			},
		},
		{
			Name: "JSR Backwards",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[uint16]uint16{
					0x3000: 0b0100_1_11111111110,
				},
			},
			Output: testMachineState{
				Program: 0x2FFF,
				Registers: [8]uint16{
					7: 0x3001,
				},
			},
		},
		{
			Name: "JSRR",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					3: 0x6000, // BaseR
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0100_0_00_011_000000,
				},
			},
			Output: testMachineState{
				Program: 0x6000,
				Registers: [8]uint16{
					3: 0x6000, // BaseR
					7: 0x3001,
				},
			},
		},
		{
			Name: "JSRR R7",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					7: 0x6000, // BaseR
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0100_0_00_111_000000,
				},
			},
			Output: testMachineState{
				Program: 0x6000,
				Registers: [8]uint16{
					7: 0x3001,
				},
			},
		},
		{
			Name:  "JSR then RET",
			Steps: 2,
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[uint16]uint16{
					0x3000: 0b0100_1_00000000100, // JSR #4
					0x3005: 0b1100_000_111_000000, // RET
				},
			},
			Output: testMachineState{
				Program: 0x3001,
				Registers: [8]uint16{
					7: 0x3001,
				},
			},
		},
	})
}

func TestLoadStore(t *testing.T) {
	testSuccess(t, []testCase{
		// LD   |0010    |DR   |PCoffset9         | Load
		{
			Name: "LD Backwards",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[uint16]uint16{
					0x2FF1: 0x0042,
					0x3000: 0b0010_001_111110000,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b001,
				Registers: [8]uint16{
					1: 0x0042,
				},
			},
		},
		{
			Name: "LD Negative",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[uint16]uint16{
					0x3000: 0b0010_000_000000001,
					0x3002: 0x8000,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b100,
				Registers: [8]uint16{
					0: 0x8000,
				},
			},
		},
		{
			Name: "LD Zero",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0xDEAD,
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0010_000_000000001,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b010,
			},
		},
		// LDI  |1010    |DR   |PCoffset9         | Load indirect
		{
			Name: "LDI Positive",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[uint16]uint16{
					0x3000: 0b1010_010_000000100,
					0x3005: 0x4000,
					0x4000: 0x002A,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b001,
				Registers: [8]uint16{
					2: 0x002A,
				},
			},
		},
		{
			Name: "LDI Negative",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[uint16]uint16{
					// Points back at itself, 0xA5FF
					0x3000: 0b1010_010_111111111,
					0xA5FF: 0xFFFF,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b100,
				Registers: [8]uint16{
					2: 0xFFFF,
				},
			},
		},
		// LDR  |0110    |DR   |BaseR|offset6     | Load base+offset
		{
			Name: "LDR Backwards",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					4: 0x4010, // BaseR
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0110_011_100_111110,
					0x400E: 0x7FFF,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b001,
				Registers: [8]uint16{
					3: 0x7FFF,
					4: 0x4010, // BaseR
				},
			},
		},
		// LEA  |1110    |DR   |PCoffset9         | Load effective address
		{
			Name: "LEA Positive",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[uint16]uint16{
					0x3000: 0b1110_101_000000011,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b001,
				Registers: [8]uint16{
					5: 0x3004,
				},
			},
		},
		{
			Name: "LEA Negative Address",
			Input: testMachineState{
				Program: 0x8000,
				Memory: map[uint16]uint16{
					0x8000: 0b1110_000_000000000,
				},
			},
			Output: testMachineState{
				Program:   0x8001,
				Condition: 0b100,
				Registers: [8]uint16{
					0: 0x8001,
				},
			},
		},
		// ST   |0011    |SR   |PCoffset9         | Store
		{
			Name: "ST Backwards",
			Input: testMachineState{
				Program:   0x3000,
				Condition: 0b001,
				Registers: [8]uint16{
					6: 0xBEEF, // SR
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0011_110_111111110,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b001,
				Registers: [8]uint16{
					6: 0xBEEF, // SR
				},
				Memory: map[uint16]uint16{
					0x2FFF: 0xBEEF,
				},
			},
		},
		// STI  |1011    |SR   |PCoffset9         | Store indirect
		{
			Name: "STI",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					1: 0x1234, // SR
				},
				Memory: map[uint16]uint16{
					0x3000: 0b1011_001_000000001,
					0x3002: 0x5000,
				},
			},
			Output: testMachineState{
				Program: 0x3001,
				Registers: [8]uint16{
					1: 0x1234, // SR
				},
				Memory: map[uint16]uint16{
					0x5000: 0x1234,
				},
			},
		},
		// STR  |0111    |SR   |BaseR|offset6     | Store base+offset
		{
			Name: "STR Base Register",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0x00AB, // SR
					5: 0x6000, // BaseR
				},
				Memory: map[uint16]uint16{
					0x3000: 0b0111_000_101_000011,
				},
			},
			Output: testMachineState{
				Program: 0x3001,
				Registers: [8]uint16{
					0: 0x00AB, // SR
					5: 0x6000, // BaseR
				},
				Memory: map[uint16]uint16{
					0x6003: 0x00AB,
				},
			},
		},
	})
}

// NOT  |1001    |DR   |SR   |1|11111     | Bitwise complement
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestNot(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "NOT SR Negative",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					1: 0x00FF, // SR
				},
				Memory: map[uint16]uint16{
					0x3000: 0b1001_000_001_1_11111,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b100,
				Registers: [8]uint16{
					0: 0xFF00, // DR
					1: 0x00FF, // SR
				},
			},
		},
		{
			Name: "NOT SR Zero",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					1: 0xFFFF, // SR
				},
				Memory: map[uint16]uint16{
					0x3000: 0b1001_000_001_1_11111,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b010,
				Registers: [8]uint16{
					1: 0xFFFF, // SR
				},
			},
		},
		{
			Name: "NOT SR Positive",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					1: 0x8000, // SR
				},
				Memory: map[uint16]uint16{
					0x3000: 0b1001_000_001_1_11111,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b001,
				Registers: [8]uint16{
					0: 0x7FFF, // DR
					1: 0x8000, // SR
				},
			},
		},
	})
}

func TestKeyboard(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:     "Read Keyboard",
			Steps:    2,
			Keyboard: "foobar",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0xDEAD, // LDR[0] DR
					1: 0xFE00, // LDR[0] BaseR (Keyboard Status Register)
					2: 0xDEAD, // LDR[1] DR
					3: 0xFE02, // LDR[1] BaseR (Keyboard Data Register)
				},
				Memory: map[uint16]uint16{
					// LDR R0 R1 0x0
					0x3000: 0b0110_000_001_000000,
					// LDR R2 R3 0x0
					0x3001: 0b0110_010_011_000000,
				},
			},
			Output: testMachineState{
				Program:   0x3002,
				Condition: 0b001, // Positive LDR[1] DR (#102)
				Registers: [8]uint16{
					0: 0x8000, // LDR[0] DR (KBSR: 1 << 15)
					1: 0xFE00, // LDR[0] BaseR (Keyboard Status Register)
					2: 0x0066, // LDR[1] DR (KBDR: 'f', #102)
					3: 0xFE02, // LDR[1] BaseR (Keyboard Data Register)
				},
				Memory: map[uint16]uint16{
					// KBSR: 1 << 15
					0xFE00: 0x8000,
					// KBDR: 'f', #102
					0xFE02: 0x0066,
				},
			},
		},
		{
			Name: "Read Keyboard Empty",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0xDEAD,
				},
				Memory: map[uint16]uint16{
					// LDI R0 (KBSR)
					0x3000: 0b1010_000_000000000,
					0x3001: 0xFE00,
					// Stale KBSR
					0xFE00: 0x8000,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b010,
				Memory: map[uint16]uint16{
					0xFE00: 0x0000,
				},
			},
		},
	})
}
