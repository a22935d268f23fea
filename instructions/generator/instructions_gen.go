// This file is part of M6800Front.
//
// M6800Front is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// M6800Front is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with M6800Front.  If not, see <https://www.gnu.org/licenses/>.

//go:build ignore
// +build ignore

//go:generate go run instructions_gen.go

package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"
)

const definitionsCSVFile = "../instructions.csv"
const generatedGoFile = "../table.go"

const leadingBoilerPlate = "// generated code - do not change\n" +
	"//\n" +
	"// instructions.csv is the source for this file. use \"go generate\" from the\n" +
	"// instructions directory to recreate it\n\n" +
	"package instructions\n\n" +
	"// GetDefinitions returns the opcode table for the M6800, indexed by opcode.\n" +
	"// undefined opcodes are nil entries.\n" +
	"func GetDefinitions() []*Definition {\n" +
	"return []*Definition{"

const trailingBoilerPlate = "}\n}"

// operand byte counts per addressing mode. wide Immediate instructions take
// an extra byte
var operandBytes = map[string]int{
	"INHERENT":  0,
	"IMMEDIATE": 1,
	"DIRECT":    1,
	"EXTENDED":  2,
	"INDEXED":   1,
	"RELATIVE":  1,
}

var modeIdentifiers = map[string]string{
	"INHERENT":  "Inherent",
	"IMMEDIATE": "Immediate",
	"DIRECT":    "Direct",
	"EXTENDED":  "Extended",
	"INDEXED":   "Indexed",
	"RELATIVE":  "Relative",
}

var effectIdentifiers = map[string]string{
	"SEQUENTIAL": "Sequential",
	"BRANCH":     "Branch",
	"JUMP":       "Jump",
	"SUBROUTINE": "Subroutine",
	"RETURN":     "Return",
	"INTERRUPT":  "Interrupt",
}

var flagIdentifiers = map[string]string{
	"NONE":       "FlagsNone",
	"ADD":        "FlagsAdd",
	"SUB":        "FlagsSub",
	"LOGIC":      "FlagsLogic",
	"SHIFT":      "FlagsShift",
	"TEST":       "FlagsTest",
	"CLEAR":      "FlagsClear",
	"COMPLEMENT": "FlagsComplement",
	"NZV":        "FlagsNZV",
	"Z":          "FlagsZ",
	"DAA":        "FlagsDAA",
	"CCR":        "FlagsCCR",
	"SETC":       "FlagsSetC",
	"CLRC":       "FlagsClearC",
	"SETV":       "FlagsSetV",
	"CLRV":       "FlagsClearV",
}

// attributes derived from the operation rather than spelled out in the CSV
var wideOperations = map[string]bool{
	"CPX": true, "LDS": true, "STS": true, "LDX": true, "STX": true,
}

var stackOperations = map[string]bool{
	"PSH": true, "PUL": true, "INS": true, "DES": true, "TSX": true,
	"TXS": true, "BSR": true, "JSR": true, "RTS": true, "RTI": true,
	"SWI": true, "WAI": true, "LDS": true, "STS": true,
}

var registerMoveOperations = map[string]bool{
	"TAB": true, "TBA": true, "TAP": true, "TPA": true, "TSX": true, "TXS": true,
}

type row struct {
	opcode       uint8
	mnemonic     string
	operation    string
	accumulator  string
	mode         string
	bytes        int
	cycles       int
	effect       string
	flags        string
	wide         bool
	stack        bool
	registerMove bool
}

func (r row) literal() string {
	return fmt.Sprintf("&Definition{OpCode: %#02x, Mnemonic: %q, Operation: %s, Accumulator: %s, "+
		"AddressingMode: %s, Bytes: %d, Cycles: %d, Effect: %s, Flags: %s, Wide: %t, Stack: %t, RegisterMove: %t},",
		r.opcode, r.mnemonic, r.operation, r.accumulator, r.mode, r.bytes, r.cycles,
		r.effect, r.flags, r.wide, r.stack, r.registerMove)
}

// operationIdentifier turns the CSV operation token into the Operation
// identifier used by the instructions package (NOP -> Nop, etc.)
func operationIdentifier(token string) string {
	return strings.ToUpper(token[:1]) + strings.ToLower(token[1:])
}

func parseCSV() (string, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return "", fmt.Errorf("error opening instruction definitions (%s)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// the effect field is optional, defaulting to SEQUENTIAL
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]row)

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		if !(len(rec) == 7 || len(rec) == 8) {
			return "", fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := 0; i < len(rec); i++ {
			rec[i] = strings.TrimSpace(rec[i])
		}

		newRow := row{}

		// field: opcode
		opcode := rec[0]
		if strings.HasPrefix(opcode, "0x") {
			opcode = opcode[2:]
		}
		n, err := strconv.ParseInt(opcode, 16, 16)
		if err != nil {
			return "", fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		newRow.opcode = uint8(n)

		if _, ok := deftable[newRow.opcode]; ok {
			return "", fmt.Errorf("duplicate opcode (%#02x) [line %d]", newRow.opcode, line)
		}

		// field: mnemonic
		newRow.mnemonic = rec[1]

		// field: operation
		op := strings.ToUpper(rec[2])
		newRow.operation = operationIdentifier(op)
		newRow.wide = wideOperations[op]
		newRow.stack = stackOperations[op]
		newRow.registerMove = registerMoveOperations[op]

		// field: accumulator
		switch rec[3] {
		case "-":
			newRow.accumulator = "AccNone"
		case "A":
			newRow.accumulator = "AccA"
		case "B":
			newRow.accumulator = "AccB"
		default:
			return "", fmt.Errorf("invalid accumulator for %#02x (%s) [line %d]", newRow.opcode, rec[3], line)
		}

		// field: addressing mode. this also fixes the instruction length
		am := strings.ToUpper(rec[4])
		ident, ok := modeIdentifiers[am]
		if !ok {
			return "", fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", newRow.opcode, rec[4], line)
		}
		newRow.mode = ident
		newRow.bytes = 1 + operandBytes[am]
		if am == "IMMEDIATE" && newRow.wide {
			newRow.bytes++
		}

		// field: cycle count
		newRow.cycles, err = strconv.Atoi(rec[5])
		if err != nil {
			return "", fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", newRow.opcode, rec[5], line)
		}

		// field: flag policy
		fl, ok := flagIdentifiers[strings.ToUpper(rec[6])]
		if !ok {
			return "", fmt.Errorf("invalid flag policy for %#02x (%s) [line %d]", newRow.opcode, rec[6], line)
		}
		newRow.flags = fl

		// field: effect category (optional)
		if len(rec) == 7 {
			newRow.effect = "Sequential"
		} else {
			ef, ok := effectIdentifiers[strings.ToUpper(rec[7])]
			if !ok {
				return "", fmt.Errorf("invalid effect for %#02x (%s) [line %d]", newRow.opcode, rec[7], line)
			}
			newRow.effect = ef
		}

		deftable[newRow.opcode] = newRow
	}

	fmt.Printf("%d defined opcodes\n", len(deftable))

	// output the definitions map as a 256 entry slice
	output := ""
	for opcode := 0; opcode < 256; opcode++ {
		def, found := deftable[uint8(opcode)]
		if found {
			output = fmt.Sprintf("%s\n%s", output, def.literal())
		} else {
			output = fmt.Sprintf("%s\nnil,", output)
		}
	}

	return output, nil
}

func main() {
	output, err := parseCSV()
	if err != nil {
		fmt.Println(err)
		os.Exit(10)
	}

	output = fmt.Sprintf("%s%s%s", leadingBoilerPlate, output, trailingBoilerPlate)

	formatted, err := format.Source([]byte(output))
	if err != nil {
		fmt.Println(err)
		os.Exit(10)
	}

	gf, err := os.Create(generatedGoFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(10)
	}
	defer gf.Close()

	if _, err := gf.Write(formatted); err != nil {
		fmt.Println(err)
		os.Exit(10)
	}
}
