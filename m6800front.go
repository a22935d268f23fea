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

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/mossley/m6800front/decoder"
	"github.com/mossley/m6800front/disassembly"
	"github.com/mossley/m6800front/explore"
	"github.com/mossley/m6800front/il"
	"github.com/mossley/m6800front/lifter"
	"github.com/mossley/m6800front/logger"
	"github.com/mossley/m6800front/modalflag"
	"github.com/mossley/m6800front/statsview"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("DISASM", "LIFT", "EXPLORE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		os.Exit(2)
	}

	switch md.Mode() {
	case "DISASM":
		err = disasm(md)
	case "LIFT":
		err = lift(md)
	case "EXPLORE":
		err = explorer(md)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		os.Exit(2)
	}
}

// parseOrigin accepts the forms 4096, 0x1000 and $1000.
func parseOrigin(s string) (uint16, error) {
	s = strings.Replace(s, "$", "0x", 1)
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("unrecognised origin address (%s)", s)
	}
	return uint16(v), nil
}

// loadProgram reads the binary named by the single remaining argument.
func loadProgram(md *modalflag.Modes) ([]byte, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("6800 binary required for %s mode", md)
	case 1:
		data, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return nil, err
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("nothing to do: %s is empty", md.GetArg(0))
		}
		return data, nil
	}
	return nil, fmt.Errorf("too many arguments for %s mode", md)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddString("origin", "0x0000", "load address of the binary")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	flow := md.AddBool("flow", false, "annotate branch/call/return flow")
	dot := md.AddString("memviz", "", "write the decoded entries as graphviz dot to file")
	log := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("stats", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}
	if *stats {
		statsview.Launch(md.Output)
	}

	data, err := loadProgram(md)
	if err != nil {
		return err
	}

	addr, err := parseOrigin(*origin)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromBytes(data, addr)
	if err != nil {
		return err
	}

	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, dsm)
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{
		ByteCode: *bytecode,
		FlowInfo: *flow,
	})
}

func lift(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddString("origin", "0x0000", "load address of the binary")
	log := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	data, err := loadProgram(md)
	if err != nil {
		return err
	}

	addr, err := parseOrigin(*origin)
	if err != nil {
		return err
	}

	i := 0
	for i < len(data) {
		ins, err := decoder.Decode(data[i:], addr+uint16(i))
		if err != nil {
			logger.Logf("lift", "%v", err)
			fmt.Fprintf(md.Output, "$%04x .byte $%02x\n", addr+uint16(i), data[i])
			i++
			continue
		}

		fmt.Fprintln(md.Output, ins.String())

		seq := &il.Sequence{}
		lifter.Lift(seq, ins)
		for _, s := range seq.Stmts {
			fmt.Fprintf(md.Output, "\t%s\n", s)
		}

		i += ins.Length
	}

	return nil
}

func explorer(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddString("origin", "0x0000", "load address of the binary")
	bytecode := md.AddBool("bytecode", false, "include bytecode in listing")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	data, err := loadProgram(md)
	if err != nil {
		return err
	}

	addr, err := parseOrigin(*origin)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromBytes(data, addr)
	if err != nil {
		return err
	}

	exp, err := explore.NewExplorer(dsm, disassembly.WriteAttr{
		ByteCode: *bytecode,
		FlowInfo: true,
	})
	if err != nil {
		return err
	}

	return exp.Run()
}
