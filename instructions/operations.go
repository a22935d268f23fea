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

package instructions

// Operation identifies what an instruction does, independently of the
// addressing mode and accumulator variant. the lifter switches exhaustively
// over this type - a missing case is a build-time mistake rather than a
// runtime surprise.
type Operation int

const (
	Nop Operation = iota
	Tap
	Tpa
	Inx
	Dex
	Clv
	Sev
	Clc
	Sec
	Cli
	Sei
	Sba
	Cba
	Tab
	Tba
	Daa
	Aba

	// branches. Bra is unconditional, Bsr is a subroutine call
	Bra
	Bhi
	Bls
	Bcc
	Bcs
	Bne
	Beq
	Bvc
	Bvs
	Bpl
	Bmi
	Bge
	Blt
	Bgt
	Ble
	Bsr

	// stack and index register
	Tsx
	Ins
	Pul
	Des
	Txs
	Psh
	Rts
	Rti
	Wai
	Swi

	// read-modify-write group. works on an accumulator or on memory
	Neg
	Com
	Lsr
	Ror
	Asr
	Asl
	Rol
	Dec
	Inc
	Tst
	Clr

	// accumulator arithmetic and logic
	Sub
	Cmp
	Sbc
	And
	Bit
	Lda
	Sta
	Eor
	Adc
	Ora
	Add

	// 16 bit operations
	Cpx
	Lds
	Sts
	Ldx
	Stx

	// jumps and calls
	Jmp
	Jsr
)

func (op Operation) String() string {
	if s, ok := operationNames[op]; ok {
		return s
	}
	return "unknown operation"
}

var operationNames = map[Operation]string{
	Nop: "NOP", Tap: "TAP", Tpa: "TPA", Inx: "INX", Dex: "DEX",
	Clv: "CLV", Sev: "SEV", Clc: "CLC", Sec: "SEC", Cli: "CLI", Sei: "SEI",
	Sba: "SBA", Cba: "CBA", Tab: "TAB", Tba: "TBA", Daa: "DAA", Aba: "ABA",
	Bra: "BRA", Bhi: "BHI", Bls: "BLS", Bcc: "BCC", Bcs: "BCS", Bne: "BNE",
	Beq: "BEQ", Bvc: "BVC", Bvs: "BVS", Bpl: "BPL", Bmi: "BMI", Bge: "BGE",
	Blt: "BLT", Bgt: "BGT", Ble: "BLE", Bsr: "BSR",
	Tsx: "TSX", Ins: "INS", Pul: "PUL", Des: "DES", Txs: "TXS", Psh: "PSH",
	Rts: "RTS", Rti: "RTI", Wai: "WAI", Swi: "SWI",
	Neg: "NEG", Com: "COM", Lsr: "LSR", Ror: "ROR", Asr: "ASR", Asl: "ASL",
	Rol: "ROL", Dec: "DEC", Inc: "INC", Tst: "TST", Clr: "CLR",
	Sub: "SUB", Cmp: "CMP", Sbc: "SBC", And: "AND", Bit: "BIT", Lda: "LDA",
	Sta: "STA", Eor: "EOR", Adc: "ADC", Ora: "ORA", Add: "ADD",
	Cpx: "CPX", Lds: "LDS", Sts: "STS", Ldx: "LDX", Stx: "STX",
	Jmp: "JMP", Jsr: "JSR",
}
