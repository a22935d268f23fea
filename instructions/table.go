// generated code - do not change
//
// instructions.csv is the source for this file. use "go generate" from the
// instructions directory to recreate it

package instructions

// GetDefinitions returns the opcode table for the M6800, indexed by opcode.
// undefined opcodes are nil entries.
func GetDefinitions() []*Definition {
	return []*Definition{
		nil,
		&Definition{OpCode: 0x01, Mnemonic: "NOP", Operation: Nop, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		nil,
		nil,
		nil,
		nil,
		&Definition{OpCode: 0x06, Mnemonic: "TAP", Operation: Tap, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsCCR, Wide: false, Stack: false, RegisterMove: true},
		&Definition{OpCode: 0x07, Mnemonic: "TPA", Operation: Tpa, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: true},
		&Definition{OpCode: 0x08, Mnemonic: "INX", Operation: Inx, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 4, Effect: Sequential, Flags: FlagsZ, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x09, Mnemonic: "DEX", Operation: Dex, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 4, Effect: Sequential, Flags: FlagsZ, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x0a, Mnemonic: "CLV", Operation: Clv, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsClearV, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x0b, Mnemonic: "SEV", Operation: Sev, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsSetV, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x0c, Mnemonic: "CLC", Operation: Clc, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsClearC, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x0d, Mnemonic: "SEC", Operation: Sec, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsSetC, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x0e, Mnemonic: "CLI", Operation: Cli, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x0f, Mnemonic: "SEI", Operation: Sei, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x10, Mnemonic: "SBA", Operation: Sba, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x11, Mnemonic: "CBA", Operation: Cba, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		nil,
		nil,
		nil,
		nil,
		&Definition{OpCode: 0x16, Mnemonic: "TAB", Operation: Tab, Accumulator: AccB, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: true},
		&Definition{OpCode: 0x17, Mnemonic: "TBA", Operation: Tba, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: true},
		nil,
		&Definition{OpCode: 0x19, Mnemonic: "DAA", Operation: Daa, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsDAA, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x1b, Mnemonic: "ABA", Operation: Aba, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		nil,
		nil,
		nil,
		nil,
		&Definition{OpCode: 0x20, Mnemonic: "BRA", Operation: Bra, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 4, Effect: Jump, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x22, Mnemonic: "BHI", Operation: Bhi, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 4, Effect: Branch, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x23, Mnemonic: "BLS", Operation: Bls, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 4, Effect: Branch, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x24, Mnemonic: "BCC", Operation: Bcc, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 4, Effect: Branch, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x25, Mnemonic: "BCS", Operation: Bcs, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 4, Effect: Branch, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x26, Mnemonic: "BNE", Operation: Bne, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 4, Effect: Branch, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x27, Mnemonic: "BEQ", Operation: Beq, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 4, Effect: Branch, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x28, Mnemonic: "BVC", Operation: Bvc, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 4, Effect: Branch, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x29, Mnemonic: "BVS", Operation: Bvs, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 4, Effect: Branch, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x2a, Mnemonic: "BPL", Operation: Bpl, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 4, Effect: Branch, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x2b, Mnemonic: "BMI", Operation: Bmi, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 4, Effect: Branch, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x2c, Mnemonic: "BGE", Operation: Bge, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 4, Effect: Branch, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x2d, Mnemonic: "BLT", Operation: Blt, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 4, Effect: Branch, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x2e, Mnemonic: "BGT", Operation: Bgt, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 4, Effect: Branch, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x2f, Mnemonic: "BLE", Operation: Ble, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 4, Effect: Branch, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x30, Mnemonic: "TSX", Operation: Tsx, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 4, Effect: Sequential, Flags: FlagsNone, Wide: false, Stack: true, RegisterMove: true},
		&Definition{OpCode: 0x31, Mnemonic: "INS", Operation: Ins, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 4, Effect: Sequential, Flags: FlagsNone, Wide: false, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0x32, Mnemonic: "PULA", Operation: Pul, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 4, Effect: Sequential, Flags: FlagsNone, Wide: false, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0x33, Mnemonic: "PULB", Operation: Pul, Accumulator: AccB, AddressingMode: Inherent, Bytes: 1, Cycles: 4, Effect: Sequential, Flags: FlagsNone, Wide: false, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0x34, Mnemonic: "DES", Operation: Des, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 4, Effect: Sequential, Flags: FlagsNone, Wide: false, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0x35, Mnemonic: "TXS", Operation: Txs, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 4, Effect: Sequential, Flags: FlagsNone, Wide: false, Stack: true, RegisterMove: true},
		&Definition{OpCode: 0x36, Mnemonic: "PSHA", Operation: Psh, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 4, Effect: Sequential, Flags: FlagsNone, Wide: false, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0x37, Mnemonic: "PSHB", Operation: Psh, Accumulator: AccB, AddressingMode: Inherent, Bytes: 1, Cycles: 4, Effect: Sequential, Flags: FlagsNone, Wide: false, Stack: true, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x39, Mnemonic: "RTS", Operation: Rts, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 5, Effect: Return, Flags: FlagsNone, Wide: false, Stack: true, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x3b, Mnemonic: "RTI", Operation: Rti, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 10, Effect: Return, Flags: FlagsCCR, Wide: false, Stack: true, RegisterMove: false},
		nil,
		nil,
		&Definition{OpCode: 0x3e, Mnemonic: "WAI", Operation: Wai, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 9, Effect: Interrupt, Flags: FlagsNone, Wide: false, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0x3f, Mnemonic: "SWI", Operation: Swi, Accumulator: AccNone, AddressingMode: Inherent, Bytes: 1, Cycles: 12, Effect: Interrupt, Flags: FlagsNone, Wide: false, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0x40, Mnemonic: "NEGA", Operation: Neg, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		nil,
		nil,
		&Definition{OpCode: 0x43, Mnemonic: "COMA", Operation: Com, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsComplement, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x44, Mnemonic: "LSRA", Operation: Lsr, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x46, Mnemonic: "RORA", Operation: Ror, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x47, Mnemonic: "ASRA", Operation: Asr, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x48, Mnemonic: "ASLA", Operation: Asl, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x49, Mnemonic: "ROLA", Operation: Rol, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x4a, Mnemonic: "DECA", Operation: Dec, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsNZV, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x4c, Mnemonic: "INCA", Operation: Inc, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsNZV, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x4d, Mnemonic: "TSTA", Operation: Tst, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsTest, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x4f, Mnemonic: "CLRA", Operation: Clr, Accumulator: AccA, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsClear, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x50, Mnemonic: "NEGB", Operation: Neg, Accumulator: AccB, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		nil,
		nil,
		&Definition{OpCode: 0x53, Mnemonic: "COMB", Operation: Com, Accumulator: AccB, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsComplement, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x54, Mnemonic: "LSRB", Operation: Lsr, Accumulator: AccB, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x56, Mnemonic: "RORB", Operation: Ror, Accumulator: AccB, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x57, Mnemonic: "ASRB", Operation: Asr, Accumulator: AccB, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x58, Mnemonic: "ASLB", Operation: Asl, Accumulator: AccB, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x59, Mnemonic: "ROLB", Operation: Rol, Accumulator: AccB, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x5a, Mnemonic: "DECB", Operation: Dec, Accumulator: AccB, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsNZV, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x5c, Mnemonic: "INCB", Operation: Inc, Accumulator: AccB, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsNZV, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x5d, Mnemonic: "TSTB", Operation: Tst, Accumulator: AccB, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsTest, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x5f, Mnemonic: "CLRB", Operation: Clr, Accumulator: AccB, AddressingMode: Inherent, Bytes: 1, Cycles: 2, Effect: Sequential, Flags: FlagsClear, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x60, Mnemonic: "NEG", Operation: Neg, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 7, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		nil,
		nil,
		&Definition{OpCode: 0x63, Mnemonic: "COM", Operation: Com, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 7, Effect: Sequential, Flags: FlagsComplement, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x64, Mnemonic: "LSR", Operation: Lsr, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 7, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x66, Mnemonic: "ROR", Operation: Ror, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 7, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x67, Mnemonic: "ASR", Operation: Asr, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 7, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x68, Mnemonic: "ASL", Operation: Asl, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 7, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x69, Mnemonic: "ROL", Operation: Rol, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 7, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x6a, Mnemonic: "DEC", Operation: Dec, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 7, Effect: Sequential, Flags: FlagsNZV, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x6c, Mnemonic: "INC", Operation: Inc, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 7, Effect: Sequential, Flags: FlagsNZV, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x6d, Mnemonic: "TST", Operation: Tst, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 7, Effect: Sequential, Flags: FlagsTest, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x6e, Mnemonic: "JMP", Operation: Jmp, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 4, Effect: Jump, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x6f, Mnemonic: "CLR", Operation: Clr, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 7, Effect: Sequential, Flags: FlagsClear, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x70, Mnemonic: "NEG", Operation: Neg, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 6, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		nil,
		nil,
		&Definition{OpCode: 0x73, Mnemonic: "COM", Operation: Com, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 6, Effect: Sequential, Flags: FlagsComplement, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x74, Mnemonic: "LSR", Operation: Lsr, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 6, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x76, Mnemonic: "ROR", Operation: Ror, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 6, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x77, Mnemonic: "ASR", Operation: Asr, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 6, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x78, Mnemonic: "ASL", Operation: Asl, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 6, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x79, Mnemonic: "ROL", Operation: Rol, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 6, Effect: Sequential, Flags: FlagsShift, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x7a, Mnemonic: "DEC", Operation: Dec, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 6, Effect: Sequential, Flags: FlagsNZV, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x7c, Mnemonic: "INC", Operation: Inc, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 6, Effect: Sequential, Flags: FlagsNZV, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x7d, Mnemonic: "TST", Operation: Tst, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 6, Effect: Sequential, Flags: FlagsTest, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x7e, Mnemonic: "JMP", Operation: Jmp, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 3, Effect: Jump, Flags: FlagsNone, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x7f, Mnemonic: "CLR", Operation: Clr, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 6, Effect: Sequential, Flags: FlagsClear, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x80, Mnemonic: "SUBA", Operation: Sub, Accumulator: AccA, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x81, Mnemonic: "CMPA", Operation: Cmp, Accumulator: AccA, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x82, Mnemonic: "SBCA", Operation: Sbc, Accumulator: AccA, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x84, Mnemonic: "ANDA", Operation: And, Accumulator: AccA, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x85, Mnemonic: "BITA", Operation: Bit, Accumulator: AccA, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x86, Mnemonic: "LDAA", Operation: Lda, Accumulator: AccA, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x88, Mnemonic: "EORA", Operation: Eor, Accumulator: AccA, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x89, Mnemonic: "ADCA", Operation: Adc, Accumulator: AccA, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x8a, Mnemonic: "ORAA", Operation: Ora, Accumulator: AccA, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x8b, Mnemonic: "ADDA", Operation: Add, Accumulator: AccA, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x8c, Mnemonic: "CPX", Operation: Cpx, Accumulator: AccNone, AddressingMode: Immediate, Bytes: 3, Cycles: 3, Effect: Sequential, Flags: FlagsNZV, Wide: true, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x8d, Mnemonic: "BSR", Operation: Bsr, Accumulator: AccNone, AddressingMode: Relative, Bytes: 2, Cycles: 8, Effect: Subroutine, Flags: FlagsNone, Wide: false, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0x8e, Mnemonic: "LDS", Operation: Lds, Accumulator: AccNone, AddressingMode: Immediate, Bytes: 3, Cycles: 3, Effect: Sequential, Flags: FlagsLogic, Wide: true, Stack: true, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x90, Mnemonic: "SUBA", Operation: Sub, Accumulator: AccA, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x91, Mnemonic: "CMPA", Operation: Cmp, Accumulator: AccA, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x92, Mnemonic: "SBCA", Operation: Sbc, Accumulator: AccA, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x94, Mnemonic: "ANDA", Operation: And, Accumulator: AccA, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x95, Mnemonic: "BITA", Operation: Bit, Accumulator: AccA, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x96, Mnemonic: "LDAA", Operation: Lda, Accumulator: AccA, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x97, Mnemonic: "STAA", Operation: Sta, Accumulator: AccA, AddressingMode: Direct, Bytes: 2, Cycles: 4, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x98, Mnemonic: "EORA", Operation: Eor, Accumulator: AccA, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x99, Mnemonic: "ADCA", Operation: Adc, Accumulator: AccA, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x9a, Mnemonic: "ORAA", Operation: Ora, Accumulator: AccA, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x9b, Mnemonic: "ADDA", Operation: Add, Accumulator: AccA, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0x9c, Mnemonic: "CPX", Operation: Cpx, Accumulator: AccNone, AddressingMode: Direct, Bytes: 2, Cycles: 4, Effect: Sequential, Flags: FlagsNZV, Wide: true, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0x9e, Mnemonic: "LDS", Operation: Lds, Accumulator: AccNone, AddressingMode: Direct, Bytes: 2, Cycles: 4, Effect: Sequential, Flags: FlagsLogic, Wide: true, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0x9f, Mnemonic: "STS", Operation: Sts, Accumulator: AccNone, AddressingMode: Direct, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: true, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0xa0, Mnemonic: "SUBA", Operation: Sub, Accumulator: AccA, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xa1, Mnemonic: "CMPA", Operation: Cmp, Accumulator: AccA, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xa2, Mnemonic: "SBCA", Operation: Sbc, Accumulator: AccA, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0xa4, Mnemonic: "ANDA", Operation: And, Accumulator: AccA, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xa5, Mnemonic: "BITA", Operation: Bit, Accumulator: AccA, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xa6, Mnemonic: "LDAA", Operation: Lda, Accumulator: AccA, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xa7, Mnemonic: "STAA", Operation: Sta, Accumulator: AccA, AddressingMode: Indexed, Bytes: 2, Cycles: 6, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xa8, Mnemonic: "EORA", Operation: Eor, Accumulator: AccA, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xa9, Mnemonic: "ADCA", Operation: Adc, Accumulator: AccA, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xaa, Mnemonic: "ORAA", Operation: Ora, Accumulator: AccA, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xab, Mnemonic: "ADDA", Operation: Add, Accumulator: AccA, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xac, Mnemonic: "CPX", Operation: Cpx, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 6, Effect: Sequential, Flags: FlagsNZV, Wide: true, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xad, Mnemonic: "JSR", Operation: Jsr, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 8, Effect: Subroutine, Flags: FlagsNone, Wide: false, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0xae, Mnemonic: "LDS", Operation: Lds, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 6, Effect: Sequential, Flags: FlagsLogic, Wide: true, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0xaf, Mnemonic: "STS", Operation: Sts, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 7, Effect: Sequential, Flags: FlagsLogic, Wide: true, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0xb0, Mnemonic: "SUBA", Operation: Sub, Accumulator: AccA, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xb1, Mnemonic: "CMPA", Operation: Cmp, Accumulator: AccA, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xb2, Mnemonic: "SBCA", Operation: Sbc, Accumulator: AccA, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0xb4, Mnemonic: "ANDA", Operation: And, Accumulator: AccA, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xb5, Mnemonic: "BITA", Operation: Bit, Accumulator: AccA, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xb6, Mnemonic: "LDAA", Operation: Lda, Accumulator: AccA, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xb7, Mnemonic: "STAA", Operation: Sta, Accumulator: AccA, AddressingMode: Extended, Bytes: 3, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xb8, Mnemonic: "EORA", Operation: Eor, Accumulator: AccA, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xb9, Mnemonic: "ADCA", Operation: Adc, Accumulator: AccA, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xba, Mnemonic: "ORAA", Operation: Ora, Accumulator: AccA, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xbb, Mnemonic: "ADDA", Operation: Add, Accumulator: AccA, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xbc, Mnemonic: "CPX", Operation: Cpx, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 5, Effect: Sequential, Flags: FlagsNZV, Wide: true, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xbd, Mnemonic: "JSR", Operation: Jsr, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 9, Effect: Subroutine, Flags: FlagsNone, Wide: false, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0xbe, Mnemonic: "LDS", Operation: Lds, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: true, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0xbf, Mnemonic: "STS", Operation: Sts, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 6, Effect: Sequential, Flags: FlagsLogic, Wide: true, Stack: true, RegisterMove: false},
		&Definition{OpCode: 0xc0, Mnemonic: "SUBB", Operation: Sub, Accumulator: AccB, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xc1, Mnemonic: "CMPB", Operation: Cmp, Accumulator: AccB, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xc2, Mnemonic: "SBCB", Operation: Sbc, Accumulator: AccB, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0xc4, Mnemonic: "ANDB", Operation: And, Accumulator: AccB, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xc5, Mnemonic: "BITB", Operation: Bit, Accumulator: AccB, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xc6, Mnemonic: "LDAB", Operation: Lda, Accumulator: AccB, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0xc8, Mnemonic: "EORB", Operation: Eor, Accumulator: AccB, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xc9, Mnemonic: "ADCB", Operation: Adc, Accumulator: AccB, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xca, Mnemonic: "ORAB", Operation: Ora, Accumulator: AccB, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xcb, Mnemonic: "ADDB", Operation: Add, Accumulator: AccB, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		nil,
		nil,
		&Definition{OpCode: 0xce, Mnemonic: "LDX", Operation: Ldx, Accumulator: AccNone, AddressingMode: Immediate, Bytes: 3, Cycles: 3, Effect: Sequential, Flags: FlagsLogic, Wide: true, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0xd0, Mnemonic: "SUBB", Operation: Sub, Accumulator: AccB, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xd1, Mnemonic: "CMPB", Operation: Cmp, Accumulator: AccB, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xd2, Mnemonic: "SBCB", Operation: Sbc, Accumulator: AccB, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0xd4, Mnemonic: "ANDB", Operation: And, Accumulator: AccB, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xd5, Mnemonic: "BITB", Operation: Bit, Accumulator: AccB, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xd6, Mnemonic: "LDAB", Operation: Lda, Accumulator: AccB, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xd7, Mnemonic: "STAB", Operation: Sta, Accumulator: AccB, AddressingMode: Direct, Bytes: 2, Cycles: 4, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xd8, Mnemonic: "EORB", Operation: Eor, Accumulator: AccB, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xd9, Mnemonic: "ADCB", Operation: Adc, Accumulator: AccB, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xda, Mnemonic: "ORAB", Operation: Ora, Accumulator: AccB, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xdb, Mnemonic: "ADDB", Operation: Add, Accumulator: AccB, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		nil,
		nil,
		&Definition{OpCode: 0xde, Mnemonic: "LDX", Operation: Ldx, Accumulator: AccNone, AddressingMode: Direct, Bytes: 2, Cycles: 4, Effect: Sequential, Flags: FlagsLogic, Wide: true, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xdf, Mnemonic: "STX", Operation: Stx, Accumulator: AccNone, AddressingMode: Direct, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: true, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xe0, Mnemonic: "SUBB", Operation: Sub, Accumulator: AccB, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xe1, Mnemonic: "CMPB", Operation: Cmp, Accumulator: AccB, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xe2, Mnemonic: "SBCB", Operation: Sbc, Accumulator: AccB, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0xe4, Mnemonic: "ANDB", Operation: And, Accumulator: AccB, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xe5, Mnemonic: "BITB", Operation: Bit, Accumulator: AccB, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xe6, Mnemonic: "LDAB", Operation: Lda, Accumulator: AccB, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xe7, Mnemonic: "STAB", Operation: Sta, Accumulator: AccB, AddressingMode: Indexed, Bytes: 2, Cycles: 6, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xe8, Mnemonic: "EORB", Operation: Eor, Accumulator: AccB, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xe9, Mnemonic: "ADCB", Operation: Adc, Accumulator: AccB, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xea, Mnemonic: "ORAB", Operation: Ora, Accumulator: AccB, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xeb, Mnemonic: "ADDB", Operation: Add, Accumulator: AccB, AddressingMode: Indexed, Bytes: 2, Cycles: 5, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		nil,
		nil,
		&Definition{OpCode: 0xee, Mnemonic: "LDX", Operation: Ldx, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 6, Effect: Sequential, Flags: FlagsLogic, Wide: true, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xef, Mnemonic: "STX", Operation: Stx, Accumulator: AccNone, AddressingMode: Indexed, Bytes: 2, Cycles: 7, Effect: Sequential, Flags: FlagsLogic, Wide: true, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xf0, Mnemonic: "SUBB", Operation: Sub, Accumulator: AccB, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xf1, Mnemonic: "CMPB", Operation: Cmp, Accumulator: AccB, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xf2, Mnemonic: "SBCB", Operation: Sbc, Accumulator: AccB, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsSub, Wide: false, Stack: false, RegisterMove: false},
		nil,
		&Definition{OpCode: 0xf4, Mnemonic: "ANDB", Operation: And, Accumulator: AccB, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xf5, Mnemonic: "BITB", Operation: Bit, Accumulator: AccB, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xf6, Mnemonic: "LDAB", Operation: Lda, Accumulator: AccB, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xf7, Mnemonic: "STAB", Operation: Sta, Accumulator: AccB, AddressingMode: Extended, Bytes: 3, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xf8, Mnemonic: "EORB", Operation: Eor, Accumulator: AccB, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xf9, Mnemonic: "ADCB", Operation: Adc, Accumulator: AccB, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xfa, Mnemonic: "ORAB", Operation: Ora, Accumulator: AccB, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsLogic, Wide: false, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xfb, Mnemonic: "ADDB", Operation: Add, Accumulator: AccB, AddressingMode: Extended, Bytes: 3, Cycles: 4, Effect: Sequential, Flags: FlagsAdd, Wide: false, Stack: false, RegisterMove: false},
		nil,
		nil,
		&Definition{OpCode: 0xfe, Mnemonic: "LDX", Operation: Ldx, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 5, Effect: Sequential, Flags: FlagsLogic, Wide: true, Stack: false, RegisterMove: false},
		&Definition{OpCode: 0xff, Mnemonic: "STX", Operation: Stx, Accumulator: AccNone, AddressingMode: Extended, Bytes: 3, Cycles: 6, Effect: Sequential, Flags: FlagsLogic, Wide: true, Stack: false, RegisterMove: false},
	}
}
