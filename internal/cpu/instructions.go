package cpu

// operands used by the primary table.
var (
	regA = R(RegA)
	regB = R(RegB)
	regC = R(RegC)
	regD = R(RegD)
	regE = R(RegE)
	regH = R(RegH)
	regL = R(RegL)

	pairAF = RR(PairAF)
	pairBC = RR(PairBC)
	pairDE = RR(PairDE)
	pairHL = RR(PairHL)
	pairSP = RR(PairSP)

	atBC      = At(pairBC)
	atDE      = At(pairDE)
	atHL      = At(pairHL)
	atHLInc   = At(Increment(PairHL))
	atHLDec   = At(Decrement(PairHL))
	atA16     = At(d16)
	wordAtA16 = WordAt(d16)
	ioA8      = IOPort(d8)
	ioC       = IOPort(regC)
)

// prefix defines the opcode that selects InstructionSetCB.
func prefix(mnemonic string) Instruction {
	in := op(mnemonic, 1, 4, "- - - -", nil)
	in.prefix = true
	return in
}

// InstructionSet holds the primary instructions, indexed by opcode.
// Cycle costs are in clock ticks (4 per machine cycle).
var InstructionSet = [256]Instruction{
	0x00: op("NOP", 1, 4, "- - - -", (*CPU).nop),
	0x01: op("LD BC,d16", 3, 12, "- - - -", (*CPU).move, pairBC, d16),
	0x02: op("LD (BC),A", 1, 8, "- - - -", (*CPU).move, atBC, regA),
	0x03: op("INC BC", 1, 8, "- - - -", (*CPU).inc, pairBC),
	0x04: op("INC B", 1, 4, "Z 0 H -", (*CPU).inc, regB),
	0x05: op("DEC B", 1, 4, "Z 1 H -", (*CPU).dec, regB),
	0x06: op("LD B,d8", 2, 8, "- - - -", (*CPU).move, regB, d8),
	0x07: op("RLCA", 1, 4, "0 0 0 C", (*CPU).rotateLeftCarry, regA),
	0x08: op("LD (a16),SP", 3, 20, "- - - -", (*CPU).move, wordAtA16, pairSP),
	0x09: op("ADD HL,BC", 1, 8, "- 0 H C", (*CPU).add, pairHL, pairBC),
	0x0A: op("LD A,(BC)", 1, 8, "- - - -", (*CPU).move, regA, atBC),
	0x0B: op("DEC BC", 1, 8, "- - - -", (*CPU).dec, pairBC),
	0x0C: op("INC C", 1, 4, "Z 0 H -", (*CPU).inc, regC),
	0x0D: op("DEC C", 1, 4, "Z 1 H -", (*CPU).dec, regC),
	0x0E: op("LD C,d8", 2, 8, "- - - -", (*CPU).move, regC, d8),
	0x0F: op("RRCA", 1, 4, "0 0 0 C", (*CPU).rotateRightCarry, regA),
	0x10: op("STOP", 2, 4, "- - - -", (*CPU).stop),
	0x11: op("LD DE,d16", 3, 12, "- - - -", (*CPU).move, pairDE, d16),
	0x12: op("LD (DE),A", 1, 8, "- - - -", (*CPU).move, atDE, regA),
	0x13: op("INC DE", 1, 8, "- - - -", (*CPU).inc, pairDE),
	0x14: op("INC D", 1, 4, "Z 0 H -", (*CPU).inc, regD),
	0x15: op("DEC D", 1, 4, "Z 1 H -", (*CPU).dec, regD),
	0x16: op("LD D,d8", 2, 8, "- - - -", (*CPU).move, regD, d8),
	0x17: op("RLA", 1, 4, "0 0 0 C", (*CPU).rotateLeft, regA),
	0x18: branch("JR r8", 2, 12, 12, Always, (*CPU).jumpRelative, d8),
	0x19: op("ADD HL,DE", 1, 8, "- 0 H C", (*CPU).add, pairHL, pairDE),
	0x1A: op("LD A,(DE)", 1, 8, "- - - -", (*CPU).move, regA, atDE),
	0x1B: op("DEC DE", 1, 8, "- - - -", (*CPU).dec, pairDE),
	0x1C: op("INC E", 1, 4, "Z 0 H -", (*CPU).inc, regE),
	0x1D: op("DEC E", 1, 4, "Z 1 H -", (*CPU).dec, regE),
	0x1E: op("LD E,d8", 2, 8, "- - - -", (*CPU).move, regE, d8),
	0x1F: op("RRA", 1, 4, "0 0 0 C", (*CPU).rotateRight, regA),
	0x20: branch("JR NZ,r8", 2, 12, 8, NZ, (*CPU).jumpRelative, d8),
	0x21: op("LD HL,d16", 3, 12, "- - - -", (*CPU).move, pairHL, d16),
	0x22: op("LD (HL+),A", 1, 8, "- - - -", (*CPU).move, atHLInc, regA),
	0x23: op("INC HL", 1, 8, "- - - -", (*CPU).inc, pairHL),
	0x24: op("INC H", 1, 4, "Z 0 H -", (*CPU).inc, regH),
	0x25: op("DEC H", 1, 4, "Z 1 H -", (*CPU).dec, regH),
	0x26: op("LD H,d8", 2, 8, "- - - -", (*CPU).move, regH, d8),
	0x27: op("DAA", 1, 4, "Z - 0 C", (*CPU).daa, regA),
	0x28: branch("JR Z,r8", 2, 12, 8, Z, (*CPU).jumpRelative, d8),
	0x29: op("ADD HL,HL", 1, 8, "- 0 H C", (*CPU).add, pairHL, pairHL),
	0x2A: op("LD A,(HL+)", 1, 8, "- - - -", (*CPU).move, regA, atHLInc),
	0x2B: op("DEC HL", 1, 8, "- - - -", (*CPU).dec, pairHL),
	0x2C: op("INC L", 1, 4, "Z 0 H -", (*CPU).inc, regL),
	0x2D: op("DEC L", 1, 4, "Z 1 H -", (*CPU).dec, regL),
	0x2E: op("LD L,d8", 2, 8, "- - - -", (*CPU).move, regL, d8),
	0x2F: op("CPL", 1, 4, "- 1 1 -", (*CPU).cpl, regA),
	0x30: branch("JR NC,r8", 2, 12, 8, NC, (*CPU).jumpRelative, d8),
	0x31: op("LD SP,d16", 3, 12, "- - - -", (*CPU).move, pairSP, d16),
	0x32: op("LD (HL-),A", 1, 8, "- - - -", (*CPU).move, atHLDec, regA),
	0x33: op("INC SP", 1, 8, "- - - -", (*CPU).inc, pairSP),
	0x34: op("INC (HL)", 1, 12, "Z 0 H -", (*CPU).inc, atHL),
	0x35: op("DEC (HL)", 1, 12, "Z 1 H -", (*CPU).dec, atHL),
	0x36: op("LD (HL),d8", 2, 12, "- - - -", (*CPU).move, atHL, d8),
	0x37: op("SCF", 1, 4, "- 0 0 1", (*CPU).scf),
	0x38: branch("JR C,r8", 2, 12, 8, CY, (*CPU).jumpRelative, d8),
	0x39: op("ADD HL,SP", 1, 8, "- 0 H C", (*CPU).add, pairHL, pairSP),
	0x3A: op("LD A,(HL-)", 1, 8, "- - - -", (*CPU).move, regA, atHLDec),
	0x3B: op("DEC SP", 1, 8, "- - - -", (*CPU).dec, pairSP),
	0x3C: op("INC A", 1, 4, "Z 0 H -", (*CPU).inc, regA),
	0x3D: op("DEC A", 1, 4, "Z 1 H -", (*CPU).dec, regA),
	0x3E: op("LD A,d8", 2, 8, "- - - -", (*CPU).move, regA, d8),
	0x3F: op("CCF", 1, 4, "- 0 0 C", (*CPU).ccf),
	0x40: op("LD B,B", 1, 4, "- - - -", (*CPU).move, regB, regB),
	0x41: op("LD B,C", 1, 4, "- - - -", (*CPU).move, regB, regC),
	0x42: op("LD B,D", 1, 4, "- - - -", (*CPU).move, regB, regD),
	0x43: op("LD B,E", 1, 4, "- - - -", (*CPU).move, regB, regE),
	0x44: op("LD B,H", 1, 4, "- - - -", (*CPU).move, regB, regH),
	0x45: op("LD B,L", 1, 4, "- - - -", (*CPU).move, regB, regL),
	0x46: op("LD B,(HL)", 1, 8, "- - - -", (*CPU).move, regB, atHL),
	0x47: op("LD B,A", 1, 4, "- - - -", (*CPU).move, regB, regA),
	0x48: op("LD C,B", 1, 4, "- - - -", (*CPU).move, regC, regB),
	0x49: op("LD C,C", 1, 4, "- - - -", (*CPU).move, regC, regC),
	0x4A: op("LD C,D", 1, 4, "- - - -", (*CPU).move, regC, regD),
	0x4B: op("LD C,E", 1, 4, "- - - -", (*CPU).move, regC, regE),
	0x4C: op("LD C,H", 1, 4, "- - - -", (*CPU).move, regC, regH),
	0x4D: op("LD C,L", 1, 4, "- - - -", (*CPU).move, regC, regL),
	0x4E: op("LD C,(HL)", 1, 8, "- - - -", (*CPU).move, regC, atHL),
	0x4F: op("LD C,A", 1, 4, "- - - -", (*CPU).move, regC, regA),
	0x50: op("LD D,B", 1, 4, "- - - -", (*CPU).move, regD, regB),
	0x51: op("LD D,C", 1, 4, "- - - -", (*CPU).move, regD, regC),
	0x52: op("LD D,D", 1, 4, "- - - -", (*CPU).move, regD, regD),
	0x53: op("LD D,E", 1, 4, "- - - -", (*CPU).move, regD, regE),
	0x54: op("LD D,H", 1, 4, "- - - -", (*CPU).move, regD, regH),
	0x55: op("LD D,L", 1, 4, "- - - -", (*CPU).move, regD, regL),
	0x56: op("LD D,(HL)", 1, 8, "- - - -", (*CPU).move, regD, atHL),
	0x57: op("LD D,A", 1, 4, "- - - -", (*CPU).move, regD, regA),
	0x58: op("LD E,B", 1, 4, "- - - -", (*CPU).move, regE, regB),
	0x59: op("LD E,C", 1, 4, "- - - -", (*CPU).move, regE, regC),
	0x5A: op("LD E,D", 1, 4, "- - - -", (*CPU).move, regE, regD),
	0x5B: op("LD E,E", 1, 4, "- - - -", (*CPU).move, regE, regE),
	0x5C: op("LD E,H", 1, 4, "- - - -", (*CPU).move, regE, regH),
	0x5D: op("LD E,L", 1, 4, "- - - -", (*CPU).move, regE, regL),
	0x5E: op("LD E,(HL)", 1, 8, "- - - -", (*CPU).move, regE, atHL),
	0x5F: op("LD E,A", 1, 4, "- - - -", (*CPU).move, regE, regA),
	0x60: op("LD H,B", 1, 4, "- - - -", (*CPU).move, regH, regB),
	0x61: op("LD H,C", 1, 4, "- - - -", (*CPU).move, regH, regC),
	0x62: op("LD H,D", 1, 4, "- - - -", (*CPU).move, regH, regD),
	0x63: op("LD H,E", 1, 4, "- - - -", (*CPU).move, regH, regE),
	0x64: op("LD H,H", 1, 4, "- - - -", (*CPU).move, regH, regH),
	0x65: op("LD H,L", 1, 4, "- - - -", (*CPU).move, regH, regL),
	0x66: op("LD H,(HL)", 1, 8, "- - - -", (*CPU).move, regH, atHL),
	0x67: op("LD H,A", 1, 4, "- - - -", (*CPU).move, regH, regA),
	0x68: op("LD L,B", 1, 4, "- - - -", (*CPU).move, regL, regB),
	0x69: op("LD L,C", 1, 4, "- - - -", (*CPU).move, regL, regC),
	0x6A: op("LD L,D", 1, 4, "- - - -", (*CPU).move, regL, regD),
	0x6B: op("LD L,E", 1, 4, "- - - -", (*CPU).move, regL, regE),
	0x6C: op("LD L,H", 1, 4, "- - - -", (*CPU).move, regL, regH),
	0x6D: op("LD L,L", 1, 4, "- - - -", (*CPU).move, regL, regL),
	0x6E: op("LD L,(HL)", 1, 8, "- - - -", (*CPU).move, regL, atHL),
	0x6F: op("LD L,A", 1, 4, "- - - -", (*CPU).move, regL, regA),
	0x70: op("LD (HL),B", 1, 8, "- - - -", (*CPU).move, atHL, regB),
	0x71: op("LD (HL),C", 1, 8, "- - - -", (*CPU).move, atHL, regC),
	0x72: op("LD (HL),D", 1, 8, "- - - -", (*CPU).move, atHL, regD),
	0x73: op("LD (HL),E", 1, 8, "- - - -", (*CPU).move, atHL, regE),
	0x74: op("LD (HL),H", 1, 8, "- - - -", (*CPU).move, atHL, regH),
	0x75: op("LD (HL),L", 1, 8, "- - - -", (*CPU).move, atHL, regL),
	0x76: op("HALT", 1, 4, "- - - -", (*CPU).halt),
	0x77: op("LD (HL),A", 1, 8, "- - - -", (*CPU).move, atHL, regA),
	0x78: op("LD A,B", 1, 4, "- - - -", (*CPU).move, regA, regB),
	0x79: op("LD A,C", 1, 4, "- - - -", (*CPU).move, regA, regC),
	0x7A: op("LD A,D", 1, 4, "- - - -", (*CPU).move, regA, regD),
	0x7B: op("LD A,E", 1, 4, "- - - -", (*CPU).move, regA, regE),
	0x7C: op("LD A,H", 1, 4, "- - - -", (*CPU).move, regA, regH),
	0x7D: op("LD A,L", 1, 4, "- - - -", (*CPU).move, regA, regL),
	0x7E: op("LD A,(HL)", 1, 8, "- - - -", (*CPU).move, regA, atHL),
	0x7F: op("LD A,A", 1, 4, "- - - -", (*CPU).move, regA, regA),
	0x80: op("ADD A,B", 1, 4, "Z 0 H C", (*CPU).add, regA, regB),
	0x81: op("ADD A,C", 1, 4, "Z 0 H C", (*CPU).add, regA, regC),
	0x82: op("ADD A,D", 1, 4, "Z 0 H C", (*CPU).add, regA, regD),
	0x83: op("ADD A,E", 1, 4, "Z 0 H C", (*CPU).add, regA, regE),
	0x84: op("ADD A,H", 1, 4, "Z 0 H C", (*CPU).add, regA, regH),
	0x85: op("ADD A,L", 1, 4, "Z 0 H C", (*CPU).add, regA, regL),
	0x86: op("ADD A,(HL)", 1, 8, "Z 0 H C", (*CPU).add, regA, atHL),
	0x87: op("ADD A,A", 1, 4, "Z 0 H C", (*CPU).add, regA, regA),
	0x88: op("ADC A,B", 1, 4, "Z 0 H C", (*CPU).adc, regA, regB),
	0x89: op("ADC A,C", 1, 4, "Z 0 H C", (*CPU).adc, regA, regC),
	0x8A: op("ADC A,D", 1, 4, "Z 0 H C", (*CPU).adc, regA, regD),
	0x8B: op("ADC A,E", 1, 4, "Z 0 H C", (*CPU).adc, regA, regE),
	0x8C: op("ADC A,H", 1, 4, "Z 0 H C", (*CPU).adc, regA, regH),
	0x8D: op("ADC A,L", 1, 4, "Z 0 H C", (*CPU).adc, regA, regL),
	0x8E: op("ADC A,(HL)", 1, 8, "Z 0 H C", (*CPU).adc, regA, atHL),
	0x8F: op("ADC A,A", 1, 4, "Z 0 H C", (*CPU).adc, regA, regA),
	0x90: op("SUB B", 1, 4, "Z 1 H C", (*CPU).sub, regA, regB),
	0x91: op("SUB C", 1, 4, "Z 1 H C", (*CPU).sub, regA, regC),
	0x92: op("SUB D", 1, 4, "Z 1 H C", (*CPU).sub, regA, regD),
	0x93: op("SUB E", 1, 4, "Z 1 H C", (*CPU).sub, regA, regE),
	0x94: op("SUB H", 1, 4, "Z 1 H C", (*CPU).sub, regA, regH),
	0x95: op("SUB L", 1, 4, "Z 1 H C", (*CPU).sub, regA, regL),
	0x96: op("SUB (HL)", 1, 8, "Z 1 H C", (*CPU).sub, regA, atHL),
	0x97: op("SUB A", 1, 4, "Z 1 H C", (*CPU).sub, regA, regA),
	0x98: op("SBC A,B", 1, 4, "Z 1 H C", (*CPU).sbc, regA, regB),
	0x99: op("SBC A,C", 1, 4, "Z 1 H C", (*CPU).sbc, regA, regC),
	0x9A: op("SBC A,D", 1, 4, "Z 1 H C", (*CPU).sbc, regA, regD),
	0x9B: op("SBC A,E", 1, 4, "Z 1 H C", (*CPU).sbc, regA, regE),
	0x9C: op("SBC A,H", 1, 4, "Z 1 H C", (*CPU).sbc, regA, regH),
	0x9D: op("SBC A,L", 1, 4, "Z 1 H C", (*CPU).sbc, regA, regL),
	0x9E: op("SBC A,(HL)", 1, 8, "Z 1 H C", (*CPU).sbc, regA, atHL),
	0x9F: op("SBC A,A", 1, 4, "Z 1 H C", (*CPU).sbc, regA, regA),
	0xA0: op("AND B", 1, 4, "Z 0 1 0", (*CPU).and, regA, regB),
	0xA1: op("AND C", 1, 4, "Z 0 1 0", (*CPU).and, regA, regC),
	0xA2: op("AND D", 1, 4, "Z 0 1 0", (*CPU).and, regA, regD),
	0xA3: op("AND E", 1, 4, "Z 0 1 0", (*CPU).and, regA, regE),
	0xA4: op("AND H", 1, 4, "Z 0 1 0", (*CPU).and, regA, regH),
	0xA5: op("AND L", 1, 4, "Z 0 1 0", (*CPU).and, regA, regL),
	0xA6: op("AND (HL)", 1, 8, "Z 0 1 0", (*CPU).and, regA, atHL),
	0xA7: op("AND A", 1, 4, "Z 0 1 0", (*CPU).and, regA, regA),
	0xA8: op("XOR B", 1, 4, "Z 0 0 0", (*CPU).xor, regA, regB),
	0xA9: op("XOR C", 1, 4, "Z 0 0 0", (*CPU).xor, regA, regC),
	0xAA: op("XOR D", 1, 4, "Z 0 0 0", (*CPU).xor, regA, regD),
	0xAB: op("XOR E", 1, 4, "Z 0 0 0", (*CPU).xor, regA, regE),
	0xAC: op("XOR H", 1, 4, "Z 0 0 0", (*CPU).xor, regA, regH),
	0xAD: op("XOR L", 1, 4, "Z 0 0 0", (*CPU).xor, regA, regL),
	0xAE: op("XOR (HL)", 1, 8, "Z 0 0 0", (*CPU).xor, regA, atHL),
	0xAF: op("XOR A", 1, 4, "Z 0 0 0", (*CPU).xor, regA, regA),
	0xB0: op("OR B", 1, 4, "Z 0 0 0", (*CPU).or, regA, regB),
	0xB1: op("OR C", 1, 4, "Z 0 0 0", (*CPU).or, regA, regC),
	0xB2: op("OR D", 1, 4, "Z 0 0 0", (*CPU).or, regA, regD),
	0xB3: op("OR E", 1, 4, "Z 0 0 0", (*CPU).or, regA, regE),
	0xB4: op("OR H", 1, 4, "Z 0 0 0", (*CPU).or, regA, regH),
	0xB5: op("OR L", 1, 4, "Z 0 0 0", (*CPU).or, regA, regL),
	0xB6: op("OR (HL)", 1, 8, "Z 0 0 0", (*CPU).or, regA, atHL),
	0xB7: op("OR A", 1, 4, "Z 0 0 0", (*CPU).or, regA, regA),
	0xB8: op("CP B", 1, 4, "Z 1 H C", (*CPU).compare, regA, regB),
	0xB9: op("CP C", 1, 4, "Z 1 H C", (*CPU).compare, regA, regC),
	0xBA: op("CP D", 1, 4, "Z 1 H C", (*CPU).compare, regA, regD),
	0xBB: op("CP E", 1, 4, "Z 1 H C", (*CPU).compare, regA, regE),
	0xBC: op("CP H", 1, 4, "Z 1 H C", (*CPU).compare, regA, regH),
	0xBD: op("CP L", 1, 4, "Z 1 H C", (*CPU).compare, regA, regL),
	0xBE: op("CP (HL)", 1, 8, "Z 1 H C", (*CPU).compare, regA, atHL),
	0xBF: op("CP A", 1, 4, "Z 1 H C", (*CPU).compare, regA, regA),
	0xC0: branch("RET NZ", 1, 20, 8, NZ, (*CPU).ret),
	0xC1: op("POP BC", 1, 12, "- - - -", (*CPU).pop, pairBC),
	0xC2: branch("JP NZ,a16", 3, 16, 12, NZ, (*CPU).jumpAbsolute, d16),
	0xC3: branch("JP a16", 3, 16, 16, Always, (*CPU).jumpAbsolute, d16),
	0xC4: branch("CALL NZ,a16", 3, 24, 12, NZ, (*CPU).call, d16),
	0xC5: op("PUSH BC", 1, 16, "- - - -", (*CPU).push, pairBC),
	0xC6: op("ADD A,d8", 2, 8, "Z 0 H C", (*CPU).add, regA, d8),
	0xC7: branch("RST 00H", 1, 16, 16, Always, (*CPU).restart, Const(0x00)),
	0xC8: branch("RET Z", 1, 20, 8, Z, (*CPU).ret),
	0xC9: branch("RET", 1, 16, 16, Always, (*CPU).ret),
	0xCA: branch("JP Z,a16", 3, 16, 12, Z, (*CPU).jumpAbsolute, d16),
	0xCB: prefix("PREFIX CB"),
	0xCC: branch("CALL Z,a16", 3, 24, 12, Z, (*CPU).call, d16),
	0xCD: branch("CALL a16", 3, 24, 24, Always, (*CPU).call, d16),
	0xCE: op("ADC A,d8", 2, 8, "Z 0 H C", (*CPU).adc, regA, d8),
	0xCF: branch("RST 08H", 1, 16, 16, Always, (*CPU).restart, Const(0x08)),
	0xD0: branch("RET NC", 1, 20, 8, NC, (*CPU).ret),
	0xD1: op("POP DE", 1, 12, "- - - -", (*CPU).pop, pairDE),
	0xD2: branch("JP NC,a16", 3, 16, 12, NC, (*CPU).jumpAbsolute, d16),
	0xD3: disallowedOpcode(),
	0xD4: branch("CALL NC,a16", 3, 24, 12, NC, (*CPU).call, d16),
	0xD5: op("PUSH DE", 1, 16, "- - - -", (*CPU).push, pairDE),
	0xD6: op("SUB d8", 2, 8, "Z 1 H C", (*CPU).sub, regA, d8),
	0xD7: branch("RST 10H", 1, 16, 16, Always, (*CPU).restart, Const(0x10)),
	0xD8: branch("RET C", 1, 20, 8, CY, (*CPU).ret),
	0xD9: branch("RETI", 1, 16, 16, Always, (*CPU).reti),
	0xDA: branch("JP C,a16", 3, 16, 12, CY, (*CPU).jumpAbsolute, d16),
	0xDB: disallowedOpcode(),
	0xDC: branch("CALL C,a16", 3, 24, 12, CY, (*CPU).call, d16),
	0xDD: disallowedOpcode(),
	0xDE: op("SBC A,d8", 2, 8, "Z 1 H C", (*CPU).sbc, regA, d8),
	0xDF: branch("RST 18H", 1, 16, 16, Always, (*CPU).restart, Const(0x18)),
	0xE0: op("LDH (a8),A", 2, 12, "- - - -", (*CPU).move, ioA8, regA),
	0xE1: op("POP HL", 1, 12, "- - - -", (*CPU).pop, pairHL),
	0xE2: op("LD (C),A", 1, 8, "- - - -", (*CPU).move, ioC, regA),
	0xE3: disallowedOpcode(),
	0xE4: disallowedOpcode(),
	0xE5: op("PUSH HL", 1, 16, "- - - -", (*CPU).push, pairHL),
	0xE6: op("AND d8", 2, 8, "Z 0 1 0", (*CPU).and, regA, d8),
	0xE7: branch("RST 20H", 1, 16, 16, Always, (*CPU).restart, Const(0x20)),
	0xE8: op("ADD SP,r8", 2, 16, "0 0 H C", (*CPU).addSP, pairSP, d8),
	0xE9: branch("JP (HL)", 1, 4, 4, Always, (*CPU).jumpAbsolute, pairHL),
	0xEA: op("LD (a16),A", 3, 16, "- - - -", (*CPU).move, atA16, regA),
	0xEB: disallowedOpcode(),
	0xEC: disallowedOpcode(),
	0xED: disallowedOpcode(),
	0xEE: op("XOR d8", 2, 8, "Z 0 0 0", (*CPU).xor, regA, d8),
	0xEF: branch("RST 28H", 1, 16, 16, Always, (*CPU).restart, Const(0x28)),
	0xF0: op("LDH A,(a8)", 2, 12, "- - - -", (*CPU).move, regA, ioA8),
	0xF1: op("POP AF", 1, 12, "Z N H C", (*CPU).pop, pairAF),
	0xF2: op("LD A,(C)", 1, 8, "- - - -", (*CPU).move, regA, ioC),
	0xF3: op("DI", 1, 4, "- - - -", (*CPU).di),
	0xF4: disallowedOpcode(),
	0xF5: op("PUSH AF", 1, 16, "- - - -", (*CPU).push, pairAF),
	0xF6: op("OR d8", 2, 8, "Z 0 0 0", (*CPU).or, regA, d8),
	0xF7: branch("RST 30H", 1, 16, 16, Always, (*CPU).restart, Const(0x30)),
	0xF8: op("LD HL,SP+r8", 2, 12, "0 0 H C", (*CPU).addSP, pairHL, d8),
	0xF9: op("LD SP,HL", 1, 8, "- - - -", (*CPU).move, pairSP, pairHL),
	0xFA: op("LD A,(a16)", 3, 16, "- - - -", (*CPU).move, regA, atA16),
	0xFB: op("EI", 1, 4, "- - - -", (*CPU).ei),
	0xFC: disallowedOpcode(),
	0xFD: disallowedOpcode(),
	0xFE: op("CP d8", 2, 8, "Z 1 H C", (*CPU).compare, regA, d8),
	0xFF: branch("RST 38H", 1, 16, 16, Always, (*CPU).restart, Const(0x38)),
}
