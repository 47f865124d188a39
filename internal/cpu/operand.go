package cpu

import "fmt"

// Width is the size of the value an operand carries.
type Width uint8

const (
	Byte Width = 1
	Word Width = 2
)

type operandKind uint8

const (
	kindNone operandKind = iota
	kindRegister
	kindPair
	kindImmediate8
	kindImmediate16
	kindConstant
	kindIncrement
	kindDecrement
	kindMemory
	kindIOPort
)

// Operand describes where an instruction reads or writes a value. It
// is pure data: nothing is read from the CPU until the operand is
// resolved by the microcode, at which point immediates are fetched
// relative to the PC of the executing instruction.
//
// Memory and IOPort operands take their address from another
// operand, e.g. (HL+) is At(Increment(PairHL)).
type Operand struct {
	kind  operandKind
	width Width
	reg   Register
	pair  Pair
	value uint16
	addr  *Operand
}

// R is an 8-bit register operand.
func R(reg Register) Operand {
	return Operand{kind: kindRegister, width: Byte, reg: reg}
}

// RR is a 16-bit register operand.
func RR(pair Pair) Operand {
	return Operand{kind: kindPair, width: Word, pair: pair}
}

// Const is a constant value, such as an RST vector.
func Const(value uint16) Operand {
	width := Byte
	if value > 0xFF {
		width = Word
	}
	return Operand{kind: kindConstant, width: width, value: value}
}

// Increment yields the value of pair and then increments it.
func Increment(pair Pair) Operand {
	return Operand{kind: kindIncrement, width: Word, pair: pair}
}

// Decrement yields the value of pair and then decrements it.
func Decrement(pair Pair) Operand {
	return Operand{kind: kindDecrement, width: Word, pair: pair}
}

// At is the byte of memory addressed by src.
func At(src Operand) Operand {
	return Operand{kind: kindMemory, width: Byte, addr: &src}
}

// WordAt is the little-endian word of memory addressed by src.
func WordAt(src Operand) Operand {
	return Operand{kind: kindMemory, width: Word, addr: &src}
}

// IOPort is the byte of memory at 0xFF00 plus the low byte of src.
func IOPort(src Operand) Operand {
	return Operand{kind: kindIOPort, width: Byte, addr: &src}
}

var (
	// d8 is the byte following the opcode.
	d8 = Operand{kind: kindImmediate8, width: Byte}
	// d16 is the little-endian word following the opcode.
	d16 = Operand{kind: kindImmediate16, width: Word}
)

// Width returns the width of the value the operand carries.
func (o Operand) Width() Width {
	return o.width
}

// Writable reports whether the operand may be used as a destination.
func (o Operand) Writable() bool {
	switch o.kind {
	case kindRegister, kindPair, kindMemory, kindIOPort:
		return true
	}
	return false
}

// IsZero reports whether the operand is unset.
func (o Operand) IsZero() bool {
	return o.kind == kindNone
}

func (o Operand) String() string {
	switch o.kind {
	case kindRegister:
		return o.reg.String()
	case kindPair:
		return o.pair.String()
	case kindImmediate8:
		return "d8"
	case kindImmediate16:
		return "d16"
	case kindConstant:
		return fmt.Sprintf("$%02X", o.value)
	case kindIncrement:
		return o.pair.String() + "+"
	case kindDecrement:
		return o.pair.String() + "-"
	case kindMemory:
		return "(" + o.addr.String() + ")"
	case kindIOPort:
		return "($FF00+" + o.addr.String() + ")"
	}
	return ""
}

type cellKind uint8

const (
	cellValue cellKind = iota
	cellRegister
	cellPair
	cellMemory
)

// cell is a resolved operand: a register, a memory location or a
// plain value. Resolving performs every side effect of the operand
// (immediate fetches, auto increment and decrement) exactly once, so
// loads and stores on a cell are free of hidden state.
type cell struct {
	kind  cellKind
	width Width
	reg   Register
	pair  Pair
	addr  uint16
	value uint16
}

// resolve turns an operand into a cell. It must be called at most
// once per operand per instruction.
func (c *CPU) resolve(o Operand) cell {
	switch o.kind {
	case kindRegister:
		return cell{kind: cellRegister, width: Byte, reg: o.reg}
	case kindPair:
		return cell{kind: cellPair, width: Word, pair: o.pair}
	case kindImmediate8:
		return cell{kind: cellValue, width: Byte, value: uint16(c.bus.ReadByte(c.PC + 1))}
	case kindImmediate16:
		return cell{kind: cellValue, width: Word, value: c.readWord(c.PC + 1)}
	case kindConstant:
		return cell{kind: cellValue, width: o.width, value: o.value}
	case kindIncrement:
		v := c.Read16(o.pair)
		c.Write16(o.pair, v+1)
		return cell{kind: cellValue, width: Word, value: v}
	case kindDecrement:
		v := c.Read16(o.pair)
		c.Write16(o.pair, v-1)
		return cell{kind: cellValue, width: Word, value: v}
	case kindMemory:
		return cell{kind: cellMemory, width: o.width, addr: c.load(c.resolve(*o.addr))}
	case kindIOPort:
		return cell{kind: cellMemory, width: Byte, addr: 0xFF00 | c.load(c.resolve(*o.addr))&0xFF}
	}
	panic(fmt.Sprintf("cpu: cannot resolve operand kind %d", o.kind))
}

// load returns the value held by x.
func (c *CPU) load(x cell) uint16 {
	switch x.kind {
	case cellRegister:
		return uint16(c.Read8(x.reg))
	case cellPair:
		return c.Read16(x.pair)
	case cellMemory:
		if x.width == Word {
			return c.readWord(x.addr)
		}
		return uint16(c.bus.ReadByte(x.addr))
	}
	return x.value
}

// store writes value to x, truncated to the width of x.
func (c *CPU) store(x cell, value uint16) {
	switch x.kind {
	case cellRegister:
		c.Write8(x.reg, uint8(value))
	case cellPair:
		c.Write16(x.pair, value)
	case cellMemory:
		if x.width == Word {
			c.writeWord(x.addr, value)
		} else {
			c.bus.WriteByte(x.addr, uint8(value))
		}
	default:
		panic("cpu: store to read-only operand")
	}
}

// loadByte returns the value of an operand that must be 8 bits wide.
func (c *CPU) loadByte(x cell) (uint8, error) {
	v := c.load(x)
	if x.width != Byte || v > 0xFF {
		return 0, fmt.Errorf("%w: 0x%X", ErrOperandRange, v)
	}
	return uint8(v), nil
}
