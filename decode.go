package z8000

// addrMode is the addressing-mode tag resolved by the decoder after
// dispatch, per the table in spec.md §4.4.
type addrMode int

const (
	modeR  addrMode = iota // register
	modeIM                 // immediate: next word (or byte)
	modeIR                 // register indirect
	modeDA                 // direct address: next word
	modeX                  // indexed: next word + register value
	modeBA                 // base address: register + signed next word
	modeBX                 // base indexed: register + another register
)

// handlerFunc executes one instruction given the already-fetched opcode
// word and its dispatch descriptor. PC has already advanced past the
// opcode word when the handler runs; the handler consumes any further
// extension words itself via the CPU's sequential fetcher.
type handlerFunc func(c *CPU, opcode uint16, desc *opDesc)

// opDesc is one entry of the compact descriptor list the dispatch table is
// built from: a 16-bit mask/match pair plus the handler it selects. Ties
// between overlapping descriptors are broken by preferring the more
// specific (more one-bits in mask) descriptor, per spec.md §4.4/§9.
type opDesc struct {
	mask, match uint16
	handler     handlerFunc
	cycles      int
	name        string
}

type dispatchEntry struct {
	handler handlerFunc
	desc    *opDesc
}

// opByte1 extracts the low byte of the instruction word (the register and
// immediate-field byte for single-word forms).
func opByte1(opcode uint16) byte { return byte(opcode) }

func hiNib(b byte) int { return int(b >> 4) }
func loNib(b byte) int { return int(b & 0x0F) }

func popcount16(v uint16) int {
	n := 0
	for v != 0 {
		n++
		v &= v - 1
	}
	return n
}

// buildDispatchTable populates the 65,536-entry decoded-opcode table from
// descriptors, choosing for each possible instruction word the matching
// descriptor with the most specific mask. Unassigned entries are left
// nil and trap as Extended-Instruction at dispatch time.
func (c *CPU) buildDispatchTable() {
	descs := allDescriptors()
	bestSpecificity := make([]int, 65536)
	for i := range descs {
		d := &descs[i]
		for w := 0; w < 65536; w++ {
			word := uint16(w)
			if word&d.mask != d.match {
				continue
			}
			spec := popcount16(d.mask)
			if c.table[word].handler == nil || spec > bestSpecificity[word] {
				c.table[word] = dispatchEntry{handler: d.handler, desc: d}
				bestSpecificity[word] = spec
			}
		}
	}
}

// --- Operand resolution -----------------------------------------------

// regOK reports whether register index n is legal in an indirect
// addressing context; register 0 is reserved to mean "no register" and
// its use in IR/X/BA/BX addressing traps as Extended-Instruction.
func (c *CPU) regOK(n int) bool {
	if n == 0 {
		c.raiseExtendedInstruction()
		return false
	}
	return true
}

// longRegOK reports whether n is a legal long-register index (even).
func (c *CPU) longRegOK(n int) bool {
	if n&1 != 0 {
		c.raiseExtendedInstruction()
		return false
	}
	return true
}

// effectiveAddress computes the memory address for the IR/DA/X/BA/BX
// modes, consuming extension words from the instruction stream as needed.
// reg is the primary register field carried in the opcode's fixed bits.
func (c *CPU) effectiveAddress(mode addrMode, reg int) (addr uint16, ok bool) {
	switch mode {
	case modeIR:
		if !c.regOK(reg) {
			return 0, false
		}
		return c.Regs.RW(reg), true
	case modeDA:
		return c.fetchWord(), true
	case modeX:
		disp := c.fetchWord()
		if !c.regOK(reg) {
			return 0, false
		}
		return disp + c.Regs.RW(reg), true
	case modeBA:
		if !c.regOK(reg) {
			return 0, false
		}
		disp := int16(c.fetchWord())
		return c.Regs.RW(reg) + uint16(disp), true
	case modeBX:
		idx := int(c.fetchWord() & 0x0F)
		if !c.regOK(reg) || !c.regOK(idx) {
			return 0, false
		}
		return c.Regs.RW(reg) + c.Regs.RW(idx), true
	}
	return 0, false
}

// readWordOperand resolves a word source operand in mode/reg, reading
// through data space for memory modes.
func (c *CPU) readWordOperand(mode addrMode, reg int) (value uint16, ok bool) {
	switch mode {
	case modeR:
		return c.Regs.RW(reg), true
	case modeIM:
		return c.fetchWord(), true
	default:
		addr, ok := c.effectiveAddress(mode, reg)
		if !ok {
			return 0, false
		}
		return c.bus.DataReadWord(addr), true
	}
}

func (c *CPU) readByteOperand(mode addrMode, reg int) (value byte, ok bool) {
	switch mode {
	case modeR:
		return c.Regs.RB(reg), true
	case modeIM:
		return c.fetchByte(), true
	default:
		addr, ok := c.effectiveAddress(mode, reg)
		if !ok {
			return 0, false
		}
		return c.bus.DataReadByte(addr), true
	}
}

// writeWordOperand writes a word result back to mode/reg; IM mode is never
// a legal destination and is rejected by the caller before this is used.
func (c *CPU) writeWordOperand(mode addrMode, reg int, v uint16) bool {
	if mode == modeR {
		c.Regs.SetRW(reg, v)
		return true
	}
	addr, ok := c.effectiveAddress(mode, reg)
	if !ok {
		return false
	}
	c.bus.DataWriteWord(addr, v)
	return true
}

func (c *CPU) writeByteOperand(mode addrMode, reg int, v byte) bool {
	if mode == modeR {
		c.Regs.SetRB(reg, v)
		return true
	}
	addr, ok := c.effectiveAddress(mode, reg)
	if !ok {
		return false
	}
	c.bus.DataWriteByte(addr, v)
	return true
}

// condCode is a 4-bit Z8000 condition code as described in spec.md §4.5,
// covering always/never, Z/NZ, C/NC, sign, overflow, sign+overflow
// combinations, and unsigned LE/GT/LT/GE.
type condCode int

const (
	ccF   condCode = 0x0 // never
	ccLT  condCode = 0x1 // signed <
	ccLE  condCode = 0x2 // signed <=
	ccULE condCode = 0x3 // unsigned <=
	ccOV  condCode = 0x4 // overflow
	ccMI  condCode = 0x5 // sign set
	ccZ   condCode = 0x6 // zero / equal
	ccC   condCode = 0x7 // carry / unsigned <
	ccT   condCode = 0x8 // always
	ccGE  condCode = 0x9 // signed >=
	ccGT  condCode = 0xA // signed >
	ccUGT condCode = 0xB // unsigned >
	ccNOV condCode = 0xC // no overflow
	ccPL  condCode = 0xD // sign clear
	ccNZ  condCode = 0xE // not zero
	ccNC  condCode = 0xF // no carry / unsigned >=
)

// evalCondition evaluates a 4-bit condition code against the current FCW.
func (c *CPU) evalCondition(cc condCode) bool {
	fcw := c.FCW
	return evalConditionFlags(fcw&FCWC != 0, fcw&FCWZ != 0, fcw&FCWS != 0, fcw&FCWPV != 0, cc)
}

// evalConditionFlags evaluates a 4-bit condition code against an explicit
// C/Z/S/V set, for callers (block compare instructions) that need to test
// a condition against flags before they're folded into the FCW.
func evalConditionFlags(cFlag, zFlag, sFlag, vFlag bool, cc condCode) bool {
	switch cc {
	case ccF:
		return false
	case ccT:
		return true
	case ccZ:
		return zFlag
	case ccNZ:
		return !zFlag
	case ccC:
		return cFlag
	case ccNC:
		return !cFlag
	case ccMI:
		return sFlag
	case ccPL:
		return !sFlag
	case ccOV:
		return vFlag
	case ccNOV:
		return !vFlag
	case ccLT:
		return sFlag != vFlag
	case ccGE:
		return sFlag == vFlag
	case ccLE:
		return (sFlag != vFlag) || zFlag
	case ccGT:
		return (sFlag == vFlag) && !zFlag
	case ccULE:
		return cFlag || zFlag
	case ccUGT:
		return !cFlag && !zFlag
	}
	return false
}
