package z8000

func opcodeNOP(c *CPU, opcode uint16, desc *opDesc) {}

func opcodeHALT(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	c.halted.Store(true)
}

func opcodeDI(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	b1 := opByte1(opcode)
	if b1&0x1 != 0 {
		c.FCW &^= FCWVIE
	}
	if b1&0x2 != 0 {
		c.FCW &^= FCWNVIE
	}
}

func opcodeEI(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	b1 := opByte1(opcode)
	if b1&0x1 != 0 {
		c.FCW |= FCWVIE
	}
	if b1&0x2 != 0 {
		c.FCW |= FCWNVIE
	}
}

func opcodeSC(c *CPU, opcode uint16, desc *opDesc) {
	c.raiseSystemCall(opByte1(opcode))
}

func opcodeRESET(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	c.Reset()
}

// ctlSelector identifies which control register LDCTL addresses, packed
// into byte1's low nibble.
type ctlSelector int

const (
	ctlFCW ctlSelector = iota
	ctlFlags
	ctlRefresh
	ctlPSAP
	ctlNSP
)

func opcodeLDCTLin(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	b1 := opByte1(opcode)
	dst, sel := hiNib(b1), ctlSelector(loNib(b1))
	c.Regs.SetRW(dst, c.readCtl(sel))
}

func opcodeLDCTLout(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	b1 := opByte1(opcode)
	sel, src := ctlSelector(loNib(b1)), hiNib(b1)
	c.writeCtl(sel, c.Regs.RW(src))
}

func (c *CPU) readCtl(sel ctlSelector) uint16 {
	switch sel {
	case ctlFCW, ctlFlags:
		return c.FCW
	case ctlRefresh:
		return c.Refresh
	case ctlPSAP:
		return c.PSAP
	case ctlNSP:
		return c.Regs.RW(15)
	}
	return 0
}

func (c *CPU) writeCtl(sel ctlSelector, v uint16) {
	switch sel {
	case ctlFCW, ctlFlags:
		c.FCW = v
	case ctlRefresh:
		c.Refresh = v
	case ctlPSAP:
		c.PSAP = v
	case ctlNSP:
		c.Regs.SetRW(15, v)
	}
}

// opcodeLDPS loads a new FCW/PC pair from the memory operand addressed by
// the extension word, the software equivalent of a trap entry used to
// return from a system routine without unwinding the stack.
func opcodeLDPS(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	addr := c.fetchWord()
	c.FCW = c.bus.ReadWord(addr)
	c.PC = c.bus.ReadWord(addr + 2)
}
