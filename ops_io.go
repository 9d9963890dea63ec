package z8000

// I/O instructions address the standard I/O space unless the S-prefixed
// form selects the special I/O space instead (spec.md §4.2). Both the
// immediate-port and register-port forms are privileged.

func opcodeINimm(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	dst := loNib(opByte1(opcode))
	port := c.fetchWord()
	c.Regs.SetRW(dst, c.bus.IOReadWord(port))
}

func opcodeINreg(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	b1 := opByte1(opcode)
	dst, portReg := hiNib(b1), loNib(b1)
	c.Regs.SetRW(dst, c.bus.IOReadWord(c.Regs.RW(portReg)))
}

func opcodeOUTimm(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	src := loNib(opByte1(opcode))
	port := c.fetchWord()
	c.bus.IOWriteWord(port, c.Regs.RW(src))
}

func opcodeOUTreg(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	b1 := opByte1(opcode)
	portReg, src := hiNib(b1), loNib(b1)
	c.bus.IOWriteWord(c.Regs.RW(portReg), c.Regs.RW(src))
}

func opcodeINBimm(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	dst := loNib(opByte1(opcode))
	port := c.fetchWord()
	c.Regs.SetRB(dst, c.bus.IOReadByte(port))
}

func opcodeINBreg(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	b1 := opByte1(opcode)
	dst, portReg := hiNib(b1), loNib(b1)
	c.Regs.SetRB(dst, c.bus.IOReadByte(c.Regs.RW(portReg)))
}

func opcodeOUTBimm(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	src := loNib(opByte1(opcode))
	port := c.fetchWord()
	c.bus.IOWriteByte(port, c.Regs.RB(src))
}

func opcodeOUTBreg(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	b1 := opByte1(opcode)
	portReg, src := hiNib(b1), loNib(b1)
	c.bus.IOWriteByte(c.Regs.RW(portReg), c.Regs.RB(src))
}

func opcodeSINimm(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	dst := loNib(opByte1(opcode))
	port := c.fetchWord()
	c.Regs.SetRW(dst, c.bus.SpecialIOReadWord(port))
}

func opcodeSINreg(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	b1 := opByte1(opcode)
	dst, portReg := hiNib(b1), loNib(b1)
	c.Regs.SetRW(dst, c.bus.SpecialIOReadWord(c.Regs.RW(portReg)))
}

func opcodeSOUTimm(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	src := loNib(opByte1(opcode))
	port := c.fetchWord()
	c.bus.SpecialIOWriteWord(port, c.Regs.RW(src))
}

func opcodeSOUTreg(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	b1 := opByte1(opcode)
	portReg, src := hiNib(b1), loNib(b1)
	c.bus.SpecialIOWriteWord(c.Regs.RW(portReg), c.Regs.RW(src))
}

func opcodeSINBimm(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	dst := loNib(opByte1(opcode))
	port := c.fetchWord()
	c.Regs.SetRB(dst, c.bus.SpecialIOReadByte(port))
}

func opcodeSINBreg(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	b1 := opByte1(opcode)
	dst, portReg := hiNib(b1), loNib(b1)
	c.Regs.SetRB(dst, c.bus.SpecialIOReadByte(c.Regs.RW(portReg)))
}

func opcodeSOUTBimm(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	src := loNib(opByte1(opcode))
	port := c.fetchWord()
	c.bus.SpecialIOWriteByte(port, c.Regs.RB(src))
}

func opcodeSOUTBreg(c *CPU, opcode uint16, desc *opDesc) {
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	b1 := opByte1(opcode)
	portReg, src := hiNib(b1), loNib(b1)
	c.bus.SpecialIOWriteByte(c.Regs.RW(portReg), c.Regs.RB(src))
}
