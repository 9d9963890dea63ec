package z8000

func opcodeANDimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	result := c.Regs.RW(dst) & c.fetchWord()
	c.Regs.SetRW(dst, result)
	c.setFlags(logicalFlagsWord(result))
}

func opcodeANDrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	result := c.Regs.RW(dst) & c.Regs.RW(src)
	c.Regs.SetRW(dst, result)
	c.setFlags(logicalFlagsWord(result))
}

func opcodeANDir(c *CPU, opcode uint16, desc *opDesc) {
	dst, v, ok := memSrcWord(c, opcode, modeIR)
	if !ok {
		return
	}
	result := c.Regs.RW(dst) & v
	c.Regs.SetRW(dst, result)
	c.setFlags(logicalFlagsWord(result))
}

func opcodeORimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	result := c.Regs.RW(dst) | c.fetchWord()
	c.Regs.SetRW(dst, result)
	c.setFlags(logicalFlagsWord(result))
}

func opcodeORrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	result := c.Regs.RW(dst) | c.Regs.RW(src)
	c.Regs.SetRW(dst, result)
	c.setFlags(logicalFlagsWord(result))
}

func opcodeORir(c *CPU, opcode uint16, desc *opDesc) {
	dst, v, ok := memSrcWord(c, opcode, modeIR)
	if !ok {
		return
	}
	result := c.Regs.RW(dst) | v
	c.Regs.SetRW(dst, result)
	c.setFlags(logicalFlagsWord(result))
}

func opcodeXORimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	result := c.Regs.RW(dst) ^ c.fetchWord()
	c.Regs.SetRW(dst, result)
	c.setFlags(logicalFlagsWord(result))
}

func opcodeXORrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	result := c.Regs.RW(dst) ^ c.Regs.RW(src)
	c.Regs.SetRW(dst, result)
	c.setFlags(logicalFlagsWord(result))
}

func opcodeXORir(c *CPU, opcode uint16, desc *opDesc) {
	dst, v, ok := memSrcWord(c, opcode, modeIR)
	if !ok {
		return
	}
	result := c.Regs.RW(dst) ^ v
	c.Regs.SetRW(dst, result)
	c.setFlags(logicalFlagsWord(result))
}

func opcodeTEST(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	result := c.Regs.RW(dst) & c.Regs.RW(src)
	c.setFlags(logicalFlagsWord(result))
}

// --- byte forms -----------------------------------------------------

func opcodeANDBimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	result := c.Regs.RB(dst) & c.fetchByte()
	c.Regs.SetRB(dst, result)
	c.setFlags(logicalFlagsByte(result))
}

func opcodeANDBrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	result := c.Regs.RB(dst) & c.Regs.RB(src)
	c.Regs.SetRB(dst, result)
	c.setFlags(logicalFlagsByte(result))
}

func opcodeANDBir(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, dst := hiNib(b1), loNib(b1)
	v, ok := c.readByteOperand(modeIR, hi)
	if !ok {
		return
	}
	result := c.Regs.RB(dst) & v
	c.Regs.SetRB(dst, result)
	c.setFlags(logicalFlagsByte(result))
}

func opcodeORBimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	result := c.Regs.RB(dst) | c.fetchByte()
	c.Regs.SetRB(dst, result)
	c.setFlags(logicalFlagsByte(result))
}

func opcodeORBrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	result := c.Regs.RB(dst) | c.Regs.RB(src)
	c.Regs.SetRB(dst, result)
	c.setFlags(logicalFlagsByte(result))
}

func opcodeORBir(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, dst := hiNib(b1), loNib(b1)
	v, ok := c.readByteOperand(modeIR, hi)
	if !ok {
		return
	}
	result := c.Regs.RB(dst) | v
	c.Regs.SetRB(dst, result)
	c.setFlags(logicalFlagsByte(result))
}

func opcodeXORBimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	result := c.Regs.RB(dst) ^ c.fetchByte()
	c.Regs.SetRB(dst, result)
	c.setFlags(logicalFlagsByte(result))
}

func opcodeXORBrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	result := c.Regs.RB(dst) ^ c.Regs.RB(src)
	c.Regs.SetRB(dst, result)
	c.setFlags(logicalFlagsByte(result))
}

func opcodeXORBir(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, dst := hiNib(b1), loNib(b1)
	v, ok := c.readByteOperand(modeIR, hi)
	if !ok {
		return
	}
	result := c.Regs.RB(dst) ^ v
	c.Regs.SetRB(dst, result)
	c.setFlags(logicalFlagsByte(result))
}

func opcodeTESTB(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	result := c.Regs.RB(dst) & c.Regs.RB(src)
	c.setFlags(logicalFlagsByte(result))
}
