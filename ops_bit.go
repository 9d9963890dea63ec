package z8000

// BIT/SET/RES address one bit of a word or byte register, selected either
// by a 4-bit immediate (word: 0-15, byte: 0-7) or by the low bits of
// another register's value.

func opcodeBITimm(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, bit := hiNib(b1), loNib(b1)
	c.setFlags(flags{Z: c.Regs.RW(dst)&(1<<uint(bit)) == 0})
}

func opcodeBITreg(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, sel := hiNib(b1), loNib(b1)
	bit := c.Regs.RW(sel) & 0x0F
	c.setFlags(flags{Z: c.Regs.RW(dst)&(1<<bit) == 0})
}

func opcodeBITBimm(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, bit := hiNib(b1), loNib(b1)&0x7
	c.setFlags(flags{Z: c.Regs.RB(dst)&(1<<uint(bit)) == 0})
}

func opcodeBITBreg(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, sel := hiNib(b1), loNib(b1)
	bit := c.Regs.RW(sel) & 0x07
	c.setFlags(flags{Z: c.Regs.RB(dst)&(1<<bit) == 0})
}

func opcodeSETimm(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, bit := hiNib(b1), loNib(b1)
	c.Regs.SetRW(dst, c.Regs.RW(dst)|(1<<uint(bit)))
}

func opcodeSETreg(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, sel := hiNib(b1), loNib(b1)
	bit := c.Regs.RW(sel) & 0x0F
	c.Regs.SetRW(dst, c.Regs.RW(dst)|(1<<bit))
}

func opcodeSETBimm(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, bit := hiNib(b1), loNib(b1)&0x7
	c.Regs.SetRB(dst, c.Regs.RB(dst)|(1<<uint(bit)))
}

func opcodeSETBreg(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, sel := hiNib(b1), loNib(b1)
	bit := c.Regs.RW(sel) & 0x07
	c.Regs.SetRB(dst, c.Regs.RB(dst)|(1<<bit))
}

func opcodeRESimm(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, bit := hiNib(b1), loNib(b1)
	c.Regs.SetRW(dst, c.Regs.RW(dst)&^(1<<uint(bit)))
}

func opcodeRESreg(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, sel := hiNib(b1), loNib(b1)
	bit := c.Regs.RW(sel) & 0x0F
	c.Regs.SetRW(dst, c.Regs.RW(dst)&^(1<<bit))
}

func opcodeRESBimm(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, bit := hiNib(b1), loNib(b1)&0x7
	c.Regs.SetRB(dst, c.Regs.RB(dst)&^(1<<uint(bit)))
}

func opcodeRESBreg(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, sel := hiNib(b1), loNib(b1)
	bit := c.Regs.RW(sel) & 0x07
	c.Regs.SetRB(dst, c.Regs.RB(dst)&^(1<<bit))
}
