package z8000

// --- LD / LDB --------------------------------------------------------

func opcodeLDimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	c.Regs.SetRW(dst, c.fetchWord())
}

func opcodeLDrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	c.Regs.SetRW(dst, c.Regs.RW(src))
}

func opcodeLDir(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, dst := hiNib(b1), loNib(b1)
	v, ok := c.readWordOperand(modeIR, hi)
	if ok {
		c.Regs.SetRW(dst, v)
	}
}

func opcodeLDda(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	addr := c.fetchWord()
	c.Regs.SetRW(dst, c.bus.DataReadWord(addr))
}

func opcodeLDx(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, dst := hiNib(b1), loNib(b1)
	v, ok := c.readWordOperand(modeX, hi)
	if ok {
		c.Regs.SetRW(dst, v)
	}
}

// opcodeLDsir/LDsda/LDsx are the store direction: register to memory.
func opcodeLDsir(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, src := hiNib(b1), loNib(b1)
	c.writeWordOperand(modeIR, hi, c.Regs.RW(src))
}

func opcodeLDsda(c *CPU, opcode uint16, desc *opDesc) {
	src := loNib(opByte1(opcode))
	addr := c.fetchWord()
	c.bus.DataWriteWord(addr, c.Regs.RW(src))
}

func opcodeLDsx(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, src := hiNib(b1), loNib(b1)
	c.writeWordOperand(modeX, hi, c.Regs.RW(src))
}

func opcodeLDBrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	c.Regs.SetRB(dst, c.Regs.RB(src))
}

func opcodeLDBir(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, dst := hiNib(b1), loNib(b1)
	v, ok := c.readByteOperand(modeIR, hi)
	if ok {
		c.Regs.SetRB(dst, v)
	}
}

func opcodeLDBda(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	addr := c.fetchWord()
	c.Regs.SetRB(dst, c.bus.DataReadByte(addr))
}

func opcodeLDBx(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, dst := hiNib(b1), loNib(b1)
	v, ok := c.readByteOperand(modeX, hi)
	if ok {
		c.Regs.SetRB(dst, v)
	}
}

func opcodeLDBsir(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, src := hiNib(b1), loNib(b1)
	c.writeByteOperand(modeIR, hi, c.Regs.RB(src))
}

func opcodeLDBsda(c *CPU, opcode uint16, desc *opDesc) {
	src := loNib(opByte1(opcode))
	addr := c.fetchWord()
	c.bus.DataWriteByte(addr, c.Regs.RB(src))
}

func opcodeLDBsx(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, src := hiNib(b1), loNib(b1)
	c.writeByteOperand(modeX, hi, c.Regs.RB(src))
}

// opcodeLDBimm implements the compact single-word LDB Rn,#imm8 form
// (0xCnii): register in byte0's low nibble, immediate in byte1.
func opcodeLDBimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := int(opcode>>8) & 0x0F
	c.Regs.SetRB(dst, opByte1(opcode))
}

// --- LDL ---------------------------------------------------------------

func opcodeLDLim(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	if !c.longRegOK(dst) {
		return
	}
	hi, lo := c.fetchWord(), c.fetchWord()
	c.Regs.SetRL(dst, uint32(hi)<<16|uint32(lo))
}

func opcodeLDLrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1)&0xE, loNib(b1)&0xE
	if !c.longRegOK(src) || !c.longRegOK(dst) {
		return
	}
	c.Regs.SetRL(dst, c.Regs.RL(src))
}

// longFromMemory/longToMemory read and write a 32-bit long through data
// space; data space uses DataReadWord/DataWriteWord rather than the
// program-space readLong/writeLong helpers in bus.go, so they are
// reimplemented here against the Data* accessors.
func (c *CPU) longFromMemory(addr uint16) uint32 {
	hi := c.bus.DataReadWord(addr)
	lo := c.bus.DataReadWord(addr + 2)
	return uint32(hi)<<16 | uint32(lo)
}

func (c *CPU) longToMemory(addr uint16, v uint32) {
	c.bus.DataWriteWord(addr, uint16(v>>16))
	c.bus.DataWriteWord(addr+2, uint16(v))
}

func opcodeLDLir(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, dst := hiNib(b1), loNib(b1)&0xE
	if !c.longRegOK(dst) {
		return
	}
	addr, ok := c.effectiveAddress(modeIR, hi)
	if ok {
		c.Regs.SetRL(dst, c.longFromMemory(addr))
	}
}

func opcodeLDLda(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode)) & 0xE
	if !c.longRegOK(dst) {
		return
	}
	addr := c.fetchWord()
	c.Regs.SetRL(dst, c.longFromMemory(addr))
}

func opcodeLDLx(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, dst := hiNib(b1), loNib(b1)&0xE
	if !c.longRegOK(dst) {
		return
	}
	addr, ok := c.effectiveAddress(modeX, hi)
	if ok {
		c.Regs.SetRL(dst, c.longFromMemory(addr))
	}
}

func opcodeLDLsir(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, src := hiNib(b1), loNib(b1)&0xE
	if !c.longRegOK(src) {
		return
	}
	addr, ok := c.effectiveAddress(modeIR, hi)
	if ok {
		c.longToMemory(addr, c.Regs.RL(src))
	}
}

func opcodeLDLsda(c *CPU, opcode uint16, desc *opDesc) {
	src := loNib(opByte1(opcode)) & 0xE
	if !c.longRegOK(src) {
		return
	}
	addr := c.fetchWord()
	c.longToMemory(addr, c.Regs.RL(src))
}

func opcodeLDLsx(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, src := hiNib(b1), loNib(b1)&0xE
	if !c.longRegOK(src) {
		return
	}
	addr, ok := c.effectiveAddress(modeX, hi)
	if ok {
		c.longToMemory(addr, c.Regs.RL(src))
	}
}

// --- LDA / LDK / LDR -----------------------------------------------------

func opcodeLDAda(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	c.Regs.SetRW(dst, c.fetchWord())
}

func opcodeLDAx(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	reg, dst := hiNib(b1), loNib(b1)
	addr, ok := c.effectiveAddress(modeX, reg)
	if ok {
		c.Regs.SetRW(dst, addr)
	}
}

func opcodeLDK(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, k := hiNib(b1), loNib(b1)
	c.Regs.SetRW(dst, uint16(k))
}

// opcodeLDRld/LDRst: LDR loads/stores a register using a PC-relative
// displacement, the word-aligned form spec.md §4.5 calls out for
// position-independent constant tables.
func opcodeLDRld(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	disp := int16(c.fetchWord())
	addr := uint16(int32(c.PC) + int32(disp))
	c.Regs.SetRW(dst, c.bus.DataReadWord(addr))
}

func opcodeLDRst(c *CPU, opcode uint16, desc *opDesc) {
	src := loNib(opByte1(opcode))
	disp := int16(c.fetchWord())
	addr := uint16(int32(c.PC) + int32(disp))
	c.bus.DataWriteWord(addr, c.Regs.RW(src))
}

// --- PUSH / POP ----------------------------------------------------------

func opcodePUSH(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	sp, src := hiNib(b1), loNib(b1)
	newSP := c.Regs.RW(sp) - 2
	c.bus.WriteWord(newSP, c.Regs.RW(src))
	c.Regs.SetRW(sp, newSP)
}

func opcodePOP(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, sp := hiNib(b1), loNib(b1)
	addr := c.Regs.RW(sp)
	c.Regs.SetRW(dst, c.bus.ReadWord(addr))
	c.Regs.SetRW(sp, addr+2)
}

func opcodePUSHL(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	sp, src := hiNib(b1), loNib(b1)&0xE
	if !c.longRegOK(src) {
		return
	}
	newSP := c.Regs.RW(sp) - 4
	writeLong(c.bus, newSP, c.Regs.RL(src))
	c.Regs.SetRW(sp, newSP)
}

func opcodePOPL(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, sp := hiNib(b1)&0xE, loNib(b1)
	if !c.longRegOK(dst) {
		return
	}
	addr := c.Regs.RW(sp)
	c.Regs.SetRL(dst, readLong(c.bus, addr))
	c.Regs.SetRW(sp, addr+4)
}
