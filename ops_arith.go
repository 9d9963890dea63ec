package z8000

func (c *CPU) setFlags(f flags) {
	c.FCW = f.apply(c.FCW)
}

// --- word add/sub/compare core ----------------------------------------

func (c *CPU) doAddWord(dst int, src uint16, cin bool) {
	a := c.Regs.RW(dst)
	result, f := addFlagsWord(a, src, cin)
	c.Regs.SetRW(dst, result)
	c.setFlags(f)
}

func (c *CPU) doSubWord(dst int, src uint16, bin bool, store bool) {
	a := c.Regs.RW(dst)
	result, f := subFlagsWord(a, src, bin)
	if store {
		c.Regs.SetRW(dst, result)
	}
	c.setFlags(f)
}

func (c *CPU) doAddByte(dst int, src byte, cin bool) {
	a := c.Regs.RB(dst)
	result, f := addFlagsByte(a, src, cin)
	c.Regs.SetRB(dst, result)
	c.setFlags(f)
}

func (c *CPU) doSubByte(dst int, src byte, bin bool, store bool) {
	a := c.Regs.RB(dst)
	result, f := subFlagsByte(a, src, bin)
	if store {
		c.Regs.SetRB(dst, result)
	}
	c.setFlags(f)
}

// --- ADD -----------------------------------------------------------

func opcodeADDimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	imm := c.fetchWord()
	c.doAddWord(dst, imm, false)
}

func opcodeADDrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	c.doAddWord(dst, c.Regs.RW(src), false)
}

func memSrcWord(c *CPU, opcode uint16, mode addrMode) (dst int, value uint16, ok bool) {
	b1 := opByte1(opcode)
	hi, lo := hiNib(b1), loNib(b1)
	dst = lo
	if mode == modeX {
		addr, okEA := c.effectiveAddress(modeX, hi)
		if !okEA {
			return dst, 0, false
		}
		return dst, c.bus.DataReadWord(addr), true
	}
	value, ok = c.readWordOperand(mode, hi)
	return dst, value, ok
}

func opcodeADDir(c *CPU, opcode uint16, desc *opDesc) {
	dst, v, ok := memSrcWord(c, opcode, modeIR)
	if ok {
		c.doAddWord(dst, v, false)
	}
}

func opcodeADDda(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	addr := c.fetchWord()
	c.doAddWord(dst, c.bus.DataReadWord(addr), false)
}

func opcodeADDx(c *CPU, opcode uint16, desc *opDesc) {
	dst, v, ok := memSrcWord(c, opcode, modeX)
	if ok {
		c.doAddWord(dst, v, false)
	}
}

func carryIn(c *CPU) bool { return c.FCW&FCWC != 0 }

func opcodeADCimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	imm := c.fetchWord()
	c.doAddWord(dst, imm, carryIn(c))
}

func opcodeADCrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	c.doAddWord(dst, c.Regs.RW(src), carryIn(c))
}

func opcodeADCir(c *CPU, opcode uint16, desc *opDesc) {
	dst, v, ok := memSrcWord(c, opcode, modeIR)
	if ok {
		c.doAddWord(dst, v, carryIn(c))
	}
}

func opcodeADCda(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	addr := c.fetchWord()
	c.doAddWord(dst, c.bus.DataReadWord(addr), carryIn(c))
}

func opcodeADCx(c *CPU, opcode uint16, desc *opDesc) {
	dst, v, ok := memSrcWord(c, opcode, modeX)
	if ok {
		c.doAddWord(dst, v, carryIn(c))
	}
}

// --- SUB/SBC ---------------------------------------------------------

func opcodeSUBimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	imm := c.fetchWord()
	c.doSubWord(dst, imm, false, true)
}

func opcodeSUBrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	c.doSubWord(dst, c.Regs.RW(src), false, true)
}

func opcodeSUBir(c *CPU, opcode uint16, desc *opDesc) {
	dst, v, ok := memSrcWord(c, opcode, modeIR)
	if ok {
		c.doSubWord(dst, v, false, true)
	}
}

func opcodeSUBda(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	addr := c.fetchWord()
	c.doSubWord(dst, c.bus.DataReadWord(addr), false, true)
}

func opcodeSUBx(c *CPU, opcode uint16, desc *opDesc) {
	dst, v, ok := memSrcWord(c, opcode, modeX)
	if ok {
		c.doSubWord(dst, v, false, true)
	}
}

func opcodeSBCimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	imm := c.fetchWord()
	c.doSubWord(dst, imm, carryIn(c), true)
}

func opcodeSBCrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	c.doSubWord(dst, c.Regs.RW(src), carryIn(c), true)
}

func opcodeSBCir(c *CPU, opcode uint16, desc *opDesc) {
	dst, v, ok := memSrcWord(c, opcode, modeIR)
	if ok {
		c.doSubWord(dst, v, carryIn(c), true)
	}
}

func opcodeSBCda(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	addr := c.fetchWord()
	c.doSubWord(dst, c.bus.DataReadWord(addr), carryIn(c), true)
}

func opcodeSBCx(c *CPU, opcode uint16, desc *opDesc) {
	dst, v, ok := memSrcWord(c, opcode, modeX)
	if ok {
		c.doSubWord(dst, v, carryIn(c), true)
	}
}

// --- byte ADD/ADC/SUB/SBC (immediate, register and indirect forms only)

func opcodeADDBimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	c.doAddByte(dst, c.fetchByte(), false)
}

func opcodeADDBrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	c.doAddByte(dst, c.Regs.RB(src), false)
}

func opcodeADDBir(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, dst := hiNib(b1), loNib(b1)
	v, ok := c.readByteOperand(modeIR, hi)
	if ok {
		c.doAddByte(dst, v, false)
	}
}

func opcodeADCBimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	c.doAddByte(dst, c.fetchByte(), carryIn(c))
}

func opcodeADCBrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	c.doAddByte(dst, c.Regs.RB(src), carryIn(c))
}

func opcodeADCBir(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, dst := hiNib(b1), loNib(b1)
	v, ok := c.readByteOperand(modeIR, hi)
	if ok {
		c.doAddByte(dst, v, carryIn(c))
	}
}

func opcodeSUBBimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	c.doSubByte(dst, c.fetchByte(), false, true)
}

func opcodeSUBBrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	c.doSubByte(dst, c.Regs.RB(src), false, true)
}

func opcodeSUBBir(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, dst := hiNib(b1), loNib(b1)
	v, ok := c.readByteOperand(modeIR, hi)
	if ok {
		c.doSubByte(dst, v, false, true)
	}
}

func opcodeSBCBimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	c.doSubByte(dst, c.fetchByte(), carryIn(c), true)
}

func opcodeSBCBrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	c.doSubByte(dst, c.Regs.RB(src), carryIn(c), true)
}

func opcodeSBCBir(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, dst := hiNib(b1), loNib(b1)
	v, ok := c.readByteOperand(modeIR, hi)
	if ok {
		c.doSubByte(dst, v, carryIn(c), true)
	}
}

// --- long ADD/SUB ------------------------------------------------------

func opcodeADDLimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	if !c.longRegOK(dst) {
		return
	}
	hi, lo := c.fetchWord(), c.fetchWord()
	imm := uint32(hi)<<16 | uint32(lo)
	a := c.Regs.RL(dst)
	result, f := addFlagsLong(a, imm, false)
	c.Regs.SetRL(dst, result)
	c.setFlags(f)
}

func opcodeADDLrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1)&0xE, loNib(b1)&0xE
	if !c.longRegOK(dst) || !c.longRegOK(src) {
		return
	}
	a := c.Regs.RL(dst)
	result, f := addFlagsLong(a, c.Regs.RL(src), false)
	c.Regs.SetRL(dst, result)
	c.setFlags(f)
}

func opcodeSUBLimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	if !c.longRegOK(dst) {
		return
	}
	hi, lo := c.fetchWord(), c.fetchWord()
	imm := uint32(hi)<<16 | uint32(lo)
	a := c.Regs.RL(dst)
	result, f := subFlagsLong(a, imm, false)
	c.Regs.SetRL(dst, result)
	c.setFlags(f)
}

func opcodeSUBLrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1)&0xE, loNib(b1)&0xE
	if !c.longRegOK(dst) || !c.longRegOK(src) {
		return
	}
	a := c.Regs.RL(dst)
	result, f := subFlagsLong(a, c.Regs.RL(src), false)
	c.Regs.SetRL(dst, result)
	c.setFlags(f)
}

// --- CP / CPB / CPL (flags only) --------------------------------------

func opcodeCPimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	c.doSubWord(dst, c.fetchWord(), false, false)
}

func opcodeCPrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	c.doSubWord(dst, c.Regs.RW(src), false, false)
}

func opcodeCPir(c *CPU, opcode uint16, desc *opDesc) {
	dst, v, ok := memSrcWord(c, opcode, modeIR)
	if ok {
		c.doSubWord(dst, v, false, false)
	}
}

func opcodeCPda(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	addr := c.fetchWord()
	c.doSubWord(dst, c.bus.DataReadWord(addr), false, false)
}

func opcodeCPx(c *CPU, opcode uint16, desc *opDesc) {
	dst, v, ok := memSrcWord(c, opcode, modeX)
	if ok {
		c.doSubWord(dst, v, false, false)
	}
}

func opcodeCPBimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	c.doSubByte(dst, c.fetchByte(), false, false)
}

func opcodeCPBrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)
	c.doSubByte(dst, c.Regs.RB(src), false, false)
}

func opcodeCPBir(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	hi, dst := hiNib(b1), loNib(b1)
	v, ok := c.readByteOperand(modeIR, hi)
	if ok {
		c.doSubByte(dst, v, false, false)
	}
}

func opcodeCPLimm(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	if !c.longRegOK(dst) {
		return
	}
	hi, lo := c.fetchWord(), c.fetchWord()
	imm := uint32(hi)<<16 | uint32(lo)
	_, f := subFlagsLong(c.Regs.RL(dst), imm, false)
	c.setFlags(f)
}

func opcodeCPLrr(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1)&0xE, loNib(b1)&0xE
	if !c.longRegOK(dst) || !c.longRegOK(src) {
		return
	}
	_, f := subFlagsLong(c.Regs.RL(dst), c.Regs.RL(src), false)
	c.setFlags(f)
}

// --- INC/DEC -----------------------------------------------------------

func opcodeINCw(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, n := hiNib(b1), loNib(b1)+1
	before := c.Regs.RW(dst)
	after := before + uint16(n)
	c.Regs.SetRW(dst, after)
	c.setFlags(incDecFlagsWord(before, after, true))
}

func opcodeDECw(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, n := hiNib(b1), loNib(b1)+1
	before := c.Regs.RW(dst)
	after := before - uint16(n)
	c.Regs.SetRW(dst, after)
	c.setFlags(incDecFlagsWord(before, after, false))
}

func opcodeINCB(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, n := hiNib(b1), loNib(b1)+1
	before := c.Regs.RB(dst)
	after := before + byte(n)
	c.Regs.SetRB(dst, after)
	c.setFlags(incDecFlagsByte(before, after, true))
}

func opcodeDECB(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	dst, n := hiNib(b1), loNib(b1)+1
	before := c.Regs.RB(dst)
	after := before - byte(n)
	c.Regs.SetRB(dst, after)
	c.setFlags(incDecFlagsByte(before, after, false))
}

// --- NEG/COM -------------------------------------------------------------

func opcodeNEGw(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	v := c.Regs.RW(dst)
	c.setFlags(negFlagsWord(v))
	c.Regs.SetRW(dst, -v)
}

func opcodeNEGB(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	v := c.Regs.RB(dst)
	c.setFlags(negFlagsByte(v))
	c.Regs.SetRB(dst, -v)
}

func opcodeCOMw(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	result := ^c.Regs.RW(dst)
	c.Regs.SetRW(dst, result)
	c.setFlags(comFlagsWord(result))
}

func opcodeCOMB(c *CPU, opcode uint16, desc *opDesc) {
	dst := loNib(opByte1(opcode))
	result := ^c.Regs.RB(dst)
	c.Regs.SetRB(dst, result)
	c.setFlags(comFlagsByte(result))
}

// --- MULT/MULTL/DIV/DIVL ------------------------------------------------

// opcodeMULT: MULT RRd,Rs — Rd (even) holds the 16-bit multiplicand in its
// low word; the 32-bit product replaces the RRd pair.
func opcodeMULT(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)&0xE
	if !c.longRegOK(dst) {
		return
	}
	a := int32(int16(c.Regs.RW(dst + 1)))
	b := int32(int16(c.Regs.RW(src)))
	product := uint32(a * b)
	c.Regs.SetRL(dst, product)
	c.setFlags(flags{
		Z: product == 0,
		S: product&0x80000000 != 0,
	})
}

// opcodeMULTL: MULTL QRd,RRs — 64-bit product of two 32-bit operands into
// the register quad starting at dst.
func opcodeMULTL(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1)&0xE, loNib(b1)&0xC
	if !c.longRegOK(src) {
		return
	}
	a := int64(int32(c.Regs.RL(dst + 2)))
	b := int64(int32(c.Regs.RL(src)))
	product := uint64(a * b)
	c.Regs.SetRQLong(dst, uint32(product>>32), uint32(product))
	c.setFlags(flags{Z: product == 0, S: product&(1<<63) != 0})
}

// opcodeDIV: DIV RRd,Rs — 32-bit dividend in RRd divided by 16-bit Rs,
// quotient replaces RRd's low word, remainder its high word. Raises the
// Extended-Instruction trap on divide-by-zero or quotient overflow.
func opcodeDIV(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1), loNib(b1)&0xE
	if !c.longRegOK(dst) {
		return
	}
	divisor := c.Regs.RW(src)
	if divisor == 0 {
		c.raiseExtendedInstruction()
		return
	}
	dividend := c.Regs.RL(dst)
	quotient := dividend / uint32(divisor)
	if quotient > 0xFFFF {
		c.raiseExtendedInstruction()
		return
	}
	remainder := dividend % uint32(divisor)
	c.Regs.SetRW(dst, uint16(remainder))
	c.Regs.SetRW(dst+1, uint16(quotient))
	c.setFlags(flags{Z: quotient == 0, S: quotient&0x8000 != 0})
}

// opcodeDIVL: DIVL QRd,RRs — 64-bit dividend in the register quad divided
// by 32-bit RRs.
func opcodeDIVL(c *CPU, opcode uint16, desc *opDesc) {
	b1 := opByte1(opcode)
	src, dst := hiNib(b1)&0xE, loNib(b1)&0xC
	if !c.longRegOK(src) {
		return
	}
	divisor := c.Regs.RL(src)
	if divisor == 0 {
		c.raiseExtendedInstruction()
		return
	}
	hi, lo := c.Regs.RQLong(dst)
	dividend := uint64(hi)<<32 | uint64(lo)
	quotient := dividend / uint64(divisor)
	if quotient > 0xFFFFFFFF {
		c.raiseExtendedInstruction()
		return
	}
	remainder := dividend % uint64(divisor)
	c.Regs.SetRL(dst, uint32(remainder))
	c.Regs.SetRL(dst+2, uint32(quotient))
	c.setFlags(flags{Z: quotient == 0, S: quotient&0x80000000 != 0})
}
