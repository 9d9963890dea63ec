package z8000

// Block instructions use three registers carried across two words: byte1
// of the opcode word packs the destination register (high nibble) and
// source register (low nibble); the extension word's low byte packs the
// user condition code in its high nibble and the count register in its low
// nibble. Each call to a handler performs exactly one element's
// transfer/compare/transfer-I/O; the repeating forms (the R-suffixed
// mnemonics) call scheduleReexecution while the count register is still
// nonzero, so Step's PC-rewind re-enters the same instruction word on the
// next call, per spec.md §4.5's Start/Step/Continue state machine. The
// condition code only matters to the compare forms (CPI/CPIR/CPD/CPDR and
// their byte counterparts), which stop early when it matches the
// just-compared pair rather than only on equality.
type blockRegs struct {
	dst, src, cnt int
	cc            condCode
}

func decodeBlockRegs(c *CPU, opcode uint16) blockRegs {
	b1 := opByte1(opcode)
	ext := byte(c.fetchWord())
	return blockRegs{dst: hiNib(b1), src: loNib(b1), cnt: loNib(ext), cc: condCode(hiNib(ext))}
}

func (c *CPU) blockCountDone(cnt int) bool {
	v := c.Regs.RW(cnt) - 1
	c.Regs.SetRW(cnt, v)
	return v == 0
}

// --- LDI/LDIR/LDD/LDDR (word) -------------------------------------------

func opcodeLDI(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	v := c.bus.DataReadWord(c.Regs.RW(r.src))
	c.bus.DataWriteWord(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)+2)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)+2)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
}

func opcodeLDIR(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	v := c.bus.DataReadWord(c.Regs.RW(r.src))
	c.bus.DataWriteWord(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)+2)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)+2)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
	if !done {
		c.scheduleReexecution()
	}
}

func opcodeLDD(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	v := c.bus.DataReadWord(c.Regs.RW(r.src))
	c.bus.DataWriteWord(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)-2)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)-2)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
}

func opcodeLDDR(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	v := c.bus.DataReadWord(c.Regs.RW(r.src))
	c.bus.DataWriteWord(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)-2)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)-2)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
	if !done {
		c.scheduleReexecution()
	}
}

// --- LDIB/LDIRB/LDDB/LDDRB (byte) ---------------------------------------

func opcodeLDIB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	v := c.bus.DataReadByte(c.Regs.RW(r.src))
	c.bus.DataWriteByte(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)+1)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)+1)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
}

func opcodeLDIRB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	v := c.bus.DataReadByte(c.Regs.RW(r.src))
	c.bus.DataWriteByte(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)+1)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)+1)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
	if !done {
		c.scheduleReexecution()
	}
}

func opcodeLDDB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	v := c.bus.DataReadByte(c.Regs.RW(r.src))
	c.bus.DataWriteByte(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)-1)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)-1)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
}

func opcodeLDDRB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	v := c.bus.DataReadByte(c.Regs.RW(r.src))
	c.bus.DataWriteByte(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)-1)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)-1)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
	if !done {
		c.scheduleReexecution()
	}
}

// --- CPI/CPIR/CPD/CPDR (word compare) -----------------------------------

func (c *CPU) blockCompareWord(r blockRegs, delta int16) (matched, countDone bool) {
	a := c.Regs.RW(r.dst)
	b := c.bus.DataReadWord(c.Regs.RW(r.src))
	_, f := subFlagsWord(a, b, false)
	matched = evalConditionFlags(f.C, f.Z, f.S, f.V, r.cc)
	c.Regs.SetRW(r.src, uint16(int32(c.Regs.RW(r.src))+int32(delta)))
	countDone = c.blockCountDone(r.cnt)
	f.V = countDone
	c.setFlags(f)
	return matched, countDone
}

func opcodeCPI(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	c.blockCompareWord(r, 2)
}

func opcodeCPIR(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	matched, done := c.blockCompareWord(r, 2)
	if !matched && !done {
		c.scheduleReexecution()
	}
}

func opcodeCPD(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	c.blockCompareWord(r, -2)
}

func opcodeCPDR(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	matched, done := c.blockCompareWord(r, -2)
	if !matched && !done {
		c.scheduleReexecution()
	}
}

// --- CPIB/CPIRB/CPDB/CPDRB (byte compare) -------------------------------

func (c *CPU) blockCompareByte(r blockRegs, delta int16) (matched, countDone bool) {
	a := c.Regs.RB(r.dst)
	b := c.bus.DataReadByte(c.Regs.RW(r.src))
	_, f := subFlagsByte(a, b, false)
	matched = evalConditionFlags(f.C, f.Z, f.S, f.V, r.cc)
	c.Regs.SetRW(r.src, uint16(int32(c.Regs.RW(r.src))+int32(delta)))
	countDone = c.blockCountDone(r.cnt)
	f.V = countDone
	c.setFlags(f)
	return matched, countDone
}

func opcodeCPIB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	c.blockCompareByte(r, 1)
}

func opcodeCPIRB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	matched, done := c.blockCompareByte(r, 1)
	if !matched && !done {
		c.scheduleReexecution()
	}
}

func opcodeCPDB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	c.blockCompareByte(r, -1)
}

func opcodeCPDRB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	matched, done := c.blockCompareByte(r, -1)
	if !matched && !done {
		c.scheduleReexecution()
	}
}

// --- INI/INIR/IND/INDR and byte forms -----------------------------------
// The source register holds the I/O port, the destination register the
// memory address the port's value is stored to.

func opcodeINI(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.IOReadWord(c.Regs.RW(r.src))
	c.bus.DataWriteWord(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)+2)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
}

func opcodeINIR(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.IOReadWord(c.Regs.RW(r.src))
	c.bus.DataWriteWord(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)+2)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
	if !done {
		c.scheduleReexecution()
	}
}

func opcodeIND(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.IOReadWord(c.Regs.RW(r.src))
	c.bus.DataWriteWord(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)-2)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
}

func opcodeINDR(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.IOReadWord(c.Regs.RW(r.src))
	c.bus.DataWriteWord(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)-2)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
	if !done {
		c.scheduleReexecution()
	}
}

func opcodeINIB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.IOReadByte(c.Regs.RW(r.src))
	c.bus.DataWriteByte(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)+1)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
}

func opcodeINIRB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.IOReadByte(c.Regs.RW(r.src))
	c.bus.DataWriteByte(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)+1)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
	if !done {
		c.scheduleReexecution()
	}
}

func opcodeINDB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.IOReadByte(c.Regs.RW(r.src))
	c.bus.DataWriteByte(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)-1)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
}

func opcodeINDRB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.IOReadByte(c.Regs.RW(r.src))
	c.bus.DataWriteByte(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.dst, c.Regs.RW(r.dst)-1)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
	if !done {
		c.scheduleReexecution()
	}
}

// --- OUTI/OTIR/OUTD/OTDR and byte forms ----------------------------------
// The source register holds the memory address read from, the destination
// register the I/O port written to.

func opcodeOUTI(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.DataReadWord(c.Regs.RW(r.src))
	c.bus.IOWriteWord(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)+2)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
}

func opcodeOTIR(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.DataReadWord(c.Regs.RW(r.src))
	c.bus.IOWriteWord(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)+2)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
	if !done {
		c.scheduleReexecution()
	}
}

func opcodeOUTD(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.DataReadWord(c.Regs.RW(r.src))
	c.bus.IOWriteWord(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)-2)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
}

func opcodeOTDR(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.DataReadWord(c.Regs.RW(r.src))
	c.bus.IOWriteWord(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)-2)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
	if !done {
		c.scheduleReexecution()
	}
}

func opcodeOUTIB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.DataReadByte(c.Regs.RW(r.src))
	c.bus.IOWriteByte(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)+1)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
}

func opcodeOTIRB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.DataReadByte(c.Regs.RW(r.src))
	c.bus.IOWriteByte(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)+1)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
	if !done {
		c.scheduleReexecution()
	}
}

func opcodeOUTDB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.DataReadByte(c.Regs.RW(r.src))
	c.bus.IOWriteByte(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)-1)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
}

func opcodeOTDRB(c *CPU, opcode uint16, desc *opDesc) {
	r := decodeBlockRegs(c, opcode)
	if !c.systemMode() {
		c.raisePrivilegedInstruction()
		return
	}
	v := c.bus.DataReadByte(c.Regs.RW(r.src))
	c.bus.IOWriteByte(c.Regs.RW(r.dst), v)
	c.Regs.SetRW(r.src, c.Regs.RW(r.src)-1)
	done := c.blockCountDone(r.cnt)
	c.setFlags(flags{V: done})
	if !done {
		c.scheduleReexecution()
	}
}
