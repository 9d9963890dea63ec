package z8000

// JP/CALL target the address given directly by the extension word that
// follows the opcode (the direct-address form); CALR and JR instead use a
// doubled signed byte1 displacement from the already-advanced PC.

func opcodeJP(c *CPU, opcode uint16, desc *opDesc) {
	cc := condCode(loNib(opByte1(opcode)))
	addr := c.fetchWord()
	if c.evalCondition(cc) {
		c.PC = addr
	}
}

func opcodeCALL(c *CPU, opcode uint16, desc *opDesc) {
	addr := c.fetchWord()
	sp := c.Regs.RW(15) - 2
	c.bus.WriteWord(sp, c.PC)
	c.Regs.SetRW(15, sp)
	c.PC = addr
}

func opcodeCALR(c *CPU, opcode uint16, desc *opDesc) {
	disp := int8(opByte1(opcode))
	target := uint16(int32(c.PC) + int32(disp)*2)
	sp := c.Regs.RW(15) - 2
	c.bus.WriteWord(sp, c.PC)
	c.Regs.SetRW(15, sp)
	c.PC = target
}

func opcodeRET(c *CPU, opcode uint16, desc *opDesc) {
	cc := condCode(loNib(opByte1(opcode)))
	if !c.evalCondition(cc) {
		return
	}
	sp := c.Regs.RW(15)
	c.PC = c.bus.ReadWord(sp)
	c.Regs.SetRW(15, sp+2)
}

func opcodeJR(c *CPU, opcode uint16, desc *opDesc) {
	cc := condCode(int(byte(opcode>>8) & 0x0F))
	disp := int8(opByte1(opcode))
	if c.evalCondition(cc) {
		c.PC = uint16(int32(c.PC) + int32(disp)*2)
	}
}

func opcodeDJNZ(c *CPU, opcode uint16, desc *opDesc) {
	reg := int(byte(opcode>>8) & 0x07)
	disp := int8(opByte1(opcode))
	v := c.Regs.RW(reg) - 1
	c.Regs.SetRW(reg, v)
	if v != 0 {
		c.PC = uint16(int32(c.PC) - int32(disp)*2)
	}
}

func opcodeDBJNZ(c *CPU, opcode uint16, desc *opDesc) {
	reg := int(byte(opcode>>8) & 0x07)
	disp := int8(opByte1(opcode))
	v := c.Regs.RB(reg) - 1
	c.Regs.SetRB(reg, v)
	if v != 0 {
		c.PC = uint16(int32(c.PC) - int32(disp)*2)
	}
}
