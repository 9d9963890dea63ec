package z8000

// allDescriptors returns the compact mask/match descriptor list the
// dispatch table is built from. Most instruction forms fix every bit of
// byte0, so mask is 0xFF00 and the register/immediate fields live in
// byte1 (or further extension words fetched by the handler). The handful
// of forms that spill a field into byte0 (JR, DJNZ, DBJNZ, the compact
// LDB immediate) use a coarser mask over just the bits that are actually
// fixed, and are never overlapped by a full-byte0 descriptor, so the
// specificity tie-break in buildDispatchTable never has to choose between
// them in practice — the rule still exists so it's exercised the day the
// table grows a real overlap.
func allDescriptors() []opDesc {
	full := func(byte0 byte, cycles int, name string, h handlerFunc) opDesc {
		return opDesc{mask: 0xFF00, match: uint16(byte0) << 8, handler: h, cycles: cycles, name: name}
	}
	return []opDesc{
		full(opADDimm, 7, "ADD imm", opcodeADDimm),
		full(opADDrr, 4, "ADD r,r", opcodeADDrr),
		full(opADDir, 7, "ADD ir", opcodeADDir),
		full(opADDda, 11, "ADD da", opcodeADDda),
		full(opADDx, 11, "ADD x", opcodeADDx),
		full(opADCimm, 7, "ADC imm", opcodeADCimm),
		full(opADCrr, 4, "ADC r,r", opcodeADCrr),
		full(opADCir, 7, "ADC ir", opcodeADCir),
		full(opADCda, 11, "ADC da", opcodeADCda),
		full(opADCx, 11, "ADC x", opcodeADCx),
		full(opSUBimm, 7, "SUB imm", opcodeSUBimm),
		full(opSUBrr, 4, "SUB r,r", opcodeSUBrr),
		full(opSUBir, 7, "SUB ir", opcodeSUBir),
		full(opSUBda, 11, "SUB da", opcodeSUBda),
		full(opSUBx, 11, "SUB x", opcodeSUBx),
		full(opSBCimm, 7, "SBC imm", opcodeSBCimm),
		full(opSBCrr, 4, "SBC r,r", opcodeSBCrr),
		full(opSBCir, 7, "SBC ir", opcodeSBCir),
		full(opSBCda, 11, "SBC da", opcodeSBCda),
		full(opSBCx, 11, "SBC x", opcodeSBCx),

		full(opADDBimm, 7, "ADDB imm", opcodeADDBimm),
		full(opADDBrr, 4, "ADDB r,r", opcodeADDBrr),
		full(opADDBir, 7, "ADDB ir", opcodeADDBir),
		full(opADCBimm, 7, "ADCB imm", opcodeADCBimm),
		full(opADCBrr, 4, "ADCB r,r", opcodeADCBrr),
		full(opADCBir, 7, "ADCB ir", opcodeADCBir),
		full(opSUBBimm, 7, "SUBB imm", opcodeSUBBimm),
		full(opSUBBrr, 4, "SUBB r,r", opcodeSUBBrr),
		full(opSUBBir, 7, "SUBB ir", opcodeSUBBir),
		full(opSBCBimm, 7, "SBCB imm", opcodeSBCBimm),
		full(opSBCBrr, 4, "SBCB r,r", opcodeSBCBrr),
		full(opSBCBir, 7, "SBCB ir", opcodeSBCBir),

		full(opADDLimm, 11, "ADDL imm", opcodeADDLimm),
		full(opADDLrr, 7, "ADDL r,r", opcodeADDLrr),
		full(opSUBLimm, 11, "SUBL imm", opcodeSUBLimm),
		full(opSUBLrr, 7, "SUBL r,r", opcodeSUBLrr),

		full(opCPimm, 7, "CP imm", opcodeCPimm),
		full(opCPrr, 4, "CP r,r", opcodeCPrr),
		full(opCPir, 7, "CP ir", opcodeCPir),
		full(opCPda, 11, "CP da", opcodeCPda),
		full(opCPx, 11, "CP x", opcodeCPx),
		full(opCPBimm, 7, "CPB imm", opcodeCPBimm),
		full(opCPBrr, 4, "CPB r,r", opcodeCPBrr),
		full(opCPBir, 7, "CPB ir", opcodeCPBir),
		full(opCPLimm, 11, "CPL imm", opcodeCPLimm),
		full(opCPLrr, 7, "CPL r,r", opcodeCPLrr),

		full(opINCw, 4, "INC r,n", opcodeINCw),
		full(opDECw, 4, "DEC r,n", opcodeDECw),
		full(opINCB, 4, "INCB r,n", opcodeINCB),
		full(opDECB, 4, "DECB r,n", opcodeDECB),
		full(opNEGw, 4, "NEG r", opcodeNEGw),
		full(opNEGB, 4, "NEGB r", opcodeNEGB),
		full(opCOMw, 4, "COM r", opcodeCOMw),
		full(opCOMB, 4, "COMB r", opcodeCOMB),

		full(opMULT, 18, "MULT", opcodeMULT),
		full(opMULTL, 70, "MULTL", opcodeMULTL),
		full(opDIV, 30, "DIV", opcodeDIV),
		full(opDIVL, 75, "DIVL", opcodeDIVL),

		full(opANDimm, 7, "AND imm", opcodeANDimm),
		full(opANDrr, 4, "AND r,r", opcodeANDrr),
		full(opANDir, 7, "AND ir", opcodeANDir),
		full(opORimm, 7, "OR imm", opcodeORimm),
		full(opORrr, 4, "OR r,r", opcodeORrr),
		full(opORir, 7, "OR ir", opcodeORir),
		full(opXORimm, 7, "XOR imm", opcodeXORimm),
		full(opXORrr, 4, "XOR r,r", opcodeXORrr),
		full(opXORir, 7, "XOR ir", opcodeXORir),
		full(opTEST, 4, "TEST", opcodeTEST),
		full(opANDBimm, 7, "ANDB imm", opcodeANDBimm),
		full(opANDBrr, 4, "ANDB r,r", opcodeANDBrr),
		full(opANDBir, 7, "ANDB ir", opcodeANDBir),
		full(opORBimm, 7, "ORB imm", opcodeORBimm),
		full(opORBrr, 4, "ORB r,r", opcodeORBrr),
		full(opORBir, 7, "ORB ir", opcodeORBir),
		full(opXORBimm, 7, "XORB imm", opcodeXORBimm),
		full(opXORBrr, 4, "XORB r,r", opcodeXORBrr),
		full(opXORBir, 7, "XORB ir", opcodeXORBir),
		full(opTESTB, 4, "TESTB", opcodeTESTB),

		full(opBITimm, 4, "BIT imm", opcodeBITimm),
		full(opBITreg, 4, "BIT r", opcodeBITreg),
		full(opBITBimm, 4, "BITB imm", opcodeBITBimm),
		full(opBITBreg, 4, "BITB r", opcodeBITBreg),
		full(opSETimm, 4, "SET imm", opcodeSETimm),
		full(opSETreg, 4, "SET r", opcodeSETreg),
		full(opSETBimm, 4, "SETB imm", opcodeSETBimm),
		full(opSETBreg, 4, "SETB r", opcodeSETBreg),
		full(opRESimm, 4, "RES imm", opcodeRESimm),
		full(opRESreg, 4, "RES r", opcodeRESreg),
		full(opRESBimm, 4, "RESB imm", opcodeRESBimm),
		full(opRESBreg, 4, "RESB r", opcodeRESBreg),

		full(opSLSRw, 4, "SLA/SRA", opcodeSLSRw),
		full(opSLSRb, 4, "SLAB/SRAB", opcodeSLSRb),
		full(opSLLRLw, 4, "SLL/SRL", opcodeSLLRLw),
		full(opSLLRLb, 4, "SLLB/SRLB", opcodeSLLRLb),
		full(opRLw, 4, "RL", opcodeRLw),
		full(opRLb, 4, "RLB", opcodeRLb),
		full(opRRw, 4, "RR", opcodeRRw),
		full(opRRb, 4, "RRB", opcodeRRb),
		full(opRLCw, 4, "RLC", opcodeRLCw),
		full(opRLCb, 4, "RLCB", opcodeRLCb),
		full(opRRCw, 4, "RRC", opcodeRRCw),
		full(opRRCb, 4, "RRCB", opcodeRRCb),
		full(opRLDB, 10, "RLDB", opcodeRLDB),
		full(opRRDB, 10, "RRDB", opcodeRRDB),

		full(opJP, 7, "JP", opcodeJP),
		full(opCALL, 10, "CALL", opcodeCALL),
		full(opCALR, 10, "CALR", opcodeCALR),
		full(opRET, 10, "RET", opcodeRET),

		full(opNOP, 3, "NOP", opcodeNOP),
		full(opHALT, 8, "HALT", opcodeHALT),
		full(opDI, 5, "DI", opcodeDI),
		full(opEI, 5, "EI", opcodeEI),
		full(opSC, 39, "SC", opcodeSC),
		full(opRESET, 3, "RESET", opcodeRESET),
		full(opLDCTLin, 4, "LDCTL in", opcodeLDCTLin),
		full(opLDCTLout, 4, "LDCTL out", opcodeLDCTLout),
		full(opLDPS, 13, "LDPS", opcodeLDPS),

		full(opINimm, 8, "IN imm", opcodeINimm),
		full(opINreg, 10, "IN reg", opcodeINreg),
		full(opOUTimm, 8, "OUT imm", opcodeOUTimm),
		full(opOUTreg, 10, "OUT reg", opcodeOUTreg),
		full(opINBimm, 8, "INB imm", opcodeINBimm),
		full(opINBreg, 10, "INB reg", opcodeINBreg),
		full(opOUTBimm, 8, "OUTB imm", opcodeOUTBimm),
		full(opOUTBreg, 10, "OUTB reg", opcodeOUTBreg),
		full(opSINimm, 8, "SIN imm", opcodeSINimm),
		full(opSINreg, 10, "SIN reg", opcodeSINreg),
		full(opSOUTimm, 8, "SOUT imm", opcodeSOUTimm),
		full(opSOUTreg, 10, "SOUT reg", opcodeSOUTreg),
		full(opSINBimm, 8, "SINB imm", opcodeSINBimm),
		full(opSINBreg, 10, "SINB reg", opcodeSINBreg),
		full(opSOUTBimm, 8, "SOUTB imm", opcodeSOUTBimm),
		full(opSOUTBreg, 10, "SOUTB reg", opcodeSOUTBreg),

		full(opLDIR, 9, "LDIR", opcodeLDIR),
		full(opLDI, 9, "LDI", opcodeLDI),
		full(opLDDR, 9, "LDDR", opcodeLDDR),
		full(opLDD, 9, "LDD", opcodeLDD),
		full(opLDIRB, 9, "LDIRB", opcodeLDIRB),
		full(opLDIB, 9, "LDIB", opcodeLDIB),
		full(opLDDRB, 9, "LDDRB", opcodeLDDRB),
		full(opLDDB, 9, "LDDB", opcodeLDDB),

		full(opCPIR, 11, "CPIR", opcodeCPIR),
		full(opCPI, 11, "CPI", opcodeCPI),
		full(opCPDR, 11, "CPDR", opcodeCPDR),
		full(opCPD, 11, "CPD", opcodeCPD),
		full(opCPIRB, 11, "CPIRB", opcodeCPIRB),
		full(opCPIB, 11, "CPIB", opcodeCPIB),
		full(opCPDRB, 11, "CPDRB", opcodeCPDRB),
		full(opCPDB, 11, "CPDB", opcodeCPDB),

		full(opINIR, 12, "INIR", opcodeINIR),
		full(opINI, 12, "INI", opcodeINI),
		full(opINDR, 12, "INDR", opcodeINDR),
		full(opIND, 12, "IND", opcodeIND),
		full(opINIRB, 12, "INIRB", opcodeINIRB),
		full(opINIB, 12, "INIB", opcodeINIB),
		full(opINDRB, 12, "INDRB", opcodeINDRB),
		full(opINDB, 12, "INDB", opcodeINDB),

		full(opOTIR, 12, "OTIR", opcodeOTIR),
		full(opOUTI, 12, "OUTI", opcodeOUTI),
		full(opOTDR, 12, "OTDR", opcodeOTDR),
		full(opOUTD, 12, "OUTD", opcodeOUTD),
		full(opOTIRB, 12, "OTIRB", opcodeOTIRB),
		full(opOUTIB, 12, "OUTIB", opcodeOUTIB),
		full(opOTDRB, 12, "OTDRB", opcodeOTDRB),
		full(opOUTDB, 12, "OUTDB", opcodeOUTDB),

		full(opLDimm, 4, "LD imm", opcodeLDimm),
		full(opLDrr, 2, "LD r,r", opcodeLDrr),
		full(opLDir, 7, "LD ir", opcodeLDir),
		full(opLDda, 11, "LD da", opcodeLDda),
		full(opLDx, 11, "LD x", opcodeLDx),
		full(opLDsir, 7, "LD sir", opcodeLDsir),
		full(opLDsda, 11, "LD sda", opcodeLDsda),
		full(opLDsx, 11, "LD sx", opcodeLDsx),

		full(opLDBrr, 2, "LDB r,r", opcodeLDBrr),
		full(opLDBir, 7, "LDB ir", opcodeLDBir),
		full(opLDBda, 11, "LDB da", opcodeLDBda),
		full(opLDBx, 11, "LDB x", opcodeLDBx),
		full(opLDBsir, 7, "LDB sir", opcodeLDBsir),
		full(opLDBsda, 11, "LDB sda", opcodeLDBsda),
		full(opLDBsx, 11, "LDB sx", opcodeLDBsx),

		full(opLDLim, 13, "LDL imm", opcodeLDLim),
		full(opLDLrr, 4, "LDL r,r", opcodeLDLrr),
		full(opLDLir, 11, "LDL ir", opcodeLDLir),
		full(opLDLda, 15, "LDL da", opcodeLDLda),
		full(opLDLx, 15, "LDL x", opcodeLDLx),
		full(opLDLsir, 11, "LDL sir", opcodeLDLsir),
		full(opLDLsda, 15, "LDL sda", opcodeLDLsda),
		full(opLDLsx, 15, "LDL sx", opcodeLDLsx),

		full(opLDAda, 7, "LDA da", opcodeLDAda),
		full(opLDAx, 11, "LDA x", opcodeLDAx),
		full(opLDRld, 11, "LDR load", opcodeLDRld),
		full(opLDRst, 11, "LDR store", opcodeLDRst),
		full(opLDK, 3, "LDK", opcodeLDK),
		full(opPUSH, 5, "PUSH", opcodePUSH),
		full(opPOP, 7, "POP", opcodePOP),
		full(opPUSHL, 7, "PUSHL", opcodePUSHL),
		full(opPOPL, 11, "POPL", opcodePOPL),

		{mask: 0xF000, match: uint16(opJRBase) << 8, handler: opcodeJR, cycles: 6, name: "JR"},
		{mask: 0xF800, match: uint16(opDJNZBase) << 8, handler: opcodeDJNZ, cycles: 11, name: "DJNZ"},
		{mask: 0xF800, match: uint16(opDBJNZBase) << 8, handler: opcodeDBJNZ, cycles: 11, name: "DBJNZ"},
		{mask: 0xF000, match: uint16(opLDBimmBase) << 8, handler: opcodeLDBimm, cycles: 4, name: "LDB compact imm"},
	}
}
