package z8000

// Opcode byte0 (the high byte of the big-endian instruction word) values.
// Each mnemonic/addressing-mode combination gets its own fixed byte0; the
// low byte (byte1) then carries that form's register/immediate fields.
// A handful of control-flow forms (JR, DJNZ, DBJNZ) need more bits than a
// single byte1 can hold and so spill a field into byte0 itself — those are
// called out below as ranges rather than single values.
const (
	opADDimm  = 0x01 // ADD Rd,#imm   — byte1 = 0x0|Rd
	opLDimm   = 0x21 // LD  Rd,#imm   — byte1 = 0x0|Rd
	opADDrr   = 0x81 // ADD Rd,Rs     — byte1 = (Rs<<4)|Rd
	opINCw    = 0xA9 // INC Rd,#n     — byte1 = (Rd<<4)|(n-1)
	opHALT    = 0x7A // HALT          — byte1 = 0

	opLDrr  = 0x02
	opLDir  = 0x03
	opLDda  = 0x04
	opLDx   = 0x05
	opLDsir = 0x06
	opLDsda = 0x07
	opLDsx  = 0x08

	opLDBrr  = 0x09
	opLDBir  = 0x0A
	opLDBda  = 0x0B
	opLDBx   = 0x0C
	opLDBsir = 0x0D
	opLDBsda = 0x0E
	opLDBsx  = 0x0F

	opLDLrr  = 0x10
	opLDLir  = 0x11
	opLDLda  = 0x12
	opLDLx   = 0x13
	opLDLsir = 0x14
	opLDLsda = 0x15
	opLDLsx  = 0x16
	opLDLim  = 0x17

	opLDAda  = 0x18
	opLDAx   = 0x19
	opLDRld  = 0x1A
	opLDRst  = 0x1B
	opLDK    = 0x1C
	opPUSH   = 0x1D
	opPOP    = 0x1E
	opPUSHL  = 0x1F
	opPOPL   = 0x20

	opADCimm = 0x22
	opSUBimm = 0x23
	opSBCimm = 0x24
	opANDimm = 0x25
	opORimm  = 0x26
	opXORimm = 0x27
	opCPimm  = 0x28

	opADDBimm = 0x29
	opADCBimm = 0x2A
	opSUBBimm = 0x2B
	opSBCBimm = 0x2C
	opANDBimm = 0x2D
	opORBimm  = 0x2E
	opXORBimm = 0x2F
	opCPBimm  = 0x30

	opADDLimm = 0x31
	opSUBLimm = 0x32
	opCPLimm  = 0x33

	opADDir = 0x34
	opADDda = 0x35
	opADDx  = 0x36

	opADCrr = 0x37
	opADCir = 0x38
	opADCda = 0x39
	opADCx  = 0x3A

	opSUBrr = 0x3B
	opSUBir = 0x3C
	opSUBda = 0x3D
	opSUBx  = 0x3E

	opSBCrr = 0x3F
	opSBCir = 0x40
	opSBCda = 0x41
	opSBCx  = 0x42

	opADDBrr = 0x43
	opADDBir = 0x44
	opADCBrr = 0x45
	opADCBir = 0x46
	opSUBBrr = 0x47
	opSUBBir = 0x48
	opSBCBrr = 0x49
	opSBCBir = 0x4A

	opADDLrr = 0x4B
	opSUBLrr = 0x4C

	opCPrr = 0x4D
	opCPir = 0x4E
	opCPda = 0x4F
	opCPx  = 0x50

	opCPBrr = 0x51
	opCPBir = 0x52

	opCPLrr = 0x53

	opANDrr = 0x54
	opANDir = 0x55
	opORrr  = 0x56
	opORir  = 0x57
	opXORrr = 0x58
	opXORir = 0x59

	opANDBrr = 0x5A
	opANDBir = 0x5B
	opORBrr  = 0x5C
	opORBir  = 0x5D
	opXORBrr = 0x5E
	opXORBir = 0x5F

	opTEST  = 0x60
	opTESTB = 0x61

	opMULT  = 0x62
	opMULTL = 0x63
	opDIV   = 0x64
	opDIVL  = 0x65

	opINCB = 0x66
	opDECB = 0x67
	opDECw = 0x68

	opNEGw  = 0x69
	opNEGB  = 0x6A
	opCOMw  = 0x6B
	opCOMB  = 0x6C

	opBITimm  = 0x6D
	opBITreg  = 0x6E
	opBITBimm = 0x6F
	opBITBreg = 0x70
	opSETimm  = 0x71
	opSETreg  = 0x72
	opSETBimm = 0x73
	opSETBreg = 0x74
	opRESimm  = 0x75
	opRESreg  = 0x76
	opRESBimm = 0x77
	opRESBreg = 0x78

	opSLSRw  = 0x79 // SLA/SRA Rd,#count (word)
	opSLSRb  = 0x7B // SLAB/SRAB Rd,#count (byte)
	opSLLRLw = 0x7C // SLL/SRL Rd,#count (word)
	opSLLRLb = 0x7D // SLLB/SRLB Rd,#count (byte)

	opRLw  = 0x7E
	opRLb  = 0x7F
	opRRw  = 0x80
	opRRb  = 0x82
	opRLCw = 0x83
	opRLCb = 0x84
	opRRCw = 0x85
	opRRCb = 0x86

	opRLDB = 0x87
	opRRDB = 0x88

	opJP   = 0x89 // JP cc,addr — byte1 low nibble = cc
	opCALL = 0x8A
	opCALR = 0x8B // byte1 = disp8, doubled
	opRET  = 0x8C // byte1 low nibble = cc

	opNOP   = 0x8D
	opDI    = 0x8E
	opEI    = 0x8F
	opSC    = 0x90
	opRESET = 0x91

	opLDCTLin  = 0x92
	opLDCTLout = 0x93
	opLDPS     = 0x94

	opINimm   = 0x95
	opINreg   = 0x96
	opINBimm  = 0x97
	opINBreg  = 0x98
	opOUTimm  = 0x99
	opOUTreg  = 0x9A
	opOUTBimm = 0x9B
	opOUTBreg = 0x9C
	opSINimm  = 0x9D
	opSINreg  = 0x9E
	opSINBimm = 0x9F
	opSINBreg = 0xA0
	opSOUTimm  = 0xA1
	opSOUTreg  = 0xA2
	opSOUTBimm = 0xA3
	opSOUTBreg = 0xA4

	opLDIR  = 0xA5
	opLDI   = 0xA6
	opLDDR  = 0xA7
	opLDD   = 0xA8
	opLDIRB = 0xAA
	opLDIB  = 0xAB
	opLDDRB = 0xAC
	opLDDB  = 0xAD

	opCPIR  = 0xAE
	opCPI   = 0xAF
	opCPDR  = 0xB0
	opCPD   = 0xB1
	opCPIRB = 0xB2
	opCPIB  = 0xB3
	opCPDRB = 0xB4
	opCPDB  = 0xB5

	opINIR  = 0xB6
	opINI   = 0xB7
	opINDR  = 0xB8
	opIND   = 0xB9
	opINIRB = 0xBA
	opINIB  = 0xBB
	opINDRB = 0xBC
	opINDB  = 0xBD

	opOTIR  = 0xBE
	opOUTI  = 0xBF
	opOTDR  = 0xE0
	opOUTD  = 0xE1
	opOTIRB = 0xE2
	opOUTIB = 0xE3
	opOTDRB = 0xE4
	opOUTDB = 0xE5
)

// DJNZ/DBJNZ spill their counted register into byte0's low 3 bits; JR
// spills its condition code into byte0's low nibble. These occupy full
// byte0 ranges rather than a single value.
const (
	opDJNZBase  = 0xF8 // 0xF8..0xFF, register = byte0&0x07
	opDBJNZBase = 0xF0 // 0xF0..0xF7, register = byte0&0x07
	opJRBase    = 0xD0 // 0xD0..0xDF, cc = byte0&0x0F
)

// LDB Rd,#imm8 uses the compact single-word encoding 0xCnii called out in
// spec.md §4.5: n (register) is packed into byte0's low nibble, ii is the
// entire low byte.
const opLDBimmBase = 0xC0 // 0xC0..0xCF, register = byte0&0x0F
