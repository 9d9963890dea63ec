package z8000

import "testing"

func runUntilHalt(t *testing.T, c *CPU, maxSteps int) {
	t.Helper()
	for i := 0; i < maxSteps; i++ {
		if c.Halted() {
			return
		}
		c.Step()
	}
	t.Fatalf("did not halt within %d steps", maxSteps)
}

func newTestCPU(bus *memBus) *CPU {
	bus.setupReset()
	return NewCPU(bus, Options{})
}

// Scenario 1: LD R1,#0x1234; LD R2,#0x5678; ADD R1,R2; HALT.
func TestScenarioLDAndADD(t *testing.T) {
	bus := newMemBus()
	bus.loadAt(0x0100, 0x21, 0x01, 0x12, 0x34, 0x21, 0x02, 0x56, 0x78, 0x81, 0x21, 0x7A, 0x00)
	c := newTestCPU(bus)
	runUntilHalt(t, c, 100)

	if got := c.Regs.RW(1); got != 0x68AC {
		t.Errorf("R1 = %#04x, want 0x68AC", got)
	}
	if c.FCW&FCWC != 0 || c.FCW&FCWZ != 0 || c.FCW&FCWS != 0 || c.FCW&FCWPV != 0 {
		t.Errorf("flags = %#04x, want C=Z=S=V=0", c.FCW)
	}
}

// Scenario 2: LD R3,#0xFFFF; ADD R3,#1; HALT.
func TestScenarioCarryPropagation(t *testing.T) {
	bus := newMemBus()
	bus.loadAt(0x0100, 0x21, 0x03, 0xFF, 0xFF, 0x01, 0x03, 0x00, 0x01, 0x7A, 0x00)
	c := newTestCPU(bus)
	runUntilHalt(t, c, 100)

	if got := c.Regs.RW(3); got != 0 {
		t.Errorf("R3 = %#04x, want 0", got)
	}
	if c.FCW&FCWC == 0 || c.FCW&FCWZ == 0 {
		t.Errorf("flags = %#04x, want C=1 Z=1", c.FCW)
	}
}

// Scenario 3: LD R3,#0x7FFF; INC R3,#1; HALT.
func TestScenarioIncOverflow(t *testing.T) {
	bus := newMemBus()
	bus.loadAt(0x0100, 0x21, 0x03, 0x7F, 0xFF, 0xA9, 0x30, 0x7A, 0x00)
	c := newTestCPU(bus)
	runUntilHalt(t, c, 100)

	if got := c.Regs.RW(3); got != 0x8000 {
		t.Errorf("R3 = %#04x, want 0x8000", got)
	}
	if c.FCW&FCWS == 0 || c.FCW&FCWPV == 0 {
		t.Errorf("flags = %#04x, want S=1 V=1", c.FCW)
	}
	if c.FCW&FCWC != 0 {
		t.Errorf("INC must not touch C, got C=1")
	}
}

// Scenario 4: LD R3,#5; LD R4,#0; loop: INC R4,#1; DJNZ R3,loop; HALT.
// spec.md's illustrative byte sequence for this scenario is internally
// inconsistent (see SPEC_FULL.md's Open Question); this uses this
// implementation's own self-consistent encoding for both the INC and the
// DJNZ displacement, reproducing the scenario's described program rather
// than its miscomputed bytes.
func TestScenarioDJNZLoop(t *testing.T) {
	bus := newMemBus()
	bus.loadAt(0x0100,
		0x21, 0x03, 0x00, 0x05, // LD R3,#5
		0x21, 0x04, 0x00, 0x00, // LD R4,#0
		0xA9, 0x40, // loop: INC R4,#1
		0xFB, 0x02, // DJNZ R3,loop
		0x7A, 0x00, // HALT
	)
	c := newTestCPU(bus)
	runUntilHalt(t, c, 100)

	if got := c.Regs.RW(4); got != 5 {
		t.Errorf("R4 = %d, want 5", got)
	}
	if got := c.Regs.RW(3); got != 0 {
		t.Errorf("R3 = %d, want 0", got)
	}
}

// Scenario 5: LDIR @R5,@R4,R6 — source R4=0x1000, dest R5=0x1100, count
// R6=3, source holds 0x1111,0x2222,0x3333.
func TestScenarioLDIRBlockMove(t *testing.T) {
	bus := newMemBus()
	bus.loadAt(0x1000, 0x11, 0x11, 0x22, 0x22, 0x33, 0x33)
	// LDIR: byte1 = dst<<4|src = 0x54 (dst R5, src R4); extension low
	// nibble selects the count register, R6.
	bus.loadAt(0x0100, 0xA5, 0x54, 0x00, 0x06, 0x7A, 0x00)
	c := newTestCPU(bus)
	c.Regs.SetRW(4, 0x1000)
	c.Regs.SetRW(5, 0x1100)
	c.Regs.SetRW(6, 3)
	runUntilHalt(t, c, 100)

	want := []byte{0x11, 0x11, 0x22, 0x22, 0x33, 0x33}
	for i, w := range want {
		if got := bus.mem[0x1100+uint16(i)]; got != w {
			t.Errorf("mem[0x%04x] = %#02x, want %#02x", 0x1100+i, got, w)
		}
	}
	if got := c.Regs.RW(4); got != 0x1006 {
		t.Errorf("R4 = %#04x, want 0x1006", got)
	}
	if got := c.Regs.RW(5); got != 0x1106 {
		t.Errorf("R5 = %#04x, want 0x1106", got)
	}
	if got := c.Regs.RW(6); got != 0 {
		t.Errorf("R6 = %d, want 0", got)
	}
	if c.FCW&FCWPV == 0 {
		t.Errorf("flags = %#04x, want V=1 on block completion", c.FCW)
	}
}

// Scenario 6: CPIR R3,@R4,R5,eq — source at 0x1000 holds five words,
// R3=0x3333 (the third element), R4=0x1000, R5=5.
func TestScenarioCPIREarlyMatch(t *testing.T) {
	bus := newMemBus()
	bus.loadAt(0x1000,
		0x11, 0x11, 0x22, 0x22, 0x33, 0x33, 0x44, 0x44, 0x55, 0x55,
	)
	// CPIR: byte1 = dst<<4|src = 0x34 (dst R3 holds the compare value,
	// src R4 walks the buffer); extension word's low byte packs the
	// condition code (0x6 = eq) in its high nibble and selects R5 in
	// its low nibble.
	bus.loadAt(0x0100, 0xAE, 0x34, 0x00, 0x65, 0x7A, 0x00)
	c := newTestCPU(bus)
	c.Regs.SetRW(3, 0x3333)
	c.Regs.SetRW(4, 0x1000)
	c.Regs.SetRW(5, 5)
	runUntilHalt(t, c, 100)

	if c.FCW&FCWZ == 0 {
		t.Errorf("flags = %#04x, want Z=1 on match", c.FCW)
	}
	if got := c.Regs.RW(4); got != 0x1006 {
		t.Errorf("R4 = %#04x, want 0x1006", got)
	}
	if got := c.Regs.RW(5); got != 2 {
		t.Errorf("R5 = %d, want 2", got)
	}
}

// Same buffer as above but with condition code "ne" (0xE): CPIR should
// stop on the first element that differs from R3, not on the first match.
func TestScenarioCPIRNotEqualCondition(t *testing.T) {
	bus := newMemBus()
	bus.loadAt(0x1000,
		0x11, 0x11, 0x11, 0x11, 0x22, 0x22, 0x11, 0x11, 0x11, 0x11,
	)
	// Condition code 0xE (ne) in the high nibble of the extension word's
	// low byte, R5 in its low nibble.
	bus.loadAt(0x0100, 0xAE, 0x34, 0x00, 0xE5, 0x7A, 0x00)
	c := newTestCPU(bus)
	c.Regs.SetRW(3, 0x1111)
	c.Regs.SetRW(4, 0x1000)
	c.Regs.SetRW(5, 5)
	runUntilHalt(t, c, 100)

	if got := c.Regs.RW(4); got != 0x1006 {
		t.Errorf("R4 = %#04x, want 0x1006 (stopped after the third element)", got)
	}
	if got := c.Regs.RW(5); got != 2 {
		t.Errorf("R5 = %d, want 2", got)
	}
}

// Scenario 7: OUT #0,R3 with R3=0xBEEF, then IN R4,#0 against the same
// latching port — R4 must read back 0xBEEF.
func TestScenarioIORoundTrip(t *testing.T) {
	bus := newMemBus()
	bus.loadAt(0x0100,
		0x21, 0x03, 0xBE, 0xEF, // LD R3,#0xBEEF
		0x99, 0x03, 0x00, 0x00, // OUT #0,R3
		0x95, 0x04, 0x00, 0x00, // IN R4,#0
		0x7A, 0x00, // HALT
	)
	c := newTestCPU(bus)
	runUntilHalt(t, c, 100)

	if got := c.Regs.RW(4); got != 0xBEEF {
		t.Errorf("R4 = %#04x, want 0xBEEF", got)
	}
}

func TestResetLoadsFCWAndPCFromVector(t *testing.T) {
	bus := newMemBus()
	bus.setupReset()
	c := NewCPU(bus, Options{})
	if c.FCW != 0x4000 {
		t.Errorf("FCW = %#04x, want 0x4000", c.FCW)
	}
	if c.PC != 0x0100 {
		t.Errorf("PC = %#04x, want 0x0100", c.PC)
	}
}

func TestExtendedInstructionTrapOnUndefinedOpcode(t *testing.T) {
	bus := newMemBus()
	bus.setupReset()
	// 0x00FF is never assigned by allDescriptors. Extended-instruction
	// trap vector lives at PSAP+0x06/+0x08.
	bus.loadAt(0x0006, 0x40, 0x00, 0x1A, 0x00)
	bus.loadAt(0x0100, 0x00, 0xFF)
	c := NewCPU(bus, Options{})
	c.Step()
	if c.PC != 0x1A00 {
		t.Errorf("PC = %#04x, want 0x1A00 after extended-instruction trap", c.PC)
	}
}

func TestPrivilegedInstructionTrapOutsideSystemMode(t *testing.T) {
	bus := newMemBus()
	// Reset FCW with Sys bit clear this time.
	bus.loadAt(0x0000, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00)
	bus.loadAt(0x000A, 0x00, 0x00, 0x1B, 0x00) // privileged trap FCW/PC
	bus.loadAt(0x0100, 0x7A, 0x00)             // HALT, privileged
	c := NewCPU(bus, Options{})
	c.Step()
	if c.PC != 0x1B00 {
		t.Errorf("PC = %#04x, want 0x1B00 after privileged-instruction trap", c.PC)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	bus := newMemBus()
	bus.setupReset()
	c := NewCPU(bus, Options{})
	c.Regs.SetRW(15, 0x1E00)
	c.Regs.SetRW(0, 0x1111)
	c.Regs.SetRW(1, 0x2222)

	// PUSH R1 (sp=R15); PUSH R0; POP R2; POP R3.
	bus.loadAt(0x0100,
		byte(opPUSH), byte(0xF<<4|1),
		byte(opPUSH), byte(0xF<<4|0),
		byte(opPOP), byte(2<<4|0xF),
		byte(opPOP), byte(3<<4|0xF),
		0x7A, 0x00,
	)
	runUntilHalt(t, c, 100)

	if got := c.Regs.RW(2); got != 0x1111 {
		t.Errorf("R2 = %#04x, want 0x1111", got)
	}
	if got := c.Regs.RW(3); got != 0x2222 {
		t.Errorf("R3 = %#04x, want 0x2222", got)
	}
	if got := c.Regs.RW(15); got != 0x1E00 {
		t.Errorf("SP = %#04x, want 0x1E00 (unchanged)", got)
	}
}
