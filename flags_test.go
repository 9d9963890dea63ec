package z8000

import "testing"

func TestAddFlagsWordCarryAndZero(t *testing.T) {
	result, f := addFlagsWord(0xFFFF, 0x0001, false)
	if result != 0 {
		t.Errorf("result = %#04x, want 0", result)
	}
	if !f.C || !f.Z {
		t.Errorf("flags = %+v, want C=true Z=true", f)
	}
}

func TestAddFlagsWordOverflow(t *testing.T) {
	// 0x7FFF + 1 overflows into the sign bit: V must be set, C must not be.
	_, f := addFlagsWord(0x7FFF, 0x0001, false)
	if !f.V {
		t.Errorf("V not set on signed overflow")
	}
	if f.C {
		t.Errorf("C incorrectly set")
	}
}

func TestSubFlagsWordBorrow(t *testing.T) {
	result, f := subFlagsWord(0x0000, 0x0001, false)
	if result != 0xFFFF {
		t.Errorf("result = %#04x, want 0xFFFF", result)
	}
	if !f.C {
		t.Errorf("C (borrow) not set")
	}
}

func TestIncDecFlagsWordOverflow(t *testing.T) {
	f := incDecFlagsWord(0x7FFF, 0x8000, true)
	if !f.V || !f.S || f.Z {
		t.Errorf("flags = %+v, want V=true S=true Z=false", f)
	}
	f = incDecFlagsWord(0x8000, 0x7FFF, false)
	if !f.V {
		t.Errorf("DEC across signed boundary should set V")
	}
}

func TestNegFlagsWord(t *testing.T) {
	f := negFlagsWord(0x0000)
	if f.C {
		t.Errorf("NEG of zero should clear C")
	}
	f = negFlagsWord(0x8000)
	if !f.C || !f.V {
		t.Errorf("NEG of 0x8000 should set C and V, got %+v", f)
	}
}

func TestComFlagsWordClearsV(t *testing.T) {
	f := comFlagsWord(0xFFFF)
	if f.V {
		t.Errorf("COM must always clear V")
	}
}

func TestIncDecAndComPreserveCarry(t *testing.T) {
	fcw := uint16(FCWC)
	fcw = incDecFlagsWord(0x7FFF, 0x8000, true).apply(fcw)
	if fcw&FCWC == 0 {
		t.Errorf("INC must not clear a pre-existing C, got %#04x", fcw)
	}
	fcw = incDecFlagsByte(0x7F, 0x80, true).apply(fcw)
	if fcw&FCWC == 0 {
		t.Errorf("INCB must not clear a pre-existing C, got %#04x", fcw)
	}
	fcw = comFlagsWord(0x0000).apply(fcw)
	if fcw&FCWC == 0 {
		t.Errorf("COM must not clear a pre-existing C, got %#04x", fcw)
	}
}

func TestLogicalFlagsByteParity(t *testing.T) {
	f := logicalFlagsByte(0x03) // two set bits: even parity -> V true
	if !f.V {
		t.Errorf("expected even-parity V=true for 0x03")
	}
	f = logicalFlagsByte(0x01) // one set bit: odd parity -> V false
	if f.V {
		t.Errorf("expected odd-parity V=false for 0x01")
	}
}

func TestFlagsApplyPreservesModeBits(t *testing.T) {
	f := flags{Z: true}
	fcw := f.apply(FCWSys | FCWVIE)
	if fcw&FCWSys == 0 || fcw&FCWVIE == 0 {
		t.Errorf("apply must not disturb mode bits, got %#04x", fcw)
	}
	if fcw&FCWZ == 0 {
		t.Errorf("apply must set Z, got %#04x", fcw)
	}
}
