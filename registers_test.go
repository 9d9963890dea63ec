package z8000

import "testing"

func TestRegisterWordByteAliasing(t *testing.T) {
	var r RegisterFile
	r.SetRW(0, 0x1234)
	if got := r.RH(0); got != 0x12 {
		t.Errorf("RH(0) = %#02x, want 0x12", got)
	}
	if got := r.RL8(0); got != 0x34 {
		t.Errorf("RL8(0) = %#02x, want 0x34", got)
	}

	r.SetRH(0, 0xAB)
	r.SetRL8(0, 0xCD)
	if got := r.RW(0); got != 0xABCD {
		t.Errorf("RW(0) after byte writes = %#04x, want 0xABCD", got)
	}
}

func TestRegisterByteIndexing(t *testing.T) {
	var r RegisterFile
	r.SetRW(3, 0x5678)
	if got := r.RB(6); got != 0x56 {
		t.Errorf("RB(6) = %#02x, want 0x56", got)
	}
	if got := r.RB(7); got != 0x78 {
		t.Errorf("RB(7) = %#02x, want 0x78", got)
	}
}

func TestRegisterLongAliasing(t *testing.T) {
	var r RegisterFile
	r.SetRL(4, 0xDEADBEEF)
	if got := r.RW(4); got != 0xDEAD {
		t.Errorf("RW(4) = %#04x, want 0xDEAD", got)
	}
	if got := r.RW(5); got != 0xBEEF {
		t.Errorf("RW(5) = %#04x, want 0xBEEF", got)
	}
	if got := r.RL(4); got != 0xDEADBEEF {
		t.Errorf("RL(4) = %#08x, want 0xDEADBEEF", got)
	}
}

func TestRegisterQuadAliasing(t *testing.T) {
	var r RegisterFile
	r.SetRQ(8, 0x1111, 0x2222, 0x3333, 0x4444)
	hi, mh, ml, lo := r.RQ(8)
	if hi != 0x1111 || mh != 0x2222 || ml != 0x3333 || lo != 0x4444 {
		t.Fatalf("RQ(8) = %#04x,%#04x,%#04x,%#04x, want 1111,2222,3333,4444", hi, mh, ml, lo)
	}
	hi64, lo64 := r.RQLong(8)
	if hi64 != 0x11112222 || lo64 != 0x33334444 {
		t.Fatalf("RQLong(8) = %#08x,%#08x, want 11112222,33334444", hi64, lo64)
	}
}

func TestRegisterReset(t *testing.T) {
	var r RegisterFile
	r.SetRW(0, 0xFFFF)
	r.Reset()
	if got := r.RW(0); got != 0 {
		t.Errorf("RW(0) after Reset = %#04x, want 0", got)
	}
}
