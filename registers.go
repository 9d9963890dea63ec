// Package z8000 implements the Zilog Z8002 (non-segmented Z8000) CPU core:
// register file, decoder, flag unit and instruction execution engine.
package z8000

// RegisterFile holds the sixteen 16-bit general registers R0..R15 as a
// single 32-byte backing buffer, with word/byte/long/quad views derived
// from it by explicit big-endian assembly. A single storage representation
// keeps the overlapping views from drifting relative to each other; the
// reference core's BYTE8_XOR_BE/BYTE4_XOR_BE host-endianness tricks exist
// to let a C++ union alias the same bytes as native uint16/uint32 — Go has
// no unions, so the equivalent here is to assemble each view from bytes
// explicitly, which is host-endianness-independent by construction.
type RegisterFile struct {
	bytes [32]byte
}

// wordOffset returns the backing-buffer byte offset of the high byte of
// word register n.
func wordOffset(n int) int {
	return n << 1
}

// RW reads word register n (0..15).
func (r *RegisterFile) RW(n int) uint16 {
	off := wordOffset(n)
	return uint16(r.bytes[off])<<8 | uint16(r.bytes[off+1])
}

// SetRW writes word register n (0..15).
func (r *RegisterFile) SetRW(n int, v uint16) {
	off := wordOffset(n)
	r.bytes[off] = byte(v >> 8)
	r.bytes[off+1] = byte(v)
}

// byteOffset returns the backing-buffer offset of byte register k (0..15),
// where even k is RH(k/2) and odd k is RL(k/2) — i.e. RB indexes the same
// byte-numbering as RH0,RL0,RH1,RL1,....
func byteOffset(k int) int {
	return wordOffset(k/2) + (k & 1)
}

// RB reads byte register k (0..15): k even selects RH(k/2), odd selects
// RL(k/2). Only registers 0..7 have architectural byte aliases, so k must
// be in [0,15].
func (r *RegisterFile) RB(k int) byte {
	return r.bytes[byteOffset(k)]
}

// SetRB writes byte register k.
func (r *RegisterFile) SetRB(k int, v byte) {
	r.bytes[byteOffset(k)] = v
}

// RH reads the high byte of word register n (n in 0..7).
func (r *RegisterFile) RH(n int) byte { return r.RB(n * 2) }

// RL8 reads the low byte of word register n (n in 0..7). Named RL8 to avoid
// colliding with the long-register view RL.
func (r *RegisterFile) RL8(n int) byte { return r.RB(n*2 + 1) }

// SetRH writes the high byte of word register n.
func (r *RegisterFile) SetRH(n int, v byte) { r.SetRB(n*2, v) }

// SetRL8 writes the low byte of word register n.
func (r *RegisterFile) SetRL8(n int, v byte) { r.SetRB(n*2+1, v) }

// RL reads long register n (n even, 0..14): RW(n) is the high word.
func (r *RegisterFile) RL(n int) uint32 {
	return uint32(r.RW(n))<<16 | uint32(r.RW(n+1))
}

// SetRL writes long register n (n even, 0..14).
func (r *RegisterFile) SetRL(n int, v uint32) {
	r.SetRW(n, uint16(v>>16))
	r.SetRW(n+1, uint16(v))
}

// RQ reads quad register n (n in {0,4,8,12}): RW(n) is the high word of
// four consecutive words.
func (r *RegisterFile) RQ(n int) (hi, mh, ml, lo uint16) {
	return r.RW(n), r.RW(n + 1), r.RW(n + 2), r.RW(n + 3)
}

// SetRQ writes quad register n.
func (r *RegisterFile) SetRQ(n int, hi, mh, ml, lo uint16) {
	r.SetRW(n, hi)
	r.SetRW(n+1, mh)
	r.SetRW(n+2, ml)
	r.SetRW(n+3, lo)
}

// RQLong reads quad register n as two concatenated 32-bit longs, high long
// first — used by MULTL/DIVL which produce/consume 64-bit quantities split
// across a register quad.
func (r *RegisterFile) RQLong(n int) (hi, lo uint32) {
	return r.RL(n), r.RL(n + 2)
}

// SetRQLong writes quad register n from two 32-bit longs.
func (r *RegisterFile) SetRQLong(n int, hi, lo uint32) {
	r.SetRL(n, hi)
	r.SetRL(n+2, lo)
}

// Reset clears all registers to zero.
func (r *RegisterFile) Reset() {
	r.bytes = [32]byte{}
}
