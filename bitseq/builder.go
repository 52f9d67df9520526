package bitseq

import "github.com/lagom-nlp/irse/internal/pool"

// Builder accumulates symbols into a pooled buffer.
//
// A Builder must be released with Finish once the result has been taken with
// Bits. Any call after Finish panics.
type Builder struct {
	buf *pool.ByteBuffer
}

// NewBuilder returns an empty Builder backed by a pooled buffer.
func NewBuilder() *Builder {
	return &Builder{buf: pool.GetBitBuffer()}
}

// AppendOne appends a single '1'.
func (b *Builder) AppendOne() {
	buf := b.mustBuf()
	buf.B = append(buf.B, One)
}

// AppendZero appends a single '0'.
func (b *Builder) AppendZero() {
	buf := b.mustBuf()
	buf.B = append(buf.B, Zero)
}

// AppendBit appends '1' when one is true and '0' otherwise.
func (b *Builder) AppendBit(one bool) {
	if one {
		b.AppendOne()
		return
	}
	b.AppendZero()
}

// AppendZeros appends n zero symbols.
func (b *Builder) AppendZeros(n int) {
	b.appendRun(Zero, n)
}

// AppendOnes appends n one symbols.
func (b *Builder) AppendOnes(n int) {
	b.appendRun(One, n)
}

func (b *Builder) appendRun(sym byte, n int) {
	if n <= 0 {
		b.mustBuf()
		return
	}

	buf := b.mustBuf()
	start := buf.Len()
	buf.ExtendOrGrow(n)
	run := buf.B[start:]
	for i := range run {
		run[i] = sym
	}
}

// AppendUint appends v as a width-symbol field, most significant bit first.
// Bits of v above width are dropped; width 0 appends nothing.
func (b *Builder) AppendUint(v uint64, width int) {
	if width <= 0 {
		b.mustBuf()
		return
	}

	buf := b.mustBuf()
	start := buf.Len()
	buf.ExtendOrGrow(width)
	field := buf.B[start:]
	for i := width - 1; i >= 0; i-- {
		field[i] = Zero + byte(v&1)
		v >>= 1
	}
}

// AppendBinary appends the shortest binary representation of v.
func (b *Builder) AppendBinary(v uint64) {
	b.AppendUint(v, BinaryLen(v))
}

// Append appends an existing sequence.
func (b *Builder) Append(bits Bits) {
	b.mustBuf().MustWriteString(string(bits))
}

// Len returns the number of symbols appended so far.
func (b *Builder) Len() int {
	return b.mustBuf().Len()
}

// Bits returns a copy of the accumulated symbols.
func (b *Builder) Bits() Bits {
	return Bits(b.mustBuf().Bytes())
}

// Reset discards the accumulated symbols but keeps the buffer.
func (b *Builder) Reset() {
	b.mustBuf().Reset()
}

// Finish returns the buffer to the pool. The Builder is unusable afterwards.
func (b *Builder) Finish() {
	if b.buf != nil {
		pool.PutBitBuffer(b.buf)
		b.buf = nil
	}
}

func (b *Builder) mustBuf() *pool.ByteBuffer {
	if b.buf == nil {
		panic("builder already finished - cannot use after Finish()")
	}

	return b.buf
}
