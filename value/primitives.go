package value

import (
	"fmt"
	"math"
	"strconv"
)

// Nil is the null value.
type Nil struct{}

func (Nil) Hash() uint32 {
	return 0
}

func (Nil) Equals(other Value) bool {
	_, ok := other.(Nil)
	return ok
}

func (Nil) Destroy() {}

func (Nil) String() string {
	return "NIL"
}

type Boolean bool

func (b Boolean) Hash() uint32 {
	if b {
		return 1231
	}
	return 1237
}

func (b Boolean) Equals(other Value) bool {
	o, ok := other.(Boolean)
	return ok && o == b
}

func (Boolean) Destroy() {}

func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

type Integer int64

func (i Integer) Hash() uint32 {
	return uint32(i) ^ uint32(uint64(i)>>32)
}

func (i Integer) Equals(other Value) bool {
	o, ok := other.(Integer)
	return ok && o == i
}

func (Integer) Destroy() {}

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// Double compares by bit pattern, so NaN equals NaN and 0.0 differs from -0.0.
type Double float64

func (d Double) Hash() uint32 {
	bits := math.Float64bits(float64(d))
	return uint32(bits) ^ uint32(bits>>32)
}

func (d Double) Equals(other Value) bool {
	o, ok := other.(Double)
	return ok && math.Float64bits(float64(o)) == math.Float64bits(float64(d))
}

func (Double) Destroy() {}

func (d Double) String() string {
	return strconv.FormatFloat(float64(d), 'g', -1, 64)
}

type String string

func (s String) Hash() uint32 {
	return hashBytes([]byte(s))
}

func (s String) Equals(other Value) bool {
	o, ok := other.(String)
	return ok && o == s
}

func (String) Destroy() {}

func (s String) String() string {
	return strconv.Quote(string(s))
}

// Bytes is an arbitrary byte sequence. Destroy drops the reference to the
// underlying buffer.
type Bytes struct {
	data []byte
}

func NewBytes(b []byte) *Bytes {
	return &Bytes{data: b}
}

func (b *Bytes) Data() []byte {
	return b.data
}

func (b *Bytes) Hash() uint32 {
	return hashBytes(b.data)
}

func (b *Bytes) Equals(other Value) bool {
	o, ok := other.(*Bytes)
	if !ok {
		return false
	}
	if o == b {
		return true
	}
	return string(o.data) == string(b.data)
}

func (b *Bytes) Destroy() {
	b.data = nil
}

func (b *Bytes) String() string {
	return fmt.Sprintf("%x", b.data)
}
