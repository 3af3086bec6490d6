package wideint

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	apperrors "github.com/agbru/wideint/internal/errors"
	"github.com/agbru/wideint/internal/register"
)

const wordBytes = WordBits / 8

// codecFields is the length of the msgpack array of an encoded Int:
// bits, signed, negative, magnitude.
const codecFields = 4

// Bytes returns the absolute value of x as a big-endian byte slice without
// leading zeros.
func (x *Int) Bytes() []byte {
	sig := x.view().Sig()
	buf := make([]byte, len(sig)*wordBytes)
	i := len(buf)
	for _, w := range sig {
		for range wordBytes {
			i--
			buf[i] = byte(w)
			w >>= 8
		}
	}
	for len(buf) > 0 && buf[0] == 0 {
		buf = buf[1:]
	}
	return buf
}

// setBytes stores the big-endian magnitude buf into z. It reports false when
// buf does not fit z's capacity.
func setBytes(z *register.Reg, buf []byte) bool {
	clear(z.Words)
	for i, b := range buf {
		k := len(buf) - 1 - i
		w := k / wordBytes
		if w >= len(z.Words) {
			if b != 0 {
				return false
			}
			continue
		}
		z.Words[w] |= Word(b) << (8 * (k % wordBytes))
	}
	z.Size = len(z.Words)
	z.Trim()
	return true
}

// EncodeMsgpack implements msgpack.CustomEncoder. An Int is encoded as the
// array [bits, signed, negative, magnitude].
func (x *Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(codecFields); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(x.domain.Bits)); err != nil {
		return err
	}
	if err := enc.EncodeBool(x.domain.Signed); err != nil {
		return err
	}
	if err := enc.EncodeBool(x.reg.Sign); err != nil {
		return err
	}
	return enc.EncodeBytes(x.Bytes())
}

// DecodeMsgpack implements msgpack.CustomDecoder. A zero-value z adopts the
// encoded domain; otherwise the value is converted into z's domain and an
// OverflowError is returned if it does not fit.
func (z *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != codecFields {
		return apperrors.ValidationError{Field: "msgpack", Message: fmt.Sprintf("want %d fields, got %d", codecFields, n)}
	}
	raw, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	bits, err := safecast.Conv[int](raw)
	if err != nil || bits < 1 || bits > MaxBits {
		return apperrors.ValidationError{Field: "bits", Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxBits, raw)}
	}
	isSigned, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	neg, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	mag, err := dec.DecodeBytes()
	if err != nil {
		return err
	}

	d := NewDomain(bits, isSigned)
	t := register.Make(d.words())
	if !setBytes(&t, mag) {
		return apperrors.ValidationError{Field: "magnitude", Message: "wider than " + d.String()}
	}
	t.Sign = neg && t.Size > 0
	if t.Sign && !d.Signed {
		return apperrors.ValidationError{Field: "sign", Message: "negative value in " + d.String()}
	}
	if v := t.View(); d.Signed && v.HasMSB() && !(t.Sign && v.IsMinMagnitude()) {
		return apperrors.ValidationError{Field: "magnitude", Message: "out of range for " + d.String()}
	}

	z.adopt(d)
	if f := convert(t.View(), d, z.domain, &z.reg); f.Has(Overflow) {
		return apperrors.OverflowError{Op: "decode", Domain: z.domain.String()}
	}
	return nil
}

var (
	_ msgpack.CustomEncoder = (*Int)(nil)
	_ msgpack.CustomDecoder = (*Int)(nil)
)
