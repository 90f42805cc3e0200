package sse

import (
	"errors"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decoder turns raw body chunks into payloads. It owns the decode buffer: the
// text not yet resolved into a complete frame, plus any bytes of a UTF-8
// sequence that was split across chunks.
type Decoder struct {
	text    transform.Transformer
	pending []byte
	buffer  string
}

func NewDecoder() *Decoder {
	return &Decoder{text: unicode.UTF8.NewDecoder()}
}

// Feed decodes chunk and returns the payloads of every frame it completed.
func (d *Decoder) Feed(chunk []byte) []string {
	frames, rest := Split(d.buffer, d.decode(chunk))
	d.buffer = rest

	var payloads []string
	for _, frame := range frames {
		payloads = append(payloads, frame.Payloads()...)
	}
	return payloads
}

// Buffered returns the unframed text held for the next chunk.
func (d *Decoder) Buffered() string {
	return d.buffer
}

// Reset discards all buffered state.
func (d *Decoder) Reset() {
	d.text.Reset()
	d.pending = nil
	d.buffer = ""
}

func (d *Decoder) decode(chunk []byte) string {
	src := append(d.pending, chunk...)
	d.pending = nil

	var out []byte
	dst := make([]byte, 3*len(src)+8)
	for {
		nDst, nSrc, err := d.text.Transform(dst, src, false)
		out = append(out, dst[:nDst]...)
		src = src[nSrc:]

		switch {
		case err == nil:
			return string(out)
		case errors.Is(err, transform.ErrShortSrc):
			d.pending = append([]byte(nil), src...)
			return string(out)
		case errors.Is(err, transform.ErrShortDst):
			if nSrc == 0 {
				dst = make([]byte, 2*len(dst))
			}
		default:
			return string(append(out, src...))
		}
	}
}
