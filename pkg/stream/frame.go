// Package stream publishes rendered frames to websocket viewers.
//
// A frame on the wire is a fixed header followed by the framebuffer's BGRA
// bytes, optionally compressed:
//
//	offset  size  field
//	0       4     magic "RCF1"
//	4       1     codec
//	5       4     width, little-endian
//	9       4     height, little-endian
//	13      8     sequence number, little-endian
//	21      -     payload
package stream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"

	"github.com/taigrr/retrocube/pkg/render"
)

// HeaderSize is the length of the frame header.
const HeaderSize = 21

// MaxDimension bounds the width and height accepted by DecodeFrame.
const MaxDimension = 1 << 14

var magic = [4]byte{'R', 'C', 'F', '1'}

var (
	ErrShortFrame   = errors.New("short frame")
	ErrBadMagic     = errors.New("bad frame magic")
	ErrUnknownCodec = errors.New("unknown codec")
)

// Codec selects the payload compression.
type Codec byte

const (
	CodecRaw Codec = iota
	CodecSnappy
	CodecZstd
)

var codecNames = [...]string{"raw", "snappy", "zstd"}

func (c Codec) String() string {
	if int(c) >= len(codecNames) {
		return fmt.Sprintf("Codec(%d)", byte(c))
	}
	return codecNames[c]
}

// ParseCodec parses a codec name such as "zstd".
func ParseCodec(s string) (Codec, error) {
	for i, name := range codecNames {
		if strings.EqualFold(s, name) {
			return Codec(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownCodec, s)
}

// Frame is one rendered image on the wire.
type Frame struct {
	Width  int
	Height int
	Seq    uint64
	Pix    []byte // BGRA, len == Width*Height*render.BytesPerPixel
}

// NewFrame wraps fb's pixels without copying them.
func NewFrame(fb *render.Framebuffer, seq uint64) Frame {
	return Frame{Width: fb.Width, Height: fb.Height, Seq: seq, Pix: fb.Pix}
}

// Framebuffer returns the frame as a framebuffer sharing its pixels.
func (f Frame) Framebuffer() *render.Framebuffer {
	return &render.Framebuffer{Width: f.Width, Height: f.Height, Pix: f.Pix}
}

// zstd encoders and decoders are safe for concurrent EncodeAll/DecodeAll.
var (
	zstdEncoder = sync.OnceValues(func() (*zstd.Encoder, error) {
		return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	})
	zstdDecoder = sync.OnceValues(func() (*zstd.Decoder, error) {
		return zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxDimension*MaxDimension*render.BytesPerPixel))
	})
)

// maxInitialCap bounds the buffer preallocated for a compressed payload
// before any of it has been decompressed.
const maxInitialCap = 1 << 20

// decodeCap returns the initial capacity for decompressing payloadLen bytes
// into a frame of want bytes. The header alone never buys more than
// maxInitialCap.
func decodeCap(want, payloadLen int) int {
	return min(want, max(maxInitialCap, payloadLen))
}

// EncodeFrame appends the encoded frame to dst and returns the result.
func EncodeFrame(dst []byte, f Frame, codec Codec) ([]byte, error) {
	if want := f.Width * f.Height * render.BytesPerPixel; len(f.Pix) != want {
		return dst, fmt.Errorf("encode frame: %d pixel bytes for %dx%d", len(f.Pix), f.Width, f.Height)
	}

	dst = append(dst, magic[:]...)
	dst = append(dst, byte(codec))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(f.Width))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(f.Height))
	dst = binary.LittleEndian.AppendUint64(dst, f.Seq)

	switch codec {
	case CodecRaw:
		return append(dst, f.Pix...), nil
	case CodecSnappy:
		return append(dst, snappy.Encode(nil, f.Pix)...), nil
	case CodecZstd:
		enc, err := zstdEncoder()
		if err != nil {
			return dst, fmt.Errorf("encode frame: zstd: %w", err)
		}
		return enc.EncodeAll(f.Pix, dst), nil
	}
	return dst, fmt.Errorf("encode frame: %w %d", ErrUnknownCodec, byte(codec))
}

// DecodeFrame parses an encoded frame. The returned pixels never alias data.
func DecodeFrame(data []byte) (Frame, Codec, error) {
	if len(data) < HeaderSize {
		return Frame{}, 0, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(data))
	}
	if !bytes.Equal(data[:4], magic[:]) {
		return Frame{}, 0, fmt.Errorf("%w %q", ErrBadMagic, data[:4])
	}

	codec := Codec(data[4])
	w := binary.LittleEndian.Uint32(data[5:])
	h := binary.LittleEndian.Uint32(data[9:])
	f := Frame{
		Width:  int(w),
		Height: int(h),
		Seq:    binary.LittleEndian.Uint64(data[13:]),
	}
	if w > MaxDimension || h > MaxDimension {
		return Frame{}, codec, fmt.Errorf("frame size %dx%d exceeds %d", w, h, MaxDimension)
	}
	want := f.Width * f.Height * render.BytesPerPixel
	payload := data[HeaderSize:]

	var err error
	switch codec {
	case CodecRaw:
		f.Pix = bytes.Clone(payload)
	case CodecSnappy:
		var n int
		if n, err = snappy.DecodedLen(payload); err == nil && n != want {
			return Frame{}, codec, fmt.Errorf("%w: payload %d bytes, want %d", ErrShortFrame, n, want)
		}
		if err == nil {
			f.Pix, err = snappy.Decode(nil, payload)
		}
	case CodecZstd:
		var dec *zstd.Decoder
		if dec, err = zstdDecoder(); err == nil {
			f.Pix, err = dec.DecodeAll(payload, make([]byte, 0, decodeCap(want, len(payload))))
		}
	default:
		return Frame{}, codec, fmt.Errorf("%w %d", ErrUnknownCodec, byte(codec))
	}
	if err != nil {
		return Frame{}, codec, fmt.Errorf("decode %s payload: %w", codec, err)
	}
	if len(f.Pix) != want {
		return Frame{}, codec, fmt.Errorf("%w: payload %d bytes, want %d", ErrShortFrame, len(f.Pix), want)
	}
	return f, codec, nil
}
