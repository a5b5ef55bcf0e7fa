package pix

// Format identifies a pixel format. The value is self-describing: the
// byte size of the smallest independently addressable block, the bits
// per pixel and the channel count are packed into the identifier itself,
// so stride and allocation math never needs a lookup table.
//
// Bit layout:
//
//	bits 24..31  bytes per block (1 for ordinary formats)
//	bits 16..23  bits per pixel
//	bits 14..15  channel count minus one
//	bits  3..13  unique id within the family
//	bit   2      channels are native little-endian words
//	bit   1      channels hold floating-point values
//	bit   0      channels hold signed values (also set for floats)
type Format uint32

// Flag bits carried in the low three bits of a Format.
const (
	formatFlagSigned Format = 1 << 0
	formatFlagFloat  Format = 1 << 1
	formatFlagNative Format = 1 << 2
)

// Formats with multi-byte channels carry a Native16 or Native32 suffix:
// each channel is stored as one little-endian machine word of that width.
// Formats without the suffix list their channels in memory byte order.
const (
	// FormatR8Unsigned is 8-bit unsigned red only (1 byte per pixel).
	FormatR8Unsigned Format = (1 << 24) | (8 << 16) | (0 << 14) | 1024

	// FormatR16UnsignedNative16 is 16-bit unsigned red only.
	FormatR16UnsignedNative16 Format = (2 << 24) | (16 << 16) | (0 << 14) | 1032 | formatFlagNative

	// FormatR16FloatNative16 is 16-bit half-precision float red only.
	FormatR16FloatNative16 Format = (2 << 24) | (16 << 16) | (0 << 14) | 1032 |
		formatFlagSigned | formatFlagFloat | formatFlagNative

	// FormatR32FloatNative32 is 32-bit float red only.
	FormatR32FloatNative32 Format = (4 << 24) | (32 << 16) | (0 << 14) | 1040 |
		formatFlagSigned | formatFlagFloat | formatFlagNative

	// FormatA8Unsigned is 8-bit unsigned alpha only (1 byte per pixel).
	FormatA8Unsigned Format = (1 << 24) | (8 << 16) | (0 << 14) | 2048

	// FormatA16UnsignedNative16 is 16-bit unsigned alpha only.
	FormatA16UnsignedNative16 Format = (2 << 24) | (16 << 16) | (0 << 14) | 2056 | formatFlagNative

	// FormatA16FloatNative16 is 16-bit half-precision float alpha only.
	FormatA16FloatNative16 Format = (2 << 24) | (16 << 16) | (0 << 14) | 2056 |
		formatFlagSigned | formatFlagFloat | formatFlagNative

	// FormatA32FloatNative32 is 32-bit float alpha only.
	FormatA32FloatNative32 Format = (4 << 24) | (32 << 16) | (0 << 14) | 2064 |
		formatFlagSigned | formatFlagFloat | formatFlagNative

	// FormatR8G8Unsigned is 8-bit unsigned red and green, red first.
	FormatR8G8Unsigned Format = (2 << 24) | (16 << 16) | (1 << 14) | 3072

	// FormatR16G16UnsignedNative16 is 16-bit unsigned red and green.
	FormatR16G16UnsignedNative16 Format = (4 << 24) | (32 << 16) | (1 << 14) | 3080 | formatFlagNative

	// FormatR16G16FloatNative16 is 16-bit half-precision float red and green.
	FormatR16G16FloatNative16 Format = (4 << 24) | (32 << 16) | (1 << 14) | 3080 |
		formatFlagSigned | formatFlagFloat | formatFlagNative

	// FormatR8A8Unsigned is 8-bit unsigned red and alpha, red first.
	FormatR8A8Unsigned Format = (2 << 24) | (16 << 16) | (1 << 14) | 4096

	// FormatR16A16UnsignedNative16 is 16-bit unsigned red and alpha.
	FormatR16A16UnsignedNative16 Format = (4 << 24) | (32 << 16) | (1 << 14) | 4104 | formatFlagNative

	// FormatR5G6B5UnsignedNative16 packs red, green and blue into one
	// 16-bit word with red in the top 5 bits and blue in the bottom 5.
	FormatR5G6B5UnsignedNative16 Format = (2 << 24) | (16 << 16) | (2 << 14) | 5120 | formatFlagNative

	// FormatB5G6R5UnsignedNative16 packs blue, green and red into one
	// 16-bit word with blue in the top 5 bits and red in the bottom 5.
	FormatB5G6R5UnsignedNative16 Format = (2 << 24) | (16 << 16) | (2 << 14) | 5128 | formatFlagNative

	// FormatR8G8B8Unsigned is 24-bit unsigned RGB, red byte first.
	FormatR8G8B8Unsigned Format = (3 << 24) | (24 << 16) | (2 << 14) | 5136

	// FormatR8G8B8Signed is 24-bit signed RGB, red byte first.
	FormatR8G8B8Signed Format = (3 << 24) | (24 << 16) | (2 << 14) | 5136 | formatFlagSigned

	// FormatB8G8R8Unsigned is 24-bit unsigned BGR, blue byte first.
	FormatB8G8R8Unsigned Format = (3 << 24) | (24 << 16) | (2 << 14) | 5144

	// FormatB8G8R8Signed is 24-bit signed BGR, blue byte first.
	FormatB8G8R8Signed Format = (3 << 24) | (24 << 16) | (2 << 14) | 5144 | formatFlagSigned

	// FormatR16G16B16UnsignedNative16 is 48-bit unsigned RGB with
	// 16 bits per channel, red word first.
	FormatR16G16B16UnsignedNative16 Format = (6 << 24) | (48 << 16) | (2 << 14) | 5152 | formatFlagNative

	// FormatA8B8G8R8Unsigned is 32-bit unsigned ABGR, alpha byte first.
	FormatA8B8G8R8Unsigned Format = (4 << 24) | (32 << 16) | (3 << 14) | 6144

	// FormatR8G8B8A8Unsigned is 32-bit unsigned RGBA, red byte first.
	// This is the most widely supported interchange format.
	FormatR8G8B8A8Unsigned Format = (4 << 24) | (32 << 16) | (3 << 14) | 6144 | formatFlagNative

	// FormatA8B8G8R8Signed is 32-bit signed ABGR, alpha byte first.
	FormatA8B8G8R8Signed Format = (4 << 24) | (32 << 16) | (3 << 14) | 6144 | formatFlagSigned

	// FormatR8G8B8A8Signed is 32-bit signed RGBA, red byte first.
	FormatR8G8B8A8Signed Format = (4 << 24) | (32 << 16) | (3 << 14) | 6144 |
		formatFlagSigned | formatFlagNative

	// FormatA16B16G16R16UnsignedNative16 is 64-bit unsigned ABGR with
	// 16 bits per channel, alpha word first.
	FormatA16B16G16R16UnsignedNative16 Format = (8 << 24) | (64 << 16) | (3 << 14) | 6152 | formatFlagNative

	// FormatA16B16G16R16FloatNative16 is 64-bit half-precision float ABGR,
	// alpha word first.
	FormatA16B16G16R16FloatNative16 Format = (8 << 24) | (64 << 16) | (3 << 14) | 6152 |
		formatFlagSigned | formatFlagFloat | formatFlagNative

	// FormatR16G16B16A16UnsignedNative16 is 64-bit unsigned RGBA with
	// 16 bits per channel, red word first.
	FormatR16G16B16A16UnsignedNative16 Format = (8 << 24) | (64 << 16) | (3 << 14) | 6160 | formatFlagNative

	// FormatR16G16B16A16FloatNative16 is 64-bit half-precision float RGBA,
	// red word first.
	FormatR16G16B16A16FloatNative16 Format = (8 << 24) | (64 << 16) | (3 << 14) | 6160 |
		formatFlagSigned | formatFlagFloat | formatFlagNative

	// FormatA32B32G32R32FloatNative32 is 128-bit float ABGR with 32 bits
	// per channel, alpha word first.
	FormatA32B32G32R32FloatNative32 Format = (16 << 24) | (128 << 16) | (3 << 14) | 6168 |
		formatFlagSigned | formatFlagFloat | formatFlagNative

	// FormatR32G32B32A32FloatNative32 is 128-bit float RGBA with 32 bits
	// per channel, red word first.
	FormatR32G32B32A32FloatNative32 Format = (16 << 24) | (128 << 16) | (3 << 14) | 6176 |
		formatFlagSigned | formatFlagFloat | formatFlagNative

	// FormatB8G8R8A8Unsigned is 32-bit unsigned BGRA, blue byte first.
	// Common swap chain and Windows framebuffer layout.
	FormatB8G8R8A8Unsigned Format = (4 << 24) | (32 << 16) | (3 << 14) | 6184

	// FormatA8R8G8B8Unsigned is 32-bit unsigned ARGB, alpha byte first.
	FormatA8R8G8B8Unsigned Format = (4 << 24) | (32 << 16) | (3 << 14) | 6184 | formatFlagNative

	// FormatB8G8R8A8Signed is 32-bit signed BGRA, blue byte first.
	FormatB8G8R8A8Signed Format = (4 << 24) | (32 << 16) | (3 << 14) | 6192 | formatFlagSigned

	// FormatA8R8G8B8Signed is 32-bit signed ARGB, alpha byte first.
	FormatA8R8G8B8Signed Format = (4 << 24) | (32 << 16) | (3 << 14) | 6192 |
		formatFlagSigned | formatFlagNative

	// FormatB16G16R16A16UnsignedNative16 is 64-bit unsigned BGRA with
	// 16 bits per channel, blue word first.
	FormatB16G16R16A16UnsignedNative16 Format = (8 << 24) | (64 << 16) | (3 << 14) | 6200 | formatFlagNative

	// FormatB16G16R16A16FloatNative16 is 64-bit half-precision float BGRA,
	// blue word first.
	FormatB16G16R16A16FloatNative16 Format = (8 << 24) | (64 << 16) | (3 << 14) | 6200 |
		formatFlagSigned | formatFlagFloat | formatFlagNative

	// FormatA16R16G16B16UnsignedNative16 is 64-bit unsigned ARGB with
	// 16 bits per channel, alpha word first.
	FormatA16R16G16B16UnsignedNative16 Format = (8 << 24) | (64 << 16) | (3 << 14) | 6208 | formatFlagNative

	// FormatA16R16G16B16FloatNative16 is 64-bit half-precision float ARGB,
	// alpha word first.
	FormatA16R16G16B16FloatNative16 Format = (8 << 24) | (64 << 16) | (3 << 14) | 6208 |
		formatFlagSigned | formatFlagFloat | formatFlagNative

	// FormatA2B10G10R10UnsignedNative32 packs 2-bit alpha and 10-bit
	// blue, green, red into one 32-bit word, alpha in the top 2 bits.
	FormatA2B10G10R10UnsignedNative32 Format = (4 << 24) | (32 << 16) | (3 << 14) | 7168 | formatFlagNative

	// FormatA2R10G10B10UnsignedNative32 packs 2-bit alpha and 10-bit
	// red, green, blue into one 32-bit word, alpha in the top 2 bits.
	FormatA2R10G10B10UnsignedNative32 Format = (4 << 24) | (32 << 16) | (3 << 14) | 7176 | formatFlagNative
)

// Word-order aliases. Loading a whole 32-bit pixel as one little-endian
// machine word reverses its byte order, so every word-layout name resolves
// to the byte-layout constant with the opposite channel sequence. Flipped
// names describe the opposite of the machine's word order and keep the
// byte sequence as written.
const (
	FormatA8B8G8R8UnsignedNative32  = FormatR8G8B8A8Unsigned
	FormatA8B8G8R8UnsignedFlipped32 = FormatA8B8G8R8Unsigned
	FormatR8G8B8A8UnsignedNative32  = FormatA8B8G8R8Unsigned
	FormatR8G8B8A8UnsignedFlipped32 = FormatR8G8B8A8Unsigned
	FormatA8B8G8R8SignedNative32    = FormatR8G8B8A8Signed
	FormatA8B8G8R8SignedFlipped32   = FormatA8B8G8R8Signed
	FormatR8G8B8A8SignedNative32    = FormatA8B8G8R8Signed
	FormatR8G8B8A8SignedFlipped32   = FormatR8G8B8A8Signed
	FormatB8G8R8A8UnsignedNative32  = FormatA8R8G8B8Unsigned
	FormatB8G8R8A8UnsignedFlipped32 = FormatB8G8R8A8Unsigned
	FormatA8R8G8B8UnsignedNative32  = FormatB8G8R8A8Unsigned
	FormatA8R8G8B8UnsignedFlipped32 = FormatA8R8G8B8Unsigned
	FormatB8G8R8A8SignedNative32    = FormatA8R8G8B8Signed
	FormatB8G8R8A8SignedFlipped32   = FormatB8G8R8A8Signed
	FormatA8R8G8B8SignedNative32    = FormatB8G8R8A8Signed
	FormatA8R8G8B8SignedFlipped32   = FormatA8R8G8B8Signed
)

// BitsPerPixel returns the number of bits one pixel occupies.
func (f Format) BitsPerPixel() int {
	return int((f >> 16) & 0xFF)
}

// BytesPerBlock returns the byte size of the smallest independently
// addressable block. For every format without block compression this
// is the byte size of a single pixel.
func (f Format) BytesPerBlock() int {
	return int(f >> 24)
}

// RequiredBytes returns the number of bytes needed to store pixelCount
// consecutive pixels. All stride and allocation math in this package
// derives from this value.
func (f Format) RequiredBytes(pixelCount int) int {
	if pixelCount <= 0 {
		return 0
	}
	return (f.BitsPerPixel()*pixelCount + 7) / 8
}

// BlockSize returns the pixel dimensions of the smallest independently
// addressable block. Ordinary formats report 1x1; block-compressed
// formats would report their compression block here. Allocation sizing
// rounds dimensions up to this, logical width and height never do.
func (f Format) BlockSize() (w, h int) {
	return 1, 1
}

// Channels returns the number of color channels.
func (f Format) Channels() int {
	return int((f>>14)&3) + 1
}

// IsValid reports whether f is one of the described formats.
func (f Format) IsValid() bool {
	_, ok := formatTable[f]
	return ok
}

// String returns the format's name, or a hex rendering for unknown ids.
func (f Format) String() string {
	if desc, ok := formatTable[f]; ok {
		return desc.name
	}
	return "Format(0x" + hexUint32(uint32(f)) + ")"
}

// Formats returns every described format in declaration order.
// The returned slice is freshly allocated on each call.
func Formats() []Format {
	out := make([]Format, len(formatList))
	copy(out, formatList)
	return out
}

const hexDigits = "0123456789ABCDEF"

func hexUint32(v uint32) string {
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = hexDigits[v&0xF]
		v >>= 4
	}
	return string(buf[:])
}
