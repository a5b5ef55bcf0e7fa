package pix

// dataType classifies how a format's channel bits encode values.
type dataType uint8

const (
	dataUnsigned dataType = iota
	dataSigned
	dataFloat
)

// endianOp names the byte shuffle that would bring a stored pixel into
// the described channel order. Every current format stores its channels
// in little-endian order already, so the table only ever holds endianNone;
// a format that needed flipping would set one of the other values and
// RequiresEndianFlip would report it.
type endianOp uint8

const (
	endianNone endianOp = iota
	endianFlipChannels
	endianFlipPixel
)

// Channel slot indices. The conversion and query code treats slots
// positionally: slot 0 is always red, slot 3 always alpha, regardless
// of where the format places those bits.
const (
	channelRed = iota
	channelGreen
	channelBlue
	channelAlpha
	channelCount
)

// channelDesc locates one channel's bits within a pixel. The shift
// counts from bit 0 of the pixel's first byte.
type channelDesc struct {
	present bool
	shift   uint8
	bits    uint8
}

// formatDesc fully describes one pixel format. Query answers and the
// conversion registry derive from this table alone; adding a format
// here makes it convertible everywhere.
type formatDesc struct {
	name     string
	dataType dataType
	endian   endianOp
	channels [channelCount]channelDesc
}

var formatTable = map[Format]*formatDesc{
	FormatR8Unsigned: {
		name: "R8Unsigned", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed: {present: true, shift: 0, bits: 8},
		},
	},
	FormatR16UnsignedNative16: {
		name: "R16UnsignedNative16", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed: {present: true, shift: 0, bits: 16},
		},
	},
	FormatR16FloatNative16: {
		name: "R16FloatNative16", dataType: dataFloat,
		channels: [channelCount]channelDesc{
			channelRed: {present: true, shift: 0, bits: 16},
		},
	},
	FormatR32FloatNative32: {
		name: "R32FloatNative32", dataType: dataFloat,
		channels: [channelCount]channelDesc{
			channelRed: {present: true, shift: 0, bits: 32},
		},
	},
	FormatA8Unsigned: {
		name: "A8Unsigned", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelAlpha: {present: true, shift: 0, bits: 8},
		},
	},
	FormatA16UnsignedNative16: {
		name: "A16UnsignedNative16", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelAlpha: {present: true, shift: 0, bits: 16},
		},
	},
	FormatA16FloatNative16: {
		name: "A16FloatNative16", dataType: dataFloat,
		channels: [channelCount]channelDesc{
			channelAlpha: {present: true, shift: 0, bits: 16},
		},
	},
	FormatA32FloatNative32: {
		name: "A32FloatNative32", dataType: dataFloat,
		channels: [channelCount]channelDesc{
			channelAlpha: {present: true, shift: 0, bits: 32},
		},
	},
	FormatR8G8Unsigned: {
		name: "R8G8Unsigned", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 0, bits: 8},
			channelGreen: {present: true, shift: 8, bits: 8},
		},
	},
	FormatR16G16UnsignedNative16: {
		name: "R16G16UnsignedNative16", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 0, bits: 16},
			channelGreen: {present: true, shift: 16, bits: 16},
		},
	},
	FormatR16G16FloatNative16: {
		name: "R16G16FloatNative16", dataType: dataFloat,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 0, bits: 16},
			channelGreen: {present: true, shift: 16, bits: 16},
		},
	},
	FormatR8A8Unsigned: {
		name: "R8A8Unsigned", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 0, bits: 8},
			channelAlpha: {present: true, shift: 8, bits: 8},
		},
	},
	FormatR16A16UnsignedNative16: {
		name: "R16A16UnsignedNative16", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 0, bits: 16},
			channelAlpha: {present: true, shift: 16, bits: 16},
		},
	},
	FormatR5G6B5UnsignedNative16: {
		name: "R5G6B5UnsignedNative16", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 11, bits: 5},
			channelGreen: {present: true, shift: 5, bits: 6},
			channelBlue:  {present: true, shift: 0, bits: 5},
		},
	},
	FormatB5G6R5UnsignedNative16: {
		name: "B5G6R5UnsignedNative16", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 0, bits: 5},
			channelGreen: {present: true, shift: 5, bits: 6},
			channelBlue:  {present: true, shift: 11, bits: 5},
		},
	},
	FormatR8G8B8Unsigned: {
		name: "R8G8B8Unsigned", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 0, bits: 8},
			channelGreen: {present: true, shift: 8, bits: 8},
			channelBlue:  {present: true, shift: 16, bits: 8},
		},
	},
	FormatR8G8B8Signed: {
		name: "R8G8B8Signed", dataType: dataSigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 0, bits: 8},
			channelGreen: {present: true, shift: 8, bits: 8},
			channelBlue:  {present: true, shift: 16, bits: 8},
		},
	},
	FormatB8G8R8Unsigned: {
		name: "B8G8R8Unsigned", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 16, bits: 8},
			channelGreen: {present: true, shift: 8, bits: 8},
			channelBlue:  {present: true, shift: 0, bits: 8},
		},
	},
	FormatB8G8R8Signed: {
		name: "B8G8R8Signed", dataType: dataSigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 16, bits: 8},
			channelGreen: {present: true, shift: 8, bits: 8},
			channelBlue:  {present: true, shift: 0, bits: 8},
		},
	},
	FormatA8B8G8R8Unsigned: {
		name: "A8B8G8R8Unsigned", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 24, bits: 8},
			channelGreen: {present: true, shift: 16, bits: 8},
			channelBlue:  {present: true, shift: 8, bits: 8},
			channelAlpha: {present: true, shift: 0, bits: 8},
		},
	},
	FormatA8B8G8R8Signed: {
		name: "A8B8G8R8Signed", dataType: dataSigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 24, bits: 8},
			channelGreen: {present: true, shift: 16, bits: 8},
			channelBlue:  {present: true, shift: 8, bits: 8},
			channelAlpha: {present: true, shift: 0, bits: 8},
		},
	},
	FormatR8G8B8A8Unsigned: {
		name: "R8G8B8A8Unsigned", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 0, bits: 8},
			channelGreen: {present: true, shift: 8, bits: 8},
			channelBlue:  {present: true, shift: 16, bits: 8},
			channelAlpha: {present: true, shift: 24, bits: 8},
		},
	},
	FormatR8G8B8A8Signed: {
		name: "R8G8B8A8Signed", dataType: dataSigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 0, bits: 8},
			channelGreen: {present: true, shift: 8, bits: 8},
			channelBlue:  {present: true, shift: 16, bits: 8},
			channelAlpha: {present: true, shift: 24, bits: 8},
		},
	},
	FormatB8G8R8A8Unsigned: {
		name: "B8G8R8A8Unsigned", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 16, bits: 8},
			channelGreen: {present: true, shift: 8, bits: 8},
			channelBlue:  {present: true, shift: 0, bits: 8},
			channelAlpha: {present: true, shift: 24, bits: 8},
		},
	},
	FormatB8G8R8A8Signed: {
		name: "B8G8R8A8Signed", dataType: dataSigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 16, bits: 8},
			channelGreen: {present: true, shift: 8, bits: 8},
			channelBlue:  {present: true, shift: 0, bits: 8},
			channelAlpha: {present: true, shift: 24, bits: 8},
		},
	},
	FormatA8R8G8B8Unsigned: {
		name: "A8R8G8B8Unsigned", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 8, bits: 8},
			channelGreen: {present: true, shift: 16, bits: 8},
			channelBlue:  {present: true, shift: 24, bits: 8},
			channelAlpha: {present: true, shift: 0, bits: 8},
		},
	},
	FormatA8R8G8B8Signed: {
		name: "A8R8G8B8Signed", dataType: dataSigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 8, bits: 8},
			channelGreen: {present: true, shift: 16, bits: 8},
			channelBlue:  {present: true, shift: 24, bits: 8},
			channelAlpha: {present: true, shift: 0, bits: 8},
		},
	},
	FormatR16G16B16UnsignedNative16: {
		name: "R16G16B16UnsignedNative16", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 0, bits: 16},
			channelGreen: {present: true, shift: 16, bits: 16},
			channelBlue:  {present: true, shift: 32, bits: 16},
		},
	},
	FormatA16B16G16R16UnsignedNative16: {
		name: "A16B16G16R16UnsignedNative16", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 48, bits: 16},
			channelGreen: {present: true, shift: 32, bits: 16},
			channelBlue:  {present: true, shift: 16, bits: 16},
			channelAlpha: {present: true, shift: 0, bits: 16},
		},
	},
	FormatA16B16G16R16FloatNative16: {
		name: "A16B16G16R16FloatNative16", dataType: dataFloat,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 48, bits: 16},
			channelGreen: {present: true, shift: 32, bits: 16},
			channelBlue:  {present: true, shift: 16, bits: 16},
			channelAlpha: {present: true, shift: 0, bits: 16},
		},
	},
	FormatR16G16B16A16UnsignedNative16: {
		name: "R16G16B16A16UnsignedNative16", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 0, bits: 16},
			channelGreen: {present: true, shift: 16, bits: 16},
			channelBlue:  {present: true, shift: 32, bits: 16},
			channelAlpha: {present: true, shift: 48, bits: 16},
		},
	},
	FormatR16G16B16A16FloatNative16: {
		name: "R16G16B16A16FloatNative16", dataType: dataFloat,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 0, bits: 16},
			channelGreen: {present: true, shift: 16, bits: 16},
			channelBlue:  {present: true, shift: 32, bits: 16},
			channelAlpha: {present: true, shift: 48, bits: 16},
		},
	},
	FormatB16G16R16A16UnsignedNative16: {
		name: "B16G16R16A16UnsignedNative16", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 32, bits: 16},
			channelGreen: {present: true, shift: 16, bits: 16},
			channelBlue:  {present: true, shift: 0, bits: 16},
			channelAlpha: {present: true, shift: 48, bits: 16},
		},
	},
	FormatB16G16R16A16FloatNative16: {
		name: "B16G16R16A16FloatNative16", dataType: dataFloat,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 32, bits: 16},
			channelGreen: {present: true, shift: 16, bits: 16},
			channelBlue:  {present: true, shift: 0, bits: 16},
			channelAlpha: {present: true, shift: 48, bits: 16},
		},
	},
	FormatA16R16G16B16UnsignedNative16: {
		name: "A16R16G16B16UnsignedNative16", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 16, bits: 16},
			channelGreen: {present: true, shift: 32, bits: 16},
			channelBlue:  {present: true, shift: 48, bits: 16},
			channelAlpha: {present: true, shift: 0, bits: 16},
		},
	},
	FormatA16R16G16B16FloatNative16: {
		name: "A16R16G16B16FloatNative16", dataType: dataFloat,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 16, bits: 16},
			channelGreen: {present: true, shift: 32, bits: 16},
			channelBlue:  {present: true, shift: 48, bits: 16},
			channelAlpha: {present: true, shift: 0, bits: 16},
		},
	},
	FormatA32B32G32R32FloatNative32: {
		name: "A32B32G32R32FloatNative32", dataType: dataFloat,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 96, bits: 32},
			channelGreen: {present: true, shift: 64, bits: 32},
			channelBlue:  {present: true, shift: 32, bits: 32},
			channelAlpha: {present: true, shift: 0, bits: 32},
		},
	},
	FormatR32G32B32A32FloatNative32: {
		name: "R32G32B32A32FloatNative32", dataType: dataFloat,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 0, bits: 32},
			channelGreen: {present: true, shift: 32, bits: 32},
			channelBlue:  {present: true, shift: 64, bits: 32},
			channelAlpha: {present: true, shift: 96, bits: 32},
		},
	},
	FormatA2B10G10R10UnsignedNative32: {
		name: "A2B10G10R10UnsignedNative32", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 0, bits: 10},
			channelGreen: {present: true, shift: 10, bits: 10},
			channelBlue:  {present: true, shift: 20, bits: 10},
			channelAlpha: {present: true, shift: 30, bits: 2},
		},
	},
	FormatA2R10G10B10UnsignedNative32: {
		name: "A2R10G10B10UnsignedNative32", dataType: dataUnsigned,
		channels: [channelCount]channelDesc{
			channelRed:   {present: true, shift: 20, bits: 10},
			channelGreen: {present: true, shift: 10, bits: 10},
			channelBlue:  {present: true, shift: 0, bits: 10},
			channelAlpha: {present: true, shift: 30, bits: 2},
		},
	},
}

// formatList holds every described format in a stable order for
// enumeration. Kept in family order, matching the constant declarations.
var formatList = []Format{
	FormatR8Unsigned,
	FormatR16UnsignedNative16,
	FormatR16FloatNative16,
	FormatR32FloatNative32,
	FormatA8Unsigned,
	FormatA16UnsignedNative16,
	FormatA16FloatNative16,
	FormatA32FloatNative32,
	FormatR8G8Unsigned,
	FormatR16G16UnsignedNative16,
	FormatR16G16FloatNative16,
	FormatR8A8Unsigned,
	FormatR16A16UnsignedNative16,
	FormatR5G6B5UnsignedNative16,
	FormatB5G6R5UnsignedNative16,
	FormatR8G8B8Unsigned,
	FormatR8G8B8Signed,
	FormatB8G8R8Unsigned,
	FormatB8G8R8Signed,
	FormatR16G16B16UnsignedNative16,
	FormatA8B8G8R8Unsigned,
	FormatA8B8G8R8Signed,
	FormatR8G8B8A8Unsigned,
	FormatR8G8B8A8Signed,
	FormatB8G8R8A8Unsigned,
	FormatB8G8R8A8Signed,
	FormatA8R8G8B8Unsigned,
	FormatA8R8G8B8Signed,
	FormatA16B16G16R16UnsignedNative16,
	FormatA16B16G16R16FloatNative16,
	FormatR16G16B16A16UnsignedNative16,
	FormatR16G16B16A16FloatNative16,
	FormatB16G16R16A16UnsignedNative16,
	FormatB16G16R16A16FloatNative16,
	FormatA16R16G16B16UnsignedNative16,
	FormatA16R16G16B16FloatNative16,
	FormatA32B32G32R32FloatNative32,
	FormatR32G32B32A32FloatNative32,
	FormatA2B10G10R10UnsignedNative32,
	FormatA2R10G10B10UnsignedNative32,
}
