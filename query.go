package pix

// Channel queries are total: asking about a channel a format does not
// have, or about an id that names no described format, yields false and
// zero values rather than an error.

func (f Format) channel(slot int) (channelDesc, bool) {
	desc, ok := formatTable[f]
	if !ok {
		return channelDesc{}, false
	}
	ch := desc.channels[slot]
	return ch, ch.present
}

// HasRed reports whether the format stores a red channel.
func (f Format) HasRed() bool {
	_, ok := f.channel(channelRed)
	return ok
}

// HasGreen reports whether the format stores a green channel.
func (f Format) HasGreen() bool {
	_, ok := f.channel(channelGreen)
	return ok
}

// HasBlue reports whether the format stores a blue channel.
func (f Format) HasBlue() bool {
	_, ok := f.channel(channelBlue)
	return ok
}

// HasAlpha reports whether the format stores an alpha channel.
func (f Format) HasAlpha() bool {
	_, ok := f.channel(channelAlpha)
	return ok
}

// IsSigned reports whether channel values carry a sign. True for signed
// integer formats and for all floating-point formats.
func (f Format) IsSigned() bool {
	return f&formatFlagSigned != 0
}

// IsFloat reports whether channels hold floating-point values.
func (f Format) IsFloat() bool {
	return f&formatFlagFloat != 0
}

// HasDifferentlySizedChannels reports whether any two channels of the
// format occupy a different number of bits.
func (f Format) HasDifferentlySizedChannels() bool {
	desc, ok := formatTable[f]
	if !ok {
		return false
	}
	first := -1
	for _, ch := range desc.channels {
		if !ch.present {
			continue
		}
		if first < 0 {
			first = int(ch.bits)
		} else if int(ch.bits) != first {
			return true
		}
	}
	return false
}

// AllChannelsByteAligned reports whether every channel starts on a byte
// boundary and spans a whole number of bytes. Converters use this to
// pick byte-copy fast paths over bit fiddling.
func (f Format) AllChannelsByteAligned() bool {
	desc, ok := formatTable[f]
	if !ok {
		return false
	}
	for _, ch := range desc.channels {
		if !ch.present {
			continue
		}
		if ch.shift%8 != 0 || ch.bits%8 != 0 {
			return false
		}
	}
	return true
}

// RequiresEndianFlip reports whether pixel bytes must be reordered before
// the described channel layout applies. A format counts as flipped only
// when no reordering of its channel descriptions explains the byte
// difference; a layout expressible by reordering is described that way
// instead. No current format needs a flip.
func (f Format) RequiresEndianFlip() bool {
	desc, ok := formatTable[f]
	if !ok {
		return false
	}
	return desc.endian != endianNone
}

// LowestRedBitIndex returns the bit index where the red channel starts,
// counting from bit 0 of the pixel's first byte. The second return is
// false when the format has no red channel.
func (f Format) LowestRedBitIndex() (int, bool) {
	ch, ok := f.channel(channelRed)
	return int(ch.shift), ok
}

// LowestGreenBitIndex returns the bit index where the green channel
// starts. The second return is false when the format has no green channel.
func (f Format) LowestGreenBitIndex() (int, bool) {
	ch, ok := f.channel(channelGreen)
	return int(ch.shift), ok
}

// LowestBlueBitIndex returns the bit index where the blue channel starts.
// The second return is false when the format has no blue channel.
func (f Format) LowestBlueBitIndex() (int, bool) {
	ch, ok := f.channel(channelBlue)
	return int(ch.shift), ok
}

// LowestAlphaBitIndex returns the bit index where the alpha channel
// starts. The second return is false when the format has no alpha channel.
func (f Format) LowestAlphaBitIndex() (int, bool) {
	ch, ok := f.channel(channelAlpha)
	return int(ch.shift), ok
}

// RedBits returns the red channel's width in bits, or false when the
// format has no red channel.
func (f Format) RedBits() (int, bool) {
	ch, ok := f.channel(channelRed)
	return int(ch.bits), ok
}

// GreenBits returns the green channel's width in bits, or false when the
// format has no green channel.
func (f Format) GreenBits() (int, bool) {
	ch, ok := f.channel(channelGreen)
	return int(ch.bits), ok
}

// BlueBits returns the blue channel's width in bits, or false when the
// format has no blue channel.
func (f Format) BlueBits() (int, bool) {
	ch, ok := f.channel(channelBlue)
	return int(ch.bits), ok
}

// AlphaBits returns the alpha channel's width in bits, or false when the
// format has no alpha channel.
func (f Format) AlphaBits() (int, bool) {
	ch, ok := f.channel(channelAlpha)
	return int(ch.bits), ok
}

// WidestChannelBits returns the bit width of the format's widest channel.
// This drives the 8, 16 or 32 bit precision tier a caller should convert
// through to avoid losing detail. Unknown formats report zero.
func (f Format) WidestChannelBits() int {
	desc, ok := formatTable[f]
	if !ok {
		return 0
	}
	widest := 0
	for _, ch := range desc.channels {
		if ch.present && int(ch.bits) > widest {
			widest = int(ch.bits)
		}
	}
	return widest
}
