package pix

import (
	"errors"
	"testing"
)

func TestBitmapMemoryRow(t *testing.T) {
	// 3 pixels of RGB at a padded 12-byte stride.
	mem := BitmapMemory{
		Width:  3,
		Height: 2,
		Stride: 12,
		Format: FormatR8G8B8Unsigned,
		Pixels: make([]byte, 24),
	}
	mem.Pixels[12] = 0xAA

	row := mem.Row(1)
	if len(row) != 9 {
		t.Fatalf("Row(1) length = %d, want 9 (stride padding excluded)", len(row))
	}
	if row[0] != 0xAA {
		t.Errorf("Row(1)[0] = 0x%02X, want 0xAA", row[0])
	}
}

func TestBitmapMemoryValidate(t *testing.T) {
	valid := func() BitmapMemory {
		return BitmapMemory{
			Width:  4,
			Height: 4,
			Stride: 16,
			Format: FormatR8G8B8A8Unsigned,
			Pixels: make([]byte, 64),
		}
	}

	tests := []struct {
		name    string
		mutate  func(*BitmapMemory)
		wantErr error
	}{
		{"valid", func(m *BitmapMemory) {}, nil},
		{"zero width", func(m *BitmapMemory) { m.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(m *BitmapMemory) { m.Height = -1 }, ErrInvalidDimensions},
		{"unknown format", func(m *BitmapMemory) { m.Format = Format(0xBAD) }, ErrUnsupportedFormat},
		{"stride below row size", func(m *BitmapMemory) { m.Stride = 15 }, ErrInvalidStride},
		{"short pixel slice", func(m *BitmapMemory) { m.Pixels = m.Pixels[:60] }, ErrDataTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := valid()
			tt.mutate(&mem)
			err := mem.validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBitmapMemoryValidateTrailingRow(t *testing.T) {
	// The last row only needs its pixel bytes, not a full stride.
	mem := BitmapMemory{
		Width:  3,
		Height: 2,
		Stride: 16,
		Format: FormatR8G8B8Unsigned,
		Pixels: make([]byte, 16+9),
	}
	if err := mem.validate(); err != nil {
		t.Errorf("validate() = %v, want nil for stride-padded final row", err)
	}
}
