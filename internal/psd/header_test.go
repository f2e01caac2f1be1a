package psd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeader(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    BasicInfo
		wantErr error
	}{
		{
			name: "rgb document",
			data: header(100, 50, 8, 3),
			want: BasicInfo{Width: 100, Height: 50, BitDepth: 8, ColorMode: "RGB", ColorModeCode: 3, Version: 1, Channels: 3},
		},
		{
			name: "cmyk 16 bit at the size limit",
			data: header(MaxDimension, MaxDimension, 16, 4),
			want: BasicInfo{Width: MaxDimension, Height: MaxDimension, BitDepth: 16, ColorMode: "CMYK", ColorModeCode: 4, Version: 1, Channels: 3},
		},
		{
			name: "unknown color mode is still valid",
			data: header(10, 10, 1, 42),
			want: BasicInfo{Width: 10, Height: 10, BitDepth: 1, ColorMode: "Unknown", ColorModeCode: 42, Version: 1, Channels: 3},
		},
		{name: "too small", data: header(100, 50, 8, 3)[:25], wantErr: ErrTooSmall},
		{name: "empty", data: nil, wantErr: ErrTooSmall},
		{name: "bad signature", data: append([]byte("8BIM"), header(100, 50, 8, 3)[4:]...), wantErr: ErrInvalidSignature},
		{name: "zero width", data: header(0, 50, 8, 3), wantErr: ErrInvalidHeader},
		{name: "width too large", data: header(40000, 50, 8, 3), wantErr: ErrInvalidHeader},
		{name: "zero height", data: header(100, 0, 8, 3), wantErr: ErrInvalidHeader},
		{name: "bit depth 3", data: header(100, 50, 3, 3), wantErr: ErrInvalidHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadHeader(tt.data)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadHeader_SignatureCheckedOnAnyPrefix(t *testing.T) {
	data := header(100, 50, 8, 3)
	for i := 0; i < 4; i++ {
		bad := append([]byte(nil), data...)
		bad[i] ^= 0xFF
		_, err := ReadHeader(bad)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	}
}

func TestReadHeader_TruncatedInputNeverPanics(t *testing.T) {
	data := withResolution(header(100, 50, 8, 3), 300)
	for i := 0; i <= len(data); i++ {
		assert.NotPanics(t, func() {
			_, _ = ReadHeader(data[:i])
			_, _ = ReadResolution(data[:i])
		})
	}
}

func TestReadResolution(t *testing.T) {
	t.Run("resource present", func(t *testing.T) {
		dpi, ok := ReadResolution(withResolution(header(100, 50, 8, 3), 300))
		assert.True(t, ok)
		assert.InDelta(t, 300.0, dpi, 0.001)
	})

	t.Run("no resource section", func(t *testing.T) {
		_, ok := ReadResolution(header(100, 50, 8, 3))
		assert.False(t, ok)
	})

	t.Run("section length past end", func(t *testing.T) {
		data := withResolution(header(100, 50, 8, 3), 300)
		data[HeaderSize+4+3] = 0xFF
		_, ok := ReadResolution(data)
		assert.False(t, ok)
	})
}

func TestColorModeName(t *testing.T) {
	assert.Equal(t, "Grayscale", ColorModeName(1))
	assert.Equal(t, "Lab", ColorModeName(9))
	assert.Equal(t, "Unknown", ColorModeName(5))
}
