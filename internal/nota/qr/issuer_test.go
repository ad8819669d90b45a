package qr

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationURL(t *testing.T) {
	assert.Equal(t,
		"https://toko.example.com/validate/TRX-001",
		ValidationURL("https://toko.example.com", "TRX-001", -1),
	)
	assert.Equal(t,
		"https://toko.example.com/validate/TRX-001-1",
		ValidationURL("https://toko.example.com/", "TRX-001", 0),
	)
	assert.Equal(t,
		"https://toko.example.com/validate/TRX-001-4",
		ValidationURL("https://toko.example.com", "TRX-001", 3),
	)
}

func TestValidationURL_PerItemUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		url := ValidationURL("https://toko.example.com", "TRX-001", i)
		assert.False(t, seen[url], "duplicate url %s", url)
		assert.Equal(t, fmt.Sprintf("https://toko.example.com/validate/TRX-001-%d", i+1), url)
		seen[url] = true
	}
}

func TestEncoder_ProducesPNG(t *testing.T) {
	enc := NewEncoder()
	png, err := enc.Encode(context.Background(), "https://toko.example.com/validate/TRX-001", RasterSize)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, "\x89PNG", string(png[:4]))
}

func TestDataURL(t *testing.T) {
	url := DataURL([]byte{0x1, 0x2, 0x3})
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
}
