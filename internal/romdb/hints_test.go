package romdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHeaderRemovesSMDHeader(t *testing.T) {
	header := make([]byte, 512)
	header[0], header[1] = 0xAA, 0x55
	rom := append(header, make([]byte, 16*1024)...)

	stripped := StripHeader(rom)
	assert.Len(t, stripped, 16*1024)
}

func TestStripHeaderLeavesPlainROMAlone(t *testing.T) {
	rom := make([]byte, 16*1024)
	assert.Equal(t, rom, StripHeader(rom))
}

func TestStripHeaderRejectsNonZeroPayload(t *testing.T) {
	header := make([]byte, 512)
	header[0], header[1] = 0xAA, 0x55
	header[100] = 0x01 // a non-zero byte outside the first two makes this not a header
	rom := append(header, make([]byte, 16*1024)...)

	assert.Len(t, StripHeader(rom), len(rom))
}

func TestPadToPowerOfTwo(t *testing.T) {
	rom := make([]byte, 0xC000) // 48KB, not a power of two
	padded := PadToPowerOfTwo(rom)
	assert.Len(t, padded, 0x10000)
}

func TestPadToPowerOfTwoNoOpWhenAlreadySized(t *testing.T) {
	rom := make([]byte, 0x8000)
	assert.Equal(t, len(rom), len(PadToPowerOfTwo(rom)))
}

func TestHashROMIsDeterministic(t *testing.T) {
	rom := []byte("test cartridge image")
	assert.Equal(t, HashROM(rom), HashROM(rom))
}

func TestLookupKnownTitle(t *testing.T) {
	h := Hash{0x4b, 0xe4, 0x54, 0xc3, 0xd8, 0xec, 0x0e, 0x00, 0x37, 0xe3, 0x77, 0x2d}
	hint, ok := Lookup(h)
	assert.True(t, ok)
	assert.Equal(t, HintPALOnly, hint)
}

func TestLookupUnknownTitleReportsNotFound(t *testing.T) {
	h := Hash{}
	hint, ok := Lookup(h)
	assert.False(t, ok)
	assert.Equal(t, Hint(0), hint)
}

func TestHasMapperOverride(t *testing.T) {
	assert.True(t, HintMapperSega.HasMapperOverride())
	assert.False(t, HintPALOnly.HasMapperOverride())
}
