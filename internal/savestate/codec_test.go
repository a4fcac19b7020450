package savestate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	w := NewWriter(TagSMS)
	w.Put(TagZ80, []byte{1, 2, 3, 4})
	w.Put(TagVDP, bytes.Repeat([]byte{0xAB}, 16))

	data, err := w.EncodeBytes()
	require.NoError(t, err)

	r, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, TagSMS, r.ConsoleTag)
	require.Len(t, r.Sections, 2)

	z80Payload, err := r.Get(TagZ80, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, z80Payload)

	vdpPayload, err := r.Get(TagVDP, 16)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xAB}, 16), vdpPayload)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("NOTASAVE")))
	assert.Error(t, err)
}

func TestGetSizeMismatchErrors(t *testing.T) {
	w := NewWriter(TagSG)
	w.Put(TagRAM, []byte{1, 2, 3})
	data, err := w.EncodeBytes()
	require.NoError(t, err)

	r, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	_, err = r.Get(TagRAM, 99)
	assert.Error(t, err)
}

func TestGetUnknownTagErrors(t *testing.T) {
	w := NewWriter(TagCOL)
	data, err := w.EncodeBytes()
	require.NoError(t, err)

	r, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	_, err = r.Get(TagZ80, -1)
	assert.Error(t, err)
}
