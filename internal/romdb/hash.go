// Package romdb identifies cartridge ROM images by a truncated BLAKE3
// hash and looks up per-title compatibility hints (PAL-only timing,
// paddle/light-phaser peripherals, mapper overrides for titles whose
// header doesn't otherwise disambiguate). Grounded on
// original_source/source/util.c's util_hash_rom/util_load_rom and
// original_source/source/database/sms_db.c / sg_db.c.
package romdb

import (
	"lukechampine.com/blake3"
)

// HashLength is the truncated BLAKE3 digest size used for ROM
// identification, matching original_source's HASH_LENGTH.
const HashLength = 12

// Hash is a truncated BLAKE3 identity for a ROM image.
type Hash [HashLength]byte

// HashROM computes the identifying hash of a ROM image. Callers should
// pass the image after StripHeader/PadToPowerOfTwo have already been
// applied, matching the order util_load_rom processes a file in.
func HashROM(rom []byte) Hash {
	full := blake3.Sum256(rom)
	var h Hash
	copy(h[:], full[:HashLength])
	return h
}

// StripHeader removes a 512-byte Super Magic Drive dump header if present:
// file size is a multiple of 1024 plus 512, and all but the first two
// header bytes are zero.
func StripHeader(data []byte) []byte {
	if len(data)&0x3FF != 512 {
		return data
	}
	if len(data) < 512 {
		return data
	}
	header := data[:512]
	for _, b := range header[2:] {
		if b != 0 {
			return data
		}
	}
	return data[512:]
}

// PadToPowerOfTwo returns rom zero-padded up to the next power-of-two
// length, or rom itself if it is already one (matching util_round_up's
// mirroring behaviour, consumed by internal/console's FixedMapper and
// SegaMapper page masking).
func PadToPowerOfTwo(rom []byte) []byte {
	size := 1
	for size < len(rom) {
		size <<= 1
	}
	if size == len(rom) {
		return rom
	}
	out := make([]byte, size)
	copy(out, rom)
	return out
}

// Prepare runs the full load pipeline (strip header, pad) and returns the
// identifying hash alongside the prepared image.
func Prepare(raw []byte) (rom []byte, hash Hash) {
	rom = PadToPowerOfTwo(StripHeader(raw))
	hash = HashROM(rom)
	return rom, hash
}
