package romdb

// Hint is a per-title compatibility bitmask, one bit per quirk a ROM's
// hash is known to need. Bit layout is not part of any external format
// (no save state or wire format carries it) so it is free-form, unlike
// original_source's separate 8-bit SMS / 16-bit SG-1000 hint types — both
// are folded into one width here since Go has no reason to keep them
// separate.
type Hint uint32

const (
	HintPALOnly Hint = 1 << iota
	HintPaddleOnly
	HintSMS1VDP
	HintLightPhaser
	HintMapperSega
	HintMapperCodemasters
	HintMapperKorean
	HintMapperNone
	HintRAMPattern
	HintSGGraphicBoard
)

// Lookup returns the known hints for a ROM hash and whether the hash was
// found; unknown hashes return (Hint(0), false) so the integrator can fall
// back to format-only defaults rather than mistake "no hints" for "not in
// the database" (they happen to look identical as a bare Hint(0)). Unlike
// original_source's linear memcmp scan, this is a map lookup since Go's
// built-in map is the idiomatic equivalent and the table is keyed by a
// fixed-size comparable array.
func Lookup(h Hash) (Hint, bool) {
	hint, ok := hintTable[h]
	return hint, ok
}

// HasMapperOverride reports whether a hint set names a specific mapper,
// overriding whatever internal/console would otherwise guess from ROM
// size/header.
func (h Hint) HasMapperOverride() bool {
	return h&(HintMapperSega|HintMapperCodemasters|HintMapperKorean|HintMapperNone) != 0
}
