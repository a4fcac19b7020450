package romdb

// hintTable is a seed set of known-title hints, carried over from
// original_source/source/database/sms_db.c and sg_db.c. The hashes below
// are copied verbatim from those tables (they were computed by the
// original BLAKE3-based hasher against real cartridge dumps); titles not
// listed here simply return no hints from Lookup.
var hintTable = map[Hash]Hint{
	// 4 PAK All Action (Australia)
	{0x58, 0x6d, 0xb8, 0x6d, 0xdf, 0x03, 0xcd, 0x3e, 0x21, 0x87, 0xc0, 0x29}: HintMapperCodemasters,

	// 94 Super World Cup Soccer (Korea)
	{0xb2, 0x3a, 0x98, 0xb2, 0xcf, 0x55, 0x8c, 0x2b, 0x28, 0xfe, 0x97, 0x23}: HintMapperKorean,

	// The Adams Family
	{0x4b, 0xe4, 0x54, 0xc3, 0xd8, 0xec, 0x0e, 0x00, 0x37, 0xe3, 0x77, 0x2d}: HintPALOnly,

	// Alex Kidd BMX Trial
	{0x3a, 0xfb, 0xfd, 0xc1, 0x15, 0x41, 0x07, 0x36, 0x1a, 0x24, 0xdc, 0x74}: HintPaddleOnly,

	// Alibaba and 40 Thieves (Korea)
	{0x3a, 0x8a, 0x07, 0x38, 0xd7, 0x07, 0x9e, 0xeb, 0xdd, 0xd9, 0xeb, 0xbb}: HintRAMPattern,

	// Assault City (Light Phaser)
	{0x2e, 0x38, 0xb6, 0xe0, 0xb1, 0x48, 0x16, 0x66, 0x58, 0x3d, 0xb6, 0xea}: HintLightPhaser,

	// Back to the Future II
	{0xb0, 0xfb, 0xd1, 0xbc, 0xd0, 0xc3, 0x54, 0x7e, 0x2a, 0x9b, 0xa8, 0x5d}: HintPALOnly,

	// Back to the Future III
	{0xa2, 0xab, 0x97, 0xd8, 0x0c, 0xc3, 0x0a, 0x4f, 0x92, 0xf1, 0x57, 0x9c}: HintPALOnly,

	// Bart vs. The Space Mutants
	{0xb2, 0x51, 0x35, 0x66, 0xdb, 0x41, 0xe6, 0xfa, 0xc8, 0xb8, 0xf4, 0x55}: HintPALOnly,

	// Block Hole (Korea)
	{0x59, 0xae, 0x01, 0x94, 0xb9, 0x0b, 0x55, 0x64, 0x7a, 0x6b, 0x55, 0x37}: HintRAMPattern,

	// Bobble Bobble (Korea)
	{0xfe, 0x90, 0xf9, 0x1d, 0xa5, 0x15, 0x56, 0xaf, 0xb6, 0x1e, 0xf7, 0x53}: HintMapperNone,

	// C_So! (Korea)
	{0x60, 0x31, 0x3c, 0x6c, 0xd3, 0xdd, 0xd4, 0x8c, 0x2d, 0xd3, 0x1b, 0x0f}: HintMapperNone,

	// California Games II (Europe)
	{0x31, 0x9f, 0x17, 0x11, 0xb7, 0x3a, 0x84, 0x07, 0x54, 0xe2, 0xd2, 0x26}: HintPALOnly,

	// Champions of Europe (Europe)
	{0x2e, 0xf0, 0xfb, 0x8e, 0x95, 0xc6, 0xac, 0x84, 0x3c, 0xd3, 0xc9, 0xb2}: HintMapperSega,

	// Chase H.Q.
	{0xc4, 0xd1, 0x6a, 0xb6, 0x14, 0xd0, 0x79, 0xb0, 0x74, 0x91, 0xdf, 0xdd}: HintPALOnly,

	// Terebi Oekaka (Japan) -- SG-1000 Graphic Board title
	{0xb4, 0x07, 0x1b, 0x78, 0x8e, 0xfb, 0x35, 0x83, 0xf8, 0x95, 0x39, 0xd4}: HintSGGraphicBoard,
}
