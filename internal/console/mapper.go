package console

// Mapper decodes the cartridge-visible portion of the address space
// (0x0000-0xBFFF on SMS/GG; the whole ROM window on SG-1000/ColecoVision)
// into a possibly-banked ROM image. Bank-switching logic is grounded on
// original_source/source/sms.c (Sega/Codemasters/Korean mapper handling)
// and original_source/source/sg-1000.c (the SG Graphic Board's simpler
// fixed mapping).
type Mapper interface {
	Read(addr uint16) byte
	Write(addr uint16, v byte)
}

func pageMask(rom []byte) int {
	pages := len(rom) / 0x4000
	if pages == 0 {
		pages = 1
	}
	return pages - 1
}

// SegaMapper is the standard three-slot 16KB mapper used by the vast
// majority of SMS/GG cartridges. Bank-select writes land at 0xFFFD/E/F;
// 0xFFFC additionally controls cartridge RAM paging, which is exposed to
// the owning Memory map via CartRAMEnabled/CartRAMPage rather than handled
// here (those bytes live outside the mapper's own read/write range).
type SegaMapper struct {
	rom        []byte
	pageMask   int
	slot       [3]int
	ramControl byte
}

func NewSegaMapper(rom []byte) *SegaMapper {
	m := &SegaMapper{rom: rom, pageMask: pageMask(rom)}
	m.slot[0], m.slot[1], m.slot[2] = 0, 1, 2
	return m
}

func (m *SegaMapper) Read(addr uint16) byte {
	var slot, offset int
	switch {
	case addr < 0x4000:
		slot, offset = m.slot[0], int(addr)
	case addr < 0x8000:
		slot, offset = m.slot[1], int(addr)-0x4000
	default:
		slot, offset = m.slot[2], int(addr)-0x8000
	}
	idx := (slot&m.pageMask)*0x4000 + offset
	if idx >= len(m.rom) {
		return 0xFF
	}
	return m.rom[idx]
}

func (m *SegaMapper) Write(addr uint16, v byte) {
	switch addr {
	case 0xFFFC:
		m.ramControl = v
	case 0xFFFD:
		m.slot[0] = int(v)
	case 0xFFFE:
		m.slot[1] = int(v)
	case 0xFFFF:
		m.slot[2] = int(v)
	}
}

// CartRAMEnabled reports whether the mapper has paged 32KB cartridge RAM
// into the 0x8000-0xBFFF window in place of ROM bank 2.
func (m *SegaMapper) CartRAMEnabled() bool { return m.ramControl&0x08 != 0 }

// CartRAMPage reports which 16KB half of cartridge RAM is selected when
// CartRAMEnabled is true.
func (m *SegaMapper) CartRAMPage() int {
	if m.ramControl&0x04 != 0 {
		return 1
	}
	return 0
}

// CodemastersMapper pages 16KB banks at 0x0000/0x4000/0x8000, each
// selected by a write to the first byte of the corresponding window
// (0x0000, 0x4000, 0x8000) rather than the Sega mapper's dedicated
// high-memory control bytes.
type CodemastersMapper struct {
	rom      []byte
	pageMask int
	bank     [3]int
}

func NewCodemastersMapper(rom []byte) *CodemastersMapper {
	m := &CodemastersMapper{rom: rom, pageMask: pageMask(rom)}
	m.bank[1] = 1
	m.bank[2] = 2 % (m.pageMask + 1)
	return m
}

func (m *CodemastersMapper) Read(addr uint16) byte {
	var slot, offset int
	switch {
	case addr < 0x4000:
		slot, offset = m.bank[0], int(addr)
	case addr < 0x8000:
		slot, offset = m.bank[1], int(addr)-0x4000
	default:
		slot, offset = m.bank[2], int(addr)-0x8000
	}
	idx := (slot&m.pageMask)*0x4000 + offset
	if idx >= len(m.rom) {
		return 0xFF
	}
	return m.rom[idx]
}

func (m *CodemastersMapper) Write(addr uint16, v byte) {
	switch addr {
	case 0x0000:
		m.bank[0] = int(v)
	case 0x4000:
		m.bank[1] = int(v)
	case 0x8000:
		m.bank[2] = int(v)
	}
}

// KoreanMapper is the single-register variant (used by a handful of
// Korean-published SMS titles) where one write at 0xA000 selects the bank
// mapped into 0x8000-0xBFFF; 0x0000-0x7FFF is fixed to banks 0 and 1.
type KoreanMapper struct {
	rom      []byte
	pageMask int
	bank2    int
}

func NewKoreanMapper(rom []byte) *KoreanMapper {
	return &KoreanMapper{rom: rom, pageMask: pageMask(rom), bank2: 2}
}

func (m *KoreanMapper) Read(addr uint16) byte {
	var slot, offset int
	switch {
	case addr < 0x4000:
		slot, offset = 0, int(addr)
	case addr < 0x8000:
		slot, offset = 1, int(addr)-0x4000
	default:
		slot, offset = m.bank2, int(addr)-0x8000
	}
	idx := (slot&m.pageMask)*0x4000 + offset
	if idx >= len(m.rom) {
		return 0xFF
	}
	return m.rom[idx]
}

func (m *KoreanMapper) Write(addr uint16, v byte) {
	if addr == 0xA000 {
		m.bank2 = int(v)
	}
}

// FixedMapper serves an unbanked ROM image (padded to a power of two and
// mirrored to fill the window), used by SG-1000 and ColecoVision carts
// that never bank-switch.
type FixedMapper struct {
	rom  []byte
	size int
}

func NewFixedMapper(rom []byte) *FixedMapper {
	size := 1
	for size < len(rom) {
		size <<= 1
	}
	return &FixedMapper{rom: rom, size: size}
}

func (m *FixedMapper) Read(addr uint16) byte {
	idx := int(addr) % m.size
	if idx >= len(m.rom) {
		return 0xFF
	}
	return m.rom[idx]
}

func (m *FixedMapper) Write(addr uint16, v byte) {}
