package console

// sms.go wires the Master System and Game Gear memory/IO maps. NewSMS
// builds both machines the same way, with no Game Gear flag: the GG-only
// serial/start-button ports in 0x00-0x3F read back 0xFF, and the VDP
// models only the SMS 6-bit CRAM, not the Game Gear's 12-bit palette.
type smsMemory struct {
	mapper  Mapper
	ram     [0x2000]byte
	cartRAM [0x8000]byte
}

func (m *smsMemory) Read(addr uint16) byte {
	switch {
	case addr < 0xC000:
		if sm, ok := m.mapper.(*SegaMapper); ok && addr >= 0x8000 && sm.CartRAMEnabled() {
			base := sm.CartRAMPage() * 0x4000
			return m.cartRAM[base+int(addr)-0x8000]
		}
		return m.mapper.Read(addr)
	default:
		return m.ram[addr&0x1FFF]
	}
}

func (m *smsMemory) Write(addr uint16, v byte) {
	switch {
	case addr < 0x8000:
		m.mapper.Write(addr, v)
	case addr < 0xC000:
		if sm, ok := m.mapper.(*SegaMapper); ok && sm.CartRAMEnabled() {
			base := sm.CartRAMPage() * 0x4000
			m.cartRAM[base+int(addr)-0x8000] = v
			return
		}
		m.mapper.Write(addr, v)
	default:
		m.ram[addr&0x1FFF] = v
		if addr >= 0xFFFC {
			m.mapper.Write(addr, v)
		}
	}
}

type smsIO struct {
	c *Console
	// port-3F I/O control latch for the TR/TH handshake lines, written by
	// odd ports in 0x00-0x3F and kept in save states; controller reads do
	// not consult it.
	ioControl byte
}

func (io *smsIO) In(port uint16) byte {
	p := byte(port) &^ 0x01
	switch {
	case p < 0x40:
		// 0x00-0x3F: memory control / IO port A,B (Game Gear start button,
		// region, stereo) — not modelled beyond returning benign defaults.
		return 0xFF
	case byte(port)&0xC0 == 0x40:
		if byte(port)&0x01 == 0 {
			return io.c.VDP.ReadVCounter()
		}
		return io.c.VDP.ReadHCounter()
	case byte(port)&0xC0 == 0x80:
		if byte(port)&0x01 == 0 {
			return io.c.VDP.ReadData()
		}
		return io.c.VDP.ReadControl()
	case byte(port) == 0xDC, byte(port) == 0xC0:
		return io.c.p1.ToPort1Byte()
	case byte(port) == 0xDD, byte(port) == 0xC1:
		v := io.c.p2.ToPort1Byte()
		v &^= 0x40 // reset button not modelled; tied inactive (high)
		return v
	default:
		return 0xFF
	}
}

func (io *smsIO) Out(port uint16, v byte) {
	switch {
	case byte(port) < 0x40:
		if byte(port)&0x01 != 0 {
			io.ioControl = v
		}
	case byte(port)&0xC0 == 0x40:
		io.c.PSG.Write(v)
	case byte(port)&0xC0 == 0x80:
		if byte(port)&0x01 == 0 {
			io.c.VDP.WriteData(v)
		} else {
			io.c.VDP.WriteControl(v)
		}
	}
}

// MapperKind selects the cartridge bank-switching scheme. The caller
// chooses it (cmd/snepulator-smoke maps romdb hints onto it and falls back
// to MapperSega); NewSMS does not detect the mapper from the ROM size or
// from the first mapper write.
type MapperKind int

const (
	MapperSega MapperKind = iota
	MapperCodemasters
	MapperKorean
)

// NewSMS creates a Master System/Game Gear console instance from a ROM
// image and the selected mapper kind and region.
func NewSMS(rom []byte, kind MapperKind, region Region) *Console {
	var mapper Mapper
	switch kind {
	case MapperCodemasters:
		mapper = NewCodemastersMapper(rom)
	case MapperKorean:
		mapper = NewKoreanMapper(rom)
	default:
		mapper = NewSegaMapper(rom)
	}
	mem := &smsMemory{mapper: mapper}
	c := newConsole(mem, nil, false, region)
	c.io = &smsIO{c: c}
	return c
}
