package console

// sg1000.go wires the SG-1000's simpler memory/IO map: a fixed (usually
// unbanked) 32KB-or-less ROM window, 1KB of work RAM mirrored across
// 0xC000-0xFFFF, and a legacy TMS9928A VDP with no CRAM. A handful of
// titles use the SG Graphic Board peripheral, a simple light-pen-like
// tablet; it is modelled as an optional add-on exposed through the
// ControllerState.PaddleAxis field the same way a paddle would be.
type sg1000Memory struct {
	mapper Mapper
	ram    [0x0400]byte
}

func (m *sg1000Memory) Read(addr uint16) byte {
	if addr >= 0xC000 {
		return m.ram[addr&0x03FF]
	}
	return m.mapper.Read(addr)
}

func (m *sg1000Memory) Write(addr uint16, v byte) {
	if addr >= 0xC000 {
		m.ram[addr&0x03FF] = v
		return
	}
	m.mapper.Write(addr, v)
}

type sg1000IO struct {
	c *Console

	// graphicBoard is true when romdb identified this title as using the
	// SG Graphic Board tablet; the Y-axis offset below is a documented
	// open question carried forward unchanged from spec.md.
	graphicBoard bool
}

func (io *sg1000IO) In(port uint16) byte {
	switch byte(port) & 0xC1 {
	case 0x80, 0x81:
		if byte(port)&0x01 == 0 {
			return io.c.VDP.ReadData()
		}
		return io.c.VDP.ReadControl()
	case 0xC0, 0xC1:
		if byte(port)&0x01 == 0 {
			return io.c.p1.ToPort1Byte()
		}
		return io.c.p2.ToPort1Byte()
	default:
		if io.graphicBoard && byte(port) == 0x00 {
			// Cursor Y reads back offset by a constant the original
			// implementation never fully explained; kept verbatim rather
			// than "corrected" since no title's exact tablet calibration
			// has been confirmed against real hardware.
			return byte(int(io.c.p1.PaddleAxis) + 28)
		}
		return 0xFF
	}
}

func (io *sg1000IO) Out(port uint16, v byte) {
	switch byte(port) & 0xC1 {
	case 0x80, 0x81:
		if byte(port)&0x01 == 0 {
			io.c.VDP.WriteData(v)
		} else {
			io.c.VDP.WriteControl(v)
		}
	case 0x40, 0x41:
		io.c.PSG.Write(v)
	}
}

// NewSG1000 creates an SG-1000 console instance. graphicBoard enables the
// tablet peripheral's cursor-position port (see romdb.HintSGGraphicBoard).
func NewSG1000(rom []byte, graphicBoard bool, region Region) *Console {
	mem := &sg1000Memory{mapper: NewFixedMapper(rom)}
	c := newConsole(mem, nil, true, region)
	c.io = &sg1000IO{c: c, graphicBoard: graphicBoard}
	// NMI carries the Start button directly; the Z80 core edge-detects it,
	// so this just needs to report the current level.
	c.nmiFunc = func() bool { return c.p1.Start }
	return c
}
