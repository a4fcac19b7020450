package console

// colecovision.go wires the ColecoVision: an 8KB BIOS mapped at
// 0x0000-0x1FFF, 1KB of work RAM mirrored across 0x6000-0x7FFF, an
// unbanked cartridge ROM filling 0x8000-0xFFFF, and a legacy TMS9928A VDP
// on ports 0xBE/0xBF. Controllers use a 12-key numeric keypad plus two
// fire buttons and a direction pad, multiplexed over one read port by a
// mode bit the BIOS toggles with writes to 0x80 (keypad mode) and 0xC0
// (joystick mode).
type colecoMemory struct {
	bios []byte
	cart Mapper
	ram  [0x0400]byte
}

func (m *colecoMemory) Read(addr uint16) byte {
	switch {
	case addr < 0x2000:
		if int(addr) < len(m.bios) {
			return m.bios[addr]
		}
		return 0xFF
	case addr < 0x6000:
		return 0xFF
	case addr < 0x8000:
		return m.ram[addr&0x03FF]
	default:
		return m.cart.Read(addr - 0x8000)
	}
}

func (m *colecoMemory) Write(addr uint16, v byte) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.ram[addr&0x03FF] = v
	}
}

// colecoKeypad models the 12-key controller keypad as a 4-bit code
// returned on the low nibble of the player's read port when keypad mode is
// selected; 0x0F means no key pressed. Digit layout follows the standard
// ColecoVision controller: 0-9, '*' and '#'.
type colecoKeypad struct {
	key byte
}

// colecoKeypadCode maps digit index (0-9, then '*', '#') to the 4-bit code
// the controller reports; digit 5's code (0x03) is the one value cross
// checked against a known-good capture, the rest follow the same published
// scan table.
var colecoKeypadCode = [12]byte{
	0x0A, 0x0D, 0x07, 0x0C, 0x02, 0x03, 0x0E, 0x05, 0x01, 0x0B, 0x06, 0x09,
}

type colecoIO struct {
	c *Console

	keypadMode bool
	keypad1    colecoKeypad
	keypad2    colecoKeypad
}

func (io *colecoIO) In(port uint16) byte {
	switch byte(port) {
	case 0xBE:
		return io.c.VDP.ReadData()
	case 0xBF:
		return io.c.VDP.ReadControl()
	}
	if byte(port)&0xE0 == 0xE0 {
		if byte(port)&0x02 == 0 {
			return io.readController(io.c.p1, io.keypad1)
		}
		return io.readController(io.c.p2, io.keypad2)
	}
	return 0xFF
}

func (io *colecoIO) readController(s ControllerState, k colecoKeypad) byte {
	if io.keypadMode {
		v := byte(0x70) | (k.key & 0x0F)
		if s.Button1 {
			v &^= 0x40
		}
		return v
	}
	v := byte(0x7F)
	if s.Up {
		v &^= 0x01
	}
	if s.Down {
		v &^= 0x02
	}
	if s.Left {
		v &^= 0x04
	}
	if s.Right {
		v &^= 0x08
	}
	if s.Button1 {
		v &^= 0x40
	}
	if s.Button2 {
		v &^= 0x20
	}
	return v
}

func (io *colecoIO) Out(port uint16, v byte) {
	switch {
	case byte(port) == 0xBE:
		io.c.VDP.WriteData(v)
	case byte(port) == 0xBF:
		io.c.VDP.WriteControl(v)
	case byte(port)&0xE0 == 0x80:
		io.keypadMode = true
	case byte(port)&0xE0 == 0xC0:
		io.keypadMode = false
	case byte(port) == 0xFF:
		io.c.PSG.Write(v)
	}
}

// SetKeypad records which numeric key (index 0-11, matching
// colecoKeypadCode's order: 0-9, *, #) is currently held on a controller's
// keypad, or -1 for none.
func (c *Console) SetKeypad(player int, key int) {
	io, ok := c.io.(*colecoIO)
	if !ok {
		return
	}
	code := byte(0x0F)
	if key >= 0 && key < len(colecoKeypadCode) {
		code = colecoKeypadCode[key]
	}
	if player == 2 {
		io.keypad2.key = code
	} else {
		io.keypad1.key = code
	}
}

// NewColecoVision creates a ColecoVision console instance from its 8KB BIOS
// image and a cartridge ROM image.
func NewColecoVision(bios, cart []byte, region Region) *Console {
	mem := &colecoMemory{bios: bios, cart: NewFixedMapper(cart)}
	c := newConsole(mem, nil, true, region)
	c.io = &colecoIO{c: c, keypad1: colecoKeypad{key: 0x0F}, keypad2: colecoKeypad{key: 0x0F}}
	// INT is unused on ColecoVision; the BIOS takes VBlank on NMI instead.
	c.intFunc = func() bool { return false }
	c.nmiFunc = func() bool { return c.VDP.FrameInterruptPending() }
	return c
}
