package console

// ControllerState is a digital snapshot of one player's controller: the
// d-pad plus two fire buttons common to all four consoles, and an
// accumulated paddle/sports-pad axis position for the titles that use
// those analogue peripherals (romdb.HintPaddleOnly). Grounded
// on the teacher's SetInput/SetInputP2 accessor pattern, generalized to a
// struct since this module's controllers carry more than IntuitionEngine's
// single packed byte.
type ControllerState struct {
	Up, Down, Left, Right bool
	Button1, Button2      bool

	// PaddleAxis is an 8-bit accumulator (0-255) for paddle/sports-pad
	// titles; digital titles leave it at its zero value.
	PaddleAxis uint8

	// Start is the SG-1000 pad's Start button, wired to the Z80's NMI line
	// rather than read through an I/O port.
	Start bool
}

// ToPort1Byte packs the common SMS/SG-1000 digital layout:
// bit0 up, bit1 down, bit2 left, bit3 right, bit4 button1, bit5 button2,
// active low (0 = pressed) as read back through the I/O port.
func (s ControllerState) ToPort1Byte() byte {
	v := byte(0xFF)
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
		v &^= 0x10
	}
	if s.Button2 {
		v &^= 0x20
	}
	return v
}
