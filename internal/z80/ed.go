package z80

// executeED handles the ED-prefixed group: extended loads, NEG, RETN/RETI,
// interrupt mode selection, RRD/RLD, the block transfer/search/IO families,
// and IN r,(C)/OUT (C),r. ED is not itself indexable, so a DD/FD prefix in
// front of it has no effect and is dropped here.
func (c *CPU) executeED() {
	c.prefix = prefixNone
	op := c.fetchOpcode()
	x := op >> 6
	y := (op >> 3) & 7
	z := op & 7
	p := y >> 1
	q := y & 1

	switch x {
	case 1:
		c.executeED1(y, z, q, p)
	case 2:
		if z <= 3 && y >= 4 {
			c.executeEDBlock(y, z)
		} else {
			c.tick(8)
		}
	default:
		c.tick(8)
	}
}

func (c *CPU) executeED1(y, z, q, p byte) {
	switch z {
	case 0:
		if y == 6 {
			c.ioRead(c.BC())
			c.tick(12)
		} else {
			v := c.ioRead(c.BC())
			c.writeReg8(y, v)
			c.setSZXY(v)
			c.setFlag(FlagPV, parity(v))
			c.setFlag(FlagN, false)
			c.setFlag(FlagH, false)
			c.tick(12)
		}
	case 1:
		if y == 6 {
			c.ioWrite(c.BC(), 0)
		} else {
			c.ioWrite(c.BC(), c.readReg8(y))
		}
		c.tick(12)
	case 2:
		if q == 0 {
			c.sbcHL(c.getRP(p))
		} else {
			c.adcHL(c.getRP(p))
		}
		c.tick(15)
	case 3:
		if q == 0 {
			addr := c.fetchWord()
			v := c.getRP(p)
			c.write(addr, byte(v))
			c.write(addr+1, byte(v>>8))
		} else {
			addr := c.fetchWord()
			lo := c.read(addr)
			hi := c.read(addr + 1)
			c.setRP(p, uint16(hi)<<8|uint16(lo))
		}
		c.tick(20)
	case 4:
		a := c.A
		c.A = 0
		c.subA(a, false, false)
		c.tick(8)
	case 5:
		c.PC = c.popWord()
		if q == 1 {
			// RETI: signals end-of-interrupt to daisy-chained devices; no
			// devices in this module observe it, so behaviourally RETN.
		}
		c.IFF1 = c.IFF2
		c.tick(14)
	case 6:
		switch y {
		case 0, 1, 4, 5:
			c.IM = 0
		case 2, 6:
			c.IM = 1
		default:
			c.IM = 2
		}
		c.tick(8)
	case 7:
		c.executeED1z7(y)
	}
}

func (c *CPU) executeED1z7(y byte) {
	switch y {
	case 0:
		c.I = c.A
		c.tick(9)
	case 1:
		c.R = c.A
		c.tick(9)
	case 2:
		c.A = c.I
		c.setSZXY(c.A)
		c.setFlag(FlagPV, c.IFF2)
		c.setFlag(FlagH, false)
		c.setFlag(FlagN, false)
		c.tick(9)
	case 3:
		c.A = c.R
		c.setSZXY(c.A)
		c.setFlag(FlagPV, c.IFF2)
		c.setFlag(FlagH, false)
		c.setFlag(FlagN, false)
		c.tick(9)
	case 4: // RRD
		hl := c.HL()
		mem := c.read(hl)
		newMem := (c.A&0x0F)<<4 | (mem >> 4)
		c.A = c.A&0xF0 | (mem & 0x0F)
		c.write(hl, newMem)
		c.setSZXY(c.A)
		c.setFlag(FlagPV, parity(c.A))
		c.setFlag(FlagH, false)
		c.setFlag(FlagN, false)
		c.tick(18)
	case 5: // RLD
		hl := c.HL()
		mem := c.read(hl)
		newMem := (mem&0x0F)<<4 | (c.A & 0x0F)
		c.A = c.A&0xF0 | (mem >> 4)
		c.write(hl, newMem)
		c.setSZXY(c.A)
		c.setFlag(FlagPV, parity(c.A))
		c.setFlag(FlagH, false)
		c.setFlag(FlagN, false)
		c.tick(18)
	default:
		c.tick(8) // undocumented NOP forms (ED 0x77/0x7F)
	}
}

// executeEDBlock covers LDI/LDD/LDIR/LDDR (z=0), CPI/CPD/CPIR/CPDR (z=1),
// INI/IND/INIR/INDR (z=2) and OUTI/OUTD/OTIR/OTDR (z=3), selected by the
// direction bit in y (bit 0: 0=increment, 1=decrement) and the repeat bit
// (bit 1 of y, i.e. y>=6).
func (c *CPU) executeEDBlock(y, z byte) {
	decrement := y&1 != 0
	repeat := y >= 6

	switch z {
	case 0:
		c.blockLD(decrement, repeat)
	case 1:
		c.blockCP(decrement, repeat)
	case 2:
		c.blockIN(decrement, repeat)
	case 3:
		c.blockOUT(decrement, repeat)
	}
}

func step16(v uint16, decrement bool) uint16 {
	if decrement {
		return v - 1
	}
	return v + 1
}

func (c *CPU) blockLD(decrement, repeat bool) {
	hl, de, bc := c.HL(), c.DE(), c.BC()
	v := c.read(hl)
	c.write(de, v)
	hl = step16(hl, decrement)
	de = step16(de, decrement)
	bc--
	c.SetHL(hl)
	c.SetDE(de)
	c.SetBC(bc)

	n := v + c.A
	c.setFlag(FlagX, n&0x02 != 0)
	c.setFlag(FlagY, n&0x08 != 0)
	c.setFlag(FlagH, false)
	c.setFlag(FlagN, false)
	c.setFlag(FlagPV, bc != 0)

	c.tick(16)
	if repeat && bc != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) blockCP(decrement, repeat bool) {
	hl, bc := c.HL(), c.BC()
	v := c.read(hl)
	a := c.A
	res := a - v
	halfBorrow := (a & 0x0F) < (v & 0x0F)
	hl = step16(hl, decrement)
	bc--
	c.SetHL(hl)
	c.SetBC(bc)

	c.setFlag(FlagS, res&0x80 != 0)
	c.setFlag(FlagZ, res == 0)
	c.setFlag(FlagH, halfBorrow)
	c.setFlag(FlagN, true)
	c.setFlag(FlagPV, bc != 0)
	n := res
	if halfBorrow {
		n--
	}
	c.setFlag(FlagX, n&0x02 != 0)
	c.setFlag(FlagY, n&0x08 != 0)

	c.tick(16)
	if repeat && bc != 0 && res != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) blockIN(decrement, repeat bool) {
	hl := c.HL()
	v := c.ioRead(c.BC())
	c.write(hl, v)
	c.B--
	c.SetHL(step16(hl, decrement))

	c.setFlag(FlagZ, c.B == 0)
	c.setFlag(FlagN, v&0x80 != 0)
	c.setSZXY(c.B)

	c.tick(16)
	if repeat && c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) blockOUT(decrement, repeat bool) {
	hl := c.HL()
	v := c.read(hl)
	c.ioWrite(c.BC(), v)
	c.B--
	c.SetHL(step16(hl, decrement))

	c.setFlag(FlagZ, c.B == 0)
	c.setFlag(FlagN, v&0x80 != 0)
	c.setSZXY(c.B)

	c.tick(16)
	if repeat && c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}
