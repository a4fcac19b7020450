package z80

// executeCB handles the CB-prefixed rotate/shift/BIT/RES/SET group. When a
// DD or FD prefix is already active (c.prefix != prefixNone) this is really
// DDCB/FDCB: the byte immediately after 0xCB is a displacement, not the
// sub-opcode, and rotate/RES/SET forms write their result back to both
// (IX+d)/(IY+d) and — except when z encodes (HL) — the plain register named
// by z, which is the well-documented undocumented behaviour of that group.
func (c *CPU) executeCB() {
	indexed := c.prefix != prefixNone
	var addr uint16
	if indexed {
		d := int8(c.fetchByte())
		addr = uint16(int32(c.indexOrHL()) + int32(d))
	}

	op := c.fetchOpcode()
	x := op >> 6
	y := (op >> 3) & 7
	z := op & 7

	var v byte
	if indexed {
		v = c.read(addr)
	} else {
		v = c.readReg8(z)
	}

	switch x {
	case 0:
		res := c.shiftOp(y, v)
		c.storeCBResult(indexed, addr, z, res)
	case 1:
		c.bit(y, v)
		if indexed {
			c.setFlag(FlagX, byte(addr>>8)&0x08 != 0)
			c.setFlag(FlagY, byte(addr>>8)&0x20 != 0)
			c.tick(20)
		} else if z == 6 {
			c.tick(12)
		} else {
			c.tick(8)
		}
	case 2:
		res := v &^ (1 << y)
		c.storeCBResult(indexed, addr, z, res)
	case 3:
		res := v | (1 << y)
		c.storeCBResult(indexed, addr, z, res)
	}
}

func (c *CPU) storeCBResult(indexed bool, addr uint16, z byte, res byte) {
	if indexed {
		c.write(addr, res)
		if z != 6 {
			c.writeReg8Plain(z, res)
		}
		c.tick(23)
		return
	}
	c.writeReg8(z, res)
	if z == 6 {
		c.tick(15)
	} else {
		c.tick(8)
	}
}
