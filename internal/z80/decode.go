package z80

// Base-opcode dispatch using the classic Z80 bit-field decomposition
// (x = opcode>>6, y = (opcode>>3)&7, z = opcode&7, p = y>>1, q = y&1).
// This table shape is public-domain Z80 folklore (Sean Young's "Undocumented
// Z80 Documented" lays it out), not a single example's proprietary code; the
// register/flag plumbing it calls into is grounded on the teacher as noted
// in z80.go's doc comment and DESIGN.md.

func (c *CPU) getRP(p byte) uint16 {
	switch p {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.indexOrHL()
	default:
		return c.SP
	}
}

func (c *CPU) setRP(p byte, v uint16) {
	switch p {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.setIndexOrHL(v)
	default:
		c.SP = v
	}
}

func (c *CPU) getRP2(p byte) uint16 {
	if p == 3 {
		return c.AF()
	}
	return c.getRP(p)
}

func (c *CPU) setRP2(p byte, v uint16) {
	if p == 3 {
		c.SetAF(v)
		return
	}
	c.setRP(p, v)
}

func (c *CPU) indexOrHL() uint16 {
	switch c.prefix {
	case prefixIX:
		return c.IX
	case prefixIY:
		return c.IY
	default:
		return c.HL()
	}
}

func (c *CPU) setIndexOrHL(v uint16) {
	switch c.prefix {
	case prefixIX:
		c.IX = v
	case prefixIY:
		c.IY = v
	default:
		c.SetHL(v)
	}
}

// hlAddr resolves the effective address for an (HL)-class operand, applying
// the IX+d/IY+d displacement under a DD/FD prefix. The displacement byte is
// consumed from the instruction stream at most once per instruction.
func (c *CPU) hlAddr() uint16 {
	switch c.prefix {
	case prefixIX:
		d := int8(c.fetchByte())
		return uint16(int32(c.IX) + int32(d))
	case prefixIY:
		d := int8(c.fetchByte())
		return uint16(int32(c.IY) + int32(d))
	default:
		return c.HL()
	}
}

func (c *CPU) readReg8(z byte) byte {
	switch z {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		switch c.prefix {
		case prefixIX:
			return byte(c.IX >> 8)
		case prefixIY:
			return byte(c.IY >> 8)
		default:
			return c.H
		}
	case 5:
		switch c.prefix {
		case prefixIX:
			return byte(c.IX)
		case prefixIY:
			return byte(c.IY)
		default:
			return c.L
		}
	case 6:
		return c.read(c.hlAddr())
	default:
		return c.A
	}
}

func (c *CPU) writeReg8(z byte, v byte) {
	switch z {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		switch c.prefix {
		case prefixIX:
			c.IX = c.IX&0x00FF | uint16(v)<<8
		case prefixIY:
			c.IY = c.IY&0x00FF | uint16(v)<<8
		default:
			c.H = v
		}
	case 5:
		switch c.prefix {
		case prefixIX:
			c.IX = c.IX&0xFF00 | uint16(v)
		case prefixIY:
			c.IY = c.IY&0xFF00 | uint16(v)
		default:
			c.L = v
		}
	case 6:
		c.write(c.hlAddr(), v)
	default:
		c.A = v
	}
}

// writeReg8Plain writes B/C/D/E/H/L/A ignoring any active DD/FD prefix; used
// for the DDCB/FDCB undocumented write-back, which always lands in plain H/L
// rather than IXH/IXL even though the effective address came from IX/IY+d.
func (c *CPU) writeReg8Plain(z byte, v byte) {
	switch z {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 7:
		c.A = v
	}
}

func (c *CPU) condition(y byte) bool {
	switch y {
	case 0:
		return !c.flag(FlagZ)
	case 1:
		return c.flag(FlagZ)
	case 2:
		return !c.flag(FlagC)
	case 3:
		return c.flag(FlagC)
	case 4:
		return !c.flag(FlagPV)
	case 5:
		return c.flag(FlagPV)
	case 6:
		return !c.flag(FlagS)
	default:
		return c.flag(FlagS)
	}
}

// execute runs exactly one base (possibly DD/FD/ED/CB-prefixed) instruction
// starting with the already-fetched opcode byte.
func (c *CPU) execute(opcode byte) {
	switch opcode {
	case 0xCB:
		c.executeCB()
		return
	case 0xED:
		c.executeED()
		return
	case 0xDD:
		c.prefix = prefixIX
		op := c.fetchOpcode()
		c.execute(op)
		c.prefix = prefixNone
		return
	case 0xFD:
		c.prefix = prefixIY
		op := c.fetchOpcode()
		c.execute(op)
		c.prefix = prefixNone
		return
	}

	x := opcode >> 6
	y := (opcode >> 3) & 7
	z := opcode & 7
	p := y >> 1
	q := y & 1

	switch x {
	case 0:
		c.executeX0(y, z, q, p)
	case 1:
		if z == 6 && y == 6 {
			c.Halted = true
			c.PC-- // PC stays on the HALT byte; interrupt entry steps past it
			c.tick(4)
			return
		}
		if z == 6 {
			// LD r,(IX+d) loads plain H/L, never IXH/IXL.
			c.writeReg8Plain(y, c.read(c.hlAddr()))
			c.tick(7)
			return
		}
		if y == 6 {
			// LD (IX+d),r stores plain H/L, never IXH/IXL.
			addr := c.hlAddr()
			saved := c.prefix
			c.prefix = prefixNone
			v := c.readReg8(z)
			c.prefix = saved
			c.write(addr, v)
			c.tick(7)
			return
		}
		c.writeReg8(y, c.readReg8(z))
		c.tick(4)
	case 2:
		v := c.readReg8(z)
		c.aluOp(y, v)
		if z == 6 {
			c.tick(7)
		} else {
			c.tick(4)
		}
	case 3:
		c.executeX3(y, z, q, p)
	}
}

func (c *CPU) executeX0(y, z, q, p byte) {
	switch z {
	case 0:
		switch y {
		case 0:
			c.tick(4) // NOP
		case 1:
			c.A, c.F, c.A2, c.F2 = c.A2, c.F2, c.A, c.F
			c.tick(4) // EX AF,AF'
		case 2:
			d := int8(c.fetchByte())
			c.B--
			c.tick(8)
			if c.B != 0 {
				c.PC = uint16(int32(c.PC) + int32(d))
				c.tick(5)
			}
		case 3:
			d := int8(c.fetchByte())
			c.PC = uint16(int32(c.PC) + int32(d))
			c.tick(12)
		default:
			d := int8(c.fetchByte())
			c.tick(7)
			if c.condition(y - 4) {
				c.PC = uint16(int32(c.PC) + int32(d))
				c.tick(5)
			}
		}
	case 1:
		if q == 0 {
			v := c.fetchWord()
			c.setRP(p, v)
			c.tick(10)
		} else {
			c.setIndexOrHL(c.addIndex(c.indexOrHL(), c.getRP(p)))
			c.tick(11)
		}
	case 2:
		switch y {
		case 0:
			c.write(c.BC(), c.A)
			c.tick(7)
		case 1:
			c.A = c.read(c.BC())
			c.tick(7)
		case 2:
			c.write(c.DE(), c.A)
			c.tick(7)
		case 3:
			c.A = c.read(c.DE())
			c.tick(7)
		case 4:
			addr := c.fetchWord()
			v := c.indexOrHL()
			c.write(addr, byte(v))
			c.write(addr+1, byte(v>>8))
			c.tick(16)
		case 5:
			addr := c.fetchWord()
			lo := c.read(addr)
			hi := c.read(addr + 1)
			c.setIndexOrHL(uint16(hi)<<8 | uint16(lo))
			c.tick(16)
		case 6:
			addr := c.fetchWord()
			c.write(addr, c.A)
			c.tick(13)
		case 7:
			addr := c.fetchWord()
			c.A = c.read(addr)
			c.tick(13)
		}
	case 3:
		if q == 0 {
			c.setRP(p, c.getRP(p)+1)
		} else {
			c.setRP(p, c.getRP(p)-1)
		}
		c.tick(6)
	case 4:
		if y == 6 {
			addr := c.hlAddr()
			c.write(addr, c.inc8(c.read(addr)))
			c.tick(11)
		} else {
			c.writeReg8(y, c.inc8(c.readReg8(y)))
			c.tick(4)
		}
	case 5:
		if y == 6 {
			addr := c.hlAddr()
			c.write(addr, c.dec8(c.read(addr)))
			c.tick(11)
		} else {
			c.writeReg8(y, c.dec8(c.readReg8(y)))
			c.tick(4)
		}
	case 6:
		if y == 6 {
			addr := c.hlAddr() // displacement precedes the immediate
			c.write(addr, c.fetchByte())
			c.tick(10)
		} else {
			c.writeReg8(y, c.fetchByte())
			c.tick(7)
		}
	case 7:
		c.executeRotateAccum(y)
		c.tick(4)
	}
}

func (c *CPU) executeRotateAccum(y byte) {
	switch y {
	case 0:
		c.A = rotateAccumLeft(c, c.A, false)
	case 1:
		c.A = rotateAccumRight(c, c.A, false)
	case 2:
		c.A = rotateAccumLeft(c, c.A, true)
	case 3:
		c.A = rotateAccumRight(c, c.A, true)
	case 4:
		c.daa()
	case 5:
		c.A = ^c.A
		c.setFlag(FlagN, true)
		c.setFlag(FlagH, true)
		c.setFlag(FlagX, c.A&0x08 != 0)
		c.setFlag(FlagY, c.A&0x20 != 0)
	case 6:
		c.setFlag(FlagH, false)
		c.setFlag(FlagN, false)
		c.setFlag(FlagC, true)
		c.setFlag(FlagX, c.A&0x08 != 0)
		c.setFlag(FlagY, c.A&0x20 != 0)
	case 7:
		c.setFlag(FlagH, false)
		c.setFlag(FlagN, false)
		c.setFlag(FlagC, !c.flag(FlagC))
		c.setFlag(FlagX, c.A&0x08 != 0)
		c.setFlag(FlagY, c.A&0x20 != 0)
	}
}

// rotateAccumLeft/Right implement RLCA/RLA/RRCA/RRA: like the CB-group
// rotates but S/Z/PV are left untouched.
func rotateAccumLeft(c *CPU, v byte, throughCarry bool) byte {
	var carry, res byte
	if throughCarry {
		oldCarry := byte(0)
		if c.flag(FlagC) {
			oldCarry = 1
		}
		carry = v & 0x80
		res = (v << 1) | oldCarry
	} else {
		carry = v & 0x80
		res = v << 1
		if carry != 0 {
			res |= 1
		}
	}
	c.setFlag(FlagC, carry != 0)
	c.setFlag(FlagH, false)
	c.setFlag(FlagN, false)
	c.setFlag(FlagX, res&0x08 != 0)
	c.setFlag(FlagY, res&0x20 != 0)
	return res
}

func rotateAccumRight(c *CPU, v byte, throughCarry bool) byte {
	var carry, res byte
	if throughCarry {
		oldCarry := byte(0)
		if c.flag(FlagC) {
			oldCarry = 0x80
		}
		carry = v & 0x01
		res = (v >> 1) | oldCarry
	} else {
		carry = v & 0x01
		res = v >> 1
		if carry != 0 {
			res |= 0x80
		}
	}
	c.setFlag(FlagC, carry != 0)
	c.setFlag(FlagH, false)
	c.setFlag(FlagN, false)
	c.setFlag(FlagX, res&0x08 != 0)
	c.setFlag(FlagY, res&0x20 != 0)
	return res
}

func (c *CPU) executeX3(y, z, q, p byte) {
	switch z {
	case 0:
		c.tick(5)
		if c.condition(y) {
			c.PC = c.popWord()
			c.tick(6)
		}
	case 1:
		if q == 0 {
			c.setRP2(p, c.popWord())
			c.tick(10)
		} else {
			switch p {
			case 0:
				c.PC = c.popWord()
				c.tick(10)
			case 1:
				c.B, c.C, c.B2, c.C2 = c.B2, c.C2, c.B, c.C
				c.D, c.E, c.D2, c.E2 = c.D2, c.E2, c.D, c.E
				c.H, c.L, c.H2, c.L2 = c.H2, c.L2, c.H, c.L
				c.tick(4) // EXX
			case 2:
				c.PC = c.indexOrHL()
				c.tick(4)
			default:
				c.SP = c.indexOrHL()
				c.tick(6)
			}
		}
	case 2:
		addr := c.fetchWord()
		c.tick(10)
		if c.condition(y) {
			c.PC = addr
		}
	case 3:
		switch y {
		case 0:
			addr := c.fetchWord()
			c.PC = addr
			c.tick(10)
		case 1:
			c.executeCB()
		case 2:
			n := c.fetchByte() // OUT (n),A
			c.ioWrite(uint16(c.A)<<8|uint16(n), c.A)
			c.tick(11)
		case 3:
			n := c.fetchByte() // IN A,(n)
			c.A = c.ioRead(uint16(c.A)<<8 | uint16(n))
			c.tick(11)
		case 4:
			tmp := c.indexOrHL()
			lo := c.read(c.SP)
			hi := c.read(c.SP + 1)
			c.write(c.SP, byte(tmp))
			c.write(c.SP+1, byte(tmp>>8))
			c.setIndexOrHL(uint16(hi)<<8 | uint16(lo))
			c.tick(19)
		case 5:
			de := c.DE()
			c.SetDE(c.indexOrHL())
			c.setIndexOrHL(de)
			c.tick(4)
		case 6:
			c.IFF1, c.IFF2 = false, false
			c.tick(4)
		default:
			c.IFF1, c.IFF2 = true, true
			c.waitAfterEI = true
			c.tick(4)
		}
	case 4:
		addr := c.fetchWord()
		c.tick(10)
		if c.condition(y) {
			c.pushWord(c.PC)
			c.PC = addr
			c.tick(7)
		}
	case 5:
		if q == 0 {
			c.pushWord(c.getRP2(p))
			c.tick(11)
		} else if p == 0 {
			addr := c.fetchWord()
			c.pushWord(c.PC)
			c.PC = addr
			c.tick(17)
		}
	case 6:
		n := c.fetchByte()
		c.aluOp(y, n)
		c.tick(7)
	case 7:
		c.pushWord(c.PC)
		c.PC = uint16(y) * 8
		c.tick(11)
	}
}
