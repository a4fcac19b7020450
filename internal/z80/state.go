package z80

// State is the part of the CPU's register/run state that participates in a
// save state (see internal/savestate for the tagged-section wire format).
// It deliberately excludes the Bus reference and the IM2 vector, which are
// wiring concerns re-established by the console integrator on load.
type State struct {
	A, F                       byte
	B, C, D, E, H, L           byte
	A2, F2                     byte
	B2, C2, D2, E2, H2, L2     byte
	IX, IY, SP, PC             uint16
	I, R                       byte
	IM                         byte
	IFF1, IFF2                 bool
	Halted                     bool
	WaitAfterEI                bool
	ExcessCycle                int32
	NMIPrev                    bool
}

// State captures the CPU's full architectural register file for a save
// state.
func (c *CPU) State() State {
	return State{
		A: c.A, F: c.F,
		B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		A2: c.A2, F2: c.F2,
		B2: c.B2, C2: c.C2, D2: c.D2, E2: c.E2, H2: c.H2, L2: c.L2,
		IX: c.IX, IY: c.IY, SP: c.SP, PC: c.PC,
		I: c.I, R: c.R, IM: c.IM,
		IFF1: c.IFF1, IFF2: c.IFF2,
		Halted:      c.Halted,
		WaitAfterEI: c.waitAfterEI,
		ExcessCycle: int32(c.excessCycle),
		NMIPrev:     c.nmiPrev,
	}
}

// SetState restores a previously captured register file. The bus and
// in-flight prefix/displacement state are left untouched; a restore always
// happens between instructions, so no prefix can be mid-flight.
func (c *CPU) SetState(s State) {
	c.A, c.F = s.A, s.F
	c.B, c.C, c.D, c.E, c.H, c.L = s.B, s.C, s.D, s.E, s.H, s.L
	c.A2, c.F2 = s.A2, s.F2
	c.B2, c.C2, c.D2, c.E2, c.H2, c.L2 = s.B2, s.C2, s.D2, s.E2, s.H2, s.L2
	c.IX, c.IY, c.SP, c.PC = s.IX, s.IY, s.SP, s.PC
	c.I, c.R, c.IM = s.I, s.R, s.IM
	c.IFF1, c.IFF2 = s.IFF1, s.IFF2
	c.Halted = s.Halted
	c.waitAfterEI = s.WaitAfterEI
	c.excessCycle = int(s.ExcessCycle)
	c.nmiPrev = s.NMIPrev
	c.prefix = prefixNone
}
