package console

import (
	"github.com/joppyfurr/snepulator-go/internal/psg"
	"github.com/joppyfurr/snepulator-go/internal/vdp"
	"github.com/joppyfurr/snepulator-go/internal/z80"
)

// MachineState holds the console-specific portion of a save state: RAM,
// cartridge RAM, mapper bank selection and IO port latches. Its fields are
// a superset across all four machines; a given console only populates the
// ones its memory/IO maps actually have, leaving the rest at their zero
// value. SaveState (savestate.go) encodes it as the RAM section payload
// alongside the CPU/VDP/PSG sections; internal/savestate only frames it.
type MachineState struct {
	RAM     []byte
	CartRAM []byte

	MapperSlots      [3]int
	MapperRAMControl byte

	IOControl  byte
	KeypadMode bool
	Keypad1    byte
	Keypad2    byte
}

// State is the complete save state for one console instance.
type State struct {
	CPU     z80.State
	VDP     vdp.State
	PSG     psg.State
	Machine MachineState
}

// State captures a full snapshot of the running machine.
func (c *Console) State() State {
	s := State{
		CPU: c.CPU.State(),
		VDP: c.VDP.State(),
		PSG: c.PSG.State(),
	}

	switch mem := c.mem.(type) {
	case *smsMemory:
		s.Machine.RAM = append([]byte(nil), mem.ram[:]...)
		s.Machine.CartRAM = append([]byte(nil), mem.cartRAM[:]...)
		if sm, ok := mem.mapper.(*SegaMapper); ok {
			s.Machine.MapperSlots = sm.slot
			s.Machine.MapperRAMControl = sm.ramControl
		} else if cm, ok := mem.mapper.(*CodemastersMapper); ok {
			s.Machine.MapperSlots = cm.bank
		} else if km, ok := mem.mapper.(*KoreanMapper); ok {
			s.Machine.MapperSlots[2] = km.bank2
		}
	case *sg1000Memory:
		s.Machine.RAM = append([]byte(nil), mem.ram[:]...)
	case *colecoMemory:
		s.Machine.RAM = append([]byte(nil), mem.ram[:]...)
	}

	switch io := c.io.(type) {
	case *smsIO:
		s.Machine.IOControl = io.ioControl
	case *colecoIO:
		s.Machine.KeypadMode = io.keypadMode
		s.Machine.Keypad1 = io.keypad1.key
		s.Machine.Keypad2 = io.keypad2.key
	}

	return s
}

// SetState restores a previously captured snapshot. The console must
// already have been constructed for the same machine/mapper kind the
// snapshot was taken from; mismatched RAM/cart-RAM lengths are copied up to
// the shorter of the two rather than rejected outright.
func (c *Console) SetState(s State) {
	c.CPU.SetState(s.CPU)
	c.VDP.SetState(s.VDP)
	c.PSG.SetState(s.PSG)

	switch mem := c.mem.(type) {
	case *smsMemory:
		copy(mem.ram[:], s.Machine.RAM)
		copy(mem.cartRAM[:], s.Machine.CartRAM)
		if sm, ok := mem.mapper.(*SegaMapper); ok {
			sm.slot = s.Machine.MapperSlots
			sm.ramControl = s.Machine.MapperRAMControl
		} else if cm, ok := mem.mapper.(*CodemastersMapper); ok {
			cm.bank = s.Machine.MapperSlots
		} else if km, ok := mem.mapper.(*KoreanMapper); ok {
			km.bank2 = s.Machine.MapperSlots[2]
		}
	case *sg1000Memory:
		copy(mem.ram[:], s.Machine.RAM)
	case *colecoMemory:
		copy(mem.ram[:], s.Machine.RAM)
	}

	switch io := c.io.(type) {
	case *smsIO:
		io.ioControl = s.Machine.IOControl
	case *colecoIO:
		io.keypadMode = s.Machine.KeypadMode
		io.keypad1.key = s.Machine.Keypad1
		io.keypad2.key = s.Machine.Keypad2
	}
}
