package z80

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memBus is a flat 64K RAM/IO bus used only by these tests; console
// integrators provide their own mapped Bus implementation.
type memBus struct {
	mem       [65536]byte
	io        [256]byte
	interrupt bool
	nmi       bool
}

func (b *memBus) MemRead(addr uint16) byte       { return b.mem[addr] }
func (b *memBus) MemWrite(addr uint16, v byte)   { b.mem[addr] = v }
func (b *memBus) IORead(port uint16) byte        { return b.io[byte(port)] }
func (b *memBus) IOWrite(port uint16, v byte)    { b.io[byte(port)] = v }
func (b *memBus) Interrupt() bool                { return b.interrupt }
func (b *memBus) NMI() bool                      { return b.nmi }

func newTestCPU(program ...byte) (*CPU, *memBus) {
	bus := &memBus{}
	copy(bus.mem[:], program)
	cpu := New(bus)
	return cpu, bus
}

func TestResetState(t *testing.T) {
	cpu, _ := newTestCPU()
	assert.Equal(t, uint16(0xFFFF), cpu.AF())
	assert.Equal(t, uint16(0xFFFF), cpu.SP)
	assert.Equal(t, uint16(0), cpu.PC)
	assert.False(t, cpu.IFF1)
	assert.False(t, cpu.IFF2)
	assert.Equal(t, byte(0), cpu.IM)
	assert.False(t, cpu.Halted)
}

func TestParity(t *testing.T) {
	assert.True(t, parity(0x00))
	assert.True(t, parity(0x03))
	assert.False(t, parity(0x01))
	assert.False(t, parity(0x07))
}

func TestLDBCImmediateAndINCBC(t *testing.T) {
	// LD BC,1234h ; INC BC
	cpu, _ := newTestCPU(0x01, 0x34, 0x12, 0x03)
	cpu.RunCycles(10 + 6 + 35) // comfortably above the 34-cycle floor
	assert.Equal(t, uint16(0x1235), cpu.BC())
}

func TestAddAFlags(t *testing.T) {
	cpu, _ := newTestCPU(0x3E, 0x7F, 0xC6, 0x01) // LD A,7Fh ; ADD A,01h
	cpu.RunCycles(80)
	assert.Equal(t, byte(0x80), cpu.A)
	assert.True(t, cpu.flag(FlagS))
	assert.True(t, cpu.flag(FlagPV)) // signed overflow 0x7F+1
	assert.False(t, cpu.flag(FlagC))
}

func TestHaltServicedByInterrupt(t *testing.T) {
	// LD A,00h ; IM1 ; EI ; HALT
	cpu, bus := newTestCPU(0x3E, 0x00, 0xED, 0x56, 0xFB, 0x76)
	cpu.RunCycles(200)
	require.True(t, cpu.Halted)

	bus.interrupt = true
	// The halted run leaves a 33-cycle carry; 33+14 = 47 leaves room for
	// exactly the 13-cycle IM 1 entry before the budget drops to 34.
	cpu.RunCycles(14)
	assert.False(t, cpu.Halted)
	assert.Equal(t, uint16(0x0038), cpu.PC)
}

func TestNMIIsEdgeTriggered(t *testing.T) {
	cpu, bus := newTestCPU(0x00, 0x00, 0x00, 0x00)
	bus.nmi = true
	cpu.RunCycles(36) // just enough budget to service the NMI and stop
	assert.Equal(t, uint16(0x0066), cpu.PC)

	// NMI line remains asserted (level held by the device); without a
	// falling edge it must not retrigger, so PC keeps advancing past the
	// vector via the NOPs sitting at 0x0066 instead of jumping back to it.
	cpu.RunCycles(36)
	assert.NotEqual(t, uint16(0x0066), cpu.PC)
}

func TestExcessCycleCarriesOver(t *testing.T) {
	cpu, _ := newTestCPU(0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00)
	cpu.RunCycles(40) // 4-cycle NOPs: runs until remaining <= 34
	carry := cpu.excessCycle
	assert.GreaterOrEqual(t, carry, 0)
	assert.LessOrEqual(t, carry, 34)
}

func TestStateRoundTrip(t *testing.T) {
	cpu, _ := newTestCPU(0x3E, 0x42) // LD A,42h
	cpu.RunCycles(50)
	snap := cpu.State()

	other, _ := newTestCPU()
	other.SetState(snap)
	assert.Equal(t, cpu.A, other.A)
	assert.Equal(t, cpu.PC, other.PC)
}
