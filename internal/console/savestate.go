package console

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/joppyfurr/snepulator-go/internal/savestate"
)

// SaveState serializes the console's full snapshot into the tagged-section
// format from internal/savestate. consoleTag must be one of
// savestate.TagSMS/TagGG/TagSG/TagCOL, chosen by the caller since Console
// itself does not distinguish an SMS instance from a Game Gear one (both
// are built by NewSMS).
func (c *Console) SaveState(consoleTag string) ([]byte, error) {
	s := c.State()
	w := savestate.NewWriter(consoleTag)

	var zbuf bytes.Buffer
	if err := binary.Write(&zbuf, binary.BigEndian, s.CPU); err != nil {
		return nil, err
	}
	w.Put(savestate.TagZ80, zbuf.Bytes())

	var vbuf bytes.Buffer
	if err := binary.Write(&vbuf, binary.BigEndian, s.VDP); err != nil {
		return nil, err
	}
	w.Put(savestate.TagVDP, vbuf.Bytes())

	var pbuf bytes.Buffer
	if err := binary.Write(&pbuf, binary.BigEndian, s.PSG); err != nil {
		return nil, err
	}
	w.Put(savestate.TagPSG, pbuf.Bytes())

	mbytes, err := encodeMachineState(s.Machine)
	if err != nil {
		return nil, err
	}
	w.Put(savestate.TagRAM, mbytes)

	return w.EncodeBytes()
}

// LoadState restores a snapshot produced by SaveState. The console must
// already be constructed for the same machine and mapper kind the state
// was saved from.
func (c *Console) LoadState(data []byte) error {
	r, err := savestate.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}

	var s State

	zpayload, err := r.Get(savestate.TagZ80, binary.Size(s.CPU))
	if err != nil {
		return err
	}
	if err := binary.Read(bytes.NewReader(zpayload), binary.BigEndian, &s.CPU); err != nil {
		return err
	}

	vpayload, err := r.Get(savestate.TagVDP, binary.Size(s.VDP))
	if err != nil {
		return err
	}
	if err := binary.Read(bytes.NewReader(vpayload), binary.BigEndian, &s.VDP); err != nil {
		return err
	}

	ppayload, err := r.Get(savestate.TagPSG, binary.Size(s.PSG))
	if err != nil {
		return err
	}
	if err := binary.Read(bytes.NewReader(ppayload), binary.BigEndian, &s.PSG); err != nil {
		return err
	}

	mpayload, err := r.Get(savestate.TagRAM, -1)
	if err != nil {
		return err
	}
	if s.Machine, err = decodeMachineState(mpayload); err != nil {
		return err
	}

	c.SetState(s)
	return nil
}

func encodeMachineState(m MachineState) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeByteSlice(&buf, m.RAM); err != nil {
		return nil, err
	}
	if err := writeByteSlice(&buf, m.CartRAM); err != nil {
		return nil, err
	}
	for _, slot := range m.MapperSlots {
		if err := binary.Write(&buf, binary.BigEndian, int32(slot)); err != nil {
			return nil, err
		}
	}
	buf.WriteByte(m.MapperRAMControl)
	buf.WriteByte(m.IOControl)
	keypad := byte(0)
	if m.KeypadMode {
		keypad = 1
	}
	buf.WriteByte(keypad)
	buf.WriteByte(m.Keypad1)
	buf.WriteByte(m.Keypad2)
	return buf.Bytes(), nil
}

func decodeMachineState(data []byte) (MachineState, error) {
	r := bytes.NewReader(data)
	var m MachineState
	var err error

	if m.RAM, err = readByteSlice(r); err != nil {
		return m, err
	}
	if m.CartRAM, err = readByteSlice(r); err != nil {
		return m, err
	}
	for i := range m.MapperSlots {
		var v int32
		if err := binary.Read(r, binary.BigEndian, &v); err != nil {
			return m, err
		}
		m.MapperSlots[i] = int(v)
	}
	if m.MapperRAMControl, err = r.ReadByte(); err != nil {
		return m, err
	}
	if m.IOControl, err = r.ReadByte(); err != nil {
		return m, err
	}
	keypad, err := r.ReadByte()
	if err != nil {
		return m, err
	}
	m.KeypadMode = keypad != 0
	if m.Keypad1, err = r.ReadByte(); err != nil {
		return m, err
	}
	if m.Keypad2, err = r.ReadByte(); err != nil {
		return m, err
	}
	return m, nil
}

func writeByteSlice(buf *bytes.Buffer, data []byte) error {
	if err := binary.Write(buf, binary.BigEndian, uint32(len(data))); err != nil {
		return err
	}
	_, err := buf.Write(data)
	return err
}

func readByteSlice(r *bytes.Reader) ([]byte, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}
