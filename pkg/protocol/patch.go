package protocol

import "fmt"

// PatchOp is the type of host-tree mutation.
type PatchOp uint8

const (
	PatchCreateContainer PatchOp = 0x01 // Create container node (ID, Tag)
	PatchCreateLeaf      PatchOp = 0x02 // Create leaf node (ID, Value)
	PatchSetAttr         PatchOp = 0x03 // Set attribute (ID, Key, Value)
	PatchRemoveAttr      PatchOp = 0x04 // Remove attribute (ID, Key)
	PatchSetText         PatchOp = 0x05 // Replace leaf value (ID, Value)
	PatchAppend          PatchOp = 0x06 // Attach child (ParentID, ID)
	PatchRemove          PatchOp = 0x07 // Detach child (ParentID, ID)
)

// String returns the string representation of the patch operation.
func (op PatchOp) String() string {
	switch op {
	case PatchCreateContainer:
		return "CreateContainer"
	case PatchCreateLeaf:
		return "CreateLeaf"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchSetText:
		return "SetText"
	case PatchAppend:
		return "Append"
	case PatchRemove:
		return "Remove"
	default:
		return "Unknown"
	}
}

// Patch represents a single host-tree mutation.
type Patch struct {
	Op       PatchOp
	ID       uint64 // Target node ID
	ParentID uint64 // Parent node ID (Append/Remove)
	Key      string // Attribute key (SetAttr/RemoveAttr)
	Value    string // Tag, text, or attribute value
}

// PatchFrame is a batch of patches produced by one commit.
type PatchFrame struct {
	Seq     uint64
	Patches []Patch
}

// EncodeFrame encodes a patch frame to bytes.
func EncodeFrame(pf *PatchFrame) []byte {
	e := NewEncoder()
	e.WriteUvarint(pf.Seq)
	e.WriteUvarint(uint64(len(pf.Patches)))
	for i := range pf.Patches {
		encodePatch(e, &pf.Patches[i])
	}
	return e.Bytes()
}

func encodePatch(e *Encoder, p *Patch) {
	e.WriteByte(byte(p.Op))
	e.WriteUvarint(p.ID)
	switch p.Op {
	case PatchCreateContainer, PatchCreateLeaf, PatchSetText:
		e.WriteString(p.Value)
	case PatchSetAttr:
		e.WriteString(p.Key)
		e.WriteString(p.Value)
	case PatchRemoveAttr:
		e.WriteString(p.Key)
	case PatchAppend, PatchRemove:
		e.WriteUvarint(p.ParentID)
	}
}

// DecodeFrame decodes a patch frame from bytes.
func DecodeFrame(buf []byte) (*PatchFrame, error) {
	d := NewDecoder(buf)

	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	count, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if count > MaxPatchesPerFrame {
		return nil, ErrFrameTooLarge
	}

	pf := &PatchFrame{
		Seq:     seq,
		Patches: make([]Patch, 0, count),
	}
	for i := uint64(0); i < count; i++ {
		p, err := decodePatch(d)
		if err != nil {
			return nil, err
		}
		pf.Patches = append(pf.Patches, p)
	}
	return pf, nil
}

func decodePatch(d *Decoder) (Patch, error) {
	var p Patch

	op, err := d.ReadByte()
	if err != nil {
		return p, err
	}
	p.Op = PatchOp(op)

	if p.ID, err = d.ReadUvarint(); err != nil {
		return p, err
	}

	switch p.Op {
	case PatchCreateContainer, PatchCreateLeaf, PatchSetText:
		p.Value, err = d.ReadString()
	case PatchSetAttr:
		if p.Key, err = d.ReadString(); err != nil {
			return p, err
		}
		p.Value, err = d.ReadString()
	case PatchRemoveAttr:
		p.Key, err = d.ReadString()
	case PatchAppend, PatchRemove:
		p.ParentID, err = d.ReadUvarint()
	default:
		return p, fmt.Errorf("protocol: unknown patch op 0x%02x", op)
	}
	return p, err
}
