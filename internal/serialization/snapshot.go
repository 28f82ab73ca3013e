// Package serialization persists named parameter tensors as CBOR snapshots
// with a CRC32 integrity trailer.
package serialization

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/CohenAriel/neuronika/internal/nn"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Version identifies the snapshot layout. Bump on incompatible changes.
const Version = 1

// Snapshot is the on-disk parameter collection.
type Snapshot struct {
	Version int      `cbor:"version"`
	Records []Record `cbor:"records"`
}

// Record holds one named tensor. Exactly one of F32 and F64 is populated,
// matching DType.
type Record struct {
	Name  string    `cbor:"name"`
	Shape []int     `cbor:"shape"`
	DType string    `cbor:"dtype"`
	F32   []float32 `cbor:"f32,omitempty"`
	F64   []float64 `cbor:"f64,omitempty"`
}

// Save encodes the parameters as CBOR followed by a big-endian CRC32 (IEEE)
// of the encoded bytes.
func Save(params []nn.Parameter) ([]byte, error) {
	snap := Snapshot{Version: Version, Records: make([]Record, 0, len(params))}

	for _, p := range params {
		value := p.Var.Value()
		if value == nil {
			return nil, fmt.Errorf("snapshot: parameter %q has no value", p.Name)
		}

		rec := Record{
			Name:  p.Name,
			Shape: value.Shape().Clone(),
			DType: value.DType().String(),
		}
		switch value.DType() {
		case tensor.Float32:
			rec.F32 = append([]float32(nil), value.AsFloat32()...)
		case tensor.Float64:
			rec.F64 = append([]float64(nil), value.AsFloat64()...)
		}
		snap.Records = append(snap.Records, rec)
	}

	payload, err := cbor.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encoding: %w", err)
	}

	out := make([]byte, len(payload)+4)
	copy(out, payload)
	binary.BigEndian.PutUint32(out[len(payload):], crc32.ChecksumIEEE(payload))
	return out, nil
}

// Load verifies the checksum, decodes the snapshot, and copies each record
// into the parameter with the matching name. Every parameter must be matched
// and shapes must agree exactly.
func Load(data []byte, params []nn.Parameter) error {
	if len(data) < 4 {
		return fmt.Errorf("snapshot: truncated (%d bytes)", len(data))
	}

	payload, trailer := data[:len(data)-4], data[len(data)-4:]
	if got, want := crc32.ChecksumIEEE(payload), binary.BigEndian.Uint32(trailer); got != want {
		return fmt.Errorf("snapshot: checksum mismatch: computed %08x, stored %08x", got, want)
	}

	var snap Snapshot
	if err := cbor.Unmarshal(payload, &snap); err != nil {
		return fmt.Errorf("snapshot: decoding: %w", err)
	}
	if snap.Version != Version {
		return fmt.Errorf("snapshot: unsupported version %d", snap.Version)
	}

	byName := make(map[string]*Record, len(snap.Records))
	for i := range snap.Records {
		byName[snap.Records[i].Name] = &snap.Records[i]
	}

	for _, p := range params {
		rec, ok := byName[p.Name]
		if !ok {
			return fmt.Errorf("snapshot: no record for parameter %q", p.Name)
		}
		if err := restore(p, rec); err != nil {
			return err
		}
	}
	return nil
}

func restore(p nn.Parameter, rec *Record) error {
	value := p.Var.Value()
	if !value.Shape().Equal(tensor.Shape(rec.Shape)) {
		return fmt.Errorf("snapshot: parameter %q has shape %v, record %v",
			p.Name, value.Shape(), rec.Shape)
	}
	if value.DType().String() != rec.DType {
		return fmt.Errorf("snapshot: parameter %q is %s, record %s",
			p.Name, value.DType(), rec.DType)
	}

	switch value.DType() {
	case tensor.Float32:
		if len(rec.F32) != value.NumElements() {
			return fmt.Errorf("snapshot: parameter %q expects %d elements, record has %d",
				p.Name, value.NumElements(), len(rec.F32))
		}
		copy(value.AsFloat32(), rec.F32)
	case tensor.Float64:
		if len(rec.F64) != value.NumElements() {
			return fmt.Errorf("snapshot: parameter %q expects %d elements, record has %d",
				p.Name, value.NumElements(), len(rec.F64))
		}
		copy(value.AsFloat64(), rec.F64)
	}
	return nil
}

// SaveFile writes a snapshot to path.
func SaveFile(path string, params []nn.Parameter) error {
	data, err := Save(params)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadFile reads a snapshot from path into params.
func LoadFile(path string, params []nn.Parameter) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return Load(data, params)
}
