package value

import (
	"github.com/joshuapare/lsartifact/internal/bio"
	"github.com/joshuapare/lsartifact/internal/format"
)

// Read decodes one scalar, vector, or matrix variant from r according to
// typeID, mirroring the original implementation's read_resource_value
// dispatch. String-like variants (20-23, 25, 28, 29, 30, 33) are not handled
// here: their on-disk length/offset prefixes differ between TBT and HBT, so
// those codecs read them directly and construct the corresponding Value.
func Read(r *bio.Reader, typeID uint32) (Value, error) {
	switch typeID {
	case 0:
		return None{}, nil
	case 1:
		v, err := r.ReadU8()
		return Byte(v), err
	case 2:
		v, err := r.ReadI16()
		return Short(v), err
	case 3:
		v, err := r.ReadU16()
		return UShort(v), err
	case 4:
		v, err := r.ReadI32()
		return Int(v), err
	case 5:
		v, err := r.ReadU32()
		return UInt(v), err
	case 6:
		v, err := r.ReadF32()
		return Float(v), err
	case 7:
		v, err := r.ReadF64()
		return Double(v), err
	case 8:
		var out IVec2
		if err := readI32s(r, out[:]); err != nil {
			return nil, err
		}
		return out, nil
	case 9:
		var out IVec3
		if err := readI32s(r, out[:]); err != nil {
			return nil, err
		}
		return out, nil
	case 10:
		var out IVec4
		if err := readI32s(r, out[:]); err != nil {
			return nil, err
		}
		return out, nil
	case 11:
		var out Vec2
		if err := readF32s(r, out[:]); err != nil {
			return nil, err
		}
		return out, nil
	case 12:
		var out Vec3
		if err := readF32s(r, out[:]); err != nil {
			return nil, err
		}
		return out, nil
	case 13:
		var out Vec4
		if err := readF32s(r, out[:]); err != nil {
			return nil, err
		}
		return out, nil
	case 14:
		var out Mat2
		for i := range out {
			if err := readF32s(r, out[i][:]); err != nil {
				return nil, err
			}
		}
		return out, nil
	case 15:
		var out Mat3
		for i := range out {
			if err := readF32s(r, out[i][:]); err != nil {
				return nil, err
			}
		}
		return out, nil
	case 16:
		var out Mat3x4
		for i := range out {
			if err := readF32s(r, out[i][:]); err != nil {
				return nil, err
			}
		}
		return out, nil
	case 17:
		var out Mat4x3
		for i := range out {
			if err := readF32s(r, out[i][:]); err != nil {
				return nil, err
			}
		}
		return out, nil
	case 18:
		var out Mat4
		for i := range out {
			if err := readF32s(r, out[i][:]); err != nil {
				return nil, err
			}
		}
		return out, nil
	case 19:
		v, err := r.ReadU8()
		return Bool(v != 0), err
	case 24:
		v, err := r.ReadU64()
		return ULongLong(v), err
	case 26:
		v, err := r.ReadI64()
		return Long(v), err
	case 27:
		v, err := r.ReadI8()
		return Int8(v), err
	case 31:
		buf, err := r.ReadBytes(16)
		if err != nil {
			return nil, err
		}
		var out UUID
		copy(out[:], buf)
		return out, nil
	case 32:
		v, err := r.ReadI64()
		return Int64(v), err
	default:
		return nil, format.InvalidTypeID(typeID)
	}
}

func readI32s(r *bio.Reader, out []int32) error {
	for i := range out {
		v, err := r.ReadI32()
		if err != nil {
			return err
		}
		out[i] = v
	}
	return nil
}

func readF32s(r *bio.Reader, out []float32) error {
	for i := range out {
		v, err := r.ReadF32()
		if err != nil {
			return err
		}
		out[i] = v
	}
	return nil
}
