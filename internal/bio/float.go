package bio

import "math"

func mathFloat32(bits uint32) float32 { return math.Float32frombits(bits) }
func mathFloat64(bits uint64) float64 { return math.Float64frombits(bits) }

func mathFloat32Bits(v float32) uint32 { return math.Float32bits(v) }
func mathFloat64Bits(v float64) uint64 { return math.Float64bits(v) }
