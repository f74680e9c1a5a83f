package transmute

import "math"

// Signaling-NaN fixup for data transmuted into floating-point types.
// A transmuted bit pattern may be a signaling NaN, which is legal but
// unwieldy; these helpers quieten it by setting the highest fraction
// bit. Pure bit manipulation, unrelated to the guard or alignment
// machinery.

// DesignaliseFloat32 returns f unchanged unless it is a signaling NaN,
// in which case the quiet NaN with the same payload is returned.
func DesignaliseFloat32(f float32) float32 {
	return Float32FromBitsDesignalised(math.Float32bits(f))
}

// DesignaliseFloat64 returns f unchanged unless it is a signaling NaN,
// in which case the quiet NaN with the same payload is returned.
func DesignaliseFloat64(f float64) float64 {
	return Float64FromBitsDesignalised(math.Float64bits(f))
}

// Float32FromBitsDesignalised reinterprets bits as a float32, quietening
// a signaling NaN.
func Float32FromBitsDesignalised(bits uint32) float32 {
	const (
		expMask   = 0x7F80_0000
		qnanMask  = 0x0040_0000
		fractMask = 0x007F_FFFF
	)
	if bits&expMask == expMask && bits&fractMask != 0 {
		bits |= qnanMask
	}
	return math.Float32frombits(bits)
}

// Float64FromBitsDesignalised reinterprets bits as a float64, quietening
// a signaling NaN.
func Float64FromBitsDesignalised(bits uint64) float64 {
	const (
		expMask   = 0x7FF0_0000_0000_0000
		qnanMask  = 0x0008_0000_0000_0000
		fractMask = 0x000F_FFFF_FFFF_FFFF
	)
	if bits&expMask == expMask && bits&fractMask != 0 {
		bits |= qnanMask
	}
	return math.Float64frombits(bits)
}
