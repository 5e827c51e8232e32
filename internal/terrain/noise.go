package terrain

import (
	"math"
)

// Deterministic 2D gradient noise on an integer lattice. Gradients come from
// an integer hash, so the same coordinates and seed always produce the same
// value, with no package-level state.

// fade is the quintic smoothstep kernel 6t^5 - 15t^4 + 10t^3.
func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// hash2 is a SplitMix64-style integer hash, stable across runs.
func hash2(x, z int32, seed int64) uint64 {
	v := uint64(uint32(x)) + uint64(uint32(z))<<32 + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return v
}

// gradients are the eight lattice directions used for the dot product.
var gradients = [8][2]float32{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{0.7071, 0.7071}, {-0.7071, 0.7071}, {0.7071, -0.7071}, {-0.7071, -0.7071},
}

// gradDot returns the dot product of the lattice gradient at (gx, gz) with
// the offset vector from the lattice point to (x, z).
func gradDot(gx, gz int32, x, z float32, seed int64) float32 {
	g := gradients[hash2(gx, gz, seed)&7]
	dx := x - float32(gx)
	dz := z - float32(gz)
	return g[0]*dx + g[1]*dz
}

// gradientNoise returns lattice-gradient noise at (x, z), roughly in [-1, 1].
func gradientNoise(x, z float32, seed int64) float32 {
	x0 := int32(math.Floor(float64(x)))
	z0 := int32(math.Floor(float64(z)))
	x1 := x0 + 1
	z1 := z0 + 1

	fx := fade(x - float32(x0))
	fz := fade(z - float32(z0))

	d00 := gradDot(x0, z0, x, z, seed)
	d10 := gradDot(x1, z0, x, z, seed)
	d01 := gradDot(x0, z1, x, z, seed)
	d11 := gradDot(x1, z1, x, z, seed)

	i0 := lerp(d00, d10, fx)
	i1 := lerp(d01, d11, fx)
	return lerp(i0, i1, fz)
}

// layeredNoise sums three octaves of gradient noise, each octave's weight
// halving and frequency doubling, normalized into [0, 1].
func layeredNoise(x, z float32, seed int64) float32 {
	const octaves = 3

	sum := float32(0)
	norm := float32(0)
	amplitude := float32(1)
	frequency := float32(1)

	for i := 0; i < octaves; i++ {
		sum += gradientNoise(x*frequency, z*frequency, seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= 0.5
		frequency *= 2
	}

	v := sum/norm*0.5 + 0.5
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}
