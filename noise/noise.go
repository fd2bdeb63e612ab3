// Package noise provides the seeded height field sampler for continent
// generation: layered opensimplex octaves combined into a bounded height
// value with a finite-difference gradient.
package noise

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/ojrac/opensimplex-go"
)

// Noise is a wrapper for opensimplex.Noise, initialized with
// a given seed, persistence, and number of octaves.
type Noise struct {
	Octaves     int
	Persistence float64
	Amplitudes  []float64
	Seed        int64
	OS          opensimplex.Noise
}

// NewNoise returns a new Noise.
func NewNoise(octaves int, persistence float64, seed int64) *Noise {
	n := &Noise{
		Octaves:     octaves,
		Persistence: persistence,
		Amplitudes:  make([]float64, octaves),
		Seed:        seed,
		OS:          opensimplex.NewNormalized(seed),
	}

	// Initialize the amplitudes.
	for i := range n.Amplitudes {
		n.Amplitudes[i] = math.Pow(persistence, float64(i))
	}

	return n
}

// Eval2 returns the noise value at the given point.
func (n *Noise) Eval2(x, y float64) float64 {
	var sum, sumOfAmplitudes float64
	for octave := 0; octave < n.Octaves; octave++ {
		frequency := 1 << octave
		fFreq := float64(frequency)
		sum += n.Amplitudes[octave] * n.OS.Eval2(x*fFreq, y*fFreq)
		sumOfAmplitudes += n.Amplitudes[octave]
	}
	return sum / sumOfAmplitudes
}

const (
	maskFrequency   = 0.004 // broad ocean / continent mask
	flatFrequency   = 0.008 // flatness mask damping the relief
	reliefFrequency = 0.02  // high frequency relief

	reliefOctaves     = 6
	reliefLacunarity  = 1.8
	reliefPersistence = 0.6
	derivativeFalloff = 0.35 // erosion-like damping of relief on steep slopes

	maskOctaves     = 2
	maskPersistence = 0.5

	maskExponent = 0.6
	maskWeight   = 0.65
	reliefWeight = 0.35
	flatScale    = 1.5

	gradEpsilon = 0.5 // step for finite-difference gradients, in world units
)

// Sampler is the deterministic height field used for continent generation.
// It layers a broad continent mask with derivative-damped relief octaves
// that are masked by a flatness field, so plains stay flat and mountain
// flanks keep their slopes without runaway spikes.
type Sampler struct {
	Seed   uint32
	mask   *Noise
	flat   opensimplex.Noise
	relief opensimplex.Noise
}

// NewSampler returns a sampler for the given 32-bit seed.
func NewSampler(seed uint32) *Sampler {
	return &Sampler{
		Seed:   seed,
		mask:   NewNoise(maskOctaves, maskPersistence, int64(seed)),
		flat:   opensimplex.NewNormalized(int64(seed) + 1),
		relief: opensimplex.NewNormalized(int64(seed) + 2),
	}
}

// Height returns the height at the given world position, clamped to [0,1].
func (s *Sampler) Height(x, y float64) float64 {
	mask := math.Pow(s.mask.Eval2(x*maskFrequency, y*maskFrequency), maskExponent)
	flat := s.flat.Eval2(x*flatFrequency, y*flatFrequency)
	flat *= flat * flatScale
	h := maskWeight*mask + reliefWeight*s.reliefAt(x, y)*flat
	if math.IsNaN(h) {
		// Degenerate noise output is a data quality anomaly, not fatal.
		return 0
	}
	if h < 0 {
		return 0
	}
	if h > 1 {
		return 1
	}
	return h
}

// reliefAt accumulates the relief octaves. Each octave's contribution is
// damped by the running derivative, so already-steep terrain receives less
// additional detail.
func (s *Sampler) reliefAt(x, y float64) float64 {
	var sum, sumOfAmplitudes float64
	var dx, dy float64
	amplitude := 1.0
	frequency := 1.0
	for octave := 0; octave < reliefOctaves; octave++ {
		fx := x * reliefFrequency * frequency
		fy := y * reliefFrequency * frequency
		v := s.relief.Eval2(fx, fy)
		dx += amplitude * (s.relief.Eval2(fx+gradEpsilon, fy) - v) / gradEpsilon
		dy += amplitude * (s.relief.Eval2(fx, fy+gradEpsilon) - v) / gradEpsilon
		damp := 1 / (1 + derivativeFalloff*math.Hypot(dx, dy))
		sum += amplitude * v * damp
		sumOfAmplitudes += amplitude
		amplitude *= reliefPersistence
		frequency *= reliefLacunarity
	}
	return sum / sumOfAmplitudes
}

// Sample2 returns the height at the given world position together with the
// ascending gradient, estimated by central differences. Callers that want
// the downhill direction negate it.
func (s *Sampler) Sample2(x, y float64) (float64, vectors.Vec2) {
	h := s.Height(x, y)
	grad := vectors.Vec2{
		X: (s.Height(x+gradEpsilon, y) - s.Height(x-gradEpsilon, y)) / (2 * gradEpsilon),
		Y: (s.Height(x, y+gradEpsilon) - s.Height(x, y-gradEpsilon)) / (2 * gradEpsilon),
	}
	return h, grad
}
