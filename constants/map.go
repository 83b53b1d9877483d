package constants

// Map dimensions (world space, cells)
const (
	MapWidth  = 200
	MapHeight = 200
)

// Noise sampling
const (
	// NoiseFrequency scales normalized world coordinates before sampling
	NoiseFrequency = 10.0

	// DefaultNoiseSeed is the seed used when none is given on the command line
	DefaultNoiseSeed = 10
)
