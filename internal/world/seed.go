package world

// hash2 is a SplitMix64 style integer hash, stable across runs for the same inputs.
func hash2(x int64, z int64, seed int64) uint64 {
	v := uint64(x) + (uint64(z) << 1) + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return v
}

// SubSeed derives the layer RNG seed of chunk (cx, cz) from the world seed.
// hash2 folds x + 2z, so both coordinates are packed into x.
func SubSeed(seed uint32, cx, cz int) uint32 {
	packed := uint64(uint32(cx))<<32 | uint64(uint32(cz))
	h := hash2(int64(packed), 0, int64(seed))
	return uint32(h ^ (h >> 32))
}
