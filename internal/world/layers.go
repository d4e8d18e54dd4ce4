package world

import "fmt"

// Layers holds the elevation thresholds used to classify a column.
// Thresholds are block rows; variations are per-cell sub-surface depths.
type Layers struct {
	WaterLevel        int
	GrassLevel        int
	DirtLevel         int
	StoneLevel        int
	LayerVariationMin int
	LayerVariationMax int
}

// DefaultLayers returns thresholds sized for a 128 block high chunk.
func DefaultLayers() Layers {
	return Layers{
		WaterLevel:        40,
		GrassLevel:        56,
		DirtLevel:         72,
		StoneLevel:        92,
		LayerVariationMin: 1,
		LayerVariationMax: 4,
	}
}

// Validate checks that the thresholds ascend and the variation range is non-empty.
func (l Layers) Validate() error {
	if l.WaterLevel < 0 || l.WaterLevel > l.GrassLevel || l.GrassLevel > l.DirtLevel || l.DirtLevel > l.StoneLevel {
		return fmt.Errorf("%w: thresholds {%d, %d, %d, %d} not ascending", ErrInvalidLayers,
			l.WaterLevel, l.GrassLevel, l.DirtLevel, l.StoneLevel)
	}
	if l.LayerVariationMin < 0 || l.LayerVariationMin >= l.LayerVariationMax {
		return fmt.Errorf("%w: variation {%d - %d} (min >= max)", ErrInvalidLayers,
			l.LayerVariationMin, l.LayerVariationMax)
	}
	return nil
}

// surface returns the block capping a column of height h.
func (l Layers) surface(h int) BlockType {
	switch {
	case h < l.WaterLevel:
		return BlockSand
	case h < l.GrassLevel:
		return BlockGrass
	case h < l.DirtLevel:
		return BlockGrassSide
	case h < l.StoneLevel:
		return BlockStone
	default:
		return BlockSnow
	}
}

// subsurface returns the block filling the top layer under a column of height h.
func (l Layers) subsurface(h int) BlockType {
	if h < l.WaterLevel {
		return BlockSand
	}
	return BlockDirt
}
