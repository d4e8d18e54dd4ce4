package config

import "craftgen/internal/world"

// Layers mirrors world.Layers with YAML keys.
type Layers struct {
	WaterLevel        int `yaml:"water_level"`
	GrassLevel        int `yaml:"grass_level"`
	DirtLevel         int `yaml:"dirt_level"`
	StoneLevel        int `yaml:"stone_level"`
	LayerVariationMin int `yaml:"variation_min"`
	LayerVariationMax int `yaml:"variation_max"`
}

func layersFrom(l world.Layers) Layers {
	return Layers{
		WaterLevel:        l.WaterLevel,
		GrassLevel:        l.GrassLevel,
		DirtLevel:         l.DirtLevel,
		StoneLevel:        l.StoneLevel,
		LayerVariationMin: l.LayerVariationMin,
		LayerVariationMax: l.LayerVariationMax,
	}
}

func (l Layers) toWorld() world.Layers {
	return world.Layers{
		WaterLevel:        l.WaterLevel,
		GrassLevel:        l.GrassLevel,
		DirtLevel:         l.DirtLevel,
		StoneLevel:        l.StoneLevel,
		LayerVariationMin: l.LayerVariationMin,
		LayerVariationMax: l.LayerVariationMax,
	}
}
