package world

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// BlockType identifies the material of a single block.
type BlockType uint8

const (
	BlockAir BlockType = iota
	BlockBoundary
	BlockWater
	BlockSand
	BlockDirt
	BlockGrassSide
	BlockGrass
	BlockStone
	BlockSnowSide
	BlockSnow
)

// MaxBlockType is the largest valid BlockType.
const MaxBlockType = BlockSnow

var blockNames = [...]string{
	BlockAir:       "AIR",
	BlockBoundary:  "BOUNDARY",
	BlockWater:     "WATER",
	BlockSand:      "SAND",
	BlockDirt:      "DIRT",
	BlockGrassSide: "GRASS_SIDE",
	BlockGrass:     "GRASS",
	BlockStone:     "STONE",
	BlockSnowSide:  "SNOW_SIDE",
	BlockSnow:      "SNOW",
}

// Export palette, one entry per block type.
var blockColors = [...]color.RGBA{
	BlockAir:       colornames.Lightskyblue,
	BlockBoundary:  colornames.Black,
	BlockWater:     colornames.Royalblue,
	BlockSand:      colornames.Sandybrown,
	BlockDirt:      colornames.Saddlebrown,
	BlockGrassSide: colornames.Olivedrab,
	BlockGrass:     colornames.Forestgreen,
	BlockStone:     colornames.Gray,
	BlockSnowSide:  colornames.Gainsboro,
	BlockSnow:      colornames.White,
}

// Valid reports whether t is at most MaxBlockType.
func (t BlockType) Valid() bool {
	return t <= MaxBlockType
}

func (t BlockType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("UNKNOWN(0x%02x)", uint8(t))
	}
	return blockNames[t]
}

// Color returns the export color of t. Unknown types render as Air.
func (t BlockType) Color() color.RGBA {
	if !t.Valid() {
		return blockColors[BlockAir]
	}
	return blockColors[t]
}

// IsSolid reports whether t counts towards a column's surface height.
func (t BlockType) IsSolid() bool {
	return t != BlockAir && t != BlockWater && t.Valid()
}
