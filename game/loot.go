package game

import "math/rand"

// LootCrate 纯装饰，没有拾取逻辑
type LootCrate struct {
	Position Vec3 `json:"position"`
}

// ScatterLoot 开局一次性撒点
func ScatterLoot(n int, rng *rand.Rand) []LootCrate {
	crates := make([]LootCrate, n)
	for i := range crates {
		crates[i].Position = Vec3{
			X: (rng.Float64() - 0.5) * SpawnSpread,
			Y: LootHeight,
			Z: (rng.Float64() - 0.5) * SpawnSpread,
		}
	}
	return crates
}
