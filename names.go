package gencontinent

import "github.com/Flokey82/go_gens/genlanguage"

// riverName returns a deterministic fantasy name for the i-th retained
// river. Each river gets its own language seeded from the world seed, so
// names are stable across runs.
func (c *Continent) riverName(i int) string {
	lang := genlanguage.GenLanguage(int64(c.Seed) + int64(i))
	return lang.MakeName()
}
