package trips

import (
	"bytes"
	"log"
)

// tableCache memoizes full, unfiltered tables so a restart on the same city
// does not re-read its file. Tables are immutable, so cached ones are shared.
type tableCache struct {
	tables map[string]*Table
	hits   int
}

func newTableCache() *tableCache {
	return &tableCache{tables: map[string]*Table{}}
}

func (c *tableCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

func (c *tableCache) get(city, path string, load func() (*Table, error)) (*Table, error) {
	key := c.memoKey(city, path)
	if t, ok := c.tables[key]; ok {
		c.hits++
		log.Printf("cache hit for %s (%d hits)", city, c.hits)
		return t, nil
	}
	t, err := load()
	if err != nil {
		return nil, err
	}
	c.tables[key] = t
	return t, nil
}
