package zeroshot

import "github.com/Veraticus/newslens/internal/model"

// size returns the number of entries in the cache.
func (c *resultCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// tryAcquire takes a token if one is available.
func (rl *rateLimiter) tryAcquire() bool {
	return rl.reserve() == 0
}

// available returns the whole tokens currently in the bucket.
func (rl *rateLimiter) available() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.refill()
	return int(rl.tokens)
}

func labelNames(scores model.LabelScores) []string {
	names := make([]string, len(scores))
	for i, s := range scores {
		names[i] = s.Label
	}
	return names
}
