package workouts

import (
	"encoding/json"
	"math"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const catalogKeyPrefix = "exercises||"

// ExerciseCatalogCache keeps the visible exercise list per user.
type ExerciseCatalogCache struct {
	cache *freecache.Cache
	ttl   time.Duration
}

func NewExerciseCatalogCache(sizeMB int, ttl time.Duration) *ExerciseCatalogCache {
	return &ExerciseCatalogCache{
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
		ttl:   ttl,
	}
}

func catalogKey(userID string) []byte {
	return []byte(catalogKeyPrefix + userID)
}

func (c *ExerciseCatalogCache) Get(userID string) ([]Exercise, bool) {
	if c == nil {
		return nil, false
	}

	val, err := c.cache.Get(catalogKey(userID))
	if err != nil {
		return nil, false
	}

	var exercises []Exercise
	if err := json.Unmarshal(val, &exercises); err != nil {
		log.Warnf("exercise catalog cache, unmarshal for user %s: %s", userID, err)
		c.cache.Del(catalogKey(userID))
		return nil, false
	}

	return exercises, true
}

func (c *ExerciseCatalogCache) Set(userID string, exercises []Exercise) {
	if c == nil {
		return
	}

	val, err := json.Marshal(exercises)
	if err != nil {
		log.Warnf("exercise catalog cache, marshal for user %s: %s", userID, err)
		return
	}

	if err := c.cache.Set(catalogKey(userID), val, c.expireSeconds()); err != nil {
		log.Debugf("exercise catalog cache, set for user %s: %s", userID, err)
	}
}

// expireSeconds rounds the ttl up to whole seconds; freecache reads 0 as no expiry.
func (c *ExerciseCatalogCache) expireSeconds() int {
	secs := int(math.Ceil(c.ttl.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

func (c *ExerciseCatalogCache) Invalidate(userID string) {
	if c == nil {
		return
	}
	c.cache.Del(catalogKey(userID))
}
