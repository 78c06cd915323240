package repositories

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
	"github.com/sirupsen/logrus"

	"vacation-rentals/domain"
	"vacation-rentals/utils"
)

// ListingCacheKey is the only key the listing page uses; the listing is
// unfiltered so there is nothing to vary it by.
const ListingCacheKey = "properties:all"

// CacheRepository caches property listings. Every entry is tagged with
// the key's generation at the time its rows were read; Delete bumps the
// generation, so an entry built from a read that raced an invalidation
// is never served.
type CacheRepository interface {
	Get(key string) ([]domain.VacationProperty, bool)
	// Generation returns the current generation of key. ok is false when
	// it cannot be read, in which case nothing should be cached.
	Generation(key string) (gen uint64, ok bool)
	Set(key string, gen uint64, properties []domain.VacationProperty)
	Delete(key string)
}

type cacheData struct {
	Generation uint64                    `json:"generation"`
	Properties []domain.VacationProperty `json:"properties"`
}

// cacheRepository uses ccache in-process, or memcached alone when
// MEMCACHED_HOST is set so every instance sees the same invalidations.
type cacheRepository struct {
	localCache      *ccache.Cache[*cacheData]
	memcachedClient *memcache.Client
	ttl             time.Duration

	mu          sync.Mutex
	generations map[string]uint64
}

// NewCacheRepository builds the cache. An empty memcachedHost keeps the
// cache process-local.
func NewCacheRepository(memcachedHost string, ttl time.Duration) CacheRepository {
	r := &cacheRepository{
		ttl:         ttl,
		generations: make(map[string]uint64),
	}

	if memcachedHost != "" {
		r.memcachedClient = memcache.New(memcachedHost)
		utils.Logger.Infof("Listing cache backed by memcached at %s", memcachedHost)
	} else {
		r.localCache = ccache.New(ccache.Configure[*cacheData]().MaxSize(100))
	}

	return r
}

func generationKey(key string) string {
	return key + ":gen"
}

// Generation reads the local counter, or the shared counter in memcached.
// A missing memcached counter is generation 0.
func (r *cacheRepository) Generation(key string) (uint64, bool) {
	if r.memcachedClient == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.generations[key], true
	}

	item, err := r.memcachedClient.Get(generationKey(key))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return 0, true
	}
	if err != nil {
		utils.Logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Memcached generation read failed")
		return 0, false
	}

	gen, err := strconv.ParseUint(strings.TrimSpace(string(item.Value)), 10, 64)
	if err != nil {
		utils.Logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Corrupt cache generation")
		return 0, false
	}
	return gen, true
}

// Get returns the cached listing only if it was built at the current
// generation.
func (r *cacheRepository) Get(key string) ([]domain.VacationProperty, bool) {
	gen, ok := r.Generation(key)
	if !ok {
		return nil, false
	}

	data, ok := r.load(key)
	if !ok || data.Generation != gen {
		return nil, false
	}
	return data.Properties, true
}

func (r *cacheRepository) load(key string) (*cacheData, bool) {
	if r.memcachedClient == nil {
		item := r.localCache.Get(key)
		if item == nil || item.Expired() {
			return nil, false
		}
		utils.Logger.Debugf("Cache HIT (local): key=%s", key)
		return item.Value(), true
	}

	memcachedItem, err := r.memcachedClient.Get(key)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			utils.Logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Memcached get failed")
		}
		return nil, false
	}

	var data cacheData
	if err := json.Unmarshal(memcachedItem.Value, &data); err != nil {
		utils.Logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Corrupt listing cache entry")
		return nil, false
	}
	utils.Logger.Debugf("Cache HIT (memcached): key=%s", key)
	return &data, true
}

// Set stores properties read at generation gen. It is skipped when the
// generation has already moved on. Memcached failures are logged and
// otherwise ignored; the database stays the source of truth.
func (r *cacheRepository) Set(key string, gen uint64, properties []domain.VacationProperty) {
	if current, ok := r.Generation(key); !ok || current != gen {
		utils.Logger.Debugf("Cache SET skipped, stale generation: key=%s", key)
		return
	}

	data := &cacheData{Generation: gen, Properties: properties}
	if r.memcachedClient == nil {
		r.localCache.Set(key, data, r.ttl)
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		utils.Logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Marshal listing cache entry")
		return
	}

	if err := r.memcachedClient.Set(&memcache.Item{
		Key:        key,
		Value:      payload,
		Expiration: int32(r.ttl.Seconds()),
	}); err != nil {
		utils.Logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Memcached set failed")
	}
}

// Delete bumps the generation of key and evicts its entry.
func (r *cacheRepository) Delete(key string) {
	if r.memcachedClient == nil {
		r.mu.Lock()
		r.generations[key]++
		r.mu.Unlock()
		r.localCache.Delete(key)
		return
	}

	r.bumpSharedGeneration(key)
	if err := r.memcachedClient.Delete(key); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		utils.Logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Memcached delete failed")
	}
}

func (r *cacheRepository) bumpSharedGeneration(key string) {
	genKey := generationKey(key)

	_, err := r.memcachedClient.Increment(genKey, 1)
	if errors.Is(err, memcache.ErrCacheMiss) {
		// First bump; a concurrent Add from another instance means it
		// already exists, so increment again.
		err = r.memcachedClient.Add(&memcache.Item{Key: genKey, Value: []byte("1")})
		if errors.Is(err, memcache.ErrNotStored) {
			_, err = r.memcachedClient.Increment(genKey, 1)
		}
	}
	if err != nil {
		utils.Logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Memcached generation bump failed")
	}
}
