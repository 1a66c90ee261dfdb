// Copyright © 2021 Kaleido, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
	"github.com/karlseguin/ccache"
)

// CConfig names the pair of root keys that size a cache, and its time to live.
// Both keys must share a category prefix, such as "identity.cache.limit" and
// "identity.cache.ttl", which becomes the name of the cache.
type CConfig struct {
	ctx               context.Context
	maxLimitConfigKey config.RootKey
	ttlConfigKey      config.RootKey
}

func NewCacheConfig(ctx context.Context, maxLimitConfigKey config.RootKey, ttlConfigKey config.RootKey) *CConfig {
	return &CConfig{
		ctx:               ctx,
		maxLimitConfigKey: maxLimitConfigKey,
		ttlConfigKey:      ttlConfigKey,
	}
}

func (cc *CConfig) Category() (string, error) {
	if cc.maxLimitConfigKey == "" {
		return "", i18n.NewError(cc.ctx, i18n.MsgCacheMissSizeLimitKey)
	}
	if cc.ttlConfigKey == "" {
		return "", i18n.NewError(cc.ctx, i18n.MsgCacheMissTTLKey)
	}

	categoryFromLimit, _ := parseConfigKeyString(string(cc.maxLimitConfigKey))
	categoryFromTTL, _ := parseConfigKeyString(string(cc.ttlConfigKey))
	if categoryFromLimit != categoryFromTTL {
		return "", i18n.NewError(cc.ctx, i18n.MsgCacheConfigKeyMismatch, cc.maxLimitConfigKey, cc.ttlConfigKey, categoryFromLimit, categoryFromTTL)
	}
	return categoryFromLimit, nil
}

func parseConfigKeyString(configKey string) (string, string) {
	keyParts := strings.Split(configKey, ".")
	categoryString := strings.Join(keyParts[:len(keyParts)-1], ".")
	configName := keyParts[len(keyParts)-1]
	return categoryString, configName
}

func (cc *CConfig) MaxSize() (int64, error) {
	_, sizeConfigName := parseConfigKeyString(string(cc.maxLimitConfigKey))
	switch sizeConfigName {
	case "limit":
		return config.GetInt64(cc.maxLimitConfigKey), nil
	case "size":
		return config.GetByteSize(cc.maxLimitConfigKey), nil
	default:
		return 0, i18n.NewError(cc.ctx, i18n.MsgCacheUnexpectedSizeKey, sizeConfigName)
	}
}

func (cc *CConfig) TTL() time.Duration {
	return config.GetDuration(cc.ttlConfigKey)
}

// CInterface is a TTL cache, where each hit extends the life of the entry
type CInterface interface {
	Get(key string) interface{}
	Set(key string, val interface{})
	Delete(key string) bool
	Clear()
}

type Manager interface {
	GetCache(cc *CConfig) (CInterface, error)
	ListCacheNames() []string
}

type cacheManager struct {
	ctx    context.Context
	mux    sync.Mutex
	caches map[string]*ccacheWrapper
}

func NewCacheManager(ctx context.Context) Manager {
	return &cacheManager{
		ctx:    ctx,
		caches: make(map[string]*ccacheWrapper),
	}
}

func (cm *cacheManager) ListCacheNames() []string {
	cm.mux.Lock()
	defer cm.mux.Unlock()
	names := make([]string, 0, len(cm.caches))
	for name := range cm.caches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetCache returns the same cache for every request with the same category
func (cm *cacheManager) GetCache(cc *CConfig) (CInterface, error) {
	name, err := cc.Category()
	if err != nil {
		return nil, err
	}
	maxSize, err := cc.MaxSize()
	if err != nil {
		return nil, err
	}

	cm.mux.Lock()
	defer cm.mux.Unlock()
	if c, ok := cm.caches[name]; ok {
		return c, nil
	}
	c := &ccacheWrapper{
		name:  name,
		ttl:   cc.TTL(),
		cache: ccache.New(ccache.Configure().MaxSize(maxSize)),
	}
	cm.caches[name] = c
	return c, nil
}

type ccacheWrapper struct {
	name  string
	ttl   time.Duration
	cache *ccache.Cache
}

func (c *ccacheWrapper) Get(key string) interface{} {
	if cached := c.cache.Get(key); cached != nil && !cached.Expired() {
		cached.Extend(c.ttl)
		return cached.Value()
	}
	return nil
}

func (c *ccacheWrapper) Set(key string, val interface{}) {
	c.cache.Set(key, val, c.ttl)
}

func (c *ccacheWrapper) Delete(key string) bool {
	return c.cache.Delete(key)
}

func (c *ccacheWrapper) Clear() {
	c.cache.Clear()
}
