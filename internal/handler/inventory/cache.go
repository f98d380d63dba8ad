// File: internal/handler/inventory/cache.go
package inventory

import (
	"context"
	"fmt"
	"time"

	"car-lot/internal/cache"
	"car-lot/internal/store"
	"car-lot/internal/worker"

	"github.com/redis/go-redis/v9"
)

const (
	// listCacheTTL 清單快取存活時間，過期自然淘汰舊版本鍵
	listCacheTTL = 30 * time.Second
	// listVersionKey 清單版本計數器，異動庫存即遞增使舊快取失效
	listVersionKey = "inventory:ver"
)

// listCacheKey 以版本號加查詢條件組成快取鍵
func listCacheKey(ver int64, f store.CarFilter) string {
	key := fmt.Sprintf("inventory:%d", ver)
	if f.MaxPrice != nil {
		key += fmt.Sprintf(":price<=%d", *f.MaxPrice)
	}
	if f.MaxMileage != nil {
		key += fmt.Sprintf(":mileage<=%d", *f.MaxMileage)
	}
	if f.Color != nil {
		key += ":color=" + *f.Color
	}
	return key
}

// listVersion 讀取目前清單版本，回傳是否可使用快取
// 鍵不存在視為版本 0；Redis 故障時跳過快取直接查庫
func listVersion(ctx context.Context, rdb cache.Cache) (int64, bool) {
	ver, err := rdb.Get(ctx, listVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return 0, false
	}
	return ver, true
}

// bumpListVersion 於背景遞增清單版本，讓既有快取失效
// 遞增失敗僅代表舊快取最多再活 listCacheTTL，不影響正確性
func bumpListVersion(rdb cache.Cache, wp worker.Pool) {
	wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = rdb.Incr(ctx, listVersionKey).Err()
	})
}
