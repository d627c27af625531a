package scheduler

import (
	"context"
	"strconv"
	"time"

	"gorm.io/gorm"

	"ukmfilm_backend/internals/configs"
	"ukmfilm_backend/internals/features/users/auth/service"
)

// BlacklistTTL dibaca dari TOKEN_BLACKLIST_TTL_DAYS (default: 7 hari).
func BlacklistTTL() time.Duration {
	ttlDays := 7
	if parsed, err := strconv.Atoi(configs.GetEnv("TOKEN_BLACKLIST_TTL_DAYS")); err == nil && parsed >= 0 {
		ttlDays = parsed
	}
	return time.Duration(ttlDays) * 24 * time.Hour
}

const cleanupBatch = 100

// RunBlacklistCleanup sekali jalan: hapus token yang expired lebih lama dari ttl,
// per batch sampai habis (atau ctx dibatalkan).
func RunBlacklistCleanup(ctx context.Context, db *gorm.DB, ttl time.Duration) {
	configs.Log.Info("[CLEANUP] Menjalankan pembersihan token_blacklist...")

	before := time.Now().Add(-ttl)
	var total int64
	for {
		n, err := service.PurgeExpired(ctx, db, before, cleanupBatch)
		if err != nil {
			configs.Log.Errorf("[CLEANUP ERROR] Gagal hapus token: %v", err)
			return
		}
		total += n
		if n < cleanupBatch || ctx.Err() != nil {
			break
		}
	}

	if total > 0 {
		configs.Log.Infof("[CLEANUP] %d token kadaluarsa dihapus", total)
	} else {
		configs.Log.Info("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
	}
}

// StartBlacklistCleanupScheduler berjalan tiap `every` sampai ctx dibatalkan.
// done ditutup setelah goroutine selesai.
func StartBlacklistCleanupScheduler(ctx context.Context, db *gorm.DB, ttl, every time.Duration) (done <-chan struct{}) {
	if every <= 0 {
		every = 24 * time.Hour
	}
	ch := make(chan struct{})
	go func() {
		defer close(ch)
		RunBlacklistCleanup(ctx, db, ttl)

		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				RunBlacklistCleanup(ctx, db, ttl)
			}
		}
	}()
	return ch
}
