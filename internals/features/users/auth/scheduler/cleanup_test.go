package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ukmfilm_backend/internals/features/users/auth/model"
	"ukmfilm_backend/internals/features/users/auth/service"
)

const secret = "rahasia-uji"

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.TokenBlacklist{}))
	return db
}

func countRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Unscoped().Model(&model.TokenBlacklist{}).Count(&n).Error)
	return n
}

func TestRunBlacklistCleanup_DrainsBacklogBeyondOneBatch(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	old := time.Now().Add(-30 * 24 * time.Hour).UTC()

	rows := make([]model.TokenBlacklist, 0, 2*cleanupBatch+37)
	for i := 0; i < cap(rows); i++ {
		rows = append(rows, model.TokenBlacklist{Token: fmt.Sprintf("hash-%03d", i), ExpiredAt: old})
	}
	require.NoError(t, db.CreateInBatches(&rows, 100).Error)
	require.NoError(t, service.Add(ctx, db, "token-aktif", secret, time.Now().Add(time.Hour)))

	RunBlacklistCleanup(ctx, db, 7*24*time.Hour)
	assert.EqualValues(t, 1, countRows(t, db))
}

func TestRunBlacklistCleanup_RemovesOnlyOldRows(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, service.Add(ctx, db, "token-lama", secret, now.Add(-10*24*time.Hour)))
	require.NoError(t, service.Add(ctx, db, "token-baru-expired", secret, now.Add(-time.Hour)))
	require.NoError(t, service.Add(ctx, db, "token-aktif", secret, now.Add(time.Hour)))

	RunBlacklistCleanup(ctx, db, 7*24*time.Hour)
	assert.EqualValues(t, 2, countRows(t, db))

	black, err := service.IsBlacklisted(ctx, db, "token-aktif", secret)
	require.NoError(t, err)
	assert.True(t, black)

	// expired tapi belum lewat TTL: sudah tidak dianggap blacklist
	black, err = service.IsBlacklisted(ctx, db, "token-baru-expired", secret)
	require.NoError(t, err)
	assert.False(t, black)
}

func TestStartBlacklistCleanupScheduler_StopsOnCancel(t *testing.T) {
	db := openTestDB(t)
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	require.NoError(t, service.Add(context.Background(), db, "token-lama", secret, time.Now().Add(-48*time.Hour)))

	ctx, cancel := context.WithCancel(context.Background())
	done := StartBlacklistCleanupScheduler(ctx, db, 24*time.Hour, 10*time.Millisecond)

	require.Eventually(t, func() bool { return countRows(t, db) == 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler tidak berhenti setelah cancel")
	}
}

func TestBlacklistTTL(t *testing.T) {
	t.Setenv("TOKEN_BLACKLIST_TTL_DAYS", "3")
	assert.Equal(t, 3*24*time.Hour, BlacklistTTL())

	t.Setenv("TOKEN_BLACKLIST_TTL_DAYS", "bukan-angka")
	assert.Equal(t, 7*24*time.Hour, BlacklistTTL())
}
