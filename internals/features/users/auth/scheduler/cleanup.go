package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"mengemudiku_backend/internals/features/users/auth/model"
)

func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		// TTL from env (default: 7 days)
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Purging token_blacklist...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expiredTokens []model.TokenBlacklist
			if err := db.
				Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&expiredTokens).Error; err != nil {
				log.Printf("[CLEANUP ERROR] Failed to fetch expired tokens: %v", err)
			} else if len(expiredTokens) > 0 {
				if err := db.Delete(&expiredTokens).Error; err != nil {
					log.Printf("[CLEANUP ERROR] Failed to delete tokens: %v", err)
				} else {
					log.Printf("[CLEANUP] %d expired tokens deleted", len(expiredTokens))
				}
			}

			// also drop refresh tokens that expired before the cutoff
			if err := db.Exec(
				"DELETE FROM refresh_tokens WHERE expires_at < ?", deleteBefore,
			).Error; err != nil {
				log.Printf("[CLEANUP ERROR] Failed to delete refresh tokens: %v", err)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
