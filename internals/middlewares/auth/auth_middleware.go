// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/configs"
	blacklist "ukmfilm_backend/internals/features/users/auth/service"
	helper "ukmfilm_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Secret              string
	BlacklistChecker    func(ctx context.Context, rawToken string) (bool, error) // true = revoked
	AllowCookieFallback bool                                                      // pakai cookie access_token jika tidak ada Bearer
}

// AuthMiddleware: JWT + blacklist dari DB, secret dari configs.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	secret := configs.JWTSecret
	return AuthJWT(AuthJWTOpts{
		Secret:              secret,
		AllowCookieFallback: true,
		BlacklistChecker: func(ctx context.Context, raw string) (bool, error) {
			return blacklist.IsBlacklisted(ctx, db, raw, secret)
		},
	})
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw, err := extractBearerToken(c, o.AllowCookieFallback)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		// 2) Cek blacklist
		if o.BlacklistChecker != nil {
			black, err := o.BlacklistChecker(c.UserContext(), raw)
			if err != nil {
				configs.Log.Errorw("cek blacklist gagal", "err", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
			if black {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi sudah keluar. Silakan login lagi.")
			}
		}

		// 3) Parse + verifikasi algoritma (exp divalidasi oleh MapClaims.Valid)
		claims := jwt.MapClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			configs.Log.Debugw("token ditolak", "err", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token tidak valid")
		}
		if _, ok := claims["exp"]; !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token tanpa exp")
		}

		// 4) user_id wajib UUID
		userID, err := extractUserID(claims)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		c.Locals(helper.LocJWTClaims, claims)
		c.Locals(helper.LocUserID, userID.String())
		helper.SetRawAccessToken(c, raw)
		storeBasicClaimsToLocals(c, claims)

		return c.Next()
	}
}
