package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"ukmfilm_backend/internals/configs"
	"ukmfilm_backend/internals/features/users/auth/service"
	helper "ukmfilm_backend/internals/helpers"
)

type AuthController struct {
	DB     *gorm.DB
	Secret string
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Secret: configs.JWTSecret}
}

/* ============================================
   LOGOUT
   POST /api/admin/auth/logout
============================================ */

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	accessToken := helper.GetRawAccessToken(c)
	if accessToken != "" {
		if err := service.Add(c.UserContext(), ac.DB, accessToken, ac.Secret, expiryFromLocals(c)); err != nil {
			configs.Log.Warnw("gagal blacklist token", "err", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
		}
	} else {
		configs.Log.Info("logout tanpa access token; lanjut clear cookie (idempotent)")
	}

	// Hapus cookie access_token kalau dipakai
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
	})

	return helper.JsonOK(c, "Logout berhasil", nil)
}

// Me: identitas dari token (untuk panel admin)
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	name, _ := c.Locals(helper.LocUserName).(string)
	return helper.JsonOK(c, "ok", fiber.Map{
		"user_id":   userID,
		"user_name": name,
		"role":      helper.GetUserRole(c),
	})
}

// exp dari claims yang sudah diverifikasi middleware; fallback 1 jam.
func expiryFromLocals(c *fiber.Ctx) time.Time {
	if claims, ok := c.Locals(helper.LocJWTClaims).(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(exp), 0)
		}
	}
	return time.Now().Add(time.Hour)
}
