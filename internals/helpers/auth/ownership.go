package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ukmfilm_backend/internals/constants"
	helper "ukmfilm_backend/internals/helpers"
)

// IsAdmin: role "admin" dari token.
func IsAdmin(c *fiber.Ctx) bool {
	return helper.GetUserRole(c) == constants.RoleAdmin
}

// EnsureOwnerOrAdmin: admin boleh semua; editor hanya resource miliknya.
// resource dipakai untuk pesan error, mis. "artikel".
func EnsureOwnerOrAdmin(c *fiber.Ctx, ownerID uuid.UUID, resource string) error {
	if IsAdmin(c) {
		return nil
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if ownerID == uuid.Nil || ownerID != userID {
		return fiber.NewError(fiber.StatusForbidden, constants.OwnershipError(resource))
	}
	return nil
}
