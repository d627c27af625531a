package helper

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validate dipakai bersama oleh controller (validator aman untuk concurrent use).
var Validate = NewValidator()

var codePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// NewValidator: validator dengan tag custom
//   - code: huruf kecil, angka, underscore ("leadership", "wakil_ketua_umum")
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("code", func(fl validator.FieldLevel) bool {
		return codePattern.MatchString(fl.Field().String())
	})
	return v
}

// Normalizer: DTO yang merapikan input (trim, lowercase) sebelum divalidasi.
type Normalizer interface {
	Normalize()
}

// ValidationFailed membawa error per-field dari validator.
type ValidationFailed struct {
	Fields map[string][]string
}

func (e *ValidationFailed) Error() string { return "validation failed" }

// BindAndValidate: parse body → dst, Normalize() bila ada, lalu validasi struct.
// Error: *fiber.Error (400) untuk body rusak, *ValidationFailed untuk validasi.
func BindAndValidate(c *fiber.Ctx, v *validator.Validate, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}
	if v == nil {
		v = Validate
	}
	if err := v.Struct(dst); err != nil {
		return &ValidationFailed{Fields: ValidationErrorsToMap(err)}
	}
	return nil
}

// WriteError menulis error apa pun ke envelope standar.
func WriteError(c *fiber.Ctx, err error) error {
	var vf *ValidationFailed
	if errors.As(err, &vf) {
		return JsonValidationError(c, vf.Fields)
	}
	return FromFiberError(c, err)
}
