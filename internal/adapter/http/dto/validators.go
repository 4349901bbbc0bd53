package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/holiman/uint256"
)

var (
	safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)
	uintDecRe    = regexp.MustCompile(`^[0-9]{1,78}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}
}

// RegisterValidators installs the custom tags on v.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("safe_id", validateSafeID)
	_ = v.RegisterValidation("eth_addr", validateEthAddress)
	_ = v.RegisterValidation("uint_dec", validateUintDec)
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeStringRe.MatchString(fl.Field().String())
}

// validateEthAddress accepts 0x-prefixed 20-byte hex addresses.
func validateEthAddress(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// validateUintDec accepts unsigned base-10 integers. Range is checked by ParseAmount.
func validateUintDec(fl validator.FieldLevel) bool {
	return uintDecRe.MatchString(fl.Field().String())
}

// ParseAmount converts a validated decimal field into a 256-bit amount.
func ParseAmount(field, s string) (*uint256.Int, error) {
	v, err := domain.ParseAmount(s)
	if err != nil {
		return nil, apperror.Validation(field + ": " + err.Error())
	}
	return v, nil
}

// ParseAddress converts a hex field into an address.
func ParseAddress(field, s string) (common.Address, error) {
	addr, ok := domain.ParseAddress(s)
	if !ok {
		return common.Address{}, apperror.ErrInvalidAddress(field)
	}
	return addr, nil
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
