package handler

import (
	"time"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/http/dto"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/http/middleware"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/apperror"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
)

// callerOrAbort returns the verified signer, writing SEC_001 when the route was not authenticated.
func callerOrAbort(c *gin.Context) (common.Address, bool) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrMissingCredentials())
		return common.Address{}, false
	}
	return caller, true
}

// bind decodes and sanitizes a JSON body, writing REQ_001 on failure.
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

// amountParam parses a decimal from a query parameter or path value.
func amountParam(c *gin.Context, field, raw string) (*uint256.Int, bool) {
	v, err := dto.ParseAmount(field, raw)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return v, true
}

func addressParam(c *gin.Context, field, raw string) (common.Address, bool) {
	addr, err := dto.ParseAddress(field, raw)
	if err != nil {
		response.Error(c, err)
		return common.Address{}, false
	}
	return addr, true
}

func dec(v *uint256.Int) string {
	return domain.OrZero(v).Dec()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
