package handler

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "riskdesk/pkg/domain-errors"
)

func TestValidateSwiftRequest_Validate(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		req := &ValidateSwiftRequest{SwiftCode: "  CHASUS33  "}
		require.NoError(t, req.Validate())
		assert.Equal(t, "CHASUS33", req.SwiftCode)
	})

	t.Run("rejects an empty code", func(t *testing.T) {
		req := &ValidateSwiftRequest{SwiftCode: "   "}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeValidation, dErrors.CodeOf(err))
	})

	t.Run("malformed codes pass validation", func(t *testing.T) {
		// Structure is the validator's verdict, not a request precondition.
		req := &ValidateSwiftRequest{SwiftCode: "not-a-swift-code"}
		assert.NoError(t, req.Validate())
	})
}

func TestAnalyzeRequest_Validate(t *testing.T) {
	valid := func() *AnalyzeRequest {
		return &AnalyzeRequest{
			SwiftCode: "DEUTDEFF",
			Amount:    decimal.NewFromInt(450),
		}
	}

	t.Run("applies currency and description defaults", func(t *testing.T) {
		req := valid()
		require.NoError(t, req.Validate())
		assert.Equal(t, "USD", req.Currency)
		assert.Equal(t, "Transfer", req.Description)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		req := valid()
		req.Currency = "EUR"
		req.Description = "invoice 42"
		require.NoError(t, req.Validate())
		assert.Equal(t, "EUR", req.Currency)
		assert.Equal(t, "invoice 42", req.Description)
	})

	t.Run("rejects a missing swift code", func(t *testing.T) {
		req := valid()
		req.SwiftCode = ""
		assert.Error(t, req.Validate())
	})

	t.Run("rejects an overlong swift code", func(t *testing.T) {
		req := valid()
		req.SwiftCode = strings.Repeat("A", 12)
		assert.Error(t, req.Validate())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
			req := valid()
			req.Amount = amount
			assert.Error(t, req.Validate(), "amount %s", amount)
		}
	})

	t.Run("rejects an overlong description", func(t *testing.T) {
		req := valid()
		req.Description = strings.Repeat("x", 501)
		assert.Error(t, req.Validate())
	})
}

func TestDetectErrorsRequest_Validate(t *testing.T) {
	t.Run("accepts a positive amount", func(t *testing.T) {
		req := &DetectErrorsRequest{Amount: decimal.NewFromInt(100)}
		assert.NoError(t, req.Validate())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		req := &DetectErrorsRequest{Amount: decimal.Zero}
		assert.Error(t, req.Validate())
	})
}

func TestParseCounterpartyCode(t *testing.T) {
	code, err := parseCounterpartyCode(" CHASUS33 ")
	require.NoError(t, err)
	assert.Equal(t, "CHASUS33", code.String())

	_, err = parseCounterpartyCode("nope")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeValidation, dErrors.CodeOf(err))
}
