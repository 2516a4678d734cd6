package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/switchbox-service/internal/domain/dto"
)

func TestRequestBuilder_Bind(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		body        string
		expectedSKU string
		expectError bool
	}{
		{
			name:        "valid request",
			body:        `{"sku": "HD4001", "quantity": 2}`,
			expectedSKU: "HD4001",
			expectError: false,
		},
		{
			name:        "invalid JSON",
			body:        `{"sku": invalid}`,
			expectError: true,
		},
		{
			name:        "empty body",
			body:        ``,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			builder := NewRequestBuilder(c)
			var parsed dto.AddProductRequest
			err := builder.Bind(&parsed)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedSKU, parsed.SKU)
			}
		})
	}
}

func TestBuildRequestAndValidate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid and passes validation",
			body:        `{"sku": "HD4001", "quantity": 1}`,
			expectError: false,
		},
		{
			name:        "binds but fails validation",
			body:        `{"sku": "", "quantity": 1}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			parsed, err := BuildRequestAndValidate[dto.AddProductRequest](c)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, parsed)
			}
		})
	}
}

func TestUnmarshalFromReader(t *testing.T) {
	reader := strings.NewReader(`{"sku": "HD4001", "quantity": 3}`)
	parsed, err := UnmarshalFromReader[dto.AddProductRequest](reader)
	require.NoError(t, err)
	assert.Equal(t, "HD4001", parsed.SKU)
	assert.Equal(t, 3, parsed.Quantity)
}

func TestUnmarshalFromBytes(t *testing.T) {
	parsed, err := UnmarshalFromBytes[dto.UpdateQuantityRequest]([]byte(`{"quantity": 0}`))
	require.NoError(t, err)
	assert.Equal(t, 0, parsed.Quantity)
}
