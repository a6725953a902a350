package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_Body(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	BadRequest(c, "invalid_price", "Price must be zero or positive.")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Price must be zero or positive.", body["error"])
	assert.Equal(t, "invalid_price", body["error_code"])
}

func TestWrite_OmitsEmptyCode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Internal(c, "", "Error creating booking")

	assert.JSONEq(t, `{"error":"Error creating booking"}`, w.Body.String())
}

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("create service: %w", ErrBusiness("invalid_duration"))

	assert.True(t, IsBusiness(err, "invalid_duration"))
	assert.False(t, IsBusiness(err, "invalid_price"))
	assert.False(t, IsBusiness(errors.New("boom"), "invalid_duration"))
}
