package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finnmprice/caffeine-counter/services"
	"github.com/finnmprice/caffeine-counter/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func statusFor(err error) int {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	serviceError(c, err)
	return w.Code
}

func TestServiceErrorMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(services.ErrValidation))
	assert.Equal(t, http.StatusBadRequest, statusFor(fmt.Errorf("%w: drink type \"Tea\"", services.ErrDuplicate)))
	assert.Equal(t, http.StatusBadRequest, statusFor(services.ErrUnknownPeriod))
	assert.Equal(t, http.StatusBadRequest, statusFor(fmt.Errorf("%w: expected a data URL", utils.ErrInvalidImage)))
	assert.Equal(t, http.StatusNotFound, statusFor(services.ErrNotFound))
	assert.Equal(t, http.StatusForbidden, statusFor(services.ErrForbidden))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("connection reset")))
}
