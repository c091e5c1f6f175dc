package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSellerTotalsSync_ServiceUnavailable(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/cron/seller-totals/run", nil)

	RunSellerTotalsSync(CronJobServices{})(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestGetCronStatus_ServiceUnavailable(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)

	GetCronStatus(CronJobServices{})(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
