package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ama-mesquita/app-declaracao/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRequestTiming_Success(t *testing.T) {
	router := gin.New()
	router.Use(RequestTiming())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("RequestTiming() status = %v, want %v", w.Code, http.StatusOK)
	}
}

func TestRequestTiming_SetsStartTime(t *testing.T) {
	router := gin.New()
	router.Use(RequestTiming())

	var startTime time.Time
	router.GET("/test", func(c *gin.Context) {
		val, exists := c.Get("request_start_time")
		if !exists {
			t.Error("request_start_time not set in context")
		}
		startTime, _ = val.(time.Time)
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if startTime.IsZero() {
		t.Error("request_start_time was not set")
	}
}

func TestRequestTiming_RecordsStatusLabel(t *testing.T) {
	router := gin.New()
	router.Use(RequestTiming())
	router.POST("/timing/status", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Preencha o nome!"})
	})

	before := testutil.CollectAndCount(observability.RequestDuration)

	req, _ := http.NewRequest("POST", "/timing/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// One new series labelled with the route and the numeric status
	assert.Equal(t, before+1, testutil.CollectAndCount(observability.RequestDuration))

	req, _ = http.NewRequest("POST", "/timing/status", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, before+1, testutil.CollectAndCount(observability.RequestDuration))
}

func TestRequestTiming_UnmatchedRoute(t *testing.T) {
	router := gin.New()
	router.Use(RequestTiming())

	req, _ := http.NewRequest("GET", "/does-not-exist", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
