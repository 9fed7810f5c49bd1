package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counts(t *testing.T) {
	r := New()

	r.SessionStarted()
	r.SessionStarted()
	r.SessionFinished("won")
	r.Drink(DrinkAccepted)
	r.Drink(DrinkRateLimited)
	r.Drink(DrinkAccepted)
	r.Sync(SyncPushFailed)
	r.BankOperation("deposit", "success")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.sessionsStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.sessionsFinished.WithLabelValues("won")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.drinks.WithLabelValues(DrinkAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.drinks.WithLabelValues(DrinkRateLimited)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.syncs.WithLabelValues(SyncPushFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.bankOperations.WithLabelValues("deposit", "success")))
}

func TestRecorder_NilIsSafe(t *testing.T) {
	var r *Recorder

	assert.NotPanics(t, func() {
		r.SessionStarted()
		r.SessionFinished("lost")
		r.Drink(DrinkIgnored)
		r.Sync(SyncSuccess)
		r.BankOperation("withdraw", "failed")
	})
}

func TestRecorder_Handler(t *testing.T) {
	r := New()
	r.SessionStarted()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, Endpoint, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "hydroquest_sessions_started_total 1"))
}

func TestNewServer_RequiresAddr(t *testing.T) {
	_, err := NewServer("", New())
	assert.Error(t, err)
}
