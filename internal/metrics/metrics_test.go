package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.ObserveSignup("success")
	c.ObserveSignup("success")
	c.ObserveSignup("capacity_exceeded")
	c.ObserveActivityCreated()
	c.ObserveRequest("POST", "POST /activities/{activity_name}/signup", 200, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.signupsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.signupsTotal.WithLabelValues("capacity_exceeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.activitiesAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues("POST", "POST /activities/{activity_name}/signup", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.requestDuration))
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
