package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterBuildInfo(t *testing.T) {
	registry := prometheus.NewRegistry()
	require.NoError(t, RegisterBuildInfo(registry))

	families, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)

	family := families[0]
	assert.Equal(t, Namespace+"_build_info", family.GetName())
	require.Len(t, family.GetMetric(), 1)
	assert.Equal(t, 1.0, family.GetMetric()[0].GetGauge().GetValue())

	labels := map[string]string{}
	for _, label := range family.GetMetric()[0].GetLabel() {
		labels[label.GetName()] = label.GetValue()
	}
	assert.Equal(t, "dev", labels["version"])
	assert.Equal(t, "unknown", labels["revision"])

	assert.Error(t, RegisterBuildInfo(registry))
}
