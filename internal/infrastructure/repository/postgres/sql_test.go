package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricsJSONRoundTrip(t *testing.T) {
	raw, err := metricsToJSON(map[string]float64{"xg": 1.4, "shots": 9})
	require.NoError(t, err)

	got, err := metricsFromJSON(raw)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"xg": 1.4, "shots": 9}, got)
}

func TestMetricsToJSON_NilBecomesEmptyObject(t *testing.T) {
	raw, err := metricsToJSON(nil)
	require.NoError(t, err)
	require.Equal(t, "{}", string(raw))
}

func TestMetricsFromJSON_EmptyInputs(t *testing.T) {
	got, err := metricsFromJSON(nil)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = metricsFromJSON([]byte("{}"))
	require.NoError(t, err)
	require.Nil(t, got)
}
