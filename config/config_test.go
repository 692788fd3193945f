package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadfromFile(t *testing.T) {
	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")
	require.Equal(t, "clipshelf", cfg.MinIOStore.Bucket)
	require.Equal(t, "clipshelf-events", cfg.BrokerConfig.StreamName)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load("./no-such-config.yml")
	require.Error(t, err)
}
