package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nh/internal/adapters/telemetry"
	"go.trai.ch/nh/internal/core/domain"
)

func TestNoOp_Record(t *testing.T) {
	tel := telemetry.NewNoOp()

	vertex := tel.Record("nix eval nixpkgs#hello.version")

	n, err := vertex.Stdout().Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	vertex.Log(domain.LogLevelInfo, "ignored")
	vertex.Complete(nil)
	assert.NoError(t, tel.Close())
}
