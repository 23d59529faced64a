package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

func TestRun_SweepShape(t *testing.T) {
	subkeys, err := crypto.NewKeyScheduler().DeriveRoundKeys("this12is896a9key", crypto.Rounds)
	require.NoError(t, err)

	cipher, err := crypto.NewCipher(subkeys)
	require.NoError(t, err)

	results := Run(cipher)
	require.NotEmpty(t, results)

	assert.Equal(t, startCount, results[0].Count)
	for i, result := range results {
		if i > 0 {
			assert.Equal(t, stepCount, result.Count-results[i-1].Count)
		}
		assert.GreaterOrEqual(t, result.Elapsed, time.Duration(0), "elapsed time cannot be negative")
		assert.LessOrEqual(t, result.Count, maxCount)
	}
}
