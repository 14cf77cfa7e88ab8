//go:build unit

package offering_test

import (
	"testing"

	"vps-rental/internal/domain/offering"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffering(t *testing.T) {
	t.Run("valid offering", func(t *testing.T) {
		o, err := offering.New("Basic VPS", "img.png", "  entry tier  ", 490)
		require.NoError(t, err)
		assert.Equal(t, "Basic VPS", o.Name())
		assert.Equal(t, "img.png", o.Image())
		assert.Equal(t, "entry tier", o.Description())
		assert.Equal(t, int64(490), o.Price())
	})

	t.Run("free offering is allowed", func(t *testing.T) {
		_, err := offering.New("Trial", "", "", 0)
		assert.NoError(t, err)
	})

	t.Run("name is trimmed before validation", func(t *testing.T) {
		_, err := offering.New("   ", "", "", 100)
		assert.ErrorIs(t, err, offering.ErrEmptyName)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := offering.New("Basic", "", "", -1)
		assert.ErrorIs(t, err, offering.ErrNegativePrice)
	})
}

func TestNewSpecification(t *testing.T) {
	t.Run("valid specification", func(t *testing.T) {
		s, err := offering.NewSpecification(" EPYC 7543 ", 4096, 80, 1000)
		require.NoError(t, err)
		assert.Equal(t, "EPYC 7543", s.Processor())
		assert.Equal(t, int32(4096), s.RAMMB())
		assert.Equal(t, int32(80), s.DiskGB())
		assert.Equal(t, int32(1000), s.NetworkMbps())
	})

	tests := []struct {
		name      string
		processor string
		ramMB     int32
		diskGB    int32
		network   int32
		wantErr   error
	}{
		{name: "empty processor", processor: "  ", ramMB: 1024, diskGB: 10, network: 100, wantErr: offering.ErrEmptyProcessor},
		{name: "zero ram", processor: "x86", ramMB: 0, diskGB: 10, network: 100, wantErr: offering.ErrInvalidCapacity},
		{name: "negative disk", processor: "x86", ramMB: 1024, diskGB: -1, network: 100, wantErr: offering.ErrInvalidCapacity},
		{name: "zero bandwidth", processor: "x86", ramMB: 1024, diskGB: 10, network: 0, wantErr: offering.ErrInvalidBandwidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := offering.NewSpecification(tt.processor, tt.ramMB, tt.diskGB, tt.network)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
