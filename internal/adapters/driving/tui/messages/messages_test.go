package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewSurfaces, "surfaces"},
		{ViewOfferings, "offerings"},
		{ViewRecords, "records"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestViewType_ZeroValueIsSurfaces(t *testing.T) {
	var v ViewType
	assert.Equal(t, ViewSurfaces, v)
}

func TestResolutionLoaded(t *testing.T) {
	res := &domain.Resolution{Surface: "pricing", Origin: domain.OriginFallback}
	msg := ResolutionLoaded{Surface: "pricing", Generation: 3, Resolution: res}

	assert.Equal(t, uint64(3), msg.Generation)
	assert.Equal(t, domain.OriginFallback, msg.Resolution.Origin)
	assert.NoError(t, msg.Err)
}

func TestRecordsLoaded_WithError(t *testing.T) {
	msg := RecordsLoaded{Err: errors.New("store closed")}

	assert.Nil(t, msg.Records)
	assert.EqualError(t, msg.Err, "store closed")
}
