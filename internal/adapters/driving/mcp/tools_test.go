package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

func TestServer_handleResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("returns resolved offerings", func(t *testing.T) {
		server, err := NewServer(&Ports{Content: newMockContentService()})
		require.NoError(t, err)

		_, output, err := server.handleResolve(ctx, nil, ResolveInput{Surface: "pricing"})

		require.NoError(t, err)
		assert.Equal(t, "pricing", output.Surface)
		assert.Equal(t, "remote", output.Origin)
		assert.Equal(t, 1, output.Selected)
		require.Len(t, output.Offerings, 1)
		assert.Equal(t, "R$ 750", output.Offerings[0].Price)
		assert.Empty(t, output.FetchError)
	})

	t.Run("reports swallowed fetch error", func(t *testing.T) {
		content := newMockContentService()
		content.resolutions["pricing"] = &domain.Resolution{
			Surface:  "pricing",
			Origin:   domain.OriginFallback,
			FetchErr: domain.ErrSourceUnavailable,
		}
		server, err := NewServer(&Ports{Content: content})
		require.NoError(t, err)

		_, output, err := server.handleResolve(ctx, nil, ResolveInput{Surface: "pricing"})

		require.NoError(t, err)
		assert.Equal(t, "fallback", output.Origin)
		assert.Equal(t, domain.ErrSourceUnavailable.Error(), output.FetchError)
	})

	t.Run("requires surface", func(t *testing.T) {
		server, err := NewServer(&Ports{Content: newMockContentService()})
		require.NoError(t, err)

		_, _, err = server.handleResolve(ctx, nil, ResolveInput{})

		assert.Error(t, err)
	})

	t.Run("unknown surface", func(t *testing.T) {
		server, err := NewServer(&Ports{Content: newMockContentService()})
		require.NoError(t, err)

		_, _, err = server.handleResolve(ctx, nil, ResolveInput{Surface: "nope"})

		assert.ErrorIs(t, err, domain.ErrUnknownSurface)
	})
}

func TestServer_handleListSurfaces(t *testing.T) {
	server, err := NewServer(&Ports{Content: newMockContentService()})
	require.NoError(t, err)

	_, output, err := server.handleListSurfaces(context.Background(), nil, ListSurfacesInput{})

	require.NoError(t, err)
	require.Len(t, output.Surfaces, 2)
	assert.Equal(t, "pricing", output.Surfaces[0].Name)
	assert.Equal(t, "marketing", output.Surfaces[0].Category)
	assert.True(t, output.Surfaces[0].CategoryOnly)
	assert.True(t, output.Surfaces[1].Single)
}

func TestServer_handleListRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("maps records and filter", func(t *testing.T) {
		records := &mockRecordService{
			records: []domain.ServiceRecord{{
				ID:            domain.SomeText("r1"),
				Name:          domain.SomeText("Plano Premium"),
				Category:      domain.CategoryMarketing,
				IsHighlighted: domain.FlagTrue,
				DisplayOrder:  3,
			}},
		}
		server, err := NewServer(&Ports{Content: newMockContentService(), Records: records})
		require.NoError(t, err)

		input := ListRecordsInput{Category: "marketing", Search: "premium"}
		_, output, err := server.handleListRecords(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, domain.CategoryMarketing, records.lastFilter.Category)
		assert.Equal(t, "premium", records.lastFilter.Search)
		require.Equal(t, 1, output.Count)
		rec := output.Records[0]
		assert.Equal(t, "r1", *rec.ID)
		assert.Nil(t, rec.Page)
		assert.Nil(t, rec.IsActive)
		assert.True(t, *rec.IsHighlighted)
		assert.Equal(t, float64(3), rec.DisplayOrder)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		records := &mockRecordService{err: errors.New("db closed")}
		server, err := NewServer(&Ports{Content: newMockContentService(), Records: records})
		require.NoError(t, err)

		_, _, err = server.handleListRecords(ctx, nil, ListRecordsInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "db closed")
	})
}
