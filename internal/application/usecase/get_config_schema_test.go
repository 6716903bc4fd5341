package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lrucache/internal/application/port/mocks"
	"github.com/bnema/lrucache/internal/application/usecase"
	"github.com/bnema/lrucache/internal/domain/entity"
)

func schemaKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{Key: "cache.capacity", Type: "int", Default: "128", Range: ">= 1", Section: "Cache"},
		{Key: "logging.level", Type: "string", Default: "info", Values: []string{"debug", "info"}, Section: "Logging"},
		{Key: "logging.format", Type: "string", Default: "console", Section: "Logging"},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns all keys from provider", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		// Assert
		require.NoError(t, err)
		require.Len(t, result.Keys, 3)
		assert.Equal(t, "cache.capacity", result.Keys[0].Key)
		assert.Equal(t, ">= 1", result.Keys[0].Range)
	})

	t.Run("filters by section ignoring case", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "logging"})

		require.NoError(t, err)
		require.Len(t, result.Keys, 2)
		assert.Equal(t, "logging.level", result.Keys[0].Key)
		assert.Equal(t, []string{"debug", "info"}, result.Keys[0].Values)
		assert.Equal(t, "logging.format", result.Keys[1].Key)
	})

	t.Run("unknown section yields no keys", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "network"})

		require.NoError(t, err)
		assert.NotNil(t, result.Keys)
		assert.Empty(t, result.Keys)
	})
}
