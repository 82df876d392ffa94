package rules_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stagehand/internal/core/domain"
	"go.trai.ch/stagehand/internal/core/ports/mocks"
	"go.trai.ch/stagehand/internal/engine/rules"
	"go.uber.org/mock/gomock"
)

func TestCached_MatchesInner(t *testing.T) {
	inner := rules.New(build)
	cached, err := rules.NewCached(inner, rules.DefaultCacheSize)
	require.NoError(t, err)

	ctx := domain.ActionContext{Stage: 1, Compiler: domain.NewCompiler(1, build), Host: arm}
	for _, kind := range domain.AllKinds() {
		step, err := domain.At(build).StepFor(kind, ctx)
		require.NoError(t, err)

		want, err := inner.Dependencies(step)
		require.NoError(t, err)

		for range 2 {
			got, err := cached.Dependencies(step)
			require.NoError(t, err)
			assert.Equal(t, want, got, kind.String())
		}
	}
	assert.Equal(t, len(domain.AllKinds()), cached.Len())
}

func TestCached_ExpandsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockDependencyRules(ctrl)

	step := domain.At(build).CompilerRt()
	llvm := domain.At(build).Llvm()
	inner.EXPECT().Dependencies(step).Return([]domain.Step{llvm}, nil).Times(1)

	cached, err := rules.NewCached(inner, 8)
	require.NoError(t, err)

	first, err := cached.Dependencies(step)
	require.NoError(t, err)

	// Corrupting a returned slice must not affect later lookups.
	first[0] = domain.At(arm).Llvm()

	second, err := cached.Dependencies(step)
	require.NoError(t, err)
	assert.Equal(t, []domain.Step{llvm}, second)
}

func TestCached_DoesNotCacheErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockDependencyRules(ctrl)

	step := domain.At(build).Llvm()
	inner.EXPECT().Dependencies(step).Return(nil, errors.New("boom")).Times(2)

	cached, err := rules.NewCached(inner, 8)
	require.NoError(t, err)

	_, err = cached.Dependencies(step)
	require.Error(t, err)
	_, err = cached.Dependencies(step)
	require.Error(t, err)
	assert.Equal(t, 0, cached.Len())
}

func TestNewCached_InvalidSize(t *testing.T) {
	_, err := rules.NewCached(rules.New(build), 0)
	require.Error(t, err)
}
