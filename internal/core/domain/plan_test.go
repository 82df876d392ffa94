package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stagehand/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestPlan_Append(t *testing.T) {
	p := domain.NewPlan()
	llvm := domain.At(hostX86).Llvm()

	require.NoError(t, p.Append(llvm, nil))

	err := p.Append(llvm, nil)
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "llvm [x86_64-host]", zErr.Metadata()["step"])
}

func TestPlan_Accessors(t *testing.T) {
	p := domain.NewPlan()
	llvm := domain.At(hostX86).Llvm()
	rt := domain.At(hostX86).CompilerRt()
	rustc := domain.At(hostX86).Rustc(0)

	require.NoError(t, p.Append(llvm, nil))
	require.NoError(t, p.Append(rt, []domain.Step{llvm}))

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []domain.Step{llvm, rt}, p.Steps())
	assert.Equal(t, 1, p.Index(rt))
	assert.Equal(t, -1, p.Index(rustc))
	assert.True(t, p.Contains(llvm))
	assert.False(t, p.Contains(rustc))
	assert.Equal(t, []domain.Step{llvm}, p.DependenciesOf(rt))
	assert.Empty(t, p.DependenciesOf(llvm))

	var walked []domain.Step
	for i, step := range p.Walk() {
		assert.Equal(t, len(walked), i)
		walked = append(walked, step)
	}
	assert.Equal(t, p.Steps(), walked)

	// Mutating the returned slices must not leak into the plan.
	steps := p.Steps()
	steps[0] = rustc
	assert.Equal(t, llvm, p.Steps()[0])
}

func TestPlan_Validate(t *testing.T) {
	llvm := domain.At(hostX86).Llvm()
	rt := domain.At(hostX86).CompilerRt()

	t.Run("valid order", func(t *testing.T) {
		p := domain.NewPlan()
		require.NoError(t, p.Append(llvm, nil))
		require.NoError(t, p.Append(rt, []domain.Step{llvm}))
		require.NoError(t, p.Validate())
	})

	t.Run("dependency after dependant", func(t *testing.T) {
		p := domain.NewPlan()
		require.NoError(t, p.Append(rt, []domain.Step{llvm}))
		require.NoError(t, p.Append(llvm, nil))

		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "step planned before its dependency")
	})

	t.Run("dependency not planned", func(t *testing.T) {
		p := domain.NewPlan()
		require.NoError(t, p.Append(rt, []domain.Step{llvm}))

		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing dependency")
	})
}
