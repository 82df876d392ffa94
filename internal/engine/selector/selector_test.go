package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stagehand/internal/core/domain"
	"go.trai.ch/stagehand/internal/engine/selector"
)

var (
	build = domain.NewTriple("x86_64-host")
	arm   = domain.NewTriple("arm-host")
	wasm  = domain.NewTriple("wasm32-target")
)

func newConfig(hosts, targets []domain.Triple) *domain.Config {
	cfg := &domain.Config{Build: build, Hosts: hosts, Targets: targets, Stage: domain.DefaultStage}
	cfg.Normalize()
	return cfg
}

func TestRoots_ExplicitLlvm(t *testing.T) {
	cfg := newConfig(nil, nil)

	roots, unknown := selector.Roots(cfg, domain.Request{Stage: 2, Actions: []string{"llvm"}})

	assert.Empty(t, unknown)
	assert.Equal(t, []domain.Step{domain.At(build).Llvm()}, roots)
}

func TestRoots_ExplicitUnknownName(t *testing.T) {
	cfg := newConfig(nil, nil)

	roots, unknown := selector.Roots(cfg, domain.Request{Stage: 2, Actions: []string{"lvm"}})

	assert.Empty(t, roots, "an unrecognised name must not fall back to the default roots")
	assert.Equal(t, []string{"lvm"}, unknown)
}

func TestRoots_ExplicitContext(t *testing.T) {
	cfg := newConfig([]domain.Triple{build, arm}, []domain.Triple{build, wasm})
	req := domain.Request{
		Stage:   1,
		Hosts:   []domain.Triple{arm},
		Targets: []domain.Triple{wasm},
		Actions: []string{"libstd", "bogus", "libstd-link", "rustc"},
	}

	roots, unknown := selector.Roots(cfg, req)

	c1 := domain.NewCompiler(1, build)
	assert.Equal(t, []string{"bogus"}, unknown)
	assert.Equal(t, []domain.Step{
		domain.At(wasm).Libstd(1, c1),
		domain.At(wasm).LibstdLink(1, c1, arm),
		domain.At(wasm).Rustc(1),
	}, roots)
}

func TestRoots_ExplicitTargetFallsBackToHost(t *testing.T) {
	cfg := newConfig([]domain.Triple{build, arm}, nil)

	roots, _ := selector.Roots(cfg, domain.Request{Stage: 2, Hosts: []domain.Triple{arm}, Actions: []string{"doc"}})

	assert.Equal(t, []domain.Step{domain.At(arm).Doc(2)}, roots)
}

func TestExplicitBase(t *testing.T) {
	cfg := newConfig(nil, nil)

	base, ctx := selector.ExplicitBase(cfg, domain.Request{Stage: 0})

	assert.Equal(t, build, base.Target)
	assert.Equal(t, domain.ActionContext{Stage: 0, Compiler: domain.NewCompiler(0, build), Host: build}, ctx)
}

func TestRoots_DefaultNative(t *testing.T) {
	cfg := newConfig(nil, nil)

	roots, unknown := selector.Roots(cfg, domain.Request{Stage: 2})

	c2 := domain.NewCompiler(2, build)
	assert.Nil(t, unknown)
	assert.Equal(t, []domain.Step{
		domain.At(build).Doc(2),
		domain.At(build).Librustc(2, c2),
		domain.At(build).Libstd(2, c2),
	}, roots)
}

func TestRoots_DefaultCrossHost(t *testing.T) {
	cfg := newConfig([]domain.Triple{build, arm}, []domain.Triple{build, wasm})

	roots, _ := selector.Roots(cfg, domain.Request{Stage: 2})

	c2 := domain.NewCompiler(2, build)
	assert.Equal(t, []domain.Step{
		domain.At(build).Doc(2),
		domain.At(build).Librustc(2, c2),
		domain.At(build).Libstd(2, c2),
		domain.At(wasm).Libstd(2, c2),
		domain.At(arm).LibrustcLink(2, c2, arm),
		domain.At(build).LibstdLink(2, c2, arm),
		domain.At(wasm).LibstdLink(2, c2, arm),
	}, roots)
}

func TestRoots_DefaultRequestedSubset(t *testing.T) {
	cfg := newConfig([]domain.Triple{build, arm}, []domain.Triple{build, wasm})
	req := domain.Request{
		Stage:   1,
		Hosts:   []domain.Triple{arm},
		Targets: []domain.Triple{wasm, domain.NewTriple("not-configured")},
	}

	roots, _ := selector.Roots(cfg, req)

	c1 := domain.NewCompiler(1, build)
	require.Len(t, roots, 3)
	assert.Equal(t, []domain.Step{
		domain.At(build).Doc(1),
		domain.At(arm).LibrustcLink(1, c1, arm),
		domain.At(wasm).LibstdLink(1, c1, arm),
	}, roots)
}
