package domain

import "slices"

// DefaultStage is the bootstrap stage planned when neither the configuration nor the
// invocation names one.
const DefaultStage uint32 = 2

// Config is the bootstrap configuration the planner works from.
type Config struct {
	// Build is the primary build triple: the platform the seed compiler runs on.
	Build Triple
	// Hosts are the platforms compilers are produced for.
	Hosts []Triple
	// Targets are the platforms standard libraries are produced for.
	Targets []Triple
	// Stage is the stage planned when a request does not name one.
	Stage uint32
}

// Normalize removes duplicate triples, keeping first occurrences.
// Hosts default to the build triple and targets default to the hosts.
func (c *Config) Normalize() {
	c.Hosts = dedupTriples(c.Hosts)
	if len(c.Hosts) == 0 && !c.Build.IsZero() {
		c.Hosts = []Triple{c.Build}
	}
	c.Targets = dedupTriples(c.Targets)
	if len(c.Targets) == 0 {
		c.Targets = slices.Clone(c.Hosts)
	}
}

// HostSelected reports whether host is configured and, when requested is non-empty, requested.
func (c *Config) HostSelected(host Triple, requested []Triple) bool {
	return slices.Contains(c.Hosts, host) && (len(requested) == 0 || slices.Contains(requested, host))
}

// TargetSelected reports whether target is configured and, when requested is non-empty, requested.
func (c *Config) TargetSelected(target Triple, requested []Triple) bool {
	return slices.Contains(c.Targets, target) && (len(requested) == 0 || slices.Contains(requested, target))
}

// Request is the invocation-time selection applied on top of a Config.
type Request struct {
	// Stage is the bootstrap stage to reach.
	Stage uint32
	// Hosts restricts the configured hosts. Empty means all configured hosts.
	Hosts []Triple
	// Targets restricts the configured targets. Empty means all configured targets.
	Targets []Triple
	// Actions are explicitly requested action names. Empty selects the default roots.
	Actions []string
}

func dedupTriples(ts []Triple) []Triple {
	if len(ts) == 0 {
		return nil
	}
	res := make([]Triple, 0, len(ts))
	for _, t := range ts {
		if t.IsZero() || slices.Contains(res, t) {
			continue
		}
		res = append(res, t)
	}
	return res
}
