package domain

import "fmt"

// Compiler identifies the compiler binary produced by bootstrap stage Stage and hosted on Host.
type Compiler struct {
	Stage uint32
	Host  Triple
}

// NewCompiler returns the compiler of the given stage hosted on host.
func NewCompiler(stage uint32, host Triple) Compiler {
	return Compiler{Stage: stage, Host: host}
}

// String renders the compiler as "stage<N>/<host>".
func (c Compiler) String() string {
	return fmt.Sprintf("stage%d/%s", c.Stage, c.Host)
}
