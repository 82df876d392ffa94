package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stagehand/internal/ui/style"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "#D93025", style.Hex(style.Red))
	assert.Equal(t, "#8B5CF6", style.Hex(style.Accent))
}
