package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/stagehand/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment variables that override stagehand.yaml.
const (
	EnvBuild   = "STAGEHAND_BUILD"
	EnvHosts   = "STAGEHAND_HOSTS"
	EnvTargets = "STAGEHAND_TARGETS"
	EnvStage   = "STAGEHAND_STAGE"
)

// loadDotEnv loads the .env file next to configPath into the process environment.
// Variables that are already set win. A missing file is not an error.
func (l *Loader) loadDotEnv(configPath string) {
	path := filepath.Join(filepath.Dir(configPath), ".env")
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		l.Logger.Warn("ignoring " + path + ": " + err.Error())
	}
}

// applyEnv overrides file values with the STAGEHAND_* variables that are set and non-empty.
func applyEnv(file *Stagefile) error {
	if v := os.Getenv(EnvBuild); v != "" {
		file.Build = strings.TrimSpace(v)
	}
	if v := os.Getenv(EnvHosts); v != "" {
		file.Hosts = splitList(v)
	}
	if v := os.Getenv(EnvTargets); v != "" {
		file.Targets = splitList(v)
	}
	if v := os.Getenv(EnvStage); v != "" {
		stage, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidStage.Error()), EnvStage, v)
		}
		s := uint32(stage)
		file.Stage = &s
	}
	return nil
}

func splitList(v string) []string {
	var res []string
	for part := range strings.SplitSeq(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}
