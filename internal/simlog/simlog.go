// Package simlog provides the module-logger idiom used throughout this
// repository: each package obtains its own named, structured logger rather
// than calling a single global one. The grouping mirrors the
// log.NewModuleLogger(log.ModuleName) pattern found in klaytn's
// cmd/kcn/main.go, implemented directly on top of go.uber.org/zap since
// klaytn's own internal log wrapper package wasn't retrieved standalone.
package simlog

import (
	"sync"

	"go.uber.org/zap"
)

// Module names, mirroring klaytn's log.CMDKCN-style constants.
const (
	ModuleDriver   = "driver"
	ModulePeer     = "peer"
	ModuleNetGraph = "netgraph"
	ModuleRender   = "render"
	ModuleCLI      = "cmd"
)

var (
	base *zap.SugaredLogger
	once sync.Once
)

func root() *zap.SugaredLogger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.DisableStacktrace = true
		logger, err := cfg.Build()
		if err != nil {
			// Fall back to a no-op logger rather than panicking the simulator
			// over a logging misconfiguration.
			logger = zap.NewNop()
		}
		base = logger.Sugar()
	})
	return base
}

// NewModuleLogger returns a logger tagged with the given module name, in the
// same spirit as klaytn's log.NewModuleLogger.
func NewModuleLogger(module string) *zap.SugaredLogger {
	return root().With("module", module)
}
