package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"
)

// DebugModule exposes opt-in diagnostics. Both routes are absent unless
// enabled in config.
type DebugModule struct {
	CrashTest bool
	Metrics   bool
}

func NewDebugModule(crashTest, metrics bool) *DebugModule {
	return &DebugModule{CrashTest: crashTest, Metrics: metrics}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	if m.CrashTest {
		rg.GET("/crash-test", func(*gin.Context) {
			panic("server is about to crash")
		})
	}
	if m.Metrics {
		rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
	}
}
