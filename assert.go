package tinystr

import "fmt"

// assertf enforces a precondition when the engine is configured for
// debug builds (spec.md §7: "precondition violations... enforced by
// debug assertions; undefined in release builds"). With Debug false this
// is a no-op, matching JERRY_NDEBUG release builds paying nothing for
// checks the caller is already required to satisfy.
func (e *Engine) assertf(cond bool, format string, args ...any) {
	if !e.cfg.Debug {
		return
	}
	if !cond {
		panic(fmt.Sprintf("tinystr: precondition violated: "+format, args...))
	}
}
