//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/gitnlsn/ncas/internal/script"
)

func main() {
	js.Global().Set("NcasSimplify", js.FuncOf(script.Simplify))
	js.Global().Set("NcasExpand", js.FuncOf(script.Expand))
	js.Global().Set("NcasEvaluate", js.FuncOf(script.Evaluate))

	// wait indefinitely so that Go does not terminate execution
	// and the functions remain available
	<-make(chan struct{})
}
