package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/flat/ir"
)

// Output is where Logf writes.
var Output io.Writer = os.Stderr

// Logf formats msg with args to Output, rendering *ir.Node arguments
// as compact JSON.
func Logf(msg string, args ...any) {
	for i, a := range args {
		if n, ok := a.(*ir.Node); ok {
			args[i] = string(ir.EncodeJSON(n))
		}
	}
	fmt.Fprintf(Output, msg, args...)
}
