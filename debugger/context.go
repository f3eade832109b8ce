package debugger

import (
	"math/rand/v2"

	"github.com/jetsetilly/testchip8/hardware/spec"
)

type context struct {
	spec spec.Spec
	seed uint64
	rand *rand.Rand
}

func (ctx *context) Spec() spec.Spec {
	return ctx.spec
}

// Reset the random number source. A non-zero seed produces the same sequence
// after every reset
func (ctx *context) Reset() {
	if ctx.seed != 0 {
		ctx.rand = rand.New(rand.NewPCG(ctx.seed, ctx.seed))
	} else {
		ctx.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
}

func (ctx *context) Rand8Bit() uint8 {
	return uint8(ctx.rand.IntN(256))
}
