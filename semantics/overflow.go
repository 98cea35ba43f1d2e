package semantics

import (
	"go.uber.org/zap"

	"cfrontend/cval"
	"cfrontend/loc"
)

// OverflowObserver lets the surrounding compiler observe
// arbitrary-precision wraparound during integer-constant-expression
// evaluation without the pure evaluator itself changing behavior or
// failing.
type OverflowObserver interface {
	// ObserveOverflow is called when an arithmetic step's mathematical
	// result did not fit in bits before truncation/wraparound. op names
	// the operation ("+", "-" or "*") for diagnostic purposes.
	ObserveOverflow(op string, r loc.Range, result cval.Int)
}

// NoopOverflowObserver discards every observation; it is Context's
// default so overflow observation costs nothing unless a caller opts
// in.
type NoopOverflowObserver struct{}

func (NoopOverflowObserver) ObserveOverflow(string, loc.Range, cval.Int) {}

// ZapOverflowObserver logs each observed overflow at Warn level via
// go.uber.org/zap, the structured-logging library used elsewhere in
// this module.
type ZapOverflowObserver struct {
	Log *zap.Logger
}

func (z ZapOverflowObserver) ObserveOverflow(op string, r loc.Range, result cval.Int) {
	log := z.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Warn("semantics: integer constant expression overflowed",
		zap.String("op", op),
		zap.String("at", r.Start.String()),
		zap.String("wrapped_result", result.String()),
	)
}
