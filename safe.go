package propfolio

import (
	"fmt"

	"go.uber.org/zap"
)

// safeCalc runs one metric computation and substitutes def when it fails,
// logging the cause. An AnalysisResult aggregates a dozen independent
// metrics from partially complete user data, so one failing metric must
// never blank out its siblings. The default is part of each call signature
// rather than implied by the wrapper.
func safeCalc[T any](log *zap.Logger, metric string, def T, fn func() (T, error)) (result T) {
	if log == nil {
		log = zap.NewNop()
	}
	defer func() {
		if r := recover(); r != nil {
			log.Warn("calculation failed, substituting default",
				zap.String("metric", metric),
				zap.Error(fmt.Errorf("panic: %v", r)))
			result = def
		}
	}()
	v, err := fn()
	if err != nil {
		log.Warn("calculation failed, substituting default",
			zap.String("metric", metric),
			zap.Error(err))
		return def
	}
	return v
}

// value adapts an error-free computation to the safeCalc signature, keeping
// its panic recovery.
func value[T any](fn func() T) func() (T, error) {
	return func() (T, error) { return fn(), nil }
}
