// SPDX-License-Identifier: MIT

package sadp

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ProgressFunc receives the completed share of the annealing schedule in
// percent (0 to 100). It is called synchronously from Run, once per annealing
// step, and should return quickly.
type ProgressFunc func(percent float64)

// reportProgress forwards step/total to fn. A panicking sink is logged and
// otherwise ignored: progress reporting never aborts an optimization.
func reportProgress(fn ProgressFunc, log logrus.FieldLogger, step, total int) {
	if fn == nil || total <= 0 {
		return
	}
	pct := 100 * float64(step) / float64(total)
	if pct > 100 {
		pct = 100
	}
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(logrus.Fields{
				"err":     fmt.Sprint(r),
				"step":    step,
				"percent": pct,
			}).Warn("progress sink panicked; continuing")
		}
	}()
	fn(pct)
}
