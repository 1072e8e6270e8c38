// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math"
	"strconv"

	"robpike.io/calc/config"
)

// Format returns the text of x as printed by a session.
// With no configured format the result is the shortest decimal that
// reads back as x, without an exponent: 8, 2.5, 100000000000000000000.
// Infinities print as inf and -inf, and not-a-number as NaN.
func Format(conf *config.Config, x float64) string {
	if conf != nil && conf.Format() != "" {
		return fmt.Sprintf(conf.Format(), x)
	}
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case math.IsNaN(x):
		return "NaN"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
