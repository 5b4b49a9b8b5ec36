// pkg/value/json.go - Low-level JSON text writers shared by the codecs
package value

import (
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

// AppendFloat appends f using the same shortest-representation rules as
// encoding/json. NaN and infinities have no JSON form and are written as null.
func AppendFloat(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(dst) - start
		if n >= 4 && dst[len(dst)-4] == 'e' && dst[len(dst)-3] == '-' && dst[len(dst)-2] == '0' {
			dst[len(dst)-2] = dst[len(dst)-1]
			dst = dst[:len(dst)-1]
		}
	}
	return dst
}

// AppendString appends s as a quoted JSON string
func AppendString(dst []byte, s string) []byte {
	return gjson.AppendJSONString(dst, s)
}
