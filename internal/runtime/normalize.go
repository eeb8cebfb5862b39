package runtime

import (
	"strings"

	"github.com/aretw0/stenomods/pkg/domain"
)

// digitKeys maps each number-key digit back to the letter key it stands for.
var digitKeys = [10]byte{'O', 'S', 'T', 'P', 'H', 'A', 'F', 'P', 'L', 'T'}

// rightHandKeys are the keys that unambiguously belong to the right bank.
// R, P, S and T exist on both sides and are deliberately left out.
const rightHandKeys = "EU6789"

// Normalize rewrites number-key shorthand ("12W-6") into its letter form
// ("#STW-F"). When neither separator is present a '-' is inserted before the
// first right-hand key so both banks stay distinguishable.
//
// The result always carries the number marker. The boolean reports whether
// any digit was substituted; strokes without one are not number strokes.
func Normalize(stroke string) (string, bool) {
	if !strings.ContainsAny(stroke, "0123456789") {
		return domain.NumberMarker + stroke, false
	}

	if !strings.ContainsAny(stroke, domain.Separators) {
		if i := strings.IndexAny(stroke, rightHandKeys); i >= 0 {
			stroke = stroke[:i] + "-" + stroke[i:]
		}
	}

	b := []byte(stroke)
	substituted := false
	for i, c := range b {
		if c >= '0' && c <= '9' {
			b[i] = digitKeys[c-'0']
			substituted = true
		}
	}
	return domain.NumberMarker + string(b), substituted
}
