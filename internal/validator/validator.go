package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/stenomods/pkg/adapters/memory"
	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/ports"
	"github.com/aretw0/stenomods/pkg/registry"
)

// StenoKeys is every character a stroke key may use, digits included.
const StenoKeys = "#STKPWHRAO*-EUFRPBLGTSDZ0123456789^+"

// Issue is one problem found in a dictionary entry.
type Issue struct {
	Dictionary string `json:"dictionary"`
	Stroke     string `json:"stroke"`
	Problem    string `json:"problem"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: '%s' %s", i.Dictionary, i.Stroke, i.Problem)
}

// Listable dictionaries expose their stroke keys.
type Listable interface {
	ports.Dictionary
	Keys() []string
}

// ValidateRegistry checks every listable dictionary in reg for stroke keys
// outside the steno layout and for entries an earlier dictionary in the
// chain already answers, which lookups can never reach.
func ValidateRegistry(ctx context.Context, reg *registry.Registry) ([]Issue, error) {
	var issues []Issue
	names := reg.Names()

	for i, name := range names {
		dict, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		listable, ok := dict.(Listable)
		if !ok {
			continue
		}

		for _, key := range listable.Keys() {
			strokes := strings.Split(key, memory.StrokeSeparator)
			for _, s := range strokes {
				if bad := foreignKeys(s); bad != "" {
					issues = append(issues, Issue{name, key, fmt.Sprintf("uses keys outside the steno layout: %q", bad)})
				}
			}

			for _, earlier := range names[:i] {
				prev, err := reg.Get(earlier)
				if err != nil {
					return nil, err
				}
				out, err := prev.Lookup(ctx, strokes)
				if err == nil {
					issues = append(issues, Issue{name, key, fmt.Sprintf("is shadowed by %s (%s)", earlier, out)})
					break
				}
				if !domain.IsNotApplicable(err) {
					return nil, fmt.Errorf("dictionary %s: %w", earlier, err)
				}
			}
		}
	}
	return issues, nil
}

// Error folds the issues into one error, or nil when there are none.
func Error(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}
	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = issue.String()
	}
	return fmt.Errorf("found %d errors:\n- %s", len(issues), strings.Join(lines, "\n- "))
}

func foreignKeys(stroke string) string {
	var bad strings.Builder
	for _, r := range stroke {
		if !strings.ContainsRune(StenoKeys, r) {
			bad.WriteRune(r)
		}
	}
	return bad.String()
}
