package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	assert.Equal(t, "tab", Compose("tab", nil))
	assert.Equal(t, "alt(tab)", Compose("tab", []string{"alt"}))
	assert.Equal(t, "shift(alt(s))", Compose("s", []string{"alt", "shift"}))
	assert.Equal(t, "{#control(F4)}", Format(Compose("F4", []string{"control"})))
}

func TestModifierNames_PrecedenceNotAppearance(t *testing.T) {
	number := NumberProfile()
	assert.Equal(t, []string{"alt", "super", "control", "shift"}, number.ModifierNames("RBGS"))
	assert.Equal(t, number.ModifierNames("RBGS"), number.ModifierNames("SGBR"))
	assert.Equal(t, []string{"control", "shift"}, number.ModifierNames("SG"))
	assert.Empty(t, number.ModifierNames(""))

	ender := EnderProfile()
	assert.Equal(t, []string{"shift", "control", "alt", "super"}, ender.ModifierNames("FRPB"))
	assert.Equal(t, []string{"super"}, ender.ModifierNames("P"))
}
