package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/recipe-keeper/models"
)

func TestNewEngine_RegistersNotBlank(t *testing.T) {
	var e *engine
	assert.NotPanics(t, func() { e = newEngine() })

	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "text", value: "Soup"},
		{name: "spaces only", value: "   ", want: []string{MsgBlank}},
		{name: "empty", value: "", want: []string{MsgBlank}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := models.ValidationError{}
			e.check(errs, "title", tt.value, tagNotBlank)
			assert.Equal(t, tt.want, errs["title"])
		})
	}
}

func TestMustRegister_PanicsOnRejectedRule(t *testing.T) {
	v := validator.New()
	alwaysValid := func(validator.FieldLevel) bool { return true }

	assert.Panics(t, func() { mustRegister(v, "", alwaysValid) })
	assert.NotPanics(t, func() { mustRegister(v, "custom", alwaysValid) })
}
