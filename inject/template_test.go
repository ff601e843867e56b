package inject

import "testing"

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name string
		body string
		args []string
		want string
	}{
		{
			"basic substitution",
			"console.log('Hello {{1}}, my name is {{2}}')",
			[]string{"world", "adblock-rust"},
			"console.log('Hello world, my name is adblock-rust')",
		},
		{
			"fewer args than placeholders leaves the rest literal",
			"console.log('Hello {{1}}, my name is {{2}}')",
			[]string{"everybody"},
			"console.log('Hello everybody, my name is {{2}}')",
		},
		{
			"dollar sign passthrough, no regexp replacement specials",
			"{{1}} that dollar signs in {{2}} are untouched",
			[]string{"Test", "$remove$"},
			"Test that dollar signs in $remove$ are untouched",
		},
		{
			"only the first occurrence of each placeholder is replaced",
			"{{1}} and {{1}} again",
			[]string{"x"},
			"x and {{1}} again",
		},
		{
			"placeholders above 9 are never substituted",
			"{{1}} {{2}} {{3}} {{4}} {{5}} {{6}} {{7}} {{8}} {{9}} {{10}} {{11}} {{12}}",
			[]string{"this", "probably", "is", "going", "to", "break", "brave", "and", "crash", "it", "instead", "of", "ignoring", "it"},
			"this probably is going to break brave and crash {{10}} {{11}} {{12}}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderTemplate(tt.body, tt.args); got != tt.want {
				t.Errorf("RenderTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}
