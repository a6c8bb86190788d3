package slug

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Hello World", want: "hello-world"},
		{in: "  Go: the   Good Parts!  ", want: "go-the-good-parts"},
		{in: "snake_case_title", want: "snake-case-title"},
		{in: "--leading and trailing--", want: "leading-and-trailing"},
		{in: "Ünïcode", want: "ncode"},
		{in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestGenerator_Make(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	g := &Generator{now: func() time.Time { return at }}

	assert.Equal(t, "hello-world-loyw3v28", g.Make("Hello World"))
	assert.Equal(t, "loyw3v28", g.Make("???"))
}
