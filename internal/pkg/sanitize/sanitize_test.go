package sanitize_test

import (
	"testing"

	"deliveryhub/internal/pkg/sanitize"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text is kept", in: "Juan Pérez", want: "Juan Pérez"},
		{name: "surrounding spaces are trimmed", in: "  Calle 5  ", want: "Calle 5"},
		{name: "tags are removed", in: "<b>Pizza</b> grande", want: "Pizza grande"},
		{name: "scripts are dropped", in: "<script>alert(1)</script>Ana", want: "Ana"},
		{name: "ampersand is escaped", in: "Salt & Pepper", want: "Salt &amp; Pepper"},
		{name: "only markup becomes empty", in: "<br/>", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sanitize.Text(tc.in))
		})
	}
}

func TestTextOr(t *testing.T) {
	assert.Equal(t, "General", sanitize.TextOr("", "General"))
	assert.Equal(t, "General", sanitize.TextOr("<i></i>", "General"))
	assert.Equal(t, "Bebidas", sanitize.TextOr(" Bebidas ", "General"))
}
