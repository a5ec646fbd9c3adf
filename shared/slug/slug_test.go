package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"autocare/shared/slug"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Winter Tyre Tips", want: "winter-tyre-tips"},
		{in: "  5 signs your brakes need work!  ", want: "5-signs-your-brakes-need-work"},
		{in: "Café & Crème", want: "cafe-creme"},
		{in: "already-a-slug", want: "already-a-slug"},
		{in: "---", want: ""},
		{in: "نصائح الشتاء", want: ""},
		{in: "AC service: 2025 edition", want: "ac-service-2025-edition"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Make(tt.in))
		})
	}
}
