package postgres

import "testing"

func TestLikePattern(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "engineer", "%engineer%"},
		{"percent matches literally", "100%", `%100\%%`},
		{"underscore matches literally", "go_dev", `%go\_dev%`},
		{"backslash escaped first", `C:\temp`, `%C:\\temp%`},
		{"empty", "", "%%"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := likePattern(tc.in); got != tc.want {
				t.Errorf("likePattern(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
