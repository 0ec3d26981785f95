package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Strategy & Operations  ", "strategy-and-operations"},
		{"What's next?", "whats-next"},
		{"B2B/B2C playbooks", "b2b-b2c-playbooks"},
		{"Already-slugged-title", "already-slugged-title"},
		{"Multiple   spaces", "multiple-spaces"},
		{"Émigré café", "migr-caf"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
