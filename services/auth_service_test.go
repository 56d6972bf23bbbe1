package services

import "testing"

func TestNormalizeEmail(t *testing.T) {
	cases := []struct{ in, want string }{
		{"ana@x.com", "ana@x.com"},
		{"ANA@X.com", "ana@x.com"},
		{" a@b.com ", "a@b.com"},
		{"\tA@B.COM\n", "a@b.com"},
	}
	for _, tc := range cases {
		if got := NormalizeEmail(tc.in); got != tc.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
