package helper

import "testing"

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1500, "Rp 1.500"},
		{150000, "Rp 150.000"},
		{1500000, "Rp 1.500.000"},
		{1234567890, "Rp 1.234.567.890"},
		{-25000, "-Rp 25.000"},
	}
	for _, c := range cases {
		if got := FormatRupiah(c.in); got != c.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
