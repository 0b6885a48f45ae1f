package slug

import "testing"

func TestMake(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Ethiopian Premier League", "ethiopian-premier-league"},
		{"  Saint-George   S.C. ", "saint-george-s-c"},
		{"Fasil Kenema 2024/25", "fasil-kenema-2024-25"},
		{"Atlético Madrid", "atletico-madrid"},
		{"ቅዱስ ጊዮርጊስ", ""},
		{"---", ""},
	}
	for _, tc := range cases {
		if got := Make(tc.in); got != tc.want {
			t.Fatalf("Make(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	if !Valid("bahir-dar-kenema") {
		t.Fatalf("expected valid slug")
	}
	for _, bad := range []string{"", "Upper", "double--dash", "-lead", "trail-", "space here"} {
		if Valid(bad) {
			t.Fatalf("expected %q to be invalid", bad)
		}
	}
}
