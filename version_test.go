package vegetor

import "testing"

func TestVersion_IsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestVersionTag_PrefixesV(t *testing.T) {
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("version tag: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: " 0.1.0\n", want: true},
		{version: "1.2.3-rc.1", want: true},
		{version: "v0.1.0", want: false},
		{version: "0.1", want: false},
		{version: "", want: false},
	}

	for _, tc := range cases {
		if got := IsSemver(tc.version); got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}
