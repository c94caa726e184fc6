package patient

import "testing"

func TestCleanPhone(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"9876543210", "9876543210", false},
		{"(98765) 432-10", "9876543210", false},
		{"98765 43210", "9876543210", false},
		{"", "", true},
		{"12345", "", true},
		{"987654321012", "", true},
		{"98765abcde", "", true},
		{"+919876543210", "", true},
	}

	for _, tc := range cases {
		got, err := CleanPhone(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("CleanPhone(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("CleanPhone(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("CleanPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsValidBloodGroup(t *testing.T) {
	for _, bg := range BloodGroups {
		if !IsValidBloodGroup(bg) {
			t.Errorf("expected %q to be valid", bg)
		}
	}
	if IsValidBloodGroup("Z+") || IsValidBloodGroup("") {
		t.Error("unexpected valid blood group")
	}
}
