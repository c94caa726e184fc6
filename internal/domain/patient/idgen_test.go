package patient

import "testing"

func TestGenerateUniqueID_Format(t *testing.T) {
	id := GenerateUniqueID(nil)
	if len(id) != 6 {
		t.Fatalf("expected 6 digits, got %q", id)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			t.Fatalf("non-digit in id %q", id)
		}
	}
	if id[0] == '0' {
		t.Errorf("id %q outside 100000-999999", id)
	}
}

func TestGenerateUniqueID_NeverReturnsUsed(t *testing.T) {
	used := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := GenerateUniqueID(used)
		if used[id] {
			t.Fatalf("returned used id %q", id)
		}
		used[id] = true
	}
}

func TestGenerateUniqueID_RoughlyUniform(t *testing.T) {
	// Bucket 10k draws by leading digit; each of 1-9 should land well away
	// from zero if the draw is uniform over 100000-999999.
	counts := map[byte]int{}
	for i := 0; i < 10000; i++ {
		id := GenerateUniqueID(nil)
		counts[id[0]]++
	}
	for d := byte('1'); d <= '9'; d++ {
		if counts[d] < 700 {
			t.Errorf("leading digit %c underrepresented: %d/10000", d, counts[d])
		}
	}
}
