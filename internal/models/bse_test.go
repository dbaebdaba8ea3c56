package models

import "testing"

func TestDefaultChecklistCatalog(t *testing.T) {
	t.Parallel()

	catalog := DefaultChecklistCatalog()
	if len(catalog) != 9 {
		t.Fatalf("expected 9 catalog items, got %d", len(catalog))
	}

	seen := make(map[string]struct{}, len(catalog))
	for _, item := range catalog {
		if item.Key == "" || item.Label == "" || item.AssessedBy == "" || item.Description == "" {
			t.Fatalf("incomplete catalog item %+v", item)
		}
		if _, duplicate := seen[item.Key]; duplicate {
			t.Fatalf("duplicate catalog key %q", item.Key)
		}
		seen[item.Key] = struct{}{}
		if !KnownChecklistKey(item.Key) {
			t.Fatalf("catalog key %q must be reported as known", item.Key)
		}
	}

	if KnownChecklistKey("third_nostril") {
		t.Fatal("unknown key must not be reported as known")
	}
}

func TestValidResult(t *testing.T) {
	t.Parallel()

	for _, result := range []string{ResultNormal, ResultAbnormal, ResultNotAssessed} {
		if !ValidResult(result) {
			t.Fatalf("expected %q to be valid", result)
		}
	}
	for _, result := range []string{"", "maybe", "NORMAL"} {
		if ValidResult(result) {
			t.Fatalf("expected %q to be invalid", result)
		}
	}
}
