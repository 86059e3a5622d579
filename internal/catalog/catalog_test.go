package catalog

import "testing"

func TestAnchorAndImagePaths(t *testing.T) {
	t.Parallel()

	if got := AnchorID("cat"); got != "category-cat" {
		t.Fatalf("AnchorID = %q, want %q", got, "category-cat")
	}
	if got := AnchorHref("cat"); got != "#category-cat" {
		t.Fatalf("AnchorHref = %q, want %q", got, "#category-cat")
	}
	if got := ImagePath("cat", "a b.png"); got != "/memes/cat/a b.png" {
		t.Fatalf("ImagePath = %q, want %q", got, "/memes/cat/a b.png")
	}
}

func TestHeading(t *testing.T) {
	t.Parallel()

	if got := Heading("猫", "cat"); got != "猫 (cat)" {
		t.Fatalf("Heading = %q, want %q", got, "猫 (cat)")
	}
	if got := Heading("cat", "cat"); got != "cat (cat)" {
		t.Fatalf("Heading = %q, want %q", got, "cat (cat)")
	}
}

func TestLabelIndexDisplayName(t *testing.T) {
	t.Parallel()

	idx := NewLabelIndex(LabelMap{
		{Label: "生气", Key: "angry"},
		{Label: "色色", Key: "color"},
		{Label: "色", Key: "color"},
	})

	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "mapped key", key: "angry", want: "生气"},
		{name: "duplicate value first wins", key: "color", want: "色色"},
		{name: "unmapped key falls back", key: "sleep", want: "sleep"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := idx.DisplayName(tc.key); got != tc.want {
				t.Fatalf("DisplayName(%q) = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}

func TestZeroLabelIndexFallsBackToKey(t *testing.T) {
	t.Parallel()

	var idx LabelIndex
	if got := idx.DisplayName("cat"); got != "cat" {
		t.Fatalf("DisplayName = %q, want %q", got, "cat")
	}
}
