package memeapi

import (
	"reflect"
	"testing"

	"github.com/louisbranch/memegallery/internal/catalog"
)

func TestDecodeCategoryMapKeepsDocumentOrder(t *testing.T) {
	t.Parallel()

	got, err := DecodeCategoryMap([]byte(`{"sad":["s.png"],"angry":[],"happy":["h1.gif","h2.jpg"]}`))
	if err != nil {
		t.Fatalf("DecodeCategoryMap() error = %v", err)
	}
	want := catalog.CategoryMap{
		{Key: "sad", Files: []string{"s.png"}},
		{Key: "angry", Files: []string{}},
		{Key: "happy", Files: []string{"h1.gif", "h2.jpg"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeCategoryMap() = %#v, want %#v", got, want)
	}
}

func TestDecodeCategoryMapDuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	t.Parallel()

	got, err := DecodeCategoryMap([]byte(`{"cat":["a.png"],"dog":[],"cat":["b.png"]}`))
	if err != nil {
		t.Fatalf("DecodeCategoryMap() error = %v", err)
	}
	want := catalog.CategoryMap{
		{Key: "cat", Files: []string{"b.png"}},
		{Key: "dog", Files: []string{}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeCategoryMap() = %#v, want %#v", got, want)
	}
}

func TestDecodeCategoryMapRejectsMalformed(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"not json":          `{"cat":`,
		"array root":        `["cat"]`,
		"string value":      `{"cat":"a.png"}`,
		"non string file":   `{"cat":["a.png", 3]}`,
		"null value":        `{"cat":null}`,
		"plain string root": `"cat"`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := DecodeCategoryMap([]byte(body)); err == nil {
				t.Fatalf("DecodeCategoryMap(%s) error = nil, want error", body)
			}
		})
	}
}

func TestDecodeCategoryMapEmptyObject(t *testing.T) {
	t.Parallel()

	got, err := DecodeCategoryMap([]byte(`{}`))
	if err != nil {
		t.Fatalf("DecodeCategoryMap() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestDecodeLabelMap(t *testing.T) {
	t.Parallel()

	got, err := DecodeLabelMap([]byte(`{"生气":"angry","色色":"color","色":"color"}`))
	if err != nil {
		t.Fatalf("DecodeLabelMap() error = %v", err)
	}
	want := catalog.LabelMap{
		{Label: "生气", Key: "angry"},
		{Label: "色色", Key: "color"},
		{Label: "色", Key: "color"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeLabelMap() = %#v, want %#v", got, want)
	}
}

func TestDecodeLabelMapRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`[]`, `{"猫":1}`, `{"猫":["cat"]}`, `nope`} {
		if _, err := DecodeLabelMap([]byte(body)); err == nil {
			t.Fatalf("DecodeLabelMap(%s) error = nil, want error", body)
		}
	}
}
