package memeapi

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/louisbranch/memegallery/internal/catalog"
)

var (
	errInvalidJSON = errors.New("invalid json")
	errNotObject   = errors.New("expected a json object")
)

// DecodeLabelMap decodes a {"label": "key"} object keeping document order.
// A repeated label keeps its first position and takes the last value.
func DecodeLabelMap(data []byte) (catalog.LabelMap, error) {
	root, err := parseObject(data)
	if err != nil {
		return nil, err
	}
	labels := catalog.LabelMap{}
	position := map[string]int{}
	var decodeErr error
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			decodeErr = fmt.Errorf("label %q: expected string, got %s", key.String(), value.Type)
			return false
		}
		entry := catalog.Label{Label: key.String(), Key: value.String()}
		if idx, seen := position[entry.Label]; seen {
			labels[idx] = entry
			return true
		}
		position[entry.Label] = len(labels)
		labels = append(labels, entry)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return labels, nil
}

// DecodeCategoryMap decodes a {"key": ["file", ...]} object keeping document
// order. A repeated key keeps its first position and takes the last value.
func DecodeCategoryMap(data []byte) (catalog.CategoryMap, error) {
	root, err := parseObject(data)
	if err != nil {
		return nil, err
	}
	categories := catalog.CategoryMap{}
	position := map[string]int{}
	var decodeErr error
	root.ForEach(func(key, value gjson.Result) bool {
		files, err := decodeFiles(value)
		if err != nil {
			decodeErr = fmt.Errorf("category %q: %w", key.String(), err)
			return false
		}
		category := catalog.Category{Key: key.String(), Files: files}
		if idx, seen := position[category.Key]; seen {
			categories[idx] = category
			return true
		}
		position[category.Key] = len(categories)
		categories = append(categories, category)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return categories, nil
}

func parseObject(data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, errInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return gjson.Result{}, errNotObject
	}
	return root, nil
}

func decodeFiles(value gjson.Result) ([]string, error) {
	if !value.IsArray() {
		return nil, fmt.Errorf("expected array, got %s", value.Type)
	}
	elements := value.Array()
	files := make([]string, 0, len(elements))
	for idx, element := range elements {
		if element.Type != gjson.String {
			return nil, fmt.Errorf("file %d: expected string, got %s", idx, element.Type)
		}
		files = append(files, element.String())
	}
	return files, nil
}
