package catalog

// LabelIndex resolves display labels for category keys.
//
// It is a reverse key index built once per fetch. When several labels point
// at the same key the first one in LabelMap order wins.
type LabelIndex struct {
	byKey map[string]string
}

// NewLabelIndex builds an index over labels.
func NewLabelIndex(labels LabelMap) LabelIndex {
	byKey := make(map[string]string, len(labels))
	for _, entry := range labels {
		if _, seen := byKey[entry.Key]; seen {
			continue
		}
		byKey[entry.Key] = entry.Label
	}
	return LabelIndex{byKey: byKey}
}

// DisplayName returns the label for key, or key itself when no label maps to it.
func (i LabelIndex) DisplayName(key string) string {
	if label, ok := i.byKey[key]; ok {
		return label
	}
	return key
}
