package templates

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer translates gallery UI copy. Category labels come from the backend
// and never pass through it.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates key, falling back to formatting the key itself when no
// localizer is set.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc == nil {
		keyString, ok := key.(string)
		if !ok {
			return ""
		}
		if len(args) == 0 {
			return keyString
		}
		return fmt.Sprintf(keyString, args...)
	}
	return loc.Sprintf(key, args...)
}
