package dialog

import (
	"encoding/json"
	"strings"
)

// attributeLabel renders an item's attribute tag for clarification lists.
// Tags are sometimes stored as a JSON list of titles; anything undecodable
// is shown as-is.
func attributeLabel(title string) string {
	if title == "" {
		return "N/A"
	}

	var titles []string
	if err := json.Unmarshal([]byte(title), &titles); err == nil && len(titles) > 0 {
		return `(["` + strings.Join(titles, `", "`) + `"])`
	}
	return "(" + title + ")"
}
