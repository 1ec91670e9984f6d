package ui

import "strings"

const defaultStatusClass = "bg-gray-100 text-gray-800"

// statusClasses maps lowercased status labels to badge classes.
var statusClasses = map[string]string{
	"not started": "bg-gray-100 text-gray-800",
	"backlog":     "bg-purple-100 text-purple-800",
	"in progress": "bg-blue-100 text-blue-800",
	"in review":   "bg-yellow-100 text-yellow-800",
	"on hold":     "bg-red-100 text-red-800",
	"done":        "bg-green-100 text-green-800",
	"cancelled":   "bg-gray-100 text-gray-500 line-through",
}

// StatusClass returns the badge classes for a status label. Unknown labels
// get the neutral style.
func StatusClass(status string) string {
	if class, ok := statusClasses[strings.ToLower(strings.TrimSpace(status))]; ok {
		return class
	}
	return defaultStatusClass
}
