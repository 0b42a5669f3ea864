// Package web holds the server-rendered pages.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var files embed.FS

var weekdays = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var funcs = template.FuncMap{
	"money": func(cents int64) string {
		return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
	},
	"clock": func(t time.Time) string {
		return t.Format("3:04 PM")
	},
	"longDate": func(t time.Time) string {
		return t.Format("Monday, Jan 2, 2006")
	},
	"weekday": func(d int) string {
		if d < 0 || d >= len(weekdays) {
			return ""
		}
		return weekdays[d]
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

// Templates parses the embedded pages. Every page renders through "base".
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "templates/*.html"))
}
