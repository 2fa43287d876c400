// internal/api/web/web.go

// Package web holds the embedded HTML assets served by the HTTP API.
package web

import (
	"embed"
	"html/template"
)

//go:embed dashboard.html health.html
var files embed.FS

// Dashboard is the static frontend page served at the root path.
var Dashboard = mustRead("dashboard.html")

// HealthTemplate renders the browser view of the health endpoint.
var HealthTemplate = template.Must(template.ParseFS(files, "health.html"))

func mustRead(name string) []byte {
	data, err := files.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}
