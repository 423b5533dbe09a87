package server

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/aRestless/nxview/pkg/nxapi"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"index",
	"interfaces",
	"interface_detail",
	"device_info",
	"non_vlan",
	"history",
}

var funcMap = template.FuncMap{
	"columns": nxapi.Fields,
	"field": func(intf nxapi.Interface, key string) any {
		v, ok := intf[key]
		if !ok || v == nil {
			return "-"
		}
		return v
	},
}

func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcMap).ParseFS(templateFS, "templates/layout.html", fmt.Sprintf("templates/%s.html", name))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return pages, nil
}
