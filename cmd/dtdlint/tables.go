package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/lestrrat-go/dtd"
	"github.com/olekukonko/tablewriter"
)

func renderTables(out io.Writer, d *dtd.DTD) {
	if elements := d.Elements(); len(elements) > 0 {
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Element", "Content", "Mixed", "Attributes"})
		table.SetAutoWrapText(false)
		for _, e := range elements {
			table.Append([]string{
				e.Name(),
				e.ContentSpecification(),
				strconv.FormatBool(e.IsMixed()),
				strconv.Itoa(len(e.Attributes())),
			})
		}
		table.Render()

		table = tablewriter.NewWriter(out)
		table.SetHeader([]string{"Element", "Attribute", "Type", "Default", "Value"})
		table.SetAutoWrapText(false)
		var rows int
		for _, e := range elements {
			for _, attr := range e.Attributes() {
				typ := attr.Type().String()
				if enum := attr.Enumeration(); enum != nil {
					typ += " (" + strings.Join(enum, "|") + ")"
				}
				table.Append([]string{e.Name(), attr.Name(), typ, attr.Default().String(), attr.DefaultValue()})
				rows++
			}
		}
		if rows > 0 {
			table.Render()
		}
	}

	entities := append(d.ParameterEntities(), d.Entities()...)
	if len(entities) > 0 {
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Entity", "Type", "Content", "System ID"})
		table.SetAutoWrapText(false)
		for _, e := range entities {
			name := e.Name()
			if e.IsParameter() {
				name = "%" + name
			}
			sys, _ := e.SystemID()
			table.Append([]string{name, e.EntityType().String(), e.Content(), sys})
		}
		table.Render()
	}

	if notations := d.Notations(); len(notations) > 0 {
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Notation", "Public ID", "System ID"})
		table.SetAutoWrapText(false)
		for _, n := range notations {
			pub, _ := n.PublicID()
			sys, _ := n.SystemID()
			table.Append([]string{n.Name(), pub, sys})
		}
		table.Render()
	}
}
