// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/detmath/literal"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#87CEEB"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// renderGrid draws v as a table: matrices get one row per matrix row and a
// c0..cM-1 header, vectors a single row under X Y Z W.
func renderGrid(v literal.Value) (string, error) {
	lit, err := literal.ParseLiteral(v.String())
	if err != nil {
		return "", err
	}

	var headers []string
	var rows [][]string
	if lit.IsMatrix() {
		headers = append(headers, "")
		for c := range lit.Cols {
			headers = append(headers, fmt.Sprintf("c%d", c))
		}
		for r, row := range lit.Grid() {
			rows = append(rows, append([]string{fmt.Sprintf("r%d", r)}, row...))
		}
	} else {
		headers = []string{"X", "Y", "Z", "W"}[:lit.Rows]
		rows = lit.Grid()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	return titleStyle.Render(lit.Name) + "\n" + t.String(), nil
}
