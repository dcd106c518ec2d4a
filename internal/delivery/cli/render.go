package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/trainmeet/internal/usecase/dto"
)

const accentColor = lipgloss.Color("99")

var (
	titleStyle   = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle  = lipgloss.NewStyle().Foreground(accentColor).Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

var legHeaders = []string{"", "departure_station", "arrival_station", "departure_time", "arrival_time", "duration"}

func theme() *huh.Theme {
	t := huh.ThemeCharm()
	t.Focused.Title = t.Focused.Title.Foreground(accentColor).Bold(true)
	t.Focused.Base = t.Focused.Base.BorderForeground(accentColor)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(accentColor)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accentColor)
	return t
}

// RenderPlan prints one table and map link per found route and the
// "no route" notice for every other start place.
func RenderPlan(w io.Writer, resp *dto.PlanResponse) {
	if resp == nil {
		return
	}
	for _, route := range resp.Routes {
		if !route.Found {
			fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("No route found. (%s)", route.Start)))
			fmt.Fprintln(w)
			continue
		}

		fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Train route from %s to %s", route.Start, route.Destination)))
		fmt.Fprintln(w, legTable(route))
		fmt.Fprintln(w, mutedStyle.Render("Map: ")+route.MapEmbedURL)
		fmt.Fprintln(w)
	}
}

func legTable(route dto.RouteResponse) string {
	rows := make([][]string, 0, len(route.Legs))
	for i, leg := range route.Legs {
		rows = append(rows, []string{
			strconv.Itoa(i),
			leg.DepartureStation,
			leg.ArrivalStation,
			leg.DepartureTime,
			leg.ArrivalTime,
			leg.Duration,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(legHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
