// Package display renders calculation results for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/firsthand/internal/deck"
	"github.com/lox/firsthand/internal/handsample"
	"github.com/lox/firsthand/internal/handtrap"
	"github.com/lox/firsthand/internal/hypergeo"
	"github.com/lox/firsthand/internal/sim"
)

// DisableColor forces plain output, for pipes and tests.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Result renders the full calculation: per-combo rates, the combined
// rate and the multi sections, when present.
func Result(out io.Writer, r *sim.Result) {
	fmt.Fprintf(out, "%s\n", headerStyle.Render(
		fmt.Sprintf("deck %d, hand %d, %d simulations", r.DeckSize, r.HandSize, r.Simulations)))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("combo"), headerStyle.Render("chance"))
	for _, cr := range r.Individual {
		if !cr.Verdict.OK() {
			fmt.Fprintf(w, "%s\t%s\n",
				nameStyle.Render(cr.Name),
				errorStyle.Render(cr.Verdict.Error()))
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n",
			nameStyle.Render(cr.Name),
			percentStyle.Render(fmt.Sprintf("%.2f%%", cr.Probability)))
	}
	if r.Combined != nil {
		fmt.Fprintf(w, "%s\t%s\n",
			nameStyle.Render("any combo"),
			percentStyle.Render(fmt.Sprintf("%.2f%%", *r.Combined)))
	}
	w.Flush()

	if r.MultiStarter != nil {
		fmt.Fprintln(out)
		multiStarter(out, r.MultiStarter)
	}
	if r.MultiHandTrap != nil {
		fmt.Fprintln(out)
		multiHandTrap(out, r.MultiHandTrap)
	}
}

func multiStarter(out io.Writer, m *sim.MultiStarterResult) {
	fmt.Fprintf(out, "%s\n", headerStyle.Render(
		fmt.Sprintf("multiple starters (%d independent)", m.IndependentStarters)))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "2+ distinct\t%s\n", percentStyle.Render(fmt.Sprintf("%.2f%%", m.TwoPlus)))
	if m.ThreePlus != nil {
		fmt.Fprintf(w, "3+ distinct\t%s\n", percentStyle.Render(fmt.Sprintf("%.2f%%", *m.ThreePlus)))
	}
	w.Flush()
}

func multiHandTrap(out io.Writer, m *sim.MultiHandTrapResult) {
	fmt.Fprintf(out, "%s\n", headerStyle.Render(
		fmt.Sprintf("multiple hand traps (%d unique)", m.UniqueHandTraps)))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "2+ distinct\t%s\n", percentStyle.Render(fmt.Sprintf("%.2f%%", m.TwoPlus)))
	if m.ThreePlus != nil {
		fmt.Fprintf(w, "3+ distinct\t%s\n", percentStyle.Render(fmt.Sprintf("%.2f%%", *m.ThreePlus)))
	}
	if m.FourPlus != nil {
		fmt.Fprintf(w, "4+ distinct\t%s\n", percentStyle.Render(fmt.Sprintf("%.2f%%", *m.FourPlus)))
	}
	w.Flush()
}

// Formula renders the per-card hypergeometric breakdown for a combo.
func Formula(out io.Writer, comboName string, f hypergeo.Formula) {
	fmt.Fprintf(out, "%s\n", headerStyle.Render(comboName))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, sc := range f.Scenarios {
		fmt.Fprintf(w, "%s\t%s\t\n",
			nameStyle.Render(sc.CardName),
			dimStyle.Render(fmt.Sprintf("%d copies, %d-%d in hand", sc.Copies, sc.Min, sc.Max)))
		for _, line := range sc.Lines {
			fmt.Fprintf(w, "  exactly %d\t%s\t%s\n",
				line.K,
				percentStyle.Render(fmt.Sprintf("%.2f%%", line.Percent)),
				formulaStyle.Render(line.Expression))
		}
		fmt.Fprintf(w, "  subtotal\t%s\t\n", percentStyle.Render(fmt.Sprintf("%.2f%%", sc.Total)))
	}
	w.Flush()

	label := "overall (exact)"
	style := percentStyle
	if !f.OverallExact {
		label = "overall (simulated)"
		style = approxStyle
	}
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render(label), style.Render(fmt.Sprintf("%.2f%%", f.Overall)))
}

// Hand renders one sampled opening hand.
func Hand(out io.Writer, slots []handsample.Slot) {
	parts := make([]string, 0, len(slots))
	for _, slot := range slots {
		if slot.Blank {
			parts = append(parts, dimStyle.Render("(other)"))
			continue
		}
		name := nameStyle.Render(slot.Name)
		if slot.Card != nil {
			name += dimStyle.Render(fmt.Sprintf(" [%s]", slot.Card.Category))
		}
		parts = append(parts, name)
	}
	fmt.Fprintf(out, "%s\n", strings.Join(parts, "  "))
}

// HandTraps renders the detected hand traps of a deck with their copy
// counts and total.
func HandTraps(out io.Writer, traps []handtrap.CardCopies) {
	if len(traps) == 0 {
		fmt.Fprintf(out, "%s\n", dimStyle.Render("no hand traps detected"))
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("hand trap"), headerStyle.Render("copies"))
	total := 0
	for _, cc := range traps {
		fmt.Fprintf(w, "%s\t%d\n", nameStyle.Render(cc.Card.Name), cc.Copies)
		total += cc.Copies
	}
	fmt.Fprintf(w, "%s\t%d\n", headerStyle.Render("total"), total)
	w.Flush()
}

// ImportReport renders what a ydk import relocated, rejected or could
// not resolve. Silent when the import was clean.
func ImportReport(out io.Writer, report *deck.ImportReport) {
	if report == nil {
		return
	}
	for _, id := range report.Relocated {
		fmt.Fprintf(out, "%s\n", approxStyle.Render(fmt.Sprintf("relocated %d to its required zone", id)))
	}
	for _, id := range report.Unknown {
		fmt.Fprintf(out, "%s\n", approxStyle.Render(fmt.Sprintf("unknown card id %d, imported as placeholder", id)))
	}
	for _, rej := range report.Rejected {
		fmt.Fprintf(out, "%s\n", errorStyle.Render(rej.Error()))
	}
}
