package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"shiftscan/pkg/timesheet"
)

var (
	editHeader  = color.New(color.FgHiYellow, color.Bold)
	editName    = color.New(color.FgHiYellow)
	editTime    = color.New(color.FgHiMagenta)
	finalHeader = color.New(color.FgHiBlue, color.Bold)
	finalName   = color.New(color.FgHiBlue, color.Bold)
	finalTime   = color.New(color.FgHiCyan)
	warn        = color.New(color.FgHiRed)
)

// shiftRef addresses one session for the edit loop: a running display
// number plus its (employee, index) location in the sheet.
type shiftRef struct {
	id    int
	name  string
	index int
	sess  timesheet.Session
}

func shiftRefs(sheet *timesheet.Sheet) []shiftRef {
	var refs []shiftRef
	for _, emp := range sheet.Employees() {
		for i, sess := range emp.Sessions {
			refs = append(refs, shiftRef{id: len(refs) + 1, name: emp.Name, index: i, sess: sess})
		}
	}
	return refs
}

func printDiagnostics(sheet *timesheet.Sheet) {
	for _, d := range sheet.Diagnostics() {
		warn.Printf("warning: %s\n", d)
	}
}

func printEditTable(refs []shiftRef) {
	editHeader.Println(strings.Repeat("=", 60))
	editHeader.Println("            Current shifts for editing")
	editHeader.Println(strings.Repeat("=", 60))
	if len(refs) == 0 {
		warn.Println("No shifts to display.")
		return
	}
	editHeader.Println("No. Name      IN        -> OUT        Hrs")
	for _, r := range refs {
		note := ""
		if r.sess.Flagged {
			note = warn.Sprint(" (early leave?)")
		}
		fmt.Printf("%s %s: %s = %s%s\n",
			editHeader.Sprintf("%3d.", r.id),
			editName.Sprintf("%-9s", r.name),
			editTime.Sprintf("IN %-7s -> OUT %-7s", r.sess.In, r.sess.Out),
			editHeader.Sprintf("%4.2f hrs", r.sess.Hours),
			note,
		)
	}
	editHeader.Println(strings.Repeat("=", 60))
}

func printSummary(sheet *timesheet.Sheet) {
	fmt.Println()
	finalHeader.Println(strings.Repeat("=", 40))
	finalHeader.Println("        Final weekly hours summary")
	finalHeader.Println(strings.Repeat("=", 40))

	emps := sheet.Employees()
	if len(emps) == 0 {
		warn.Println("No data to summarize.")
		return
	}
	for _, emp := range emps {
		fmt.Printf("%s: %s\n", finalName.Sprint(emp.Name), finalTime.Sprintf("%.2f hrs", emp.TotalHours))
		if len(emp.Sessions) == 0 {
			fmt.Println("   (no sessions found)")
			continue
		}
		for _, sess := range emp.Sessions {
			note := ""
			if sess.Flagged {
				note = warn.Sprint(" !")
			}
			fmt.Printf("   - %s = %s%s\n",
				finalTime.Sprintf("IN %s -> OUT %s", sess.In, sess.Out),
				finalTime.Sprintf("%4.2f hrs", sess.Hours),
				note,
			)
		}
		fmt.Println()
	}
	finalHeader.Println("--- analysis complete ---")
}
