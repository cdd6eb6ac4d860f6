package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shiftscan/pkg/timesheet"
)

// runEditLoop lets the operator correct individual shifts before the final
// summary. It is a thin prompt loop over Sheet.Edit: bad input is rejected
// and re-prompted, never applied.
func runEditLoop(sheet *timesheet.Sheet, in io.Reader) {
	scanner := bufio.NewScanner(in)
	for {
		refs := shiftRefs(sheet)
		printEditTable(refs)
		if len(refs) == 0 {
			return
		}

		fmt.Print("\nShift no. to edit, or 'done': ")
		if !scanner.Scan() {
			return
		}
		choice := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if choice == "done" {
			return
		}
		id, err := strconv.Atoi(choice)
		if err != nil || id < 1 || id > len(refs) {
			warn.Println("Invalid shift number.")
			continue
		}
		ref := refs[id-1]

		fmt.Printf("Editing %s: IN %s -> OUT %s\n", ref.name, ref.sess.In, ref.sess.Out)
		inText, ok := promptTime(scanner, "New IN (HH:MM AM/PM) or Enter to keep: ", ref.sess.In, "AM")
		if !ok {
			return
		}
		outText, ok := promptTime(scanner, "New OUT (HH:MM AM/PM) or Enter to keep: ", ref.sess.Out, "PM")
		if !ok {
			return
		}

		if _, total, err := sheet.Edit(ref.name, ref.index, inText, outText); err != nil {
			warn.Printf("Rejected: %v\n", err)
		} else {
			editTime.Printf("Shift updated; %s now at %.2f hrs.\n", ref.name, total)
		}
	}
}

// promptTime reads a replacement clock value. A blank answer keeps the
// current value, read in the given default meridiem context (AM for IN,
// PM for OUT, matching how the sheet's bare times are interpreted).
func promptTime(scanner *bufio.Scanner, prompt, current, meridiem string) (string, bool) {
	fmt.Print(prompt)
	if !scanner.Scan() {
		return "", false
	}
	text := strings.TrimSpace(scanner.Text())
	if text == "" {
		return current + " " + meridiem, true
	}
	return text, true
}
