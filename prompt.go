// Copyright 2025 ncquota Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package ncquota

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

var (
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

// Confirmer gates the batch run on interactive yes/no prompts. There is
// deliberately no timeout and no way to pre-supply an answer.
type Confirmer struct {
	out     io.Writer
	scanner *bufio.Scanner
}

func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{
		out:     out,
		scanner: bufio.NewScanner(in),
	}
}

// Confirm blocks on a yes/no prompt, re-prompting until the answer
// starts with y or n (case-insensitive). End of input counts as no.
func (c *Confirmer) Confirm(prompt string) bool {
	for {
		fmt.Fprintf(c.out, "%s [y/n]: ", prompt)

		if !c.scanner.Scan() {
			return false
		}

		answer := strings.ToLower(strings.TrimSpace(c.scanner.Text()))
		if strings.HasPrefix(answer, "y") {
			return true
		}
		if strings.HasPrefix(answer, "n") {
			return false
		}
	}
}

// ConfirmApply echoes the parsed quota and its consequence, then asks
// for confirmation. A literal zero quota requires two further
// confirmations on top of the standard one. Returns false as soon as
// any prompt is declined.
func (c *Confirmer) ConfirmApply(spec QuotaSpec) bool {
	fmt.Fprintf(c.out, "Quota for ALL users will be set to %s", spec.Literal)
	if spec.Bytes > 0 {
		fmt.Fprintf(c.out, " (%s)", humanize.Bytes(spec.Bytes))
	}
	fmt.Fprintln(c.out, ".")

	if !c.Confirm("Continue?") {
		return false
	}

	if spec.IsZero() {
		yellow.Fprintf(c.out, "WARNING: a quota of %s blocks all new uploads for every user.\n", spec.Literal)
		if !c.Confirm("Are you sure?") {
			return false
		}

		red.Fprintf(c.out, "This cannot be undone by this tool.\n")
		if !c.Confirm("Are you REALLY sure?") {
			return false
		}
	}

	return true
}
