// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/toeirei/examlist/internal/exam"
	"github.com/toeirei/examlist/internal/i18n"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).
			Border(lipgloss.NormalBorder(), false).
			BorderBottom(true)
	blockStyle = lipgloss.NewStyle().PaddingLeft(2)
)

// styled reports whether w is a terminal worth decorating.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderExams writes the exams in calendar order, separated by blank lines.
func renderExams(w io.Writer, exams []exam.Exam) {
	if len(exams) == 0 {
		_, _ = fmt.Fprintln(w, i18n.T("list.empty"))
		return
	}

	header := i18n.T("list.header", len(exams))
	decorate := styled(w)
	if decorate {
		header = headerStyle.Render(header)
	}
	_, _ = fmt.Fprintln(w, header)

	blocks := make([]string, 0, len(exams))
	for _, e := range exams {
		block := strings.TrimRight(e.String(), "\n")
		if decorate {
			block = blockStyle.Render(block)
		}
		blocks = append(blocks, block)
	}
	_, _ = fmt.Fprintln(w, strings.Join(blocks, "\n\n"))
}
