/*
Package effects tracks the cosmetic modes a front end switches on when it
recognizes certain words in the user's input.

The flags have no influence on transcoding. A State is not safe for
concurrent use; a front end keeps one State per session.
*/
package effects

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Notice is a message a front end should show once a mode changes.
type Notice string

// Notices raised by Observe.
const (
	NoticeJosue  Notice = "Josué mode activated! Welcome to the secret lab 🧪"
	NoticeMatrix Notice = "Welcome to the simulation 🧬"
	NoticeTrap   Notice = "Oops! The button got naughty 😈"
)

// State holds the cosmetic flags. Neon, Secret and Matrix persist until a
// reset word is seen; Trap is re-evaluated for every input.
type State struct {
	Neon          bool
	Secret        bool
	Matrix        bool
	Trap          bool
	JosueAlerted  bool
	MatrixAlerted bool
}

// Observe updates the flags from one input text and returns the notices to
// show, in order.
func (s *State) Observe(text string) []Notice {
	lower := cases.Lower(language.Und).String(text)
	var notices []Notice
	if strings.Contains(lower, "josué") || strings.Contains(lower, "neoncode") {
		s.Neon, s.Secret = true, true
		if strings.Contains(lower, "josué") && !s.JosueAlerted {
			notices = append(notices, NoticeJosue)
			s.JosueAlerted = true
		}
	}
	if strings.Contains(lower, "matrix") {
		s.Matrix = true
		if !s.MatrixAlerted {
			notices = append(notices, NoticeMatrix)
			s.MatrixAlerted = true
		}
	}
	if strings.Contains(lower, "normal") || strings.Contains(lower, "reset") {
		s.Reset()
	}
	s.Trap = strings.Contains(lower, "trampa")
	if s.Trap {
		notices = append(notices, NoticeTrap)
	}
	return notices
}

// Reset switches all persistent modes off and clears the alert latches.
func (s *State) Reset() {
	s.Neon, s.Secret, s.Matrix = false, false, false
	s.JosueAlerted, s.MatrixAlerted = false, false
}
