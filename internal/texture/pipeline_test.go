package texture

import (
	"strings"
	"testing"
	"unicode"

	"irchumanizer/internal/mind"
)

func TestApplyNeverEmpties(t *testing.T) {
	inputs := []string{
		"Salut tout le monde, ça va bien ?",
		"vraiment pas mal ce truc",
		"ok.",
		"?",
		".",
		"!",
		"a",
	}
	p := NewPipeline(mind.NewDice(1))
	for i := 0; i < 1000; i++ {
		for _, in := range inputs {
			if out := p.Apply(in); strings.TrimSpace(out) == "" {
				t.Fatalf("iteration %d: %q mangled to empty", i, in)
			}
		}
	}
}

func TestApplyAllStagesForced(t *testing.T) {
	p := NewPipeline(mind.ForcedDice(1))
	out := p.Apply("Vraiment beaucoup de travail aujourd'hui.")
	if strings.TrimSpace(out) == "" {
		t.Fatal("forced pipeline emptied the text")
	}
	first := []rune(out)[0]
	if unicode.IsUpper(first) {
		t.Errorf("forced lead-lowering left %q capitalized", out)
	}
}

func TestApplyTyposPreservesCase(t *testing.T) {
	got := replacePreservingCase("Vraiment top", "vraiment", "vréman")
	if got != "Vréman top" {
		t.Errorf("capitalized: got %q", got)
	}

	got = replacePreservingCase("VRAIMENT top", "vraiment", "vréman")
	if got != "VRÉMAN top" {
		t.Errorf("upper: got %q", got)
	}

	got = replacePreservingCase("vraiment top", "vraiment", "vréman")
	if got != "vréman top" {
		t.Errorf("lower: got %q", got)
	}

	got = replacePreservingCase("rien ici", "vraiment", "vréman")
	if got != "rien ici" {
		t.Errorf("no match should pass through, got %q", got)
	}
}

func TestDropTerminalPunctKeepsSingleChar(t *testing.T) {
	p := NewPipeline(mind.ForcedDice(1))
	if got := p.dropTerminalPunct("."); got != "." {
		t.Errorf("single punctuation must survive, got %q", got)
	}
	if got := p.dropTerminalPunct("ok!"); got != "ok" {
		t.Errorf("terminal punctuation should drop, got %q", got)
	}
}

func TestDropQuestionMarksKeepsContent(t *testing.T) {
	p := NewPipeline(mind.ForcedDice(1))
	if got := p.dropQuestionMarks("ça va ?"); strings.Contains(got, "?") {
		t.Errorf("question marks should drop, got %q", got)
	}
	if got := p.dropQuestionMarks("???"); got != "???" {
		t.Errorf("pure question marks must survive, got %q", got)
	}
}

func TestRepeatLetterSingleElongation(t *testing.T) {
	p := NewPipeline(mind.ForcedDice(1))
	in := "ouais"
	out := p.repeatLetter(in)
	if len(out) <= len(in) {
		t.Fatalf("forced elongation did not lengthen %q", in)
	}
	if len(out) > len(in)+3 {
		t.Errorf("at most three extra characters, got %q", out)
	}
}

func TestHesitationAttaches(t *testing.T) {
	p := NewPipeline(mind.ForcedDice(1))
	out := p.addHesitation("bon")
	if out == "bon" {
		t.Fatal("forced hesitation did not attach")
	}
	if !strings.Contains(out, "bon") {
		t.Errorf("original text lost: %q", out)
	}
}
