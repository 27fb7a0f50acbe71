package persona

import (
	"strings"
	"testing"

	"irchumanizer/internal/config"
	"irchumanizer/internal/mind"
)

func TestGenerateHonorsOverrides(t *testing.T) {
	cfg := config.PersonalityConfig{
		Name:          "Momo",
		Gender:        "m",
		Age:           33,
		City:          "Lyon",
		Region:        "69",
		HumorLevel:    0.6,
		Casualness:    0.7,
		Friendliness:  0.8,
		GeekLevel:     0.4,
		WritingStyles: []string{"sms"},
		Interests:     []string{"jeux vidéo"},
	}
	p := Generate(cfg, mind.NewDice(1))

	if p.Name != "Momo" || p.Gender != "M" || p.Age != 33 {
		t.Errorf("identity overrides not honored: %+v", p)
	}
	if p.Location.City != "Lyon" || p.Location.Region != "69" {
		t.Errorf("location override not honored: %+v", p.Location)
	}
	if p.HumorLevel != 0.6 || p.GeekLevel != 0.4 {
		t.Errorf("trait overrides not honored: %+v", p)
	}
	if len(p.WritingStyles) != 1 || p.WritingStyles[0] != "sms" {
		t.Errorf("styles override not honored: %v", p.WritingStyles)
	}
}

func TestGenerateSamplesWithinRanges(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		p := Generate(config.PersonalityConfig{}, mind.NewDice(seed))

		if p.Name == "" {
			t.Fatal("sampled profile has no name")
		}
		if p.Gender != "M" && p.Gender != "F" && p.Gender != "NB" {
			t.Errorf("sampled gender %q invalid", p.Gender)
		}
		if p.Age < 16 || p.Age > 45 {
			t.Errorf("sampled age %d out of [16, 45]", p.Age)
		}
		if p.HumorLevel < 0.3 || p.HumorLevel > 0.9 {
			t.Errorf("sampled humor %v out of [0.3, 0.9]", p.HumorLevel)
		}
		if p.Casualness < 0.4 || p.Casualness > 1.0 {
			t.Errorf("sampled casualness %v out of [0.4, 1.0]", p.Casualness)
		}
		if len(p.WritingStyles) < 1 || len(p.WritingStyles) > 3 {
			t.Errorf("sampled %d styles, want 1..3", len(p.WritingStyles))
		}
		if len(p.Interests) < 3 || len(p.Interests) > 8 {
			t.Errorf("sampled %d interests, want 3..8", len(p.Interests))
		}
		if p.Location.City == "" || p.Location.Region == "" {
			t.Errorf("sampled location incomplete: %+v", p.Location)
		}
	}
}

func TestGenerateSeedReproducible(t *testing.T) {
	a := Generate(config.PersonalityConfig{}, mind.NewDice(42))
	b := Generate(config.PersonalityConfig{}, mind.NewDice(42))
	if a.Name != b.Name || a.Age != b.Age || a.Location != b.Location {
		t.Errorf("same seed built different personas: %+v vs %+v", a, b)
	}
}

func TestPromptContext(t *testing.T) {
	cfg := config.PersonalityConfig{
		Name: "Momo", Gender: "M", Age: 33, City: "Lyon", Region: "69",
	}
	p := Generate(cfg, mind.NewDice(1))

	prompt := p.PromptContext()
	for _, want := range []string{"Momo", "Lyon", "33 ans", "Tu es un homme"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt context missing %q:\n%s", want, prompt)
		}
	}
}
