package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/bridgedeal/deck"
)

func writeProfile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.hcl")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write test profile file: %v", err)
	}
	return path
}

func TestLoadHandProfileBasic(t *testing.T) {
	path := writeProfile(t, `
profile_name = "basic"
dealer = "N"
dealing_order = ["N", "E", "S", "W"]

seat "N" {
  subprofile {
    weight = 100
    spades { min_cards = 0 max_cards = 13 min_hcp = 0 max_hcp = 37 }
    hearts { min_cards = 0 max_cards = 13 min_hcp = 0 max_hcp = 37 }
    diamonds { min_cards = 0 max_cards = 13 min_hcp = 0 max_hcp = 37 }
    clubs { min_cards = 0 max_cards = 13 min_hcp = 0 max_hcp = 37 }
    total_min_hcp = 0
    total_max_hcp = 37
  }
}
`)

	p, err := LoadHandProfile(path)
	if err != nil {
		t.Fatalf("LoadHandProfile returned error: %v", err)
	}
	if p.ProfileName != "basic" {
		t.Errorf("ProfileName = %q, want %q", p.ProfileName, "basic")
	}
	if p.Dealer != deck.North {
		t.Errorf("Dealer = %v, want North", p.Dealer)
	}
	sp, ok := p.SeatProfiles[deck.North]
	if !ok || len(sp.Subprofiles) != 1 {
		t.Fatalf("expected one North subprofile, got %+v", sp)
	}
}

func TestLoadHandProfileRandomSuit(t *testing.T) {
	path := writeProfile(t, `
profile_name = "rs"
dealer = "W"
dealing_order = ["N", "E", "S", "W"]

seat "W" {
  subprofile {
    weight = 100
    total_min_hcp = 0
    total_max_hcp = 37
    random_suit {
      allowed_suits = ["S", "H"]
      required_suits_count = 1
      suit_range { min_cards = 5 max_cards = 13 min_hcp = 0 max_hcp = 37 }
    }
  }
}
`)

	p, err := LoadHandProfile(path)
	if err != nil {
		t.Fatalf("LoadHandProfile returned error: %v", err)
	}
	sub := p.SeatProfiles[deck.West].Subprofiles[0]
	rs, ok := sub.RandomSuit()
	if !ok {
		t.Fatal("expected a random suit constraint")
	}
	if rs.RequiredSuitsCount != 1 || len(rs.AllowedSuits) != 2 {
		t.Errorf("unexpected RS constraint: %+v", rs)
	}
}

func TestLoadHandProfileInvalidDealerErrors(t *testing.T) {
	path := writeProfile(t, `
profile_name = "bad"
dealer = "Q"
dealing_order = ["N", "E", "S", "W"]
`)

	if _, err := LoadHandProfile(path); err == nil {
		t.Fatal("expected an error for invalid dealer seat")
	}
}

func TestLoadHandProfileFailsValidation(t *testing.T) {
	path := writeProfile(t, `
profile_name = "unbalanced"
dealer = "N"
dealing_order = ["N", "E", "S", "W"]

seat "N" {
  subprofile {
    weight = 40
    total_min_hcp = 0
    total_max_hcp = 37
  }
}
`)

	if _, err := LoadHandProfile(path); err == nil {
		t.Fatal("expected validation error for a lone subprofile weighted at 40%")
	}
}
