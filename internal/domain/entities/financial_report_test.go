package entities

import "testing"

func TestFinancialReport_SavingsSplit(t *testing.T) {
	economia, outros := FinancialReport{Renda: 3000, Economia: 500}.SavingsSplit()
	if economia != 500 || outros != 2500 {
		t.Fatalf("unexpected split: %v %v", economia, outros)
	}

	_, outros = FinancialReport{Renda: 100, Economia: 500}.SavingsSplit()
	if outros != 0 {
		t.Fatalf("expected floor at 0, got %v", outros)
	}
}

func TestHistoryHelpers(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Content: "a"},
		{Role: RoleAssistant, Content: "q1"},
		{Role: RoleUser, Content: "b"},
		{Role: RoleAssistant, Content: "q2"},
	}
	if got := CountAssistant(history); got != 2 {
		t.Fatalf("expected 2 assistant messages, got %d", got)
	}
	users := UserContents(history)
	if len(users) != 2 || users[0] != "a" || users[1] != "b" {
		t.Fatalf("unexpected user contents: %v", users)
	}
	if !RoleUser.IsValid() || Role("system").IsValid() {
		t.Fatalf("unexpected role validity")
	}
}
