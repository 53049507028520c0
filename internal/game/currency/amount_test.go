package currency

import (
	"testing"

	"pgregory.net/rapid"
)

func TestAmount_FromPennies_Zero(t *testing.T) {
	a := FromPennies(0)
	if a.Shillings != 0 || a.Pennies != 0 {
		t.Fatalf("expected 0,0 got %d,%d", a.Shillings, a.Pennies)
	}
}

func TestAmount_FromPennies_ExactShilling(t *testing.T) {
	a := FromPennies(12)
	if a.Shillings != 1 || a.Pennies != 0 {
		t.Fatalf("expected 1,0 got %d,%d", a.Shillings, a.Pennies)
	}
}

func TestAmount_FromPennies_LegacyGold(t *testing.T) {
	// The historical save schema stored 130 gold; the pair form is 10s 10p.
	a := FromPennies(130)
	if a.Shillings != 10 || a.Pennies != 10 {
		t.Fatalf("expected 10,10 got %d,%d", a.Shillings, a.Pennies)
	}
}

func TestAmount_Add_CarriesOverflow(t *testing.T) {
	a := Amount{Shillings: 1, Pennies: 10}
	a.Add(Amount{Pennies: 5})
	if a.Shillings != 2 || a.Pennies != 3 {
		t.Fatalf("expected 2,3 got %d,%d", a.Shillings, a.Pennies)
	}
}

func TestAmount_Remove_BorrowsFromShillings(t *testing.T) {
	a := Amount{Shillings: 2, Pennies: 3}
	ok := a.Remove(Amount{Pennies: 5})
	if !ok {
		t.Fatal("expected remove to succeed")
	}
	if a.Shillings != 1 || a.Pennies != 10 {
		t.Fatalf("expected 1,10 got %d,%d", a.Shillings, a.Pennies)
	}
}

func TestAmount_Remove_InsufficientLeavesUnchanged(t *testing.T) {
	a := Amount{Shillings: 0, Pennies: 7}
	ok := a.Remove(Amount{Shillings: 1})
	if ok {
		t.Fatal("expected remove to fail")
	}
	if a.Shillings != 0 || a.Pennies != 7 {
		t.Fatalf("amount mutated on failed remove: %d,%d", a.Shillings, a.Pennies)
	}
}

func TestAmount_Remove_ExactTotal(t *testing.T) {
	a := Amount{Shillings: 3, Pennies: 4}
	ok := a.Remove(Amount{Shillings: 3, Pennies: 4})
	if !ok {
		t.Fatal("expected remove to succeed")
	}
	if !a.IsZero() {
		t.Fatalf("expected zero, got %d,%d", a.Shillings, a.Pennies)
	}
}

func TestAmount_Format(t *testing.T) {
	cases := []struct {
		amount Amount
		want   string
	}{
		{Amount{}, "0 Pennies"},
		{Amount{Pennies: 1}, "1 Penny"},
		{Amount{Shillings: 1, Pennies: 0}, "1 Shilling, 0 Pennies"},
		{Amount{Shillings: 10, Pennies: 10}, "10 Shillings, 10 Pennies"},
	}
	for _, tc := range cases {
		if got := tc.amount.Format(); got != tc.want {
			t.Fatalf("Format(%+v): expected %q got %q", tc.amount, tc.want, got)
		}
	}
}

func TestProperty_FromPennies_Roundtrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(0, 1_000_000).Draw(t, "total")
		a := FromPennies(total)

		if a.TotalPennies() != total {
			t.Fatalf("roundtrip failed: %d*12+%d != %d", a.Shillings, a.Pennies, total)
		}
		if a.Pennies < 0 || a.Pennies >= PenniesPerShilling {
			t.Fatalf("pennies out of range: %d", a.Pennies)
		}
	})
}

func TestProperty_AddThenRemove_PreservesTotals(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := FromPennies(rapid.IntRange(0, 100_000).Draw(t, "held"))
		delta := Amount{
			Shillings: rapid.IntRange(0, 500).Draw(t, "ds"),
			Pennies:   rapid.IntRange(0, 500).Draw(t, "dp"),
		}
		before := a.TotalPennies()

		a.Add(delta)
		if a.Pennies < 0 || a.Pennies >= PenniesPerShilling {
			t.Fatalf("pennies out of range after add: %d", a.Pennies)
		}
		if a.TotalPennies() != before+delta.TotalPennies() {
			t.Fatalf("add changed total incorrectly")
		}

		if !a.Remove(delta) {
			t.Fatalf("remove of just-added delta failed")
		}
		if a.TotalPennies() != before {
			t.Fatalf("add/remove did not restore total: got %d want %d", a.TotalPennies(), before)
		}
	})
}

func TestProperty_Remove_FailsIffInsufficient(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := FromPennies(rapid.IntRange(0, 10_000).Draw(t, "held"))
		delta := FromPennies(rapid.IntRange(0, 10_000).Draw(t, "requested"))
		held := a.TotalPennies()

		ok := a.Remove(delta)
		if ok != (delta.TotalPennies() <= held) {
			t.Fatalf("remove success mismatch: held=%d requested=%d ok=%v", held, delta.TotalPennies(), ok)
		}
		if !ok && a.TotalPennies() != held {
			t.Fatalf("failed remove mutated amount")
		}
		if a.TotalPennies() < 0 {
			t.Fatalf("total went negative")
		}
	})
}
