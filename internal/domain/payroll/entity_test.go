package payroll

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to RecordStatus
		want     bool
	}{
		{RecordStatusPending, RecordStatusProcessed, true},
		{RecordStatusProcessed, RecordStatusPaid, true},
		{RecordStatusPending, RecordStatusPaid, true},
		{RecordStatusProcessed, RecordStatusPending, false},
		{RecordStatusPaid, RecordStatusProcessed, false},
		{RecordStatusPaid, RecordStatusPending, false},
		{RecordStatusPending, RecordStatusPending, false},
		{RecordStatusPaid, RecordStatusPaid, false},
		{"bogus", RecordStatusPaid, false},
		{RecordStatusPending, "bogus", false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestValidStatuses(t *testing.T) {
	for _, s := range []string{"pending", "processed", "paid"} {
		if !ValidRecordStatus(s) {
			t.Errorf("ValidRecordStatus(%q) = false", s)
		}
	}
	if ValidRecordStatus("draft") {
		t.Error("ValidRecordStatus(draft) = true")
	}

	for _, s := range []string{"open", "processing", "locked"} {
		if !ValidPeriodStatus(s) {
			t.Errorf("ValidPeriodStatus(%q) = false", s)
		}
	}
	if ValidPeriodStatus("closed") {
		t.Error("ValidPeriodStatus(closed) = true")
	}
}
