package domain

import "testing"

func TestTable_Loaded(t *testing.T) {
	tests := []struct {
		name   string
		status LoadStatus
		want   bool
	}{
		{name: "ok is loaded", status: LoadOK, want: true},
		{name: "empty is loaded", status: LoadEmpty, want: true},
		{name: "missing is not loaded", status: LoadMissing, want: false},
		{name: "malformed is not loaded", status: LoadMalformed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := Table[int]{Status: tt.status}
			if got := tbl.Loaded(); got != tt.want {
				t.Errorf("Loaded() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTable_LenAndIsEmpty(t *testing.T) {
	empty := Table[string]{Status: LoadEmpty}
	if empty.Len() != 0 || !empty.IsEmpty() {
		t.Errorf("empty table: Len() = %d, IsEmpty() = %v", empty.Len(), empty.IsEmpty())
	}

	full := Table[string]{Records: []string{"a", "b"}, Status: LoadOK}
	if full.Len() != 2 || full.IsEmpty() {
		t.Errorf("loaded table: Len() = %d, IsEmpty() = %v", full.Len(), full.IsEmpty())
	}
}
