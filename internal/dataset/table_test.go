package dataset

import "testing"

func TestTable_NewAndAccess(t *testing.T) {
	tbl := New([]string{"Age", "Gender"}, 2)

	if tbl.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.NumRows())
	}
	if !tbl.HasColumn("Age") || !tbl.HasColumn("Gender") {
		t.Fatal("expected Age and Gender columns")
	}
	if tbl.HasColumn("Stage") {
		t.Error("unexpected Stage column")
	}

	tbl.Column("Age")[0] = StringCell("63")
	if tbl.Column("Age")[0].Raw != "63" {
		t.Errorf("expected raw 63, got %q", tbl.Column("Age")[0].Raw)
	}
}

func TestTable_SetColumnAppends(t *testing.T) {
	tbl := New([]string{"Age"}, 2)
	tbl.SetColumn("Risk_Score", []Cell{FloatCell(1.5), FloatCell(2.5)})

	cols := tbl.Columns()
	if len(cols) != 2 || cols[1] != "Risk_Score" {
		t.Fatalf("expected Risk_Score appended, got %v", cols)
	}
	if tbl.Column("Risk_Score")[1].Value != 2.5 {
		t.Errorf("expected 2.5, got %f", tbl.Column("Risk_Score")[1].Value)
	}
}

func TestTable_ProjectKeepsOrderAndDropsExtras(t *testing.T) {
	tbl := New([]string{"Extra", "Age", "Gender", "OS_Time"}, 1)

	out := tbl.Project([]string{"Age", "Gender", "OS_Time", "Event"})

	cols := out.Columns()
	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %v", cols)
	}
	if cols[0] != "Age" || cols[1] != "Gender" || cols[2] != "OS_Time" {
		t.Errorf("unexpected column order: %v", cols)
	}
	if out.HasColumn("Extra") {
		t.Error("expected Extra to be dropped")
	}
}

func TestCell_String(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{StringCell("Male"), "Male"},
		{FloatCell(1.5), "1.5"},
		{FloatCell(-1), "-1"},
		{MissingCell(), ""},
	}
	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("Cell.String() = %q, want %q", got, tt.want)
		}
	}
}
