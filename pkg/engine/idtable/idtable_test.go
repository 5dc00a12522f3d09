// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package idtable

import "testing"

func TestDynamicTable(t *testing.T) {
	tbl := NewDynamicTable(3)
	r0 := tbl.AppendEmptyRow()
	tbl.Set(r0, 0, 1)
	tbl.Set(r0, 1, 2)
	tbl.Set(r0, 2, 3)
	r1 := tbl.AppendEmptyRow()
	tbl.Set(r1, 0, 4)
	tbl.Set(r1, 1, 5)
	tbl.Set(r1, 2, 6)

	if got, want := tbl.NumRows(), 2; got != want {
		t.Fatalf("NumRows() = %d, want %d", got, want)
	}
	if got, want := tbl.NumColumns(), 3; got != want {
		t.Fatalf("NumColumns() = %d, want %d", got, want)
	}
	for r, want := range [][]Id{{1, 2, 3}, {4, 5, 6}} {
		for c, w := range want {
			if got := tbl.At(r, c); got != w {
				t.Errorf("At(%d,%d) = %d, want %d", r, c, got, w)
			}
		}
	}
	if got, want := tbl.Column(1), []Id{2, 5}; !idsEqual(got, want) {
		t.Errorf("Column(1) = %v, want %v", got, want)
	}
}

func TestTable2(t *testing.T) {
	tbl := NewTable2()
	for i, pair := range [][2]Id{{1, 10}, {2, 20}, {3, 30}} {
		r := tbl.AppendEmptyRow()
		if r != i {
			t.Fatalf("AppendEmptyRow() = %d, want %d", r, i)
		}
		tbl.Set(r, 0, pair[0])
		tbl.Set(r, 1, pair[1])
	}
	if got, want := tbl.NumRows(), 3; got != want {
		t.Fatalf("NumRows() = %d, want %d", got, want)
	}
	if got, want := tbl.Column(0), []Id{1, 2, 3}; !idsEqual(got, want) {
		t.Errorf("Column(0) = %v, want %v", got, want)
	}
	if got, want := tbl.Column(1), []Id{10, 20, 30}; !idsEqual(got, want) {
		t.Errorf("Column(1) = %v, want %v", got, want)
	}
}

func TestTable2PanicsOnBadColumn(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range column")
		}
	}()
	tbl := NewTable2()
	tbl.AppendEmptyRow()
	tbl.At(0, 2)
}

func idsEqual(a, b []Id) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
