package httpparse

import "testing"

func TestDefaultLimits(t *testing.T) {
	l := DefaultLimits()
	if l.MaxMsgLen != 2048 || l.MaxHdrLen != 4108 || l.MaxHdrNum != 255 || l.MaxLen != 4096 {
		t.Fatalf("unexpected defaults: %+v", l)
	}
}

func TestNewLimitsOptions(t *testing.T) {
	l := NewLimits(WithMaxMsgLen(10), WithMaxHdrLen(20), WithMaxHdrNum(3), WithMaxLen(40))
	want := Limits{MaxMsgLen: 10, MaxHdrLen: 20, MaxHdrNum: 3, MaxLen: 40}
	if l != want {
		t.Fatalf("got %+v, want %+v", l, want)
	}
}

func TestNewLimitsPartialOverride(t *testing.T) {
	l := NewLimits(WithMaxHdrNum(1))
	d := DefaultLimits()
	if l.MaxHdrNum != 1 {
		t.Fatalf("got MaxHdrNum=%d, want 1", l.MaxHdrNum)
	}
	if l.MaxMsgLen != d.MaxMsgLen || l.MaxHdrLen != d.MaxHdrLen || l.MaxLen != d.MaxLen {
		t.Fatalf("unrelated fields were changed by a single option: %+v", l)
	}
}
