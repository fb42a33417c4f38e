package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/net/http/httpguts"

	"github.com/httpparse/httpparse"
)

func newSelftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Cross-check TCHAR/VCHAR classification against golang.org/x/net/http/httpguts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelftest()
		},
	}
}

// runSelftest walks every single-byte field-name and field-value and
// compares this package's token/vchar validators against httpguts's
// independently implemented versions, as an oracle for the hand-derived
// classification tables in tables.go.
//
// httpguts.ValidHeaderFieldValue validates a raw field-value, which may
// carry interior SP/HTAB; httpparse.Vchar validates already-trimmed
// field-content and rejects bare SP/HT, so those two bytes are excluded
// from the vchar comparison rather than reported as false mismatches.
func runSelftest() error {
	mismatches := 0
	for c := 0; c < 256; c++ {
		b := byte(c)
		s := string(b)

		wantTok := httpguts.ValidHeaderFieldName(s)
		gotTok := httpparse.Tchar([]byte{b}) == nil
		if wantTok != gotTok {
			mismatches++
			fmt.Printf("tchar mismatch at 0x%02x: httpguts=%v httpparse=%v\n", b, wantTok, gotTok)
		}

		if b == ' ' || b == '\t' {
			continue
		}
		wantVal := httpguts.ValidHeaderFieldValue(s)
		gotVal := httpparse.Vchar([]byte{b}) == nil
		if wantVal != gotVal {
			mismatches++
			fmt.Printf("vchar mismatch at 0x%02x: httpguts=%v httpparse=%v\n", b, wantVal, gotVal)
		}
	}
	if mismatches > 0 {
		return fmt.Errorf("%d classification mismatches against httpguts oracle", mismatches)
	}
	fmt.Println("selftest ok: no classification mismatches")
	return nil
}
