package cmd

import (
	"reflect"
	"testing"
)

func TestSplitAccounts(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"ISA", []string{"ISA"}},
		{"ISA,연금저축", []string{"ISA", "연금저축"}},
		{" ISA , 연금저축 ", []string{"ISA", "연금저축"}},
		{",,ISA,", []string{"ISA"}},
	}
	for _, tc := range tests {
		if got := splitAccounts(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitAccounts(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
