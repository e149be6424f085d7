package label

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		code     string
		expected Symbol
		ok       bool
	}{
		{
			name:     "test_lookup_upper",
			code:     "USD",
			expected: USD,
			ok:       true,
		},
		{
			name:     "test_lookup_lower_spaces",
			code:     " eur ",
			expected: EUR,
			ok:       true,
		},
		{
			name: "test_lookup_unknown",
			code: "XXX",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ccy, ok := Lookup(tc.code)
			if diff := cmp.Diff(tc.ok, ok); diff != "" {
				t.Errorf("bad ok (-want, +got): %s", diff)
			}

			if diff := cmp.Diff(tc.expected, ccy.Symbol); diff != "" {
				t.Errorf("bad symbol (-want, +got): %s", diff)
			}
		})
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	if len(Names) != len(Currencies) {
		t.Errorf("currency names are not unique")
	}

	if diff := cmp.Diff(MMK, Names["myanmar kyat"]); diff != "" {
		t.Errorf("bad expected (-want, +got): %s", diff)
	}
}

func TestFlagOf(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff("🇲🇲", FlagOf(Reference)); diff != "" {
		t.Errorf("bad expected (-want, +got): %s", diff)
	}

	if diff := cmp.Diff(DefaultFlag, FlagOf("XXX")); diff != "" {
		t.Errorf("bad expected (-want, +got): %s", diff)
	}
}
