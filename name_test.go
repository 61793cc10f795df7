package dtd_test

import (
	"testing"

	"github.com/lestrrat-go/dtd"
	"github.com/stretchr/testify/require"
)

func TestIsName(t *testing.T) {
	inputs := map[string]bool{
		"":          false,
		"a":         true,
		"_foo":      true,
		":ns":       true,
		"foo:bar":   true,
		"x-1.2":     true,
		"日本語":       true,
		"élément":   true,
		"1abc":      false,
		"-abc":      false,
		".abc":      false,
		"foo bar":   false,
		"foo|bar":   false,
		"#PCDATA":   false,
		"a·b":  true,
		"·b":   false,
		"a‿b":  true,
		"%pe;":      false,
		"foo\xffba": false,
	}

	for input, expected := range inputs {
		require.Equal(t, expected, dtd.IsName(input), "IsName(%q)", input)
	}
}

func TestIsNmToken(t *testing.T) {
	inputs := map[string]bool{
		"":        false,
		"1abc":    true,
		"-abc":    true,
		".5":      true,
		"abc":     true,
		"a b":     false,
		"a|b":     false,
		"(":       false,
		"́x": true,
	}

	for input, expected := range inputs {
		require.Equal(t, expected, dtd.IsNmToken(input), "IsNmToken(%q)", input)
	}
}
