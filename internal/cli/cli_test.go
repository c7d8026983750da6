package cli

import (
	"reflect"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("ARRMCP_TEST_STR", "value")
	if got := getEnv("ARRMCP_TEST_STR", "def"); got != "value" {
		t.Errorf("getEnv = %q, want %q", got, "value")
	}
	if got := getEnv("ARRMCP_TEST_UNSET", "def"); got != "def" {
		t.Errorf("getEnv unset = %q, want %q", got, "def")
	}
	t.Setenv("ARRMCP_TEST_EMPTY", "")
	if got := getEnv("ARRMCP_TEST_EMPTY", "def"); got != "def" {
		t.Errorf("getEnv empty = %q, want %q", got, "def")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("ARRMCP_TEST_INT", "9000")
	if got := getEnvInt("ARRMCP_TEST_INT", 1); got != 9000 {
		t.Errorf("getEnvInt = %d, want 9000", got)
	}
	t.Setenv("ARRMCP_TEST_BAD_INT", "ninety")
	if got := getEnvInt("ARRMCP_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("getEnvInt unparsable = %d, want 7", got)
	}
	if got := getEnvInt("ARRMCP_TEST_UNSET", 42); got != 42 {
		t.Errorf("getEnvInt unset = %d, want 42", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("ARRMCP_TEST_BOOL", "true")
	if !getEnvBool("ARRMCP_TEST_BOOL", false) {
		t.Error("getEnvBool true = false")
	}
	t.Setenv("ARRMCP_TEST_BOOL", "0")
	if getEnvBool("ARRMCP_TEST_BOOL", true) {
		t.Error("getEnvBool 0 = true")
	}
	t.Setenv("ARRMCP_TEST_BOOL", "yep")
	if !getEnvBool("ARRMCP_TEST_BOOL", true) {
		t.Error("getEnvBool unparsable should keep the default")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{",a,,b,", []string{"a", "b"}},
	}
	for _, tc := range tests {
		if got := splitList(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitList(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
