package internalcheck

import (
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// libraryPackages covers every non-test package under pkg/rsaprim.
const libraryPackages = "github.com/seedsign/rsaprim-go/pkg/rsaprim/..."

// loadLibrary loads the library packages with the requested mode, failing
// the test on loader errors.
func loadLibrary(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()
	pkgs, err := packages.Load(&packages.Config{Mode: mode}, libraryPackages)
	if err != nil {
		t.Fatalf("load %s: %v", libraryPackages, err)
	}
	return pkgs
}

// report fails the test with one line per finding.
func report(t *testing.T, policy string, findings []string) {
	t.Helper()
	if len(findings) > 0 {
		t.Fatalf("%s policy violation:\n%s", policy, strings.Join(findings, "\n"))
	}
}
