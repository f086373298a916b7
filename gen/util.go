package gen

import (
	"go/token"
	"strings"

	"github.com/golang-cz/textcase"

	"github.com/KarimHamidou/gdbindgen/model"
	"github.com/KarimHamidou/gdbindgen/resolver"
)

// Identifiers the method bodies declare themselves.
var reservedLocals = map[string]bool{
	"o":                true,
	"args":             true,
	"varargs":          true,
	resolver.ReturnVar: true,
}

// buildSuffixes are file name suffixes the go tool treats as build constraints.
var buildSuffixes = []string{
	"_test", "_windows", "_linux", "_darwin", "_android", "_ios", "_js", "_wasm",
	"_wasip1", "_freebsd", "_netbsd", "_openbsd", "_plan9", "_solaris", "_aix",
	"_illumos", "_dragonfly", "_hurd", "_zos", "_386", "_amd64", "_arm", "_arm64",
	"_mips", "_ppc64", "_riscv64", "_s390x", "_loong64",
}

// GoName converts an engine identifier (snake or upper snake case) to an
// exported Go identifier, e.g. "get_node" becomes "GetNode".
func GoName(s string) string {
	return resolver.PascalCase(s)
}

// ConstName prefixes an exported constant name with its owner, e.g. Node and
// NOTIFICATION_READY become NodeNotificationReady.
func ConstName(owner, name string) string {
	return owner + GoName(name)
}

// MethodGoName returns the Go method name for m. Methods whose internal name
// differs from the engine name get a trailing underscore so both stay distinct.
func MethodGoName(m *model.Method) string {
	name := m.GetName()
	goName := GoName(name.Internal)
	if name.Internal != name.Original {
		goName += "_"
	}
	return goName
}

// ArgName converts an argument name to a Go parameter name that cannot clash
// with keywords or the locals a wrapper declares.
func ArgName(name string) string {
	n := textcase.CamelCase(name)
	if n == "" {
		return "arg"
	}
	if n[0] >= '0' && n[0] <= '9' {
		n = "arg" + n
	}
	if token.IsKeyword(n) || reservedLocals[n] {
		n += "_"
	}
	return n
}

// FileName returns the output file name for a class module, avoiding names
// the go tool would read as build constraints.
func FileName(module string) string {
	for _, suffix := range buildSuffixes {
		if strings.HasSuffix(module, suffix) {
			return module + "_class.go"
		}
	}
	return module + ".go"
}
