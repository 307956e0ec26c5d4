package fuzztests

import "testing"

const (
	maxSeedBytes = 64 << 10 // ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

// expressionSeeds covers the shapes template bindings actually use.
var expressionSeeds = []string{
	"a + b * c",
	"item in items",
	"(item, index) in list",
	"(value, key, index) of object",
	"n in 10",
	"{ a, b: [c, ...d] } in rows",
	"ok ? 'yes' : `no ${reason}`",
	"user?.profile?.name ?? 'anon'",
	"list.map((x) => x * 2).filter(Boolean)",
	"async (e) => { await save(e) }",
	"new Date().getTime()",
	"/a+b/gi.test(s)",
	"a = b, c += 1, d ??= 2",
	"!a && (b || c)",
	"{ a = 1 }",
	"0x1F + 1e3 - .5",
	"'\\u{1F600}' + \"\\x41\"",
	"typeof a === 'undefined'",
	"a ?? b || c",
	"((((",
	"`${`${a}`}`",
}

// logSeeds covers the native log shapes the remapper reads.
var logSeeds = []string{
	"e: file:///app/src/index.kt:12:5 Unresolved reference: foo",
	"w: /app/src/main.kt: (3, 7): Variable 'x' is never used",
	"error: /app/Sources/index.swift:3:12: cannot find 'x' in scope",
	"/app/src/index.uts:1:1: note: here",
	"[plugin:uni:app-uts] Expected ';'\n╭─[/app/pages/index.uvue:4:10]\n│\n4 │ let a = 1 2\n· ──\n╰────",
	"\x00\x01\n\n:::\n",
}

func addSeeds(f *testing.F, seeds []string) {
	for _, s := range seeds {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
