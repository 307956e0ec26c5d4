package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// identName нормализует идентификатор в NFC, чтобы `café` в NFD и NFC
// давали одно и то же имя.
func identName(text string) string {
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			return norm.NFC.String(text)
		}
	}
	return text
}

// numericValue убирает разделители '_' и суффиксы n/m.
func numericValue(text string) string {
	text = strings.ReplaceAll(text, "_", "")
	if n := len(text); n > 0 && (text[n-1] == 'n' || text[n-1] == 'm') {
		text = text[:n-1]
	}
	return text
}

// splitRegexp делит `/body/flags` на тело и флаги.
func splitRegexp(text string) (pattern, flags string) {
	end := strings.LastIndexByte(text, '/')
	if end <= 0 {
		return text, ""
	}
	return text[1:end], text[end+1:]
}

// decodeString раскрывает escape-последовательности тела строкового литерала.
func decodeString(raw string) (string, bool) {
	if !strings.ContainsRune(raw, '\\') {
		return raw, true
	}
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(raw) {
			return "", false
		}
		switch c = raw[i]; c {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '0':
			if i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '9' {
				return "", false // legacy octal
			}
			sb.WriteByte(0)
		case '\n':
			// продолжение строки
		case 'x':
			if i+2 >= len(raw) {
				return "", false
			}
			v, err := strconv.ParseUint(raw[i+1:i+3], 16, 8)
			if err != nil {
				return "", false
			}
			sb.WriteRune(rune(v))
			i += 2
		case 'u':
			r, n, ok := decodeUnicodeEscape(raw[i+1:])
			if !ok {
				return "", false
			}
			// суррогатная пара \uD83D\uDE00
			if r >= 0xD800 && r <= 0xDBFF && strings.HasPrefix(raw[i+1+n:], "\\u") {
				if lo, m, ok := decodeUnicodeEscape(raw[i+1+n+2:]); ok && lo >= 0xDC00 && lo <= 0xDFFF {
					r = (r-0xD800)<<10 + (lo - 0xDC00) + 0x10000
					n += 2 + m
				}
			}
			sb.WriteRune(r)
			i += n
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), true
}

// decodeUnicodeEscape читает `XXXX` или `{X...}` после `\u`.
func decodeUnicodeEscape(s string) (r rune, consumed int, ok bool) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0, false
		}
		v, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0, false
		}
		return rune(v), end + 1, true
	}
	if len(s) < 4 {
		return 0, 0, false
	}
	v, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	return rune(v), 4, true
}
