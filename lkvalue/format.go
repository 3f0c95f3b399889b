package lkvalue

import (
	"fmt"
	"strconv"
	"strings"
)

// Format implements the restricted printf dialect PushFString accepts:
// %d/%I (integer), %f (float), %p (pointer), %s (string), %c (byte),
// %U (unicode codepoint, via UTF8Escape), and %% (literal percent). Unlike
// fmt.Sprintf, an unknown verb is left untouched in the output rather than
// erroring, matching luaO_pushvfstring's behavior of only recognizing its
// fixed verb set and copying everything else through literally.
func Format(spec string, args ...any) string {
	var b strings.Builder
	ai := 0
	next := func() any {
		if ai < len(args) {
			v := args[ai]
			ai++
			return v
		}
		return nil
	}
	i := 0
	for i < len(spec) {
		c := spec[i]
		if c != '%' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(spec) {
			b.WriteByte(c)
			break
		}
		verb := spec[i+1]
		switch verb {
		case '%':
			b.WriteByte('%')
		case 'd', 'I':
			writeAny(&b, next(), func(v any) string {
				switch n := v.(type) {
				case int64:
					return strconv.FormatInt(n, 10)
				case int:
					return strconv.Itoa(n)
				default:
					return fmt.Sprintf("%v", v)
				}
			})
		case 'f':
			writeAny(&b, next(), func(v any) string {
				switch n := v.(type) {
				case float64:
					return strconv.FormatFloat(n, 'f', 6, 64)
				default:
					return fmt.Sprintf("%v", v)
				}
			})
		case 'p':
			b.WriteString(fmt.Sprintf("%p", next()))
		case 's':
			writeAny(&b, next(), func(v any) string {
				if s, ok := StringContent(v); ok {
					return s
				}
				return fmt.Sprintf("%v", v)
			})
		case 'c':
			writeAny(&b, next(), func(v any) string {
				switch n := v.(type) {
				case int64:
					return string([]byte{byte(n)})
				case int:
					return string([]byte{byte(n)})
				default:
					return fmt.Sprintf("%v", v)
				}
			})
		case 'U':
			writeAny(&b, next(), func(v any) string {
				switch n := v.(type) {
				case int64:
					return string(UTF8EscapeString(uint64(n)))
				case uint64:
					return string(UTF8EscapeString(n))
				default:
					return fmt.Sprintf("%v", v)
				}
			})
		default:
			b.WriteByte('%')
			b.WriteByte(verb)
		}
		i += 2
	}
	return b.String()
}

func writeAny(b *strings.Builder, v any, render func(any) string) {
	b.WriteString(render(v))
}
