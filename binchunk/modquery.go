package binchunk

import "github.com/tidwall/gjson"

// ModQuery peeks at a chunk's mode and debug source without running it
// through the full Prototype unmarshal jsoniter.Unmarshal would require —
// a single gjson query over the still-encoded JSON body instead of a
// second full decode, used by state.Load to honor the mode string ("b",
// "t", or "bt") the host API contract exposes (lauxlib.c: the mode check
// lua_load performs against a chunk's leading signature byte).
func ModQuery(data []byte, mode string) (source string, ok bool) {
	if len(data) < 9 {
		return "", false
	}
	body := data[9:]
	isBinary := gjson.GetBytes(body, "c").Exists()
	switch mode {
	case "b":
		if !isBinary {
			return "", false
		}
	case "t":
		// this chunk format has no separate textual encoding; "t"-only
		// callers never accept it, matching lua_load's rejection of a
		// precompiled chunk when mode excludes binary chunks.
		return "", false
	}
	return gjson.GetBytes(body, "s").String(), true
}
