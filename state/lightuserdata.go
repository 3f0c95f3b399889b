package state

// LightUserdata is a bare host pointer value with no metatable and no GC
// header — it's compared and stored by the wrapped pointer's identity
// alone (lua.h: lua_pushlightuserdata / LUA_TLIGHTUSERDATA).
type LightUserdata struct {
	Ptr any
}
