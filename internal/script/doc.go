// Package script embeds a Lua runtime that can drive a vector.Array.
//
// A State is a restricted gopher-lua interpreter: only the base, table,
// string and math libraries are opened, and dofile, loadfile, load and
// loadstring are removed. Modules register Go functions as Lua globals.
//
// VectorModule exposes the session array as the global table vec. Indices
// are 0-based, matching the Go API:
//
//	vec.push(3, 7, 2)
//	vec.insert(1, 99)          -- 3 99 7 2
//	vec.erase(0)               -- 99 7 2
//	print(vec.max(), vec.size(), vec.capacity())
//	vec.each(function(i, v) print(i, v) end)
//	vec.reach(function(i, v) print(i, v) end)
//
// Array errors (out-of-range index, empty array) are raised as Lua errors
// and surface from DoString and DoFile as Go errors.
package script
