// Package shell implements the atlas command interpreter.
//
// A Session owns one vector.Array[float64] and executes line commands
// against it:
//
//	atlas> push 3 7 2
//	atlas> insert 1 99
//	atlas> print
//	[3 99 7 2]
//	atlas> at 9
//	error: at: vector: at: index 9 out of range [0, 4)
//
// Lua code can drive the same array through the vec module (see package
// script) with the lua and run commands. Snapshots of the array are printed
// with dump and read back with load.
package shell
