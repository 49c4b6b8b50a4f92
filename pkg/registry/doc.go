// Package registry holds named command lists. Names are unique within a
// list and may be abbreviated to any unambiguous prefix when looked up,
// the way debugger command words are.
package registry
