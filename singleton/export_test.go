package singleton

// Reset restores the package state between test cases.
var Reset = reset
