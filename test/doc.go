// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report with t.Fatalf() and end the test
// immediately. The Demand*() functions are useful when the value being tested
// is used in further tests and there is no point continuing.
//
// Values are considered a "success" or a "failure" according to their type:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
package test
