// Package resources contains functions to prepare paths for the files that
// the application keeps between sessions, such as the window geometry.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments. It creates intermediate
// directories as required but does not otherwise touch or create files.
//
// For builds with the "release" build tag the base path is rooted in the
// user's configuration directory. On modern Linux systems the full path would
// be something like:
//
//	/home/user/.config/testchip8/
//
// For non-"release" builds the base path is in the current working directory:
//
//	.testchip8
//
// # portable.txt
//
// An exception to the above rules is when a file named 'portable.txt' is in
// the same directory as the program binary. In that case resources are saved
// in a directory named 'TestCHIP8_UserData' beside the binary.
package resources
