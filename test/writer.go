package test

import "strings"

// Writer implements the io.Writer interface. It should be used to capture
// output and to compare with predefined strings
type Writer struct {
	buffer strings.Builder
}

func (tw *Writer) Write(p []byte) (n int, err error) {
	return tw.buffer.Write(p)
}

// Compare buffered output with predefined/example string
func (tw *Writer) Compare(s string) bool {
	return s == tw.buffer.String()
}

// String returns the current contents of writer's buffer
func (tw *Writer) String() string {
	return tw.buffer.String()
}

// Clear string empties the write buffer
func (tw *Writer) Clear() {
	tw.buffer.Reset()
}
