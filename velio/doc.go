// Package velio parses and writes the text formats surrounding the
// engine: velocity pick files (trace, time, velocity rows) and trace
// geometry files (trace, x, y rows). Both formats tolerate a single
// header line and auto-detect tab versus whitespace delimiting.
package velio
