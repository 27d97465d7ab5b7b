// Package pipeline orchestrates one save operation per input source:
// read the SQL, resolve description and target directory through the host
// boundary, compute the filename, materialize the file, and report the
// outcome. The pipeline holds no state between invocations; collisions are
// decided by the filesystem alone.
package pipeline
