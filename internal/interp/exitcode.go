package interp

// ExitCode extracts the low 32 bits of an int-valued result as a process
// exit code; a void or non-int result exits 0.
func ExitCode(v RuntimeValue) int {
	if v.Kind != KindInt {
		return 0
	}
	return int(int32(v.Int))
}
