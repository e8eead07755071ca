package observability

import (
	"github.com/ama-mesquita/app-declaracao/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCPF masks a CPF number for logging. Punctuation is ignored.
func MaskCPF(cpf string) string {
	digits := make([]byte, 0, len(cpf))
	for i := 0; i < len(cpf); i++ {
		if cpf[i] >= '0' && cpf[i] <= '9' {
			digits = append(digits, cpf[i])
		}
	}
	if len(digits) != 11 {
		return "***.***.***-**"
	}
	return string(digits[:3]) + ".***." + string(digits[6:9]) + "-**"
}

// MaskName keeps only the first name, for logs that need to tell
// submissions apart without recording who asked for them.
func MaskName(name string) string {
	for i, r := range name {
		if r == ' ' {
			return name[:i] + " ***"
		}
	}
	return name
}
