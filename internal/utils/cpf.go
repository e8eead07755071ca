package utils

// ValidateCPF checks the two CPF check digits. Punctuation is ignored.
// Sequences of a single repeated digit are rejected even though their check
// digits add up.
func ValidateCPF(cpf string) bool {
	v := OnlyDigits(cpf)
	if len(v) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < len(v); i++ {
		if v[i] != v[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return cpfCheckDigit(v[:9]) == v[9] && cpfCheckDigit(v[:10]) == v[10]
}

// cpfCheckDigit computes the next check digit for the given prefix
func cpfCheckDigit(prefix string) byte {
	sum := 0
	weight := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * weight
		weight--
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + 11 - remainder)
}
