package domain

// NormalizeCPF strips everything but digits and validates the two check digits.
// Eleven repeated digits are rejected even though their checksum is consistent.
func NormalizeCPF(raw string) (string, error) {
	cpf := OnlyDigits(raw)
	if len(cpf) != 11 {
		return "", ErrInvalidCPF
	}

	repeated := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return "", ErrInvalidCPF
	}

	if cpfCheckDigit(cpf[:9]) != cpf[9] || cpfCheckDigit(cpf[:10]) != cpf[10] {
		return "", ErrInvalidCPF
	}

	return cpf, nil
}

func ValidCPF(raw string) bool {
	_, err := NormalizeCPF(raw)
	return err == nil
}

// cpfCheckDigit weighs digits from len+1 down to 2.
func cpfCheckDigit(digits string) byte {
	weight := len(digits) + 1
	var sum int
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weight
		weight--
	}

	rest := (sum * 10) % 11
	if rest == 10 {
		rest = 0
	}
	return byte('0' + rest)
}

func FormatCPF(cpf string) string {
	if len(cpf) != 11 {
		return cpf
	}
	return cpf[0:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:11]
}
