package validators

import "strings"

// IsPhonePlausible aceita o que um cliente digitaria num formulário:
// dígitos com separadores comuns, 8 a 15 dígitos no total.
func IsPhonePlausible(phone string) bool {
	digits := 0
	for _, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '+' || r == '.':
			// separador aceito
		default:
			return false
		}
	}
	return digits >= 8 && digits <= 15
}
