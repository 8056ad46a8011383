package companies

import (
	"strings"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
)

const cnpjLength = 14

var (
	firstDigitWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondDigitWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

	cnpjPunctuation = strings.NewReplacer(".", "", "/", "", "-", "", " ", "")

	ErrInvalidCNPJ = apperr.NewValidation("CNPJ is not valid.")
)

// NormalizeCNPJ strips the usual punctuation ("11.222.333/0001-81") and validates
// the check digits. It returns the 14 bare digits.
func NormalizeCNPJ(raw string) (string, error) {
	cnpj := cnpjPunctuation.Replace(strings.TrimSpace(raw))
	if !ValidCNPJ(cnpj) {
		return "", ErrInvalidCNPJ
	}
	return cnpj, nil
}

func ValidCNPJ(cnpj string) bool {
	if len(cnpj) != cnpjLength {
		return false
	}

	digits := make([]int, cnpjLength)
	same := true
	for i, r := range cnpj {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
		if digits[i] != digits[0] {
			same = false
		}
	}
	if same {
		return false
	}

	return checkDigit(digits[:12], firstDigitWeights) == digits[12] &&
		checkDigit(digits[:13], secondDigitWeights) == digits[13]
}

func checkDigit(digits, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}
